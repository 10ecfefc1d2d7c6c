package arbint

import (
	mbits "math/bits"

	"github.com/gregLibert/arbint/pkg/bits"
)

// Add returns u + o. It panics on overflow unless built with arbint_unchecked,
// in which case the result wraps.
func (u UInt[T, W]) Add(o UInt[T, W]) UInt[T, W] {
	v, overflow := u.OverflowingAdd(o)
	if overflow && overflowChecks {
		panicOverflow("add")
	}
	return v
}

// Sub returns u - o, with the overflow behavior of Add.
func (u UInt[T, W]) Sub(o UInt[T, W]) UInt[T, W] {
	v, overflow := u.OverflowingSub(o)
	if overflow && overflowChecks {
		panicOverflow("subtract")
	}
	return v
}

// Mul returns u * o, with the overflow behavior of Add.
func (u UInt[T, W]) Mul(o UInt[T, W]) UInt[T, W] {
	v, overflow := u.OverflowingMul(o)
	if overflow && overflowChecks {
		panicOverflow("multiply")
	}
	return v
}

// Div returns u / o. It panics if o is zero.
func (u UInt[T, W]) Div(o UInt[T, W]) UInt[T, W] {
	return UInt[T, W]{raw: u.raw / o.raw}
}

// Rem returns u % o. It panics if o is zero.
func (u UInt[T, W]) Rem(o UInt[T, W]) UInt[T, W] {
	return UInt[T, W]{raw: u.raw % o.raw}
}

// DivEuclid equals Div for unsigned values.
func (u UInt[T, W]) DivEuclid(o UInt[T, W]) UInt[T, W] { return u.Div(o) }

// RemEuclid equals Rem for unsigned values.
func (u UInt[T, W]) RemEuclid(o UInt[T, W]) UInt[T, W] { return u.Rem(o) }

// Pow returns u**exp, with the overflow behavior of Add.
func (u UInt[T, W]) Pow(exp uint32) UInt[T, W] {
	v, overflow := u.OverflowingPow(exp)
	if overflow && overflowChecks {
		panicOverflow("multiply")
	}
	return v
}

// OverflowingAdd returns u + o modulo 2^N and whether the sum overflowed.
func (u UInt[T, W]) OverflowingAdd(o UInt[T, W]) (UInt[T, W], bool) {
	sum := u.raw + o.raw
	if u.Bits() == bits.Size[T]() {
		return UInt[T, W]{raw: sum}, sum < u.raw
	}
	// Both operands have at most N < size bits, so the native sum is exact.
	mask := u.Mask()
	return UInt[T, W]{raw: sum & mask}, sum > mask
}

// OverflowingSub returns u - o modulo 2^N and whether it underflowed.
func (u UInt[T, W]) OverflowingSub(o UInt[T, W]) (UInt[T, W], bool) {
	return UInt[T, W]{raw: (u.raw - o.raw) & u.Mask()}, o.raw > u.raw
}

// OverflowingMul returns u * o modulo 2^N and whether the product overflowed.
func (u UInt[T, W]) OverflowingMul(o UInt[T, W]) (UInt[T, W], bool) {
	mask := u.Mask()
	if 2*u.Bits() <= bits.Size[T]() {
		p := u.raw * o.raw
		return UInt[T, W]{raw: p & mask}, p > mask
	}
	hi, lo := mbits.Mul64(uint64(u.raw), uint64(o.raw))
	return UInt[T, W]{raw: T(lo) & mask}, hi != 0 || lo > uint64(mask)
}

// OverflowingDiv returns (u / o, false). It panics if o is zero.
func (u UInt[T, W]) OverflowingDiv(o UInt[T, W]) (UInt[T, W], bool) {
	return u.Div(o), false
}

// OverflowingRem returns (u % o, false). It panics if o is zero.
func (u UInt[T, W]) OverflowingRem(o UInt[T, W]) (UInt[T, W], bool) {
	return u.Rem(o), false
}

// OverflowingDivEuclid returns (u / o, false). It panics if o is zero.
func (u UInt[T, W]) OverflowingDivEuclid(o UInt[T, W]) (UInt[T, W], bool) {
	return u.Div(o), false
}

// OverflowingRemEuclid returns (u % o, false). It panics if o is zero.
func (u UInt[T, W]) OverflowingRemEuclid(o UInt[T, W]) (UInt[T, W], bool) {
	return u.Rem(o), false
}

// OverflowingNeg returns -u modulo 2^N; it overflows for every non-zero u.
func (u UInt[T, W]) OverflowingNeg() (UInt[T, W], bool) {
	return u.WrappingNeg(), u.raw != 0
}

// OverflowingPow returns u**exp modulo 2^N and whether it overflowed.
func (u UInt[T, W]) OverflowingPow(exp uint32) (UInt[T, W], bool) {
	mask := u.Mask()
	p, overflow := powUint64(uint64(u.raw), exp, uint64(mask))
	return UInt[T, W]{raw: T(p) & mask}, overflow
}

// CheckedAdd returns u + o, or false if the sum exceeds Max.
func (u UInt[T, W]) CheckedAdd(o UInt[T, W]) (UInt[T, W], bool) {
	return checked(u.OverflowingAdd(o))
}

// CheckedSub returns u - o, or false if o > u.
func (u UInt[T, W]) CheckedSub(o UInt[T, W]) (UInt[T, W], bool) {
	return checked(u.OverflowingSub(o))
}

// CheckedMul returns u * o, or false if the product exceeds Max.
func (u UInt[T, W]) CheckedMul(o UInt[T, W]) (UInt[T, W], bool) {
	return checked(u.OverflowingMul(o))
}

// CheckedDiv returns u / o, or false if o is zero.
func (u UInt[T, W]) CheckedDiv(o UInt[T, W]) (UInt[T, W], bool) {
	if o.raw == 0 {
		return UInt[T, W]{}, false
	}
	return u.Div(o), true
}

// CheckedRem returns u % o, or false if o is zero.
func (u UInt[T, W]) CheckedRem(o UInt[T, W]) (UInt[T, W], bool) {
	if o.raw == 0 {
		return UInt[T, W]{}, false
	}
	return u.Rem(o), true
}

// CheckedDivEuclid returns u / o, or false if o is zero.
func (u UInt[T, W]) CheckedDivEuclid(o UInt[T, W]) (UInt[T, W], bool) {
	return u.CheckedDiv(o)
}

// CheckedRemEuclid returns u % o, or false if o is zero.
func (u UInt[T, W]) CheckedRemEuclid(o UInt[T, W]) (UInt[T, W], bool) {
	return u.CheckedRem(o)
}

// CheckedNeg returns 0 for 0 and false for every other value.
func (u UInt[T, W]) CheckedNeg() (UInt[T, W], bool) {
	return checked(u.OverflowingNeg())
}

// CheckedPow returns u**exp, or false if it exceeds Max.
func (u UInt[T, W]) CheckedPow(exp uint32) (UInt[T, W], bool) {
	return checked(u.OverflowingPow(exp))
}

// WrappingAdd returns u + o modulo 2^N.
func (u UInt[T, W]) WrappingAdd(o UInt[T, W]) UInt[T, W] {
	v, _ := u.OverflowingAdd(o)
	return v
}

// WrappingSub returns u - o modulo 2^N.
func (u UInt[T, W]) WrappingSub(o UInt[T, W]) UInt[T, W] {
	v, _ := u.OverflowingSub(o)
	return v
}

// WrappingMul returns u * o modulo 2^N.
func (u UInt[T, W]) WrappingMul(o UInt[T, W]) UInt[T, W] {
	v, _ := u.OverflowingMul(o)
	return v
}

// WrappingDiv returns u / o. It panics if o is zero.
func (u UInt[T, W]) WrappingDiv(o UInt[T, W]) UInt[T, W] { return u.Div(o) }

// WrappingRem returns u % o. It panics if o is zero.
func (u UInt[T, W]) WrappingRem(o UInt[T, W]) UInt[T, W] { return u.Rem(o) }

// WrappingDivEuclid returns u / o. It panics if o is zero.
func (u UInt[T, W]) WrappingDivEuclid(o UInt[T, W]) UInt[T, W] { return u.Div(o) }

// WrappingRemEuclid returns u % o. It panics if o is zero.
func (u UInt[T, W]) WrappingRemEuclid(o UInt[T, W]) UInt[T, W] { return u.Rem(o) }

// WrappingNeg returns 2^N - u, modulo 2^N.
func (u UInt[T, W]) WrappingNeg() UInt[T, W] {
	return UInt[T, W]{raw: -u.raw & u.Mask()}
}

// WrappingPow returns u**exp modulo 2^N.
func (u UInt[T, W]) WrappingPow(exp uint32) UInt[T, W] {
	v, _ := u.OverflowingPow(exp)
	return v
}

// SaturatingAdd returns u + o clamped to Max.
func (u UInt[T, W]) SaturatingAdd(o UInt[T, W]) UInt[T, W] {
	if v, overflow := u.OverflowingAdd(o); !overflow {
		return v
	}
	return u.Max()
}

// SaturatingSub returns u - o clamped to 0.
func (u UInt[T, W]) SaturatingSub(o UInt[T, W]) UInt[T, W] {
	if v, overflow := u.OverflowingSub(o); !overflow {
		return v
	}
	return u.Min()
}

// SaturatingMul returns u * o clamped to Max.
func (u UInt[T, W]) SaturatingMul(o UInt[T, W]) UInt[T, W] {
	if v, overflow := u.OverflowingMul(o); !overflow {
		return v
	}
	return u.Max()
}

// SaturatingDiv returns u / o. It panics if o is zero.
func (u UInt[T, W]) SaturatingDiv(o UInt[T, W]) UInt[T, W] { return u.Div(o) }

// SaturatingPow returns u**exp clamped to Max.
func (u UInt[T, W]) SaturatingPow(exp uint32) UInt[T, W] {
	if v, overflow := u.OverflowingPow(exp); !overflow {
		return v
	}
	return u.Max()
}

// AbsDiff returns |u - o|.
func (u UInt[T, W]) AbsDiff(o UInt[T, W]) UInt[T, W] {
	if u.raw > o.raw {
		return UInt[T, W]{raw: u.raw - o.raw}
	}
	return UInt[T, W]{raw: o.raw - u.raw}
}

// IsPowerOfTwo reports whether u is 2^k for some k.
func (u UInt[T, W]) IsPowerOfTwo() bool {
	return u.raw != 0 && u.raw&(u.raw-1) == 0
}

// CheckedNextPowerOfTwo returns the smallest power of two >= u, or false if
// it exceeds Max.
func (u UInt[T, W]) CheckedNextPowerOfTwo() (UInt[T, W], bool) {
	if u.raw <= 1 {
		return u.One(), true
	}
	k := mbits.Len64(uint64(u.raw - 1))
	if k >= u.Bits() {
		return UInt[T, W]{}, false
	}
	return UInt[T, W]{raw: T(1) << uint(k)}, true
}

// NextPowerOfTwo returns the smallest power of two >= u. When that exceeds
// Max it panics, or returns 0 when built with arbint_unchecked.
func (u UInt[T, W]) NextPowerOfTwo() UInt[T, W] {
	v, ok := u.CheckedNextPowerOfTwo()
	if !ok && overflowChecks {
		panicOverflow("add")
	}
	return v
}

func checked[V any](v V, overflow bool) (V, bool) {
	if overflow {
		var zero V
		return zero, false
	}
	return v, true
}
