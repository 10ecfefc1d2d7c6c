package arbint

import (
	"github.com/gregLibert/arbint/pkg/bits"
)

// Add returns i + o. It panics on overflow unless built with
// arbint_unchecked, in which case the result wraps.
func (i Int[T, W]) Add(o Int[T, W]) Int[T, W] {
	v, overflow := i.OverflowingAdd(o)
	if overflow && overflowChecks {
		panicOverflow("add")
	}
	return v
}

// Sub returns i - o, with the overflow behavior of Add.
func (i Int[T, W]) Sub(o Int[T, W]) Int[T, W] {
	v, overflow := i.OverflowingSub(o)
	if overflow && overflowChecks {
		panicOverflow("subtract")
	}
	return v
}

// Mul returns i * o, with the overflow behavior of Add.
func (i Int[T, W]) Mul(o Int[T, W]) Int[T, W] {
	v, overflow := i.OverflowingMul(o)
	if overflow && overflowChecks {
		panicOverflow("multiply")
	}
	return v
}

// Div returns i / o truncated toward zero. It panics if o is zero, and for
// Min / -1 with the overflow behavior of Add.
func (i Int[T, W]) Div(o Int[T, W]) Int[T, W] {
	v, overflow := i.OverflowingDiv(o)
	if overflow && overflowChecks {
		panicOverflow("divide")
	}
	return v
}

// Rem returns i % o with the sign of i. It panics if o is zero, and for
// Min % -1 with the overflow behavior of Add.
func (i Int[T, W]) Rem(o Int[T, W]) Int[T, W] {
	v, overflow := i.OverflowingRem(o)
	if overflow && overflowChecks {
		panicOverflow("calculate the remainder")
	}
	return v
}

// DivEuclid returns the quotient q of Euclidean division, such that
// i = q*o + r with 0 <= r < |o|.
func (i Int[T, W]) DivEuclid(o Int[T, W]) Int[T, W] {
	v, overflow := i.OverflowingDivEuclid(o)
	if overflow && overflowChecks {
		panicOverflow("divide")
	}
	return v
}

// RemEuclid returns the non-negative remainder r of Euclidean division.
func (i Int[T, W]) RemEuclid(o Int[T, W]) Int[T, W] {
	v, overflow := i.OverflowingRemEuclid(o)
	if overflow && overflowChecks {
		panicOverflow("calculate the remainder")
	}
	return v
}

// Neg returns -i, with the overflow behavior of Add for Min.
func (i Int[T, W]) Neg() Int[T, W] {
	v, overflow := i.OverflowingNeg()
	if overflow && overflowChecks {
		panicOverflow("negate")
	}
	return v
}

// Abs returns |i|, with the overflow behavior of Add for Min.
func (i Int[T, W]) Abs() Int[T, W] {
	v, overflow := i.OverflowingAbs()
	if overflow && overflowChecks {
		panicOverflow("negate")
	}
	return v
}

// Pow returns i**exp, with the overflow behavior of Add.
func (i Int[T, W]) Pow(exp uint32) Int[T, W] {
	v, overflow := i.OverflowingPow(exp)
	if overflow && overflowChecks {
		panicOverflow("multiply")
	}
	return v
}

// UnsignedAbs returns |i| as a uint64; it is exact for Min.
func (i Int[T, W]) UnsignedAbs() uint64 { return magnitude(int64(i.raw)) }

// OverflowingAdd returns i + o wrapped to N bits and whether it overflowed.
func (i Int[T, W]) OverflowingAdd(o Int[T, W]) (Int[T, W], bool) {
	sum := i.raw + o.raw
	if i.Bits() == bits.Size[T]() {
		return Int[T, W]{raw: sum}, (i.raw >= 0) == (o.raw >= 0) && (sum >= 0) != (i.raw >= 0)
	}
	return NewIntOverflowing[T, W](sum)
}

// OverflowingSub returns i - o wrapped to N bits and whether it overflowed.
func (i Int[T, W]) OverflowingSub(o Int[T, W]) (Int[T, W], bool) {
	diff := i.raw - o.raw
	if i.Bits() == bits.Size[T]() {
		return Int[T, W]{raw: diff}, (i.raw >= 0) != (o.raw >= 0) && (diff >= 0) != (i.raw >= 0)
	}
	return NewIntOverflowing[T, W](diff)
}

// OverflowingMul returns i * o wrapped to N bits and whether it overflowed.
func (i Int[T, W]) OverflowingMul(o Int[T, W]) (Int[T, W], bool) {
	if 2*i.Bits() <= bits.Size[T]() {
		return NewIntOverflowing[T, W](i.raw * o.raw)
	}
	p, overflow := mulInt64(int64(i.raw), int64(o.raw))
	overflow = overflow || p < int64(i.Min().raw) || p > int64(i.Max().raw)
	return NewIntWrapping[T, W](T(p)), overflow
}

// OverflowingDiv returns i / o and whether it overflowed; Min / -1 yields
// (Min, true). It panics if o is zero.
func (i Int[T, W]) OverflowingDiv(o Int[T, W]) (Int[T, W], bool) {
	if i.isMinDivMinusOne(o) {
		return i, true
	}
	return Int[T, W]{raw: i.raw / o.raw}, false
}

// OverflowingRem returns i % o and whether it overflowed; Min % -1 yields
// (0, true). It panics if o is zero.
func (i Int[T, W]) OverflowingRem(o Int[T, W]) (Int[T, W], bool) {
	if i.isMinDivMinusOne(o) {
		return Int[T, W]{}, true
	}
	return Int[T, W]{raw: i.raw % o.raw}, false
}

// OverflowingDivEuclid is the Euclidean form of OverflowingDiv.
func (i Int[T, W]) OverflowingDivEuclid(o Int[T, W]) (Int[T, W], bool) {
	if i.isMinDivMinusOne(o) {
		return i, true
	}
	q, r := i.raw/o.raw, i.raw%o.raw
	if r < 0 {
		if o.raw > 0 {
			q--
		} else {
			q++
		}
	}
	return Int[T, W]{raw: q}, false
}

// OverflowingRemEuclid is the Euclidean form of OverflowingRem.
func (i Int[T, W]) OverflowingRemEuclid(o Int[T, W]) (Int[T, W], bool) {
	if i.isMinDivMinusOne(o) {
		return Int[T, W]{}, true
	}
	r := i.raw % o.raw
	if r < 0 {
		if o.raw < 0 {
			r -= o.raw
		} else {
			r += o.raw
		}
	}
	return Int[T, W]{raw: r}, false
}

// OverflowingNeg returns -i and whether it overflowed; -Min yields (Min, true).
func (i Int[T, W]) OverflowingNeg() (Int[T, W], bool) {
	if i.raw == i.Min().raw {
		return i, true
	}
	return Int[T, W]{raw: -i.raw}, false
}

// OverflowingAbs returns |i| and whether it overflowed; |Min| yields
// (Min, true).
func (i Int[T, W]) OverflowingAbs() (Int[T, W], bool) {
	if i.raw < 0 {
		return i.OverflowingNeg()
	}
	return i, false
}

// OverflowingPow returns i**exp wrapped to N bits and whether it overflowed.
func (i Int[T, W]) OverflowingPow(exp uint32) (Int[T, W], bool) {
	negative := i.raw < 0 && exp&1 == 1
	limit := uint64(i.Max().raw)
	if negative {
		limit = magnitude(int64(i.Min().raw))
	}
	p, overflow := powUint64(magnitude(int64(i.raw)), exp, limit)
	if negative {
		p = -p
	}
	return NewIntWrapping[T, W](T(p)), overflow
}

func (i Int[T, W]) isMinDivMinusOne(o Int[T, W]) bool {
	return o.raw == -1 && i.raw == i.Min().raw
}

// CheckedAdd returns i + o, or false on overflow.
func (i Int[T, W]) CheckedAdd(o Int[T, W]) (Int[T, W], bool) {
	return checked(i.OverflowingAdd(o))
}

// CheckedSub returns i - o, or false on overflow.
func (i Int[T, W]) CheckedSub(o Int[T, W]) (Int[T, W], bool) {
	return checked(i.OverflowingSub(o))
}

// CheckedMul returns i * o, or false on overflow.
func (i Int[T, W]) CheckedMul(o Int[T, W]) (Int[T, W], bool) {
	return checked(i.OverflowingMul(o))
}

// CheckedDiv returns i / o, or false if o is zero or for Min / -1.
func (i Int[T, W]) CheckedDiv(o Int[T, W]) (Int[T, W], bool) {
	if o.raw == 0 {
		return Int[T, W]{}, false
	}
	return checked(i.OverflowingDiv(o))
}

// CheckedRem returns i % o, or false if o is zero or for Min % -1.
func (i Int[T, W]) CheckedRem(o Int[T, W]) (Int[T, W], bool) {
	if o.raw == 0 {
		return Int[T, W]{}, false
	}
	return checked(i.OverflowingRem(o))
}

// CheckedDivEuclid is the Euclidean form of CheckedDiv.
func (i Int[T, W]) CheckedDivEuclid(o Int[T, W]) (Int[T, W], bool) {
	if o.raw == 0 {
		return Int[T, W]{}, false
	}
	return checked(i.OverflowingDivEuclid(o))
}

// CheckedRemEuclid is the Euclidean form of CheckedRem.
func (i Int[T, W]) CheckedRemEuclid(o Int[T, W]) (Int[T, W], bool) {
	if o.raw == 0 {
		return Int[T, W]{}, false
	}
	return checked(i.OverflowingRemEuclid(o))
}

// CheckedNeg returns -i, or false for Min.
func (i Int[T, W]) CheckedNeg() (Int[T, W], bool) {
	return checked(i.OverflowingNeg())
}

// CheckedAbs returns |i|, or false for Min.
func (i Int[T, W]) CheckedAbs() (Int[T, W], bool) {
	return checked(i.OverflowingAbs())
}

// CheckedPow returns i**exp, or false on overflow.
func (i Int[T, W]) CheckedPow(exp uint32) (Int[T, W], bool) {
	return checked(i.OverflowingPow(exp))
}

// WrappingAdd returns i + o wrapped to N bits.
func (i Int[T, W]) WrappingAdd(o Int[T, W]) Int[T, W] {
	v, _ := i.OverflowingAdd(o)
	return v
}

// WrappingSub returns i - o wrapped to N bits.
func (i Int[T, W]) WrappingSub(o Int[T, W]) Int[T, W] {
	v, _ := i.OverflowingSub(o)
	return v
}

// WrappingMul returns i * o wrapped to N bits.
func (i Int[T, W]) WrappingMul(o Int[T, W]) Int[T, W] {
	v, _ := i.OverflowingMul(o)
	return v
}

// WrappingDiv returns i / o; Min / -1 yields Min. It panics if o is zero.
func (i Int[T, W]) WrappingDiv(o Int[T, W]) Int[T, W] {
	v, _ := i.OverflowingDiv(o)
	return v
}

// WrappingRem returns i % o; Min % -1 yields 0. It panics if o is zero.
func (i Int[T, W]) WrappingRem(o Int[T, W]) Int[T, W] {
	v, _ := i.OverflowingRem(o)
	return v
}

// WrappingDivEuclid is the Euclidean form of WrappingDiv.
func (i Int[T, W]) WrappingDivEuclid(o Int[T, W]) Int[T, W] {
	v, _ := i.OverflowingDivEuclid(o)
	return v
}

// WrappingRemEuclid is the Euclidean form of WrappingRem.
func (i Int[T, W]) WrappingRemEuclid(o Int[T, W]) Int[T, W] {
	v, _ := i.OverflowingRemEuclid(o)
	return v
}

// WrappingNeg returns -i wrapped to N bits; -Min is Min.
func (i Int[T, W]) WrappingNeg() Int[T, W] {
	v, _ := i.OverflowingNeg()
	return v
}

// WrappingAbs returns |i| wrapped to N bits; |Min| is Min.
func (i Int[T, W]) WrappingAbs() Int[T, W] {
	v, _ := i.OverflowingAbs()
	return v
}

// WrappingPow returns i**exp wrapped to N bits.
func (i Int[T, W]) WrappingPow(exp uint32) Int[T, W] {
	v, _ := i.OverflowingPow(exp)
	return v
}

// SaturatingAdd returns i + o clamped to [Min, Max].
func (i Int[T, W]) SaturatingAdd(o Int[T, W]) Int[T, W] {
	v, overflow := i.OverflowingAdd(o)
	if !overflow {
		return v
	}
	return i.saturate(o.raw > 0)
}

// SaturatingSub returns i - o clamped to [Min, Max].
func (i Int[T, W]) SaturatingSub(o Int[T, W]) Int[T, W] {
	v, overflow := i.OverflowingSub(o)
	if !overflow {
		return v
	}
	return i.saturate(o.raw < 0)
}

// SaturatingMul returns i * o clamped to [Min, Max].
func (i Int[T, W]) SaturatingMul(o Int[T, W]) Int[T, W] {
	v, overflow := i.OverflowingMul(o)
	if !overflow {
		return v
	}
	return i.saturate((i.raw < 0) == (o.raw < 0))
}

// SaturatingDiv returns i / o; Min / -1 yields Max. It panics if o is zero.
func (i Int[T, W]) SaturatingDiv(o Int[T, W]) Int[T, W] {
	v, overflow := i.OverflowingDiv(o)
	if !overflow {
		return v
	}
	return i.Max()
}

// SaturatingNeg returns -i; -Min yields Max.
func (i Int[T, W]) SaturatingNeg() Int[T, W] {
	v, overflow := i.OverflowingNeg()
	if !overflow {
		return v
	}
	return i.Max()
}

// SaturatingAbs returns |i|; |Min| yields Max.
func (i Int[T, W]) SaturatingAbs() Int[T, W] {
	v, overflow := i.OverflowingAbs()
	if !overflow {
		return v
	}
	return i.Max()
}

// SaturatingPow returns i**exp clamped to [Min, Max].
func (i Int[T, W]) SaturatingPow(exp uint32) Int[T, W] {
	v, overflow := i.OverflowingPow(exp)
	if !overflow {
		return v
	}
	return i.saturate(i.raw >= 0 || exp&1 == 0)
}

func (i Int[T, W]) saturate(positive bool) Int[T, W] {
	if positive {
		return i.Max()
	}
	return i.Min()
}

// AbsDiff returns |i - o| as a uint64.
func (i Int[T, W]) AbsDiff(o Int[T, W]) uint64 {
	if i.raw > o.raw {
		return uint64(int64(i.raw)) - uint64(int64(o.raw))
	}
	return uint64(int64(o.raw)) - uint64(int64(i.raw))
}
