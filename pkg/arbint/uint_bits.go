package arbint

import (
	mbits "math/bits"

	"golang.org/x/exp/constraints"
)

// And returns u & o.
func (u UInt[T, W]) And(o UInt[T, W]) UInt[T, W] { return UInt[T, W]{raw: u.raw & o.raw} }

// Or returns u | o.
func (u UInt[T, W]) Or(o UInt[T, W]) UInt[T, W] { return UInt[T, W]{raw: u.raw | o.raw} }

// Xor returns u ^ o.
func (u UInt[T, W]) Xor(o UInt[T, W]) UInt[T, W] { return UInt[T, W]{raw: u.raw ^ o.raw} }

// AndNot returns u &^ o.
func (u UInt[T, W]) AndNot(o UInt[T, W]) UInt[T, W] { return UInt[T, W]{raw: u.raw &^ o.raw} }

// Not complements the low N bits.
func (u UInt[T, W]) Not() UInt[T, W] { return UInt[T, W]{raw: ^u.raw & u.Mask()} }

// Shl returns u << n, discarding bits shifted past N. A shift amount >= N
// panics unless built with arbint_unchecked, where the amount is taken mod N.
func (u UInt[T, W]) Shl(n uint) UInt[T, W] {
	v, overflow := u.OverflowingShl(n)
	if overflow && overflowChecks {
		panicOverflow("shift left")
	}
	return v
}

// Shr returns u >> n, with the shift amount rules of Shl.
func (u UInt[T, W]) Shr(n uint) UInt[T, W] {
	v, overflow := u.OverflowingShr(n)
	if overflow && overflowChecks {
		panicOverflow("shift right")
	}
	return v
}

// WrappingShl returns u << (n mod N).
func (u UInt[T, W]) WrappingShl(n uint) UInt[T, W] {
	n %= uint(u.Bits())
	return UInt[T, W]{raw: (u.raw << n) & u.Mask()}
}

// WrappingShr returns u >> (n mod N).
func (u UInt[T, W]) WrappingShr(n uint) UInt[T, W] {
	n %= uint(u.Bits())
	return UInt[T, W]{raw: u.raw >> n}
}

// CheckedShl returns u << n, or false if n >= N.
func (u UInt[T, W]) CheckedShl(n uint) (UInt[T, W], bool) {
	return checked(u.OverflowingShl(n))
}

// CheckedShr returns u >> n, or false if n >= N.
func (u UInt[T, W]) CheckedShr(n uint) (UInt[T, W], bool) {
	return checked(u.OverflowingShr(n))
}

// OverflowingShl returns u << (n mod N) and whether n >= N.
func (u UInt[T, W]) OverflowingShl(n uint) (UInt[T, W], bool) {
	return u.WrappingShl(n), n >= uint(u.Bits())
}

// OverflowingShr returns u >> (n mod N) and whether n >= N.
func (u UInt[T, W]) OverflowingShr(n uint) (UInt[T, W], bool) {
	return u.WrappingShr(n), n >= uint(u.Bits())
}

// RotateLeft rotates the low N bits left by n mod N.
func (u UInt[T, W]) RotateLeft(n uint) UInt[T, W] {
	w := uint(u.Bits())
	n %= w
	if n == 0 {
		return u
	}
	return UInt[T, W]{raw: (u.raw<<n | u.raw>>(w-n)) & u.Mask()}
}

// RotateRight rotates the low N bits right by n mod N.
func (u UInt[T, W]) RotateRight(n uint) UInt[T, W] {
	w := uint(u.Bits())
	return u.RotateLeft(w - n%w)
}

// CountOnes returns the number of one bits.
func (u UInt[T, W]) CountOnes() int { return mbits.OnesCount64(uint64(u.raw)) }

// CountZeros returns the number of zero bits within the logical width.
func (u UInt[T, W]) CountZeros() int { return u.Bits() - u.CountOnes() }

// LeadingZeros counts zero bits from bit N-1 downwards.
func (u UInt[T, W]) LeadingZeros() int { return u.Bits() - mbits.Len64(uint64(u.raw)) }

// LeadingOnes counts one bits from bit N-1 downwards.
func (u UInt[T, W]) LeadingOnes() int { return leadingOnes(uint64(u.raw), u.Bits()) }

// TrailingZeros counts zero bits from bit 0 upwards; it is N for 0.
func (u UInt[T, W]) TrailingZeros() int { return trailingZeros(uint64(u.raw), u.Bits()) }

// TrailingOnes counts one bits from bit 0 upwards.
func (u UInt[T, W]) TrailingOnes() int { return mbits.TrailingZeros64(^uint64(u.raw)) }

// ReverseBits reverses the order of the low N bits.
func (u UInt[T, W]) ReverseBits() UInt[T, W] {
	return UInt[T, W]{raw: T(reverseBits(uint64(u.raw), u.Bits()))}
}

// SwapBytes reverses the order of the Bytes() logical bytes. It panics unless
// N is a multiple of 8.
func (u UInt[T, W]) SwapBytes() UInt[T, W] {
	return UInt[T, W]{raw: T(swapBytes(uint64(u.raw), u.Bits()))}
}

// ToBE converts u to big endian from the native byte order. Like SwapBytes it
// requires N to be a multiple of 8.
func (u UInt[T, W]) ToBE() UInt[T, W] {
	requireWholeBytes(u.Bits())
	if nativeLittleEndian {
		return u.SwapBytes()
	}
	return u
}

// ToLE converts u to little endian from the native byte order. Like SwapBytes
// it requires N to be a multiple of 8.
func (u UInt[T, W]) ToLE() UInt[T, W] {
	requireWholeBytes(u.Bits())
	if nativeLittleEndian {
		return u
	}
	return u.SwapBytes()
}

// FromBE converts a big-endian u to the native byte order.
func (u UInt[T, W]) FromBE() UInt[T, W] { return u.ToBE() }

// FromLE converts a little-endian u to the native byte order.
func (u UInt[T, W]) FromLE() UInt[T, W] { return u.ToLE() }

// BEBytes returns the Bytes()-byte big-endian form; the partial byte, if any,
// comes first.
func (u UInt[T, W]) BEBytes() []byte { return u.AppendBE(nil) }

// LEBytes returns the Bytes()-byte little-endian form; the partial byte, if
// any, comes last.
func (u UInt[T, W]) LEBytes() []byte { return u.AppendLE(nil) }

// NEBytes returns the form in the native byte order.
func (u UInt[T, W]) NEBytes() []byte {
	if nativeLittleEndian {
		return u.LEBytes()
	}
	return u.BEBytes()
}

// AppendBE appends the big-endian form of u to dst.
func (u UInt[T, W]) AppendBE(dst []byte) []byte {
	return appendBE(dst, uint64(u.raw), u.Bytes())
}

// AppendLE appends the little-endian form of u to dst.
func (u UInt[T, W]) AppendLE(dst []byte) []byte {
	return appendLE(dst, uint64(u.raw), u.Bytes())
}

// UIntFromBEBytes decodes a big-endian form produced by BEBytes.
func UIntFromBEBytes[T constraints.Unsigned, W Width](b []byte) (UInt[T, W], error) {
	var u UInt[T, W]
	if err := checkByteLength(b, u.Bytes(), u.typeName()); err != nil {
		return u, err
	}
	return uintFromPattern[T, W](readBE(b))
}

// UIntFromLEBytes decodes a little-endian form produced by LEBytes.
func UIntFromLEBytes[T constraints.Unsigned, W Width](b []byte) (UInt[T, W], error) {
	var u UInt[T, W]
	if err := checkByteLength(b, u.Bytes(), u.typeName()); err != nil {
		return u, err
	}
	return uintFromPattern[T, W](readLE(b))
}

// UIntFromNEBytes decodes a form in the native byte order.
func UIntFromNEBytes[T constraints.Unsigned, W Width](b []byte) (UInt[T, W], error) {
	if nativeLittleEndian {
		return UIntFromLEBytes[T, W](b)
	}
	return UIntFromBEBytes[T, W](b)
}

func uintFromPattern[T constraints.Unsigned, W Width](x uint64) (UInt[T, W], error) {
	var u UInt[T, W]
	if x > uint64(u.Mask()) {
		return u, newRangeError(PosOverflow, x, u.typeName())
	}
	return UInt[T, W]{raw: T(x)}, nil
}
