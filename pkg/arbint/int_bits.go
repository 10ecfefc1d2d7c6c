package arbint

import (
	mbits "math/bits"

	"github.com/gregLibert/arbint/pkg/bits"
	"golang.org/x/exp/constraints"
)

// And returns i & o.
func (i Int[T, W]) And(o Int[T, W]) Int[T, W] { return Int[T, W]{raw: i.raw & o.raw} }

// Or returns i | o.
func (i Int[T, W]) Or(o Int[T, W]) Int[T, W] { return Int[T, W]{raw: i.raw | o.raw} }

// Xor returns i ^ o.
func (i Int[T, W]) Xor(o Int[T, W]) Int[T, W] { return Int[T, W]{raw: i.raw ^ o.raw} }

// AndNot returns i &^ o.
func (i Int[T, W]) AndNot(o Int[T, W]) Int[T, W] { return Int[T, W]{raw: i.raw &^ o.raw} }

// Not returns ^i, which is -i - 1.
func (i Int[T, W]) Not() Int[T, W] { return Int[T, W]{raw: ^i.raw} }

// Shl returns i << n; bit N-1 of the result becomes its sign. A shift amount
// >= N panics unless built with arbint_unchecked, where the amount is taken
// mod N.
func (i Int[T, W]) Shl(n uint) Int[T, W] {
	v, overflow := i.OverflowingShl(n)
	if overflow && overflowChecks {
		panicOverflow("shift left")
	}
	return v
}

// Shr returns the arithmetic shift i >> n, with the shift amount rules of Shl.
func (i Int[T, W]) Shr(n uint) Int[T, W] {
	v, overflow := i.OverflowingShr(n)
	if overflow && overflowChecks {
		panicOverflow("shift right")
	}
	return v
}

// WrappingShl returns i << (n mod N).
func (i Int[T, W]) WrappingShl(n uint) Int[T, W] {
	n %= uint(i.Bits())
	return Int[T, W]{raw: bits.SignExtend(i.raw<<n, i.Bits())}
}

// WrappingShr returns i >> (n mod N).
func (i Int[T, W]) WrappingShr(n uint) Int[T, W] {
	n %= uint(i.Bits())
	return Int[T, W]{raw: i.raw >> n}
}

// CheckedShl returns i << n, or false if n >= N.
func (i Int[T, W]) CheckedShl(n uint) (Int[T, W], bool) {
	return checked(i.OverflowingShl(n))
}

// CheckedShr returns i >> n, or false if n >= N.
func (i Int[T, W]) CheckedShr(n uint) (Int[T, W], bool) {
	return checked(i.OverflowingShr(n))
}

// OverflowingShl returns i << (n mod N) and whether n >= N.
func (i Int[T, W]) OverflowingShl(n uint) (Int[T, W], bool) {
	return i.WrappingShl(n), n >= uint(i.Bits())
}

// OverflowingShr returns i >> (n mod N) and whether n >= N.
func (i Int[T, W]) OverflowingShr(n uint) (Int[T, W], bool) {
	return i.WrappingShr(n), n >= uint(i.Bits())
}

// RotateLeft rotates the N-bit pattern of i left by n mod N.
func (i Int[T, W]) RotateLeft(n uint) Int[T, W] {
	w := uint(i.Bits())
	n %= w
	if n == 0 {
		return i
	}
	x := i.pattern()
	return i.fromPattern(x<<n | x>>(w-n))
}

// RotateRight rotates the N-bit pattern of i right by n mod N.
func (i Int[T, W]) RotateRight(n uint) Int[T, W] {
	w := uint(i.Bits())
	return i.RotateLeft(w - n%w)
}

// CountOnes returns the number of one bits in the N-bit pattern.
func (i Int[T, W]) CountOnes() int { return mbits.OnesCount64(i.pattern()) }

// CountZeros returns the number of zero bits in the N-bit pattern.
func (i Int[T, W]) CountZeros() int { return i.Bits() - i.CountOnes() }

// LeadingZeros counts zero bits from bit N-1 downwards.
func (i Int[T, W]) LeadingZeros() int { return i.Bits() - mbits.Len64(i.pattern()) }

// LeadingOnes counts one bits from bit N-1 downwards.
func (i Int[T, W]) LeadingOnes() int { return leadingOnes(i.pattern(), i.Bits()) }

// TrailingZeros counts zero bits from bit 0 upwards; it is N for 0.
func (i Int[T, W]) TrailingZeros() int { return trailingZeros(i.pattern(), i.Bits()) }

// TrailingOnes counts one bits from bit 0 upwards.
func (i Int[T, W]) TrailingOnes() int { return mbits.TrailingZeros64(^i.pattern()) }

// ReverseBits reverses the order of the N-bit pattern.
func (i Int[T, W]) ReverseBits() Int[T, W] {
	return i.fromPattern(reverseBits(i.pattern(), i.Bits()))
}

// SwapBytes reverses the order of the Bytes() logical bytes. It panics unless
// N is a multiple of 8.
func (i Int[T, W]) SwapBytes() Int[T, W] {
	return i.fromPattern(swapBytes(i.pattern(), i.Bits()))
}

// ToBE converts i to big endian from the native byte order.
func (i Int[T, W]) ToBE() Int[T, W] {
	requireWholeBytes(i.Bits())
	if nativeLittleEndian {
		return i.SwapBytes()
	}
	return i
}

// ToLE converts i to little endian from the native byte order.
func (i Int[T, W]) ToLE() Int[T, W] {
	requireWholeBytes(i.Bits())
	if nativeLittleEndian {
		return i
	}
	return i.SwapBytes()
}

// FromBE converts a big-endian i to the native byte order.
func (i Int[T, W]) FromBE() Int[T, W] { return i.ToBE() }

// FromLE converts a little-endian i to the native byte order.
func (i Int[T, W]) FromLE() Int[T, W] { return i.ToLE() }

// BEBytes returns the big-endian form of the N-bit pattern; unused bits of
// the first byte are zero.
func (i Int[T, W]) BEBytes() []byte { return i.AppendBE(nil) }

// LEBytes returns the little-endian form of the N-bit pattern; unused bits of
// the last byte are zero.
func (i Int[T, W]) LEBytes() []byte { return i.AppendLE(nil) }

// NEBytes returns the form in the native byte order.
func (i Int[T, W]) NEBytes() []byte {
	if nativeLittleEndian {
		return i.LEBytes()
	}
	return i.BEBytes()
}

// AppendBE appends the big-endian form of i to dst.
func (i Int[T, W]) AppendBE(dst []byte) []byte {
	return appendBE(dst, i.pattern(), i.Bytes())
}

// AppendLE appends the little-endian form of i to dst.
func (i Int[T, W]) AppendLE(dst []byte) []byte {
	return appendLE(dst, i.pattern(), i.Bytes())
}

// IntFromBEBytes decodes a big-endian form produced by BEBytes.
func IntFromBEBytes[T constraints.Signed, W Width](b []byte) (Int[T, W], error) {
	var i Int[T, W]
	if err := checkByteLength(b, i.Bytes(), i.typeName()); err != nil {
		return i, err
	}
	return intFromPattern[T, W](readBE(b))
}

// IntFromLEBytes decodes a little-endian form produced by LEBytes.
func IntFromLEBytes[T constraints.Signed, W Width](b []byte) (Int[T, W], error) {
	var i Int[T, W]
	if err := checkByteLength(b, i.Bytes(), i.typeName()); err != nil {
		return i, err
	}
	return intFromPattern[T, W](readLE(b))
}

// IntFromNEBytes decodes a form in the native byte order.
func IntFromNEBytes[T constraints.Signed, W Width](b []byte) (Int[T, W], error) {
	if nativeLittleEndian {
		return IntFromLEBytes[T, W](b)
	}
	return IntFromBEBytes[T, W](b)
}

// intFromPattern rejects set padding bits above N, then sign-extends.
func intFromPattern[T constraints.Signed, W Width](x uint64) (Int[T, W], error) {
	var i Int[T, W]
	if x > bits.Mask[uint64](i.Bits()) {
		return i, newRangeError(PosOverflow, x, i.typeName())
	}
	return i.fromPattern(x), nil
}
