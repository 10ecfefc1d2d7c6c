/*
Package arbint implements integer value types of arbitrary bit width, backed by
Go's native integer types.

A bounded integer is parameterized by a storage type and a width marker:

	type U7 = UInt[uint8, W7]    // 7 significant bits in a uint8
	type I20 = Int[int32, W20]   // 20-bit two's complement in an int32

The width is fixed per type. Every value keeps its raw storage canonical: the
bits above the logical width are zero for UInt and a copy of the sign bit for
Int, so comparisons with == and the raw Value() never observe stray bits.

# Overflow policies

Each arithmetic operation exists in the families known from native integers:

  - Plain (Add, Sub, Mul, Shl, ...): panic on overflow. Building with
    -tags arbint_unchecked makes them wrap instead, like native Go integers.
  - Checked (CheckedAdd, ...): return (value, false) when the result does not fit.
  - Wrapping (WrappingAdd, ...): reduce the result modulo 2^N.
  - Saturating (SaturatingAdd, ...): clamp to Min or Max.
  - Overflowing (OverflowingAdd, ...): return the wrapped value and an overflow flag.

# Construction

	a := arbint.NewUInt[uint8, arbint.W7](127)
	b, err := arbint.TryNewUInt[uint8, arbint.W7](190) // err wraps ErrPosOverflow

	sum, ok := a.CheckedAdd(arbint.NewUInt[uint8, arbint.W7](3)) // ok == false
	sum = a.WrappingAdd(arbint.NewUInt[uint8, arbint.W7](3))     // 2

# Bit fields

ExtractUInt reads a field out of a wider container and checks that the field
lies inside it:

	sfi := arbint.ExtractUInt[uint8, arbint.W5](p2, 3)

Byte conversions (BEBytes, LEBytes, UIntFromBEBytes, ...) use exactly
ceil(N/8) bytes; a partially used top byte keeps its unused high bits zero.

The aliases U1..U64 and I1..I64 pick the smallest storage for each width and
are checked against it at compile time.
*/
package arbint
