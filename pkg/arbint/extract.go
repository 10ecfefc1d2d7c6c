package arbint

import (
	"github.com/gregLibert/arbint/pkg/bits"
	"golang.org/x/exp/constraints"
)

// ExtractUInt reads the W.Bits()-bit field of container that starts at bit
// start (0 is the least significant bit). It panics with a *FieldError if the
// field does not lie inside the container.
//
//	sfi := arbint.ExtractUInt[uint8, arbint.W5](p2, 3)
func ExtractUInt[T constraints.Unsigned, W Width, C constraints.Integer](container C, start int) UInt[T, W] {
	return ExtractUIntFrom[T, W, C](NativeOf(container), start)
}

// TryExtractUInt is ExtractUInt returning a *FieldError instead of panicking.
func TryExtractUInt[T constraints.Unsigned, W Width, C constraints.Integer](container C, start int) (UInt[T, W], error) {
	return TryExtractUIntFrom[T, W, C](NativeOf(container), start)
}

// ExtractUIntFrom is ExtractUInt over any Integer. Bounded containers
// contribute their logical width, not their storage width.
func ExtractUIntFrom[T constraints.Unsigned, W Width, C constraints.Integer](container Integer[C], start int) UInt[T, W] {
	u, err := TryExtractUIntFrom[T, W, C](container, start)
	if err != nil {
		panic(err)
	}
	return u
}

// TryExtractUIntFrom is ExtractUIntFrom returning a *FieldError instead of
// panicking.
func TryExtractUIntFrom[T constraints.Unsigned, W Width, C constraints.Integer](container Integer[C], start int) (UInt[T, W], error) {
	var u UInt[T, W]
	field, err := extractField(container, start, u.Bits())
	if err != nil {
		return u, err
	}
	return UInt[T, W]{raw: T(field)}, nil
}

// ExtractInt reads a two's complement field and sign-extends it. It panics
// with a *FieldError if the field does not lie inside the container.
func ExtractInt[T constraints.Signed, W Width, C constraints.Integer](container C, start int) Int[T, W] {
	i, err := TryExtractIntFrom[T, W, C](NativeOf(container), start)
	if err != nil {
		panic(err)
	}
	return i
}

// TryExtractInt is ExtractInt returning a *FieldError instead of panicking.
func TryExtractInt[T constraints.Signed, W Width, C constraints.Integer](container C, start int) (Int[T, W], error) {
	return TryExtractIntFrom[T, W, C](NativeOf(container), start)
}

// TryExtractIntFrom is TryExtractInt over any Integer.
func TryExtractIntFrom[T constraints.Signed, W Width, C constraints.Integer](container Integer[C], start int) (Int[T, W], error) {
	var i Int[T, W]
	field, err := extractField(container, start, i.Bits())
	if err != nil {
		return i, err
	}
	return i.fromPattern(field), nil
}

func extractField[C constraints.Integer](container Integer[C], start, n int) (uint64, error) {
	if start < 0 || start+n > container.Bits() {
		return 0, &FieldError{Start: start, Width: n, Container: container.Bits()}
	}
	return (uint64(container.Value()) >> uint(start)) & bits.Mask[uint64](n), nil
}
