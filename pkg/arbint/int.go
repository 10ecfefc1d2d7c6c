package arbint

import (
	"fmt"
	"strconv"

	"github.com/gregLibert/arbint/pkg/bits"
	"golang.org/x/exp/constraints"
)

// Int is a two's complement integer of W.Bits() bits stored in T.
//
// The storage bits above the logical width always replicate bit N-1, so a
// negative Int holds the same native value as the plain integer it denotes.
type Int[T constraints.Signed, W Width] struct {
	raw T
}

// NewInt returns raw as an Int. It panics with a *RangeError if raw lies
// outside [Min, Max].
func NewInt[T constraints.Signed, W Width](raw T) Int[T, W] {
	i, err := TryNewInt[T, W](raw)
	if err != nil {
		panic(err)
	}
	return i
}

// TryNewInt returns raw as an Int, or a PosOverflow or NegOverflow
// *RangeError.
func TryNewInt[T constraints.Signed, W Width](raw T) (Int[T, W], error) {
	var i Int[T, W]
	switch {
	case raw > i.Max().raw:
		return i, newRangeError(PosOverflow, raw, i.typeName())
	case raw < i.Min().raw:
		return i, newRangeError(NegOverflow, raw, i.typeName())
	}
	return Int[T, W]{raw: raw}, nil
}

// NewIntUnchecked returns raw as an Int without validation.
//
// Precondition: Min().Value() <= raw <= Max().Value().
func NewIntUnchecked[T constraints.Signed, W Width](raw T) Int[T, W] {
	return Int[T, W]{raw: raw}
}

// NewIntWrapping keeps the low N bits of raw and sign-extends bit N-1.
func NewIntWrapping[T constraints.Signed, W Width](raw T) Int[T, W] {
	var i Int[T, W]
	return Int[T, W]{raw: bits.SignExtend(raw, i.Bits())}
}

// NewIntSaturating clamps raw to [Min, Max]. The bool reports whether
// clamping occurred.
func NewIntSaturating[T constraints.Signed, W Width](raw T) (Int[T, W], bool) {
	var i Int[T, W]
	switch {
	case raw > i.Max().raw:
		return i.Max(), true
	case raw < i.Min().raw:
		return i.Min(), true
	}
	return Int[T, W]{raw: raw}, false
}

// NewIntOverflowing wraps raw like NewIntWrapping and reports whether the
// result differs from raw.
func NewIntOverflowing[T constraints.Signed, W Width](raw T) (Int[T, W], bool) {
	v := NewIntWrapping[T, W](raw)
	return v, v.raw != raw
}

// Value returns the raw storage value.
func (i Int[T, W]) Value() T { return i.raw }

// Int64 returns the value as an int64.
func (i Int[T, W]) Int64() int64 { return int64(i.raw) }

// Bits returns the logical width N.
func (i Int[T, W]) Bits() int { return widthOf[T, W]() }

// Bytes returns ceil(N/8).
func (i Int[T, W]) Bytes() int { return bits.ByteCount(i.Bits()) }

// Signed reports true.
func (i Int[T, W]) Signed() bool { return true }

// Mask returns the pattern of the low N bits.
func (i Int[T, W]) Mask() T { return bits.Mask[T](i.Bits()) }

// Max returns 2^(N-1) - 1.
func (i Int[T, W]) Max() Int[T, W] {
	size := bits.Size[T]()
	return Int[T, W]{raw: bits.Mask[T](size-1) >> uint(size-i.Bits())}
}

// Min returns -2^(N-1).
func (i Int[T, W]) Min() Int[T, W] { return Int[T, W]{raw: ^i.Max().raw} }

// Zero returns 0.
func (i Int[T, W]) Zero() Int[T, W] { return Int[T, W]{} }

// One returns 1. For N == 1 the range is [-1, 0] and One panics.
func (i Int[T, W]) One() Int[T, W] { return NewInt[T, W](1) }

// IsZero reports whether i is 0.
func (i Int[T, W]) IsZero() bool { return i.raw == 0 }

// IsNegative reports whether i < 0.
func (i Int[T, W]) IsNegative() bool { return i.raw < 0 }

// IsPositive reports whether i > 0.
func (i Int[T, W]) IsPositive() bool { return i.raw > 0 }

// Signum returns -1, 0 or +1 following the sign of i.
func (i Int[T, W]) Signum() int {
	switch {
	case i.raw < 0:
		return -1
	case i.raw > 0:
		return 1
	}
	return 0
}

// Cmp returns -1, 0 or +1 depending on whether i is less than, equal to or
// greater than o.
func (i Int[T, W]) Cmp(o Int[T, W]) int {
	switch {
	case i.raw < o.raw:
		return -1
	case i.raw > o.raw:
		return 1
	}
	return 0
}

// Less reports whether i < o.
func (i Int[T, W]) Less(o Int[T, W]) bool { return i.raw < o.raw }

func (i Int[T, W]) typeName() string {
	return "i" + strconv.Itoa(i.Bits())
}

// pattern returns the low N bits of i as an unsigned bit pattern.
func (i Int[T, W]) pattern() uint64 {
	return uint64(i.raw) & bits.Mask[uint64](i.Bits())
}

func (i Int[T, W]) fromPattern(x uint64) Int[T, W] {
	return Int[T, W]{raw: bits.SignExtend(T(x), i.Bits())}
}

// String returns the decimal form of i.
func (i Int[T, W]) String() string {
	return strconv.FormatInt(int64(i.raw), 10)
}

// Format applies integer verbs to the raw value; %v and %s print the decimal
// form.
func (i Int[T, W]) Format(f fmt.State, verb rune) {
	if verb == 'v' || verb == 's' {
		verb = 'd'
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), i.raw)
}

// MarshalText implements encoding.TextMarshaler.
func (i Int[T, W]) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(i.raw), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing base 10.
func (i *Int[T, W]) UnmarshalText(text []byte) error {
	v, err := ParseInt[T, W](string(text), 10)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the big-endian form.
func (i Int[T, W]) MarshalBinary() ([]byte, error) {
	return i.BEBytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler with the big-endian
// form.
func (i *Int[T, W]) UnmarshalBinary(data []byte) error {
	v, err := IntFromBEBytes[T, W](data)
	if err != nil {
		return err
	}
	*i = v
	return nil
}
