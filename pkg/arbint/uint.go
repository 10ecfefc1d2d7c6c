package arbint

import (
	"fmt"
	"strconv"

	"github.com/gregLibert/arbint/pkg/bits"
	"golang.org/x/exp/constraints"
)

// UInt is an unsigned integer of W.Bits() bits stored in T.
//
// The zero value is 0. The bits of the storage above the logical width are
// always zero.
type UInt[T constraints.Unsigned, W Width] struct {
	raw T
}

// NewUInt returns raw as a UInt. It panics with a *RangeError if raw exceeds
// the maximum of the type.
func NewUInt[T constraints.Unsigned, W Width](raw T) UInt[T, W] {
	u, err := TryNewUInt[T, W](raw)
	if err != nil {
		panic(err)
	}
	return u
}

// TryNewUInt returns raw as a UInt, or a PosOverflow *RangeError.
func TryNewUInt[T constraints.Unsigned, W Width](raw T) (UInt[T, W], error) {
	var u UInt[T, W]
	if raw > u.Mask() {
		return u, newRangeError(PosOverflow, raw, u.typeName())
	}
	return UInt[T, W]{raw: raw}, nil
}

// NewUIntUnchecked returns raw as a UInt without validation.
//
// Precondition: raw <= Max().Value(). Every other operation relies on it;
// violating it makes their results meaningless.
func NewUIntUnchecked[T constraints.Unsigned, W Width](raw T) UInt[T, W] {
	return UInt[T, W]{raw: raw}
}

// NewUIntWrapping keeps the low N bits of raw.
func NewUIntWrapping[T constraints.Unsigned, W Width](raw T) UInt[T, W] {
	var u UInt[T, W]
	return UInt[T, W]{raw: raw & u.Mask()}
}

// NewUIntSaturating clamps raw to Max. The bool reports whether clamping
// occurred.
func NewUIntSaturating[T constraints.Unsigned, W Width](raw T) (UInt[T, W], bool) {
	var u UInt[T, W]
	if raw > u.Mask() {
		return u.Max(), true
	}
	return UInt[T, W]{raw: raw}, false
}

// NewUIntOverflowing keeps the low N bits of raw and reports whether any
// higher bit was set.
func NewUIntOverflowing[T constraints.Unsigned, W Width](raw T) (UInt[T, W], bool) {
	var u UInt[T, W]
	mask := u.Mask()
	return UInt[T, W]{raw: raw & mask}, raw > mask
}

// UIntFromBool converts b to a 1-bit value.
func UIntFromBool[T constraints.Unsigned](b bool) UInt[T, W1] {
	if b {
		return UInt[T, W1]{raw: 1}
	}
	return UInt[T, W1]{}
}

// UIntToBool converts a 1-bit value to a bool.
func UIntToBool[T constraints.Unsigned](u UInt[T, W1]) bool {
	switch u.raw {
	case 0:
		return false
	case 1:
		return true
	}
	panic("arbint: unreachable 1-bit value " + strconv.FormatUint(uint64(u.raw), 10))
}

// Value returns the raw storage value.
func (u UInt[T, W]) Value() T { return u.raw }

// Uint64 returns the value as a uint64.
func (u UInt[T, W]) Uint64() uint64 { return uint64(u.raw) }

// Bits returns the logical width N.
func (u UInt[T, W]) Bits() int { return widthOf[T, W]() }

// Bytes returns the number of bytes of the binary forms, ceil(N/8).
func (u UInt[T, W]) Bytes() int { return bits.ByteCount(u.Bits()) }

// Signed reports false.
func (u UInt[T, W]) Signed() bool { return false }

// Mask returns the pattern of the low N bits.
func (u UInt[T, W]) Mask() T { return bits.Mask[T](u.Bits()) }

// Min returns 0.
func (u UInt[T, W]) Min() UInt[T, W] { return UInt[T, W]{} }

// Max returns 2^N - 1.
func (u UInt[T, W]) Max() UInt[T, W] { return UInt[T, W]{raw: u.Mask()} }

// Zero returns 0.
func (u UInt[T, W]) Zero() UInt[T, W] { return UInt[T, W]{} }

// One returns 1.
func (u UInt[T, W]) One() UInt[T, W] { return UInt[T, W]{raw: 1} }

// IsZero reports whether u is 0.
func (u UInt[T, W]) IsZero() bool { return u.raw == 0 }

// Cmp returns -1, 0 or +1 depending on whether u is less than, equal to or
// greater than o.
func (u UInt[T, W]) Cmp(o UInt[T, W]) int {
	switch {
	case u.raw < o.raw:
		return -1
	case u.raw > o.raw:
		return 1
	}
	return 0
}

// Less reports whether u < o.
func (u UInt[T, W]) Less(o UInt[T, W]) bool { return u.raw < o.raw }

func (u UInt[T, W]) typeName() string {
	return "u" + strconv.Itoa(u.Bits())
}

// String returns the decimal form of u.
func (u UInt[T, W]) String() string {
	return strconv.FormatUint(uint64(u.raw), 10)
}

// Format applies integer verbs (%d, %x, %b, %o, ...) to the raw value; %v and
// %s print the decimal form.
func (u UInt[T, W]) Format(f fmt.State, verb rune) {
	if verb == 'v' || verb == 's' {
		verb = 'd'
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), u.raw)
}

// MarshalText implements encoding.TextMarshaler.
func (u UInt[T, W]) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(u.raw), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing base 10.
func (u *UInt[T, W]) UnmarshalText(text []byte) error {
	v, err := ParseUInt[T, W](string(text), 10)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the big-endian form.
func (u UInt[T, W]) MarshalBinary() ([]byte, error) {
	return u.BEBytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler with the big-endian
// form.
func (u *UInt[T, W]) UnmarshalBinary(data []byte) error {
	v, err := UIntFromBEBytes[T, W](data)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
