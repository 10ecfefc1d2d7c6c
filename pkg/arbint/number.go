package arbint

import (
	"fmt"

	"github.com/gregLibert/arbint/pkg/bits"
	"golang.org/x/exp/constraints"
)

// Integer is the contract shared by UInt, Int and Native: generic code can
// read the raw storage value and the logical layout of any of them.
type Integer[T constraints.Integer] interface {
	// Value returns the raw storage value. It is always within the type's range.
	Value() T
	// Bits returns the logical width N.
	Bits() int
	// Bytes returns ceil(N/8).
	Bytes() int
	// Signed reports whether the value uses two's complement.
	Signed() bool
}

var (
	_ Integer[uint8] = U7{}
	_ Integer[int32] = I20{}
	_ Integer[uint8] = Native[uint8]{}
)

// Native adapts a plain Go integer to the Integer contract. Its logical width
// is the full width of T.
type Native[T constraints.Integer] struct {
	v T
}

// NativeOf wraps v.
func NativeOf[T constraints.Integer](v T) Native[T] {
	return Native[T]{v: v}
}

func (n Native[T]) Value() T { return n.v }
func (n Native[T]) Bits() int { return bits.Size[T]() }
func (n Native[T]) Bytes() int { return bits.Size[T]() / 8 }
func (n Native[T]) Signed() bool { return ^T(0) < 0 }

// widthOf returns the logical width of W and panics when it does not fit the
// storage type T. Aliases are validated at compile time; this catches
// hand-written instantiations such as UInt[uint8, W9].
func widthOf[T constraints.Integer, W Width]() int {
	var w W
	n := w.Bits()
	if n < 1 || n > bits.Size[T]() {
		badWidth(n, bits.Size[T]())
	}
	return n
}

func badWidth(n, size int) {
	panic(fmt.Sprintf("arbint: width %d does not fit %d-bit storage", n, size))
}

func panicOverflow(op string) {
	panic("arbint: attempt to " + op + " with overflow")
}
