// Package bits provides storage-level bit helpers shared by the bounded
// integer types. Bit positions follow the ISO 7816 convention used by the
// register layouts in this module: bit 1 is the least significant bit.
package bits

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Size returns the width of T in bits.
func Size[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// ByteCount returns the number of bytes needed to hold n bits.
func ByteCount(n int) int {
	return (n + 7) / 8
}

// Mask returns a T with the low n bits set.
// n <= 0 yields zero, n >= Size[T]() yields all ones.
func Mask[T constraints.Integer](n int) T {
	if n <= 0 {
		return 0
	}
	if n >= Size[T]() {
		return ^T(0)
	}
	return T(1)<<uint(n) - 1
}

// Bit returns a T with only the n-th bit set (1 to Size[T]()).
func Bit[T constraints.Integer](n uint) T {
	if n < 1 || n > uint(Size[T]()) {
		return 0
	}
	return T(1) << (n - 1)
}

// IsSet checks if the n-th bit is set.
func IsSet[T constraints.Integer](b T, n uint) bool {
	return b&Bit[T](n) != 0
}

// Set returns b with bit n set.
func Set[T constraints.Integer](b T, n uint) T {
	return b | Bit[T](n)
}

// SignExtend replicates bit n-1 (0-based) of x into every bit above it.
// n must be in [1, Size[T]()].
func SignExtend[T constraints.Signed](x T, n int) T {
	shift := uint(Size[T]() - n)
	return (x << shift) >> shift
}
