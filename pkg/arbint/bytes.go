package arbint

import (
	"encoding/binary"
	"fmt"
	mbits "math/bits"
)

var nativeLittleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// The helpers below work on the low n bits (or n bytes) of a uint64 bit
// pattern, which is how both families hand their raw value over.

func appendBE(dst []byte, x uint64, n int) []byte {
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(x>>(8*uint(i))))
	}
	return dst
}

func appendLE(dst []byte, x uint64, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, byte(x>>(8*uint(i))))
	}
	return dst
}

func readBE(b []byte) uint64 {
	var x uint64
	for _, c := range b {
		x = x<<8 | uint64(c)
	}
	return x
}

func readLE(b []byte) uint64 {
	var x uint64
	for i := len(b) - 1; i >= 0; i-- {
		x = x<<8 | uint64(b[i])
	}
	return x
}

func checkByteLength(b []byte, want int, typ string) error {
	if len(b) != want {
		return fmt.Errorf("arbint: %s takes %d bytes, got %d: %w", typ, want, len(b), ErrByteLength)
	}
	return nil
}

func requireWholeBytes(n int) {
	if n%8 != 0 {
		panic(fmt.Sprintf("arbint: byte order operation on %d-bit value, width must be a multiple of 8", n))
	}
}

func swapBytes(x uint64, n int) uint64 {
	requireWholeBytes(n)
	return mbits.ReverseBytes64(x) >> (64 - uint(n))
}

func reverseBits(x uint64, n int) uint64 {
	return mbits.Reverse64(x) >> (64 - uint(n))
}

func leadingOnes(x uint64, n int) int {
	return mbits.LeadingZeros64(^(x << (64 - uint(n))))
}

func trailingZeros(x uint64, n int) int {
	if x == 0 {
		return n
	}
	return mbits.TrailingZeros64(x)
}
