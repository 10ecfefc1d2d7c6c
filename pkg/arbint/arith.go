package arbint

import (
	"math"
	mbits "math/bits"
)

// powUint64 returns base**exp modulo 2^64 and whether the exact result
// exceeds limit.
func powUint64(base uint64, exp uint32, limit uint64) (uint64, bool) {
	if exp == 0 {
		return 1, limit == 0
	}
	acc := uint64(1)
	overflow := false
	for exp > 0 {
		if exp&1 == 1 {
			hi, lo := mbits.Mul64(acc, base)
			overflow = overflow || hi != 0 || lo > limit
			acc = lo
		}
		exp >>= 1
		// A squared base is only computed when a higher exponent bit will
		// multiply it into acc, so its overflow is the result's overflow.
		if exp > 0 {
			hi, lo := mbits.Mul64(base, base)
			overflow = overflow || hi != 0 || lo > limit
			base = lo
		}
	}
	return acc, overflow
}

// mulInt64 returns a*b modulo 2^64 and whether the product overflowed int64.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	p := a * b
	overflow := p/b != a ||
		(a == -1 && b == math.MinInt64) ||
		(b == -1 && a == math.MinInt64)
	return p, overflow
}

// magnitude returns |v| as a uint64; math.MinInt64 maps to 1<<63.
func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
