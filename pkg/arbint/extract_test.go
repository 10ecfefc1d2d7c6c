package arbint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractUInt(t *testing.T) {
	got := ExtractUInt[uint8, W5](uint8(0b11110000), 3)
	if got != NewUInt[uint8, W5](0b11110) {
		t.Errorf("ExtractUInt(0b11110000, 3) = %05b; want 11110", got)
	}

	mustPanic(t, "ExtractUInt at 4", func() { ExtractUInt[uint8, W5](uint8(0b11110000), 4) })

	_, err := TryExtractUInt[uint8, W5](uint8(0b11110000), 4)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, FieldError{Start: 4, Width: 5, Container: 8}, *fe)
	assert.ErrorIs(t, err, ErrFieldOutOfRange)

	_, err = TryExtractUInt[uint8, W1](uint32(1), -1)
	assert.ErrorIs(t, err, ErrFieldOutOfRange)
}

func TestExtractMatchesShiftAndMask(t *testing.T) {
	const container = uint32(0xDEADBEEF)
	for start := 0; start+12 <= 32; start++ {
		got := ExtractUInt[uint16, W12](container, start)
		want := uint16((container >> start) & 0xFFF)
		require.Equal(t, want, got.Value(), "start %d", start)
	}
	for start := 21; start < 32; start++ {
		_, err := TryExtractUInt[uint16, W12](container, start)
		require.ErrorIs(t, err, ErrFieldOutOfRange, "start %d", start)
	}
}

func TestExtractFromBoundedContainer(t *testing.T) {
	// A u12 container offers 12 bits even though it is stored in a uint16.
	c := NewUInt[uint16, W12](0xABC)

	got := ExtractUIntFrom[uint8, W4, uint16](c, 8)
	assert.Equal(t, uint8(0xA), got.Value())

	_, err := TryExtractUIntFrom[uint8, W4, uint16](c, 9)
	assert.ErrorIs(t, err, ErrFieldOutOfRange)

	// Negative containers expose their two's complement pattern.
	s := NewInt[int16, W12](-2)
	low, err := TryExtractIntFrom[int8, W4, int16](s, 0)
	require.NoError(t, err)
	assert.Equal(t, int8(-2), low.Value())

	u, err := TryExtractUIntFrom[uint8, W4, int16](s, 8)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xF), u.Value())
}

func TestExtractInt(t *testing.T) {
	// Bits 6..3 of 0b0_1011_000 are 1011, which is -5 as a 4-bit value.
	got := ExtractInt[int8, W4](uint8(0b01011000), 3)
	assert.Equal(t, int8(-5), got.Value())

	got2, err := TryExtractInt[int32, W20](uint64(0x7FFFF)<<10, 10)
	require.NoError(t, err)
	assert.Equal(t, int32(1<<19-1), got2.Value())

	mustPanic(t, "ExtractInt past the end", func() { ExtractInt[int8, W4](uint8(0), 5) })
	_, err = TryExtractInt[int8, W4](uint8(0), 5)
	assert.True(t, errors.Is(err, ErrFieldOutOfRange))
}

func TestNativeContract(t *testing.T) {
	n := NativeOf(int16(-3))
	assert.Equal(t, int16(-3), n.Value())
	assert.Equal(t, 16, n.Bits())
	assert.Equal(t, 2, n.Bytes())
	assert.True(t, n.Signed())
	assert.False(t, NativeOf(uint8(3)).Signed())

	values := []Integer[uint8]{NativeOf(uint8(200)), NewUInt[uint8, W7](100), NewUInt[uint8, W3](5)}
	widths := make([]int, 0, len(values))
	for _, v := range values {
		widths = append(widths, v.Bits())
	}
	assert.Equal(t, []int{8, 7, 3}, widths)
}
