package emv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregLibert/arbint/pkg/arbint"
)

func TestPriorityIndicator(t *testing.T) {
	tests := []struct {
		raw          byte
		priority     uint8
		confirmation bool
		encoded      byte
	}{
		{0x01, 1, false, 0x01},
		{0x8F, 15, true, 0x8F},
		{0x80, 0, true, 0x80},
		{0x72, 2, false, 0x02}, // RFU bits dropped
	}

	for _, tt := range tests {
		var p PriorityIndicator
		require.NoError(t, p.UnmarshalBinary([]byte{tt.raw}))

		assert.True(t, p.Present)
		assert.Equal(t, tt.priority, p.Priority.Value(), "raw %02X", tt.raw)
		assert.Equal(t, tt.confirmation, p.RequiresConfirmation(), "raw %02X", tt.raw)

		data, err := p.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, []byte{tt.encoded}, data)
	}
}

func TestNewPriorityIndicator(t *testing.T) {
	p, err := NewPriorityIndicator(3, true)
	require.NoError(t, err)
	data, _ := p.MarshalBinary()
	assert.Equal(t, []byte{0x83}, data)
	assert.Equal(t, "3", p.String())

	_, err = NewPriorityIndicator(16, false)
	require.ErrorIs(t, err, arbint.ErrPosOverflow)

	var absent PriorityIndicator
	data, err = absent.MarshalBinary()
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestSortByPriority(t *testing.T) {
	app := func(label string, raw ...byte) ApplicationTemplate {
		a := ApplicationTemplate{ApplicationLabel: []byte(label)}
		if len(raw) > 0 {
			require.NoError(t, a.ApplicationPriorityIndicator.UnmarshalBinary(raw))
		}
		return a
	}

	apps := []ApplicationTemplate{
		app("none"),
		app("second", 0x02),
		app("unset", 0x00),
		app("first", 0x81),
		app("also second", 0x02),
	}
	SortByPriority(apps)

	var labels []string
	for _, a := range apps {
		labels = append(labels, string(a.ApplicationLabel))
	}
	assert.Equal(t, []string{"first", "second", "also second", "none", "unset"}, labels)
}
