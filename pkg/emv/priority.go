package emv

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/gregLibert/arbint/pkg/arbint"
)

// PriorityIndicator is the Application Priority Indicator (tag '87').
//
//	b8     application cannot be selected without cardholder confirmation (U1)
//	b7-b5  RFU
//	b4-b1  priority, 1 is the highest and 0 means no priority (U4)
type PriorityIndicator struct {
	Confirmation arbint.U1
	Priority     arbint.U4
	Present      bool
}

// NewPriorityIndicator builds a present indicator from its fields.
func NewPriorityIndicator(priority uint8, confirmation bool) (PriorityIndicator, error) {
	p, err := arbint.TryNewUInt[uint8, arbint.W4](priority)
	if err != nil {
		return PriorityIndicator{}, fmt.Errorf("emv: application priority: %w", err)
	}
	return PriorityIndicator{
		Confirmation: arbint.UIntFromBool[uint8](confirmation),
		Priority:     p,
		Present:      true,
	}, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. RFU bits are ignored.
func (p *PriorityIndicator) UnmarshalBinary(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("emv: application priority indicator of %d bytes", len(data))
	}
	*p = PriorityIndicator{
		Confirmation: arbint.ExtractUInt[uint8, arbint.W1](data[0], 7),
		Priority:     arbint.ExtractUInt[uint8, arbint.W4](data[0], 0),
		Present:      true,
	}
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. An absent indicator
// encodes to no bytes.
func (p PriorityIndicator) MarshalBinary() ([]byte, error) {
	if !p.Present {
		return nil, nil
	}
	return []byte{p.Confirmation.Value()<<7 | p.Priority.Value()}, nil
}

// RequiresConfirmation reports whether the cardholder must confirm the
// selection.
func (p PriorityIndicator) RequiresConfirmation() bool {
	return arbint.UIntToBool(p.Confirmation)
}

// String returns the priority in decimal.
func (p PriorityIndicator) String() string {
	return p.Priority.String()
}

// rank orders indicators: priority 1 first, 15 last, then no priority.
func (p PriorityIndicator) rank() int {
	if !p.Present || p.Priority.IsZero() {
		return 16
	}
	return int(p.Priority.Value())
}

// SortByPriority orders apps by their priority indicator, keeping the card
// order between equal priorities.
func SortByPriority(apps []ApplicationTemplate) {
	slices.SortStableFunc(apps, func(a, b ApplicationTemplate) int {
		return cmp.Compare(a.ApplicationPriorityIndicator.rank(), b.ApplicationPriorityIndicator.rank())
	})
}
