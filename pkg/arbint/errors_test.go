package arbint

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKind(t *testing.T) {
	tests := []struct {
		kind Kind
		name string
		err  error
	}{
		{PosOverflow, "PosOverflow", ErrPosOverflow},
		{NegOverflow, "NegOverflow", ErrNegOverflow},
		{Empty, "Empty", ErrEmpty},
		{InvalidDigit, "InvalidDigit", ErrInvalidDigit},
		{Zero, "Zero", ErrZero},
		{Unknown, "Unknown", ErrUnknown},
		{Kind(42), "Kind(42)", ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String() = %q; want %q", got, tt.name)
			}
			if got := tt.kind.Err(); got != tt.err {
				t.Errorf("Err() = %v; want %v", got, tt.err)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	_, rangeErr := TryNewInt[int8, W5](-17)
	_, fieldErr := TryExtractUInt[uint8, W5](uint8(0), 4)
	_, lengthErr := UIntFromBEBytes[uint32, W20]([]byte{1})

	got := []string{rangeErr.Error(), fieldErr.Error(), lengthErr.Error()}
	want := []string{
		"arbint: -17 out of range for i5: number too small to fit in target type",
		"arbint: 5-bit field at bit 4 exceeds 8-bit container",
		"arbint: u20 takes 3 bytes, got 1: byte length does not match the logical width",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestKindOf(t *testing.T) {
	_, err := TryNewUInt[uint8, W3](8)
	wrapped := fmt.Errorf("decoding header: %w", err)

	if kind, ok := KindOf(wrapped); !ok || kind != PosOverflow {
		t.Errorf("KindOf(wrapped) = (%v, %t)", kind, ok)
	}
	if _, ok := KindOf(errors.New("other")); ok {
		t.Error("KindOf should not classify foreign errors")
	}
	if _, ok := KindOf(nil); ok {
		t.Error("KindOf(nil) should report false")
	}

	_, err = ParseInt[int8, W5]("x", 10)
	if kind, _ := KindOf(err); kind != InvalidDigit {
		t.Errorf("KindOf(parse error) = %v", kind)
	}
}
