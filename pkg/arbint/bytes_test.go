package arbint

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestByteOrder(t *testing.T) {
	tests := []struct {
		name string
		be   []byte
		le   []byte
		got  func() ([]byte, []byte)
	}{
		{
			name: "u40",
			be:   []byte{0x12, 0x34, 0x56, 0x78, 0x9A},
			le:   []byte{0x9A, 0x78, 0x56, 0x34, 0x12},
			got: func() ([]byte, []byte) {
				v := NewUInt[uint64, W40](0x123456789A)
				return v.BEBytes(), v.LEBytes()
			},
		},
		{
			name: "u20 partial top byte",
			be:   []byte{0x0A, 0xBC, 0xDE},
			le:   []byte{0xDE, 0xBC, 0x0A},
			got: func() ([]byte, []byte) {
				v := NewUInt[uint32, W20](0xABCDE)
				return v.BEBytes(), v.LEBytes()
			},
		},
		{
			name: "u1",
			be:   []byte{0x01},
			le:   []byte{0x01},
			got: func() ([]byte, []byte) {
				v := NewUInt[uint8, W1](1)
				return v.BEBytes(), v.LEBytes()
			},
		},
		{
			name: "i20 minus one",
			be:   []byte{0x0F, 0xFF, 0xFF},
			le:   []byte{0xFF, 0xFF, 0x0F},
			got: func() ([]byte, []byte) {
				v := NewInt[int32, W20](-1)
				return v.BEBytes(), v.LEBytes()
			},
		},
		{
			name: "i12 min",
			be:   []byte{0x08, 0x00},
			le:   []byte{0x00, 0x08},
			got: func() ([]byte, []byte) {
				v := I12{}.Min()
				return v.BEBytes(), v.LEBytes()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be, le := tt.got()
			if diff := cmp.Diff(tt.be, be); diff != "" {
				t.Errorf("big endian mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.le, le); diff != "" {
				t.Errorf("little endian mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromBytesErrors(t *testing.T) {
	_, err := UIntFromBEBytes[uint32, W20]([]byte{0x1A, 0xBC, 0xDE})
	if !errors.Is(err, ErrPosOverflow) {
		t.Errorf("stray padding bit: error = %v; want ErrPosOverflow", err)
	}

	_, err = UIntFromLEBytes[uint32, W20]([]byte{0xDE, 0xBC})
	if !errors.Is(err, ErrByteLength) {
		t.Errorf("short input: error = %v; want ErrByteLength", err)
	}

	_, err = IntFromBEBytes[int32, W20]([]byte{0x1F, 0xFF, 0xFE})
	if !errors.Is(err, ErrPosOverflow) {
		t.Errorf("signed stray padding bit: error = %v; want ErrPosOverflow", err)
	}

	_, err = IntFromNEBytes[int16, W12]([]byte{1, 2, 3})
	if !errors.Is(err, ErrByteLength) {
		t.Errorf("long input: error = %v; want ErrByteLength", err)
	}
}

func TestFromBytesSignExtends(t *testing.T) {
	got, err := IntFromBEBytes[int32, W20]([]byte{0x0F, 0xFF, 0xFE})
	if err != nil {
		t.Fatal(err)
	}
	if got.Value() != -2 {
		t.Errorf("IntFromBEBytes = %d; want -2", got.Value())
	}

	got, err = IntFromLEBytes[int32, W20]([]byte{0x00, 0x00, 0x08})
	if err != nil {
		t.Fatal(err)
	}
	if got != (I20{}).Min() {
		t.Errorf("IntFromLEBytes = %d; want min", got.Value())
	}
}

func TestBytesRoundTripU12(t *testing.T) {
	for raw := uint16(0); raw <= 0xFFF; raw++ {
		v := NewUInt[uint16, W12](raw)

		be, err := UIntFromBEBytes[uint16, W12](v.BEBytes())
		if err != nil || be != v {
			t.Fatalf("BE round trip of %d = (%v, %v)", raw, be, err)
		}
		le, err := UIntFromLEBytes[uint16, W12](v.LEBytes())
		if err != nil || le != v {
			t.Fatalf("LE round trip of %d = (%v, %v)", raw, le, err)
		}
		ne, err := UIntFromNEBytes[uint16, W12](v.NEBytes())
		if err != nil || ne != v {
			t.Fatalf("NE round trip of %d = (%v, %v)", raw, ne, err)
		}
		if b := v.BEBytes(); b[0]&0xF0 != 0 {
			t.Fatalf("padding bits set in %x", b)
		}
	}
}

func TestBytesRoundTripI12(t *testing.T) {
	for raw := int16(-2048); raw <= 2047; raw++ {
		v := NewInt[int16, W12](raw)

		be, err := IntFromBEBytes[int16, W12](v.BEBytes())
		if err != nil || be != v {
			t.Fatalf("BE round trip of %d = (%v, %v)", raw, be, err)
		}
		le, err := IntFromLEBytes[int16, W12](v.LEBytes())
		if err != nil || le != v {
			t.Fatalf("LE round trip of %d = (%v, %v)", raw, le, err)
		}
		if b := v.LEBytes(); b[1]&0xF0 != 0 {
			t.Fatalf("padding bits set in %x", b)
		}
	}
}

func TestAppendAndBinaryMarshaler(t *testing.T) {
	v := NewUInt[uint32, W24](0x010203)
	got := v.AppendLE(v.AppendBE([]byte{0xFF}))
	if diff := cmp.Diff([]byte{0xFF, 0x01, 0x02, 0x03, 0x03, 0x02, 0x01}, got); diff != "" {
		t.Errorf("append mismatch (-want +got):\n%s", diff)
	}

	data, err := v.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	var back U24
	if err := back.UnmarshalBinary(data); err != nil || back != v {
		t.Errorf("UnmarshalBinary = (%v, %v)", back, err)
	}

	i := NewInt[int8, W5](-3)
	data, err = i.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	var iback I5
	if err := iback.UnmarshalBinary(data); err != nil || iback != i {
		t.Errorf("signed UnmarshalBinary = (%v, %v)", iback, err)
	}
}
