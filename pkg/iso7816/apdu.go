package iso7816

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/gregLibert/arbint/pkg/arbint"
)

// Command APDU layout (ISO/IEC 7816-3):
//
//	CLA INS P1 P2 [Lc Data] [Le]
//
// Case 1 carries the header only, case 2 adds Le, case 3 adds Lc and data,
// case 4 both. Lc and Le take one byte in short form and two bytes (with a
// leading 00 before the first of them) in extended form, which is used as
// soon as Nc > 255 or Ne > 256.
//
// Lc and Le are modular fields: short Le '00' encodes 256 and extended Le
// '0000' encodes 65536. They are written as 8 and 16-bit wrapping values.
//
// A response APDU is the optional data field followed by SW1 SW2.

// APDU Limits and Constants according to ISO 7816-3.
const (
	// MaxShortLc is the maximum data length (Nc) encodable in Short Length mode (1 byte).
	MaxShortLc = 255

	// MaxShortLe is the maximum expected response length (Ne) encodable in Short Length mode.
	// In Short mode, 0x00 encodes 256.
	MaxShortLe = 256

	// MaxExtendedLc is the theoretical limit for Lc in Extended mode (16-bit unsigned).
	MaxExtendedLc = 65535

	// MaxExtendedLe is the maximum Ne encodable in Extended Length mode.
	// In Extended mode, 0x0000 encodes 65536.
	MaxExtendedLe = 65536

	// MaxAPDUBufferSize bounds an extended command: header, Lc, data, Le
	// and one spare byte.
	MaxAPDUBufferSize = 4 + 3 + MaxExtendedLc + 2 + 1
)

// ErrResponseTooShort is returned when a response lacks the SW1-SW2 trailer.
var ErrResponseTooShort = errors.New("iso7816: response shorter than the status word")

// CommandAPDU represents a command sent to the card.
type CommandAPDU struct {
	Class       Class
	Instruction Instruction
	P1, P2      byte
	Data        []byte
	Ne          int // Expected response length (0 means none)
}

// NewCommandAPDU creates a basic command.
func NewCommandAPDU(cla Class, ins Instruction, p1, p2 byte, data []byte, ne int) *CommandAPDU {
	return &CommandAPDU{
		Class:       cla,
		Instruction: ins,
		P1:          p1,
		P2:          p2,
		Data:        data,
		Ne:          ne,
	}
}

// IsExtended reports whether the command needs extended length fields.
func (c *CommandAPDU) IsExtended() bool {
	return len(c.Data) > MaxShortLc || c.Ne > MaxShortLe
}

// Bytes encodes the command (C-APDU), choosing short or extended length
// fields from Nc and Ne.
func (c *CommandAPDU) Bytes() ([]byte, error) {
	nc, ne := len(c.Data), c.Ne
	if nc > MaxExtendedLc {
		return nil, fmt.Errorf("iso7816: data field of %d bytes exceeds %d", nc, MaxExtendedLc)
	}
	if ne < 0 || ne > MaxExtendedLe {
		return nil, fmt.Errorf("iso7816: Ne %d out of range [0, %d]", ne, MaxExtendedLe)
	}

	class, err := c.Class.Encode()
	if err != nil {
		return nil, fmt.Errorf("iso7816: encode class: %w", err)
	}

	buf := bytes.NewBuffer(make([]byte, 0, 4+3+nc+2))
	buf.Write([]byte{class, byte(c.Instruction.Raw), c.P1, c.P2})

	extended := c.IsExtended()

	if nc > 0 {
		if extended {
			buf.WriteByte(0x00)
			buf.Write(lengthField16(nc))
		} else {
			buf.Write(lengthField8(nc))
		}
		buf.Write(c.Data)
	}

	if ne > 0 {
		if extended {
			// Without Lc the extended Le needs its own leading 00.
			if nc == 0 {
				buf.WriteByte(0x00)
			}
			buf.Write(lengthField16(ne))
		} else {
			buf.Write(lengthField8(ne))
		}
	}

	return buf.Bytes(), nil
}

func lengthField8(n int) []byte {
	return arbint.NewUIntWrapping[uint16, arbint.W8](uint16(n)).BEBytes()
}

func lengthField16(n int) []byte {
	return arbint.NewUIntWrapping[uint32, arbint.W16](uint32(n)).BEBytes()
}

// String returns a readable representation of the command meta-data.
func (c *CommandAPDU) String() string {
	return fmt.Sprintf("%s | P1: %02X, P2: %02X | Lc: %d | Le: %d",
		c.Instruction.Verbose(), c.P1, c.P2, len(c.Data), c.Ne)
}

// ResponseAPDU represents the reply from the card (R-APDU).
type ResponseAPDU struct {
	Data   []byte
	Status StatusWord
}

// ParseResponseAPDU splits raw into the data field and the SW1-SW2 trailer.
func ParseResponseAPDU(raw []byte) (*ResponseAPDU, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("%w: length %d", ErrResponseTooShort, len(raw))
	}

	n := len(raw) - 2
	return &ResponseAPDU{
		Data:   raw[:n],
		Status: NewStatusWord(raw[n], raw[n+1]),
	}, nil
}

// String returns a readable representation of the response.
func (r *ResponseAPDU) String() string {
	return fmt.Sprintf("Data (%d bytes) | Status: %s", len(r.Data), r.Status.Verbose())
}
