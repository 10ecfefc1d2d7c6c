package iso7816

import (
	"errors"
	"fmt"

	"github.com/gregLibert/arbint/pkg/arbint"
	"github.com/gregLibert/arbint/pkg/bits"
)

// Class byte (CLA) layout according to ISO/IEC 7816-4.
//
//	b8   proprietary (1) or interindustry (0)
//	b7   first (0) or further (1) interindustry
//	b5   command chaining
//
//	First interindustry, 000x xxxx:
//	  b4-b3  secure messaging (U2)
//	  b2-b1  logical channel 0-3 (U2)
//
//	Further interindustry, 01xx xxxx:
//	  b6     secure messaging (U1)
//	  b4-b1  logical channel minus 4 (U4), channels 4-19

// ErrReservedClass is returned for the CLA value 0xFF.
var ErrReservedClass = errors.New("iso7816: CLA 0xFF is reserved")

// MaxChannel is the highest logical channel an interindustry class can address.
const MaxChannel = 19

// SecureMessaging defines the security level applied to the APDU.
type SecureMessaging int

const (
	// SMNone indicates no secure messaging or no indication given.
	SMNone SecureMessaging = 0
	// SMProprietary indicates a proprietary secure messaging format (First Interindustry only).
	SMProprietary SecureMessaging = 1
	// SMHeaderNoProc indicates SM according to ISO, where the header is not processed.
	SMHeaderNoProc SecureMessaging = 2
	// SMHeaderAuth indicates SM according to ISO, where the header is authenticated (First Interindustry only).
	SMHeaderAuth SecureMessaging = 3
)

func (sm SecureMessaging) String() string {
	switch sm {
	case SMNone:
		return "None"
	case SMProprietary:
		return "Proprietary"
	case SMHeaderNoProc:
		return "ISO (Header not processed)"
	case SMHeaderAuth:
		return "ISO (Header authenticated)"
	default:
		return fmt.Sprintf("SecureMessaging(%d)", int(sm))
	}
}

// Class represents the parsed ISO 7816-4 Class byte (CLA).
type Class struct {
	Raw             byte
	IsProprietary   bool
	IsChained       bool
	SecureMessaging SecureMessaging
	Channel         uint8 // Logical channel number (0-19)
}

// NewClass decodes a raw CLA byte.
func NewClass(cla byte) (Class, error) {
	if cla == 0xFF {
		return Class{}, ErrReservedClass
	}

	c := Class{Raw: cla, IsProprietary: flag(cla, 8)}
	if c.IsProprietary {
		return c, nil
	}

	c.IsChained = flag(cla, 5)
	if !flag(cla, 7) {
		c.SecureMessaging = SecureMessaging(arbint.ExtractUInt[uint8, arbint.W2](cla, 2).Value())
		c.Channel = arbint.ExtractUInt[uint8, arbint.W2](cla, 0).Value()
		return c, nil
	}

	if flag(cla, 6) {
		c.SecureMessaging = SMHeaderNoProc
	}
	c.Channel = arbint.ExtractUInt[uint8, arbint.W4](cla, 0).Value() + 4
	return c, nil
}

// NewInterindustryClass builds a class from its fields. Channels 0-3 use the
// first interindustry encoding, channels 4-19 the further one.
func NewInterindustryClass(isChained bool, sm SecureMessaging, channel uint8) (Class, error) {
	if channel > MaxChannel {
		return Class{}, fmt.Errorf("iso7816: channel %d out of range (max %d)", channel, MaxChannel)
	}

	// Further interindustry only has one SM bit.
	if channel >= 4 && sm != SMNone && sm != SMHeaderNoProc {
		return Class{}, fmt.Errorf("iso7816: secure messaging %s not supported on channel %d", sm, channel)
	}

	c := Class{
		IsChained:       isChained,
		SecureMessaging: sm,
		Channel:         channel,
	}

	raw, err := c.Encode()
	if err != nil {
		return Class{}, err
	}
	c.Raw = raw

	return c, nil
}

// Encode converts the Class back to its byte representation. Proprietary
// classes are returned as they were decoded.
func (c Class) Encode() (byte, error) {
	if c.IsProprietary {
		return c.Raw, nil
	}

	chained := place(arbint.UIntFromBool[uint8](c.IsChained), 4)

	if c.Channel <= 3 {
		sm, err := arbint.TryNewUInt[uint8, arbint.W2](uint8(c.SecureMessaging))
		if err != nil {
			return 0, fmt.Errorf("iso7816: secure messaging: %w", err)
		}
		channel := arbint.NewUInt[uint8, arbint.W2](c.Channel)
		return chained | place(sm, 2) | place(channel, 0), nil
	}

	channel, err := arbint.TryNewUInt[uint8, arbint.W4](c.Channel - 4)
	if err != nil {
		return 0, fmt.Errorf("iso7816: channel %d: %w", c.Channel, err)
	}
	sm := arbint.UIntFromBool[uint8](c.SecureMessaging != SMNone)
	further := bits.Set[byte](0, 7)
	return further | place(sm, 5) | chained | place(channel, 0), nil
}

// Verbose returns a human-readable description of the CLA byte configuration.
func (c Class) Verbose() string {
	if c.IsProprietary {
		return fmt.Sprintf("Class: Proprietary (0x%02X)", c.Raw)
	}

	rangeName := "First Interindustry (Ch 0-3)"
	if c.Channel >= 4 {
		rangeName = "Further Interindustry (Ch 4-19)"
	}

	chaining := "Last or only command"
	if c.IsChained {
		chaining = "More commands follow (Chaining)"
	}

	return fmt.Sprintf(
		"Range: %s\nChaining: %s\nSecure Messaging: %s\nLogical Channel: %d",
		rangeName, chaining, c.SecureMessaging, c.Channel,
	)
}

// flag reports bit n of b, numbered b8 to b1 as in ISO/IEC 7816-4.
func flag(b byte, n uint) bool {
	return bits.IsSet(b, n)
}

// place shifts a field of a header byte to its bit offset (0-based).
func place[W arbint.Width](v arbint.UInt[uint8, W], start int) byte {
	return v.Value() << start
}
