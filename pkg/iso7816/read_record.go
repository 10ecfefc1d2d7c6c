package iso7816

import (
	"fmt"

	"github.com/gregLibert/arbint/pkg/arbint"
)

// READ RECORD (INS 'B2') reads one or more records of the current EF or of
// the EF named by a short file identifier.
//
//	b8-b4  SFI (U5), 0 = current EF, 31 is reserved
//	b3     P1 is a record number (1) or a record identifier (0)
//	b2-b1  occurrence or range
//
// b3-b1 are handled together as the 3-bit ReadRecordMode.

// ReadRecordMode is the 3-bit reference control of P2 (b3-b1).
type ReadRecordMode uint8

const (
	// P1 is Record IDENTIFIER (Bit 3 = 0)
	RefByID_FirstOccurrence    ReadRecordMode = 0b000
	RefByID_LastOccurrence     ReadRecordMode = 0b001
	RefByID_NextOccurrence     ReadRecordMode = 0b010
	RefByID_PreviousOccurrence ReadRecordMode = 0b011

	// P1 is Record NUMBER (Bit 3 = 1)
	RefByNum_ReadP1              ReadRecordMode = 0b100
	RefByNum_ReadAllFromP1       ReadRecordMode = 0b101
	RefByNum_ReadAllFromLastToP1 ReadRecordMode = 0b110
)

func (m ReadRecordMode) String() string {
	switch m {
	case RefByID_FirstOccurrence:
		return "Ref ID: First Occurrence"
	case RefByID_LastOccurrence:
		return "Ref ID: Last Occurrence"
	case RefByID_NextOccurrence:
		return "Ref ID: Next Occurrence"
	case RefByID_PreviousOccurrence:
		return "Ref ID: Previous Occurrence"
	case RefByNum_ReadP1:
		return "Ref Num: Read Record P1"
	case RefByNum_ReadAllFromP1:
		return "Ref Num: Read All from P1"
	case RefByNum_ReadAllFromLastToP1:
		return "Ref Num: Read All from Last to P1"
	default:
		return fmt.Sprintf("Unknown Mode (0x%X)", byte(m))
	}
}

// ByNumber reports whether P1 holds a record number.
func (m ReadRecordMode) ByNumber() bool {
	return flag(byte(m), 3)
}

// SFI is a short EF identifier. Zero designates the current EF.
type SFI = arbint.U5

// NewSFI validates a short EF identifier in [1, 30].
func NewSFI(v uint8) (SFI, error) {
	if v == 0 || v == 31 {
		return SFI{}, fmt.Errorf("iso7816: SFI %d is reserved", v)
	}
	return arbint.TryNewUInt[uint8, arbint.W5](v)
}

// ReadRecordP2 is the decoded P2 byte of a READ RECORD command.
type ReadRecordP2 struct {
	SFI  SFI
	Mode ReadRecordMode
}

// Encode packs the fields into a P2 byte. It panics if Mode does not fit
// three bits.
func (p ReadRecordP2) Encode() byte {
	mode := arbint.NewUInt[uint8, arbint.W3](uint8(p.Mode))
	return place(p.SFI, 3) | place(mode, 0)
}

func (p ReadRecordP2) String() string {
	target := "Current EF"
	if !p.SFI.IsZero() {
		target = fmt.Sprintf("SFI %02X (%s)", p.SFI.Value(), p.SFI)
	}
	return fmt.Sprintf("%s | %s", target, p.Mode)
}

// DecodeReadRecordP2 unpacks a READ RECORD P2 byte. Every byte is a valid
// layout; SFI 31 and mode 111 are reported as they are.
func DecodeReadRecordP2(p2 byte) ReadRecordP2 {
	return ReadRecordP2{
		SFI:  arbint.ExtractUInt[uint8, arbint.W5](p2, 3),
		Mode: ReadRecordMode(arbint.ExtractUInt[uint8, arbint.W3](p2, 0).Value()),
	}
}

// NewReadRecordCommand creates a raw READ RECORD command.
func NewReadRecordCommand(cla Class, sfi SFI, p1 byte, mode ReadRecordMode) *CommandAPDU {
	p2 := ReadRecordP2{SFI: sfi, Mode: mode}.Encode()

	// Case 2: Le '00' asks for up to 256 bytes.
	return NewCommandAPDU(cla, MustInstruction(INS_READ_RECORD), p1, p2, nil, MaxShortLe)
}

// ReadRecord reads a specific record by its Number (Mode '100').
func ReadRecord(cla Class, sfi SFI, recordNumber byte) *CommandAPDU {
	return NewReadRecordCommand(cla, sfi, recordNumber, RefByNum_ReadP1)
}

// ReadAllRecords reads all records starting from startRecordNumber (Mode '101').
func ReadAllRecords(cla Class, sfi SFI, startRecordNumber byte) *CommandAPDU {
	return NewReadRecordCommand(cla, sfi, startRecordNumber, RefByNum_ReadAllFromP1)
}
