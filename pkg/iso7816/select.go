package iso7816

import (
	"fmt"

	"github.com/gregLibert/arbint/pkg/arbint"
)

// SELECT (INS 'A4') opens an MF, DF, EF or application.
//
// P1 is the selection method. P2 is a packed register:
//
//	b8-b5  0000
//	b4-b3  selection control, the response template (U2)
//	b2-b1  file occurrence (U2)

// SelectionMethod defines how the file is targeted (P1).
type SelectionMethod byte

const (
	SelectByFileID          SelectionMethod = 0x00
	SelectChildDF           SelectionMethod = 0x01
	SelectEFUnderCurrentDF  SelectionMethod = 0x02
	SelectParentDF          SelectionMethod = 0x03
	SelectByDFName          SelectionMethod = 0x04 // Select by AID
	SelectPathFromMF        SelectionMethod = 0x08
	SelectPathFromCurrentDF SelectionMethod = 0x09
)

func (s SelectionMethod) String() string {
	switch s {
	case SelectByFileID:
		return "Select by File ID"
	case SelectChildDF:
		return "Select Child DF"
	case SelectEFUnderCurrentDF:
		return "Select EF under current DF"
	case SelectParentDF:
		return "Select Parent DF"
	case SelectByDFName:
		return "Select by DF Name (AID)"
	case SelectPathFromMF:
		return "Select Path from MF"
	case SelectPathFromCurrentDF:
		return "Select Path from Current DF"
	default:
		return fmt.Sprintf("Unknown Method (0x%02X)", byte(s))
	}
}

// FileOccurrence is the 2-bit occurrence field of P2 (b2-b1).
type FileOccurrence uint8

const (
	FirstOrOnlyOccurrence FileOccurrence = 0b00
	LastOccurrence        FileOccurrence = 0b01
	NextOccurrence        FileOccurrence = 0b10
	PreviousOccurrence    FileOccurrence = 0b11
)

func (f FileOccurrence) String() string {
	switch f {
	case FirstOrOnlyOccurrence:
		return "First/Only"
	case LastOccurrence:
		return "Last"
	case NextOccurrence:
		return "Next"
	case PreviousOccurrence:
		return "Previous"
	default:
		return "Unknown Occurrence"
	}
}

// SelectionControl is the 2-bit response template field of P2 (b4-b3).
type SelectionControl uint8

const (
	ReturnFCI    SelectionControl = 0b00
	ReturnFCP    SelectionControl = 0b01
	ReturnFMD    SelectionControl = 0b10
	ReturnNoData SelectionControl = 0b11
)

func (s SelectionControl) String() string {
	switch s {
	case ReturnFCI:
		return "Return FCI"
	case ReturnFCP:
		return "Return FCP"
	case ReturnFMD:
		return "Return FMD"
	case ReturnNoData:
		return "No Response Data"
	default:
		return "Unknown Control"
	}
}

// SelectP2 is the decoded P2 byte of a SELECT command.
type SelectP2 struct {
	Control    SelectionControl
	Occurrence FileOccurrence
}

// Encode packs the fields into a P2 byte. It panics if a field does not fit
// its two bits.
func (p SelectP2) Encode() byte {
	ctrl := arbint.NewUInt[uint8, arbint.W2](uint8(p.Control))
	occ := arbint.NewUInt[uint8, arbint.W2](uint8(p.Occurrence))
	return place(ctrl, 2) | place(occ, 0)
}

func (p SelectP2) String() string {
	return fmt.Sprintf("%s | %s", p.Occurrence, p.Control)
}

// DecodeSelectP2 unpacks a SELECT P2 byte. The high nibble must be zero.
func DecodeSelectP2(p2 byte) (SelectP2, error) {
	if rfu := arbint.ExtractUInt[uint8, arbint.W4](p2, 4); !rfu.IsZero() {
		return SelectP2{}, fmt.Errorf("iso7816: SELECT P2 0x%02X: bits 8-5 must be zero", p2)
	}
	return SelectP2{
		Control:    SelectionControl(arbint.ExtractUInt[uint8, arbint.W2](p2, 2).Value()),
		Occurrence: FileOccurrence(arbint.ExtractUInt[uint8, arbint.W2](p2, 0).Value()),
	}, nil
}

// NewSelectCommand creates a generic SELECT command.
func NewSelectCommand(
	cla Class,
	method SelectionMethod,
	occurrence FileOccurrence,
	ctrl SelectionControl,
	data []byte,
) *CommandAPDU {
	p2 := SelectP2{Control: ctrl, Occurrence: occurrence}.Encode()

	// T=0 cannot carry Lc and Le together: a case 3 command gets Le absent and
	// the card answers 61XX, which the Client turns into GET RESPONSE.
	ne := 0
	if len(data) == 0 && ctrl != ReturnNoData {
		ne = MaxShortLe
	}

	return NewCommandAPDU(cla, MustInstruction(INS_SELECT), byte(method), p2, data, ne)
}

// SelectByAID creates a simplified SELECT command to select an application by its name (AID).
func SelectByAID(cla Class, aid []byte) *CommandAPDU {
	return NewSelectCommand(cla, SelectByDFName, FirstOrOnlyOccurrence, ReturnFCI, aid)
}

// SelectMF creates a command to select the Master File.
func SelectMF(cla Class) *CommandAPDU {
	return NewSelectCommand(cla, SelectByFileID, FirstOrOnlyOccurrence, ReturnFCI, nil)
}
