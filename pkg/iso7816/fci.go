package iso7816

import (
	"fmt"
	"strings"

	"github.com/moov-io/bertlv"

	"github.com/gregLibert/arbint/pkg/arbint"
	"github.com/gregLibert/arbint/pkg/tlv"
)

// SELECT response data (ISO/IEC 7816-4). The selection control field of P2
// decides the template:
//
//	00  FCI '6F', optionally wrapping FCP '62' and FMD '64', or flat
//	01  FCP '62'
//	10  FMD '64'
//	11  no data
//
// A first byte of C0 or more is proprietary and kept raw.

// ShortEF is the FCP short EF identifier (tag '88'). The SFI sits in bits
// 8-4 of its single byte; an empty value means the file has none.
type ShortEF struct {
	SFI     SFI
	Present bool
}

// UnmarshalTLV implements tlv.Unmarshaler.
func (s *ShortEF) UnmarshalTLV(data []byte) error {
	switch len(data) {
	case 0:
		*s = ShortEF{}
		return nil
	case 1:
		*s = ShortEF{SFI: arbint.ExtractUInt[uint8, arbint.W5](data[0], 3), Present: true}
		return nil
	}
	return fmt.Errorf("iso7816: short EF identifier of %d bytes", len(data))
}

// MarshalBinary reports the identifier byte as it was encoded.
func (s ShortEF) MarshalBinary() ([]byte, error) {
	if !s.Present {
		return nil, nil
	}
	return []byte{place(s.SFI, 3)}, nil
}

func (s ShortEF) String() string {
	if !s.Present {
		return "none"
	}
	return s.SFI.String()
}

// FCPTemplate (File Control Parameters) - Tag '62'.
type FCPTemplate struct {
	DataSizeExcludingStruct []byte  `tlv:"80" fmt:"int"`
	TotalFileSize           []byte  `tlv:"81" fmt:"int"`
	FileDescriptor          []byte  `tlv:"82"`
	FileIdentifier          []byte  `tlv:"83"`
	DFName                  []byte  `tlv:"84" fmt:"ascii"`
	ProprietaryInfoRaw      []byte  `tlv:"85"`
	SecurityAttrProprietary []byte  `tlv:"86"`
	ExtFileControlInfoID    []byte  `tlv:"87"`
	ShortEFIdentifier       ShortEF `tlv:"88"`
	LifeCycleStatus         []byte  `tlv:"8A"`
	SecAttrRefExpanded      []byte  `tlv:"8B"`
	SecurityAttrCompact     []byte  `tlv:"8C"`
	SecEnvTemplateID        []byte  `tlv:"8D"`
	ChannelSecurityAttr     []byte  `tlv:"8E"`
	SecAttrTemplateData     []byte  `tlv:"A0"`
	SecAttrTemplateProp     []byte  `tlv:"A1"`
	OneOrMorePairs          []byte  `tlv:"A2"`
	ProprietaryDataBER      []byte  `tlv:"A5"`
	SecurityAttrExpanded    []byte  `tlv:"AB"`
	CryptoMechanismID       []byte  `tlv:"AC"`

	Unknown []bertlv.TLV `tlv:",unknown"`
}

// FMDTemplate (File Management Data) - Tag '64'.
type FMDTemplate struct {
	ApplicationIdentifier []byte `tlv:"84" fmt:"ascii"`
	ApplicationLabel      []byte `tlv:"50" fmt:"ascii"`
	ProprietaryData53     []byte `tlv:"53"`
	ProprietaryData73     []byte `tlv:"73"`

	Unknown []bertlv.TLV `tlv:",unknown"`
}

// FileControlInfo represents the parsed result of a SELECT command.
type FileControlInfo struct {
	FCP *FCPTemplate
	FMD *FMDTemplate

	// Unknown holds the packets of a flat FCI that match neither template.
	Unknown []bertlv.TLV

	ProprietaryRawData []byte
}

// GetAID returns the DF name from the FCP, falling back to the FMD.
func (fci *FileControlInfo) GetAID() []byte {
	if fci.FCP != nil && len(fci.FCP.DFName) > 0 {
		return fci.FCP.DFName
	}
	if fci.FMD != nil && len(fci.FMD.ApplicationIdentifier) > 0 {
		return fci.FMD.ApplicationIdentifier
	}
	return nil
}

// ApplicationLabel returns the Application Label (Tag 50) from FMD.
func (fci *FileControlInfo) ApplicationLabel() []byte {
	if fci.FMD != nil {
		return fci.FMD.ApplicationLabel
	}
	return nil
}

// ParseSelectData parses the data field of a SELECT response according to
// the P2 the command was sent with. It returns nil, nil when there is
// nothing to parse.
func ParseSelectData(data []byte, p2 byte) (*FileControlInfo, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if data[0] >= 0xC0 {
		return &FileControlInfo{ProprietaryRawData: data}, nil
	}

	sel, err := DecodeSelectP2(p2)
	if err != nil {
		return nil, err
	}

	packets, err := bertlv.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("iso7816: decode select data: %w", err)
	}

	fci := &FileControlInfo{FCP: &FCPTemplate{}, FMD: &FMDTemplate{}}

	switch sel.Control {
	case ReturnFCP:
		return fci, decodeTemplate(packets, "62", fci.FCP, true)
	case ReturnFMD:
		return fci, decodeTemplate(packets, "64", fci.FMD, true)
	case ReturnFCI:
		return fci, decodeFCI(packets, fci)
	}
	return nil, nil
}

// decodeFCI unwraps an optional '6F' and decodes '62' and '64'. Without
// either template the packets are read as a flat FCP then FMD.
func decodeFCI(packets []bertlv.TLV, fci *FileControlInfo) error {
	for _, p := range packets {
		if strings.EqualFold(p.Tag, "6F") {
			packets = p.TLVs
			break
		}
	}

	if err := decodeTemplate(packets, "62", fci.FCP, false); err != nil {
		return err
	}
	if err := decodeTemplate(packets, "64", fci.FMD, false); err != nil {
		return err
	}
	if hasTag(packets, "62") || hasTag(packets, "64") {
		return nil
	}

	if err := tlv.UnmarshalFromPackets(packets, fci.FCP); err != nil {
		return fmt.Errorf("iso7816: flat FCP: %w", err)
	}
	rest := fci.FCP.Unknown
	fci.FCP.Unknown = nil

	if err := tlv.UnmarshalFromPackets(rest, fci.FMD); err != nil {
		return fmt.Errorf("iso7816: flat FMD: %w", err)
	}
	fci.Unknown, fci.FMD.Unknown = fci.FMD.Unknown, nil
	return nil
}

func decodeTemplate(packets []bertlv.TLV, tag string, target any, mandatory bool) error {
	for _, p := range packets {
		if !strings.EqualFold(p.Tag, tag) {
			continue
		}
		if err := tlv.UnmarshalFromPackets(p.TLVs, target); err != nil {
			return fmt.Errorf("iso7816: template %s: %w", tag, err)
		}
		return nil
	}
	if mandatory {
		return fmt.Errorf("iso7816: mandatory template %s not found", tag)
	}
	return nil
}

func hasTag(packets []bertlv.TLV, tag string) bool {
	for _, p := range packets {
		if strings.EqualFold(p.Tag, tag) {
			return true
		}
	}
	return false
}
