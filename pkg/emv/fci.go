package emv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/moov-io/bertlv"

	"github.com/gregLibert/arbint/pkg/arbint"
	"github.com/gregLibert/arbint/pkg/tlv"
)

// ErrEmptyData is returned when there is nothing to parse.
var ErrEmptyData = errors.New("emv: empty data")

// SFI is the short file identifier of the payment system directory EF.
type SFI = arbint.U5

// FCI represents the EMV-specific File Control Information returned in response to a SELECT command.
type FCI struct {
	DFName              []byte                 `tlv:"84" fmt:"ascii"`
	ProprietaryTemplate FCIProprietaryTemplate `tlv:"A5"`
}

// FCIProprietaryTemplate contains the issuer-specific data found in tag 'A5'.
type FCIProprietaryTemplate struct {
	ApplicationLabel []byte `tlv:"50" fmt:"ascii"`

	// Optional EMV fields
	ApplicationPriorityIndicator PriorityIndicator `tlv:"87"`
	SFI                          SFI               `tlv:"88"` // bits 8-6 zero
	PDOL                         []byte            `tlv:"9F38"`
	LanguagePreference           []byte            `tlv:"5F2D" fmt:"ascii"`
	IssuerCodeTableIndex         []byte            `tlv:"9F11" fmt:"int"`
	ApplicationPreferredName     []byte            `tlv:"9F12" fmt:"ascii"`

	IssuerDiscretionaryData *FCIIssuerDiscretionaryData `tlv:"BF0C"`

	Unknown []bertlv.TLV `tlv:",unknown"`
}

// FCIIssuerDiscretionaryData represents the discretionary data (Tag 'BF0C') which often contains specific bank or country information.
type FCIIssuerDiscretionaryData struct {
	LogEntry                           []byte `tlv:"9F4D"`
	IssuerIdentificationNumberExtended []byte `tlv:"9F0C"`
	IssuerCountryCodeAlpha3            []byte `tlv:"5F56" fmt:"ascii"`
	IssuerCountryCodeAlpha2            []byte `tlv:"5F55" fmt:"ascii"`
	BankIdentifierCode                 []byte `tlv:"5F54" fmt:"ascii"`
	IBAN                               []byte `tlv:"5F53" fmt:"ascii"`
	IssuerURL                          []byte `tlv:"5F50" fmt:"ascii"`
	IssuerIdentificationNumber         []byte `tlv:"42"`

	Unknown []bertlv.TLV `tlv:",unknown"`
}

// ParseFCI interprets the data of a SELECT response as an EMV FCI. The '6F'
// wrapper is optional.
func ParseFCI(data []byte) (*FCI, error) {
	packets, err := decode(data)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(packets[0].Tag, "6F") {
		packets = packets[0].TLVs
	}

	fci := &FCI{}
	if err := tlv.UnmarshalFromPackets(packets, fci); err != nil {
		return nil, fmt.Errorf("emv: FCI: %w", err)
	}
	return fci, nil
}

func decode(data []byte) ([]bertlv.TLV, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	packets, err := bertlv.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("emv: decode: %w", err)
	}
	if len(packets) == 0 {
		return nil, ErrEmptyData
	}
	return packets, nil
}

// DirectorySFI returns the SFI of the payment system directory, if the FCI
// names one.
func (f *FCI) DirectorySFI() (SFI, bool) {
	sfi := f.ProprietaryTemplate.SFI
	return sfi, !sfi.IsZero()
}

// Describe renders every set field of the FCI, one per line.
func (f *FCI) Describe() string {
	var sb strings.Builder
	sb.WriteString("=== EMV FCI TEMPLATE ===")

	tlv.WriteStructFields(&sb, "FCI", f)
	tlv.WriteStructFields(&sb, "Proprietary", f.ProprietaryTemplate)
	if f.ProprietaryTemplate.IssuerDiscretionaryData != nil {
		tlv.WriteStructFields(&sb, "Discretionary", f.ProprietaryTemplate.IssuerDiscretionaryData)
	}

	return sb.String()
}
