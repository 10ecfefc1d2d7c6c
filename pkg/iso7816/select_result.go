package iso7816

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gregLibert/arbint/pkg/tlv"
)

// ErrEmptyTrace is returned when a result is built from no transactions.
var ErrEmptyTrace = errors.New("iso7816: empty trace")

// SelectResult wraps the trace of a SELECT command.
type SelectResult struct {
	Trace
}

// NewSelectResult checks that t starts with a SELECT command.
func NewSelectResult(t Trace) (*SelectResult, error) {
	if err := expectCommand(t, INS_SELECT); err != nil {
		return nil, err
	}
	return &SelectResult{Trace: t}, nil
}

func expectCommand(t Trace, ins InsCode) error {
	if len(t) == 0 {
		return ErrEmptyTrace
	}
	if got := t[0].Command.Instruction.Raw; got != ins {
		return fmt.Errorf("iso7816: trace starts with %s, want %s", got, ins)
	}
	return nil
}

// P2 decodes the P2 byte of the initial SELECT.
func (r *SelectResult) P2() (SelectP2, error) {
	return DecodeSelectP2(r.Trace[0].Command.P2)
}

// FCI parses the final response data according to the initial P2.
func (r *SelectResult) FCI() (*FileControlInfo, error) {
	if !r.IsSuccess() {
		return nil, fmt.Errorf("iso7816: selection failed: %s", r.Status().Verbose())
	}
	data := r.Data()
	if len(data) == 0 {
		return nil, errors.New("iso7816: no response data")
	}
	return ParseSelectData(data, r.Trace[0].Command.P2)
}

// Describe renders the exchange and every decoded FCI field.
func (r *SelectResult) Describe() string {
	var sb strings.Builder
	sb.WriteString("=== SELECT COMMAND REPORT ===\n")

	first := r.Trace[0]
	cmd := first.Command

	sb.WriteString("[1] Command: SELECT FILE (Initial Request)\n")
	describeHeader(&sb, cmd)
	fmt.Fprintf(&sb, "    + Method:  %02X -> %s\n", cmd.P1, SelectionMethod(cmd.P1))
	if p2, err := r.P2(); err == nil {
		fmt.Fprintf(&sb, "    + Control: %02X -> %s\n", cmd.P2, p2)
	} else {
		fmt.Fprintf(&sb, "    + Control: %02X -> %v\n", cmd.P2, err)
	}
	if len(cmd.Data) > 0 {
		fmt.Fprintf(&sb, "    + Data:    %X (%q)\n", cmd.Data, tlv.MakeSafeASCII(cmd.Data))
	}
	fmt.Fprintf(&sb, "    + Result:  %s\n", describeStatus(first.Response.Status))
	if len(first.Response.Data) > 0 {
		fmt.Fprintf(&sb, "    + Payload: %d bytes received directly\n", len(first.Response.Data))
	}
	sb.WriteString("\n")

	if len(r.Trace) > 1 {
		last := r.Last()
		fmt.Fprintf(&sb, "[2] Protocol: Auto-handling (Sequence of %d steps)\n", len(r.Trace))

		action := "Unknown"
		switch last.Command.Instruction.Raw {
		case INS_GET_RESPONSE:
			action = "GET RESPONSE"
		case INS_SELECT:
			action = "RE-SELECT (Correction)"
		}
		fmt.Fprintf(&sb, "    + Action:  Sending %s\n", action)
		fmt.Fprintf(&sb, "    + Result:  %s\n", describeStatus(last.Response.Status))
		if data := last.Response.Data; len(data) > 0 {
			fmt.Fprintf(&sb, "    + Payload: %d bytes received\n", len(data))
			fmt.Fprintf(&sb, "      Dump:    %X\n", data)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("[=] FINAL OUTCOME:\n")

	fci, err := r.FCI()
	switch {
	case err != nil && len(r.Data()) > 0:
		fmt.Fprintf(&sb, "    - FCI Parsing Failed: %v", err)
		return sb.String()
	case err != nil || fci == nil:
		sb.WriteString("    - No Data returned to parse.")
		return sb.String()
	}

	var structures []string
	if fci.FCP != nil {
		structures = append(structures, "FCP")
	}
	if fci.FMD != nil {
		structures = append(structures, "FMD")
	}
	if len(fci.ProprietaryRawData) > 0 {
		structures = append(structures, "ProprietaryRaw")
	}
	fmt.Fprintf(&sb, "    - Structure: %s", strings.Join(structures, " + "))

	var fields strings.Builder
	if fci.FCP != nil {
		tlv.WriteStructFields(&fields, "FCP", fci.FCP)
	}
	if fci.FMD != nil {
		tlv.WriteStructFields(&fields, "FMD", fci.FMD)
	}
	if fields.Len() > 0 {
		sb.WriteString("\n")
		sb.WriteString(fields.String())
	}
	if len(fci.ProprietaryRawData) > 0 {
		fmt.Fprintf(&sb, "\n    - Proprietary:   %X", fci.ProprietaryRawData)
	}

	return sb.String()
}
