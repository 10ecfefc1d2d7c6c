package iso7816

import (
	"fmt"
	"strings"

	"github.com/gregLibert/arbint/pkg/tlv"
)

// ReadRecordResult wraps the trace of a READ RECORD command.
type ReadRecordResult struct {
	Trace
}

// NewReadRecordResult checks that t starts with a READ RECORD command.
func NewReadRecordResult(t Trace) (*ReadRecordResult, error) {
	if err := expectCommand(t, INS_READ_RECORD); err != nil {
		return nil, err
	}
	return &ReadRecordResult{Trace: t}, nil
}

// P2 decodes the P2 byte of the initial command.
func (r *ReadRecordResult) P2() ReadRecordP2 {
	return DecodeReadRecordP2(r.Trace[0].Command.P2)
}

// Describe renders the exchange with its decoded P1 and P2.
func (r *ReadRecordResult) Describe() string {
	var sb strings.Builder
	sb.WriteString("=== READ RECORD COMMAND REPORT ===\n")

	first := r.Trace[0]
	cmd := first.Command
	p2 := r.P2()

	sb.WriteString("[1] Command: READ RECORD\n")
	describeHeader(&sb, cmd)

	target := "Current EF"
	if !p2.SFI.IsZero() {
		target = fmt.Sprintf("SFI %02X (%s)", p2.SFI.Value(), p2.SFI)
	}
	fmt.Fprintf(&sb, "    + Target:  %s\n", target)

	var p1 string
	switch {
	case !p2.Mode.ByNumber():
		p1 = fmt.Sprintf("Record Identifier %02X", cmd.P1)
	case cmd.P1 == 0:
		p1 = "Current Record"
	default:
		p1 = fmt.Sprintf("Record Number %d", cmd.P1)
	}
	fmt.Fprintf(&sb, "    + P1:      %02X -> %s\n", cmd.P1, p1)
	fmt.Fprintf(&sb, "    + Mode:    %02X -> %s\n", byte(p2.Mode), p2.Mode)
	fmt.Fprintf(&sb, "    + Result:  %s\n\n", describeStatus(first.Response.Status))

	if len(r.Trace) > 1 {
		fmt.Fprintf(&sb, "[2] Protocol: Auto-handling (%d steps)\n", len(r.Trace))
		fmt.Fprintf(&sb, "    + Final SW: [%04X]\n", uint16(r.Status()))
	}

	sb.WriteString("[=] DATA OUTCOME:\n")
	if data := r.Data(); len(data) > 0 {
		fmt.Fprintf(&sb, "    + Length: %d bytes\n", len(data))
		fmt.Fprintf(&sb, "    + Dump:   %X\n", data)
		fmt.Fprintf(&sb, "    + ASCII:  %q", tlv.MakeSafeASCII(data))
	} else {
		sb.WriteString("    - No Data Received.")
	}

	return sb.String()
}
