package iso7816

import (
	"fmt"
	"strings"
)

// Transaction is one command and the response it received.
type Transaction struct {
	Command  *CommandAPDU
	Response *ResponseAPDU
}

// IsSuccess checks if the transaction ended with a successful status.
// It returns false if the response is missing.
func (t *Transaction) IsSuccess() bool {
	if t.Response == nil {
		return false
	}
	return t.Response.Status.IsSuccess()
}

// Trace is the chronological list of transactions behind one logical
// command, GET RESPONSE and Le corrections included.
type Trace []Transaction

// Last returns the final transaction of the trace, or nil if it is empty.
func (t Trace) Last() *Transaction {
	if len(t) == 0 {
		return nil
	}
	return &t[len(t)-1]
}

// IsSuccess reports whether the final transaction succeeded. Intermediate
// 61XX or 6CXX answers do not count.
func (t Trace) IsSuccess() bool {
	last := t.Last()
	if last == nil {
		return false
	}
	return last.IsSuccess()
}

// Data returns the data field of the final response.
func (t Trace) Data() []byte {
	last := t.Last()
	if last == nil || last.Response == nil {
		return nil
	}
	return last.Response.Data
}

// Status returns the final status word, or zero for an empty trace.
func (t Trace) Status() StatusWord {
	last := t.Last()
	if last == nil || last.Response == nil {
		return 0
	}
	return last.Response.Status
}

// describeStatus renders the outcome line shared by the command reports.
func describeStatus(sw StatusWord) string {
	sw1, sw2 := sw.SW1(), sw.SW2()

	result, desc := "[OK]", "SW_NO_ERROR"
	switch {
	case sw1 == 0x61:
		desc = fmt.Sprintf("%02X (%d) bytes still available", sw2, sw2)
	case sw1 == 0x6C:
		result, desc = "[!!]", fmt.Sprintf("Wrong length, correct is %02X (%d)", sw2, sw2)
	case sw != SW_NO_ERROR:
		result, desc = "[!!]", sw.Verbose()
	}
	return fmt.Sprintf("[%02X %02X] %s %s", sw1, sw2, result, desc)
}

// describeHeader writes the CLA fields of cmd as report lines.
func describeHeader(sb *strings.Builder, cmd *CommandAPDU) {
	cla, err := cmd.Class.Encode()
	if err != nil {
		fmt.Fprintf(sb, "    + Class:   invalid (%v)\n", err)
		return
	}
	for i, line := range strings.Split(cmd.Class.Verbose(), "\n") {
		if i == 0 {
			fmt.Fprintf(sb, "    + Class:   %02X -> %s\n", cla, line)
			continue
		}
		fmt.Fprintf(sb, "               %s\n", line)
	}
}
