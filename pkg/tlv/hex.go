package tlv

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Hex builds a byte slice from hex strings such as "00 A4 04 00". White
// space between digits is ignored. It panics on malformed input and is meant
// for constants and tests.
func Hex(parts ...string) []byte {
	clean := strings.Join(strings.Fields(strings.Join(parts, " ")), "")

	data, err := hex.DecodeString(clean)
	if err != nil {
		panic(fmt.Sprintf("tlv: invalid hex %q: %v", clean, err))
	}
	return data
}
