package tlv

import (
	"encoding"
	"encoding/hex"
	"fmt"
	"reflect"
	"strings"

	"github.com/moov-io/bertlv"
)

// WriteStructFields writes one line per set field of s to sb. Lines are
// joined with newlines without a trailing one; when sb already holds text a
// newline separates the new block from it.
//
// Byte slices honor a `fmt:"ascii"` or `fmt:"int"` tag. Fields implementing
// encoding.BinaryMarshaler and fmt.Stringer, such as bounded integers, are
// shown as their bytes followed by their decimal value.
func WriteStructFields(sb *strings.Builder, prefix string, s any) {
	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return
	}

	typ := val.Type()
	var lines []string
	for i := 0; i < val.NumField(); i++ {
		field, sf := val.Field(i), typ.Field(i)
		if !sf.IsExported() {
			continue
		}

		switch {
		case field.Type() == reflect.TypeOf([]bertlv.TLV(nil)):
			lines = append(lines, describeUnknown(prefix, field.Interface().([]bertlv.TLV))...)
		case isByteSlice(field):
			if field.Len() > 0 {
				lines = append(lines, describeLine(prefix, sf, formatByteValue(field.Bytes(), sf.Tag.Get("fmt"))))
			}
		default:
			if v, ok := describeScalar(field); ok {
				lines = append(lines, describeLine(prefix, sf, v))
			}
		}
	}

	if len(lines) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Join(lines, "\n"))
	}
}

func describeLine(prefix string, sf reflect.StructField, value string) string {
	name := sf.Name
	if tag := sf.Tag.Get("tlv"); tag != "" {
		name = fmt.Sprintf("%s (%s)", name, tag)
	}
	return fmt.Sprintf("    - %s.%s: %s", prefix, name, value)
}

func describeScalar(field reflect.Value) (string, bool) {
	if field.Kind() == reflect.Pointer && field.IsNil() {
		return "", false
	}
	m, ok := field.Interface().(encoding.BinaryMarshaler)
	if !ok {
		return "", false
	}
	data, err := m.MarshalBinary()
	if err != nil || len(data) == 0 {
		return "", false
	}
	if s, ok := m.(fmt.Stringer); ok {
		return fmt.Sprintf("%X (Dec: %s)", data, s.String()), true
	}
	return fmt.Sprintf("%X", data), true
}

func describeUnknown(prefix string, packets []bertlv.TLV) []string {
	var lines []string
	for _, p := range packets {
		lines = append(lines, fmt.Sprintf("    - %s.Unknown Tag %s: %s", prefix, p.Tag, strings.ToUpper(hex.EncodeToString(p.Value))))
	}
	return lines
}

func formatByteValue(data []byte, format string) string {
	switch format {
	case "ascii":
		return fmt.Sprintf("%X (%q)", data, MakeSafeASCII(data))
	case "int":
		var n uint64
		for _, b := range data {
			n = n<<8 | uint64(b)
		}
		return fmt.Sprintf("%X (Dec: %d)", data, n)
	default:
		return strings.ToUpper(hex.EncodeToString(data))
	}
}

// MakeSafeASCII replaces every byte outside printable ASCII with a dot.
func MakeSafeASCII(data []byte) string {
	return strings.Map(func(r rune) rune {
		if r >= 32 && r <= 126 {
			return r
		}
		return '.'
	}, string(data))
}
