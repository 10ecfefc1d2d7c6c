// Package tlv maps BER-TLV packets onto Go structs using `tlv` struct tags.
//
// A tagged field may be a []byte, a hex string, a nested template struct, a
// slice of templates, a custom Unmarshaler, or any encoding.BinaryUnmarshaler.
// The last case covers the bounded integers of package arbint, so a one-byte
// SFI can be declared as arbint.U5 and is range checked while decoding.
//
// Packets that no field claims are stored in the field tagged `tlv:",unknown"`
// (or named Unknown) when present.
package tlv

import (
	"encoding"
	"encoding/hex"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/moov-io/bertlv"
)

// ErrInvalidTarget is returned when Unmarshal is not given a non-nil pointer
// to a struct.
var ErrInvalidTarget = errors.New("tlv: target must be a non-nil pointer to a struct")

// Unmarshaler allows custom types to implement their own TLV parsing logic.
// It receives the value of the packet; constructed packets are re-encoded.
type Unmarshaler interface {
	UnmarshalTLV(data []byte) error
}

// Unmarshal decodes raw BER-TLV data into target.
func Unmarshal(data []byte, target any) error {
	packets, err := bertlv.Decode(data)
	if err != nil {
		return fmt.Errorf("tlv: decode: %w", err)
	}
	return UnmarshalFromPackets(packets, target)
}

// UnmarshalFromPackets maps pre-decoded packets into target. A tag may occur
// several times when the matching field is a slice.
func UnmarshalFromPackets(packets []bertlv.TLV, target any) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	v = v.Elem()
	t := v.Type()

	consumed := make([]bool, len(packets))
	for i := 0; i < t.NumField(); i++ {
		tag, unknown := fieldTag(t.Field(i))
		if tag == "" || unknown {
			continue
		}
		for idx, packet := range packets {
			if !strings.EqualFold(packet.Tag, tag) {
				continue
			}
			if err := assign(packet, v.Field(i)); err != nil {
				return fmt.Errorf("tlv: field %s (tag %s): %w", t.Field(i).Name, tag, err)
			}
			consumed[idx] = true
		}
	}

	storeUnknown(v, packets, consumed)
	return nil
}

// fieldTag returns the hex tag of a struct field and whether the field
// collects unclaimed packets.
func fieldTag(f reflect.StructField) (tag string, unknown bool) {
	cfg := f.Tag.Get("tlv")
	if cfg == ",unknown" || f.Name == "Unknown" {
		return "", true
	}
	tag, _, _ = strings.Cut(cfg, ",")
	return strings.ToUpper(tag), false
}

// assign appends to slices of templates and decodes everything else in place.
func assign(packet bertlv.TLV, field reflect.Value) error {
	if field.Kind() == reflect.Slice && !isByteSlice(field) {
		elem := reflect.New(field.Type().Elem()).Elem()
		if err := decodeValue(packet, elem); err != nil {
			return err
		}
		field.Set(reflect.Append(field, elem))
		return nil
	}
	return decodeValue(packet, field)
}

func decodeValue(packet bertlv.TLV, field reflect.Value) error {
	if field.Kind() == reflect.Pointer && field.IsNil() && decodable(field.Type()) {
		field.Set(reflect.New(field.Type().Elem()))
	}

	target := field
	if field.Kind() != reflect.Pointer && field.CanAddr() {
		target = field.Addr()
	}
	if target.Kind() == reflect.Pointer && !target.IsNil() {
		switch u := target.Interface().(type) {
		case Unmarshaler:
			return u.UnmarshalTLV(packetValue(packet))
		case encoding.BinaryUnmarshaler:
			return u.UnmarshalBinary(packetValue(packet))
		}
	}

	switch {
	case isByteSlice(field):
		field.SetBytes(packetValue(packet))
	case field.Kind() == reflect.String:
		field.SetString(hex.EncodeToString(packet.Value))
	case field.Kind() == reflect.Struct:
		return decodeTemplate(packet, field.Addr().Interface())
	case field.Kind() == reflect.Pointer && field.Type().Elem().Kind() == reflect.Struct:
		return decodeTemplate(packet, field.Interface())
	}
	return nil
}

var (
	unmarshalerType       = reflect.TypeFor[Unmarshaler]()
	binaryUnmarshalerType = reflect.TypeFor[encoding.BinaryUnmarshaler]()
)

// decodable reports whether a nil pointer of type t is worth allocating.
func decodable(t reflect.Type) bool {
	return t.Elem().Kind() == reflect.Struct || t.Implements(unmarshalerType) || t.Implements(binaryUnmarshalerType)
}

func decodeTemplate(packet bertlv.TLV, target any) error {
	if len(packet.TLVs) > 0 {
		return UnmarshalFromPackets(packet.TLVs, target)
	}
	return Unmarshal(packet.Value, target)
}

func storeUnknown(v reflect.Value, packets []bertlv.TLV, consumed []bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if _, unknown := fieldTag(t.Field(i)); !unknown {
			continue
		}
		field := v.Field(i)
		if !field.CanSet() || field.Type() != reflect.TypeOf([]bertlv.TLV(nil)) {
			return
		}
		var leftovers []bertlv.TLV
		for idx, packet := range packets {
			if !consumed[idx] {
				leftovers = append(leftovers, packet)
			}
		}
		if len(leftovers) > 0 {
			field.Set(reflect.ValueOf(leftovers))
		}
		return
	}
}

// packetValue returns the value bytes of p, re-encoding its children when p
// is constructed.
func packetValue(p bertlv.TLV) []byte {
	if len(p.TLVs) > 0 {
		if enc, err := bertlv.Encode(p.TLVs); err == nil {
			return enc
		}
	}
	return p.Value
}

// GetValue scans data for the first top-level packet with the given tag and
// returns its value.
func GetValue(data []byte, tag uint) ([]byte, error) {
	packets, err := bertlv.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("tlv: decode: %w", err)
	}

	want := fmt.Sprintf("%X", tag)
	for _, p := range packets {
		if strings.EqualFold(p.Tag, want) {
			return packetValue(p), nil
		}
	}
	return nil, fmt.Errorf("tlv: tag %s not found", want)
}

func isByteSlice(v reflect.Value) bool {
	return v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8
}
