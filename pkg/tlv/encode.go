package tlv

import (
	"encoding"
	"encoding/hex"
	"fmt"
	"reflect"

	"github.com/moov-io/bertlv"
)

// Marshaler allows custom types to produce their own packet value.
type Marshaler interface {
	MarshalTLV() ([]byte, error)
}

// Marshal encodes the tagged fields of source, a struct or a pointer to one,
// as BER-TLV. It is the inverse of Unmarshal. Empty byte slices and strings,
// nil pointers, binary marshalers returning no bytes and templates without
// any set field are omitted. The packets of the unknown field are appended
// as they are.
func Marshal(source any) ([]byte, error) {
	packets, err := MarshalToPackets(source)
	if err != nil {
		return nil, err
	}
	data, err := bertlv.Encode(packets)
	if err != nil {
		return nil, fmt.Errorf("tlv: encode: %w", err)
	}
	return data, nil
}

// MarshalToPackets returns the packets Marshal would encode, in field order.
func MarshalToPackets(source any) ([]bertlv.TLV, error) {
	v := reflect.ValueOf(source)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("tlv: cannot marshal %s, want a struct", v.Kind())
	}
	t := v.Type()

	var packets []bertlv.TLV
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		tag, unknown := fieldTag(t.Field(i))
		field := v.Field(i)
		if unknown {
			if extra, ok := field.Interface().([]bertlv.TLV); ok {
				packets = append(packets, extra...)
			}
			continue
		}
		if tag == "" {
			continue
		}

		values := []reflect.Value{field}
		if field.Kind() == reflect.Slice && !isByteSlice(field) {
			values = values[:0]
			for j := 0; j < field.Len(); j++ {
				values = append(values, field.Index(j))
			}
		}
		for _, fv := range values {
			data, ok, err := encodeValue(fv)
			if err != nil {
				return nil, fmt.Errorf("tlv: field %s (tag %s): %w", t.Field(i).Name, tag, err)
			}
			if ok {
				packets = append(packets, bertlv.TLV{Tag: tag, Value: data})
			}
		}
	}
	return packets, nil
}

// encodeValue returns the packet value of field and whether it should be
// written at all.
func encodeValue(field reflect.Value) ([]byte, bool, error) {
	if field.Kind() == reflect.Pointer && field.IsNil() {
		return nil, false, nil
	}

	switch m := field.Interface().(type) {
	case Marshaler:
		data, err := m.MarshalTLV()
		return data, err == nil, err
	case encoding.BinaryMarshaler:
		data, err := m.MarshalBinary()
		return data, err == nil && len(data) > 0, err
	}

	switch {
	case isByteSlice(field):
		return field.Bytes(), field.Len() > 0, nil
	case field.Kind() == reflect.String:
		if field.Len() == 0 {
			return nil, false, nil
		}
		data, err := hex.DecodeString(field.String())
		return data, err == nil, err
	case field.Kind() == reflect.Struct, field.Kind() == reflect.Pointer && field.Elem().Kind() == reflect.Struct:
		children, err := MarshalToPackets(field.Interface())
		if err != nil || len(children) == 0 {
			return nil, false, err
		}
		data, err := bertlv.Encode(children)
		return data, err == nil, err
	}
	return nil, false, nil
}
