package arbint

import (
	"errors"
	"fmt"
)

// Kind classifies why a value was rejected.
type Kind uint8

const (
	// PosOverflow means the value exceeds Max.
	PosOverflow Kind = iota + 1
	// NegOverflow means the value is below Min.
	NegOverflow
	// Empty means the text input was empty.
	Empty
	// InvalidDigit means the text contained a character that is illegal for
	// the base, or a misplaced sign.
	InvalidDigit
	// Zero is reserved for non-zero types; the bounded integers never report it.
	Zero
	// Unknown covers parser failures with no better classification.
	Unknown
)

var (
	ErrPosOverflow  = errors.New("number too large to fit in target type")
	ErrNegOverflow  = errors.New("number too small to fit in target type")
	ErrEmpty        = errors.New("cannot parse integer from empty string")
	ErrInvalidDigit = errors.New("invalid digit found in string")
	ErrZero         = errors.New("number would be zero for non-zero type")
	ErrUnknown      = errors.New("unknown integer error")

	// ErrByteLength is returned when a byte slice does not hold exactly
	// Bytes() bytes.
	ErrByteLength = errors.New("byte length does not match the logical width")

	// ErrFieldOutOfRange is returned when a bit field does not lie inside
	// its container.
	ErrFieldOutOfRange = errors.New("bit field exceeds the container width")
)

func (k Kind) String() string {
	switch k {
	case PosOverflow:
		return "PosOverflow"
	case NegOverflow:
		return "NegOverflow"
	case Empty:
		return "Empty"
	case InvalidDigit:
		return "InvalidDigit"
	case Zero:
		return "Zero"
	case Unknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Err returns the sentinel error matching k.
func (k Kind) Err() error {
	switch k {
	case PosOverflow:
		return ErrPosOverflow
	case NegOverflow:
		return ErrNegOverflow
	case Empty:
		return ErrEmpty
	case InvalidDigit:
		return ErrInvalidDigit
	case Zero:
		return ErrZero
	default:
		return ErrUnknown
	}
}

// RangeError reports a value outside the range of a bounded integer type.
//
// The sentinel matching Kind can be tested with errors.Is.
type RangeError struct {
	Kind  Kind
	Value string // the rejected value, in decimal
	Type  string // e.g. "u7" or "i20"
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("arbint: %s out of range for %s: %v", e.Value, e.Type, e.Kind.Err())
}

func (e *RangeError) Unwrap() error { return e.Kind.Err() }

func newRangeError(kind Kind, value any, typ string) *RangeError {
	return &RangeError{Kind: kind, Value: fmt.Sprint(value), Type: typ}
}

// ParseError reports a failed text conversion.
//
// The sentinel matching Kind and the underlying strconv error (if any) can be
// tested with errors.Is.
type ParseError struct {
	Kind  Kind
	Input string
	Base  int
	Type  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("arbint: parsing %q as %s (base %d): %v", e.Input, e.Type, e.Base, e.Kind.Err())
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.Err()}
	}
	return []error{e.Kind.Err(), e.Err}
}

// FieldError reports a bit field that does not fit inside its container.
type FieldError struct {
	Start     int
	Width     int
	Container int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("arbint: %d-bit field at bit %d exceeds %d-bit container", e.Width, e.Start, e.Container)
}

func (e *FieldError) Unwrap() error { return ErrFieldOutOfRange }

// KindOf returns the Kind carried by a RangeError or ParseError in err's chain.
func KindOf(err error) (Kind, bool) {
	var re *RangeError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}
