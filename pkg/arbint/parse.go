package arbint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ParseUInt interprets s in the given base (0, or 2 to 36) like
// strconv.ParseUint, with an optional leading '+', and checks the result
// against the range of the type. Base 0 accepts the 0b, 0o and 0x prefixes.
// Underscores are rejected in every base as an InvalidDigit; any other base
// yields a ParseError of kind Unknown.
func ParseUInt[T constraints.Unsigned, W Width](s string, base int) (UInt[T, W], error) {
	var u UInt[T, W]
	if s == "" {
		return u, &ParseError{Kind: Empty, Input: s, Base: base, Type: u.typeName()}
	}
	if err := checkSyntax(s, base); err != nil {
		return u, newParseError(err, s, base, u.typeName(), PosOverflow)
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), base, u.Bits())
	if err != nil {
		return u, newParseError(err, s, base, u.typeName(), PosOverflow)
	}
	return UInt[T, W]{raw: T(v)}, nil
}

// ParseInt interprets s in the given base (0, or 2 to 36) like
// strconv.ParseInt and checks the result against the range of the type.
// Prefixes, underscores and bases are handled as in ParseUInt.
func ParseInt[T constraints.Signed, W Width](s string, base int) (Int[T, W], error) {
	var i Int[T, W]
	if s == "" {
		return i, &ParseError{Kind: Empty, Input: s, Base: base, Type: i.typeName()}
	}
	if err := checkSyntax(s, base); err != nil {
		return i, newParseError(err, s, base, i.typeName(), NegOverflow)
	}
	v, err := strconv.ParseInt(s, base, i.Bits())
	if err != nil {
		overflow := PosOverflow
		if s[0] == '-' {
			overflow = NegOverflow
		}
		return i, newParseError(err, s, base, i.typeName(), overflow)
	}
	return Int[T, W]{raw: T(v)}, nil
}

// checkSyntax rejects what strconv would accept but the text form of a
// bounded integer never produces.
func checkSyntax(s string, base int) error {
	if base != 0 && (base < 2 || base > 36) {
		return fmt.Errorf("invalid base %d", base)
	}
	if strings.Contains(s, "_") {
		return strconv.ErrSyntax
	}
	return nil
}

func newParseError(err error, s string, base int, typ string, overflow Kind) *ParseError {
	kind := Unknown
	switch {
	case errors.Is(err, strconv.ErrRange):
		kind = overflow
	case errors.Is(err, strconv.ErrSyntax):
		kind = InvalidDigit
	}
	return &ParseError{Kind: kind, Input: s, Base: base, Type: typ, Err: err}
}
