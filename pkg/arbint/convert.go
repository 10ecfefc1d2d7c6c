package arbint

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// WidenUInt reinterprets v at the larger logical width M on the same
// storage. It panics if M is narrower than v's width or does not fit T.
//
//	var x arbint.U5 = arbint.NewUInt[uint8, arbint.W5](17)
//	y := arbint.WidenUInt[arbint.W7](x) // arbint.U7
func WidenUInt[M Width, T constraints.Unsigned, W Width](v UInt[T, W]) UInt[T, M] {
	var dst UInt[T, M]
	mustWiden(v.Bits(), dst.Bits())
	return UInt[T, M]{raw: v.raw}
}

// WidenInt reinterprets v at the larger logical width M on the same storage.
// It panics if M is narrower than v's width or does not fit T.
func WidenInt[M Width, T constraints.Signed, W Width](v Int[T, W]) Int[T, M] {
	var dst Int[T, M]
	mustWiden(v.Bits(), dst.Bits())
	return Int[T, M]{raw: v.raw}
}

// ConvertUInt moves v to another storage type and width that holds every
// value of v's type. It panics if WD is narrower than WS.
func ConvertUInt[TD constraints.Unsigned, WD Width, TS constraints.Unsigned, WS Width](v UInt[TS, WS]) UInt[TD, WD] {
	var dst UInt[TD, WD]
	mustWiden(v.Bits(), dst.Bits())
	return UInt[TD, WD]{raw: TD(v.raw)}
}

// ConvertInt moves v to another storage type and width that holds every
// value of v's type. It panics if WD is narrower than WS.
func ConvertInt[TD constraints.Signed, WD Width, TS constraints.Signed, WS Width](v Int[TS, WS]) Int[TD, WD] {
	var dst Int[TD, WD]
	mustWiden(v.Bits(), dst.Bits())
	return Int[TD, WD]{raw: TD(v.raw)}
}

// UIntToInt converts v to a signed type with room for its sign bit. It
// panics unless WD is wider than WS.
func UIntToInt[TD constraints.Signed, WD Width, TS constraints.Unsigned, WS Width](v UInt[TS, WS]) Int[TD, WD] {
	var dst Int[TD, WD]
	mustWiden(v.Bits()+1, dst.Bits())
	return Int[TD, WD]{raw: TD(v.raw)}
}

func mustWiden(from, to int) {
	if to < from {
		panic(fmt.Sprintf("arbint: cannot widen %d bits into %d bits", from, to))
	}
}

// TryConvertUInt converts v to any unsigned type, failing with a
// PosOverflow *RangeError if the value does not fit.
func TryConvertUInt[TD constraints.Unsigned, WD Width, TS constraints.Unsigned, WS Width](v UInt[TS, WS]) (UInt[TD, WD], error) {
	return UIntFrom[TD, WD](v.raw)
}

// TryConvertInt converts v to any signed type, failing with a *RangeError if
// the value does not fit.
func TryConvertInt[TD constraints.Signed, WD Width, TS constraints.Signed, WS Width](v Int[TS, WS]) (Int[TD, WD], error) {
	return IntFrom[TD, WD](v.raw)
}

// TryIntToUInt converts v to an unsigned type, failing with a NegOverflow
// *RangeError for negative values and PosOverflow for values above Max.
func TryIntToUInt[TD constraints.Unsigned, WD Width, TS constraints.Signed, WS Width](v Int[TS, WS]) (UInt[TD, WD], error) {
	return UIntFrom[TD, WD](v.raw)
}

// TryUIntToInt converts v to a signed type, failing with a PosOverflow
// *RangeError if the value does not fit.
func TryUIntToInt[TD constraints.Signed, WD Width, TS constraints.Unsigned, WS Width](v UInt[TS, WS]) (Int[TD, WD], error) {
	return IntFrom[TD, WD](v.raw)
}

// UIntFrom converts a native integer of any type, with range validation.
func UIntFrom[T constraints.Unsigned, W Width, C constraints.Integer](c C) (UInt[T, W], error) {
	var u UInt[T, W]
	if c < 0 {
		return u, newRangeError(NegOverflow, c, u.typeName())
	}
	if uint64(c) > uint64(u.Mask()) {
		return u, newRangeError(PosOverflow, c, u.typeName())
	}
	return UInt[T, W]{raw: T(c)}, nil
}

// IntFrom converts a native integer of any type, with range validation.
func IntFrom[T constraints.Signed, W Width, C constraints.Integer](c C) (Int[T, W], error) {
	var i Int[T, W]
	if c < 0 {
		if int64(c) < int64(i.Min().raw) {
			return i, newRangeError(NegOverflow, c, i.typeName())
		}
		return Int[T, W]{raw: T(c)}, nil
	}
	if uint64(c) > uint64(i.Max().raw) {
		return i, newRangeError(PosOverflow, c, i.typeName())
	}
	return Int[T, W]{raw: T(c)}, nil
}
