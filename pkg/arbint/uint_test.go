package arbint

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func u7(v uint8) U7 { return NewUInt[uint8, W7](v) }

// mustPanic fails the test if f returns normally.
func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}

// overflowPanics runs f and checks that it panics in checked builds and
// returns want otherwise.
func overflowPanics[V comparable](t *testing.T, name string, want V, f func() V) {
	t.Helper()
	if overflowChecks {
		mustPanic(t, name, func() { f() })
		return
	}
	if got := f(); got != want {
		t.Errorf("%s = %v; want %v", name, got, want)
	}
}

func TestUIntConstants(t *testing.T) {
	tests := []struct {
		name  string
		bits  int
		bytes int
		max   uint64
		mask  uint64
	}{
		{"u1", U1{}.Bits(), U1{}.Bytes(), U1{}.Max().Uint64(), uint64(U1{}.Mask())},
		{"u7", U7{}.Bits(), U7{}.Bytes(), U7{}.Max().Uint64(), uint64(U7{}.Mask())},
		{"u17", U17{}.Bits(), U17{}.Bytes(), U17{}.Max().Uint64(), uint64(U17{}.Mask())},
		{"u24", U24{}.Bits(), U24{}.Bytes(), U24{}.Max().Uint64(), uint64(U24{}.Mask())},
		{"u40", U40{}.Bits(), U40{}.Bytes(), U40{}.Max().Uint64(), uint64(U40{}.Mask())},
		{"u64", U64{}.Bits(), U64{}.Bytes(), U64{}.Max().Uint64(), uint64(U64{}.Mask())},
	}
	want := map[string][4]uint64{
		"u1":  {1, 1, 1, 1},
		"u7":  {7, 1, 127, 0x7F},
		"u17": {17, 3, 131071, 0x1FFFF},
		"u24": {24, 3, 0xFFFFFF, 0xFFFFFF},
		"u40": {40, 5, 1<<40 - 1, 1<<40 - 1},
		"u64": {64, 8, math.MaxUint64, math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := [4]uint64{uint64(tt.bits), uint64(tt.bytes), tt.max, tt.mask}
			if diff := cmp.Diff(want[tt.name], got); diff != "" {
				t.Errorf("constants mismatch (-want +got):\n%s", diff)
			}
		})
	}

	var z U7
	if !z.IsZero() || z.Min() != z || z.Zero() != z || z.One().Value() != 1 || z.Signed() {
		t.Error("zero value of U7 has wrong derived constants")
	}
}

func TestUIntConstruction(t *testing.T) {
	if got := u7(127).Value(); got != 127 {
		t.Errorf("NewUInt(127) = %d", got)
	}

	_, err := TryNewUInt[uint8, W7](190)
	if !errors.Is(err, ErrPosOverflow) {
		t.Fatalf("TryNewUInt(190) error = %v; want ErrPosOverflow", err)
	}
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("TryNewUInt(190) error is %T; want *RangeError", err)
	}
	if diff := cmp.Diff(RangeError{Kind: PosOverflow, Value: "190", Type: "u7"}, *re); diff != "" {
		t.Errorf("RangeError mismatch (-want +got):\n%s", diff)
	}

	mustPanic(t, "NewUInt(190)", func() { NewUInt[uint8, W7](190) })

	if got := NewUIntWrapping[uint8, W7](190); got != u7(62) {
		t.Errorf("NewUIntWrapping(190) = %v; want 62", got)
	}
	if got, clamped := NewUIntSaturating[uint8, W7](190); got != u7(127) || !clamped {
		t.Errorf("NewUIntSaturating(190) = (%v, %t); want (127, true)", got, clamped)
	}
	if got, clamped := NewUIntSaturating[uint8, W7](12); got != u7(12) || clamped {
		t.Errorf("NewUIntSaturating(12) = (%v, %t); want (12, false)", got, clamped)
	}
	if got, overflow := NewUIntOverflowing[uint8, W7](190); got != u7(62) || !overflow {
		t.Errorf("NewUIntOverflowing(190) = (%v, %t); want (62, true)", got, overflow)
	}
	if got := NewUIntUnchecked[uint16, W12](4095); got.Value() != 4095 {
		t.Errorf("NewUIntUnchecked(4095) = %v", got)
	}
}

func TestUIntBool(t *testing.T) {
	if !UIntToBool(UIntFromBool[uint8](true)) {
		t.Error("true does not round trip")
	}
	if UIntToBool(UIntFromBool[uint64](false)) {
		t.Error("false does not round trip")
	}
	if got := UIntFromBool[uint8](true); got != NewUInt[uint8, W1](1) {
		t.Errorf("UIntFromBool(true) = %v; want 1", got)
	}
}

func TestUIntInvalidWidth(t *testing.T) {
	mustPanic(t, "UInt[uint8, W9].Bits", func() { UInt[uint8, W9]{}.Bits() })
	mustPanic(t, "NewUInt[uint16, W17]", func() { NewUInt[uint16, W17](1) })
}

func TestUIntAddPolicies(t *testing.T) {
	a, b := u7(127), u7(3)

	if _, ok := a.CheckedAdd(b); ok {
		t.Error("127.CheckedAdd(3) should be none")
	}
	if got := a.WrappingAdd(b); got != u7(2) {
		t.Errorf("127.WrappingAdd(3) = %v; want 2", got)
	}
	if got := a.SaturatingAdd(b); got != u7(127) {
		t.Errorf("127.SaturatingAdd(3) = %v; want 127", got)
	}
	if got, overflow := a.OverflowingAdd(b); got != u7(2) || !overflow {
		t.Errorf("127.OverflowingAdd(3) = (%v, %t); want (2, true)", got, overflow)
	}
	if got := u7(100).Add(u7(27)); got != u7(127) {
		t.Errorf("100 + 27 = %v", got)
	}
	overflowPanics(t, "127 + 3", u7(2), func() U7 { return a.Add(b) })

	full := U64{}.Max()
	if got, overflow := full.OverflowingAdd((U64{}).One()); got.Uint64() != 0 || !overflow {
		t.Errorf("u64 max + 1 = (%v, %t); want (0, true)", got, overflow)
	}
}

func TestUIntSubMul(t *testing.T) {
	tests := []struct {
		name     string
		op       func() (U7, bool)
		want     uint8
		overflow bool
	}{
		{"3 - 5", func() (U7, bool) { return u7(3).OverflowingSub(u7(5)) }, 126, true},
		{"5 - 3", func() (U7, bool) { return u7(5).OverflowingSub(u7(3)) }, 2, false},
		{"20 * 7", func() (U7, bool) { return u7(20).OverflowingMul(u7(7)) }, 12, true},
		{"9 * 14", func() (U7, bool) { return u7(9).OverflowingMul(u7(14)) }, 126, false},
		{"3 ** 4", func() (U7, bool) { return u7(3).OverflowingPow(4) }, 81, false},
		{"3 ** 5", func() (U7, bool) { return u7(3).OverflowingPow(5) }, 115, true},
		{"2 ** 7", func() (U7, bool) { return u7(2).OverflowingPow(7) }, 0, true},
		{"0 ** 0", func() (U7, bool) { return u7(0).OverflowingPow(0) }, 1, false},
		{"neg 5", func() (U7, bool) { return u7(5).OverflowingNeg() }, 123, true},
		{"neg 0", func() (U7, bool) { return u7(0).OverflowingNeg() }, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, overflow := tt.op()
			if got.Value() != tt.want || overflow != tt.overflow {
				t.Errorf("got (%v, %t); want (%d, %t)", got, overflow, tt.want, tt.overflow)
			}
		})
	}

	if got := u7(3).SaturatingSub(u7(5)); !got.IsZero() {
		t.Errorf("3.SaturatingSub(5) = %v; want 0", got)
	}
	if got := u7(20).SaturatingMul(u7(7)); got != u7(127) {
		t.Errorf("20.SaturatingMul(7) = %v; want 127", got)
	}
	if got := u7(3).SaturatingPow(5); got != u7(127) {
		t.Errorf("3.SaturatingPow(5) = %v; want 127", got)
	}
	if _, ok := u7(3).CheckedSub(u7(5)); ok {
		t.Error("3.CheckedSub(5) should be none")
	}
	if got := u7(1).WrappingNeg(); got != u7(127) {
		t.Errorf("1.WrappingNeg() = %v; want 127", got)
	}

	u4 := NewUInt[uint8, W4]
	if got, overflow := u4(15).OverflowingMul(u4(15)); got.Value() != 1 || !overflow {
		t.Errorf("u4 15 * 15 = (%v, %t); want (1, true)", got, overflow)
	}
	if got, overflow := (U64{}).Max().OverflowingMul(NewUInt[uint64, W64](2)); got.Uint64() != math.MaxUint64-1 || !overflow {
		t.Errorf("u64 max * 2 = (%v, %t)", got, overflow)
	}

	overflowPanics(t, "3 - 5", u7(126), func() U7 { return u7(3).Sub(u7(5)) })
	overflowPanics(t, "20 * 7", u7(12), func() U7 { return u7(20).Mul(u7(7)) })
}

func TestUIntDivision(t *testing.T) {
	if got := u7(100).Div(u7(7)); got != u7(14) {
		t.Errorf("100 / 7 = %v", got)
	}
	if got := u7(100).Rem(u7(7)); got != u7(2) {
		t.Errorf("100 %% 7 = %v", got)
	}
	if got := u7(100).DivEuclid(u7(7)); got != u7(14) {
		t.Errorf("100.DivEuclid(7) = %v", got)
	}
	if _, ok := u7(100).CheckedDiv(u7(0)); ok {
		t.Error("CheckedDiv by zero should be none")
	}
	if _, ok := u7(100).CheckedRemEuclid(u7(0)); ok {
		t.Error("CheckedRemEuclid by zero should be none")
	}
	if got, overflow := u7(9).OverflowingRem(u7(4)); got != u7(1) || overflow {
		t.Errorf("9.OverflowingRem(4) = (%v, %t)", got, overflow)
	}
	mustPanic(t, "Div by zero", func() { u7(1).Div(u7(0)) })
	mustPanic(t, "WrappingRem by zero", func() { u7(1).WrappingRem(u7(0)) })
}

func TestUIntMisc(t *testing.T) {
	if got := u7(3).AbsDiff(u7(10)); got != u7(7) {
		t.Errorf("AbsDiff(3, 10) = %v", got)
	}
	if got := u7(10).AbsDiff(u7(3)); got != u7(7) {
		t.Errorf("AbsDiff(10, 3) = %v", got)
	}

	for v, want := range map[uint8]bool{0: false, 1: true, 64: true, 96: false} {
		if got := u7(v).IsPowerOfTwo(); got != want {
			t.Errorf("%d.IsPowerOfTwo() = %t; want %t", v, got, want)
		}
	}

	tests := []struct {
		in   uint8
		want uint8
		ok   bool
	}{
		{0, 1, true}, {1, 1, true}, {5, 8, true}, {64, 64, true}, {65, 0, false}, {127, 0, false},
	}
	for _, tt := range tests {
		got, ok := u7(tt.in).CheckedNextPowerOfTwo()
		if got.Value() != tt.want || ok != tt.ok {
			t.Errorf("%d.CheckedNextPowerOfTwo() = (%v, %t); want (%d, %t)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	overflowPanics(t, "65.NextPowerOfTwo", u7(0), func() U7 { return u7(65).NextPowerOfTwo() })

	if u7(3).Cmp(u7(5)) != -1 || u7(5).Cmp(u7(3)) != 1 || u7(4).Cmp(u7(4)) != 0 {
		t.Error("Cmp ordering is wrong")
	}
	if !u7(3).Less(u7(5)) || u7(5).Less(u7(5)) {
		t.Error("Less ordering is wrong")
	}
}

func TestUIntBitwise(t *testing.T) {
	u17 := NewUInt[uint32, W17]
	if got := u17(0b11001100).And(u17(0b01101001)); got != u17(0b01001000) {
		t.Errorf("and = %b; want 1001000", got)
	}
	if got := u17(0b1100).Or(u17(0b0011)); got != u17(0b1111) {
		t.Errorf("or = %b", got)
	}
	if got := u17(0b1100).Xor(u17(0b0110)); got != u17(0b1010) {
		t.Errorf("xor = %b", got)
	}
	if got := u17(0b1100).AndNot(u17(0b0110)); got != u17(0b1000) {
		t.Errorf("and not = %b", got)
	}
	if got := u7(0).Not(); got != u7(127) {
		t.Errorf("not 0 = %v; want 127", got)
	}
	if got := u17(0).Not(); got != (U17{}).Max() {
		t.Errorf("not 0 = %v; want u17 max", got)
	}
}

func TestUIntShifts(t *testing.T) {
	x := u7(0b1000001)

	if got := x.Shl(1); got != u7(0b0000010) {
		t.Errorf("Shl(1) = %07b", got)
	}
	if got := x.Shr(6); got != u7(1) {
		t.Errorf("Shr(6) = %v", got)
	}
	if _, ok := x.CheckedShl(7); ok {
		t.Error("CheckedShl(7) should be none")
	}
	if got, ok := x.CheckedShr(3); !ok || got != u7(0b1000) {
		t.Errorf("CheckedShr(3) = (%v, %t)", got, ok)
	}
	if got := x.WrappingShl(8); got != u7(0b0000010) {
		t.Errorf("WrappingShl(8) = %07b", got)
	}
	if got, overflow := x.OverflowingShl(7); got != x || !overflow {
		t.Errorf("OverflowingShl(7) = (%v, %t)", got, overflow)
	}
	if got, overflow := x.OverflowingShr(9); got != u7(0b10000) || !overflow {
		t.Errorf("OverflowingShr(9) = (%v, %t)", got, overflow)
	}
	overflowPanics(t, "Shl(7)", x, func() U7 { return x.Shl(7) })
	overflowPanics(t, "Shr(7)", x, func() U7 { return x.Shr(7) })
}

func TestUIntRotate(t *testing.T) {
	one := u7(1)
	if got := one.RotateLeft(1); got != u7(2) {
		t.Errorf("RotateLeft(1) = %v", got)
	}
	if got := one.RotateLeft(7); got != one {
		t.Errorf("RotateLeft(7) = %v", got)
	}
	if got := one.RotateRight(1); got != u7(64) {
		t.Errorf("RotateRight(1) = %v", got)
	}
	if got := u7(0b1100000).RotateLeft(2); got != u7(0b0000011) {
		t.Errorf("RotateLeft(2) = %07b", got)
	}
	full := NewUInt[uint64, W64](1)
	if got := full.RotateRight(1); got.Uint64() != 1<<63 {
		t.Errorf("u64 RotateRight(1) = %x", got)
	}
}

func TestUIntCounts(t *testing.T) {
	tests := []struct {
		in   uint8
		want [6]int // ones, zeros, leading ones, leading zeros, trailing ones, trailing zeros
	}{
		{0b0001100, [6]int{2, 5, 0, 3, 0, 2}},
		{0b1110011, [6]int{5, 2, 3, 0, 2, 0}},
		{0, [6]int{0, 7, 0, 7, 0, 7}},
		{127, [6]int{7, 0, 7, 0, 7, 0}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%07b", tt.in), func(t *testing.T) {
			v := u7(tt.in)
			got := [6]int{v.CountOnes(), v.CountZeros(), v.LeadingOnes(), v.LeadingZeros(), v.TrailingOnes(), v.TrailingZeros()}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("counts mismatch (-want +got):\n%s", diff)
			}
		})
	}

	full := U64{}.Max()
	if full.LeadingOnes() != 64 || full.TrailingOnes() != 64 || full.CountZeros() != 0 {
		t.Error("u64 max counts are wrong")
	}
}

func TestUIntReverseAndSwap(t *testing.T) {
	if got := u7(0b0000011).ReverseBits(); got != u7(0b1100000) {
		t.Errorf("ReverseBits = %07b", got)
	}
	if got := NewUInt[uint64, W64](1).ReverseBits(); got.Uint64() != 1<<63 {
		t.Errorf("u64 ReverseBits = %x", got)
	}

	u24 := NewUInt[uint32, W24]
	if got := u24(0x123456).SwapBytes(); got != u24(0x563412) {
		t.Errorf("SwapBytes = %x; want 563412", got)
	}
	mustPanic(t, "u7 SwapBytes", func() { u7(1).SwapBytes() })
	mustPanic(t, "u20 ToBE", func() { NewUInt[uint32, W20](1).ToBE() })

	v := u24(0x123456)
	if diff := cmp.Diff(v.BEBytes(), v.ToBE().NEBytes()); diff != "" {
		t.Errorf("ToBE native bytes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(v.LEBytes(), v.ToLE().NEBytes()); diff != "" {
		t.Errorf("ToLE native bytes mismatch (-want +got):\n%s", diff)
	}
	if got := v.ToBE().FromBE(); got != v {
		t.Errorf("FromBE(ToBE(v)) = %x", got)
	}
	if got := v.ToLE().FromLE(); got != v {
		t.Errorf("FromLE(ToLE(v)) = %x", got)
	}
}

func TestUIntText(t *testing.T) {
	v := u7(5)
	if got := fmt.Sprintf("%v %s %d %x %08b", v, v, v, v, v); got != "5 5 5 5 00000101" {
		t.Errorf("Sprintf = %q", got)
	}
	if got := NewUInt[uint64, W40](0x123456789A).String(); got != "78187493530" {
		t.Errorf("String = %q", got)
	}

	text, err := u7(127).MarshalText()
	if err != nil || string(text) != "127" {
		t.Fatalf("MarshalText = (%q, %v)", text, err)
	}
	var back U7
	if err := back.UnmarshalText(text); err != nil || back != u7(127) {
		t.Errorf("UnmarshalText = (%v, %v)", back, err)
	}
	if err := back.UnmarshalText([]byte("128")); !errors.Is(err, ErrPosOverflow) {
		t.Errorf("UnmarshalText(128) error = %v", err)
	}
}
