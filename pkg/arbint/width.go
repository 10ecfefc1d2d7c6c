package arbint

// Width marks the logical bit width of a bounded integer type. Implementations
// are empty structs whose Bits method returns a constant.
type Width interface {
	Bits() int
}

// Width markers for 1 to 64 bits.
type (
	W1  struct{}
	W2  struct{}
	W3  struct{}
	W4  struct{}
	W5  struct{}
	W6  struct{}
	W7  struct{}
	W8  struct{}
	W9  struct{}
	W10 struct{}
	W11 struct{}
	W12 struct{}
	W13 struct{}
	W14 struct{}
	W15 struct{}
	W16 struct{}
	W17 struct{}
	W18 struct{}
	W19 struct{}
	W20 struct{}
	W21 struct{}
	W22 struct{}
	W23 struct{}
	W24 struct{}
	W25 struct{}
	W26 struct{}
	W27 struct{}
	W28 struct{}
	W29 struct{}
	W30 struct{}
	W31 struct{}
	W32 struct{}
	W33 struct{}
	W34 struct{}
	W35 struct{}
	W36 struct{}
	W37 struct{}
	W38 struct{}
	W39 struct{}
	W40 struct{}
	W41 struct{}
	W42 struct{}
	W43 struct{}
	W44 struct{}
	W45 struct{}
	W46 struct{}
	W47 struct{}
	W48 struct{}
	W49 struct{}
	W50 struct{}
	W51 struct{}
	W52 struct{}
	W53 struct{}
	W54 struct{}
	W55 struct{}
	W56 struct{}
	W57 struct{}
	W58 struct{}
	W59 struct{}
	W60 struct{}
	W61 struct{}
	W62 struct{}
	W63 struct{}
	W64 struct{}
)

func (W1) Bits() int { return 1 }
func (W2) Bits() int { return 2 }
func (W3) Bits() int { return 3 }
func (W4) Bits() int { return 4 }
func (W5) Bits() int { return 5 }
func (W6) Bits() int { return 6 }
func (W7) Bits() int { return 7 }
func (W8) Bits() int { return 8 }
func (W9) Bits() int { return 9 }
func (W10) Bits() int { return 10 }
func (W11) Bits() int { return 11 }
func (W12) Bits() int { return 12 }
func (W13) Bits() int { return 13 }
func (W14) Bits() int { return 14 }
func (W15) Bits() int { return 15 }
func (W16) Bits() int { return 16 }
func (W17) Bits() int { return 17 }
func (W18) Bits() int { return 18 }
func (W19) Bits() int { return 19 }
func (W20) Bits() int { return 20 }
func (W21) Bits() int { return 21 }
func (W22) Bits() int { return 22 }
func (W23) Bits() int { return 23 }
func (W24) Bits() int { return 24 }
func (W25) Bits() int { return 25 }
func (W26) Bits() int { return 26 }
func (W27) Bits() int { return 27 }
func (W28) Bits() int { return 28 }
func (W29) Bits() int { return 29 }
func (W30) Bits() int { return 30 }
func (W31) Bits() int { return 31 }
func (W32) Bits() int { return 32 }
func (W33) Bits() int { return 33 }
func (W34) Bits() int { return 34 }
func (W35) Bits() int { return 35 }
func (W36) Bits() int { return 36 }
func (W37) Bits() int { return 37 }
func (W38) Bits() int { return 38 }
func (W39) Bits() int { return 39 }
func (W40) Bits() int { return 40 }
func (W41) Bits() int { return 41 }
func (W42) Bits() int { return 42 }
func (W43) Bits() int { return 43 }
func (W44) Bits() int { return 44 }
func (W45) Bits() int { return 45 }
func (W46) Bits() int { return 46 }
func (W47) Bits() int { return 47 }
func (W48) Bits() int { return 48 }
func (W49) Bits() int { return 49 }
func (W50) Bits() int { return 50 }
func (W51) Bits() int { return 51 }
func (W52) Bits() int { return 52 }
func (W53) Bits() int { return 53 }
func (W54) Bits() int { return 54 }
func (W55) Bits() int { return 55 }
func (W56) Bits() int { return 56 }
func (W57) Bits() int { return 57 }
func (W58) Bits() int { return 58 }
func (W59) Bits() int { return 59 }
func (W60) Bits() int { return 60 }
func (W61) Bits() int { return 61 }
func (W62) Bits() int { return 62 }
func (W63) Bits() int { return 63 }
func (W64) Bits() int { return 64 }
