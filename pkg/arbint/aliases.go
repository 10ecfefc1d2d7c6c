package arbint

import "unsafe"

// Unsigned aliases on the smallest storage that holds the width.
type (
	U1  = UInt[uint8, W1]
	U2  = UInt[uint8, W2]
	U3  = UInt[uint8, W3]
	U4  = UInt[uint8, W4]
	U5  = UInt[uint8, W5]
	U6  = UInt[uint8, W6]
	U7  = UInt[uint8, W7]
	U8  = UInt[uint8, W8]
	U9  = UInt[uint16, W9]
	U10 = UInt[uint16, W10]
	U11 = UInt[uint16, W11]
	U12 = UInt[uint16, W12]
	U13 = UInt[uint16, W13]
	U14 = UInt[uint16, W14]
	U15 = UInt[uint16, W15]
	U16 = UInt[uint16, W16]
	U17 = UInt[uint32, W17]
	U18 = UInt[uint32, W18]
	U19 = UInt[uint32, W19]
	U20 = UInt[uint32, W20]
	U21 = UInt[uint32, W21]
	U22 = UInt[uint32, W22]
	U23 = UInt[uint32, W23]
	U24 = UInt[uint32, W24]
	U25 = UInt[uint32, W25]
	U26 = UInt[uint32, W26]
	U27 = UInt[uint32, W27]
	U28 = UInt[uint32, W28]
	U29 = UInt[uint32, W29]
	U30 = UInt[uint32, W30]
	U31 = UInt[uint32, W31]
	U32 = UInt[uint32, W32]
	U33 = UInt[uint64, W33]
	U34 = UInt[uint64, W34]
	U35 = UInt[uint64, W35]
	U36 = UInt[uint64, W36]
	U37 = UInt[uint64, W37]
	U38 = UInt[uint64, W38]
	U39 = UInt[uint64, W39]
	U40 = UInt[uint64, W40]
	U41 = UInt[uint64, W41]
	U42 = UInt[uint64, W42]
	U43 = UInt[uint64, W43]
	U44 = UInt[uint64, W44]
	U45 = UInt[uint64, W45]
	U46 = UInt[uint64, W46]
	U47 = UInt[uint64, W47]
	U48 = UInt[uint64, W48]
	U49 = UInt[uint64, W49]
	U50 = UInt[uint64, W50]
	U51 = UInt[uint64, W51]
	U52 = UInt[uint64, W52]
	U53 = UInt[uint64, W53]
	U54 = UInt[uint64, W54]
	U55 = UInt[uint64, W55]
	U56 = UInt[uint64, W56]
	U57 = UInt[uint64, W57]
	U58 = UInt[uint64, W58]
	U59 = UInt[uint64, W59]
	U60 = UInt[uint64, W60]
	U61 = UInt[uint64, W61]
	U62 = UInt[uint64, W62]
	U63 = UInt[uint64, W63]
	U64 = UInt[uint64, W64]
)

// Signed aliases on the smallest storage that holds the width.
type (
	I1  = Int[int8, W1]
	I2  = Int[int8, W2]
	I3  = Int[int8, W3]
	I4  = Int[int8, W4]
	I5  = Int[int8, W5]
	I6  = Int[int8, W6]
	I7  = Int[int8, W7]
	I8  = Int[int8, W8]
	I9  = Int[int16, W9]
	I10 = Int[int16, W10]
	I11 = Int[int16, W11]
	I12 = Int[int16, W12]
	I13 = Int[int16, W13]
	I14 = Int[int16, W14]
	I15 = Int[int16, W15]
	I16 = Int[int16, W16]
	I17 = Int[int32, W17]
	I18 = Int[int32, W18]
	I19 = Int[int32, W19]
	I20 = Int[int32, W20]
	I21 = Int[int32, W21]
	I22 = Int[int32, W22]
	I23 = Int[int32, W23]
	I24 = Int[int32, W24]
	I25 = Int[int32, W25]
	I26 = Int[int32, W26]
	I27 = Int[int32, W27]
	I28 = Int[int32, W28]
	I29 = Int[int32, W29]
	I30 = Int[int32, W30]
	I31 = Int[int32, W31]
	I32 = Int[int32, W32]
	I33 = Int[int64, W33]
	I34 = Int[int64, W34]
	I35 = Int[int64, W35]
	I36 = Int[int64, W36]
	I37 = Int[int64, W37]
	I38 = Int[int64, W38]
	I39 = Int[int64, W39]
	I40 = Int[int64, W40]
	I41 = Int[int64, W41]
	I42 = Int[int64, W42]
	I43 = Int[int64, W43]
	I44 = Int[int64, W44]
	I45 = Int[int64, W45]
	I46 = Int[int64, W46]
	I47 = Int[int64, W47]
	I48 = Int[int64, W48]
	I49 = Int[int64, W49]
	I50 = Int[int64, W50]
	I51 = Int[int64, W51]
	I52 = Int[int64, W52]
	I53 = Int[int64, W53]
	I54 = Int[int64, W54]
	I55 = Int[int64, W55]
	I56 = Int[int64, W56]
	I57 = Int[int64, W57]
	I58 = Int[int64, W58]
	I59 = Int[int64, W59]
	I60 = Int[int64, W60]
	I61 = Int[int64, W61]
	I62 = Int[int64, W62]
	I63 = Int[int64, W63]
	I64 = Int[int64, W64]
)

// Each alias must fit its storage: a negative difference does not compile.
const (
	_ uint = uint(unsafe.Sizeof(U1{}.raw))*8 - 1
	_ uint = uint(unsafe.Sizeof(U2{}.raw))*8 - 2
	_ uint = uint(unsafe.Sizeof(U3{}.raw))*8 - 3
	_ uint = uint(unsafe.Sizeof(U4{}.raw))*8 - 4
	_ uint = uint(unsafe.Sizeof(U5{}.raw))*8 - 5
	_ uint = uint(unsafe.Sizeof(U6{}.raw))*8 - 6
	_ uint = uint(unsafe.Sizeof(U7{}.raw))*8 - 7
	_ uint = uint(unsafe.Sizeof(U8{}.raw))*8 - 8
	_ uint = uint(unsafe.Sizeof(U9{}.raw))*8 - 9
	_ uint = uint(unsafe.Sizeof(U10{}.raw))*8 - 10
	_ uint = uint(unsafe.Sizeof(U11{}.raw))*8 - 11
	_ uint = uint(unsafe.Sizeof(U12{}.raw))*8 - 12
	_ uint = uint(unsafe.Sizeof(U13{}.raw))*8 - 13
	_ uint = uint(unsafe.Sizeof(U14{}.raw))*8 - 14
	_ uint = uint(unsafe.Sizeof(U15{}.raw))*8 - 15
	_ uint = uint(unsafe.Sizeof(U16{}.raw))*8 - 16
	_ uint = uint(unsafe.Sizeof(U17{}.raw))*8 - 17
	_ uint = uint(unsafe.Sizeof(U18{}.raw))*8 - 18
	_ uint = uint(unsafe.Sizeof(U19{}.raw))*8 - 19
	_ uint = uint(unsafe.Sizeof(U20{}.raw))*8 - 20
	_ uint = uint(unsafe.Sizeof(U21{}.raw))*8 - 21
	_ uint = uint(unsafe.Sizeof(U22{}.raw))*8 - 22
	_ uint = uint(unsafe.Sizeof(U23{}.raw))*8 - 23
	_ uint = uint(unsafe.Sizeof(U24{}.raw))*8 - 24
	_ uint = uint(unsafe.Sizeof(U25{}.raw))*8 - 25
	_ uint = uint(unsafe.Sizeof(U26{}.raw))*8 - 26
	_ uint = uint(unsafe.Sizeof(U27{}.raw))*8 - 27
	_ uint = uint(unsafe.Sizeof(U28{}.raw))*8 - 28
	_ uint = uint(unsafe.Sizeof(U29{}.raw))*8 - 29
	_ uint = uint(unsafe.Sizeof(U30{}.raw))*8 - 30
	_ uint = uint(unsafe.Sizeof(U31{}.raw))*8 - 31
	_ uint = uint(unsafe.Sizeof(U32{}.raw))*8 - 32
	_ uint = uint(unsafe.Sizeof(U33{}.raw))*8 - 33
	_ uint = uint(unsafe.Sizeof(U34{}.raw))*8 - 34
	_ uint = uint(unsafe.Sizeof(U35{}.raw))*8 - 35
	_ uint = uint(unsafe.Sizeof(U36{}.raw))*8 - 36
	_ uint = uint(unsafe.Sizeof(U37{}.raw))*8 - 37
	_ uint = uint(unsafe.Sizeof(U38{}.raw))*8 - 38
	_ uint = uint(unsafe.Sizeof(U39{}.raw))*8 - 39
	_ uint = uint(unsafe.Sizeof(U40{}.raw))*8 - 40
	_ uint = uint(unsafe.Sizeof(U41{}.raw))*8 - 41
	_ uint = uint(unsafe.Sizeof(U42{}.raw))*8 - 42
	_ uint = uint(unsafe.Sizeof(U43{}.raw))*8 - 43
	_ uint = uint(unsafe.Sizeof(U44{}.raw))*8 - 44
	_ uint = uint(unsafe.Sizeof(U45{}.raw))*8 - 45
	_ uint = uint(unsafe.Sizeof(U46{}.raw))*8 - 46
	_ uint = uint(unsafe.Sizeof(U47{}.raw))*8 - 47
	_ uint = uint(unsafe.Sizeof(U48{}.raw))*8 - 48
	_ uint = uint(unsafe.Sizeof(U49{}.raw))*8 - 49
	_ uint = uint(unsafe.Sizeof(U50{}.raw))*8 - 50
	_ uint = uint(unsafe.Sizeof(U51{}.raw))*8 - 51
	_ uint = uint(unsafe.Sizeof(U52{}.raw))*8 - 52
	_ uint = uint(unsafe.Sizeof(U53{}.raw))*8 - 53
	_ uint = uint(unsafe.Sizeof(U54{}.raw))*8 - 54
	_ uint = uint(unsafe.Sizeof(U55{}.raw))*8 - 55
	_ uint = uint(unsafe.Sizeof(U56{}.raw))*8 - 56
	_ uint = uint(unsafe.Sizeof(U57{}.raw))*8 - 57
	_ uint = uint(unsafe.Sizeof(U58{}.raw))*8 - 58
	_ uint = uint(unsafe.Sizeof(U59{}.raw))*8 - 59
	_ uint = uint(unsafe.Sizeof(U60{}.raw))*8 - 60
	_ uint = uint(unsafe.Sizeof(U61{}.raw))*8 - 61
	_ uint = uint(unsafe.Sizeof(U62{}.raw))*8 - 62
	_ uint = uint(unsafe.Sizeof(U63{}.raw))*8 - 63
	_ uint = uint(unsafe.Sizeof(U64{}.raw))*8 - 64

	_ uint = uint(unsafe.Sizeof(I1{}.raw))*8 - 1
	_ uint = uint(unsafe.Sizeof(I2{}.raw))*8 - 2
	_ uint = uint(unsafe.Sizeof(I3{}.raw))*8 - 3
	_ uint = uint(unsafe.Sizeof(I4{}.raw))*8 - 4
	_ uint = uint(unsafe.Sizeof(I5{}.raw))*8 - 5
	_ uint = uint(unsafe.Sizeof(I6{}.raw))*8 - 6
	_ uint = uint(unsafe.Sizeof(I7{}.raw))*8 - 7
	_ uint = uint(unsafe.Sizeof(I8{}.raw))*8 - 8
	_ uint = uint(unsafe.Sizeof(I9{}.raw))*8 - 9
	_ uint = uint(unsafe.Sizeof(I10{}.raw))*8 - 10
	_ uint = uint(unsafe.Sizeof(I11{}.raw))*8 - 11
	_ uint = uint(unsafe.Sizeof(I12{}.raw))*8 - 12
	_ uint = uint(unsafe.Sizeof(I13{}.raw))*8 - 13
	_ uint = uint(unsafe.Sizeof(I14{}.raw))*8 - 14
	_ uint = uint(unsafe.Sizeof(I15{}.raw))*8 - 15
	_ uint = uint(unsafe.Sizeof(I16{}.raw))*8 - 16
	_ uint = uint(unsafe.Sizeof(I17{}.raw))*8 - 17
	_ uint = uint(unsafe.Sizeof(I18{}.raw))*8 - 18
	_ uint = uint(unsafe.Sizeof(I19{}.raw))*8 - 19
	_ uint = uint(unsafe.Sizeof(I20{}.raw))*8 - 20
	_ uint = uint(unsafe.Sizeof(I21{}.raw))*8 - 21
	_ uint = uint(unsafe.Sizeof(I22{}.raw))*8 - 22
	_ uint = uint(unsafe.Sizeof(I23{}.raw))*8 - 23
	_ uint = uint(unsafe.Sizeof(I24{}.raw))*8 - 24
	_ uint = uint(unsafe.Sizeof(I25{}.raw))*8 - 25
	_ uint = uint(unsafe.Sizeof(I26{}.raw))*8 - 26
	_ uint = uint(unsafe.Sizeof(I27{}.raw))*8 - 27
	_ uint = uint(unsafe.Sizeof(I28{}.raw))*8 - 28
	_ uint = uint(unsafe.Sizeof(I29{}.raw))*8 - 29
	_ uint = uint(unsafe.Sizeof(I30{}.raw))*8 - 30
	_ uint = uint(unsafe.Sizeof(I31{}.raw))*8 - 31
	_ uint = uint(unsafe.Sizeof(I32{}.raw))*8 - 32
	_ uint = uint(unsafe.Sizeof(I33{}.raw))*8 - 33
	_ uint = uint(unsafe.Sizeof(I34{}.raw))*8 - 34
	_ uint = uint(unsafe.Sizeof(I35{}.raw))*8 - 35
	_ uint = uint(unsafe.Sizeof(I36{}.raw))*8 - 36
	_ uint = uint(unsafe.Sizeof(I37{}.raw))*8 - 37
	_ uint = uint(unsafe.Sizeof(I38{}.raw))*8 - 38
	_ uint = uint(unsafe.Sizeof(I39{}.raw))*8 - 39
	_ uint = uint(unsafe.Sizeof(I40{}.raw))*8 - 40
	_ uint = uint(unsafe.Sizeof(I41{}.raw))*8 - 41
	_ uint = uint(unsafe.Sizeof(I42{}.raw))*8 - 42
	_ uint = uint(unsafe.Sizeof(I43{}.raw))*8 - 43
	_ uint = uint(unsafe.Sizeof(I44{}.raw))*8 - 44
	_ uint = uint(unsafe.Sizeof(I45{}.raw))*8 - 45
	_ uint = uint(unsafe.Sizeof(I46{}.raw))*8 - 46
	_ uint = uint(unsafe.Sizeof(I47{}.raw))*8 - 47
	_ uint = uint(unsafe.Sizeof(I48{}.raw))*8 - 48
	_ uint = uint(unsafe.Sizeof(I49{}.raw))*8 - 49
	_ uint = uint(unsafe.Sizeof(I50{}.raw))*8 - 50
	_ uint = uint(unsafe.Sizeof(I51{}.raw))*8 - 51
	_ uint = uint(unsafe.Sizeof(I52{}.raw))*8 - 52
	_ uint = uint(unsafe.Sizeof(I53{}.raw))*8 - 53
	_ uint = uint(unsafe.Sizeof(I54{}.raw))*8 - 54
	_ uint = uint(unsafe.Sizeof(I55{}.raw))*8 - 55
	_ uint = uint(unsafe.Sizeof(I56{}.raw))*8 - 56
	_ uint = uint(unsafe.Sizeof(I57{}.raw))*8 - 57
	_ uint = uint(unsafe.Sizeof(I58{}.raw))*8 - 58
	_ uint = uint(unsafe.Sizeof(I59{}.raw))*8 - 59
	_ uint = uint(unsafe.Sizeof(I60{}.raw))*8 - 60
	_ uint = uint(unsafe.Sizeof(I61{}.raw))*8 - 61
	_ uint = uint(unsafe.Sizeof(I62{}.raw))*8 - 62
	_ uint = uint(unsafe.Sizeof(I63{}.raw))*8 - 63
	_ uint = uint(unsafe.Sizeof(I64{}.raw))*8 - 64
)
