package nanbox

import (
	"fmt"
	"math"
)

// Word is the raw 64-bit pattern. It is bit for bit the storage of a float64.
type Word uint64

// Bit layout.
const (
	signBit      uint64 = 0x8000_0000_0000_0000
	exponentMask uint64 = 0x7FF0_0000_0000_0000
	mantissaMask uint64 = 0x000F_FFFF_FFFF_FFFF
	quietBit     uint64 = 0x0008_0000_0000_0000

	// boxBits must all be set on a boxed word.
	boxBits  uint64 = exponentMask | quietBit
	cellBits uint64 = signBit | boxBits

	uintMask uint64 = 0x0007_FFFF_FFFF_FFFF

	tagShift        = 48
	tagMask  uint64 = 0x0007_0000_0000_0000
	addrMask uint64 = 0x0000_FFFF_FFFF_FFFF
)

const (
	// CanonicalNaN is the only NaN pattern Encode produces for a float.
	CanonicalNaN Word = 0x7FF8_0000_0000_0000

	// MaxUint is the largest integer an UnsignedInt can hold.
	MaxUint uint64 = uintMask - 1

	// MaxAddress is the largest address a Cell can hold.
	MaxAddress uint64 = addrMask
)

// Class is the classification of a raw word.
type Class uint8

// Word classes.
const (
	ClassFloat Class = iota
	ClassUint
	ClassCell

	// ClassForeign is a NaN pattern that Encode never produces. It decodes
	// to the canonical NaN.
	ClassForeign
)

func (c Class) String() string {
	switch c {
	case ClassFloat:
		return "float"
	case ClassUint:
		return "uint"
	case ClassCell:
		return "cell"
	case ClassForeign:
		return "foreign"
	}

	return fmt.Sprintf("class(%d)", uint8(c))
}

// Classify returns the class of the word.
func Classify(w Word) Class {
	u := uint64(w)

	// Finite values and the infinities.
	if u&exponentMask != exponentMask || u&mantissaMask == 0 {
		return ClassFloat
	}

	if u&quietBit == 0 {
		return ClassForeign
	}

	if u&signBit == 0 {
		if w == CanonicalNaN {
			return ClassFloat
		}

		return ClassUint
	}

	if u&tagMask == 0 {
		return ClassForeign
	}

	return ClassCell
}

// IsBoxed returns true if the word holds an UnsignedInt or a Cell.
func IsBoxed(w Word) bool {
	u := uint64(w)

	if u&boxBits != boxBits {
		return false
	}

	if u&signBit == 0 {
		return w != CanonicalNaN
	}

	return u&tagMask != 0
}

// FromFloat64 returns the bits of f unchanged. Unlike Encode it does not
// canonicalize NaNs.
func FromFloat64(f float64) Word {
	return Word(math.Float64bits(f))
}

// Float64 returns the bits of w reinterpreted as a float64.
func (w Word) Float64() float64 {
	return math.Float64frombits(uint64(w))
}

// IsFloat returns true if the word decodes to a Float.
func (w Word) IsFloat() bool {
	c := Classify(w)

	return c == ClassFloat || c == ClassForeign
}

// IsUint returns true if the word holds an UnsignedInt.
func (w Word) IsUint() bool {
	return uint64(w)&cellBits == boxBits && w != CanonicalNaN
}

// IsCell returns true if the word holds a Cell.
func (w Word) IsCell() bool {
	return uint64(w)&cellBits == cellBits && uint64(w)&tagMask != 0
}

// IsInf reports whether w is an infinity, according to sign. See math.IsInf.
func (w Word) IsInf(sign int) bool {
	return math.IsInf(w.Float64(), sign)
}

// Float returns the float held by the word.
func (w Word) Float() (f float64, ok bool) {
	return Decode(w).Float()
}

// Uint returns the integer held by the word.
func (w Word) Uint() (n uint64, ok bool) {
	if !w.IsUint() {
		return 0, false
	}

	return uint64(w)&uintMask - 1, true
}

// Cell returns the tag and address held by the word.
func (w Word) Cell() (tag CellTag, addr uint64, ok bool) {
	if !w.IsCell() {
		return 0, 0, false
	}

	return CellTag((uint64(w) & tagMask) >> tagShift), uint64(w) & addrMask, true
}

func (w Word) String() string {
	return fmt.Sprintf("0x%016x", uint64(w))
}
