package nanbox

import (
	"fmt"
	"math"
	"strconv"
)

// Kind is the variant of a Value.
type Kind uint8

// Value kinds.
const (
	KindFloat Kind = iota
	KindUint
	KindCell
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindUint:
		return "uint"
	case KindCell:
		return "cell"
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is the logical value held by a Word. The zero Value is Float(0).
//
// Values are comparable with ==. Floats are compared by their bits, so a NaN
// equals a NaN with the same payload.
type Value struct {
	kind Kind
	tag  CellTag

	// payload is the float bits, the integer, or the cell address.
	payload uint64
}

// Float returns a float Value.
func Float(f float64) Value {
	return Value{
		kind:    KindFloat,
		payload: math.Float64bits(f),
	}
}

// Uint returns an unsigned integer Value. Encode rejects n > MaxUint.
func Uint(n uint64) Value {
	return Value{
		kind:    KindUint,
		payload: n,
	}
}

// Cell returns a cell Value. Encode rejects an invalid tag and addr >
// MaxAddress.
func Cell(tag CellTag, addr uint64) Value {
	return Value{
		kind:    KindCell,
		tag:     tag,
		payload: addr,
	}
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Float returns the float if the value is a Float.
func (v Value) Float() (f float64, ok bool) {
	if v.kind != KindFloat {
		return 0, false
	}

	return math.Float64frombits(v.payload), true
}

// Uint returns the integer if the value is an UnsignedInt.
func (v Value) Uint() (n uint64, ok bool) {
	if v.kind != KindUint {
		return 0, false
	}

	return v.payload, true
}

// Cell returns the tag and address if the value is a Cell.
func (v Value) Cell() (tag CellTag, addr uint64, ok bool) {
	if v.kind != KindCell {
		return 0, 0, false
	}

	return v.tag, v.payload, true
}

func (v Value) String() string {
	switch v.kind {
	case KindFloat:
		f := math.Float64frombits(v.payload)
		if math.IsNaN(f) {
			return fmt.Sprintf("float(NaN:0x%016x)", v.payload)
		}

		return "float(" + strconv.FormatFloat(f, 'g', -1, 64) + ")"
	case KindUint:
		return "uint(" + strconv.FormatUint(v.payload, 10) + ")"
	case KindCell:
		return fmt.Sprintf("cell(%s, 0x%x)", v.tag, v.payload)
	}

	return v.kind.String()
}
