package nanbox

import "fmt"

// CellTag is the 3 bit tag of a cell. The codec stores and returns it without
// interpretation.
type CellTag uint8

// Cell tags. Tag 0 is reserved; see the package documentation.
const (
	Tag1 CellTag = iota + 1
	Tag2
	Tag3
	Tag4
	Tag5
	Tag6
	Tag7
)

// Tags lists every valid cell tag in ascending order.
var Tags = [...]CellTag{Tag1, Tag2, Tag3, Tag4, Tag5, Tag6, Tag7}

// Valid returns true if the tag can be encoded.
func (t CellTag) Valid() bool {
	return t >= Tag1 && t <= Tag7
}

func (t CellTag) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tag(invalid:%d)", uint8(t))
	}

	return fmt.Sprintf("tag%d", uint8(t))
}
