package nanbox_test

import (
	"fmt"

	"github.com/calebcase/nanbox"
)

func Example() {
	for _, v := range []nanbox.Value{
		nanbox.Uint(42),
		nanbox.Cell(nanbox.Tag1, 0x1000),
		nanbox.Float(3.25),
	} {
		w := nanbox.MustEncode(v)
		fmt.Println(w, nanbox.IsBoxed(w), nanbox.Decode(w))
	}

	// Output:
	// 0x7ff800000000002b true uint(42)
	// 0xfff9000000001000 true cell(tag1, 0x1000)
	// 0x400a000000000000 false float(3.25)
}

func ExampleEncode() {
	_, err := nanbox.Encode(nanbox.Uint(nanbox.MaxUint + 1))
	fmt.Println(nanbox.OverflowError.Has(err))

	// Output:
	// true
}
