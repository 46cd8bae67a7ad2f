package nanbox_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/nanbox"
)

func TestValueAccessors(t *testing.T) {
	t.Run("float", func(t *testing.T) {
		v := nanbox.Float(3.25)
		require.Equal(t, nanbox.KindFloat, v.Kind())

		f, ok := v.Float()
		require.True(t, ok)
		require.Equal(t, 3.25, f)

		_, ok = v.Uint()
		require.False(t, ok)

		_, _, ok = v.Cell()
		require.False(t, ok)
	})

	t.Run("uint", func(t *testing.T) {
		v := nanbox.Uint(42)
		require.Equal(t, nanbox.KindUint, v.Kind())

		n, ok := v.Uint()
		require.True(t, ok)
		require.Equal(t, uint64(42), n)

		_, ok = v.Float()
		require.False(t, ok)

		_, _, ok = v.Cell()
		require.False(t, ok)
	})

	t.Run("cell", func(t *testing.T) {
		v := nanbox.Cell(nanbox.Tag5, 0xdead_beef)
		require.Equal(t, nanbox.KindCell, v.Kind())

		tag, addr, ok := v.Cell()
		require.True(t, ok)
		require.Equal(t, nanbox.Tag5, tag)
		require.Equal(t, uint64(0xdead_beef), addr)

		_, ok = v.Float()
		require.False(t, ok)

		_, ok = v.Uint()
		require.False(t, ok)
	})

	t.Run("zero", func(t *testing.T) {
		var v nanbox.Value
		require.Equal(t, nanbox.Float(0), v)
	})
}

func TestValueEquality(t *testing.T) {
	require.True(t, nanbox.Float(math.NaN()) == nanbox.Float(math.NaN()))
	require.False(t, nanbox.Float(0) == nanbox.Float(math.Copysign(0, -1)))
	require.False(t, nanbox.Uint(1) == nanbox.Cell(nanbox.Tag1, 1))
	require.False(t, nanbox.Cell(nanbox.Tag1, 1) == nanbox.Cell(nanbox.Tag2, 1))
}

func TestValueString(t *testing.T) {
	type TC struct {
		Input  nanbox.Value
		Output string
	}

	tcs := []TC{
		{nanbox.Float(3.25), "float(3.25)"},
		{nanbox.Float(math.Inf(-1)), "float(-Inf)"},
		{nanbox.Float(nanbox.CanonicalNaN.Float64()), "float(NaN:0x7ff8000000000000)"},
		{nanbox.Uint(42), "uint(42)"},
		{nanbox.Cell(nanbox.Tag1, 0x1000), "cell(tag1, 0x1000)"},
		{nanbox.Cell(0, 1), "cell(tag(invalid:0), 0x1)"},
	}

	for _, tc := range tcs {
		t.Run(tc.Output, func(t *testing.T) {
			require.Equal(t, tc.Output, tc.Input.String())
		})
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "float", nanbox.KindFloat.String())
	require.Equal(t, "uint", nanbox.KindUint.String())
	require.Equal(t, "cell", nanbox.KindCell.String())
	require.Equal(t, "kind(9)", nanbox.Kind(9).String())
}

func TestCellTag(t *testing.T) {
	require.Len(t, nanbox.Tags, 7)

	for i, tag := range nanbox.Tags {
		require.True(t, tag.Valid())
		require.Equal(t, nanbox.CellTag(i+1), tag)
	}

	require.False(t, nanbox.CellTag(0).Valid())
	require.False(t, nanbox.CellTag(8).Valid())
	require.Equal(t, "tag3", nanbox.Tag3.String())
}
