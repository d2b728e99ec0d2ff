package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imputeFixture(t *testing.T) *Table {
	t.Helper()
	tbl, err := New(
		Column{Name: "a", Values: []Value{Int(1), Missing(), Int(3)}},
		Column{Name: "b", Values: []Value{Missing(), Missing(), Missing()}},
		Column{Name: "c", Values: []Value{Missing(), String("x"), String("y")}},
	)
	require.NoError(t, err)
	return tbl
}

func TestImpute(t *testing.T) {
	tbl := imputeFixture(t)

	filled, err := ImputeZero(tbl, []string{"a", "b"})
	require.NoError(t, err)

	for _, name := range []string{"a", "b"} {
		n, err := filled.MissingCount(name)
		require.NoError(t, err)
		assert.Equal(t, 0, n, "column %s", name)
	}

	a, _ := filled.Column("a")
	assert.Equal(t, []Value{Int(1), Float(0), Int(3)}, a)
	b, _ := filled.Column("b")
	assert.Equal(t, []Value{Float(0), Float(0), Float(0)}, b)

	// Unlisted column keeps its missing cell.
	before, _ := tbl.Column("c")
	after, _ := filled.Column("c")
	assert.Equal(t, before, after)

	// Input is untouched.
	n, _ := tbl.MissingCount("a")
	assert.Equal(t, 1, n)
	n, _ = tbl.MissingCount("b")
	assert.Equal(t, 3, n)
}

func TestImputeBroadcastsFill(t *testing.T) {
	tbl := imputeFixture(t)

	filled, err := Impute(tbl, []string{"b", "c"}, String("unknown"))
	require.NoError(t, err)

	b, _ := filled.Column("b")
	c, _ := filled.Column("c")
	assert.True(t, b[2].Equal(String("unknown")))
	assert.True(t, c[0].Equal(String("unknown")))
	assert.True(t, c[1].Equal(String("x")))
}

func TestImputeIdempotent(t *testing.T) {
	tbl := imputeFixture(t)
	cols := []string{"a", "c"}

	once, err := Impute(tbl, cols, Float(-1))
	require.NoError(t, err)
	twice, err := Impute(once, cols, Float(-1))
	require.NoError(t, err)

	assert.True(t, once.Equal(twice))
}

func TestImputeErrors(t *testing.T) {
	tbl := imputeFixture(t)

	_, err := Impute(tbl, []string{"a", "zzz"}, Float(0))
	assert.ErrorIs(t, err, ErrColumnNotFound)

	_, err = Impute(tbl, []string{"a"}, Missing())
	assert.ErrorIs(t, err, ErrInvalidFill)
}

func TestImputeNoColumns(t *testing.T) {
	tbl := imputeFixture(t)

	filled, err := ImputeZero(tbl, nil)
	require.NoError(t, err)
	assert.True(t, tbl.Equal(filled))
}
