package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Project(t *testing.T) {
	tbl := &Table{
		Columns: []string{"B", "A", "C"},
		Rows: [][]string{
			{"b1", "a1", "c1"},
			{"b2", "a2", "c2"},
		},
	}

	t.Run("reorders columns", func(t *testing.T) {
		got, err := tbl.Project([]string{"A", "B", "C"})
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, got.Columns)
		assert.Equal(t, [][]string{{"a1", "b1", "c1"}, {"a2", "b2", "c2"}}, got.Rows)
	})

	t.Run("drops unlisted columns", func(t *testing.T) {
		got, err := tbl.Project([]string{"C", "A"})
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"c1", "a1"}, {"c2", "a2"}}, got.Rows)
	})

	t.Run("missing column is an error", func(t *testing.T) {
		_, err := tbl.Project([]string{"A", "D"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"D"`)
	})

	t.Run("does not alias the source", func(t *testing.T) {
		got, err := tbl.Project([]string{"B", "A", "C"})
		require.NoError(t, err)
		got.Rows[0][0] = "changed"
		assert.Equal(t, "b1", tbl.Rows[0][0])
	})
}

func TestConcat(t *testing.T) {
	cols := []string{"A", "B"}
	first := &Table{Columns: cols, Rows: [][]string{{"1", "2"}}}
	second := &Table{Columns: cols, Rows: [][]string{{"3", "4"}, {"1", "2"}}}

	got, err := Concat(cols, first, second)
	require.NoError(t, err)
	assert.Equal(t, 3, got.NumRows())
	assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}, {"1", "2"}}, got.Rows)

	_, err = Concat(cols, first, &Table{Columns: []string{"B", "A"}})
	assert.Error(t, err)
}

func TestConcat_NoTables(t *testing.T) {
	got, err := Concat([]string{"A"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, got.Columns)
	assert.Equal(t, 0, got.NumRows())
}
