package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridflood/grid"
)

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]int
		err   error
	}{
		{"NilInput", nil, grid.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
		{"NonRectangularLonger", [][]int{{1}, {2, 3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.cells)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_DeepCopy proves the Grid is insulated from later mutation of the
// caller's slice.
func TestNew_DeepCopy(t *testing.T) {
	cells := [][]int{{0, 1}, {-1, 3}}
	g, err := grid.New(cells)
	require.NoError(t, err)

	cells[0][0] = 99
	cells[1] = []int{7, 7}

	assert.Equal(t, 0, g.At(0, 0))
	assert.Equal(t, -1, g.At(1, 0))
	assert.Equal(t, 3, g.At(1, 1))
}

// TestClassification checks wall/goal/open semantics cell by cell.
func TestClassification(t *testing.T) {
	g, err := grid.New([][]int{
		{5, -1, 1},
		{0, -7, 2},
	})
	require.NoError(t, err)

	assert.True(t, g.IsOpen(0, 0), "5 is open")
	assert.True(t, g.IsWall(0, 1), "-1 is a wall")
	assert.True(t, g.IsGoal(0, 2), "1 is a goal")
	assert.True(t, g.IsOpen(1, 0), "0 is open")
	assert.True(t, g.IsWall(1, 1), "-7 is a wall")
	assert.True(t, g.IsOpen(1, 2), "2 is open")

	assert.False(t, g.IsGoal(0, 0))
	assert.False(t, g.IsWall(0, 2))
	assert.False(t, g.IsOpen(0, 1))
}

// TestInBounds covers the four boundary edges of a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)

	valid := []grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 1, Col: 1}}
	for _, at := range valid {
		assert.True(t, g.InBounds(at.Row, at.Col), "InBounds(%d,%d)", at.Row, at.Col)
	}
	invalid := []grid.Coord{{Row: -1, Col: 0}, {Row: 2, Col: 0}, {Row: 0, Col: 3}, {Row: 0, Col: -1}}
	for _, at := range invalid {
		assert.False(t, g.InBounds(at.Row, at.Col), "InBounds(%d,%d)", at.Row, at.Col)
	}

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
}
