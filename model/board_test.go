package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(lines ...string) *Board {
	return ParseLines(lines, DefaultAliveGlyph)
}

func assertNextState(t *testing.T, current, expected *Board) {
	t.Helper()
	next := current.Next()
	assert.True(t, expected.Equal(next), "expected:\n%s\ngot:\n%s", expected, next)
}

func assertStatic(t *testing.T, b *Board) {
	t.Helper()
	assertNextState(t, b, b)
}

func TestNext_EmptyBoard(t *testing.T) {
	assertStatic(t, newGame())
	assertStatic(t, NewBoard(nil))
}

func TestNext_AllDeadIsStatic(t *testing.T) {
	assertStatic(t, newGame(" "))
	assertStatic(t, NewEmptyBoard(7, 4))
}

func TestNext_SingleCellDies(t *testing.T) {
	assertNextState(t, newGame("•"), newGame(" "))
}

func TestNext_BlockIsStatic(t *testing.T) {
	assertStatic(t, newGame(
		"••",
		"••",
	))
	assertStatic(t, newGame(
		"    ",
		" •• ",
		" •• ",
		"    ",
	))
}

func TestNext_BeehiveIsStatic(t *testing.T) {
	assertStatic(t, newGame(
		"      ",
		"  ••  ",
		" •  • ",
		"  ••  ",
		"      ",
	))
}

func TestNext_TubIsStatic(t *testing.T) {
	assertStatic(t, newGame(
		"     ",
		"  •  ",
		" • • ",
		"  •  ",
		"     ",
	))
}

func TestNext_BlinkerOscillates(t *testing.T) {
	vertical := newGame(
		"     ",
		"  •  ",
		"  •  ",
		"  •  ",
		"     ",
	)
	horizontal := newGame(
		"     ",
		"     ",
		" ••• ",
		"     ",
		"     ",
	)
	assertNextState(t, vertical, horizontal)
	assertNextState(t, horizontal, vertical)
	assert.True(t, vertical.Equal(vertical.Next().Next()))
}

func TestNext_BeaconOscillates(t *testing.T) {
	on := newGame(
		"      ",
		" ••   ",
		" ••   ",
		"   •• ",
		"   •• ",
	)
	off := newGame(
		"      ",
		" ••   ",
		" •    ",
		"    • ",
		"   •• ",
	)
	assertNextState(t, on, off)
	assertNextState(t, off, on)
}

func TestNext_DoesNotMutateReceiver(t *testing.T) {
	b := newGame(
		"     ",
		"  •  ",
		"  •  ",
		"  •  ",
		"     ",
	)
	before := b.CurrentState()

	next := b.Next()
	require.False(t, b.Equal(next))
	assert.Equal(t, before, b.CurrentState())
}

func TestNext_PreservesDimensions(t *testing.T) {
	boards := []*Board{
		newGame(),
		newGame(""),
		newGame("•", "", "•••"),
		newGame("•••••", "••", "", "• • •", "•"),
		NewEmptyBoard(3, 9),
	}

	for _, b := range boards {
		next := b.Next()
		require.Equal(t, b.Rows(), next.Rows())
		for row := 0; row < b.Rows(); row++ {
			assert.Equal(t, b.RowLen(row), next.RowLen(row), "row %d", row)
		}
	}
}

func TestCountLivingNeighbors(t *testing.T) {
	b := newGame(
		"•••",
		"•••",
		"•••",
	)
	assert.Equal(t, 8, b.countLivingNeighbors(1, 1))
	assert.Equal(t, 3, b.countLivingNeighbors(0, 0))
	assert.Equal(t, 5, b.countLivingNeighbors(0, 1))
	assert.Equal(t, 3, b.countLivingNeighbors(2, 2))
}

func TestCountLivingNeighbors_JaggedRows(t *testing.T) {
	b := newGame(
		"•",
		"•••",
		"",
		"••",
	)

	// Row 0 is only one cell wide, so (1, 2) sees just (1, 1) beside it.
	assert.Equal(t, 1, b.countLivingNeighbors(1, 2))
	assert.Equal(t, 2, b.countLivingNeighbors(0, 0))
	assert.Equal(t, 2, b.countLivingNeighbors(1, 0))
	assert.Equal(t, 1, b.countLivingNeighbors(3, 0))
	assert.Equal(t, 1, b.countLivingNeighbors(3, 1))
	assert.Equal(t, 0, b.countLivingNeighbors(2, 0))
}

func TestNext_JaggedBoard(t *testing.T) {
	b := newGame(
		"••",
		"•",
		"•••",
	)
	// (0,0): 2 -> alive; (0,1): 2 -> alive; (1,0): 2+2=4 -> dead;
	// (2,0): 2 -> alive; (2,1): 3 -> alive; (2,2): 1 -> dead.
	expected := newGame(
		"••",
		" ",
		"•• ",
	)
	assertNextState(t, b, expected)
}

func TestNext_Locality(t *testing.T) {
	base := NewEmptyBoard(8, 8).CurrentState()
	base[1][1] = true
	base[1][2] = true
	base[2][1] = true

	changed := NewBoard(base).CurrentState()
	changed[6][6] = true
	changed[7][5] = true

	a := NewBoard(base).Next()
	b := NewBoard(changed).Next()
	for row := 0; row <= 3; row++ {
		for col := 0; col <= 3; col++ {
			assert.Equal(t, a.Cell(row, col), b.Cell(row, col), "cell (%d,%d)", row, col)
		}
	}
}

func TestNewBoard_CopiesInput(t *testing.T) {
	cells := [][]bool{{true, false}, {false}}
	b := NewBoard(cells)
	cells[0][0] = false

	assert.True(t, b.Cell(0, 0))

	state := b.CurrentState()
	state[1][0] = true
	assert.False(t, b.Cell(1, 0))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Board
		want bool
	}{
		{"both empty", newGame(), NewBoard(nil), true},
		{"same cells", newGame("• ", " •"), NewBoard([][]bool{{true, false}, {false, true}}), true},
		{"different row count", newGame("•"), newGame("•", ""), false},
		{"different row length", newGame("• "), newGame("•"), false},
		{"different cell", newGame("• "), newGame(" •"), false},
		{"nil and empty", nil, newGame(), false},
		{"nil and nil", nil, nil, true},
		{"nil and empty row", NewBoard([][]bool{nil}), newGame(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestAccessors(t *testing.T) {
	b := newGame("•• ", "", "  •")

	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, 3, b.RowLen(0))
	assert.Equal(t, 0, b.RowLen(1))
	assert.Equal(t, 0, b.RowLen(-1))
	assert.Equal(t, 0, b.RowLen(3))
	assert.True(t, b.Cell(2, 2))
	assert.False(t, b.Cell(1, 0))
	assert.False(t, b.Cell(-1, 0))
	assert.Equal(t, 3, b.Population())
}
