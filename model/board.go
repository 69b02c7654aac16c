package model

import (
	"github.com/sheikhrachel/go-life/rules"
)

// Board is one generation of the game: an ordered sequence of rows of cells.
//
// Rows may have different lengths. A Board never changes once built; Next
// returns a new Board and leaves the receiver untouched.
type Board struct {
	cells [][]bool
}

// NewBoard creates a board from row-major cells, copying them
func NewBoard(cells [][]bool) *Board {
	return &Board{cells: copyCells(cells)}
}

// NewEmptyBoard creates a rectangular board of dead cells
func NewEmptyBoard(width, height int) *Board {
	cells := make([][]bool, max(height, 0))
	for i := range cells {
		cells[i] = make([]bool, max(width, 0))
	}
	return &Board{cells: cells}
}

// CurrentState returns a copy of the cells; mutating it does not affect the board
func (b *Board) CurrentState() [][]bool {
	return copyCells(b.cells)
}

// Rows returns the number of rows
func (b *Board) Rows() int {
	return len(b.cells)
}

// RowLen returns the length of the given row, or 0 when the row does not exist
func (b *Board) RowLen(row int) int {
	if row < 0 || row >= len(b.cells) {
		return 0
	}
	return len(b.cells[row])
}

// Cell returns the state of a cell; cells outside the board are dead
func (b *Board) Cell(row, col int) bool {
	if row < 0 || row >= len(b.cells) || col < 0 || col >= len(b.cells[row]) {
		return false
	}
	return b.cells[row][col]
}

// Population returns the total number of living cells
func (b *Board) Population() (count int) {
	for _, row := range b.cells {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}

// Next calculates the next generation
func (b *Board) Next() *Board {
	next := make([][]bool, len(b.cells))
	for row, cells := range b.cells {
		next[row] = make([]bool, len(cells))
		for col, alive := range cells {
			next[row][col] = rules.IsAliveNext(alive, b.countLivingNeighbors(row, col))
		}
	}
	return &Board{cells: next}
}

// Equal reports whether both boards have the same rows with the same cells
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if len(b.cells) != len(other.cells) {
		return false
	}
	for i := range b.cells {
		if len(b.cells[i]) != len(other.cells[i]) {
			return false
		}
		for j := range b.cells[i] {
			if b.cells[i][j] != other.cells[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the board with the default glyphs
func (b *Board) String() string {
	return Format(b, DefaultAliveGlyph, DefaultDeadGlyph)
}

// countLivingNeighbors counts the living cells in the Moore neighborhood of (row, col).
// The column window is clamped against each neighbor row's own length.
func (b *Board) countLivingNeighbors(row, col int) int {
	if len(b.cells) == 0 || len(b.cells[row]) == 0 {
		return 0
	}

	count := 0
	minRow := max(0, row-1)
	maxRow := min(len(b.cells)-1, row+1)
	minCol := max(0, col-1)

	for nr := minRow; nr <= maxRow; nr++ {
		neighborRow := b.cells[nr]
		maxCol := min(len(neighborRow)-1, col+1)
		for nc := minCol; nc <= maxCol; nc++ {
			if nr == row && nc == col {
				continue // Skip the cell itself
			}
			if neighborRow[nc] {
				count++
			}
		}
	}

	return count
}

func copyCells(cells [][]bool) [][]bool {
	out := make([][]bool, len(cells))
	for i, row := range cells {
		out[i] = make([]bool, len(row))
		copy(out[i], row)
	}
	return out
}
