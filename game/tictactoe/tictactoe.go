// Package tictactoe is a minimal reference implementation of game.State used
// by tests and experiments. The board is always stored from the mover's
// perspective: 1 for the mover's marks, -1 for the opponent's, so positions
// are canonical by construction.
package tictactoe

import "minichess/game"

const (
	Size       = 3
	ActionSize = Size * Size

	// DrawValue resolves a full board with no winner. A small nonzero
	// epsilon so the search treats the position as terminal.
	DrawValue = 1e-4
)

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Position is an immutable tic-tac-toe position. Actions index board cells
// in row-major order.
type Position struct {
	cells [ActionSize]int8
}

// New returns the empty starting position.
func New() Position {
	return Position{}
}

func (p Position) Key() string {
	key := make([]byte, ActionSize)
	for i, cell := range p.cells {
		switch cell {
		case 1:
			key[i] = 'x'
		case -1:
			key[i] = 'o'
		default:
			key[i] = '.'
		}
	}
	return string(key)
}

func (p Position) ActionSize() int {
	return ActionSize
}

func (p Position) LegalMask() []bool {
	mask := make([]bool, ActionSize)
	for i, cell := range p.cells {
		mask[i] = cell == 0
	}
	return mask
}

func (p Position) Outcome() float64 {
	for _, line := range lines {
		sum := p.cells[line[0]] + p.cells[line[1]] + p.cells[line[2]]
		switch sum {
		case 3:
			return 1
		case -3:
			return -1
		}
	}
	for _, cell := range p.cells {
		if cell == 0 {
			return 0
		}
	}
	return DrawValue
}

// Apply plays the mover's mark at the given cell and flips the board to the
// next mover's perspective.
func (p Position) Apply(action int) game.State {
	if action < 0 || action >= ActionSize || p.cells[action] != 0 {
		panic("tictactoe: illegal action")
	}
	next := p
	next.cells[action] = 1
	for i := range next.cells {
		next.cells[i] = -next.cells[i]
	}
	return next
}

func (p Position) Encode() []float32 {
	encoded := make([]float32, ActionSize)
	for i, cell := range p.cells {
		encoded[i] = float32(cell)
	}
	return encoded
}

// FromCells builds a position from a mover-perspective board, mostly for
// tests. Panics unless exactly ActionSize cells with values in {-1, 0, 1}
// are given.
func FromCells(cells []int8) Position {
	if len(cells) != ActionSize {
		panic("tictactoe: want 9 cells")
	}
	var p Position
	for i, cell := range cells {
		if cell < -1 || cell > 1 {
			panic("tictactoe: cell values must be -1, 0 or 1")
		}
		p.cells[i] = cell
	}
	return p
}

var _ game.State = Position{}
