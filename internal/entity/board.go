package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Cell is the state of a single square. A non-empty cell value also names the
// side (marker) that owns it.
type Cell uint8

const (
	Empty Cell = iota
	Human
	Computer
)

const (
	BoardSize = 9
	NoMove    = -1
)

var (
	ErrInvalidBoard = errors.New("invalid board notation")

	// WinCombos are scanned in this order: rows, columns, diagonals.
	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

func (that Cell) String() string {
	switch that {
	case Human:
		return "human"
	case Computer:
		return "computer"
	case Empty:
		return "empty"
	default:
		return fmt.Sprintf("cell(%d)", uint8(that))
	}
}

// Symbol is the character drawn for the cell: X for the computer, O for the human.
func (that Cell) Symbol() rune {
	switch that {
	case Computer:
		return 'X'
	case Human:
		return 'O'
	default:
		return '_'
	}
}

func (that Cell) IsMarker() bool {
	return that == Human || that == Computer
}

// Opponent returns the other side. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case Human:
		return Computer
	case Computer:
		return Human
	default:
		return Empty
	}
}

// Board is the 3x3 grid, row-major:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Board struct {
	Cells    [BoardSize]Cell `json:"cells"`
	LastMove int             `json:"last_move"`
}

func NewBoard() Board {
	return Board{LastMove: NoMove}
}

// ParseBoard reads the nine-character notation produced by Board.String,
// e.g. "__XXOO_OX".
func ParseBoard(notation string) (Board, error) {
	runes := []rune(notation)
	if len(runes) != BoardSize {
		return Board{}, fmt.Errorf("%w: %q has %d cells", ErrInvalidBoard, notation, len(runes))
	}

	board := NewBoard()
	for i, r := range runes {
		switch r {
		case 'X', 'x':
			board.Cells[i] = Computer
		case 'O', 'o':
			board.Cells[i] = Human
		case '_', '.', ' ':
			board.Cells[i] = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidBoard, r, i)
		}
	}

	return board, nil
}

func (that *Board) String() string {
	var sb strings.Builder
	for _, cell := range that.Cells {
		sb.WriteRune(cell.Symbol())
	}
	return sb.String()
}

// Place marks the cell at index for marker and records it as the latest move.
func (that *Board) Place(index int, marker Cell) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrIndexOutOfRange, index)
	}

	if !marker.IsMarker() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidMarker, marker)
	}

	if that.Cells[index] != Empty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	that.Cells[index] = marker
	that.LastMove = index

	return nil
}

// Winner returns the marker occupying a complete line, if any.
func (that *Board) Winner() (Cell, bool) {
	for _, combo := range WinCombos {
		a, b, c := that.Cells[combo[0]], that.Cells[combo[1]], that.Cells[combo[2]]
		if a != Empty && a == b && b == c {
			return a, true
		}
	}

	return Empty, false
}

func (that *Board) IsFull() bool {
	for _, cell := range that.Cells {
		if cell == Empty {
			return false
		}
	}
	return true
}

func (that *Board) IsTerminal() bool {
	if _, ok := that.Winner(); ok {
		return true
	}
	return that.IsFull()
}

// LegalMoves lists the empty cells in ascending order.
func (that *Board) LegalMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that.Cells {
		if cell == Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

func (that *Board) EmptyCount() int {
	count := 0
	for _, cell := range that.Cells {
		if cell == Empty {
			count++
		}
	}
	return count
}

func (that *Board) Clone() Board {
	return *that
}
