package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// WinCombos are scanned in this order: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Winner returns the mark of the first completed line, or MarkEmpty if no
// line is complete. A full board with no line also yields MarkEmpty.
func Winner(board entity.Board) entity.Mark {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.MarkEmpty && a == b && b == c {
			return a
		}
	}

	return entity.MarkEmpty
}

// IsTerminal reports whether play must stop: a line is complete or no cell is left.
func IsTerminal(board entity.Board) bool {
	return Winner(board) != entity.MarkEmpty || board.IsFull()
}

func Opposite(mark entity.Mark) (entity.Mark, error) {
	if mark != entity.MarkX && mark != entity.MarkO {
		return entity.MarkEmpty, fmt.Errorf("%w: %q", apperror.ErrInvalidMarker, mark.String())
	}

	return mark.Opponent(), nil
}

// Outcome derives the game result from the board as seen by the side playing machine.
func Outcome(board entity.Board, machine entity.Mark) entity.Outcome {
	switch winner := Winner(board); {
	case winner == entity.MarkEmpty && board.IsFull():
		return entity.Draw
	case winner == entity.MarkEmpty:
		return entity.InProgress
	case winner == machine:
		return entity.MachineWin
	default:
		return entity.OpponentWin
	}
}
