package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Mark is the content of a single cell: unoccupied or one of the two players' symbols.
type Mark uint8

const (
	MarkEmpty Mark = iota
	MarkX
	MarkO
)

// FirstMark is the symbol of whoever moves first.
const FirstMark = MarkX

const (
	symbolEmpty = ' '
	symbolX     = 'X'
	symbolO     = 'O'
)

func (m Mark) IsValid() bool {
	return m == MarkEmpty || m == MarkX || m == MarkO
}

// Symbol returns the canonical character of the mark.
func (m Mark) Symbol() byte {
	switch m {
	case MarkX:
		return symbolX
	case MarkO:
		return symbolO
	default:
		return symbolEmpty
	}
}

func (m Mark) String() string {
	return string(m.Symbol())
}

func (m Mark) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidMarker, m)
	}

	if m == MarkEmpty {
		return []byte{}, nil
	}

	return []byte{m.Symbol()}, nil
}

func (m *Mark) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*m = MarkEmpty
		return nil
	}

	if len(text) != 1 {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMarker, text)
	}

	mark, ok := markFromSymbol(text[0])
	if !ok {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMarker, text)
	}

	*m = mark

	return nil
}

func markFromSymbol(symbol byte) (Mark, bool) {
	switch symbol {
	case symbolEmpty:
		return MarkEmpty, true
	case symbolX:
		return MarkX, true
	case symbolO:
		return MarkO, true
	default:
		return MarkEmpty, false
	}
}

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// Board is a row-major 3x3 grid. The zero value is an empty board and
// copying a Board copies every cell.
type Board [BoardSize]Mark

// NewBoard returns a board with every cell empty.
func NewBoard() Board {
	return Board{}
}

func (that Board) CellAt(index int) (Mark, error) {
	if !IsCellIndex(index) {
		return MarkEmpty, fmt.Errorf("%w: %d", apperror.ErrOutOfRange, index)
	}

	return that[index], nil
}

// Place puts mark into an empty cell.
func (that *Board) Place(index int, mark Mark) error {
	if !IsCellIndex(index) {
		return fmt.Errorf("%w: %d", apperror.ErrOutOfRange, index)
	}

	if mark != MarkX && mark != MarkO {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMarker, mark.String())
	}

	if that[index] != MarkEmpty {
		return fmt.Errorf("%w: cell %d holds %s", apperror.ErrPreconditionViolated, index, that[index])
	}

	that[index] = mark

	return nil
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == MarkEmpty {
			return false
		}
	}

	return true
}

// IsVacant reports whether index is on the board and its cell is empty.
func (that Board) IsVacant(index int) bool {
	return IsCellIndex(index) && that[index] == MarkEmpty
}

// VacantIndices returns the empty cells in ascending order.
func (that Board) VacantIndices() []int {
	vacant := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == MarkEmpty {
			vacant = append(vacant, i)
		}
	}

	return vacant
}

// Placed returns the number of occupied cells.
func (that Board) Placed() int {
	return BoardSize - len(that.VacantIndices())
}

// String returns the canonical 9-character form, row-major.
func (that Board) String() string {
	buf := make([]byte, BoardSize)
	for i, cell := range that {
		buf[i] = cell.Symbol()
	}

	return string(buf)
}

// Row returns the three cells of row r (0..2).
func (that Board) Row(r int) [BoardSide]Mark {
	var row [BoardSide]Mark
	copy(row[:], that[r*BoardSide:(r+1)*BoardSide])

	return row
}

func (that Board) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Board) UnmarshalText(text []byte) error {
	board, err := ParseBoard(string(text))
	if err != nil {
		return err
	}

	*that = board

	return nil
}

// ParseBoard is the inverse of Board.String.
func ParseBoard(canonical string) (Board, error) {
	var board Board

	if len(canonical) != BoardSize {
		return board, fmt.Errorf("%w: length %d, want %d", apperror.ErrMalformedBoard, len(canonical), BoardSize)
	}

	for i := range BoardSize {
		mark, ok := markFromSymbol(canonical[i])
		if !ok {
			return Board{}, fmt.Errorf("%w: symbol %q at %d", apperror.ErrMalformedBoard, canonical[i], i)
		}

		board[i] = mark
	}

	return board, nil
}

// ParseBoardRows builds a board from three rows of three symbols each.
// Rows shorter than three characters are padded with empty cells.
func ParseBoardRows(rows ...string) (Board, error) {
	if len(rows) != BoardSide {
		return Board{}, fmt.Errorf("%w: %d rows, want %d", apperror.ErrMalformedBoard, len(rows), BoardSide)
	}

	var sb strings.Builder
	for i, row := range rows {
		if len(row) > BoardSide {
			return Board{}, fmt.Errorf("%w: row %d is %d wide", apperror.ErrMalformedBoard, i+1, len(row))
		}

		sb.WriteString(row)
		sb.WriteString(strings.Repeat(string(rune(symbolEmpty)), BoardSide-len(row)))
	}

	return ParseBoard(sb.String())
}

func IsCellIndex(index int) bool {
	return index >= 0 && index < BoardSize
}
