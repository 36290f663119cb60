package tui

import (
	"fmt"

	"github.com/nsf/termbox-go"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func (that *Communicator) draw() error {
	if err := that.screen.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}

	that.text(0, that.title)
	that.text(1, that.message)
	that.text(2, that.hint)
	that.text(scoreLine, fmt.Sprintf("YOU: %d ME: %d", that.tally.OpponentWins, that.tally.MachineWins))

	for row := range entity.BoardSide {
		for col := range entity.BoardSide {
			index := row*entity.BoardSide + col
			x := boardColumn + 2*col

			if col > 0 {
				that.screen.SetCell(x-1, row, '|', termbox.ColorDefault, termbox.ColorDefault)
			}

			fg, bg := that.cellColors(index)
			that.screen.SetCell(x, row, rune(that.board[index].Symbol()), fg, bg)
		}
	}

	return that.screen.Flush()
}

func (that *Communicator) cellColors(index int) (termbox.Attribute, termbox.Attribute) {
	fg := termbox.ColorDefault

	switch mark := that.board[index]; {
	case mark == entity.MarkEmpty:
	case mark == that.machine:
		fg = termbox.ColorMagenta
	default:
		fg = termbox.ColorCyan
	}

	if that.selecting && index == that.cursor {
		return fg | termbox.AttrReverse, termbox.ColorDefault
	}

	return fg, termbox.ColorDefault
}

func (that *Communicator) text(line int, s string) {
	for i, ch := range []rune(s) {
		if i >= textWidth {
			return
		}

		that.screen.SetCell(i, line, ch, termbox.ColorDefault, termbox.ColorDefault)
	}
}
