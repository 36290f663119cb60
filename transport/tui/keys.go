package tui

import (
	"context"
	"fmt"

	"github.com/nsf/termbox-go"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// key is a decoded key press: a printable rune or one of the named keys.
type key rune

const (
	keyNone key = -iota - 1
	keyPrev
	keyNext
	keyUp
	keyDown
	keySelect
)

// nextKey blocks for the next meaningful key. Esc and Ctrl-C quit.
func (that *Communicator) nextKey(ctx context.Context) (key, error) {
	stop := context.AfterFunc(ctx, that.screen.Interrupt)
	defer stop()

	for {
		if err := ctx.Err(); err != nil {
			return keyNone, fmt.Errorf("input interrupted: %w", err)
		}

		ev := that.screen.PollEvent()

		switch ev.Type {
		case termbox.EventError:
			return keyNone, fmt.Errorf("failed to read input: %w", ev.Err)
		case termbox.EventInterrupt:
			continue
		case termbox.EventResize:
			if err := that.draw(); err != nil {
				return keyNone, err
			}

			continue
		case termbox.EventKey:
		default:
			continue
		}

		switch ev.Key {
		case termbox.KeyEsc, termbox.KeyCtrlC:
			return keyNone, ErrQuit
		case termbox.KeyArrowLeft:
			return keyPrev, nil
		case termbox.KeyArrowRight:
			return keyNext, nil
		case termbox.KeyArrowUp:
			return keyUp, nil
		case termbox.KeyArrowDown:
			return keyDown, nil
		case termbox.KeyEnter, termbox.KeySpace:
			return keySelect, nil
		}

		if ev.Ch != 0 {
			return key(ev.Ch), nil
		}
	}
}

// moveCursor steps through the cells in reading order, wrapping around.
// Up and down move a whole row.
func moveCursor(cursor int, k key) int {
	step := 0

	switch k {
	case keyPrev:
		step = -1
	case keyNext:
		step = 1
	case keyUp:
		step = -entity.BoardSide
	case keyDown:
		step = entity.BoardSide
	default:
		return cursor
	}

	return ((cursor+step)%entity.BoardSize + entity.BoardSize) % entity.BoardSize
}
