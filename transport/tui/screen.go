package tui

import (
	"fmt"

	"github.com/nsf/termbox-go"
)

// screen is the part of termbox the communicator draws on.
type screen interface {
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Clear(fg, bg termbox.Attribute) error
	Flush() error
	PollEvent() termbox.Event
	Interrupt()
}

type termboxScreen struct{}

// OpenScreen takes over the terminal. Close must be called to restore it.
func OpenScreen() (*termboxScreen, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("failed to init termbox: %w", err)
	}

	termbox.SetInputMode(termbox.InputEsc)

	return &termboxScreen{}, nil
}

func (that *termboxScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (that *termboxScreen) Clear(fg, bg termbox.Attribute) error {
	if err := termbox.Clear(fg, bg); err != nil {
		return fmt.Errorf("failed to clear screen: %w", err)
	}

	return nil
}

func (that *termboxScreen) Flush() error {
	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("failed to flush screen: %w", err)
	}

	return nil
}

func (that *termboxScreen) PollEvent() termbox.Event {
	return termbox.PollEvent()
}

func (that *termboxScreen) Interrupt() {
	termbox.Interrupt()
}

func (that *termboxScreen) Close() {
	termbox.Close()
}
