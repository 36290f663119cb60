package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Layout mirrors a 20x4 character display: text on the left, the board
// rows on the right, the score on the last line.
const (
	boardColumn = 15
	textWidth   = boardColumn - 1
	scoreLine   = 3
)

var ErrQuit = errors.New("player quit")

type Communicator struct {
	logger     *slog.Logger
	screen     screen
	difficulty entity.Difficulty

	board     entity.Board
	machine   entity.Mark
	cursor    int
	selecting bool
	title     string
	message   string
	hint      string
	tally     entity.Tally
}

// NewCommunicator draws on scr. The screen only offers two buttons for the
// who-first question, so every game is played at difficulty.
func NewCommunicator(logger *slog.Logger, scr screen, difficulty entity.Difficulty) *Communicator {
	return &Communicator{
		logger:     logger.With("component", "tui"),
		screen:     scr,
		difficulty: difficulty,
		title:      "Tic-Tac-Toe",
		cursor:     entity.BoardSize / 2,
	}
}

func (that *Communicator) Render(_ context.Context, board entity.Board) error {
	that.board = board

	return that.draw()
}

func (that *Communicator) Notify(_ context.Context, event entity.Event) error {
	switch event {
	case entity.EventMachineThinking:
		that.message, that.hint = "My turn", ""
	case entity.EventInvalidCellChosen:
		that.message = "Cell taken!"
	case entity.EventValidCellChosen:
		that.message = ""
	case entity.EventGameOver:
		that.message, that.hint = "Game over", ""
	case entity.EventMachineWon:
		that.tally.Record(entity.MachineWin)
		that.message = "I win!"
	case entity.EventOpponentWon:
		that.tally.Record(entity.OpponentWin)
		that.message = "You win..."
	case entity.EventDraw:
		that.tally.Record(entity.Draw)
		that.message = "Tie!"
	default:
		that.logger.Warn("unexpected event", "event", event.String())
		that.message = fmt.Sprintf("Event %d", int(event))
	}

	return that.draw()
}

func (that *Communicator) QueryInt(ctx context.Context, event entity.Event, low, _ int) (int, error) {
	switch event {
	case entity.EventMachineFirstQuery:
		return that.askWhoFirst(ctx)
	case entity.EventCellQuery:
		return that.askCell(ctx)
	case entity.EventPlayAgainQuery:
		return that.askPlayAgain(ctx)
	default:
		that.logger.Warn("unexpected query", "event", event.String())
		return low, nil
	}
}

func (that *Communicator) askWhoFirst(ctx context.Context) (int, error) {
	that.board = entity.NewBoard()
	that.message, that.hint = "Left=mefirst", "Right=youfirst"

	if err := that.draw(); err != nil {
		return 0, err
	}

	for {
		key, err := that.nextKey(ctx)
		if err != nil {
			return 0, err
		}

		var machineFirst bool

		switch key {
		case keyPrev, '1':
			machineFirst = true
		case keyNext, '2':
			machineFirst = false
		default:
			continue
		}

		that.machine = entity.FirstMark
		if !machineFirst {
			that.machine = entity.FirstMark.Opponent()
		}

		that.message, that.hint = "", ""

		return entity.EncodeWhoFirst(machineFirst, that.difficulty), nil
	}
}

// askCell moves the cursor until Enter picks the cell under it.
func (that *Communicator) askCell(ctx context.Context) (int, error) {
	that.hint = "Your turn"
	that.selecting = true

	defer func() {
		that.selecting = false
	}()

	if err := that.draw(); err != nil {
		return 0, err
	}

	for {
		key, err := that.nextKey(ctx)
		if err != nil {
			return 0, err
		}

		if key == keySelect {
			return that.cursor, nil
		}

		that.cursor = moveCursor(that.cursor, key)

		if err = that.draw(); err != nil {
			return 0, err
		}
	}
}

func (that *Communicator) askPlayAgain(ctx context.Context) (int, error) {
	that.hint = "Enter=new game"

	if err := that.draw(); err != nil {
		return 0, err
	}

	for {
		key, err := that.nextKey(ctx)
		if errors.Is(err, ErrQuit) {
			return 0, nil
		}

		if err != nil {
			return 0, err
		}

		if key == keySelect {
			return 1, nil
		}
	}
}
