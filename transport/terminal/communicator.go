package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	ansiReset     = "\x1b[0m"
	ansiRed       = "\x1b[31m"
	ansiGreen     = "\x1b[32m"
	ansiYellow    = "\x1b[33m"
	ansiMagenta   = "\x1b[35m"
	ansiCyan      = "\x1b[36m"
	ansiDim       = "\x1b[2m"
	ansiBlink     = "\x1b[5m"
	ansiUnderline = "\x1b[4m"
	// moves one line up and clears it, so a rejected answer is replaced in place
	ansiRetry = "\x1b[1A\x1b[2K"
)

const outOfRange = "Out of range! "

var ErrInputClosed = errors.New("input closed")

// Communicator talks to a person at an ANSI terminal.
type Communicator struct {
	logger *slog.Logger
	in     *bufio.Reader
	out    io.Writer

	// machine is learned from the who-first answer and only drives colors.
	machine entity.Mark
}

func NewCommunicator(logger *slog.Logger, in io.Reader, out io.Writer) *Communicator {
	return &Communicator{
		logger:  logger.With("component", "terminal"),
		in:      bufio.NewReader(in),
		out:     out,
		machine: entity.MarkEmpty,
	}
}

func (that *Communicator) Render(_ context.Context, board entity.Board) error {
	var sb strings.Builder

	sb.WriteString("┌───┬───┬───┐\n")

	for row := range entity.BoardSide {
		if row > 0 {
			sb.WriteString("├───┼───┼───┤\n")
		}

		for col := range entity.BoardSide {
			index := row*entity.BoardSide + col
			sb.WriteString("│ ")
			sb.WriteString(that.paint(board[index], index))
			sb.WriteString(" ")
		}

		sb.WriteString("│\n")
	}

	sb.WriteString("└───┴───┴───┘\n")

	return that.write(sb.String())
}

// paint colors a mark by its owner; vacant cells show their index.
func (that *Communicator) paint(mark entity.Mark, index int) string {
	switch {
	case mark == entity.MarkEmpty:
		return ansiDim + strconv.Itoa(index) + ansiReset
	case that.machine != entity.MarkEmpty && mark == that.machine:
		return ansiMagenta + mark.String() + ansiReset
	case that.machine != entity.MarkEmpty:
		return ansiCyan + mark.String() + ansiReset
	default:
		return mark.String()
	}
}

func (that *Communicator) Notify(_ context.Context, event entity.Event) error {
	var line string

	switch event {
	case entity.EventMachineThinking:
		line = ansiBlink + "I'm thinking..." + ansiReset
	case entity.EventInvalidCellChosen:
		line = ansiRed + "That cell is not available!" + ansiReset
	case entity.EventValidCellChosen:
		return nil
	case entity.EventGameOver:
		line = "Game over."
	case entity.EventMachineWon:
		line = ansiGreen + "I win. Ha!" + ansiReset
	case entity.EventOpponentWon:
		line = ansiRed + "You win. Sad." + ansiReset
	case entity.EventDraw:
		line = ansiUnderline + "Draw!" + ansiReset
	default:
		that.logger.Warn("unexpected event", "event", event.String())
		line = fmt.Sprintf("Bad protocol: %d", int(event))
	}

	return that.write(line + "\n")
}

func (that *Communicator) QueryInt(ctx context.Context, event entity.Event, low, high int) (int, error) {
	switch event {
	case entity.EventMachineFirstQuery:
		return that.askWhoFirst(ctx)
	case entity.EventCellQuery:
		return that.readInt(ctx, ansiYellow+"Which cell do you choose? >"+ansiReset, low, high)
	case entity.EventPlayAgainQuery:
		return that.readInt(ctx, ansiYellow+"Again? (1 = yes, 0 = no) >"+ansiReset, low, high)
	default:
		return that.readInt(ctx, fmt.Sprintf("Query %d >", int(event)), low, high)
	}
}

// askWhoFirst composes the signed who-first answer from two prompts.
func (that *Communicator) askWhoFirst(ctx context.Context) (int, error) {
	first, err := that.readInt(ctx, ansiYellow+"1 for machine first, 0 for you first >"+ansiReset, 0, 1)
	if err != nil {
		return 0, err
	}

	level, err := that.readInt(ctx, ansiYellow+"Difficulty? (1,2,3) >"+ansiReset,
		int(entity.DifficultyEasy), int(entity.DifficultyHard))
	if err != nil {
		return 0, err
	}

	machineFirst := first == 1

	that.machine = entity.FirstMark
	if !machineFirst {
		that.machine = entity.FirstMark.Opponent()
	}

	return entity.EncodeWhoFirst(machineFirst, entity.Difficulty(level)), nil
}

// readInt prompts until a line holds an integer in [low, high].
func (that *Communicator) readInt(ctx context.Context, prompt string, low, high int) (int, error) {
	if err := that.write(prompt); err != nil {
		return 0, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("query interrupted: %w", err)
		}

		line, err := that.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("failed to read answer: %w", err)
		}

		// a final line without a newline still counts
		value, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && value >= low && value <= high {
			return value, nil
		}

		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInputClosed, err)
		}

		that.logger.Debug("answer rejected", "input", strings.TrimSpace(line), "low", low, "high", high)

		if err = that.write(ansiRetry + outOfRange + prompt); err != nil {
			return 0, err
		}
	}
}

func (that *Communicator) write(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write to terminal: %w", err)
	}

	return nil
}
