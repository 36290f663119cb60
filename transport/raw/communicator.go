// Package raw speaks the bare line protocol: numeric event codes out, one
// integer token per query in. It is meant for scripts and test harnesses.
package raw

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

var ErrInputClosed = errors.New("input closed")

type Communicator struct {
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer
}

func NewCommunicator(logger *slog.Logger, in io.Reader, out io.Writer) *Communicator {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Communicator{
		logger: logger.With("component", "raw"),
		in:     scanner,
		out:    out,
	}
}

// Render writes the board as three rows of three symbols.
func (that *Communicator) Render(_ context.Context, board entity.Board) error {
	var sb strings.Builder

	for row := range entity.BoardSide {
		for _, mark := range board.Row(row) {
			sb.WriteByte(mark.Symbol())
		}

		sb.WriteByte('\n')
	}

	return that.write(sb.String())
}

func (that *Communicator) Notify(_ context.Context, event entity.Event) error {
	return that.write(fmt.Sprintf("ProtoOut => %d\n", int(event)))
}

// QueryInt reads the next integer token. Range checks are left to the caller.
func (that *Communicator) QueryInt(ctx context.Context, event entity.Event, _, _ int) (int, error) {
	prompt := fmt.Sprintf("Query %d>", int(event))

	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("query interrupted: %w", err)
		}

		if err := that.write(prompt); err != nil {
			return 0, err
		}

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read answer: %w", err)
			}

			return 0, fmt.Errorf("%w: %w", ErrInputClosed, io.EOF)
		}

		value, err := strconv.Atoi(that.in.Text())
		if err == nil {
			return value, nil
		}

		that.logger.Debug("token is not an integer", "token", that.in.Text())
	}
}

func (that *Communicator) write(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write: %w", err)
	}

	return nil
}
