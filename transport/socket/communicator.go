package socket

import (
	"context"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// renderCode precedes the nine board bytes of a render frame.
const renderCode = 10

// Communicator frames every value as a single byte shifted by offset, so
// the small negative who-first answers survive the trip.
type Communicator struct {
	conn   io.ReadWriter
	offset int
}

func NewCommunicator(conn io.ReadWriter, offset int) *Communicator {
	return &Communicator{
		conn:   conn,
		offset: offset,
	}
}

func (that *Communicator) Render(_ context.Context, board entity.Board) error {
	code, err := that.encode(renderCode)
	if err != nil {
		return err
	}

	frame := make([]byte, 0, entity.BoardSize+1)
	frame = append(frame, code)
	frame = append(frame, board.String()...)

	if _, err = that.conn.Write(frame); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *Communicator) Notify(_ context.Context, event entity.Event) error {
	return that.send(int(event))
}

// QueryInt sends the event code and waits for a single answer byte.
func (that *Communicator) QueryInt(ctx context.Context, event entity.Event, _, _ int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("query interrupted: %w", err)
	}

	if err := that.send(int(event)); err != nil {
		return 0, err
	}

	answer := make([]byte, 1)
	if _, err := io.ReadFull(that.conn, answer); err != nil {
		return 0, fmt.Errorf("failed to read answer: %w", err)
	}

	return that.decode(answer[0]), nil
}

func (that *Communicator) send(value int) error {
	code, err := that.encode(value)
	if err != nil {
		return err
	}

	if _, err = that.conn.Write([]byte{code}); err != nil {
		return fmt.Errorf("failed to write code %d: %w", value, err)
	}

	return nil
}

func (that *Communicator) encode(value int) (byte, error) {
	shifted := value + that.offset
	if shifted < 0 || shifted > 255 {
		return 0, fmt.Errorf("%w: %d does not fit a byte with offset %d", apperror.ErrOutOfRange, value, that.offset)
	}

	return byte(shifted), nil
}

func (that *Communicator) decode(code byte) int {
	return int(code) - that.offset
}
