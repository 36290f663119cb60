package socket

import (
	"context"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const testOffset = 3

func pipe(t *testing.T) (*Communicator, net.Conn) {
	t.Helper()

	server, client := net.Pipe()
	t.Cleanup(func() {
		_ = server.Close()
		_ = client.Close()
	})

	return NewCommunicator(server, testOffset), client
}

func readN(t *testing.T, conn net.Conn, n int) []byte {
	t.Helper()

	buf := make([]byte, n)
	_, err := io.ReadFull(conn, buf)
	require.NoError(t, err)

	return buf
}

func TestCommunicator_Notify(t *testing.T) {
	comm, client := pipe(t)

	errCh := make(chan error, 1)
	go func() {
		errCh <- comm.Notify(context.Background(), entity.EventDraw)
	}()

	assert.Equal(t, []byte{22 + testOffset}, readN(t, client, 1))
	require.NoError(t, <-errCh)
}

func TestCommunicator_Render(t *testing.T) {
	comm, client := pipe(t)
	board, err := entity.ParseBoard("X O  O  X")
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() {
		errCh <- comm.Render(context.Background(), board)
	}()

	frame := readN(t, client, entity.BoardSize+1)
	assert.Equal(t, byte(renderCode+testOffset), frame[0])
	assert.Equal(t, "X O  O  X", string(frame[1:]))
	require.NoError(t, <-errCh)
}

func TestCommunicator_QueryInt(t *testing.T) {
	t.Run("Decodes a negative answer", func(t *testing.T) {
		// Given: a client answering "opponent first, hard"
		comm, client := pipe(t)

		go func() {
			code := make([]byte, 1)
			if _, err := io.ReadFull(client, code); err != nil {
				return
			}
			_, _ = client.Write([]byte{byte(-3 + testOffset)})
		}()

		// When: querying who moves first
		answer, err := comm.QueryInt(context.Background(), entity.EventMachineFirstQuery, -3, 3)

		// Then: the offset is removed
		require.NoError(t, err)
		assert.Equal(t, -3, answer)
	})

	t.Run("Closed peer", func(t *testing.T) {
		comm, client := pipe(t)

		go func() {
			_, _ = io.ReadFull(client, make([]byte, 1))
			_ = client.Close()
		}()

		_, err := comm.QueryInt(context.Background(), entity.EventCellQuery, 0, 8)

		require.ErrorIs(t, err, io.EOF)
	})
}

func TestCommunicator_Encode(t *testing.T) {
	comm := NewCommunicator(nil, testOffset)

	code, err := comm.encode(-3)
	require.NoError(t, err)
	assert.Equal(t, byte(0), code)
	assert.Equal(t, -3, comm.decode(code))

	_, err = comm.encode(-4)
	require.ErrorIs(t, err, apperror.ErrOutOfRange)

	_, err = comm.encode(253)
	require.ErrorIs(t, err, apperror.ErrOutOfRange)
}
