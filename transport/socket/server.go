package socket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type sessionRunner interface {
	Run(ctx context.Context, comm tictactoe.Communicator) (entity.Tally, error)
}

// Server runs one session per accepted TCP connection.
type Server struct {
	logger   *slog.Logger
	sessions sessionRunner
	offset   int
}

func New(logger *slog.Logger, sessions sessionRunner, offset int) *Server {
	return &Server{
		logger:   logger.With("component", "socket_server"),
		sessions: sessions,
		offset:   offset,
	}
}

// Start - listens on port and serves until ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	var lc net.ListenConfig

	listener, err := lc.Listen(ctx, "tcp", ":"+port)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}

		return fmt.Errorf("failed to listen on port %s: %w", port, err)
	}

	return that.Serve(ctx, listener)
}

// Serve accepts connections until ctx is done, then closes them and waits.
func (that *Server) Serve(ctx context.Context, listener net.Listener) error {
	log := that.logger.With("method", "Serve", "addr", listener.Addr().String())

	stop := context.AfterFunc(ctx, func() {
		_ = listener.Close()
	})
	defer stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	log.Info("waiting for players")

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				log.Info("socket server stopped")
				return nil
			}

			return fmt.Errorf("failed to accept connection: %w", err)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			that.handleConn(ctx, conn)
		}()
	}
}

func (that *Server) handleConn(ctx context.Context, conn net.Conn) {
	log := that.logger.With("method", "handleConn", "remote", conn.RemoteAddr().String())

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	defer func() {
		if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			log.Error("failed to close connection", "error", err)
		}
	}()

	log.Info("client accepted")

	tally, err := that.sessions.Run(ctx, NewCommunicator(conn, that.offset))
	if err != nil {
		log.Error("session ended with error", "error", err, "games", tally.Games())
		return
	}

	log.Info("session finished", "machine_wins", tally.MachineWins, "opponent_wins", tally.OpponentWins, "draws", tally.Draws)
}
