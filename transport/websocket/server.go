package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	sessionCookie   = "user_session"
	shutdownTimeout = 5 * time.Second
)

type sessionRunner interface {
	Run(ctx context.Context, comm tictactoe.Communicator) (entity.Tally, error)
}

type Server struct {
	logger   *slog.Logger
	sessions sessionRunner
	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, sessions sessionRunner) *Server {
	return &Server{
		logger:   logger.With("component", "websocket_server"),
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Handler serves the /ws endpoint. Sessions end when ctx is done.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down websocket server", "error", err)
		}
	})
	defer stop()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection and runs one session on it.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := that.upgrader.Upgrade(writer, req, that.sessionHeader(req))
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	// hijacked connections outlive Shutdown, so close them on cancel
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	defer conn.Close()

	log.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	tally, err := that.sessions.Run(ctx, NewCommunicator(that.logger, conn))
	if err != nil {
		log.Error("session ended with error", "error", err, "games", tally.Games())
		return
	}

	closing := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session finished")
	if err = conn.WriteControl(websocket.CloseMessage, closing, time.Now().Add(time.Second)); err != nil {
		log.Debug("failed to send close frame", "error", err)
	}

	log.Info("session finished", "machine_wins", tally.MachineWins, "opponent_wins", tally.OpponentWins, "draws", tally.Draws)
}

// sessionHeader - sets a user session cookie when the client has none.
func (that *Server) sessionHeader(req *http.Request) http.Header {
	log := that.logger.With("method", "sessionHeader")

	if cookie, err := req.Cookie(sessionCookie); err == nil {
		log.Info("session cookie found", "cookie", cookie.Value)
		return nil
	}

	cookie := &http.Cookie{
		Name:    sessionCookie,
		Value:   pkg.GenerateNewSessionID(),
		Expires: time.Now().Add(24 * time.Hour),
		Path:    "/ws",
	}

	log.Info("session cookie not found, new one created", "cookie", cookie.Value)

	header := http.Header{}
	header.Add("Set-Cookie", cookie.String())

	return header
}
