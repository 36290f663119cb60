package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	GameHandler(w http.ResponseWriter, r *http.Request)
}

type gameRepo interface {
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

type handlers struct {
	ping     PingHandler
	logger   *slog.Logger
	gameRepo gameRepo
}

func NewHandlers(logger *slog.Logger, gameRepo gameRepo) Handlers {
	logger = logger.With("component", "rest")

	return &handlers{
		ping:     NewPingHandler(logger),
		logger:   logger,
		gameRepo: gameRepo,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, r *http.Request) {
	that.ping.PingHandler(w, r)
}

// GameResponse is a live game as the outside world sees it.
type GameResponse struct {
	*entity.Game
	Outcome string `json:"outcome"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GameHandler - returns the snapshot of a game in progress.
func (that *handlers) GameHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GameHandler")

	id := r.PathValue("id")

	game, err := that.gameRepo.GetByID(r.Context(), id)
	if errors.Is(err, apperror.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "game not found"})
		return
	}

	if err != nil {
		log.Error("failed to get game", "game_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to get game"})

		return
	}

	writeJSON(w, http.StatusOK, GameResponse{
		Game:    game,
		Outcome: tictactoe.Outcome(game.Board, game.Machine).String(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
