package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type gameControllerDep interface {
	Play(ctx context.Context, comm tictactoe.Communicator, game *entity.Game) error
}

// SessionManager plays games with one peer until it declines another round.
type SessionManager struct {
	logger     *slog.Logger
	controller gameControllerDep
}

func NewSessionManager(logger *slog.Logger, controller gameControllerDep) *SessionManager {
	return &SessionManager{
		logger:     logger.With("component", "session_manager"),
		controller: controller,
	}
}

// Run asks who moves first, plays a game, records it and asks to play
// again. The tally so far is returned even when a transport fails.
func (that *SessionManager) Run(ctx context.Context, comm tictactoe.Communicator) (entity.Tally, error) {
	log := that.logger.With("method", "Run", "session_id", pkg.GenerateNewSessionID())

	var tally entity.Tally

	for {
		machineFirst, difficulty, err := that.askWhoFirst(ctx, comm)
		if err != nil {
			return tally, err
		}

		game := entity.NewGame(pkg.GenerateGameID(), machineFirst, difficulty)

		if err = that.controller.Play(ctx, comm, game); err != nil {
			return tally, fmt.Errorf("game %s aborted: %w", game.ID, err)
		}

		outcome := tictactoe.Outcome(game.Board, game.Machine)
		tally.Record(outcome)

		log.Info("game recorded",
			"game_id", game.ID,
			"outcome", outcome.String(),
			"machine_wins", tally.MachineWins,
			"opponent_wins", tally.OpponentWins,
			"draws", tally.Draws,
		)

		again, err := that.askPlayAgain(ctx, comm)
		if err != nil {
			return tally, err
		}

		if !again {
			log.Info("session finished", "games", tally.Games())

			return tally, nil
		}
	}
}

func (that *SessionManager) askWhoFirst(ctx context.Context, comm tictactoe.Communicator) (bool, entity.Difficulty, error) {
	high := int(entity.DifficultyHard)

	for {
		answer, err := comm.QueryInt(ctx, entity.EventMachineFirstQuery, -high, high)
		if err != nil {
			return false, 0, fmt.Errorf("failed to query who moves first: %w", err)
		}

		if machineFirst, difficulty, ok := entity.WhoFirst(answer); ok {
			return machineFirst, difficulty, nil
		}

		that.logger.Debug("who-first answer rejected", "answer", answer)

		if err = ctx.Err(); err != nil {
			return false, 0, fmt.Errorf("session interrupted: %w", err)
		}
	}
}

func (that *SessionManager) askPlayAgain(ctx context.Context, comm tictactoe.Communicator) (bool, error) {
	for {
		answer, err := comm.QueryInt(ctx, entity.EventPlayAgainQuery, 0, 1)
		if err != nil {
			return false, fmt.Errorf("failed to query play again: %w", err)
		}

		switch answer {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}

		that.logger.Debug("play-again answer rejected", "answer", answer)

		if err = ctx.Err(); err != nil {
			return false, fmt.Errorf("session interrupted: %w", err)
		}
	}
}
