package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrGameNotWaiting = errors.New("game is not waiting for its first move")

// Communicator is everything the controller needs from a front end.
// Render and Notify receive copies and cannot change the game.
type Communicator interface {
	Render(ctx context.Context, board entity.Board) error
	Notify(ctx context.Context, event entity.Event) error
	// QueryInt blocks until the peer answers. low and high bound the
	// expected answer and may be used for prompting; the controller
	// re-checks them.
	QueryInt(ctx context.Context, event entity.Event, low, high int) (int, error)
}

type bot interface {
	MakeMove(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (int, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	DeleteByID(ctx context.Context, id string) error
}

// GameController runs one game at a time from the first move to the end.
type GameController struct {
	logger   *slog.Logger
	bot      bot
	gameRepo gameRepo
}

func NewGameController(logger *slog.Logger, bot bot, gameRepo gameRepo) *GameController {
	return &GameController{
		logger:   logger.With("component", "game_controller"),
		bot:      bot,
		gameRepo: gameRepo,
	}
}

// Play drives a waiting game to its end, alternating the machine and the
// peer behind comm. The game is updated in place.
func (that *GameController) Play(ctx context.Context, comm Communicator, game *entity.Game) error {
	log := that.logger.With("method", "Play", "game_id", game.ID)

	if game.IsFinished() {
		return fmt.Errorf("game %s: %w", game.ID, apperror.ErrGameFinished)
	}

	if !game.IsWaiting() {
		return fmt.Errorf("%w: status %s", ErrGameNotWaiting, game.Status)
	}

	game.Status = entity.StatusOngoing
	that.saveGame(ctx, game)

	log.Info("game started", "machine", game.Machine.String(), "difficulty", game.Difficulty.String())

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		if err := comm.Render(ctx, game.Board); err != nil {
			return fmt.Errorf("failed to render board: %w", err)
		}

		var (
			cell int
			err  error
		)

		if game.IsMachineTurn() {
			cell, err = that.machineMove(ctx, comm, game)
		} else {
			cell, err = that.opponentMove(ctx, comm, game.Board)
		}

		if err != nil {
			return err
		}

		if err = game.Board.Place(cell, game.Turn); err != nil {
			return fmt.Errorf("failed to apply move: %w", err)
		}

		log.Debug("move applied", "mark", game.Turn.String(), "cell", cell, "board", game.Board.String())

		if err = comm.Notify(ctx, entity.EventValidCellChosen); err != nil {
			return fmt.Errorf("failed to notify: %w", err)
		}

		if IsTerminal(game.Board) {
			return that.finish(ctx, comm, game)
		}

		game.Turn = game.Turn.Opponent()
		that.saveGame(ctx, game)
	}
}

func (that *GameController) machineMove(ctx context.Context, comm Communicator, game *entity.Game) (int, error) {
	if err := comm.Notify(ctx, entity.EventMachineThinking); err != nil {
		return 0, fmt.Errorf("failed to notify: %w", err)
	}

	cell, err := that.bot.MakeMove(game.Board, game.Machine, game.Difficulty)
	if err != nil {
		return 0, fmt.Errorf("machine failed to move: %w", err)
	}

	if !game.Board.IsVacant(cell) {
		return 0, fmt.Errorf("machine chose cell %d: %w", cell, apperror.ErrPreconditionViolated)
	}

	return cell, nil
}

// opponentMove asks until the answer names a vacant cell.
func (that *GameController) opponentMove(ctx context.Context, comm Communicator, board entity.Board) (int, error) {
	log := that.logger.With("method", "opponentMove")

	for {
		cell, err := comm.QueryInt(ctx, entity.EventCellQuery, 0, entity.BoardSize-1)
		if err != nil {
			return 0, fmt.Errorf("failed to query cell: %w", err)
		}

		if board.IsVacant(cell) {
			return cell, nil
		}

		log.Debug("bad cell chosen", "cell", cell, "board", board.String())

		if err = comm.Notify(ctx, entity.EventInvalidCellChosen); err != nil {
			return 0, fmt.Errorf("failed to notify: %w", err)
		}

		if err = ctx.Err(); err != nil {
			return 0, fmt.Errorf("game interrupted: %w", err)
		}
	}
}

func (that *GameController) finish(ctx context.Context, comm Communicator, game *entity.Game) error {
	game.Status = entity.StatusFinished
	game.Turn = entity.MarkEmpty

	outcome := Outcome(game.Board, game.Machine)
	that.logger.Info("game finished", "game_id", game.ID, "outcome", outcome.String(), "board", game.Board.String())

	that.deleteGame(ctx, game)

	if err := comm.Notify(ctx, entity.EventGameOver); err != nil {
		return fmt.Errorf("failed to notify: %w", err)
	}

	if event, ok := outcome.Event(); ok {
		if err := comm.Notify(ctx, event); err != nil {
			return fmt.Errorf("failed to notify: %w", err)
		}
	}

	if err := comm.Render(ctx, game.Board); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

func (that *GameController) saveGame(ctx context.Context, game *entity.Game) {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		that.logger.Error("failed to save game", "game_id", game.ID, "error", err)
	}
}

func (that *GameController) deleteGame(ctx context.Context, game *entity.Game) {
	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		that.logger.Error("failed to delete game", "game_id", game.ID, "error", err)
	}
}
