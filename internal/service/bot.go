package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// mediumBlunderOdds is n in the 1/n chance that a medium bot plays at random.
const mediumBlunderOdds = 2

type BotService interface {
	MakeMove(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (int, error)
}

type searchEngine interface {
	BestMove(board entity.Board, machine entity.Mark) (int, error)
	RandomIndex(candidates []int) (int, error)
	Chance(n int) bool
}

type botService struct {
	logger *slog.Logger
	engine searchEngine
}

func NewBotService(logger *slog.Logger, engine searchEngine) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		engine: engine,
	}
}

// MakeMove picks a cell for mark. Hard always searches, easy always plays a
// random vacant cell, medium flips a coin between the two.
func (that *botService) MakeMove(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (int, error) {
	if tictactoe.IsTerminal(board) {
		return 0, fmt.Errorf("%w: board %q", apperror.ErrNoLegalMove, board.String())
	}

	random := false
	switch difficulty {
	case entity.DifficultyEasy:
		random = true
	case entity.DifficultyMedium:
		random = that.engine.Chance(mediumBlunderOdds)
	case entity.DifficultyHard:
	default:
		return 0, fmt.Errorf("unknown difficulty %d", difficulty)
	}

	if random {
		cell, err := that.engine.RandomIndex(board.VacantIndices())
		if err != nil {
			return 0, fmt.Errorf("random move: %w", err)
		}

		that.logger.Debug("random move", "board", board.String(), "cell", cell, "difficulty", difficulty.String())

		return cell, nil
	}

	cell, err := that.engine.BestMove(board, mark)
	if err != nil {
		return 0, fmt.Errorf("best move: %w", err)
	}

	that.logger.Debug("searched move", "board", board.String(), "cell", cell, "difficulty", difficulty.String())

	return cell, nil
}
