package service

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBot(seed int64) BotService {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := minimax.New(rand.New(rand.NewSource(seed))) //nolint: gosec // it's ok

	return NewBotService(logger, engine)
}

func TestBotService_MakeMove(t *testing.T) {
	t.Run("Hard bot always takes the immediate win", func(t *testing.T) {
		// Given: X can complete the top row at 2
		board, err := entity.ParseBoard("XX O O   ")
		require.NoError(t, err)
		bot := newBot(1)

		for range 20 {
			// When: the hard bot moves for X
			cell, err := bot.MakeMove(board, entity.MarkX, entity.DifficultyHard)

			// Then: it wins
			require.NoError(t, err)
			assert.Equal(t, 2, cell)
		}
	})

	t.Run("Easy bot plays random vacant cells", func(t *testing.T) {
		// Given: a board with five vacant cells
		board, err := entity.ParseBoard("XX O O   ")
		require.NoError(t, err)
		bot := newBot(2)
		seen := map[int]struct{}{}

		// When: the easy bot moves many times
		for range 100 {
			cell, err := bot.MakeMove(board, entity.MarkX, entity.DifficultyEasy)
			require.NoError(t, err)
			require.True(t, board.IsVacant(cell))
			seen[cell] = struct{}{}
		}

		// Then: it does not stick to the winning move
		assert.Greater(t, len(seen), 1)
	})

	t.Run("Medium bot mixes searched and random moves", func(t *testing.T) {
		board, err := entity.ParseBoard("XX O O   ")
		require.NoError(t, err)
		bot := newBot(3)
		wins := 0

		for range 200 {
			cell, err := bot.MakeMove(board, entity.MarkX, entity.DifficultyMedium)
			require.NoError(t, err)
			require.True(t, board.IsVacant(cell))
			if cell == 2 {
				wins++
			}
		}

		// Half the time it searches, a fifth of the rest it lands on 2 anyway.
		assert.Greater(t, wins, 80)
		assert.Less(t, wins, 200)
	})

	t.Run("Terminal board has no legal move", func(t *testing.T) {
		board, err := entity.ParseBoard("XXXOO    ")
		require.NoError(t, err)

		_, err = newBot(4).MakeMove(board, entity.MarkO, entity.DifficultyEasy)

		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
	})

	t.Run("Unknown difficulty is rejected", func(t *testing.T) {
		_, err := newBot(5).MakeMove(entity.NewBoard(), entity.MarkX, entity.Difficulty(9))

		require.Error(t, err)
	})
}
