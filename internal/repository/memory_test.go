package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGameRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a copy", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()

		// Given: a saved game
		game := ongoingGame(t, "1")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the caller keeps mutating its game
		require.NoError(t, game.Board.Place(0, entity.MarkO))

		// Then: the stored snapshot is unchanged
		stored, err := gameRepo.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "    X    ", stored.Board.String())
	})

	t.Run("Update replaces the snapshot", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()
		game := ongoingGame(t, "1")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		game.Status = entity.StatusFinished
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		stored, err := gameRepo.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFinished, stored.Status)
	})

	t.Run("Missing game", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()

		stored, err := gameRepo.GetByID(ctx, "nope")
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Nil(t, stored)

		require.ErrorIs(t, gameRepo.DeleteByID(ctx, "nope"), ErrGameNotFound)
	})

	t.Run("Delete removes the game", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, ongoingGame(t, "1")))

		require.NoError(t, gameRepo.DeleteByID(ctx, "1"))

		_, err := gameRepo.GetByID(ctx, "1")
		require.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("Concurrent sessions", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()

		var wg sync.WaitGroup
		for i := range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()

				id := fmt.Sprintf("game-%d", i)
				game := entity.NewGame(id, i%2 == 0, entity.DifficultyHard)
				assert.NoError(t, gameRepo.CreateOrUpdate(ctx, game))
				_, err := gameRepo.GetByID(ctx, id)
				assert.NoError(t, err)
				assert.NoError(t, gameRepo.DeleteByID(ctx, id))
			}()
		}
		wg.Wait()
	})
}
