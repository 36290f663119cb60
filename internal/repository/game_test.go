package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ongoingGame(t *testing.T, id string) *entity.Game {
	t.Helper()

	game := entity.NewGame(id, true, entity.DifficultyMedium)
	game.Status = entity.StatusOngoing
	require.NoError(t, game.Board.Place(4, entity.MarkX))
	game.Turn = entity.MarkO

	return game
}

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a game in progress
	game := ongoingGame(t, "123")

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: the snapshot is stored under its key and expires
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "game:123").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, gameTTL)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored game that was updated once
		game := ongoingGame(t, "123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		require.NoError(t, game.Board.Place(0, entity.MarkO))
		game.Turn = entity.MarkX
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game matches the latest save
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored game
		game := ongoingGame(t, "123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: DeleteByID is called with existing ID
		err := gameRepo.DeleteByID(ctx, game.ID)

		// Then: the game is gone
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		err := gameRepo.DeleteByID(ctx, "9999999")

		require.ErrorIs(t, err, ErrGameNotFound)
	})
}
