package minimax

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, canonical string) entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(canonical)
	require.NoError(t, err)

	return board
}

func newEngine(seed int64) *Engine {
	return New(rand.New(rand.NewSource(seed))) //nolint: gosec // it's ok
}

func TestScore(t *testing.T) {
	t.Run("No winner scores zero", func(t *testing.T) {
		board := mustBoard(t, "XOXOXOOXO")

		assert.Equal(t, 0, Score(board, entity.MarkX, true))
		assert.Equal(t, 0, Score(board, entity.MarkX, false))
	})

	t.Run("Winner is scored from the requested perspective", func(t *testing.T) {
		// Given: X completed the top row
		board := mustBoard(t, "XXXOO    ")

		// Then: +1 for the machine playing X, -1 for its opponent
		assert.Equal(t, 1, Score(board, entity.MarkX, true))
		assert.Equal(t, -1, Score(board, entity.MarkX, false))

		// And: the signs flip when the machine plays O
		assert.Equal(t, -1, Score(board, entity.MarkO, true))
		assert.Equal(t, 1, Score(board, entity.MarkO, false))
	})
}

func TestSearch(t *testing.T) {
	t.Run("Machine win at depth d is worth 10-d", func(t *testing.T) {
		// Given: machine X has just completed a line, opponent to move
		board := mustBoard(t, "XXXOO    ")

		assert.Equal(t, 9, Search(board, 1, false, entity.MarkX))
		assert.Equal(t, 5, Search(board, 5, false, entity.MarkX))
	})

	t.Run("Opponent win at depth d is worth d-10", func(t *testing.T) {
		// Given: opponent O has just completed a line, machine to move
		board := mustBoard(t, "OOOXX X  ")

		assert.Equal(t, -8, Search(board, 2, true, entity.MarkX))
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		board := mustBoard(t, "XOXXOOOXX")

		assert.Equal(t, 0, Search(board, 9, true, entity.MarkX))
	})

	t.Run("Empty board is a draw under optimal play", func(t *testing.T) {
		assert.Equal(t, 0, Search(entity.NewBoard(), 0, true, entity.MarkX))
	})

	t.Run("Does not mutate the board", func(t *testing.T) {
		board := mustBoard(t, "X   O    ")
		before := board

		Search(board, 2, true, entity.MarkX)

		assert.Equal(t, before, board)
	})
}

func TestScores(t *testing.T) {
	t.Run("Prefers the immediate win over a later one", func(t *testing.T) {
		// Given: X can win now at 2
		board := mustBoard(t, "XX O O   ")

		// When: scoring every vacant cell
		scores, err := Scores(board, entity.MarkX)
		require.NoError(t, err)

		// Then: index 2 scores 9, the highest possible at depth 1
		require.Len(t, scores, 5)
		assert.Equal(t, MoveScore{Index: 2, Score: 9}, scores[0])
		assert.Equal(t, []int{2}, Best(scores))
	})

	t.Run("Terminal board has no legal move", func(t *testing.T) {
		_, err := Scores(mustBoard(t, "XXXOO    "), entity.MarkO)
		require.ErrorIs(t, err, apperror.ErrNoLegalMove)

		_, err = Scores(mustBoard(t, "XOXOXOOXO"), entity.MarkX)
		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
	})

	t.Run("Empty machine mark is rejected", func(t *testing.T) {
		_, err := Scores(entity.NewBoard(), entity.MarkEmpty)
		require.ErrorIs(t, err, apperror.ErrInvalidMarker)
	})
}

func TestBest(t *testing.T) {
	scores := []MoveScore{{0, -2}, {3, 4}, {5, 1}, {7, 4}}

	assert.Equal(t, []int{3, 7}, Best(scores))
	assert.Empty(t, Best(nil))
}

func TestEngine_BestMove(t *testing.T) {
	t.Run("Completes the top row", func(t *testing.T) {
		// Given: board "XX O O   " with the machine playing X
		board := mustBoard(t, "XX O O   ")
		engine := newEngine(1)

		// When: asking for the best move repeatedly
		for range 20 {
			move, err := engine.BestMove(board, entity.MarkX)

			// Then: it always wins immediately at 2
			require.NoError(t, err)
			assert.Equal(t, 2, move)
		}
	})

	t.Run("Blocks the opponent's open line", func(t *testing.T) {
		// Given: O threatens the middle row and X has no immediate win
		board := mustBoard(t, "X  OO   X")
		engine := newEngine(2)

		move, err := engine.BestMove(board, entity.MarkX)

		require.NoError(t, err)
		assert.Equal(t, 5, move)
	})

	t.Run("Plays for O when O is the machine", func(t *testing.T) {
		// Given: O can win on the diagonal
		board := mustBoard(t, "OXX O X  ")
		engine := newEngine(3)

		move, err := engine.BestMove(board, entity.MarkO)

		require.NoError(t, err)
		assert.Equal(t, 8, move)
	})

	t.Run("First move leaves a single mark and a live game", func(t *testing.T) {
		// Given: an empty board and the machine moving first
		board := entity.NewBoard()
		engine := newEngine(4)

		// When: applying the best move once
		move, err := engine.BestMove(board, entity.FirstMark)
		require.NoError(t, err)
		require.NoError(t, board.Place(move, entity.FirstMark))

		// Then: exactly one cell is occupied and play continues
		assert.Equal(t, 1, board.Placed())
		assert.False(t, tictactoe.IsTerminal(board))
	})

	t.Run("Tie-break is random among equally good moves", func(t *testing.T) {
		// Given: the empty board, where every opening draws
		engine := newEngine(5)
		seen := map[int]struct{}{}

		// When: asking several times
		for range 20 {
			move, err := engine.BestMove(entity.NewBoard(), entity.MarkX)
			require.NoError(t, err)
			seen[move] = struct{}{}
		}

		// Then: more than one opening gets played
		assert.Greater(t, len(seen), 1)
	})

	t.Run("Never picks an occupied cell", func(t *testing.T) {
		engine := newEngine(6)
		board := mustBoard(t, "XO  X  O ")

		for range 50 {
			move, err := engine.BestMove(board, entity.MarkX)
			require.NoError(t, err)
			assert.True(t, board.IsVacant(move))
		}
	})

	t.Run("Terminal board signals ErrNoLegalMove", func(t *testing.T) {
		engine := newEngine(7)

		_, err := engine.BestMove(mustBoard(t, "XOXOXOOXO"), entity.MarkX)

		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
	})
}

func TestEngine_SelfPlayAlwaysDraws(t *testing.T) {
	// Given: both sides driven by the engine from their own perspective
	engine := newEngine(8)

	for game := range 10 {
		board := entity.NewBoard()
		turn := entity.FirstMark

		// When: playing to the end
		for !tictactoe.IsTerminal(board) {
			move, err := engine.BestMove(board, turn)
			require.NoError(t, err)
			require.NoError(t, board.Place(move, turn))
			turn = turn.Opponent()
		}

		// Then: nobody wins
		assert.Equal(t, entity.MarkEmpty, tictactoe.Winner(board), "game %d ended %q", game, board.String())
		assert.True(t, board.IsFull())
	}
}

func TestEngine_NeverLoses(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive game tree walk")
	}

	// Walks every opponent reply and every optimal machine reply.
	for _, machine := range []entity.Mark{entity.MarkX, entity.MarkO} {
		visited := map[entity.Board]struct{}{}

		var walk func(board entity.Board, turn entity.Mark)
		walk = func(board entity.Board, turn entity.Mark) {
			if _, ok := visited[board]; ok {
				return
			}
			visited[board] = struct{}{}

			if tictactoe.IsTerminal(board) {
				require.NotEqual(t, entity.OpponentWin, tictactoe.Outcome(board, machine), "machine %s lost on %q", machine, board.String())
				return
			}

			candidates := board.VacantIndices()
			if turn == machine {
				scores, err := Scores(board, machine)
				require.NoError(t, err)
				candidates = Best(scores)
			}

			for _, index := range candidates {
				next := board
				next[index] = turn
				walk(next, turn.Opponent())
			}
		}

		walk(entity.NewBoard(), entity.FirstMark)
	}
}
