// Package minimax chooses moves by exhaustive adversarial search over the 3x3 board.
//
// Scores are always from the machine's side: a machine win found at ply d is
// worth 10-d and an opponent win d-10, so among winning lines the engine
// prefers the shortest and among losing lines the longest. Every ply works on
// its own copy of the board.
package minimax

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// horizon is larger than the deepest possible ply, so weights stay non-zero.
const horizon = 10

// MoveScore is a candidate move with its minimax value.
type MoveScore struct {
	Index int
	Score int
}

// Engine turns search results into a move, drawing tie-breaks from a shared
// random source.
type Engine struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns an engine drawing tie-breaks from rnd. The engine serializes
// its own access to rnd, so one source may be shared by every game.
func New(rnd *rand.Rand) *Engine {
	return &Engine{rnd: rnd}
}

// Score is +1 when the winner is the perspective side's mark, -1 when it is
// the other side's, and 0 with no winner.
func Score(board entity.Board, machine entity.Mark, perspectiveIsMachine bool) int {
	winner := tictactoe.Winner(board)
	if winner == entity.MarkEmpty {
		return 0
	}

	side := machine
	if !perspectiveIsMachine {
		side = machine.Opponent()
	}

	if winner == side {
		return 1
	}

	return -1
}

// Search returns the value of board with machineToMove telling whose ply it
// is at depth.
func Search(board entity.Board, depth int, machineToMove bool, machine entity.Mark) int {
	if s := Score(board, machine, machineToMove); s != 0 {
		if machineToMove {
			return s * (horizon - depth)
		}

		return s * (depth - horizon)
	}

	if board.IsFull() {
		return 0
	}

	mark := machine
	if !machineToMove {
		mark = machine.Opponent()
	}

	best := 0
	for i, index := range board.VacantIndices() {
		next := board
		next[index] = mark

		score := Search(next, depth+1, !machineToMove, machine)
		if i == 0 || (machineToMove && score > best) || (!machineToMove && score < best) {
			best = score
		}
	}

	return best
}

// Scores evaluates every vacant cell of a non-terminal board for machine.
func Scores(board entity.Board, machine entity.Mark) ([]MoveScore, error) {
	if _, err := tictactoe.Opposite(machine); err != nil {
		return nil, fmt.Errorf("machine mark: %w", err)
	}

	if tictactoe.IsTerminal(board) {
		return nil, fmt.Errorf("%w: board %q is terminal", apperror.ErrNoLegalMove, board.String())
	}

	vacant := board.VacantIndices()
	scores := make([]MoveScore, 0, len(vacant))
	for _, index := range vacant {
		next := board
		next[index] = machine

		scores = append(scores, MoveScore{
			Index: index,
			Score: Search(next, 1, false, machine),
		})
	}

	return scores, nil
}

// BestMove returns an optimal cell for machine. Ties between equally scored
// cells are broken uniformly at random.
func (that *Engine) BestMove(board entity.Board, machine entity.Mark) (int, error) {
	scores, err := Scores(board, machine)
	if err != nil {
		return 0, err
	}

	return that.pick(Best(scores)), nil
}

// Best returns the moves sharing the highest score, in board order.
func Best(scores []MoveScore) []int {
	var (
		tied []int
		top  int
	)

	for i, candidate := range scores {
		switch {
		case i == 0 || candidate.Score > top:
			top = candidate.Score
			tied = append(tied[:0], candidate.Index)
		case candidate.Score == top:
			tied = append(tied, candidate.Index)
		}
	}

	return tied
}

// RandomIndex returns one of candidates uniformly at random.
func (that *Engine) RandomIndex(candidates []int) (int, error) {
	if len(candidates) == 0 {
		return 0, apperror.ErrNoLegalMove
	}

	return that.pick(candidates), nil
}

// Chance reports true with probability 1/n.
func (that *Engine) Chance(n int) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Intn(n) == 0
}

func (that *Engine) pick(candidates []int) int {
	if len(candidates) == 1 {
		return candidates[0]
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return candidates[that.rnd.Intn(len(candidates))]
}
