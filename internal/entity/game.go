package entity

import (
	"errors"
	"fmt"
)

const (
	StatusWaiting  = "waiting"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Outcome int

const (
	InProgress Outcome = iota
	MachineWin
	OpponentWin
	Draw
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case MachineWin:
		return "machine_win"
	case OpponentWin:
		return "opponent_win"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Event returns the protocol notification announcing a finished game's outcome.
func (o Outcome) Event() (Event, bool) {
	switch o {
	case MachineWin:
		return EventMachineWon, true
	case OpponentWin:
		return EventOpponentWon, true
	case Draw:
		return EventDraw, true
	default:
		return 0, false
	}
}

// Difficulty is the machine's strength tier.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) IsValid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty maps a config name or tier number to a Difficulty.
func ParseDifficulty(value string) (Difficulty, error) {
	switch value {
	case "easy", "1":
		return DifficultyEasy, nil
	case "medium", "2":
		return DifficultyMedium, nil
	case "hard", "3", "":
		return DifficultyHard, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", value)
	}
}

// Game is a snapshot of a game in flight. The outcome is never stored: it is
// derived from Board whenever needed.
type Game struct {
	ID         string     `json:"id"`
	Board      Board      `json:"board"`
	Machine    Mark       `json:"machine"`
	Turn       Mark       `json:"turn"`
	Status     string     `json:"status"`
	Difficulty Difficulty `json:"difficulty"`
}

// NewGame returns a game waiting for the first move. The machine plays the
// first mover's mark when it moves first.
func NewGame(id string, machineFirst bool, difficulty Difficulty) *Game {
	machine := FirstMark
	if !machineFirst {
		machine = FirstMark.Opponent()
	}

	return &Game{
		ID:         id,
		Board:      NewBoard(),
		Machine:    machine,
		Turn:       FirstMark,
		Status:     StatusWaiting,
		Difficulty: difficulty,
	}
}

// Opponent returns the other player's mark, or MarkEmpty for MarkEmpty.
func (m Mark) Opponent() Mark {
	switch m {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkEmpty
	}
}

func (that *Game) OpponentMark() Mark {
	return that.Machine.Opponent()
}

func (that *Game) IsMachineTurn() bool {
	return that.Turn == that.Machine
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch that.Status {
	case StatusOngoing:
		return nil
	case StatusWaiting, StatusFinished:
		return fmt.Errorf("game %s is %s", that.ID, that.Status)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Tally counts finished games of one session.
type Tally struct {
	MachineWins  int `json:"machine_wins"`
	OpponentWins int `json:"opponent_wins"`
	Draws        int `json:"draws"`
}

// Record adds a finished game. InProgress is ignored.
func (that *Tally) Record(outcome Outcome) {
	switch outcome {
	case MachineWin:
		that.MachineWins++
	case OpponentWin:
		that.OpponentWins++
	case Draw:
		that.Draws++
	case InProgress:
	}
}

func (that Tally) Games() int {
	return that.MachineWins + that.OpponentWins + that.Draws
}
