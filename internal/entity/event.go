package entity

import "fmt"

// Event is a protocol message code. The numeric values are the historical
// wire codes and must not change.
type Event int

const (
	EventMachineFirstQuery Event = 0
	EventCellQuery         Event = 1
	EventMachineThinking   Event = 2
	EventInvalidCellChosen Event = 3
	EventValidCellChosen   Event = 4
	EventGameOver          Event = 5
	EventMachineWon        Event = 20
	EventOpponentWon       Event = 21
	EventDraw              Event = 22
	EventPlayAgainQuery    Event = 30
)

var eventNames = map[Event]string{
	EventMachineFirstQuery: "machine_first_query",
	EventCellQuery:         "cell_query",
	EventMachineThinking:   "machine_thinking",
	EventInvalidCellChosen: "invalid_cell_chosen",
	EventValidCellChosen:   "valid_cell_chosen",
	EventGameOver:          "game_over",
	EventMachineWon:        "machine_won",
	EventOpponentWon:       "opponent_won",
	EventDraw:              "draw",
	EventPlayAgainQuery:    "play_again_query",
}

func (e Event) IsValid() bool {
	_, ok := eventNames[e]
	return ok
}

// IsQuery reports whether the event expects an integer answer.
func (e Event) IsQuery() bool {
	return e == EventMachineFirstQuery || e == EventCellQuery || e == EventPlayAgainQuery
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}

	return fmt.Sprintf("event(%d)", int(e))
}

// WhoFirst decodes the answer to EventMachineFirstQuery: the sign tells who
// moves first (positive means the machine) and the magnitude is the
// difficulty tier.
func WhoFirst(answer int) (machineFirst bool, difficulty Difficulty, ok bool) {
	if answer == 0 {
		return false, 0, false
	}

	machineFirst = answer > 0
	if answer < 0 {
		answer = -answer
	}

	difficulty = Difficulty(answer)

	return machineFirst, difficulty, difficulty.IsValid()
}

// EncodeWhoFirst is the inverse of WhoFirst.
func EncodeWhoFirst(machineFirst bool, difficulty Difficulty) int {
	if machineFirst {
		return int(difficulty)
	}

	return -int(difficulty)
}
