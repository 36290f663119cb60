package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	actionRender = "render"
	actionNotify = "notify"
	actionQuery  = "query"
	actionAnswer = "answer"
	actionError  = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RenderPayload struct {
	Board entity.Board `json:"board"`
}

type EventPayload struct {
	Event int    `json:"event"`
	Name  string `json:"name"`
	Low   *int   `json:"low,omitempty"`
	High  *int   `json:"high,omitempty"`
}

type AnswerPayload struct {
	Value *int `json:"value"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

func newEventPayload(event entity.Event) EventPayload {
	return EventPayload{
		Event: int(event),
		Name:  event.String(),
	}
}

func (that *Communicator) sendMessage(action string, payload any) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response := Message{
		Action:  action,
		Payload: payloadBytes,
	}

	responseBytes, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err = that.conn.WriteMessage(websocket.TextMessage, responseBytes); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Communicator) sendErrorResponse(reason string) error {
	return that.sendMessage(actionError, ErrorPayload{Error: reason})
}

// readMessage returns the next text message. ok is false when the frame was
// not a well-formed Message; the peer has already been told why.
func (that *Communicator) readMessage() (message Message, ok bool, err error) {
	msgType, data, err := that.conn.ReadMessage()
	if err != nil {
		return Message{}, false, fmt.Errorf("failed to read message: %w", err)
	}

	if msgType != websocket.TextMessage {
		return Message{}, false, that.sendErrorResponse("only text messages are supported")
	}

	if err = json.Unmarshal(data, &message); err != nil {
		that.logger.Debug("failed to unmarshal message", "error", err)

		return Message{}, false, that.sendErrorResponse("malformed message")
	}

	return message, true, nil
}
