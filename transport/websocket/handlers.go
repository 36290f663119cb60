package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Communicator plays one session over an upgraded connection.
type Communicator struct {
	logger *slog.Logger
	conn   *websocket.Conn
}

func NewCommunicator(logger *slog.Logger, conn *websocket.Conn) *Communicator {
	return &Communicator{
		logger: logger.With("component", "websocket_communicator"),
		conn:   conn,
	}
}

func (that *Communicator) Render(_ context.Context, board entity.Board) error {
	return that.sendMessage(actionRender, RenderPayload{Board: board})
}

func (that *Communicator) Notify(_ context.Context, event entity.Event) error {
	return that.sendMessage(actionNotify, newEventPayload(event))
}

// QueryInt sends a query and waits for an answer message. Anything else the
// client sends in between gets an error reply and is otherwise ignored.
func (that *Communicator) QueryInt(ctx context.Context, event entity.Event, low, high int) (int, error) {
	log := that.logger.With("method", "QueryInt", "event", event.String())

	query := newEventPayload(event)
	query.Low = &low
	query.High = &high

	if err := that.sendMessage(actionQuery, query); err != nil {
		return 0, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("query interrupted: %w", err)
		}

		message, ok, err := that.readMessage()
		if err != nil {
			return 0, err
		}

		if !ok {
			continue
		}

		if message.Action != actionAnswer {
			log.Debug("unexpected action", "action", message.Action)

			if err = that.sendErrorResponse(fmt.Sprintf("unexpected action %q, waiting for %q", message.Action, actionAnswer)); err != nil {
				return 0, err
			}

			continue
		}

		var answer AnswerPayload
		if err = json.Unmarshal(message.Payload, &answer); err != nil || answer.Value == nil {
			if err = that.sendErrorResponse("answer needs an integer value"); err != nil {
				return 0, err
			}

			continue
		}

		return *answer.Value, nil
	}
}
