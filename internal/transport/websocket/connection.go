package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gomoku-backend/internal/render"
	"github.com/rocketscienceinc/gomoku-backend/internal/ui"
)

const writeWait = 10 * time.Second

var ErrUnknownAction = errors.New("unknown action")

// connection is the screen and the event source of one browser tab.
type connection struct {
	*render.Recorder

	ws     *websocket.Conn
	layout render.Layout
}

func newConnection(ws *websocket.Conn, layout render.Layout) *connection {
	return &connection{
		Recorder: render.NewRecorder(),
		ws:       ws,
		layout:   layout,
	}
}

// Present sends the commands recorded since the last frame.
func (that *connection) Present(_ context.Context) error {
	payload := FramePayload{
		Width:    that.layout.Width(),
		Height:   that.layout.Height(),
		Commands: that.Flush(),
	}

	return that.send(actionFrame, payload)
}

// PollEvent blocks until the browser sends an input event.
func (that *connection) PollEvent(ctx context.Context) (ui.Event, error) {
	for {
		if err := ctx.Err(); err != nil {
			return ui.Event{}, err
		}

		_, data, err := that.ws.ReadMessage()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ui.Event{}, ctxErr
			}

			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return ui.Event{}, fmt.Errorf("failed to read message: %w", err)
			}

			return ui.Event{}, ui.ErrSourceClosed
		}

		event, err := decodeEvent(data)
		if err != nil {
			if sendErr := that.send(actionError, ErrorPayload{Error: err.Error()}); sendErr != nil {
				return ui.Event{}, sendErr
			}

			continue
		}

		return event, nil
	}
}

func decodeEvent(data []byte) (ui.Event, error) {
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		return ui.Event{}, fmt.Errorf("failed to unmarshal message: %w", err)
	}

	switch message.Action {
	case actionClose:
		return ui.Event{Type: ui.EventClose}, nil
	case actionPointerDown:
		var pointer PointerPayload
		if err := json.Unmarshal(message.Payload, &pointer); err != nil {
			return ui.Event{}, fmt.Errorf("failed to unmarshal payload: %w", err)
		}

		return ui.Event{Type: ui.EventPointerDown, Pos: render.Point{X: pointer.X, Y: pointer.Y}}, nil
	default:
		return ui.Event{}, fmt.Errorf("%w: %q", ErrUnknownAction, message.Action)
	}
}

func (that *connection) send(action string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = that.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.ws.WriteJSON(Message{Action: action, Payload: data}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
