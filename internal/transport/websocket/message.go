package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/render"
)

const (
	actionPointerDown = "pointer:down"
	actionClose       = "close"
	actionFrame       = "frame"
	actionSession     = "session"
	actionError       = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type PointerPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type FramePayload struct {
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	Commands []render.Command `json:"commands"`
}

type SessionPayload struct {
	Session string          `json:"session"`
	Mode    string          `json:"mode"`
	Players []entity.Player `json:"players"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}
