package ui

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/gomoku-backend/internal/render"
)

type EventType string

const (
	EventPointerDown EventType = "pointer:down"
	EventClose       EventType = "close"
)

var ErrSourceClosed = errors.New("event source closed")

// Event is a single input event.
type Event struct {
	Type EventType
	Pos  render.Point
}

// EventSource blocks until the next input event is available.
type EventSource interface {
	PollEvent(ctx context.Context) (Event, error)
}

// Screen is a canvas whose pending drawing can be shown to the user.
type Screen interface {
	render.Canvas
	Present(ctx context.Context) error
}
