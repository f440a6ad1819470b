package websocket

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/render"
	"github.com/rocketscienceinc/gomoku-backend/internal/ui"
)

const (
	sessionCookie  = "gomoku_session"
	maxMessageSize = 1024
)

type gameUseCase interface {
	GetOrCreateGame(ctx context.Context, id, mode string) (*gomoku.Game, string, error)
	SaveGame(ctx context.Context, id, mode string, game *gomoku.Game) error
	RecordResult(ctx context.Context, id string, game *gomoku.Game) error
	EndGame(ctx context.Context, id string) error
}

type botPlayer interface {
	ChooseMove(game *gomoku.Game) (gomoku.Position, error)
}

// Server runs one game loop per WebSocket connection.
type Server struct {
	ctx    context.Context
	logger *slog.Logger

	upgrader    websocket.Upgrader
	gameUseCase gameUseCase
	bot         botPlayer

	layout      render.Layout
	palette     render.Palette
	defaultMode string
}

func New(ctx context.Context, logger *slog.Logger, gameUseCase gameUseCase, bot botPlayer, layout render.Layout, defaultMode string) *Server {
	return &Server{
		ctx:    ctx,
		logger: logger.With("component", "websocket"),

		upgrader: websocket.Upgrader{
			HandshakeTimeout: 5 * time.Second,
			ReadBufferSize:   1024,
			WriteBufferSize:  4096,
		},
		gameUseCase: gameUseCase,
		bot:         bot,

		layout:      layout,
		palette:     render.DefaultPalette(),
		defaultMode: defaultMode,
	}
}

func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	sessionID := sessionFromRequest(req)
	mode := modeFromRequest(req, that.defaultMode)

	header := http.Header{}
	header.Add("Set-Cookie", (&http.Cookie{
		Name:     sessionCookie,
		Value:    sessionID,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
	}).String())

	ws, err := that.upgrader.Upgrade(writer, req, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer ws.Close()

	ws.SetReadLimit(maxMessageSize)

	log = log.With("gameID", sessionID)
	log.Info("WebSocket connection established", "remote", ws.RemoteAddr().String())

	if err = that.serve(ws, sessionID, mode); err != nil {
		log.Error("game loop failed", "error", err)
		return
	}

	log.Info("WebSocket connection finished")
}

func (that *Server) serve(ws *websocket.Conn, sessionID, mode string) error {
	ctx, cancel := context.WithCancel(that.ctx)
	defer cancel()

	// unblock a pending read when the server shuts down
	go func() {
		<-ctx.Done()
		_ = ws.Close()
	}()

	conn := newConnection(ws, that.layout)

	game, mode, err := that.gameUseCase.GetOrCreateGame(ctx, sessionID, mode)
	if err != nil {
		if sendErr := conn.send(actionError, ErrorPayload{Error: "failed to start the game"}); sendErr != nil {
			that.logger.Error("failed to send error", "error", sendErr)
		}

		return err
	}

	if err = conn.send(actionSession, SessionPayload{Session: sessionID, Mode: mode, Players: game.Settings().Players()}); err != nil {
		return err
	}

	loop := ui.NewLoop(that.logger, ui.Options{
		ID:       sessionID,
		Mode:     mode,
		Game:     game,
		Renderer: render.NewRenderer(that.layout, that.palette),
		Screen:   conn,
		Events:   conn,
		Store:    that.gameUseCase,
		Bot:      that.bot,
	})

	if err = loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// sessionFromRequest takes the session from the query or the cookie, or starts a new one.
func sessionFromRequest(req *http.Request) string {
	candidates := []string{req.URL.Query().Get("session")}
	if cookie, err := req.Cookie(sessionCookie); err == nil {
		candidates = append(candidates, cookie.Value)
	}

	for _, candidate := range candidates {
		if id, err := uuid.Parse(candidate); err == nil {
			return id.String()
		}
	}

	return uuid.NewString()
}

func modeFromRequest(req *http.Request, defaultMode string) string {
	switch mode := req.URL.Query().Get("mode"); mode {
	case entity.ModeLocal, entity.ModeBot:
		return mode
	default:
		return defaultMode
	}
}
