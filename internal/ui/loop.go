package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/render"
)

type gameStore interface {
	SaveGame(ctx context.Context, id, mode string, game *gomoku.Game) error
	RecordResult(ctx context.Context, id string, game *gomoku.Game) error
	EndGame(ctx context.Context, id string) error
}

type botPlayer interface {
	ChooseMove(game *gomoku.Game) (gomoku.Position, error)
}

// Options configures a Loop. Store and Bot are optional.
type Options struct {
	ID       string
	Mode     string
	Game     *gomoku.Game
	Renderer *render.Renderer
	Screen   Screen
	Events   EventSource
	Store    gameStore
	Bot      botPlayer
}

// Loop is the presentation and input loop of one game instance.
type Loop struct {
	logger *slog.Logger

	id       string
	mode     string
	game     *gomoku.Game
	renderer *render.Renderer
	screen   Screen
	events   EventSource
	store    gameStore
	bot      botPlayer

	restartButton *render.Button
	exitButton    *render.Button
}

func NewLoop(logger *slog.Logger, opts Options) *Loop {
	layout := opts.Renderer.Layout()
	restartPos, exitPos := buttonPositions(layout)

	mode := opts.Mode
	if mode == "" {
		mode = entity.ModeLocal
	}

	return &Loop{
		logger: logger.With("component", "loop", "gameID", opts.ID),

		id:       opts.ID,
		mode:     mode,
		game:     opts.Game,
		renderer: opts.Renderer,
		screen:   opts.Screen,
		events:   opts.Events,
		store:    opts.Store,
		bot:      opts.Bot,

		restartButton: render.NewButton(restartPos.X, restartPos.Y, "New game"),
		exitButton:    render.NewButton(exitPos.X, exitPos.Y, "Exit"),
	}
}

// buttonPositions places the buttons in the lower part of the canvas, (230, 650) and (440, 650) on 750x750.
func buttonPositions(layout render.Layout) (render.Point, render.Point) {
	width, height := layout.Width(), layout.Height()
	y := height - 2*layout.BlockSize

	return render.Point{X: width * 23 / 75, Y: y}, render.Point{X: width * 44 / 75, Y: y}
}

// Run processes events until the window is closed, exit is clicked or ctx is done.
func (that *Loop) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.redraw()
	if that.isBotTurn() {
		that.playBot(ctx)
	}

	if err := that.screen.Present(ctx); err != nil {
		return fmt.Errorf("failed to present first frame: %w", err)
	}

	for {
		event, err := that.events.PollEvent(ctx)
		if errors.Is(err, ErrSourceClosed) {
			log.Info("event source closed")
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to poll event: %w", err)
		}

		exit := false

		switch event.Type {
		case EventClose:
			log.Info("window closed")
			return nil
		case EventPointerDown:
			exit = that.handlePointer(ctx, event.Pos)
		default:
			log.Debug("unknown event", "type", event.Type)
			continue
		}

		if err = that.screen.Present(ctx); err != nil {
			return fmt.Errorf("failed to present frame: %w", err)
		}

		if exit {
			log.Info("exit clicked")
			that.endGame(ctx)

			return nil
		}
	}
}

// handlePointer reports whether the loop should stop.
func (that *Loop) handlePointer(ctx context.Context, pos render.Point) bool {
	log := that.logger.With("method", "handlePointer")

	if that.game.IsOver() {
		switch {
		case that.restartButton.IsClicked(pos):
			that.restart(ctx)
		case that.exitButton.IsClicked(pos):
			return true
		}

		return false
	}

	// the bot still owes a move after a failed attempt
	if that.isBotTurn() {
		that.playBot(ctx)
		return false
	}

	row, col, ok := that.renderer.Layout().CellAt(pos)
	if !ok {
		log.Debug("click outside the board", "x", pos.X, "y", pos.Y)
		return false
	}

	if !that.game.Board().IsValidLocation(row, col) {
		log.Debug("invalid location", "row", row, "col", col)
		return false
	}

	if !that.place(ctx, row, col) {
		return false
	}

	if that.isBotTurn() {
		that.playBot(ctx)
	}

	return false
}

func (that *Loop) isBotTurn() bool {
	return that.mode == entity.ModeBot && that.bot != nil && !that.game.IsOver() && that.game.Turn() == entity.White
}

func (that *Loop) place(ctx context.Context, row, col int) bool {
	log := that.logger.With("method", "place")

	outcome, err := that.game.Place(row, col)
	if err != nil {
		log.Debug("placement rejected", "row", row, "col", col, "error", err)
		return false
	}

	that.renderer.DrawPieces(that.screen, that.game.Board())

	switch {
	case outcome.Won:
		log.Info("game won", "winner", that.game.WinnerName(), "moves", that.game.Moves())
		that.drawEnd()
		that.recordResult(ctx)
	case outcome.Draw:
		log.Info("game drawn", "moves", that.game.Moves())
		that.drawEnd()
		that.recordResult(ctx)
	}

	that.save(ctx)

	return true
}

func (that *Loop) playBot(ctx context.Context) {
	log := that.logger.With("method", "playBot")

	move, err := that.bot.ChooseMove(that.game)
	if err != nil {
		log.Error("bot failed to choose a move", "error", err)
		return
	}

	that.place(ctx, move.Row, move.Col)
}

func (that *Loop) restart(ctx context.Context) {
	that.logger.Info("game restarted")

	that.game.Restart()
	that.redraw()
	that.save(ctx)
}

// redraw paints the whole frame from the current game state.
func (that *Loop) redraw() {
	that.renderer.DrawBoard(that.screen)
	that.renderer.DrawPieces(that.screen, that.game.Board())

	if that.game.IsOver() {
		that.drawEnd()
	}
}

func (that *Loop) drawEnd() {
	if line, ok := that.game.WinningLine(); ok {
		layout := that.renderer.Layout()
		first, last := line[0], line[len(line)-1]
		that.renderer.DrawHighlight(that.screen, layout.CellCenter(first.Row, first.Col), layout.CellCenter(last.Row, last.Col))
		that.renderer.DrawBanner(that.screen, that.game.WinnerName())
	} else {
		that.renderer.DrawDrawBanner(that.screen)
	}

	that.restartButton.Draw(that.screen)
	that.exitButton.Draw(that.screen)
}

func (that *Loop) save(ctx context.Context) {
	if that.store == nil {
		return
	}

	if err := that.store.SaveGame(ctx, that.id, that.mode, that.game); err != nil {
		that.logger.Error("failed to save game", "error", err)
	}
}

func (that *Loop) recordResult(ctx context.Context) {
	if that.store == nil {
		return
	}

	if err := that.store.RecordResult(ctx, that.id, that.game); err != nil {
		that.logger.Error("failed to record result", "error", err)
	}
}

func (that *Loop) endGame(ctx context.Context) {
	if that.store == nil {
		return
	}

	if err := that.store.EndGame(ctx, that.id); err != nil {
		that.logger.Error("failed to end game", "error", err)
	}
}
