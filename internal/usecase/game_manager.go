package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
)

var ErrResultsDisabled = errors.New("results storage is disabled")

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	ListRecent(ctx context.Context, limit int) ([]entity.Result, error)
}

// GameManager resumes, saves and finishes the games of browser sessions.
type GameManager struct {
	logger   *slog.Logger
	settings gomoku.Settings

	gameRepo   gameRepo
	resultRepo resultRepo
}

// NewGameManager builds a manager; resultRepo may be nil when results are not stored.
func NewGameManager(logger *slog.Logger, settings gomoku.Settings, gameRepo gameRepo, resultRepo resultRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		settings: settings,

		gameRepo:   gameRepo,
		resultRepo: resultRepo,
	}
}

// GetOrCreateGame resumes the stored game of a session or starts a new one.
// The stored mode wins over the requested one when a game is resumed.
func (that *GameManager) GetOrCreateGame(ctx context.Context, id, mode string) (*gomoku.Game, string, error) {
	log := that.logger.With("method", "GetOrCreateGame", "gameID", id)

	game, err := gomoku.NewGame(that.settings)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create game: %w", err)
	}

	snapshot, err := that.gameRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrGameNotFound) {
		log.Info("new game", "mode", mode)
		return game, mode, nil
	}

	if err != nil {
		return nil, "", fmt.Errorf("failed to get game: %w", err)
	}

	if err = game.Restore(snapshot); err != nil {
		log.Warn("stored game can't be restored, starting over", "error", err)

		fresh, freshErr := gomoku.NewGame(that.settings)
		if freshErr != nil {
			return nil, "", fmt.Errorf("failed to create game: %w", freshErr)
		}

		return fresh, mode, nil
	}

	if snapshot.Mode != "" {
		mode = snapshot.Mode
	}

	log.Info("game resumed", "moves", game.Moves(), "mode", mode, "withBot", snapshot.IsWithBot())

	return game, mode, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) SaveGame(ctx context.Context, id, mode string, game *gomoku.Game) error {
	snapshot := game.Snapshot(id)
	snapshot.Mode = mode

	if err := that.gameRepo.CreateOrUpdate(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (that *GameManager) RecordResult(ctx context.Context, id string, game *gomoku.Game) error {
	if that.resultRepo == nil {
		return nil
	}

	if !game.IsOver() {
		return fmt.Errorf("game %s: %w", id, gomoku.ErrGameOngoing)
	}

	result := &entity.Result{
		ID:         uuid.NewString(),
		GameID:     id,
		Winner:     game.WinnerName(),
		Piece:      game.Winner(),
		Moves:      game.Moves(),
		Rows:       game.Board().Rows(),
		Cols:       game.Board().Cols(),
		FinishedAt: time.Now().UTC(),
	}

	if game.Status() == entity.StatusDraw {
		result.Winner = entity.PlayerTie
	}

	if err := that.resultRepo.Save(ctx, result); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// EndGame drops the stored game of a session; a missing game is not an error.
func (that *GameManager) EndGame(ctx context.Context, id string) error {
	log := that.logger.With("method", "EndGame", "gameID", id)

	err := that.gameRepo.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("game deleted")

	return nil
}

func (that *GameManager) RecentResults(ctx context.Context, limit int) ([]entity.Result, error) {
	if that.resultRepo == nil {
		return nil, ErrResultsDisabled
	}

	results, err := that.resultRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return results, nil
}
