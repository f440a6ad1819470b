package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
)

const maxResultsLimit = 100

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	ResultsHandler(w http.ResponseWriter, r *http.Request)
	GameHandler(w http.ResponseWriter, r *http.Request)
}

type gameUseCase interface {
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	RecentResults(ctx context.Context, limit int) ([]entity.Result, error)
}

type handlers struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
}

func NewHandlers(logger *slog.Logger, gameUseCase gameUseCase) Handlers {
	return &handlers{
		logger:      logger.With("component", "rest"),
		gameUseCase: gameUseCase,
	}
}

// ResultsHandler lists recently finished games, newest first.
func (that *handlers) ResultsHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ResultsHandler")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxResultsLimit {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}

		limit = parsed
	}

	results, err := that.gameUseCase.RecentResults(r.Context(), limit)
	if errors.Is(err, usecase.ErrResultsDisabled) {
		http.Error(w, "Results are not stored", http.StatusServiceUnavailable)
		return
	}

	if err != nil {
		log.Error("failed to list results", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if results == nil {
		results = []entity.Result{}
	}

	writeJSON(w, log, results)
}

// GameHandler returns the stored snapshot of a session's game.
func (that *handlers) GameHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GameHandler")

	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Game id is required", http.StatusBadRequest)
		return
	}

	game, err := that.gameUseCase.GetGame(r.Context(), id)
	if errors.Is(err, repository.ErrGameNotFound) {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	if err != nil {
		log.Error("failed to get game", "gameID", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, game)
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(value); err != nil {
		log.Error("failed to encode response", "error", err)
	}
}
