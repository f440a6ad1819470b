package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/render"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository/storage"
	"github.com/rocketscienceinc/gomoku-backend/internal/service"
	"github.com/rocketscienceinc/gomoku-backend/internal/transport/rest"
	"github.com/rocketscienceinc/gomoku-backend/internal/transport/websocket"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	settings := gomoku.Settings{
		Rows:      conf.Board.Rows,
		Cols:      conf.Board.Cols,
		BlackName: conf.Players.Black,
		WhiteName: conf.Players.White,
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid board settings: %w", err)
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.DB)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	var resultRepo repository.ResultRepository

	if conf.Postgres.Enabled {
		postgresStorage, pgErr := storage.NewPostgresStorage(ctx, conf.Postgres.DSN)
		if pgErr != nil {
			return fmt.Errorf("could not connect to postgres storage: %w", pgErr)
		}

		defer func() {
			if closeErr := postgresStorage.Close(); closeErr != nil {
				log.Error("could not close postgres storage", "error", closeErr)
			}
		}()

		if pgErr = postgresStorage.Migrate(); pgErr != nil {
			return fmt.Errorf("could not migrate postgres storage: %w", pgErr)
		}

		resultRepo = repository.NewResultRepository(postgresStorage.Connection)
		log.Info("Results are stored in postgres")
	}

	gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.Redis.GameTTL)
	gameUseCase := usecase.NewGameManager(logger, settings, gameRepo, resultRepo)
	botService := service.NewBotService(rand.NewSource(time.Now().UnixNano()))

	layout := render.NewLayout(settings.Rows, settings.Cols, conf.Board.BlockSize, conf.Board.Radius)
	wsServer := websocket.New(ctx, logger, gameUseCase, botService, layout, conf.Game.DefaultMode)
	router := rest.NewRouter(rest.NewHandlers(logger, gameUseCase), wsServer)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpErrCh <- rest.Start(ctx, conf.HTTPPort, router)
	}()

	select {
	case err = <-httpErrCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")

		if err = <-httpErrCh; err != nil {
			log.Error("HTTP server shutdown error", "error", err)
		}

		return nil
	}
}
