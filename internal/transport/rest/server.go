package rest

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

//go:embed static
var staticFiles embed.FS

// NewRouter serves the REST endpoints, the browser client and the game socket on one mux.
func NewRouter(handlers Handlers, socket http.Handler) http.Handler {
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Errorf("failed to open static files: %w", err))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", handlers.PingHandler)
	mux.HandleFunc("GET /api/results", handlers.ResultsHandler)
	mux.HandleFunc("GET /api/games/{id}", handlers.GameHandler)
	mux.Handle("GET /ws", socket)
	mux.Handle("GET /", http.FileServerFS(static))

	return mux
}

// Start serves handler until ctx is canceled, then shuts the server down.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}

		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
