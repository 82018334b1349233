package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// NewServer wraps the router with CORS and the server timeouts.
func NewServer(config *Config, logger *logrus.Logger) *http.Server {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: config.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Content-Disposition", HeaderRequestID, HeaderSkippedRanges},
	})

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", config.Port),
		Handler:      corsHandler.Handler(NewRouter(config, logger)),
		ReadTimeout:  ServerReadTimeout,
		WriteTimeout: ServerWriteTimeout,
		IdleTimeout:  ServerIdleTimeout,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, config *Config, logger *logrus.Logger) error {
	srv := NewServer(config, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{
			"address":       srv.Addr,
			"max_file_size": config.MaxFileSize,
			"max_files":     config.MaxFiles,
		}).Info("Server starting")
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

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("Server exited gracefully")
	return nil
}
