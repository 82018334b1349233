package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pdfnest/api"
	"pdfnest/pdf"

	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	config := api.LoadConfig()
	logger := api.NewLogger(config)
	if envErr != nil {
		logger.WithError(envErr).Debug(".env file not loaded")
	}

	// Office conversion is optional; everything else runs in-process.
	if err := pdf.CheckBinaryAvailable(config.OfficeBinary); err != nil {
		logger.WithError(err).Warn("office conversion disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := api.Run(ctx, config, logger); err != nil {
		logger.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}
