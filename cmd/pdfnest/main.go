package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"pdfnest/api"
)

func main() {
	config, logger := loadEnvironment()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp(config, logger).Run(ctx, os.Args); err != nil {
		logger.WithError(err).Error("pdfnest failed")
		os.Exit(1)
	}
}

// loadEnvironment reads the optional .env files, then builds the config and a
// logger that writes to stderr so command output stays clean.
func loadEnvironment(files ...string) (*api.Config, *logrus.Logger) {
	envErr := godotenv.Load(files...)

	config := api.LoadConfig()
	logger := api.NewLogger(config)
	logger.SetOutput(os.Stderr)
	if envErr != nil {
		logger.WithError(envErr).Debug(".env file not loaded")
	}
	return config, logger
}

func newApp(config *api.Config, logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "pdfnest",
		Usage: "Page selection, split and extraction tools for PDF files",
		Commands: []*cli.Command{
			pagesCommand(),
			rangesCommand(),
			extractCommand(),
			splitCommand(),
			{
				Name:  "serve",
				Usage: "Run the HTTP API",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return api.Run(ctx, config, logger)
				},
			},
		},
	}
}

func requireArg(cmd *cli.Command, what string) (string, error) {
	if cmd.Args().Len() < 1 {
		return "", fmt.Errorf("missing %s argument", what)
	}
	return cmd.Args().First(), nil
}
