package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"libbot/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	app := rootCommand(runner)
	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

// rootCommand builds the top-level CLI command over a runner.
func rootCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "libbot",
		Usage:    "Book catalog bot with per-user reading lists",
		Version:  "0.1.0",
		Commands: r.register(),
	}
}
