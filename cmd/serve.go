package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"libbot/internal/discord"
	"libbot/internal/server"
)

// Serve connects to Discord and handles commands until interrupted.
// Both secrets are required; a missing one is a startup-fatal condition.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if err := r.reloadConfig(cmd); err != nil {
		return err
	}
	if err := r.config.ValidateCredentials(); err != nil {
		return err
	}

	commandRouter, err := r.commandRouter()
	if err != nil {
		return err
	}

	bot, err := discord.NewBot(discord.BotOpts{
		Token:   r.config.Credentials.DiscordToken,
		Router:  commandRouter,
		Logger:  r.logger,
		Metrics: r.metrics,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if r.config.Server.Port > 0 {
		metricsServer := server.NewMetricsServer(r.config.Server, r.metrics, r.logger)
		go func() {
			if err := metricsServer.Start(ctx); err != nil {
				r.logger.Error("metrics server stopped", "error", err)
			}
		}()
	}

	r.logger.Info("starting bot", "prefix", "$lib")
	return bot.Start(ctx)
}
