package main

import (
	"context"
	"fmt"
	"glyph-roguelike/internal/config"
	"glyph-roguelike/internal/game"
	"glyph-roguelike/internal/telemetry"
	"io"
	"log"
	"os"
	"os/signal"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	// tcell owns the terminal while the game runs, so diagnostics go to a
	// file or nowhere.
	logger := log.New(io.Discard, "", log.LstdFlags)
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Printf("telemetry setup failed, running without it: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Printf("telemetry shutdown: %v", err)
				}
			}()
		}
	}

	g, err := game.New(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	g.Run(ctx)
}
