// Package config collects runtime settings from flags, the environment and
// an optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvSeed         = "RUSTLIKE_SEED"
	EnvFPS          = "RUSTLIKE_FPS"
	EnvLog          = "RUSTLIKE_LOG"
	EnvOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

// DefaultFPS is the host loop frame rate when none is configured.
const DefaultFPS = 30

// Config holds everything main needs to start a game.
type Config struct {
	Seed      int64  // 0 means seed from the clock
	FPS       int    // frames per second of the host loop
	LogPath   string // diagnostic log file; empty discards
	Telemetry bool   // export traces over OTLP/HTTP
}

// Load builds a Config. A .env file in the working directory is read first
// if present; it never overrides variables already set. Flags in args win
// over the environment.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{FPS: DefaultFPS}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(EnvFPS); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvFPS, err)
		}
		cfg.FPS = fps
	}
	cfg.LogPath = os.Getenv(EnvLog)
	cfg.Telemetry = os.Getenv(EnvOTLPEndpoint) != ""

	fl := flag.NewFlagSet("glyph-roguelike", flag.ContinueOnError)
	fl.Int64Var(&cfg.Seed, "seed", cfg.Seed, "map seed (0 picks one from the clock)")
	fl.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	fl.StringVar(&cfg.LogPath, "log", cfg.LogPath, "write diagnostics and the message log to this file")
	if err := fl.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.FPS <= 0 {
		return Config{}, fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	return cfg, nil
}
