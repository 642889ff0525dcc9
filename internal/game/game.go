package game

import (
	"context"
	"fmt"
	"glyph-roguelike/assets"
	"glyph-roguelike/internal/config"
	"glyph-roguelike/internal/console"
	"glyph-roguelike/internal/gamelog"
	"glyph-roguelike/internal/generate"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/time/rate"
)

// Game is the top-level orchestrator: it owns the terminal and runs the
// simulation core at a fixed frame rate.
type Game struct {
	term    *console.Terminal
	state   *State
	limiter *rate.Limiter
}

// New creates and returns a Game on the real terminal.
func New(ctx context.Context, cfg config.Config, logger *log.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return newWithScreen(ctx, cfg, screen, logger)
}

func newWithScreen(ctx context.Context, cfg config.Config, screen tcell.Screen, logger *log.Logger) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger != nil {
		logger.Printf("starting with seed %d", seed)
	}
	rng := rand.New(rand.NewSource(seed))

	w, _, err := NewWorld(ctx, generate.DefaultConfig(rng))
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}

	term, err := console.NewTerminal(screen, assets.WindowTitle)
	if err != nil {
		return nil, err
	}

	return &Game{
		term:    term,
		state:   NewState(w, term, gamelog.New(gamelog.DefaultCapacity, logger)),
		limiter: rate.NewLimiter(rate.Limit(cfg.FPS), 1),
	}, nil
}

// Run is the main loop: one tick per frame until the player quits or ctx is
// cancelled. The terminal is restored before Run returns.
func (g *Game) Run(ctx context.Context) {
	defer g.term.Close()

	for {
		// Wait only fails when ctx ends before the next frame is due.
		if err := g.limiter.Wait(ctx); err != nil {
			return
		}
		key, quit := g.term.PollKey()
		if quit {
			return
		}
		g.state.Tick(ctx, key)
		g.term.Show()
	}
}
