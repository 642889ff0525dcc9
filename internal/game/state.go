package game

import (
	"context"
	"glyph-roguelike/internal/console"
	"glyph-roguelike/internal/ecs"
	"glyph-roguelike/internal/gamelog"
	"glyph-roguelike/internal/render"
	"glyph-roguelike/internal/system"
	"glyph-roguelike/internal/telemetry"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RunState is the handshake between player input and the world acting.
type RunState uint8

const (
	Paused  RunState = iota // waiting for a key
	Running                 // systems run on the next tick
)

func (s RunState) String() string {
	switch s {
	case Paused:
		return "paused"
	case Running:
		return "running"
	}
	return "unknown"
}

// State is the simulation core: the world plus the run state, drawn onto a
// console once per tick.
type State struct {
	World    *ecs.World
	RunState RunState

	con      console.Console
	renderer *render.Renderer
	log      gamelog.Sink
	tracer   trace.Tracer
}

// NewState wraps a populated world. The first tick runs the systems so the
// opening frame already has a field of view.
func NewState(w *ecs.World, con console.Console, sink gamelog.Sink) *State {
	return &State{
		World:    w,
		RunState: Running,
		con:      con,
		renderer: render.NewRenderer(con),
		log:      sink,
		tracer:   telemetry.Tracer("game"),
	}
}

// Tick advances one frame. key is the most recent key of the frame, or nil.
// While Running the world acts once and the state drops back to Paused;
// while Paused a direction key moves the player and sets Running.
func (s *State) Tick(ctx context.Context, key *tcell.EventKey) {
	ctx, span := s.tracer.Start(ctx, "game.tick")
	defer span.End()
	span.SetAttributes(attribute.String("run_state", s.RunState.String()))
	if key != nil {
		span.SetAttributes(attribute.String("key", key.Name()))
	}

	s.con.Cls()
	if s.RunState == Running {
		s.runSystems(ctx)
		s.RunState = Paused
	} else {
		s.RunState = s.playerInput(ctx, key)
	}
	s.renderer.DrawFrame(s.World)
}

// runSystems runs every system once in fixed order, then commits deferred
// entity changes.
func (s *State) runSystems(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "systems.run")
	defer span.End()

	system.ProcessMonsterAI(s.World, s.log)
	system.UpdateVisibility(s.World)
	s.World.Maintain()
}

// playerInput applies at most one move for key. Any direction key counts as
// a turn, even when a wall blocks the step. The outcome is recorded on the
// tick's span.
func (s *State) playerInput(ctx context.Context, key *tcell.EventKey) RunState {
	dx, dy, ok := keyToDelta(key)
	if !ok {
		return Paused
	}
	result := system.TryMovePlayer(s.World, dx, dy)
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("move", result.String()))
	return Running
}
