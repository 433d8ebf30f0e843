// Package game owns the playfield state and advances it one frame at a time.
package game

import (
	"io"
	"log"
	"time"

	"blockfall/internal/core"
	"blockfall/internal/input"
	"blockfall/internal/shape"
)

// Landing identifies what the active piece came to rest on.
type Landing int

const (
	// LandedNone means the piece is still falling.
	LandedNone Landing = iota
	// LandedFloor means the piece touched the floor.
	LandedFloor
	// LandedSettled means the piece touched a settled piece.
	LandedSettled
)

// TickResult describes what one Tick did.
type TickResult struct {
	Dropped bool
	Landed  Landing
	// Index of the settled shape that was hit when Landed is LandedSettled.
	Index int
	// Kind of the piece that settled this tick.
	Kind shape.Kind
}

// State holds everything the game loop mutates: the single active piece, the
// settled pieces and the gravity timer.
type State struct {
	cfg      Config
	rng      *core.RNG
	gravity  *core.Gravity
	bindings *input.Bindings
	logger   *log.Logger

	floor   shape.Shape
	active  *shape.Piece
	settled []shape.Shape
	ticks   uint64
}

// New builds a State with a freshly spawned active piece. The config should
// already be validated.
func New(cfg Config) *State {
	s := &State{
		cfg:      cfg,
		gravity:  core.NewGravity(cfg.Gravity),
		bindings: input.DefaultBindings(),
		logger:   log.New(io.Discard, "", 0),
	}
	s.Reset(cfg.Seed)
	return s
}

// SetLogger routes spawn and settle events to l. A nil logger discards them.
func (s *State) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	s.logger = l
}

// SetBindings replaces the key table used by HandleKey.
func (s *State) SetBindings(b *input.Bindings) {
	if b == nil {
		b = input.DefaultBindings()
	}
	s.bindings = b
}

// Reset clears the settled pieces and restarts the piece sequence from seed.
func (s *State) Reset(seed int64) {
	s.cfg.Seed = seed
	s.rng = core.NewRNG(seed)
	s.gravity.Reset()
	s.floor = shape.Floor(s.cfg.Columns, s.cfg.Rows)
	s.settled = nil
	s.ticks = 0
	s.spawn()
}

// Tick advances the game by delta: gravity first, then the landing check
// against the floor and each settled piece in order.
func (s *State) Tick(delta time.Duration) TickResult {
	s.ticks++
	var res TickResult
	if s.gravity.Advance(delta) {
		s.active.MoveDown()
		res.Dropped = true
	}

	if shape.Colliding(s.active, s.floor) {
		res.Landed = LandedFloor
	} else if i := shape.FirstColliding(s.active, s.settled); i >= 0 {
		res.Landed = LandedSettled
		res.Index = i
	}
	if res.Landed != LandedNone {
		res.Kind = s.active.Kind()
		s.settle()
	}
	return res
}

// HandleKey applies the action bound to k to the active piece. It reports
// whether the piece changed.
func (s *State) HandleKey(k input.Key) bool {
	return s.Apply(s.bindings.Lookup(k))
}

// Apply performs a directly on the active piece.
func (s *State) Apply(a input.Action) bool {
	return input.Apply(a, s.active)
}

func (s *State) settle() {
	landed := s.active.Settle()
	s.settled = append(s.settled, landed)
	s.logger.Printf("settled %s at (%d,%d), %d on the board", s.active.Kind(), landed.Pos.X, landed.Pos.Y, len(s.settled))
	s.spawn()
}

func (s *State) spawn() {
	s.active = shape.RandomPiece(s.rng, s.cfg.Spawn())
	s.logger.Printf("spawned %s at (%d,%d)", s.active.Kind(), s.cfg.SpawnX, s.cfg.SpawnY)
}

// Active returns the falling piece.
func (s *State) Active() *shape.Piece { return s.active }

// Settled returns the settled shapes in landing order. Callers must not
// modify the slice.
func (s *State) Settled() []shape.Shape { return s.settled }

// Floor returns the static floor shape.
func (s *State) Floor() shape.Shape { return s.floor }

// Config returns the configuration the state runs with.
func (s *State) Config() Config { return s.cfg }

// Size returns the playfield dimensions in cells.
func (s *State) Size() core.Size { return s.cfg.Size() }

// Seed returns the seed of the current piece sequence.
func (s *State) Seed() int64 { return s.cfg.Seed }

// Ticks returns how many times Tick has run since the last Reset.
func (s *State) Ticks() uint64 { return s.ticks }

// Gravity exposes the drop timer.
func (s *State) Gravity() *core.Gravity { return s.gravity }
