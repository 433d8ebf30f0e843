package game

import (
	"bytes"
	"log"
	"testing"
	"time"

	"blockfall/internal/core"
	"blockfall/internal/input"
	"blockfall/internal/shape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	require.NoError(t, cfg.Validate())
	return New(cfg)
}

func TestNewSpawnsActivePiece(t *testing.T) {
	s := newTestState(t)
	require.NotNil(t, s.Active())
	assert.Equal(t, core.Position{}, s.Active().Pos())
	assert.Empty(t, s.Settled())
	assert.Equal(t, 18, s.Floor().Top())
	assert.Equal(t, 10, s.Floor().Width())
}

func TestGravityDropsOnceAfterInterval(t *testing.T) {
	s := newTestState(t)
	start := s.Active().Pos()

	for i := 0; i < 2; i++ {
		res := s.Tick(200 * time.Millisecond)
		assert.False(t, res.Dropped)
	}
	assert.Equal(t, start, s.Active().Pos())

	res := s.Tick(200 * time.Millisecond)
	assert.True(t, res.Dropped)
	assert.Equal(t, LandedNone, res.Landed)
	assert.Equal(t, start.Add(0, 1), s.Active().Pos())
	assert.Equal(t, time.Duration(0), s.Gravity().Elapsed(), "timer is zeroed, not decremented")
	assert.Equal(t, uint64(3), s.Ticks())
}

func TestLandsOnFloor(t *testing.T) {
	s := newTestState(t)
	s.active = shape.NewPiece(shape.KindO, core.Position{X: 4, Y: 16})

	res := s.Tick(0)
	assert.False(t, res.Dropped)
	assert.Equal(t, LandedFloor, res.Landed)
	assert.Equal(t, shape.KindO, res.Kind)

	require.Len(t, s.Settled(), 1)
	assert.Equal(t, core.Position{X: 4, Y: 16}, s.Settled()[0].Pos)
	assert.Equal(t, core.Position{}, s.Active().Pos(), "replacement spawns at the spawn point")
}

func TestLandsOnSettledPiece(t *testing.T) {
	s := newTestState(t)
	s.active = shape.NewPiece(shape.KindO, core.Position{X: 4, Y: 16})
	s.Tick(0)

	s.active = shape.NewPiece(shape.KindO, core.Position{X: 5, Y: 13})
	res := s.Tick(s.Gravity().Interval())
	assert.True(t, res.Dropped)
	assert.Equal(t, LandedSettled, res.Landed)
	assert.Equal(t, 0, res.Index)
	require.Len(t, s.Settled(), 2)
	assert.Equal(t, core.Position{X: 5, Y: 14}, s.Settled()[1].Pos)
}

func TestOnlyFirstSettledCollisionCounts(t *testing.T) {
	s := newTestState(t)
	s.settled = []shape.Shape{
		shape.NewPiece(shape.KindO, core.Position{X: 2, Y: 10}).Settle(),
		shape.NewPiece(shape.KindO, core.Position{X: 4, Y: 10}).Settle(),
	}
	s.active = shape.NewPiece(shape.KindO, core.Position{X: 3, Y: 8})

	res := s.Tick(0)
	assert.Equal(t, LandedSettled, res.Landed)
	assert.Equal(t, 0, res.Index)
	assert.Len(t, s.Settled(), 3)
}

func TestSettledShapesAreNotMutatedByLaterInput(t *testing.T) {
	s := newTestState(t)
	p := shape.NewPiece(shape.KindT, core.Position{X: 0, Y: 16})
	s.active = p
	s.Tick(0)
	require.Len(t, s.Settled(), 1)

	p.MoveLeft()
	p.Rotate()
	assert.Equal(t, core.Position{X: 0, Y: 16}, s.Settled()[0].Pos)
	assert.True(t, shape.Layout(shape.KindT).Equal(s.Settled()[0].Pattern))
}

func TestEveryPieceRestsOnLastVisibleRow(t *testing.T) {
	s := newTestState(t)
	interval := s.Gravity().Interval()
	for n := 0; n < 20; n++ {
		kind := s.Active().Kind()
		var res TickResult
		for i := 0; i < 40 && res.Landed == LandedNone; i++ {
			res = s.Tick(interval)
		}
		require.Equal(t, LandedFloor, res.Landed, "piece %d (%s) never landed", n, kind)

		landed := s.Settled()[len(s.Settled())-1]
		lowest := -1
		shape.Cells(landed, func(_, y int) {
			if y > lowest {
				lowest = y
			}
		})
		assert.Equal(t, 17, lowest, "piece %d (%s)", n, kind)

		// Clear the board so the next piece falls all the way.
		s.settled = nil
	}
}

func TestHandleKey(t *testing.T) {
	s := newTestState(t)
	s.active = shape.NewPiece(shape.KindI, core.Position{X: 3, Y: 3})

	assert.True(t, s.HandleKey(input.KeyLeft))
	assert.True(t, s.HandleKey(input.KeyDown))
	assert.Equal(t, core.Position{X: 2, Y: 4}, s.Active().Pos())

	assert.True(t, s.HandleKey(input.KeyUp))
	assert.True(t, s.HandleKey(input.KeyUp))
	assert.True(t, s.Active().Filled(1, 0))
	assert.False(t, s.Active().Filled(2, 0))

	assert.False(t, s.HandleKey(input.KeyNone))
	assert.Equal(t, core.Position{X: 2, Y: 4}, s.Active().Pos())
}

func TestSoftDropLeavesTimerAlone(t *testing.T) {
	s := newTestState(t)
	s.Tick(300 * time.Millisecond)
	s.HandleKey(input.KeyDown)
	assert.Equal(t, 300*time.Millisecond, s.Gravity().Elapsed())
	assert.Equal(t, 1, s.Active().Top())
}

func TestCustomBindings(t *testing.T) {
	s := newTestState(t)
	b := input.NewBindings()
	b.Bind(input.KeyUp, input.ActionMoveDown)
	s.SetBindings(b)

	assert.True(t, s.HandleKey(input.KeyUp))
	assert.Equal(t, 1, s.Active().Top())
	assert.False(t, s.HandleKey(input.KeyLeft))
}

func TestResetIsDeterministic(t *testing.T) {
	s := newTestState(t)
	kinds := func() []shape.Kind {
		var out []shape.Kind
		for i := 0; i < 10; i++ {
			out = append(out, s.Active().Kind())
			s.active.Translate(0, 16)
			s.Tick(0)
		}
		return out
	}
	first := kinds()
	require.Len(t, s.Settled(), 10)

	s.Reset(42)
	assert.Empty(t, s.Settled())
	assert.Equal(t, uint64(0), s.Ticks())
	assert.Equal(t, first, kinds())
}

func TestLoggerReceivesEvents(t *testing.T) {
	s := newTestState(t)
	var buf bytes.Buffer
	s.SetLogger(log.New(&buf, "", 0))
	s.active = shape.NewPiece(shape.KindO, core.Position{X: 0, Y: 16})
	s.Tick(0)

	assert.Contains(t, buf.String(), "settled O at (0,16)")
	assert.Contains(t, buf.String(), "spawned")
}

func TestGravityParameter(t *testing.T) {
	s := newTestState(t)
	assert.True(t, s.SetIntParameter(ParamGravity, 250))
	assert.Equal(t, 250*time.Millisecond, s.Gravity().Interval())
	assert.Equal(t, 250*time.Millisecond, s.Config().Gravity)
	assert.False(t, s.SetIntParameter(ParamGravity, 0))
	assert.False(t, s.SetIntParameter("nope", 1))

	p, ok := s.Parameters().Lookup(ParamGravity)
	require.True(t, ok)
	assert.Equal(t, "250", p.Value)

	p, ok = s.Parameters().Lookup("kind")
	require.True(t, ok)
	assert.Equal(t, s.Active().Kind().String(), p.Value)

	require.Len(t, s.ParameterControls(), 1)
}
