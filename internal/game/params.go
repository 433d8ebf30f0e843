package game

import (
	"fmt"
	"strconv"
	"time"

	"blockfall/internal/core"
)

// ParamGravity is the HUD key for the gravity interval in milliseconds.
const ParamGravity = "gravity_ms"

// Parameters snapshots the values shown on the HUD.
func (s *State) Parameters() core.ParameterSnapshot {
	p := s.active
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Piece",
			Params: []core.Parameter{
				{Key: "kind", Label: "Kind", Type: core.ParamTypeText, Value: p.Kind().String()},
				{Key: "pos", Label: "Position", Type: core.ParamTypeText, Value: fmt.Sprintf("%d,%d", p.Left(), p.Top())},
			},
		},
		{
			Name: "Board",
			Params: []core.Parameter{
				{Key: "settled", Label: "Settled", Type: core.ParamTypeText, Value: strconv.Itoa(len(s.settled))},
				{Key: "ticks", Label: "Ticks", Type: core.ParamTypeText, Value: strconv.FormatUint(s.ticks, 10)},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeText, Value: strconv.FormatInt(s.cfg.Seed, 10)},
				{Key: ParamGravity, Label: "Gravity ms", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.gravity.Interval().Milliseconds(), 10)},
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *State) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: ParamGravity, Label: "Gravity ms", Step: 50, Min: 50, Max: 5000},
	}
}

// SetIntParameter updates an adjustable value. It reports false for unknown
// keys.
func (s *State) SetIntParameter(key string, value int) bool {
	switch key {
	case ParamGravity:
		if value <= 0 {
			return false
		}
		d := time.Duration(value) * time.Millisecond
		s.gravity.SetInterval(d)
		s.cfg.Gravity = d
		return true
	}
	return false
}
