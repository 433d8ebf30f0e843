// Package input maps host-neutral key codes to mutations of the falling piece.
package input

import (
	"blockfall/internal/shape"

	"github.com/kamstrup/intmap"
)

// Key is a host-neutral key code. Hosts translate their own key events into
// these values before dispatching.
type Key uint16

// Keys understood by the default bindings. KeyNone is never bound.
const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// String returns a lower-case key name.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	}
	return "none"
}

// Action is a mutation applied to the active piece.
type Action uint8

// Actions a binding can trigger. ActionNone leaves the piece alone.
const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionRotate
	ActionMoveDown
)

// String returns a lower-case action name.
func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionRotate:
		return "rotate"
	case ActionMoveDown:
		return "move-down"
	}
	return "none"
}

// Apply performs a on p immediately. Moves are not checked against the grid
// or other pieces. It reports whether the action changed the piece.
func Apply(a Action, p *shape.Piece) bool {
	if p == nil {
		return false
	}
	switch a {
	case ActionMoveLeft:
		p.MoveLeft()
	case ActionMoveRight:
		p.MoveRight()
	case ActionRotate:
		return p.Rotate()
	case ActionMoveDown:
		p.MoveDown()
	default:
		return false
	}
	return true
}

// Bindings maps keys to actions.
type Bindings struct {
	m *intmap.Map[Key, Action]
}

// NewBindings returns an empty binding table.
func NewBindings() *Bindings {
	return &Bindings{m: intmap.New[Key, Action](8)}
}

// DefaultBindings binds the arrow keys: left and right move, up rotates and
// down drops one row.
func DefaultBindings() *Bindings {
	b := NewBindings()
	b.Bind(KeyLeft, ActionMoveLeft)
	b.Bind(KeyRight, ActionMoveRight)
	b.Bind(KeyUp, ActionRotate)
	b.Bind(KeyDown, ActionMoveDown)
	return b
}

// Bind assigns a to k, replacing any previous binding. Binding ActionNone
// removes the key.
func (b *Bindings) Bind(k Key, a Action) {
	if a == ActionNone {
		b.m.Del(k)
		return
	}
	b.m.Put(k, a)
}

// Lookup returns the action bound to k, or ActionNone.
func (b *Bindings) Lookup(k Key) Action {
	a, ok := b.m.Get(k)
	if !ok {
		return ActionNone
	}
	return a
}

// Len returns the number of bound keys.
func (b *Bindings) Len() int { return b.m.Len() }
