package input

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Composite2D maps four directional keys onto a vector. Opposing keys
// cancel out and diagonals yield (±1, ±1).
type Composite2D struct {
	Up, Down, Left, Right Key
}

var (
	WASD   = Composite2D{Up: KeyW, Down: KeyS, Left: KeyA, Right: KeyD}
	Arrows = Composite2D{Up: KeyUp, Down: KeyDown, Left: KeyLeft, Right: KeyRight}
)

func (c Composite2D) Read(keys KeyState) mgl32.Vec2 {
	var v mgl32.Vec2
	if keys.IsPressed(c.Up) {
		v[1]++
	}
	if keys.IsPressed(c.Down) {
		v[1]--
	}
	if keys.IsPressed(c.Right) {
		v[0]++
	}
	if keys.IsPressed(c.Left) {
		v[0]--
	}
	return v
}

// Action is a 2D value action fed by one or more composites. The first
// binding with a non-zero reading wins.
type Action struct {
	Name     string
	Bindings []Composite2D
}

func (a *Action) ReadValue(keys KeyState) mgl32.Vec2 {
	for _, b := range a.Bindings {
		if v := b.Read(keys); v != (mgl32.Vec2{}) {
			return v
		}
	}
	return mgl32.Vec2{}
}

// PlayerControls is the player action map. It starts disabled and reads
// zero until enabled.
type PlayerControls struct {
	Move    Action
	keys    KeyState
	enabled bool
}

func NewPlayerControls(keys KeyState) *PlayerControls {
	return &PlayerControls{
		Move: Action{
			Name:     "Move",
			Bindings: []Composite2D{WASD, Arrows},
		},
		keys: keys,
	}
}

func (pc *PlayerControls) Enable()       { pc.enabled = true }
func (pc *PlayerControls) Disable()      { pc.enabled = false }
func (pc *PlayerControls) Enabled() bool { return pc.enabled }

func (pc *PlayerControls) ReadDirection() mgl32.Vec2 {
	if !pc.enabled || pc.keys == nil {
		return mgl32.Vec2{}
	}
	return pc.Move.ReadValue(pc.keys)
}
