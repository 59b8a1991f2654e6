// Package input turns device state into the raw 2D direction consumed by
// movement components.
package input

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Source yields the current raw direction. The value is not normalized.
type Source interface {
	ReadDirection() mgl32.Vec2
}

// Toggle is implemented by sources that can be switched on and off, like an
// action map.
type Toggle interface {
	Enable()
	Disable()
}

type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

var keyNames = map[Key]string{
	KeyW:     "W",
	KeyA:     "A",
	KeyS:     "S",
	KeyD:     "D",
	KeyUp:    "Up",
	KeyDown:  "Down",
	KeyLeft:  "Left",
	KeyRight: "Right",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// KeyState reports whether a key is currently held.
type KeyState interface {
	IsPressed(Key) bool
}

// Fixed is a Source returning a settable constant direction.
type Fixed struct {
	Direction mgl32.Vec2
}

func (f *Fixed) ReadDirection() mgl32.Vec2 {
	return f.Direction
}

func (f *Fixed) Set(x, y float32) {
	f.Direction = mgl32.Vec2{x, y}
}
