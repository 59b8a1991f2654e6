package physics

import (
	"Gopher2D/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
)

// World wraps a gravity-free Chipmunk space. Only enabled, non-static bodies
// on active GameObjects take part in a step; transforms are the source of
// truth for position between steps.
type World struct {
	space  *cp.Space
	bodies []*Rigidbody2D
}

func NewWorld() *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &World{space: space}
}

// Add registers rb. Adding the same body twice is a no-op.
func (w *World) Add(rb *Rigidbody2D) {
	for _, b := range w.bodies {
		if b == rb {
			return
		}
	}
	w.bodies = append(w.bodies, rb)
}

func (w *World) Remove(rb *Rigidbody2D) {
	for i, b := range w.bodies {
		if b == rb {
			w.detach(rb)
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// AddGameObject registers every Rigidbody2D on obj.
func (w *World) AddGameObject(obj *behaviour.GameObject) {
	for _, rb := range behaviour.GetComponents[*Rigidbody2D](obj) {
		w.Add(rb)
	}
}

func (w *World) Bodies() []*Rigidbody2D {
	return w.bodies
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float32) {
	var stepping []*Rigidbody2D
	for _, rb := range w.bodies {
		obj := rb.GetGameObject()
		if rb.bodyType == Static || !rb.GetEnabled() || obj == nil || !obj.Active {
			w.detach(rb)
			continue
		}
		w.attach(rb)
		pos := obj.Transform.Position
		rb.body.SetPosition(cp.Vector{X: float64(pos.X()), Y: float64(pos.Y())})
		stepping = append(stepping, rb)
	}

	w.space.Step(float64(dt))

	for _, rb := range stepping {
		p := rb.body.Position()
		rb.GetGameObject().Transform.SetPosition(mgl32.Vec2{float32(p.X), float32(p.Y)})
	}
}

func (w *World) attach(rb *Rigidbody2D) {
	if !rb.inSpace {
		w.space.AddBody(rb.body)
		rb.inSpace = true
	}
}

func (w *World) detach(rb *Rigidbody2D) {
	if rb.inSpace {
		w.space.RemoveBody(rb.body)
		rb.inSpace = false
	}
}
