package physics

import (
	"Gopher2D/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
)

// Body is anything exposing a mutable 2D linear velocity.
type Body interface {
	Velocity() mgl32.Vec2
	SetVelocity(mgl32.Vec2)
}

type BodyType int

const (
	Dynamic BodyType = iota
	Kinematic
	Static
)

func (t BodyType) String() string {
	switch t {
	case Dynamic:
		return "Dynamic"
	case Kinematic:
		return "Kinematic"
	case Static:
		return "Static"
	default:
		return "Unknown"
	}
}

// Rigidbody2D is the physics body component, backed by a Chipmunk body.
// The World steps it and copies its position into the owning GameObject's
// transform.
type Rigidbody2D struct {
	behaviour.BaseComponent
	bodyType BodyType
	body     *cp.Body
	inSpace  bool
}

func init() {
	behaviour.RegisterScript("Rigidbody2D", func() behaviour.Component {
		return NewRigidbody2D()
	})
}

// NewRigidbody2D returns a dynamic body with unit mass and no rotation.
func NewRigidbody2D() *Rigidbody2D {
	return NewRigidbody2DOfType(Dynamic)
}

func NewRigidbody2DOfType(t BodyType) *Rigidbody2D {
	var body *cp.Body
	switch t {
	case Kinematic:
		body = cp.NewKinematicBody()
	case Static:
		body = cp.NewStaticBody()
	default:
		t = Dynamic
		body = cp.NewBody(1, cp.INFINITY)
	}
	return &Rigidbody2D{bodyType: t, body: body}
}

func (rb *Rigidbody2D) Type() BodyType {
	return rb.bodyType
}

func (rb *Rigidbody2D) Velocity() mgl32.Vec2 {
	v := rb.body.Velocity()
	return mgl32.Vec2{float32(v.X), float32(v.Y)}
}

// SetVelocity overwrites the linear velocity. Static bodies never move.
func (rb *Rigidbody2D) SetVelocity(v mgl32.Vec2) {
	if rb.bodyType == Static {
		return
	}
	rb.body.SetVelocity(float64(v.X()), float64(v.Y()))
}

func (rb *Rigidbody2D) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypePhysics
}

func (rb *Rigidbody2D) GetTypeName() string {
	return "Rigidbody2D"
}
