// Package movement holds components that turn input into body motion.
package movement

import (
	"reflect"

	"Gopher2D/internal/behaviour"
	"Gopher2D/internal/input"
	"Gopher2D/internal/logger"
	"Gopher2D/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultSpeed is the configured speed in units per second.
const DefaultSpeed float32 = 5.0

// ErrMissingDependency is reported when a required component is absent.
var ErrMissingDependency = errors.New("missing dependency")

// PlayerMovement2D samples a direction from its input source every frame and
// writes direction*Speed into its body's velocity every physics tick.
//
// Without a body every motion operation is a no-op. The direction is used
// raw, so diagonal input moves faster than Speed.
type PlayerMovement2D struct {
	behaviour.BaseComponent

	// Speed may be changed at any time; the next tick picks it up.
	Speed float32

	body      physics.Body
	source    input.Source
	direction mgl32.Vec2
	active    bool
	err       error
}

func init() {
	behaviour.RegisterScript("PlayerMovement2D", func() behaviour.Component {
		return NewComponent(nil)
	})
}

// New binds a controller to body and source. A nil body is reported right
// away and leaves the controller inert; a later Awake may still pick up a
// Rigidbody2D from the owning GameObject. Use NewComponent when the body is
// meant to come from the GameObject.
func New(body physics.Body, source input.Source) *PlayerMovement2D {
	m := &PlayerMovement2D{Speed: DefaultSpeed, source: source}
	m.bind(body)
	return m
}

// NewComponent returns an unbound controller that resolves its body in Awake
// and reports a missing one only then.
func NewComponent(source input.Source) *PlayerMovement2D {
	return &PlayerMovement2D{Speed: DefaultSpeed, source: source}
}

// SetSource replaces the input source. Useful for scripts created through
// the registry.
func (m *PlayerMovement2D) SetSource(source input.Source) {
	m.source = source
}

// Awake resolves a Rigidbody2D on the owning GameObject when no body was
// injected.
func (m *PlayerMovement2D) Awake() {
	if m.body != nil {
		return
	}
	if rb, ok := behaviour.GetComponent[*physics.Rigidbody2D](m.GetGameObject()); ok {
		m.err = nil
		m.bind(rb)
		return
	}
	if m.err == nil {
		m.bind(nil)
	}
}

// OnEnable starts consuming input.
func (m *PlayerMovement2D) OnEnable() {
	if m.active {
		return
	}
	m.active = true
	if t, ok := m.source.(input.Toggle); ok {
		t.Enable()
	}
}

// OnDisable stops consuming input. The body keeps its last velocity.
func (m *PlayerMovement2D) OnDisable() {
	if !m.active {
		return
	}
	m.active = false
	if t, ok := m.source.(input.Toggle); ok {
		t.Disable()
	}
}

// Update samples the input source once per logical frame.
func (m *PlayerMovement2D) Update() {
	if !m.active || m.source == nil {
		return
	}
	m.direction = m.source.ReadDirection()
}

// FixedUpdate overwrites the body velocity with direction*Speed. It is not
// gated on activation; a deactivated controller keeps applying its last
// sampled direction.
func (m *PlayerMovement2D) FixedUpdate() {
	if m.body == nil {
		return
	}
	m.body.SetVelocity(m.direction.Mul(m.Speed))
}

// GetCurrentVelocity returns the body velocity, or zero when unbound.
func (m *PlayerMovement2D) GetCurrentVelocity() mgl32.Vec2 {
	if m.body == nil {
		return mgl32.Vec2{}
	}
	return m.body.Velocity()
}

// Stop zeroes the body velocity. Speed, the sampled direction and the
// activation state are left alone.
func (m *PlayerMovement2D) Stop() {
	if m.body == nil {
		return
	}
	m.body.SetVelocity(mgl32.Vec2{})
}

// Direction is the most recently sampled input direction.
func (m *PlayerMovement2D) Direction() mgl32.Vec2 {
	return m.direction
}

func (m *PlayerMovement2D) Active() bool {
	return m.active
}

// Err returns the binding diagnostic, if any.
func (m *PlayerMovement2D) Err() error {
	return m.err
}

func (m *PlayerMovement2D) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (m *PlayerMovement2D) GetTypeName() string {
	return "PlayerMovement2D"
}

func (m *PlayerMovement2D) bind(body physics.Body) {
	if body == nil || isNilBody(body) {
		m.body = nil
		m.err = errors.Wrap(ErrMissingDependency, "PlayerMovement2D requires a Rigidbody2D")
		fields := []zap.Field{zap.Error(m.err)}
		if obj := m.GetGameObject(); obj != nil {
			fields = append(fields, zap.String("gameObject", obj.Name))
		}
		logger.Log.Error("PlayerMovement2D requires a Rigidbody2D component", fields...)
		return
	}
	m.body = body
}

// isNilBody catches a typed nil wrapped in the interface.
func isNilBody(body physics.Body) bool {
	v := reflect.ValueOf(body)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
