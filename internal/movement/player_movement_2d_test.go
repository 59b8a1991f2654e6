package movement

import (
	"testing"

	"Gopher2D/internal/behaviour"
	"Gopher2D/internal/input"
	"Gopher2D/internal/logger"
	"Gopher2D/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	t.Cleanup(logger.Swap(zap.New(core)))
	return logs
}

// newPlayer builds the usual GameObject: a body plus a movement component
// fed by src.
func newPlayer(t *testing.T, src input.Source) (*behaviour.GameObject, *physics.Rigidbody2D, *PlayerMovement2D) {
	t.Helper()
	obj := behaviour.NewGameObject("TestPlayer")
	rb := physics.NewRigidbody2D()
	obj.AddComponent(rb)
	m := New(rb, src)
	obj.AddComponent(m)
	require.NoError(t, m.Err())
	return obj, rb, m
}

func step(m *PlayerMovement2D) {
	m.Update()
	m.FixedUpdate()
}

func TestDefaultSpeedIsPositive(t *testing.T) {
	m := New(physics.NewRigidbody2D(), &input.Fixed{})

	assert.Equal(t, DefaultSpeed, m.Speed)
	assert.Greater(t, m.Speed, float32(0))
}

func TestApplyMotionScenarios(t *testing.T) {
	tests := []struct {
		name      string
		speed     float32
		direction mgl32.Vec2
		want      mgl32.Vec2
	}{
		{"right at default speed", 5.0, mgl32.Vec2{1, 0}, mgl32.Vec2{5, 0}},
		{"down at ten", 10.0, mgl32.Vec2{0, -1}, mgl32.Vec2{0, -10}},
		{"unnormalized diagonal", 5.0, mgl32.Vec2{1, 1}, mgl32.Vec2{5, 5}},
		{"zero input", 42.0, mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0}},
		{"analog input", 2.0, mgl32.Vec2{0.25, -0.5}, mgl32.Vec2{0.5, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &input.Fixed{Direction: tt.direction}
			_, rb, m := newPlayer(t, src)
			m.Speed = tt.speed

			step(m)

			assert.Equal(t, tt.want, rb.Velocity())
			assert.Equal(t, tt.want, m.GetCurrentVelocity())
		})
	}
}

func TestDiagonalOverspeed(t *testing.T) {
	_, _, m := newPlayer(t, &input.Fixed{Direction: mgl32.Vec2{1, 1}})

	step(m)

	assert.InDelta(t, 7.0710678, m.GetCurrentVelocity().Len(), 1e-4)
}

func TestApplyMotionOverwritesPriorVelocity(t *testing.T) {
	_, rb, m := newPlayer(t, &input.Fixed{Direction: mgl32.Vec2{0, 1}})
	rb.SetVelocity(mgl32.Vec2{100, 100})

	step(m)

	assert.Equal(t, mgl32.Vec2{0, 5}, rb.Velocity())
}

func TestSpeedChangeAppliesOnNextTick(t *testing.T) {
	_, rb, m := newPlayer(t, &input.Fixed{Direction: mgl32.Vec2{1, 0}})

	step(m)
	require.Equal(t, mgl32.Vec2{5, 0}, rb.Velocity())

	m.Speed = 10
	m.FixedUpdate()

	assert.Equal(t, mgl32.Vec2{10, 0}, rb.Velocity())
}

func TestApplyWithoutFreshSampleUsesCachedDirection(t *testing.T) {
	src := &input.Fixed{Direction: mgl32.Vec2{1, 0}}
	_, rb, m := newPlayer(t, src)

	m.Update()
	src.Set(0, 1)
	m.FixedUpdate()
	m.FixedUpdate()

	assert.Equal(t, mgl32.Vec2{5, 0}, rb.Velocity())
	assert.Equal(t, mgl32.Vec2{1, 0}, m.Direction())
}

func TestStop(t *testing.T) {
	_, rb, m := newPlayer(t, &input.Fixed{Direction: mgl32.Vec2{1, -1}})
	m.Speed = 3
	step(m)

	m.Stop()

	assert.Equal(t, mgl32.Vec2{}, rb.Velocity())
	assert.Equal(t, float32(3), m.Speed)
	assert.Equal(t, mgl32.Vec2{1, -1}, m.Direction())
	assert.True(t, m.Active())
}

func TestDeactivateKeepsVelocityAndStopsSampling(t *testing.T) {
	src := &input.Fixed{Direction: mgl32.Vec2{1, 0}}
	obj, rb, m := newPlayer(t, src)
	step(m)

	obj.SetComponentEnabled(m, false)
	assert.False(t, m.Active())
	assert.Equal(t, mgl32.Vec2{5, 0}, rb.Velocity(), "deactivation must not zero velocity")

	src.Set(-1, 0)
	m.Update()
	m.FixedUpdate()

	assert.Equal(t, mgl32.Vec2{1, 0}, m.Direction(), "input is not refreshed while inactive")
	assert.Equal(t, mgl32.Vec2{5, 0}, rb.Velocity(), "apply still runs with the cached direction")

	obj.SetComponentEnabled(m, true)
	step(m)
	assert.Equal(t, mgl32.Vec2{-5, 0}, rb.Velocity())
}

func TestActivationIsIdempotent(t *testing.T) {
	pc := input.NewPlayerControls(nil)
	m := New(physics.NewRigidbody2D(), pc)

	m.OnEnable()
	m.OnEnable()
	assert.True(t, m.Active())
	assert.True(t, pc.Enabled(), "activation enables the action map")

	m.OnDisable()
	m.OnDisable()
	assert.False(t, m.Active())
	assert.False(t, pc.Enabled())
}

func TestMissingBody(t *testing.T) {
	logs := observeLogs(t)

	m := New(nil, &input.Fixed{Direction: mgl32.Vec2{1, 1}})

	require.Error(t, m.Err())
	assert.True(t, errors.Is(m.Err(), ErrMissingDependency))
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())

	assert.NotPanics(t, func() {
		m.OnEnable()
		step(m)
		m.Stop()
	})
	assert.Equal(t, mgl32.Vec2{}, m.GetCurrentVelocity())
}

func TestMissingBodyTypedNil(t *testing.T) {
	observeLogs(t)
	var rb *physics.Rigidbody2D

	m := New(rb, &input.Fixed{})

	assert.True(t, errors.Is(m.Err(), ErrMissingDependency))
	assert.NotPanics(t, func() { m.FixedUpdate() })
	assert.Equal(t, mgl32.Vec2{}, m.GetCurrentVelocity())
}

type pointerBody struct{ v mgl32.Vec2 }

func (b *pointerBody) Velocity() mgl32.Vec2     { return b.v }
func (b *pointerBody) SetVelocity(v mgl32.Vec2) { b.v = v }

func TestMissingBodyTypedNilOtherImplementation(t *testing.T) {
	observeLogs(t)
	var body *pointerBody

	m := New(body, &input.Fixed{Direction: mgl32.Vec2{1, 0}})

	assert.True(t, errors.Is(m.Err(), ErrMissingDependency))
	assert.NotPanics(t, func() {
		m.OnEnable()
		step(m)
		m.Stop()
	})
	assert.Equal(t, mgl32.Vec2{}, m.GetCurrentVelocity())
}

func TestCustomBodyImplementation(t *testing.T) {
	body := &pointerBody{}
	m := New(body, &input.Fixed{Direction: mgl32.Vec2{0, 2}})
	m.OnEnable()

	step(m)

	require.NoError(t, m.Err())
	assert.Equal(t, mgl32.Vec2{0, 10}, body.Velocity())
}

func TestNewComponentDefersDiagnosticToAwake(t *testing.T) {
	logs := observeLogs(t)
	obj := behaviour.NewGameObject("Player")
	rb := physics.NewRigidbody2D()
	obj.AddComponent(rb)

	m := NewComponent(&input.Fixed{Direction: mgl32.Vec2{1, 0}})
	assert.NoError(t, m.Err())
	obj.AddComponent(m)

	require.NoError(t, m.Err())
	assert.Equal(t, 0, logs.Len(), "body found in Awake, nothing to report")

	step(m)
	assert.Equal(t, mgl32.Vec2{5, 0}, rb.Velocity())
}

func TestNewComponentWithoutBodyReportsInAwake(t *testing.T) {
	logs := observeLogs(t)

	m := NewComponent(&input.Fixed{})
	assert.Equal(t, 0, logs.Len())

	behaviour.NewGameObject("Lonely").AddComponent(m)

	assert.True(t, errors.Is(m.Err(), ErrMissingDependency))
	assert.Equal(t, 1, logs.Len())
}

func TestAwakeResolvesBodyFromGameObject(t *testing.T) {
	logs := observeLogs(t)
	obj := behaviour.NewGameObject("Player")
	rb := physics.NewRigidbody2D()
	obj.AddComponent(rb)

	comp := behaviour.CreateScript("PlayerMovement2D")
	require.NotNil(t, comp)
	m := comp.(*PlayerMovement2D)
	m.SetSource(&input.Fixed{Direction: mgl32.Vec2{0, 1}})
	obj.AddComponent(m)

	require.NoError(t, m.Err())
	assert.Equal(t, 0, logs.Len())

	step(m)
	assert.Equal(t, mgl32.Vec2{0, 5}, rb.Velocity())
}

func TestAwakeWithoutBodyLogsOnce(t *testing.T) {
	logs := observeLogs(t)
	obj := behaviour.NewGameObject("Lonely")

	m := New(nil, &input.Fixed{Direction: mgl32.Vec2{1, 0}})
	obj.AddComponent(m)

	assert.True(t, errors.Is(m.Err(), ErrMissingDependency))
	assert.Equal(t, 1, logs.Len())
	assert.NotPanics(t, func() { step(m) })
}

func TestAwakeLogsGameObjectName(t *testing.T) {
	logs := observeLogs(t)
	obj := behaviour.NewGameObject("Lonely")

	obj.AddComponent(&PlayerMovement2D{Speed: DefaultSpeed})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Lonely", entries[0].ContextMap()["gameObject"])
}

func TestTypedComponent(t *testing.T) {
	m := New(physics.NewRigidbody2D(), nil)

	assert.Equal(t, behaviour.ComponentTypeScript, behaviour.GetComponentCategory(m))
	assert.Equal(t, "PlayerMovement2D", behaviour.GetComponentTypeName(m))
}

func TestNilSourceIsTolerated(t *testing.T) {
	_, rb, m := newPlayer(t, nil)

	assert.NotPanics(t, func() { step(m) })
	assert.Equal(t, mgl32.Vec2{}, rb.Velocity())
}

func TestRunsUnderComponentManager(t *testing.T) {
	src := &input.Fixed{Direction: mgl32.Vec2{1, 0}}
	obj, rb, m := newPlayer(t, src)
	cm := behaviour.NewComponentManager()
	cm.RegisterGameObject(obj)

	for i := 0; i < 5; i++ {
		cm.UpdateAll()
		cm.FixedUpdateAll()
	}

	assert.Same(t, rb, obj.Components[0], "body reference stays the same across frames")
	assert.Equal(t, mgl32.Vec2{5, 0}, m.GetCurrentVelocity())

	src.Set(0, 0)
	cm.UpdateAll()
	cm.FixedUpdateAll()
	assert.LessOrEqual(t, m.GetCurrentVelocity().Len(), float32(0.1))
}
