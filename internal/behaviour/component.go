package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Component is the base interface for all components
// Components are attached to GameObjects and driven by the ComponentManager
type Component interface {
	// Lifecycle methods
	Awake()       // Called once when the component is attached
	OnEnable()    // Called when the component becomes enabled
	OnDisable()   // Called when the component becomes disabled
	Start()       // Called when the owning object is registered
	Update()      // Called every logical frame
	FixedUpdate() // Called every physics tick
	OnDestroy()   // Called when component/object is destroyed

	// Component info
	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// BaseComponent provides default implementations for all Component methods
// Scripts embed this and override only what they need
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
}

func (c *BaseComponent) Awake()       {}
func (c *BaseComponent) OnEnable()    {}
func (c *BaseComponent) OnDisable()   {}
func (c *BaseComponent) Start()       {}
func (c *BaseComponent) Update()      {}
func (c *BaseComponent) FixedUpdate() {}
func (c *BaseComponent) OnDestroy()   {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

// SetEnabled only flips the flag. Use GameObject.SetComponentEnabled to get
// OnEnable/OnDisable callbacks.
func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}

// GameObject represents an entity in the scene
type GameObject struct {
	Name       string
	Active     bool
	Transform  *Transform
	Components []Component
}

// Transform holds the 2D placement of a GameObject
type Transform struct {
	BaseComponent
	Position mgl32.Vec2
	Rotation float32 // radians
	Scale    mgl32.Vec2
}

func (t *Transform) Translate(delta mgl32.Vec2) {
	t.Position = t.Position.Add(delta)
}

func (t *Transform) Rotate(angle float32) {
	t.Rotation += angle
}

func (t *Transform) SetPosition(pos mgl32.Vec2) {
	t.Position = pos
}

func (t *Transform) SetScale(scale mgl32.Vec2) {
	t.Scale = scale
}

// Right is the local +X axis in world space
func (t *Transform) Right() mgl32.Vec2 {
	return mgl32.Rotate2D(t.Rotation).Mul2x1(mgl32.Vec2{1, 0})
}

// Up is the local +Y axis in world space
func (t *Transform) Up() mgl32.Vec2 {
	return mgl32.Rotate2D(t.Rotation).Mul2x1(mgl32.Vec2{0, 1})
}

func NewGameObject(name string) *GameObject {
	obj := &GameObject{
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
		Transform: &Transform{
			Position: mgl32.Vec2{0, 0},
			Scale:    mgl32.Vec2{1, 1},
		},
	}
	obj.Transform.SetGameObject(obj)
	return obj
}

// AddComponent attaches component, runs Awake, then enables it.
func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	obj.Components = append(obj.Components, component)
	component.Awake()
	obj.SetComponentEnabled(component, true)
}

// SetComponentEnabled enables or disables component, firing OnEnable or
// OnDisable only when the state actually changes.
func (obj *GameObject) SetComponentEnabled(component Component, enabled bool) {
	if component.GetEnabled() == enabled {
		return
	}
	component.SetEnabled(enabled)
	if enabled {
		component.OnEnable()
	} else {
		component.OnDisable()
	}
}

// GetComponent returns the first component of type T on obj.
func GetComponent[T Component](obj *GameObject) (T, bool) {
	var zero T
	if obj == nil {
		return zero, false
	}
	for _, comp := range obj.Components {
		if typed, ok := comp.(T); ok {
			return typed, true
		}
	}
	return zero, false
}

// GetComponents returns every component of type T on obj.
func GetComponents[T Component](obj *GameObject) []T {
	var result []T
	if obj == nil {
		return result
	}
	for _, comp := range obj.Components {
		if typed, ok := comp.(T); ok {
			result = append(result, typed)
		}
	}
	return result
}

func (obj *GameObject) RemoveComponent(component Component) {
	for i, comp := range obj.Components {
		if comp == component {
			obj.SetComponentEnabled(comp, false)
			comp.OnDestroy()
			obj.Components = append(obj.Components[:i], obj.Components[i+1:]...)
			return
		}
	}
}

func (obj *GameObject) internalUpdate() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Update()
		}
	}
}

func (obj *GameObject) internalFixedUpdate() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.FixedUpdate()
		}
	}
}

func (obj *GameObject) internalStart() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Start()
		}
	}
}

func (obj *GameObject) Destroy() {
	for _, comp := range obj.Components {
		obj.SetComponentEnabled(comp, false)
		comp.OnDestroy()
	}
	obj.Active = false
}
