package behaviour

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypePhysics ComponentType = "Physics"
	ComponentTypeScript  ComponentType = "Script"
	ComponentTypeInput   ComponentType = "Input"
	ComponentTypeCustom  ComponentType = "Custom"
)

// TypedComponent extends Component with type information
type TypedComponent interface {
	Component
	GetComponentType() ComponentType
	GetTypeName() string
}

// Helper function to get component type name
func GetComponentTypeName(comp Component) string {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetTypeName()
	}
	return "Unknown"
}

// Helper function to get component category
func GetComponentCategory(comp Component) ComponentType {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetComponentType()
	}
	return ComponentTypeCustom
}
