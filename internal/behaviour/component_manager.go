package behaviour

// ComponentManager owns the GameObjects of a scene and drives their
// lifecycle from the engine loop
type ComponentManager struct {
	gameObjects []*GameObject
}

func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		gameObjects: make([]*GameObject, 0),
	}
}

// RegisterGameObject adds a GameObject to the manager and starts it
func (cm *ComponentManager) RegisterGameObject(obj *GameObject) {
	cm.gameObjects = append(cm.gameObjects, obj)
	obj.internalStart()
}

// UpdateAll runs one logical frame on all active GameObjects
func (cm *ComponentManager) UpdateAll() {
	for _, obj := range cm.gameObjects {
		obj.internalUpdate()
	}
}

// FixedUpdateAll runs one physics tick on all active GameObjects
func (cm *ComponentManager) FixedUpdateAll() {
	for _, obj := range cm.gameObjects {
		obj.internalFixedUpdate()
	}
}

// GetAllGameObjects returns all registered GameObjects
func (cm *ComponentManager) GetAllGameObjects() []*GameObject {
	return cm.gameObjects
}

// Clear destroys and removes all GameObjects
func (cm *ComponentManager) Clear() {
	for _, obj := range cm.gameObjects {
		obj.Destroy()
	}
	cm.gameObjects = cm.gameObjects[:0]
}
