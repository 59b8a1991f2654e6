package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

var glfwKeys = map[Key]glfw.Key{
	KeyW:     glfw.KeyW,
	KeyA:     glfw.KeyA,
	KeyS:     glfw.KeyS,
	KeyD:     glfw.KeyD,
	KeyUp:    glfw.KeyUp,
	KeyDown:  glfw.KeyDown,
	KeyLeft:  glfw.KeyLeft,
	KeyRight: glfw.KeyRight,
}

// KeyPoller is the part of *glfw.Window used for keyboard polling.
type KeyPoller interface {
	GetKey(glfw.Key) glfw.Action
}

// GLFWKeyboard polls key state from a glfw window.
type GLFWKeyboard struct {
	window KeyPoller
}

func NewGLFWKeyboard(window KeyPoller) *GLFWKeyboard {
	return &GLFWKeyboard{window: window}
}

func (k *GLFWKeyboard) IsPressed(key Key) bool {
	gk, ok := glfwKeys[key]
	if !ok {
		return false
	}
	action := k.window.GetKey(gk)
	return action == glfw.Press || action == glfw.Repeat
}
