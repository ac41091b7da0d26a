package camcontroller

import "github.com/go-gl/glfw/v3.3/glfw"

// Settings tunes the controller. Sensitivity is degrees of rotation per
// pixel of pointer motion; MoveSpeed is world units per second.
type Settings struct {
	Sensitivity float64
	MoveSpeed   float64
}

func DefaultSettings() Settings {
	return Settings{
		Sensitivity: 0.08,
		MoveSpeed:   10.0,
	}
}

type Keybinds struct {
	Forward glfw.Key
	Back    glfw.Key
	Left    glfw.Key
	Right   glfw.Key
	Up      glfw.Key
	Down    glfw.Key
}

func DefaultKeybinds() Keybinds {
	return Keybinds{
		Forward: glfw.KeyW,
		Back:    glfw.KeyS,
		Left:    glfw.KeyA,
		Right:   glfw.KeyD,
		Up:      glfw.KeySpace,
		Down:    glfw.KeyLeftShift,
	}
}

// FlyCam marks the entities driven by the look and move systems.
type FlyCam struct{}
