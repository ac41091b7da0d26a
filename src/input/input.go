package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"gonum.org/v1/gonum/spatial/r3"
)

// Keys is the set of keys held down at the start of the frame.
type Keys struct {
	pressed map[glfw.Key]bool
}

func NewKeys() *Keys {
	return &Keys{pressed: make(map[glfw.Key]bool)}
}

func (k *Keys) Press(key glfw.Key) {
	if k.pressed == nil {
		k.pressed = make(map[glfw.Key]bool)
	}
	k.pressed[key] = true
}

func (k *Keys) Release(key glfw.Key) {
	delete(k.pressed, key)
}

func (k *Keys) Pressed(key glfw.Key) bool {
	return k.pressed[key]
}

// Reset releases every key, e.g. when the window loses focus.
func (k *Keys) Reset() {
	clear(k.pressed)
}

// MouseMotion is a raw pointer delta in screen pixels. Z is unused.
type MouseMotion struct {
	Delta r3.Vec
}

// MouseMotions buffers pointer deltas between frames until a reader drains
// them.
type MouseMotions struct {
	events []MouseMotion
}

func (m *MouseMotions) Send(dx, dy float64) {
	m.events = append(m.events, MouseMotion{Delta: r3.Vec{X: dx, Y: dy}})
}

func (m *MouseMotions) Len() int {
	return len(m.events)
}

// Drain returns the buffered motions in arrival order and empties the buffer.
func (m *MouseMotions) Drain() []MouseMotion {
	events := m.events
	m.events = nil
	return events
}
