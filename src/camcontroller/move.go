package camcontroller

import (
	"github.com/WowVeryLogin/flycam/src/clock"
	"github.com/WowVeryLogin/flycam/src/input"
	"github.com/WowVeryLogin/flycam/src/transform"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

// KeyState reports whether a key is held this frame.
type KeyState interface {
	Pressed(key glfw.Key) bool
}

// Move translates t along its own forward and right axes and the world up
// axis. The summed direction is normalized once, so diagonals move no faster
// than a single axis.
func Move(t transform.Transform, keys KeyState, binds Keybinds, settings Settings, dt float64) transform.Transform {
	var delta r3.Vec

	forward := t.Forward()
	right := t.Right()
	if keys.Pressed(binds.Forward) {
		delta = r3.Add(delta, forward)
	}
	if keys.Pressed(binds.Back) {
		delta = r3.Sub(delta, forward)
	}
	if keys.Pressed(binds.Right) {
		delta = r3.Add(delta, right)
	}
	if keys.Pressed(binds.Left) {
		delta = r3.Sub(delta, right)
	}
	if keys.Pressed(binds.Up) {
		delta.Y += 1.0
	}
	if keys.Pressed(binds.Down) {
		delta.Y -= 1.0
	}

	if r3.Norm(delta) < 1e-12 {
		return t
	}
	t.Translation = r3.Add(t.Translation, r3.Scale(settings.MoveSpeed*dt, r3.Unit(delta)))
	return t
}

type MoveSystem struct {
	settings ecs.Resource[Settings]
	keybinds ecs.Resource[Keybinds]
	keys     ecs.Resource[input.Keys]
	time     ecs.Resource[clock.Time]
	filter   *ecs.Filter1[transform.Transform]
}

func (s *MoveSystem) Initialize(w *ecs.World) {
	s.settings = ecs.NewResource[Settings](w)
	s.keybinds = ecs.NewResource[Keybinds](w)
	s.keys = ecs.NewResource[input.Keys](w)
	s.time = ecs.NewResource[clock.Time](w)
	s.filter = ecs.NewFilter1[transform.Transform](w).
		With(ecs.C[FlyCam]())
}

func (s *MoveSystem) Update(w *ecs.World) {
	if !s.keys.Has() || !s.time.Has() {
		return
	}
	keys := s.keys.Get()
	binds := *s.keybinds.Get()
	settings := *s.settings.Get()
	dt := s.time.Get().Delta

	query := s.filter.Query()
	for query.Next() {
		t := query.Get()
		*t = Move(*t, keys, binds, settings, dt)
	}
}

func (s *MoveSystem) Finalize(w *ecs.World) {}
