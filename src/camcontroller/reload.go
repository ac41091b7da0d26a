package camcontroller

import (
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

// Overrides replaces controller configuration at runtime. Nil fields keep
// the current value.
type Overrides struct {
	Settings *Settings
	Keybinds *Keybinds
}

// ReloadSystem applies Overrides received on Updates between frames, keeping
// every resource write on the frame thread. It never blocks.
type ReloadSystem struct {
	Updates <-chan Overrides
	Log     *zap.Logger

	settings ecs.Resource[Settings]
	keybinds ecs.Resource[Keybinds]
}

func (s *ReloadSystem) Initialize(w *ecs.World) {
	if s.Log == nil {
		s.Log = zap.NewNop()
	}
	s.settings = ecs.NewResource[Settings](w)
	s.keybinds = ecs.NewResource[Keybinds](w)
}

func (s *ReloadSystem) Update(w *ecs.World) {
	for {
		select {
		case o, ok := <-s.Updates:
			if !ok {
				s.Updates = nil
				return
			}
			s.apply(o)
		default:
			return
		}
	}
}

func (s *ReloadSystem) apply(o Overrides) {
	if o.Settings != nil && s.settings.Has() {
		*s.settings.Get() = *o.Settings
		s.Log.Info("camera settings reloaded",
			zap.Float64("sensitivity", o.Settings.Sensitivity),
			zap.Float64("move_speed", o.Settings.MoveSpeed),
		)
	}
	if o.Keybinds != nil && s.keybinds.Has() {
		*s.keybinds.Get() = *o.Keybinds
		s.Log.Info("camera keybinds reloaded")
	}
}

func (s *ReloadSystem) Finalize(w *ecs.World) {}
