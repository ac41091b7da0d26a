package camcontroller

import (
	"github.com/WowVeryLogin/flycam/src/window"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

// LockSystem hides the pointer and confines it to the primary window at
// startup. The host must add a window.Primary resource first.
type LockSystem struct {
	Log *zap.Logger
}

func (s *LockSystem) Initialize(w *ecs.World) {
	if s.Log == nil {
		s.Log = zap.NewNop()
	}
	primary := ecs.NewResource[window.Primary](w)
	if !primary.Has() || primary.Get().Handle == nil {
		panic("camcontroller: no primary window")
	}
	primary.Get().Handle.SetCursorMode(window.CursorLocked)
	s.Log.Debug("cursor locked")
}

func (s *LockSystem) Update(w *ecs.World) {}

func (s *LockSystem) Finalize(w *ecs.World) {}
