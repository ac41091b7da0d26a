package camcontroller

import (
	"github.com/WowVeryLogin/flycam/src/input"
	"github.com/WowVeryLogin/flycam/src/transform"
	"github.com/mlange-42/ark/ecs"
)

var maxPitch = transform.Radians(89.0)

// Look applies pointer motions to t in order. Each sample re-derives yaw and
// pitch from the current orientation, so roll never accumulates.
func Look(t transform.Transform, motions []input.MouseMotion, settings Settings) transform.Transform {
	for _, motion := range motions {
		yaw, pitch, _ := t.EulerYXZ()
		pitch -= transform.Radians(motion.Delta.Y * settings.Sensitivity)
		yaw -= transform.Radians(motion.Delta.X * settings.Sensitivity)

		pitch = min(max(pitch, -maxPitch), maxPitch)

		t.Rotation = transform.FromYawPitch(yaw, pitch)
	}
	return t
}

// LookSystem drains the pointer motion buffer once per frame and rotates
// every FlyCam entity by the whole batch.
type LookSystem struct {
	settings ecs.Resource[Settings]
	motions  ecs.Resource[input.MouseMotions]
	filter   *ecs.Filter1[transform.Transform]
}

func (s *LookSystem) Initialize(w *ecs.World) {
	s.settings = ecs.NewResource[Settings](w)
	s.motions = ecs.NewResource[input.MouseMotions](w)
	s.filter = ecs.NewFilter1[transform.Transform](w).
		With(ecs.C[FlyCam]())
}

func (s *LookSystem) Update(w *ecs.World) {
	if !s.motions.Has() {
		return
	}
	motions := s.motions.Get().Drain()
	if len(motions) == 0 {
		return
	}
	settings := *s.settings.Get()

	query := s.filter.Query()
	for query.Next() {
		t := query.Get()
		*t = Look(*t, motions, settings)
	}
}

func (s *LookSystem) Finalize(w *ecs.World) {}
