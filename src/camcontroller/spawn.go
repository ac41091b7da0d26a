package camcontroller

import (
	"github.com/WowVeryLogin/flycam/src/camcontroller/camera"
	"github.com/WowVeryLogin/flycam/src/transform"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultPose is (0, 3, 3) looking at the world origin.
func DefaultPose() transform.Transform {
	return transform.FromXYZ(0.0, 3.0, 3.0).LookingAt(r3.Vec{}, transform.AxisY)
}

// SpawnSystem creates the controlled camera entity at startup. The entity
// belongs to the host afterwards; this system never removes it.
type SpawnSystem struct {
	Pose   transform.Transform
	Camera camera.Camera
	Log    *zap.Logger

	Entity ecs.Entity
}

func (s *SpawnSystem) Initialize(w *ecs.World) {
	if s.Log == nil {
		s.Log = zap.NewNop()
	}
	mapper := ecs.NewMap3[transform.Transform, camera.Camera, FlyCam](w)

	pose := s.Pose
	cam := s.Camera
	s.Entity = mapper.NewEntity(&pose, &cam, &FlyCam{})

	s.Log.Info("fly camera spawned",
		zap.Float64("x", pose.Translation.X),
		zap.Float64("y", pose.Translation.Y),
		zap.Float64("z", pose.Translation.Z),
		zap.Float64("fov", cam.FOV),
	)
}

func (s *SpawnSystem) Update(w *ecs.World) {}

func (s *SpawnSystem) Finalize(w *ecs.World) {}
