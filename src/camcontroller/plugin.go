package camcontroller

import (
	"github.com/WowVeryLogin/flycam/src/camcontroller/camera"
	"github.com/WowVeryLogin/flycam/src/transform"
	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

// Plugin registers the fly camera with an ark-tools app. Nil fields fall
// back to their defaults.
//
// The host supplies window.Primary, input.Keys, input.MouseMotions and
// clock.Time resources, and must run its clock system before this plugin's
// systems.
type Plugin struct {
	Settings *Settings
	Keybinds *Keybinds
	Spawn    *transform.Transform
	Camera   *camera.Camera
	Log      *zap.Logger
}

// Systems returned by Install, in scheduling order.
type Systems struct {
	Lock  *LockSystem
	Spawn *SpawnSystem
	Look  *LookSystem
	Move  *MoveSystem
}

// Install adds the configuration resources, unless the host added them
// already, and the four controller systems.
func (p Plugin) Install(a *app.App) Systems {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	w := &a.World

	settings := ecs.NewResource[Settings](w)
	if !settings.Has() {
		s := DefaultSettings()
		if p.Settings != nil {
			s = *p.Settings
		}
		settings.Add(&s)
	}
	keybinds := ecs.NewResource[Keybinds](w)
	if !keybinds.Has() {
		k := DefaultKeybinds()
		if p.Keybinds != nil {
			k = *p.Keybinds
		}
		keybinds.Add(&k)
	}

	pose := DefaultPose()
	if p.Spawn != nil {
		pose = *p.Spawn
	}
	cam := camera.Default(1)
	if p.Camera != nil {
		cam = p.Camera
	}

	systems := Systems{
		Lock:  &LockSystem{Log: log},
		Spawn: &SpawnSystem{Pose: pose, Camera: *cam, Log: log},
		Look:  &LookSystem{},
		Move:  &MoveSystem{},
	}
	a.AddSystem(systems.Lock)
	a.AddSystem(systems.Spawn)
	a.AddSystem(systems.Look)
	a.AddSystem(systems.Move)

	log.Debug("fly camera plugin installed")
	return systems
}
