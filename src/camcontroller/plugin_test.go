package camcontroller

import (
	"testing"

	"github.com/WowVeryLogin/flycam/src/camcontroller/camera"
	"github.com/WowVeryLogin/flycam/src/clock"
	"github.com/WowVeryLogin/flycam/src/input"
	"github.com/WowVeryLogin/flycam/src/transform"
	"github.com/WowVeryLogin/flycam/src/window"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

func getResource[T any](w *ecs.World) *T {
	res := ecs.NewResource[T](w)
	return res.Get()
}

type initializer interface {
	Initialize(w *ecs.World)
}

type fakeWindow struct {
	modes []window.CursorMode
}

func (f *fakeWindow) SetCursorMode(mode window.CursorMode) {
	f.modes = append(f.modes, mode)
}

func TestLockSystemLocksPrimaryWindow(t *testing.T) {
	world := ecs.NewWorld()
	win := &fakeWindow{}
	ecs.AddResource(&world, &window.Primary{Handle: win})

	(&LockSystem{}).Initialize(&world)

	if len(win.modes) != 1 || win.modes[0] != window.CursorLocked {
		t.Fatalf("cursor modes = %v, want [CursorLocked]", win.modes)
	}
}

func TestLockSystemPanicsWithoutWindow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic without a primary window")
		}
	}()
	world := ecs.NewWorld()
	(&LockSystem{}).Initialize(&world)
}

func TestSpawnSystemCreatesTaggedCamera(t *testing.T) {
	world := ecs.NewWorld()
	sys := &SpawnSystem{Pose: DefaultPose(), Camera: *camera.Default(1)}
	sys.Initialize(&world)

	filter := ecs.NewFilter2[transform.Transform, camera.Camera](&world).With(ecs.C[FlyCam]())
	query := filter.Query()
	count := 0
	for query.Next() {
		count++
		tr, cam := query.Get()
		if tr.Translation != (r3.Vec{Y: 3, Z: 3}) {
			t.Errorf("spawned at %v, want (0,3,3)", tr.Translation)
		}
		toOrigin := r3.Unit(r3.Scale(-1, tr.Translation))
		if r3.Norm(r3.Sub(tr.Forward(), toOrigin)) > 1e-9 {
			t.Errorf("forward %v does not face the origin", tr.Forward())
		}
		if cam.FOV != camera.DefaultFOV {
			t.Errorf("fov = %v", cam.FOV)
		}
		if query.Entity() != sys.Entity {
			t.Errorf("entity mismatch")
		}
	}
	if count != 1 {
		t.Fatalf("spawned %d cameras, want 1", count)
	}
}

func TestPluginInstallRegistersDefaults(t *testing.T) {
	a := app.New(1024)
	systems := Plugin{}.Install(a)
	if systems.Lock == nil || systems.Spawn == nil || systems.Look == nil || systems.Move == nil {
		t.Fatal("missing systems")
	}

	if got := *getResource[Settings](&a.World); got != DefaultSettings() {
		t.Fatalf("settings = %+v", got)
	}
	if got := *getResource[Keybinds](&a.World); got != DefaultKeybinds() {
		t.Fatalf("keybinds = %+v", got)
	}
}

func TestPluginKeepsHostResources(t *testing.T) {
	a := app.New(1024)
	host := Settings{Sensitivity: 1, MoveSpeed: 2}
	ecs.AddResource(&a.World, &host)

	override := Keybinds{Forward: glfw.KeyUp}
	Plugin{Settings: &Settings{Sensitivity: 9}, Keybinds: &override}.Install(a)

	if got := getResource[Settings](&a.World); got != &host {
		t.Fatalf("host settings replaced: %+v", *got)
	}
	if got := *getResource[Keybinds](&a.World); got != override {
		t.Fatalf("keybinds = %+v, want override", got)
	}
}

// One frame of the full plugin inside an ark-tools app.
func TestPluginFrame(t *testing.T) {
	a := app.New(1024)
	win := &fakeWindow{}
	keys := held(glfw.KeyW)
	motions := &input.MouseMotions{}
	ecs.AddResource(&a.World, &window.Primary{Handle: win})
	ecs.AddResource(&a.World, keys)
	ecs.AddResource(&a.World, motions)
	ecs.AddResource(&a.World, &clock.Time{Delta: 0.5})

	systems := Plugin{}.Install(a)
	for _, sys := range []initializer{systems.Lock, systems.Spawn, systems.Look, systems.Move} {
		sys.Initialize(&a.World)
	}
	if len(win.modes) != 1 {
		t.Fatalf("cursor mode set %d times", len(win.modes))
	}

	motions.Send(100, 0)
	systems.Look.Update(&a.World)
	systems.Move.Update(&a.World)

	tr := ecs.NewMap[transform.Transform](&a.World).Get(systems.Spawn.Entity)
	yaw, _, _ := tr.EulerYXZ()
	if d := transform.Degrees(yaw); d > -7.999 || d < -8.001 {
		t.Fatalf("yaw = %v deg, want -8", d)
	}
	moved := r3.Norm(r3.Sub(tr.Translation, DefaultPose().Translation))
	if moved < 4.999 || moved > 5.001 {
		t.Fatalf("moved %v, want 5", moved)
	}
}
