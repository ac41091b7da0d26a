package camcontroller

import (
	"testing"

	"github.com/WowVeryLogin/flycam/src/clock"
	"github.com/WowVeryLogin/flycam/src/input"
	"github.com/WowVeryLogin/flycam/src/transform"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

func held(keys ...glfw.Key) *input.Keys {
	k := input.NewKeys()
	for _, key := range keys {
		k.Press(key)
	}
	return k
}

func TestMoveForwardScenario(t *testing.T) {
	start := DefaultPose()
	settings := Settings{Sensitivity: 0.08, MoveSpeed: 10.0}

	got := Move(start, held(glfw.KeyW), DefaultKeybinds(), settings, 1.0)

	want := r3.Add(start.Translation, r3.Scale(10, start.Forward()))
	if r3.Norm(r3.Sub(got.Translation, want)) > 1e-9 {
		t.Fatalf("position = %v, want %v", got.Translation, want)
	}
	if got.Rotation != start.Rotation {
		t.Fatal("move changed the rotation")
	}
}

func TestMoveNoKeysKeepsPosition(t *testing.T) {
	start := DefaultPose()
	for _, dt := range []float64{0, 0.016, 1, 100} {
		got := Move(start, input.NewKeys(), DefaultKeybinds(), DefaultSettings(), dt)
		if got != start {
			t.Fatalf("dt=%v: position changed to %v", dt, got.Translation)
		}
	}
}

func TestMoveNeverExceedsSpeed(t *testing.T) {
	binds := DefaultKeybinds()
	settings := Settings{MoveSpeed: 7.5}
	const dt = 0.5
	limit := settings.MoveSpeed*dt + 1e-9

	all := []glfw.Key{binds.Forward, binds.Back, binds.Left, binds.Right, binds.Up, binds.Down}
	start := DefaultPose()
	// every subset of the six bound keys
	for mask := 1; mask < 1<<len(all); mask++ {
		var keys []glfw.Key
		for i, k := range all {
			if mask&(1<<i) != 0 {
				keys = append(keys, k)
			}
		}
		got := Move(start, held(keys...), binds, settings, dt)
		if d := r3.Norm(r3.Sub(got.Translation, start.Translation)); d > limit {
			t.Fatalf("keys %v: displacement %v exceeds %v", keys, d, limit)
		}
	}
}

func TestMoveDiagonalMatchesSingleAxisSpeed(t *testing.T) {
	start := transform.FromXYZ(0, 0, 0)
	settings := DefaultSettings()

	single := Move(start, held(glfw.KeyW), DefaultKeybinds(), settings, 1)
	diagonal := Move(start, held(glfw.KeyW, glfw.KeyD), DefaultKeybinds(), settings, 1)

	if s, d := r3.Norm(single.Translation), r3.Norm(diagonal.Translation); s-d > 1e-9 || d-s > 1e-9 {
		t.Fatalf("single axis %v, diagonal %v", s, d)
	}
	want := r3.Scale(settings.MoveSpeed, r3.Unit(r3.Vec{X: 1, Z: -1}))
	if r3.Norm(r3.Sub(diagonal.Translation, want)) > 1e-9 {
		t.Fatalf("diagonal = %v, want %v", diagonal.Translation, want)
	}
}

func TestMoveFollowsPitchedView(t *testing.T) {
	start := DefaultPose()
	got := Move(start, held(glfw.KeyW), DefaultKeybinds(), DefaultSettings(), 0.1)
	if got.Translation.Y >= start.Translation.Y {
		t.Fatalf("camera pitched down should descend moving forward: %v", got.Translation)
	}
}

func TestMoveUpIsWorldUp(t *testing.T) {
	start := DefaultPose()
	got := Move(start, held(glfw.KeySpace), DefaultKeybinds(), Settings{MoveSpeed: 2}, 1)
	want := r3.Add(start.Translation, r3.Vec{Y: 2})
	if r3.Norm(r3.Sub(got.Translation, want)) > 1e-12 {
		t.Fatalf("position = %v, want %v", got.Translation, want)
	}
}

func TestMoveUsesCustomBindings(t *testing.T) {
	binds := DefaultKeybinds()
	binds.Forward = glfw.KeyUp
	start := transform.FromXYZ(0, 0, 0)

	if got := Move(start, held(glfw.KeyW), binds, DefaultSettings(), 1); got != start {
		t.Fatal("unbound key moved the camera")
	}
	if got := Move(start, held(glfw.KeyUp), binds, DefaultSettings(), 1); got.Translation.Z >= 0 {
		t.Fatalf("rebound forward did not move forward: %v", got.Translation)
	}
}

func TestMoveSystemUsesFrameTime(t *testing.T) {
	world := ecs.NewWorld()
	settings := Settings{MoveSpeed: 4}
	binds := DefaultKeybinds()
	keys := held(glfw.KeyD)
	ecs.AddResource(&world, &settings)
	ecs.AddResource(&world, &binds)
	ecs.AddResource(&world, keys)
	ecs.AddResource(&world, &clock.Time{Delta: 0.25})

	mapper := ecs.NewMap2[transform.Transform, FlyCam](&world)
	a := transform.FromXYZ(0, 0, 0)
	b := transform.FromXYZ(5, 0, 0)
	e1 := mapper.NewEntity(&a, &FlyCam{})
	e2 := mapper.NewEntity(&b, &FlyCam{})

	sys := &MoveSystem{}
	sys.Initialize(&world)
	sys.Update(&world)

	transforms := ecs.NewMap[transform.Transform](&world)
	if got := transforms.Get(e1).Translation; got != (r3.Vec{X: 1}) {
		t.Errorf("first camera at %v, want (1,0,0)", got)
	}
	if got := transforms.Get(e2).Translation; got != (r3.Vec{X: 6}) {
		t.Errorf("second camera at %v, want (6,0,0)", got)
	}
}
