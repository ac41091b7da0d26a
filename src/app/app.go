package app

import (
	"fmt"
	"time"

	"github.com/WowVeryLogin/flycam/src/camcontroller"
	"github.com/WowVeryLogin/flycam/src/camcontroller/camera"
	"github.com/WowVeryLogin/flycam/src/clock"
	"github.com/WowVeryLogin/flycam/src/config"
	"github.com/WowVeryLogin/flycam/src/input"
	"github.com/WowVeryLogin/flycam/src/scene"
	"github.com/WowVeryLogin/flycam/src/transform"
	"github.com/WowVeryLogin/flycam/src/window"

	"github.com/go-gl/glfw/v3.3/glfw"
	arkapp "github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

const titleInterval = 250 * time.Millisecond

type App struct {
	window *window.Window
	app    *arkapp.App
	log    *zap.Logger
	cfg    *config.Config

	keys    *input.Keys
	watcher *config.Watcher
	limiter *clock.Limiter

	cameraController camcontroller.Systems
	cameras          *ecs.Filter2[transform.Transform, camera.Camera]
	transforms       *ecs.Map[transform.Transform]
	lastTitle        time.Time
}

// New opens the window and wires the fly camera into an ark-tools app.
// configPath may be empty; the file is then neither read nor watched.
func New(cfg *config.Config, configPath string, log *zap.Logger) *App {
	win := window.New(window.Options{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})

	keys := input.NewKeys()
	motions := &input.MouseMotions{}
	win.Bind(keys, motions)

	tool := arkapp.New(1024)
	world := &tool.World
	ecs.AddResource(world, &window.Primary{Handle: win})
	ecs.AddResource(world, keys)
	ecs.AddResource(world, motions)

	tool.AddSystem(&clock.System{})

	a := &App{
		window:  win,
		app:     tool,
		log:     log,
		cfg:     cfg,
		keys:    keys,
		limiter: clock.NewLimiter(cfg.Window.MaxFPS),
		cameras: ecs.NewFilter2[transform.Transform, camera.Camera](world).
			With(ecs.C[camcontroller.FlyCam]()),
		transforms: ecs.NewMap[transform.Transform](world),
	}

	if configPath != "" {
		watcher, err := config.Watch(configPath)
		if err != nil {
			log.Warn("config hot reload disabled", zap.String("path", configPath), zap.Error(err))
		} else {
			a.watcher = watcher
			tool.AddSystem(&camcontroller.ReloadSystem{Updates: watcher.Updates, Log: log})
			go a.logWatchErrors()
		}
	}

	settings := cfg.Settings()
	binds, err := cfg.Bindings()
	if err != nil {
		panic("failed to read keybinds: " + err.Error())
	}
	plugin := camcontroller.Plugin{
		Settings: &settings,
		Keybinds: &binds,
		Camera:   cfg.NewCamera(),
		Log:      log,
	}
	if cfg.Camera.Scene != "" {
		pose, err := scene.LoadCamera(cfg.Camera.Scene)
		if err != nil {
			log.Warn("using default camera pose", zap.String("scene", cfg.Camera.Scene), zap.Error(err))
		} else {
			plugin.Spawn = &pose.Transform
			if pose.Camera != nil {
				plugin.Camera = pose.Camera
			}
			log.Info("camera pose loaded", zap.String("scene", cfg.Camera.Scene), zap.String("node", pose.Name))
		}
	}
	a.cameraController = plugin.Install(tool)

	return a
}

func (a *App) Run() {
	a.app.Initialize()
	a.resize()

	for !a.window.ShouldClose() {
		a.limiter.Wait()
		glfw.PollEvents()
		if a.keys.Pressed(glfw.KeyEscape) {
			a.window.SetShouldClose(true)
		}

		a.app.Update()

		if a.window.SizeChanged {
			for a.window.Extent.Height == 0 || a.window.Extent.Width == 0 {
				glfw.WaitEvents()
				if a.window.ShouldClose() {
					break
				}
			}
			a.window.SizeChanged = false
			a.resize()
		}
		a.updateTitle()
	}

	a.app.Finalize()
}

func (a *App) Close() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("close config watcher", zap.Error(err))
		}
	}
	a.window.Close()
	_ = a.log.Sync()
}

// resize pushes the framebuffer aspect into every controlled camera.
func (a *App) resize() {
	aspect := a.window.AspectRatio()
	query := a.cameras.Query()
	for query.Next() {
		_, cam := query.Get()
		cam.Update(aspect)
	}
	a.log.Debug("framebuffer resized",
		zap.Uint32("width", a.window.Extent.Width),
		zap.Uint32("height", a.window.Extent.Height),
	)
}

func (a *App) updateTitle() {
	if time.Since(a.lastTitle) < titleInterval {
		return
	}
	a.lastTitle = time.Now()

	tr := a.transforms.Get(a.cameraController.Spawn.Entity)
	yaw, pitch, _ := tr.EulerYXZ()
	a.window.SetTitle(fmt.Sprintf("%s  pos (%.2f, %.2f, %.2f)  yaw %.1f°  pitch %.1f°",
		a.cfg.Window.Title,
		tr.Translation.X, tr.Translation.Y, tr.Translation.Z,
		transform.Degrees(yaw), transform.Degrees(pitch),
	))
}

func (a *App) logWatchErrors() {
	for err := range a.watcher.Errors {
		a.log.Warn("config reload failed", zap.Error(err))
	}
}
