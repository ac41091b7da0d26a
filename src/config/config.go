package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/WowVeryLogin/flycam/src/camcontroller"
	"github.com/WowVeryLogin/flycam/src/camcontroller/camera"
	"github.com/WowVeryLogin/flycam/src/input"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Config struct {
	Window   WindowConfig   `toml:"window"`
	Camera   CameraConfig   `toml:"camera"`
	Keybinds KeybindsConfig `toml:"keybinds"`
	Logging  LoggingConfig  `toml:"logging"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	MaxFPS int    `toml:"max_fps"` // 0 disables the frame cap
}

type CameraConfig struct {
	Sensitivity float64 `toml:"sensitivity"` // degrees per pixel
	MoveSpeed   float64 `toml:"move_speed"`  // units per second
	FOV         float64 `toml:"fov"`         // vertical, degrees
	Near        float64 `toml:"near"`
	Far         float64 `toml:"far"`
	Scene       string  `toml:"scene"` // optional glTF file with the spawn camera
}

// KeybindsConfig holds key names as accepted by input.ParseKey.
type KeybindsConfig struct {
	Forward string `toml:"forward"`
	Back    string `toml:"back"`
	Left    string `toml:"left"`
	Right   string `toml:"right"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data, path)
}

func Parse(data []byte, name string) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", name, err)
	}
	return cfg, nil
}

func Default() *Config {
	settings := camcontroller.DefaultSettings()
	binds := camcontroller.DefaultKeybinds()
	return &Config{
		Window: WindowConfig{
			Title:  "Fly Camera",
			Width:  800,
			Height: 600,
			MaxFPS: 240,
		},
		Camera: CameraConfig{
			Sensitivity: settings.Sensitivity,
			MoveSpeed:   settings.MoveSpeed,
			FOV:         camera.DefaultFOV,
			Near:        camera.DefaultNear,
			Far:         camera.DefaultFar,
		},
		Keybinds: KeybindsConfig{
			Forward: input.KeyName(binds.Forward),
			Back:    input.KeyName(binds.Back),
			Left:    input.KeyName(binds.Left),
			Right:   input.KeyName(binds.Right),
			Up:      input.KeyName(binds.Up),
			Down:    input.KeyName(binds.Down),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.MaxFPS < 0 {
		errs = append(errs, fmt.Errorf("window.max_fps must not be negative, got %d", c.Window.MaxFPS))
	}
	if c.Camera.Sensitivity <= 0 {
		errs = append(errs, fmt.Errorf("camera.sensitivity must be positive, got %v", c.Camera.Sensitivity))
	}
	if c.Camera.MoveSpeed <= 0 {
		errs = append(errs, fmt.Errorf("camera.move_speed must be positive, got %v", c.Camera.MoveSpeed))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov must be in (0, 180), got %v", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera planes near=%v far=%v", c.Camera.Near, c.Camera.Far))
	}
	if _, err := c.Keybinds.parse(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c *Config) Settings() camcontroller.Settings {
	return camcontroller.Settings{
		Sensitivity: c.Camera.Sensitivity,
		MoveSpeed:   c.Camera.MoveSpeed,
	}
}

// Bindings converts the key names. Load has already validated them, so
// an error here means the Config was built by hand.
func (c *Config) Bindings() (camcontroller.Keybinds, error) {
	return c.Keybinds.parse()
}

func (c *Config) NewCamera() *camera.Camera {
	aspect := float64(c.Window.Width) / float64(c.Window.Height)
	return camera.New(c.Camera.FOV, aspect, c.Camera.Near, c.Camera.Far)
}

func (k KeybindsConfig) parse() (camcontroller.Keybinds, error) {
	var binds camcontroller.Keybinds
	fields := []struct {
		name string
		key  string
		dst  *glfw.Key
	}{
		{"forward", k.Forward, &binds.Forward},
		{"back", k.Back, &binds.Back},
		{"left", k.Left, &binds.Left},
		{"right", k.Right, &binds.Right},
		{"up", k.Up, &binds.Up},
		{"down", k.Down, &binds.Down},
	}
	for _, f := range fields {
		key, err := input.ParseKey(f.key)
		if err != nil {
			return camcontroller.Keybinds{}, fmt.Errorf("keybinds.%s: %w", f.name, err)
		}
		*f.dst = key
	}
	return binds, nil
}
