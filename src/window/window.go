package window

import (
	"github.com/WowVeryLogin/flycam/src/input"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/goki/vulkan"
)

type CursorMode int

const (
	CursorNormal CursorMode = iota
	// CursorLocked hides the pointer and confines it to the window.
	CursorLocked
)

// CursorHandle is the part of a window the camera controller touches.
type CursorHandle interface {
	SetCursorMode(mode CursorMode)
}

// Primary is the ECS resource naming the application's primary window.
type Primary struct {
	Handle CursorHandle
}

type Options struct {
	Title  string
	Width  int
	Height int
}

type Window struct {
	Window      *glfw.Window
	Extent      vulkan.Extent2D
	SizeChanged bool

	lastX, lastY float64
	hasCursor    bool
	cursorMode   CursorMode
}

func New(opts Options) *Window {
	if err := glfw.Init(); err != nil {
		panic("failed to initialize GLFW: " + err.Error())
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		panic(err)
	}

	width, height := window.GetFramebufferSize()
	w := &Window{
		Window: window,
		Extent: vulkan.Extent2D{
			Width:  uint32(width),
			Height: uint32(height),
		},
	}

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width int, height int) {
		w.Extent.Height = uint32(height)
		w.Extent.Width = uint32(width)
		w.SizeChanged = true
	})

	return w
}

func (w *Window) Close() {
	w.Window.Destroy()
	glfw.Terminate()
}

func (w *Window) ShouldClose() bool {
	return w.Window.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.Window.SetShouldClose(v)
}

func (w *Window) SetTitle(title string) {
	w.Window.SetTitle(title)
}

func (w *Window) AspectRatio() float64 {
	return AspectRatio(w.Extent)
}

func AspectRatio(extent vulkan.Extent2D) float64 {
	if extent.Height == 0 {
		return 0
	}
	return float64(extent.Width) / float64(extent.Height)
}

func (w *Window) SetCursorMode(mode CursorMode) {
	w.cursorMode = mode
	w.applyCursorMode(mode)
}

func (w *Window) applyCursorMode(mode CursorMode) {
	switch mode {
	case CursorLocked:
		w.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			w.Window.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
	default:
		w.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		if glfw.RawMouseMotionSupported() {
			w.Window.SetInputMode(glfw.RawMouseMotion, glfw.False)
		}
	}
	// mode switches warp the cursor; restart delta tracking
	w.hasCursor = false
}

// Bind feeds glfw key and cursor events into the input resources.
func (w *Window) Bind(keys *input.Keys, motions *input.MouseMotions) {
	w.Window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			keys.Press(key)
		case glfw.Release:
			keys.Release(key)
		}
	})
	w.Window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if dx, dy, ok := w.track(x, y); ok {
			motions.Send(dx, dy)
		}
	})
	w.Window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			keys.Reset()
		}
		w.applyCursorMode(focusedCursorMode(w.cursorMode, focused))
	})
}

// focusedCursorMode releases a locked cursor while the window is in the
// background and restores the requested mode when focus returns.
func focusedCursorMode(requested CursorMode, focused bool) CursorMode {
	if !focused {
		return CursorNormal
	}
	return requested
}

// track turns absolute cursor positions into deltas. The first sample after
// a reset only records the position.
func (w *Window) track(x, y float64) (float64, float64, bool) {
	if !w.hasCursor {
		w.lastX, w.lastY = x, y
		w.hasCursor = true
		return 0, 0, false
	}
	dx, dy := x-w.lastX, y-w.lastY
	w.lastX, w.lastY = x, y
	return dx, dy, dx != 0 || dy != 0
}
