package window

import (
	"testing"

	"github.com/goki/vulkan"
)

func TestTrackSkipsFirstSample(t *testing.T) {
	var w Window
	if _, _, ok := w.track(100, 100); ok {
		t.Fatal("first cursor sample produced motion")
	}
	dx, dy, ok := w.track(110, 95)
	if !ok || dx != 10 || dy != -5 {
		t.Fatalf("got (%v, %v, %v), want (10, -5, true)", dx, dy, ok)
	}
	if _, _, ok := w.track(110, 95); ok {
		t.Fatal("unchanged position produced motion")
	}
}

func TestAspectRatio(t *testing.T) {
	if got := AspectRatio(vulkan.Extent2D{Width: 800, Height: 600}); got != 800.0/600.0 {
		t.Fatalf("aspect = %v", got)
	}
	if got := AspectRatio(vulkan.Extent2D{Width: 800}); got != 0 {
		t.Fatalf("minimised window aspect = %v, want 0", got)
	}
}

func TestFocusedCursorMode(t *testing.T) {
	tests := []struct {
		requested CursorMode
		focused   bool
		want      CursorMode
	}{
		{CursorLocked, true, CursorLocked},
		{CursorLocked, false, CursorNormal},
		{CursorNormal, true, CursorNormal},
		{CursorNormal, false, CursorNormal},
	}
	for _, tt := range tests {
		if got := focusedCursorMode(tt.requested, tt.focused); got != tt.want {
			t.Errorf("focusedCursorMode(%v, %v) = %v, want %v", tt.requested, tt.focused, got, tt.want)
		}
	}
}
