package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var ErrUnknownKey = errors.New("unknown key")

var keyNames = map[string]glfw.Key{
	"Space":        glfw.KeySpace,
	"Apostrophe":   glfw.KeyApostrophe,
	"Comma":        glfw.KeyComma,
	"Minus":        glfw.KeyMinus,
	"Period":       glfw.KeyPeriod,
	"Slash":        glfw.KeySlash,
	"0":            glfw.Key0,
	"1":            glfw.Key1,
	"2":            glfw.Key2,
	"3":            glfw.Key3,
	"4":            glfw.Key4,
	"5":            glfw.Key5,
	"6":            glfw.Key6,
	"7":            glfw.Key7,
	"8":            glfw.Key8,
	"9":            glfw.Key9,
	"Semicolon":    glfw.KeySemicolon,
	"Equal":        glfw.KeyEqual,
	"A":            glfw.KeyA,
	"B":            glfw.KeyB,
	"C":            glfw.KeyC,
	"D":            glfw.KeyD,
	"E":            glfw.KeyE,
	"F":            glfw.KeyF,
	"G":            glfw.KeyG,
	"H":            glfw.KeyH,
	"I":            glfw.KeyI,
	"J":            glfw.KeyJ,
	"K":            glfw.KeyK,
	"L":            glfw.KeyL,
	"M":            glfw.KeyM,
	"N":            glfw.KeyN,
	"O":            glfw.KeyO,
	"P":            glfw.KeyP,
	"Q":            glfw.KeyQ,
	"R":            glfw.KeyR,
	"S":            glfw.KeyS,
	"T":            glfw.KeyT,
	"U":            glfw.KeyU,
	"V":            glfw.KeyV,
	"W":            glfw.KeyW,
	"X":            glfw.KeyX,
	"Y":            glfw.KeyY,
	"Z":            glfw.KeyZ,
	"LeftBracket":  glfw.KeyLeftBracket,
	"Backslash":    glfw.KeyBackslash,
	"RightBracket": glfw.KeyRightBracket,
	"GraveAccent":  glfw.KeyGraveAccent,
	"Escape":       glfw.KeyEscape,
	"Enter":        glfw.KeyEnter,
	"Tab":          glfw.KeyTab,
	"Backspace":    glfw.KeyBackspace,
	"Insert":       glfw.KeyInsert,
	"Delete":       glfw.KeyDelete,
	"Right":        glfw.KeyRight,
	"Left":         glfw.KeyLeft,
	"Down":         glfw.KeyDown,
	"Up":           glfw.KeyUp,
	"PageUp":       glfw.KeyPageUp,
	"PageDown":     glfw.KeyPageDown,
	"Home":         glfw.KeyHome,
	"End":          glfw.KeyEnd,
	"CapsLock":     glfw.KeyCapsLock,
	"LeftShift":    glfw.KeyLeftShift,
	"LeftControl":  glfw.KeyLeftControl,
	"LeftAlt":      glfw.KeyLeftAlt,
	"RightShift":   glfw.KeyRightShift,
	"RightControl": glfw.KeyRightControl,
	"RightAlt":     glfw.KeyRightAlt,
}

var namesByKey = func() map[glfw.Key]string {
	m := make(map[glfw.Key]string, len(keyNames))
	for name, key := range keyNames {
		m[key] = name
	}
	return m
}()

// ParseKey resolves a key name as written in config files. Matching is
// case-insensitive.
func ParseKey(name string) (glfw.Key, error) {
	name = strings.TrimSpace(name)
	for n, k := range keyNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return glfw.KeyUnknown, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

func KeyName(key glfw.Key) string {
	if name, ok := namesByKey[key]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(key))
}
