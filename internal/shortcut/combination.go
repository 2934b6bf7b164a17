package shortcut

import (
	"runtime"
	"strings"
)

// Modifier is a platform-agnostic keyboard modifier. Translation to the
// operating system's modifier codes happens in the hotkey adapter.
type Modifier int

const (
	ModCtrl Modifier = iota
	ModShift
	ModAlt
	ModSuper
)

func (m Modifier) String() string {
	switch m {
	case ModCtrl:
		return "ctrl"
	case ModShift:
		return "shift"
	case ModAlt:
		return "alt"
	case ModSuper:
		return "super"
	default:
		return "unknown"
	}
}

// Key is a base key name, e.g. "K".
type Key string

// Combination is a modifier set plus a base key.
type Combination struct {
	Mods []Modifier
	Key  Key
}

func (c Combination) String() string {
	parts := make([]string, 0, len(c.Mods)+1)
	for _, m := range c.Mods {
		parts = append(parts, m.String())
	}
	parts = append(parts, strings.ToLower(string(c.Key)))
	return strings.Join(parts, "+")
}

// focusCombos holds the per-platform focus-shortcut combination. Platforms
// not listed fall back to the Ctrl convention.
var focusCombos = map[string]Combination{
	"darwin": {Mods: []Modifier{ModSuper}, Key: "K"},
}

var fallbackFocusCombo = Combination{Mods: []Modifier{ModCtrl}, Key: "K"}

// ForPlatform returns the focus-shortcut combination for the given GOOS.
func ForPlatform(goos string) Combination {
	if combo, ok := focusCombos[goos]; ok {
		return combo
	}
	return fallbackFocusCombo
}

// FocusCombination returns the combination for the running platform.
func FocusCombination() Combination {
	return ForPlatform(runtime.GOOS)
}
