//go:build linux

package hotkey

import (
	hk "golang.design/x/hotkey"

	"flack/internal/shortcut"
)

// Alt is Mod1 and Super/Win is Mod4 under X11.
var modifierMap = map[shortcut.Modifier]hk.Modifier{
	shortcut.ModCtrl:  hk.ModCtrl,
	shortcut.ModShift: hk.ModShift,
	shortcut.ModAlt:   hk.Mod1,
	shortcut.ModSuper: hk.Mod4,
}
