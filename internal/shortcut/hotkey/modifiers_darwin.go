//go:build darwin

package hotkey

import (
	hk "golang.design/x/hotkey"

	"flack/internal/shortcut"
)

var modifierMap = map[shortcut.Modifier]hk.Modifier{
	shortcut.ModCtrl:  hk.ModCtrl,
	shortcut.ModShift: hk.ModShift,
	shortcut.ModAlt:   hk.ModOption,
	shortcut.ModSuper: hk.ModCmd,
}
