package hotkey

import (
	"fmt"

	hk "golang.design/x/hotkey"

	"flack/internal/shortcut"
)

func platformModifiers(mods []shortcut.Modifier) ([]hk.Modifier, error) {
	out := make([]hk.Modifier, 0, len(mods))
	for _, m := range mods {
		v, ok := modifierMap[m]
		if !ok {
			return nil, fmt.Errorf("hotkey: modifier %s not supported on this platform", m)
		}
		out = append(out, v)
	}
	return out, nil
}
