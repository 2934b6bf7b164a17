package hotkey

import (
	"fmt"
	"strings"

	hk "golang.design/x/hotkey"

	"flack/internal/shortcut"
)

var keyMap = map[shortcut.Key]hk.Key{
	"A": hk.KeyA, "B": hk.KeyB, "C": hk.KeyC, "D": hk.KeyD,
	"E": hk.KeyE, "F": hk.KeyF, "G": hk.KeyG, "H": hk.KeyH,
	"I": hk.KeyI, "J": hk.KeyJ, "K": hk.KeyK, "L": hk.KeyL,
	"M": hk.KeyM, "N": hk.KeyN, "O": hk.KeyO, "P": hk.KeyP,
	"Q": hk.KeyQ, "R": hk.KeyR, "S": hk.KeyS, "T": hk.KeyT,
	"U": hk.KeyU, "V": hk.KeyV, "W": hk.KeyW, "X": hk.KeyX,
	"Y": hk.KeyY, "Z": hk.KeyZ,
	"0": hk.Key0, "1": hk.Key1, "2": hk.Key2, "3": hk.Key3,
	"4": hk.Key4, "5": hk.Key5, "6": hk.Key6, "7": hk.Key7,
	"8": hk.Key8, "9": hk.Key9,
}

func keyFor(key shortcut.Key) (hk.Key, error) {
	normalized := shortcut.Key(strings.ToUpper(strings.TrimSpace(string(key))))
	v, ok := keyMap[normalized]
	if !ok {
		return 0, fmt.Errorf("hotkey: key %q has no platform mapping", key)
	}
	return v, nil
}
