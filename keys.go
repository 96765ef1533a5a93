// keys.go - Platform-independent key identifiers

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

import (
	"fmt"
	"strings"
)

// Key identifies a physical key independently of the host window system.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyArrowLeft
	KeyArrowUp
	KeyArrowRight
	KeyArrowDown
	KeyShift
	KeyControl
	KeyAlt
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	keyCount
)

// keyInfo maps a Key to its name, its Win32 virtual-key code and its X11 keysym.
type keyInfo struct {
	name   string
	vk     uint16
	keysym uint32
}

var keyTable = buildKeyTable()

func buildKeyTable() [keyCount]keyInfo {
	var t [keyCount]keyInfo
	t[KeyUnknown] = keyInfo{"unknown", 0, 0}
	t[KeyEscape] = keyInfo{"escape", 0x1B, 0xFF1B}
	t[KeyEnter] = keyInfo{"enter", 0x0D, 0xFF0D}
	t[KeyTab] = keyInfo{"tab", 0x09, 0xFF09}
	t[KeyBackspace] = keyInfo{"backspace", 0x08, 0xFF08}
	t[KeySpace] = keyInfo{"space", 0x20, 0x0020}
	t[KeyInsert] = keyInfo{"insert", 0x2D, 0xFF63}
	t[KeyDelete] = keyInfo{"delete", 0x2E, 0xFFFF}
	t[KeyHome] = keyInfo{"home", 0x24, 0xFF50}
	t[KeyEnd] = keyInfo{"end", 0x23, 0xFF57}
	t[KeyPageUp] = keyInfo{"pageup", 0x21, 0xFF55}
	t[KeyPageDown] = keyInfo{"pagedown", 0x22, 0xFF56}
	t[KeyArrowLeft] = keyInfo{"left", 0x25, 0xFF51}
	t[KeyArrowUp] = keyInfo{"up", 0x26, 0xFF52}
	t[KeyArrowRight] = keyInfo{"right", 0x27, 0xFF53}
	t[KeyArrowDown] = keyInfo{"down", 0x28, 0xFF54}
	t[KeyShift] = keyInfo{"shift", 0x10, 0xFFE1}
	t[KeyControl] = keyInfo{"control", 0x11, 0xFFE3}
	t[KeyAlt] = keyInfo{"alt", 0x12, 0xFFE9}
	for i := range 12 {
		k := KeyF1 + Key(i)
		t[k] = keyInfo{fmt.Sprintf("f%d", i+1), uint16(0x70 + i), uint32(0xFFBE + i)}
	}
	for i := range 10 {
		k := Key0 + Key(i)
		t[k] = keyInfo{string(rune('0' + i)), uint16('0' + i), uint32('0' + i)}
	}
	for i := range 26 {
		k := KeyA + Key(i)
		t[k] = keyInfo{string(rune('a' + i)), uint16('A' + i), uint32('a' + i)}
	}
	return t
}

var keyAliases = map[string]Key{
	"esc":       KeyEscape,
	"return":    KeyEnter,
	"prior":     KeyPageUp,
	"next":      KeyPageDown,
	"page_up":   KeyPageUp,
	"page_down": KeyPageDown,
	"pgup":      KeyPageUp,
	"pgdn":      KeyPageDown,
	"ctrl":      KeyControl,
	"del":       KeyDelete,
	"ins":       KeyInsert,
}

func (k Key) valid() bool {
	return k > KeyUnknown && k < keyCount
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return fmt.Sprintf("key(%d)", int(k))
	}
	return keyTable[k].name
}

// VirtualKey returns the Win32 virtual-key code, or 0 for unknown keys.
func (k Key) VirtualKey() uint16 {
	if !k.valid() {
		return 0
	}
	return keyTable[k].vk
}

// Keysym returns the X11 keysym, or 0 for unknown keys.
func (k Key) Keysym() uint32 {
	if !k.valid() {
		return 0
	}
	return keyTable[k].keysym
}

// ParseKey resolves a key by name, e.g. "escape", "PageUp", "f9", "a".
func ParseKey(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyAliases[n]; ok {
		return k, nil
	}
	for k := KeyUnknown + 1; k < keyCount; k++ {
		if keyTable[k].name == n {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}
