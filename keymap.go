// keymap.go - Keymap decoding and edge detection for polled key state

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

// keymapBitSet reports whether keycode kc is down in a 256-bit key vector as
// returned by the X11 QueryKeymap request.
func keymapBitSet(keys []byte, kc uint8) bool {
	idx := int(kc) / 8
	if idx >= len(keys) {
		return false
	}
	return keys[idx]&(1<<(kc%8)) != 0
}

// keysymIndex builds a keysym to keycode lookup from a keyboard mapping that
// starts at minKeycode with perKeycode keysyms per keycode. The first keycode
// producing a keysym wins.
func keysymIndex(minKeycode uint8, perKeycode int, keysyms []uint32) map[uint32]uint8 {
	index := make(map[uint32]uint8)
	if perKeycode <= 0 {
		return index
	}
	for i, sym := range keysyms {
		if sym == 0 {
			continue
		}
		kc := int(minKeycode) + i/perKeycode
		if kc > 255 {
			break
		}
		if _, ok := index[sym]; !ok {
			index[sym] = uint8(kc)
		}
	}
	return index
}

// keyLatch turns level-triggered "is down" samples into edge-triggered
// "was pressed" answers, one latch per key.
type keyLatch struct {
	down map[Key]bool
}

func newKeyLatch() *keyLatch {
	return &keyLatch{down: make(map[Key]bool)}
}

// observe records the current level of k and reports an up to down transition
// since the previous observation of k.
func (l *keyLatch) observe(k Key, isDown bool) bool {
	was := l.down[k]
	l.down[k] = isDown
	return isDown && !was
}
