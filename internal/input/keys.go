package input

import "github.com/go-gl/glfw/v3.3/glfw"

// keyTableSize covers every key code GLFW reports.
const keyTableSize = int(glfw.KeyLast) + 1

// KeyTable records which keys are currently held. Codes outside the
// table, including glfw.KeyUnknown, are ignored.
type KeyTable struct {
	down [keyTableSize]bool
}

func (t *KeyTable) index(key glfw.Key) (int, bool) {
	i := int(key)
	return i, i >= 0 && i < keyTableSize
}

// Set marks key as held or released.
func (t *KeyTable) Set(key glfw.Key, held bool) {
	if i, ok := t.index(key); ok {
		t.down[i] = held
	}
}

// Held reports whether key is held.
func (t *KeyTable) Held(key glfw.Key) bool {
	if i, ok := t.index(key); ok {
		return t.down[i]
	}
	return false
}
