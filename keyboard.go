// keyboard.go - ZX Spectrum 8x5 keyboard matrix

package main

// Scancode identifies a physical ZX Spectrum key, independent of any host
// keyboard layout. The Ebiten presenter (presenter_ebiten.go) translates host
// key events into Scancode values before calling Press/Release; the headless
// presenter presses no keys.
type Scancode int

const (
	KeyCapsShift Scancode = iota
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyA
	KeyS
	KeyD
	KeyF
	KeyG
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT
	Key1
	Key2
	Key3
	Key4
	Key5
	Key0
	Key9
	Key8
	Key7
	Key6
	KeyP
	KeyO
	KeyI
	KeyU
	KeyY
	KeyEnter
	KeyL
	KeyK
	KeyJ
	KeyH
	KeySpace
	KeySymShift
	KeyM
	KeyN
	KeyB
)

type keyPos struct {
	row  int
	mask uint8
}

// keyMap is the canonical 48K matrix layout from spec.md's GLOSSARY /
// pyse.py's Keyboard.key_map, re-expressed over host-independent Scancodes.
var keyMap = map[Scancode]keyPos{
	KeyCapsShift: {0, 0x01},
	KeyZ:         {0, 0x02},
	KeyX:         {0, 0x04},
	KeyC:         {0, 0x08},
	KeyV:         {0, 0x10},

	KeyA: {1, 0x01},
	KeyS: {1, 0x02},
	KeyD: {1, 0x04},
	KeyF: {1, 0x08},
	KeyG: {1, 0x10},

	KeyQ: {2, 0x01},
	KeyW: {2, 0x02},
	KeyE: {2, 0x04},
	KeyR: {2, 0x08},
	KeyT: {2, 0x10},

	Key1: {3, 0x01},
	Key2: {3, 0x02},
	Key3: {3, 0x04},
	Key4: {3, 0x08},
	Key5: {3, 0x10},

	Key0: {4, 0x01},
	Key9: {4, 0x02},
	Key8: {4, 0x04},
	Key7: {4, 0x08},
	Key6: {4, 0x10},

	KeyP: {5, 0x01},
	KeyO: {5, 0x02},
	KeyI: {5, 0x04},
	KeyU: {5, 0x08},
	KeyY: {5, 0x10},

	KeyEnter: {6, 0x01},
	KeyL:     {6, 0x02},
	KeyK:     {6, 0x04},
	KeyJ:     {6, 0x08},
	KeyH:     {6, 0x10},

	KeySpace:    {7, 0x01},
	KeySymShift: {7, 0x02},
	KeyM:        {7, 0x04},
	KeyN:        {7, 0x08},
	KeyB:        {7, 0x10},
}

// Keyboard holds the ZX Spectrum's 8x5 key matrix. It is not an IODevice
// itself: the ULA's port 0xFE device reads it (see video_ula.go).
type Keyboard struct {
	rows [8]uint8
}

// NewKeyboard creates a keyboard with every key released.
func NewKeyboard() *Keyboard {
	k := &Keyboard{}
	for i := range k.rows {
		k.rows[i] = 0xFF
	}
	return k
}

// Press marks scancode as held down (clears its bit; 0 = pressed).
func (k *Keyboard) Press(scancode Scancode) {
	if pos, ok := keyMap[scancode]; ok {
		k.rows[pos.row] &^= pos.mask
	}
}

// Release marks scancode as released (sets its bit back to 1).
func (k *Keyboard) Release(scancode Scancode) {
	if pos, ok := keyMap[scancode]; ok {
		k.rows[pos.row] |= pos.mask
	}
}

// Read decodes a port address's high byte as a row selector: every row
// whose bit is clear in the high byte contributes its state, combined
// with bitwise AND so keys held in any selected row read as pressed.
func (k *Keyboard) Read(addr uint16) uint8 {
	high := uint8(addr >> 8)
	result := uint8(0xFF)
	for row := 0; row < 8; row++ {
		if high&(1<<uint(row)) == 0 {
			result &= k.rows[row]
		}
	}
	return result
}
