// video_ula.go - ZX Spectrum ULA: beam timing, port 0xFE device, CRT drive

package main

// ULA is the beam-position state machine described in spec.md §4.6. It
// drives the CPU's INT pin, samples Memory for pixel/attribute bytes
// while the beam is in the active display area, paints the CRT
// framebuffer, and answers as an IODevice on port 0xFE (border color
// write, keyboard/EAR read).
type ULA struct {
	mem      *Memory
	crt      *CRT
	keyboard *Keyboard

	line         int
	lineCycle    int
	borderColor  uint8
	flashFlipper int

	// intAsserted mirrors the CPU's INT pin state so System can read it
	// without reaching into the CPU adapter.
	intAsserted bool
}

// NewULA creates a ULA wired to the given memory and keyboard, painting
// into crt.
func NewULA(mem *Memory, crt *CRT, keyboard *Keyboard) *ULA {
	return &ULA{
		mem:          mem,
		crt:          crt,
		keyboard:     keyboard,
		flashFlipper: ULA_FLASH_RATE,
	}
}

// Tick advances the beam by one T-state, sampling memory and painting the
// CRT when the beam is in the active display area, and toggles the INT
// pin at the start of each field. The CPU's own bus access for this
// T-state has already completed by the time Tick runs (see System.Tick in
// system.go: the CPU calls it once per instruction, and it calls this for
// every T-state that instruction consumed) — memory effects of an instruction are therefore visible to
// every pixel group sampled during or after that instruction, matching
// spec.md §5's "writes become visible to the following pixel sample" rule
// at instruction-sized rather than single-T-state granularity, a
// simplification forced by treating the Z80 decoder as an external
// collaborator (see DESIGN.md).
func (u *ULA) Tick() {
	if u.line >= CRT_TOP_BLANKING && u.line < CRT_FIELD_LINES-CRT_BOTTOM_BLANKING &&
		u.lineCycle < CRT_COLUMNS*4 && u.lineCycle%4 == 0 {
		column := u.lineCycle / 4
		u.emitPixelGroup(column)
	}

	u.lineCycle++

	if u.line == 0 && u.lineCycle == ULA_BORDER_T_STATES {
		u.intAsserted = true
	} else if u.line == 0 && u.lineCycle == ULA_BORDER_T_STATES+ULA_INTERRUPT_DURATION {
		u.intAsserted = false
	}

	if u.lineCycle == ULA_T_STATES_PER_LINE {
		u.lineCycle = 0
		u.line++
	}
	if u.line == CRT_FIELD_LINES {
		u.line = 0
		u.flashFlipper--
		if u.flashFlipper == 0 {
			u.flashFlipper = ULA_FLASH_RATE
			u.crt.ToggleFlash()
		}
		u.crt.ToggleField()
	}
}

func (u *ULA) emitPixelGroup(column int) {
	inScreenLine := u.line >= ULA_SCREEN_START_LINE && u.line < ULA_SCREEN_START_LINE+ULA_SCREEN_HEIGHT
	inScreenCol := column >= ULA_SCREEN_START_COLUMN && column < ULA_SCREEN_START_COLUMN+ULA_SCREEN_WIDTH_BYTES

	var displayByte, attrByte uint8
	if inScreenLine && inScreenCol {
		screenLine := u.line - ULA_SCREEN_START_LINE
		screenCol := column - ULA_SCREEN_START_COLUMN
		displayByte = u.mem.Read(DisplayAddress(screenLine, screenCol))
		attrByte = u.mem.Read(AttributeAddress(screenLine, screenCol))
	} else {
		displayByte = 0x00
		attrByte = u.borderColor << 3
	}

	u.crt.UpdatePixels(u.line, column, displayByte, attrByte)
}

// InterruptAsserted reports whether the ULA currently wants the CPU's INT
// pin held low.
func (u *ULA) InterruptAsserted() bool {
	return u.intAsserted
}

// SetBorder sets the border color directly; exposed as the presenter
// debug hook from spec.md §6.
func (u *ULA) SetBorder(color uint8) {
	u.borderColor = color & 0x07
}

// Border returns the current border color (0-7).
func (u *ULA) Border() uint8 {
	return u.borderColor
}

// Read implements IODevice for port 0xFE: bits 0-4 come from the keyboard
// matrix selected by the port's high byte, bits 5-7 are always set (the
// EAR/tape input line defaults high with no tape connected).
func (u *ULA) Read(addr uint16) uint8 {
	return (u.keyboard.Read(addr) & 0x1F) | 0xE0
}

// Write implements IODevice for port 0xFE: bits 0-2 set the border color.
func (u *ULA) Write(addr uint16, value uint8) {
	u.SetBorder(value)
}
