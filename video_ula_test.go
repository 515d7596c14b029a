package main

import "testing"

func TestULAInterruptWindowTiming(t *testing.T) {
	mem := NewMemory(true)
	crt := NewCRT()
	kb := NewKeyboard()
	u := NewULA(mem, crt, kb)

	// Advance to just before the interrupt window opens on line 0.
	for i := 0; i < ULA_BORDER_T_STATES-1; i++ {
		u.Tick()
		if u.InterruptAsserted() {
			t.Fatalf("interrupt asserted early at T-state %d", i)
		}
	}

	u.Tick() // crosses into the window
	if !u.InterruptAsserted() {
		t.Fatal("interrupt should be asserted at the start of the INT window")
	}

	for i := 0; i < ULA_INTERRUPT_DURATION-1; i++ {
		u.Tick()
	}
	if !u.InterruptAsserted() {
		t.Fatal("interrupt should still be asserted through the full window")
	}

	u.Tick() // crosses past the window
	if u.InterruptAsserted() {
		t.Fatal("interrupt should deassert after INTERRUPT_DURATION T-states")
	}
}

func TestULAFrameLength(t *testing.T) {
	mem := NewMemory(true)
	crt := NewCRT()
	kb := NewKeyboard()
	u := NewULA(mem, crt, kb)

	for i := 0; i < ULA_T_STATES_PER_FRAME; i++ {
		u.Tick()
	}
	if u.line != 0 || u.lineCycle != 0 {
		t.Fatalf("after a full frame, beam should be back at (0,0); got line=%d cycle=%d", u.line, u.lineCycle)
	}
}

func TestULAFlashTogglesEveryFlashRateFields(t *testing.T) {
	mem := NewMemory(true)
	crt := NewCRT()
	kb := NewKeyboard()
	u := NewULA(mem, crt, kb)

	initial := crt.flashInvert
	for field := 0; field < ULA_FLASH_RATE; field++ {
		for i := 0; i < ULA_T_STATES_PER_FRAME; i++ {
			u.Tick()
		}
	}
	if crt.flashInvert == initial {
		t.Fatal("flash state should have inverted after ULA_FLASH_RATE fields")
	}
}

func TestULABorderPortReadWrite(t *testing.T) {
	mem := NewMemory(true)
	crt := NewCRT()
	kb := NewKeyboard()
	u := NewULA(mem, crt, kb)

	u.Write(0xFE, 0x05)
	if u.Border() != 0x05 {
		t.Fatalf("Border() = %d, want 5", u.Border())
	}

	kb.Press(KeyA) // row 1
	got := u.Read(0xFDFE)
	if got&0xE0 != 0xE0 {
		t.Fatalf("Read high bits = 0x%02X, want bits 5-7 set (no tape)", got)
	}
	if got&0x01 != 0 {
		t.Fatalf("Read bit 0 should reflect pressed key A, got 0x%02X", got)
	}
}
