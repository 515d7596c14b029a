// system.go - wires Memory, IOBus, Keyboard, CRT, ULA and CPU_Z80 together
// and drives them forward in fixed-size T-state chunks.

package main

import (
	"fmt"
	"sync/atomic"
)

// ChunkTStates is the number of T-states System.StepChunk advances by
// default: roughly 13 character rows, matching pyse.py's System.CHUNK_SIZE.
const ChunkTStates = 13 * 8 * 224

// System owns every core component and is the CPUBus the Z80 adapter talks
// to: CPU reads/writes go straight to Memory, CPU IN/OUT go through the
// masked IOBus, and every T-state the CPU accounts for is replayed onto the
// ULA so the beam position and CRT framebuffer stay in lockstep with
// executed instructions.
type System struct {
	Memory   *Memory
	IOBus    *IOBus
	Keyboard *Keyboard
	CRT      *CRT
	ULA      *ULA
	CPU      *CPU_Z80

	tState uint64

	// trace gates instruction/frame logging behind -d/--debug, a
	// struct-scoped flag rather than a process-global.
	trace atomic.Bool
}

// NewSystem wires a complete machine. romProtect is forwarded to NewMemory.
func NewSystem(romProtect bool) *System {
	s := &System{
		Memory:   NewMemory(romProtect),
		IOBus:    NewIOBus(),
		Keyboard: NewKeyboard(),
		CRT:      NewCRT(),
	}
	s.ULA = NewULA(s.Memory, s.CRT, s.Keyboard)
	s.IOBus.AddDevice(ULA_PORT_MASK, s.ULA)
	s.CPU = NewCPU_Z80(s)
	return s
}

// SetTrace enables or disables debug tracing.
func (s *System) SetTrace(on bool) {
	s.trace.Store(on)
}

// Read implements CPUBus.
func (s *System) Read(addr uint16) byte {
	return s.Memory.Read(addr)
}

// Write implements CPUBus.
func (s *System) Write(addr uint16, value byte) {
	s.Memory.Write(addr, value)
}

// In implements CPUBus: Z80 IN reads the low 16 address bits through the
// masked port bus.
func (s *System) In(port uint16) byte {
	return s.IOBus.Read(port)
}

// Out implements CPUBus: Z80 OUT writes through the masked port bus.
func (s *System) Out(port uint16, value byte) {
	s.IOBus.Write(port, value)
}

// Tick implements CPUBus: it replays cycles T-states onto the ULA so the
// beam advances exactly as far as the instruction that just ran, then
// mirrors the ULA's INT pin back onto the CPU.
func (s *System) Tick(cycles int) {
	for i := 0; i < cycles; i++ {
		s.ULA.Tick()
	}
	s.tState += uint64(cycles)
	s.CPU.SetIRQLine(s.ULA.InterruptAsserted())

	if s.trace.Load() {
		fmt.Printf("tick: t-state=%d pc=%04X border=%d\n", s.tState, s.CPU.PC, s.ULA.Border())
	}
}

// TState returns the total number of T-states executed since creation (or
// since the last Reset).
func (s *System) TState() uint64 {
	return s.tState
}

// StepChunk runs CPU instructions until at least tStates T-states have been
// accounted for, then returns the number actually executed (always >=
// tStates, since instructions don't subdivide). A presenter calls this once
// per host frame with ChunkTStates to advance the emulation at real-time
// speed.
func (s *System) StepChunk(tStates int) int {
	target := s.tState + uint64(tStates)
	for s.tState < target {
		s.CPU.Step()
	}
	return int(s.tState - (target - uint64(tStates)))
}

// LoadROM loads a 16KB ROM image at address 0x0000.
func (s *System) LoadROM(path string) error {
	if err := s.Memory.LoadRegion(path, 0x0000, ROM_SIZE); err != nil {
		return fmt.Errorf("load ROM: %w", err)
	}
	return nil
}

// LoadSCR loads a 6912-byte .scr screen dump (bitmap + attributes) at 0x4000.
func (s *System) LoadSCR(path string) error {
	if err := s.Memory.LoadRegion(path, SCREEN_START, SCREEN_BYTES); err != nil {
		return fmt.Errorf("load SCR: %w", err)
	}
	return nil
}

// Reset clears the CPU and the T-state counter; memory contents (including
// anything loaded via LoadROM/LoadSNA/LoadSCR) are left untouched since a
// real Spectrum's reset line doesn't clear RAM.
func (s *System) Reset() {
	s.CPU.Reset()
	s.tState = 0
}
