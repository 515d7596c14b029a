// sna.go - .SNA snapshot loader

package main

import (
	"encoding/binary"
	"fmt"
	"os"
)

// snaHeaderSize is the fixed 27-byte register block preceding the RAM dump
// in a .SNA file, per the layout in pyse.py's System.load_sna:
//
//	offset  size  field
//	0       1     I
//	1       8     HL', DE', BC', AF' (words, little-endian)
//	9       10    HL, DE, BC, IY, IX
//	19      1     interrupt byte (bit 2 = IFF2)
//	20      1     R
//	21      4     AF, SP
//	25      1     IM
//	26      1     border color (0-7)
//	27      49152 RAM dump, 0x4000-0xFFFF
const snaHeaderSize = 27

// LoadSNA restores CPU registers, border color and RAM from a 49179-byte
// .SNA snapshot, then points the CPU's next fetch at 0x0072 — the standard
// SNA re-entry address, just past the ROM's interrupt-handler RETN, since a
// snapshot is taken mid-interrupt and resumes there rather than at a PC
// stored in the file.
func (s *System) LoadSNA(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if len(data) < SNA_FILE_SIZE {
		return fmt.Errorf("%w: %s needs %d bytes, has %d", ErrFileTooSmall, path, SNA_FILE_SIZE, len(data))
	}

	c := s.CPU
	c.I = data[0]
	c.SetHL2(binary.LittleEndian.Uint16(data[1:3]))
	c.SetDE2(binary.LittleEndian.Uint16(data[3:5]))
	c.SetBC2(binary.LittleEndian.Uint16(data[5:7]))
	c.SetAF2(binary.LittleEndian.Uint16(data[7:9]))
	c.SetHL(binary.LittleEndian.Uint16(data[9:11]))
	c.SetDE(binary.LittleEndian.Uint16(data[11:13]))
	c.SetBC(binary.LittleEndian.Uint16(data[13:15]))
	c.IY = binary.LittleEndian.Uint16(data[15:17])
	c.IX = binary.LittleEndian.Uint16(data[17:19])

	// IFF1 isn't stored in a .SNA; interrupts only resume correctly if it
	// tracks IFF2, which pyse.py's load_sna does explicitly.
	iff2 := data[19]&0x04 != 0
	c.IFF2 = iff2
	c.IFF1 = iff2

	c.R = data[20]
	c.SetAF(binary.LittleEndian.Uint16(data[21:23]))
	c.SP = binary.LittleEndian.Uint16(data[23:25])
	c.IM = data[25]

	s.ULA.SetBorder(data[26])

	ram := data[snaHeaderSize:SNA_FILE_SIZE]
	if len(ram) < SNA_RAM_SIZE {
		return fmt.Errorf("%w: %s truncated RAM dump", ErrInvalidSnapshot, path)
	}
	s.Memory.LoadBytes(SCREEN_START, ram[:SNA_RAM_SIZE])

	c.Prefetch(0x0072)
	return nil
}
