// ula_constants.go - ZX Spectrum ULA timing and layout constants

package main

const (
	ULA_SCREEN_START_LINE   = 64
	ULA_SCREEN_START_COLUMN = 6
	ULA_SCREEN_WIDTH_BYTES  = 32
	ULA_SCREEN_HEIGHT       = 192
	ULA_BORDER_T_STATES     = ULA_SCREEN_START_COLUMN * 4 // 24
	ULA_FLASH_RATE          = 16
	ULA_INTERRUPT_DURATION  = 32

	ULA_T_STATES_PER_LINE  = 224
	ULA_T_STATES_PER_FRAME = 69888

	ULA_DISPLAY_WIDTH  = 256
	ULA_DISPLAY_HEIGHT = 192
	ULA_CELLS_X        = 32
	ULA_CELLS_Y        = 24

	// ULA_PORT_MASK selects port 0xFE: the ULA responds whenever the
	// low bit of the port address is clear.
	ULA_PORT_MASK = 0x0001
)
