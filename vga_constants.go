// vga_constants.go - VGA text mode register ports, indices and dimensions

package main

// Standard VGA I/O ports
const (
	VGA_PORT_CRTC_INDEX = 0x3D4 // CRTC index select
	VGA_PORT_CRTC_DATA  = 0x3D5 // CRTC data

	// Not a CRTC port. Some boot code reads the cursor end register back
	// from here by mistake; an unmapped read floats high.
	VGA_PORT_STRAY = 0x3E0
)

// Physical text buffer (0xB8000)
const (
	VGA_TEXT_WINDOW = 0xB8000 // Text buffer start
	VGA_TEXT_CELLS  = VGA_TEXT_COLS * VGA_TEXT_ROWS
	VGA_TEXT_BYTES  = VGA_TEXT_CELLS * 2 // 16-bit little-endian cells
	VGA_TEXT_PAGE   = 0x1000             // Mapping granularity on the host
)

// CRTC register indices
const (
	VGA_CRTC_MAX_SCAN   = 0x09 // Maximum scan line
	VGA_CRTC_CURSOR_ST  = 0x0A // Cursor start
	VGA_CRTC_CURSOR_END = 0x0B // Cursor end
	VGA_CRTC_START_HI   = 0x0C // Start address high
	VGA_CRTC_START_LO   = 0x0D // Start address low
	VGA_CRTC_CURSOR_HI  = 0x0E // Cursor location high
	VGA_CRTC_CURSOR_LO  = 0x0F // Cursor location low
	VGA_CRTC_REG_COUNT  = 25
)

// Cursor start/end register bits
const (
	VGA_CURSOR_START_KEEP = 0xC0   // Bits preserved when shaping the start line
	VGA_CURSOR_END_KEEP   = 0xE0   // Bits preserved when shaping the end line
	VGA_CURSOR_DISABLE    = 1 << 5 // Cursor start bit 5 hides the cursor
	VGA_CURSOR_LINE_MASK  = 0x1F

	VGA_CURSOR_DEFAULT_START = 0x0D
	VGA_CURSOR_DEFAULT_END   = 0x0E
)

// VGA dimensions
const (
	VGA_TEXT_COLS   = 80
	VGA_TEXT_ROWS   = 25
	VGA_FONT_WIDTH  = 8
	VGA_FONT_HEIGHT = 16

	VGA_TEXT_PIXEL_WIDTH  = VGA_TEXT_COLS * VGA_FONT_WIDTH
	VGA_TEXT_PIXEL_HEIGHT = VGA_TEXT_ROWS * VGA_FONT_HEIGHT
)

// Byte stream codes understood by the grid
const (
	TEXT_NEWLINE = '\n'
	TEXT_BLANK   = ' '
)

// Port bus float value for reads with no device behind them
const PORT_FLOAT = 0xFF
