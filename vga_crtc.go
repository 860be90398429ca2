// vga_crtc.go - CRTC register file behind the 0x3D4/0x3D5 pair

package main

import "sync"

// CRTCDevice emulates the CRT controller registers the text console uses:
// cursor shape, cursor location and display start. Everything goes through
// the index/data port pair, so a caller that is interrupted between the
// select and the data access lands on whatever index was selected last.
type CRTCDevice struct {
	mutex sync.RWMutex

	crtcIndex uint8
	crtcRegs  [VGA_CRTC_REG_COUNT]uint8
}

func NewCRTCDevice() *CRTCDevice {
	crtc := &CRTCDevice{}
	crtc.crtcRegs[VGA_CRTC_MAX_SCAN] = VGA_FONT_HEIGHT - 1
	crtc.crtcRegs[VGA_CRTC_CURSOR_ST] = VGA_CURSOR_DEFAULT_START
	crtc.crtcRegs[VGA_CRTC_CURSOR_END] = VGA_CURSOR_DEFAULT_END
	return crtc
}

// Attach maps the index and data ports onto bus
func (c *CRTCDevice) Attach(bus *PortBus) {
	bus.MapPorts(VGA_PORT_CRTC_INDEX, VGA_PORT_CRTC_DATA, c.HandlePortRead, c.HandlePortWrite)
}

// HandlePortRead handles reads from the index or data port
func (c *CRTCDevice) HandlePortRead(port uint16) byte {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	switch port {
	case VGA_PORT_CRTC_INDEX:
		return c.crtcIndex
	case VGA_PORT_CRTC_DATA:
		if c.crtcIndex < VGA_CRTC_REG_COUNT {
			return c.crtcRegs[c.crtcIndex]
		}
		return 0
	}
	return PORT_FLOAT
}

// HandlePortWrite handles writes to the index or data port
func (c *CRTCDevice) HandlePortWrite(port uint16, value byte) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	switch port {
	case VGA_PORT_CRTC_INDEX:
		c.crtcIndex = value
	case VGA_PORT_CRTC_DATA:
		if c.crtcIndex < VGA_CRTC_REG_COUNT {
			c.crtcRegs[c.crtcIndex] = value
		}
	}
}

// Register returns a register without touching the index latch
func (c *CRTCDevice) Register(index uint8) uint8 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if index < VGA_CRTC_REG_COUNT {
		return c.crtcRegs[index]
	}
	return 0
}

// CursorOffset returns the linear cursor location
func (c *CRTCDevice) CursorOffset() uint16 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return uint16(c.crtcRegs[VGA_CRTC_CURSOR_HI])<<8 | uint16(c.crtcRegs[VGA_CRTC_CURSOR_LO])
}

// GetCursorPosition returns cursor column and row
func (c *CRTCDevice) GetCursorPosition() (int, int) {
	offset := c.CursorOffset()
	return int(offset % VGA_TEXT_COLS), int(offset / VGA_TEXT_COLS)
}

// CursorShape returns the first and last cursor scanlines
func (c *CRTCDevice) CursorShape() (uint8, uint8) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.crtcRegs[VGA_CRTC_CURSOR_ST] & VGA_CURSOR_LINE_MASK, c.crtcRegs[VGA_CRTC_CURSOR_END] & VGA_CURSOR_LINE_MASK
}

func (c *CRTCDevice) CursorEnabled() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.crtcRegs[VGA_CRTC_CURSOR_ST]&VGA_CURSOR_DISABLE == 0
}

// CursorState is what a display needs to draw the hardware cursor
type CursorState struct {
	Column  int
	Row     int
	Start   uint8
	End     uint8
	Enabled bool
}

func (c *CRTCDevice) CursorState() CursorState {
	col, row := c.GetCursorPosition()
	start, end := c.CursorShape()
	return CursorState{
		Column:  col,
		Row:     row,
		Start:   start,
		End:     end,
		Enabled: c.CursorEnabled(),
	}
}
