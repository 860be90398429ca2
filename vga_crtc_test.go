// vga_crtc_test.go - Tests for the CRTC register file

package main

import "testing"

func newAttachedCRTC() (*CRTCDevice, *PortBus) {
	bus := NewPortBus()
	crtc := NewCRTCDevice()
	crtc.Attach(bus)
	bus.Seal()
	return crtc, bus
}

func TestVGA_CRTC_Defaults(t *testing.T) {
	crtc := NewCRTCDevice()

	if got := crtc.Register(VGA_CRTC_MAX_SCAN); got != 15 {
		t.Errorf("max scan line: got %d, want 15", got)
	}
	start, end := crtc.CursorShape()
	if start != VGA_CURSOR_DEFAULT_START || end != VGA_CURSOR_DEFAULT_END {
		t.Errorf("cursor shape: got %d-%d, want %d-%d", start, end, VGA_CURSOR_DEFAULT_START, VGA_CURSOR_DEFAULT_END)
	}
	if !crtc.CursorEnabled() {
		t.Errorf("cursor should start enabled")
	}
}

func TestVGA_CRTC_IndexedAccess(t *testing.T) {
	crtc, bus := newAttachedCRTC()

	bus.Out(VGA_PORT_CRTC_INDEX, VGA_CRTC_START_HI)
	bus.Out(VGA_PORT_CRTC_DATA, 0x12)

	if got := bus.In(VGA_PORT_CRTC_INDEX); got != VGA_CRTC_START_HI {
		t.Errorf("index latch: got 0x%02X, want 0x%02X", got, VGA_CRTC_START_HI)
	}
	if got := bus.In(VGA_PORT_CRTC_DATA); got != 0x12 {
		t.Errorf("data: got 0x%02X, want 0x12", got)
	}
	if got := crtc.Register(VGA_CRTC_START_HI); got != 0x12 {
		t.Errorf("register: got 0x%02X, want 0x12", got)
	}
}

func TestVGA_CRTC_IndexOutOfRange(t *testing.T) {
	crtc, bus := newAttachedCRTC()

	bus.Out(VGA_PORT_CRTC_INDEX, 0x40)
	bus.Out(VGA_PORT_CRTC_DATA, 0xAA)

	if got := bus.In(VGA_PORT_CRTC_DATA); got != 0 {
		t.Errorf("out of range read: got 0x%02X, want 0", got)
	}
	if got := crtc.Register(0x40); got != 0 {
		t.Errorf("Register(0x40): got 0x%02X, want 0", got)
	}
}

func TestVGA_CRTC_CursorPosition(t *testing.T) {
	crtc, bus := newAttachedCRTC()

	offset := uint16(24*VGA_TEXT_COLS + 79)
	bus.Out(VGA_PORT_CRTC_INDEX, VGA_CRTC_CURSOR_LO)
	bus.Out(VGA_PORT_CRTC_DATA, uint8(offset))
	bus.Out(VGA_PORT_CRTC_INDEX, VGA_CRTC_CURSOR_HI)
	bus.Out(VGA_PORT_CRTC_DATA, uint8(offset>>8))

	if got := crtc.CursorOffset(); got != offset {
		t.Errorf("offset: got %d, want %d", got, offset)
	}
	col, row := crtc.GetCursorPosition()
	if col != 79 || row != 24 {
		t.Errorf("position: got (%d,%d), want (79,24)", col, row)
	}
}

func TestVGA_CRTC_DisableBit(t *testing.T) {
	crtc, bus := newAttachedCRTC()

	bus.Out(VGA_PORT_CRTC_INDEX, VGA_CRTC_CURSOR_ST)
	bus.Out(VGA_PORT_CRTC_DATA, VGA_CURSOR_DISABLE|0x0D)

	if crtc.CursorEnabled() {
		t.Errorf("cursor enabled with bit 5 set")
	}
	if state := crtc.CursorState(); state.Enabled || state.Start != 0x0D {
		t.Errorf("state: got %+v", state)
	}
}

func TestVGA_CRTC_UnrelatedPortFloats(t *testing.T) {
	_, bus := newAttachedCRTC()

	if got := bus.In(VGA_PORT_STRAY); got != PORT_FLOAT {
		t.Errorf("port 0x%03X: got 0x%02X, want 0x%02X", VGA_PORT_STRAY, got, PORT_FLOAT)
	}
}
