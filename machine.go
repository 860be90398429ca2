// machine.go - Wires text buffer, CRTC, cursor port and grid together

package main

// TextModeMachine is one display session: the surface and ports plus the
// drivers built on them. The CRTC is nil when running on host hardware.
type TextModeMachine struct {
	Text   TextSurface
	Ports  PortIO
	CRTC   *CRTCDevice
	Cursor *CursorPort
	Grid   *GridBuffer

	bus  *PortBus
	host *HostHardware
}

// NewEmulatedMachine builds the emulated device and initializes the grid
func NewEmulatedMachine(config GridConfig) *TextModeMachine {
	bus := NewPortBus()
	crtc := NewCRTCDevice()
	crtc.Attach(bus)
	bus.Seal()

	m := &TextModeMachine{
		Text:  NewTextMemory(),
		Ports: bus,
		CRTC:  crtc,
		bus:   bus,
	}
	m.wire(config)
	return m
}

// NewHostMachine drives the real text buffer and CRTC of this computer
func NewHostMachine(config GridConfig) (*TextModeMachine, error) {
	host, err := OpenHostHardware()
	if err != nil {
		return nil, err
	}
	m := &TextModeMachine{
		Text:  host.Text,
		Ports: host.Ports,
		host:  host,
	}
	m.wire(config)
	return m, nil
}

func (m *TextModeMachine) wire(config GridConfig) {
	m.Cursor = NewCursorPort(m.Ports)
	m.Grid = NewGridBuffer(m.Text, m.Cursor, config)
	m.Grid.Initialize()
}

// Snapshot returns the page cells and the cursor as the display sees it.
// On host hardware the cursor is read back through the ports.
func (m *TextModeMachine) Snapshot() ([]uint16, CursorState) {
	cells := snapshotSurface(m.Text)
	if m.CRTC != nil {
		return cells, m.CRTC.CursorState()
	}
	offset := m.Cursor.Position()
	start := m.Cursor.ReadIndexed(VGA_CRTC_CURSOR_ST)
	end := m.Cursor.ReadIndexed(VGA_CRTC_CURSOR_END)
	return cells, CursorState{
		Column:  int(offset % VGA_TEXT_COLS),
		Row:     int(offset / VGA_TEXT_COLS),
		Start:   start & VGA_CURSOR_LINE_MASK,
		End:     end & VGA_CURSOR_LINE_MASK,
		Enabled: start&VGA_CURSOR_DISABLE == 0,
	}
}

func (m *TextModeMachine) Close() error {
	if m.host != nil {
		return m.host.Close()
	}
	return nil
}
