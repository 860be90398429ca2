// cursor_port.go - Hardware cursor driver over the CRTC index/data pair

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

/*
cursor_port.go - Hardware Cursor Port

The blinking cursor is controlled through four CRTC registers reached via
the index/data port pair:

  0x0A  cursor start scanline (bit 5 = disable)
  0x0B  cursor end scanline
  0x0E  cursor location, high byte
  0x0F  cursor location, low byte

Every access is select-then-touch. WriteIndexed and ReadIndexed hold the
port lock across both halves so the pair cannot be split by another caller.
An interrupt handler sharing the real device still has to be masked by the
caller around the call.
*/

package main

import "sync"

// CursorMover is the one thing the grid needs from the cursor hardware
type CursorMover interface {
	MoveTo(column, row int)
}

// CursorPort drives the hardware cursor. It knows nothing about the grid.
type CursorPort struct {
	mutex sync.Mutex
	io    PortIO

	indexPort uint16
	dataPort  uint16

	lastOffset uint16
	moves      uint64
}

func NewCursorPort(io PortIO) *CursorPort {
	return &CursorPort{
		io:        io,
		indexPort: VGA_PORT_CRTC_INDEX,
		dataPort:  VGA_PORT_CRTC_DATA,
	}
}

// WriteIndexed selects a CRTC register and writes it
func (p *CursorPort) WriteIndexed(index, value uint8) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.writeIndexedLocked(index, value)
}

// ReadIndexed selects a CRTC register and reads it
func (p *CursorPort) ReadIndexed(index uint8) uint8 {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.readIndexedLocked(index)
}

func (p *CursorPort) writeIndexedLocked(index, value uint8) {
	p.io.Out(p.indexPort, index)
	p.io.Out(p.dataPort, value)
}

func (p *CursorPort) readIndexedLocked(index uint8) uint8 {
	p.io.Out(p.indexPort, index)
	return p.io.In(p.dataPort)
}

// SetShape enables the cursor and sets its first and last scanline. The
// reserved high bits of each register are read back and preserved.
func (p *CursorPort) SetShape(start, end uint8) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	cur := p.readIndexedLocked(VGA_CRTC_CURSOR_ST)
	p.io.Out(p.dataPort, (cur&VGA_CURSOR_START_KEEP)|start)

	cur = p.readIndexedLocked(VGA_CRTC_CURSOR_END)
	p.io.Out(p.dataPort, (cur&VGA_CURSOR_END_KEEP)|end)
}

// Disable hides the cursor
func (p *CursorPort) Disable() {
	p.WriteIndexed(VGA_CRTC_CURSOR_ST, VGA_CURSOR_DISABLE)
}

// MoveTo points the hardware cursor at (column, row). Low byte first.
func (p *CursorPort) MoveTo(column, row int) {
	pos := uint16(row*VGA_TEXT_COLS + column)

	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.writeIndexedLocked(VGA_CRTC_CURSOR_LO, uint8(pos&0xFF))
	p.writeIndexedLocked(VGA_CRTC_CURSOR_HI, uint8((pos>>8)&0xFF))
	p.lastOffset = pos
	p.moves++
}

// Position reads the cursor location back from the device
func (p *CursorPort) Position() uint16 {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	lo := p.readIndexedLocked(VGA_CRTC_CURSOR_LO)
	hi := p.readIndexedLocked(VGA_CRTC_CURSOR_HI)
	return uint16(hi)<<8 | uint16(lo)
}

// LastOffset is the offset most recently commanded by MoveTo
func (p *CursorPort) LastOffset() uint16 {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.lastOffset
}

// Moves counts MoveTo calls
func (p *CursorPort) Moves() uint64 {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.moves
}
