// text_memory.go - Emulated 0xB8000 text buffer

package main

import (
	"encoding/binary"
	"sync"
)

// TextSurface is anything the grid can write cells through. Index is
// row*VGA_TEXT_COLS + column; values are attribute<<8 | character.
type TextSurface interface {
	Cells() int
	LoadCell(index int) uint16
	StoreCell(index int, value uint16)
}

// TextMemory stands in for the physical text buffer. Cells are stored
// little-endian so byte-level reads at VGA_TEXT_WINDOW+2n see the
// character and VGA_TEXT_WINDOW+2n+1 the attribute, as on real hardware.
type TextMemory struct {
	mutex sync.RWMutex
	buf   [VGA_TEXT_BYTES]uint8
}

func NewTextMemory() *TextMemory {
	return &TextMemory{}
}

func (m *TextMemory) Cells() int {
	return VGA_TEXT_CELLS
}

func (m *TextMemory) LoadCell(index int) uint16 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if index < 0 || index >= VGA_TEXT_CELLS {
		return 0
	}
	return binary.LittleEndian.Uint16(m.buf[index*2:])
}

func (m *TextMemory) StoreCell(index int, value uint16) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if index < 0 || index >= VGA_TEXT_CELLS {
		return
	}
	binary.LittleEndian.PutUint16(m.buf[index*2:], value)
}

// HandleTextRead handles byte reads from the text window
func (m *TextMemory) HandleTextRead(addr uint32) uint32 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	offset := addr - VGA_TEXT_WINDOW
	if addr >= VGA_TEXT_WINDOW && offset < VGA_TEXT_BYTES {
		return uint32(m.buf[offset])
	}
	return 0
}

// HandleTextWrite handles byte writes to the text window
func (m *TextMemory) HandleTextWrite(addr uint32, value uint32) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	offset := addr - VGA_TEXT_WINDOW
	if addr >= VGA_TEXT_WINDOW && offset < VGA_TEXT_BYTES {
		m.buf[offset] = uint8(value)
	}
}

// Snapshot copies every cell out under one lock
func (m *TextMemory) Snapshot() []uint16 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	out := make([]uint16, VGA_TEXT_CELLS)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(m.buf[i*2:])
	}
	return out
}

// snapshotSurface reads a whole page from any surface
func snapshotSurface(s TextSurface) []uint16 {
	if m, ok := s.(*TextMemory); ok {
		return m.Snapshot()
	}
	out := make([]uint16, s.Cells())
	for i := range out {
		out[i] = s.LoadCell(i)
	}
	return out
}
