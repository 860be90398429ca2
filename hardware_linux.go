//go:build linux

// hardware_linux.go - Real text buffer and CRTC ports via /dev/mem and /dev/port

package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// MappedTextMemory is the physical 0xB8000 window mapped into the process
type MappedTextMemory struct {
	mem []byte
}

func (m *MappedTextMemory) Cells() int {
	return VGA_TEXT_CELLS
}

func (m *MappedTextMemory) LoadCell(index int) uint16 {
	if index < 0 || index >= VGA_TEXT_CELLS {
		return 0
	}
	return binary.LittleEndian.Uint16(m.mem[index*2:])
}

func (m *MappedTextMemory) StoreCell(index int, value uint16) {
	if index < 0 || index >= VGA_TEXT_CELLS {
		return
	}
	binary.LittleEndian.PutUint16(m.mem[index*2:], value)
}

// DevPortIO performs byte port I/O through /dev/port, where the file
// offset is the port number. The first failure is kept; later accesses
// still run.
type DevPortIO struct {
	mutex sync.Mutex
	file  *os.File
	err   error
}

func (p *DevPortIO) In(port uint16) byte {
	var b [1]byte
	if _, err := p.file.ReadAt(b[:], int64(port)); err != nil {
		p.fail(fmt.Errorf("in $%04X: %w", port, err))
		return PORT_FLOAT
	}
	return b[0]
}

func (p *DevPortIO) Out(port uint16, value byte) {
	if _, err := p.file.WriteAt([]byte{value}, int64(port)); err != nil {
		p.fail(fmt.Errorf("out $%04X: %w", port, err))
	}
}

func (p *DevPortIO) fail(err error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.err == nil {
		p.err = err
		fmt.Fprintf(os.Stderr, "hardware: %v\n", err)
	}
}

// Err returns the first port access failure
func (p *DevPortIO) Err() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.err
}

// HostHardware owns the mapped text buffer and the port file
type HostHardware struct {
	Text  *MappedTextMemory
	Ports *DevPortIO

	memFile *os.File
}

// OpenHostHardware maps the real text buffer. Needs root and a machine
// that is actually in VGA text mode.
func OpenHostHardware() (*HostHardware, error) {
	memFile, err := os.OpenFile("/dev/mem", os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("open /dev/mem: %w", err)
	}
	mem, err := unix.Mmap(int(memFile.Fd()), VGA_TEXT_WINDOW, VGA_TEXT_PAGE, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		memFile.Close()
		return nil, fmt.Errorf("map text buffer at $%05X: %w", VGA_TEXT_WINDOW, err)
	}
	portFile, err := os.OpenFile("/dev/port", os.O_RDWR, 0)
	if err != nil {
		unix.Munmap(mem)
		memFile.Close()
		return nil, fmt.Errorf("open /dev/port: %w", err)
	}
	return &HostHardware{
		Text:    &MappedTextMemory{mem: mem},
		Ports:   &DevPortIO{file: portFile},
		memFile: memFile,
	}, nil
}

func (h *HostHardware) Close() error {
	var first error
	if err := unix.Munmap(h.Text.mem); err != nil {
		first = err
	}
	if err := h.Ports.file.Close(); err != nil && first == nil {
		first = err
	}
	if err := h.memFile.Close(); err != nil && first == nil {
		first = err
	}
	return first
}
