//go:build linux

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHardware_MappedTextMemory_Layout(t *testing.T) {
	m := &MappedTextMemory{mem: make([]byte, VGA_TEXT_PAGE)}
	g := NewGridBuffer(m, nil, GridConfig{})
	g.Initialize()
	g.WriteString("Ok")

	if m.mem[0] != 'O' || m.mem[1] != byte(DefaultAttribute) || m.mem[2] != 'k' {
		t.Errorf("bytes: got % X", m.mem[:4])
	}
	if m.mem[VGA_TEXT_BYTES] != 0 {
		t.Errorf("write past the page into the mapping slack")
	}
}

func TestHardware_DevPortIO_FileOffsets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "port")
	if err := os.WriteFile(path, make([]byte, 0x400), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		t.Fatal(err)
	}
	ports := &DevPortIO{file: f}
	defer f.Close()

	NewCursorPort(ports).MoveTo(0, 1)

	if got := ports.In(VGA_PORT_CRTC_INDEX); got != VGA_CRTC_CURSOR_HI {
		t.Errorf("index byte: got 0x%02X, want 0x%02X", got, VGA_CRTC_CURSOR_HI)
	}
	if got := ports.In(VGA_PORT_CRTC_DATA); got != 0 {
		t.Errorf("data byte: got 0x%02X, want 0", got)
	}
	if ports.Err() != nil {
		t.Errorf("unexpected error: %v", ports.Err())
	}

	f.Close()
	if got := ports.In(VGA_PORT_CRTC_DATA); got != PORT_FLOAT {
		t.Errorf("read after close: got 0x%02X, want 0x%02X", got, PORT_FLOAT)
	}
	if ports.Err() == nil {
		t.Errorf("closed file error not recorded")
	}
}
