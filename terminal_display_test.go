// terminal_display_test.go - Tests for the tcell front end and ANSI dump

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimDisplay(t *testing.T, w, h int) (*TcellDisplay, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(w, h)
	return NewTcellDisplay(screen), screen
}

func TestTerminal_Tcell_DrawsCells(t *testing.T) {
	display, screen := newSimDisplay(t, 80, 25)
	defer display.Close()

	m := NewEmulatedMachine(GridConfig{})
	m.Grid.SetColors(VGAColorLightBrown, VGAColorBlue)
	m.Grid.WriteString("Hi\n")
	m.Grid.WriteCell(0x03, DefaultAttribute, 79, 24)

	display.Present(m.Text, m.CRTC)

	ch, _, style, _ := screen.GetContent(1, 0)
	if ch != 'i' {
		t.Errorf("(1,0): got %q, want 'i'", ch)
	}
	want := tcell.StyleDefault.
		Foreground(tcell.PaletteColor(vgaToANSI[VGAColorLightBrown])).
		Background(tcell.PaletteColor(vgaToANSI[VGAColorBlue]))
	if style != want {
		t.Errorf("style: got %v, want %v", style, want)
	}
	if ch, _, _, _ := screen.GetContent(79, 24); ch != '♥' {
		t.Errorf("(79,24): got %q, want '♥'", ch)
	}

	x, y, visible := screen.GetCursor()
	if !visible || x != 0 || y != 1 {
		t.Errorf("cursor: got (%d,%d) visible=%v, want (0,1) visible", x, y, visible)
	}
}

func TestTerminal_Tcell_HiddenCursor(t *testing.T) {
	display, screen := newSimDisplay(t, 80, 25)
	defer display.Close()

	m := NewEmulatedMachine(GridConfig{})
	m.Cursor.Disable()
	display.Present(m.Text, m.CRTC)

	if _, _, visible := screen.GetCursor(); visible {
		t.Errorf("cursor visible after Disable")
	}
}

func TestTerminal_Tcell_ClipsSmallScreen(t *testing.T) {
	display, screen := newSimDisplay(t, 20, 5)
	defer display.Close()

	m := NewEmulatedMachine(GridConfig{})
	m.Grid.WriteString(strings.Repeat("x", 30))
	display.Present(m.Text, m.CRTC)

	if ch, _, _, _ := screen.GetContent(19, 0); ch != 'x' {
		t.Errorf("(19,0): got %q, want 'x'", ch)
	}
}

func TestTerminal_DumpPlain(t *testing.T) {
	m := NewEmulatedMachine(GridConfig{})
	m.Grid.WriteString("one\n\nthree   ")

	var buf bytes.Buffer
	cells, _ := m.Snapshot()
	if err := DumpANSI(&buf, cells, false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "one\n\nthree\n" {
		t.Errorf("dump: got %q", got)
	}
}

func TestTerminal_DumpColour(t *testing.T) {
	m := NewEmulatedMachine(GridConfig{})
	m.Grid.SetColors(VGAColorRed, VGAColorBlack)
	m.Grid.WriteString("R")

	var buf bytes.Buffer
	cells, _ := m.Snapshot()
	if err := DumpANSI(&buf, cells, true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\x1b[38;5;1;48;5;0mR\x1b[38;5;7;48;5;0m ") {
		t.Errorf("first row: got %q", out[:40])
	}
	if n := strings.Count(out, "\x1b[0m\n"); n != VGA_TEXT_ROWS {
		t.Errorf("row resets: got %d, want %d", n, VGA_TEXT_ROWS)
	}
}
