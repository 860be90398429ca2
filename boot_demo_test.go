// boot_demo_test.go - Tests for the boot console sequence

package main

import (
	"strings"
	"testing"
)

func TestBootDemo_FinalPage(t *testing.T) {
	m := NewEmulatedMachine(GridConfig{})
	RunBootDemo(m.Grid, m.Cursor)

	rows := strings.Split(m.Grid.PageText(), "\n")
	want := map[int]string{
		0:  "Loading Kernel Main...                    Done",
		1:  "Creating TTY...",
		2:  "Test_Line 1",
		5:  "Test_Line 4",
		6:  bootLongLine[:VGA_TEXT_COLS],
		7:  bootLongLine[VGA_TEXT_COLS:],
		8:  "Test_Line 6",
		19: "Test_Line 17",
		20: "                                          Done",
		21: "Hello there!",
	}
	for row, text := range want {
		if row >= len(rows) {
			t.Fatalf("page has %d rows, want row %d", len(rows), row)
		}
		if rows[row] != text {
			t.Errorf("row %d: got %q, want %q", row, rows[row], text)
		}
	}

	col, row := m.Grid.Cursor()
	if col != 0 || row != 22 {
		t.Errorf("cursor: got (%d,%d), want (0,22)", col, row)
	}
	if m.Grid.ScrollCount() != 0 {
		t.Errorf("scrolls: got %d, want 0", m.Grid.ScrollCount())
	}
}

func TestBootDemo_Colours(t *testing.T) {
	m := NewEmulatedMachine(GridConfig{})
	RunBootDemo(m.Grid, m.Cursor)

	cyan := MakeAttribute(VGAColorCyan, VGAColorBlack)
	blue := MakeAttribute(VGAColorLightBlue, VGAColorBlack)

	checks := []struct {
		col, row int
		attr     Attribute
	}{
		{0, 0, DefaultAttribute},
		{0, 2, cyan},
		{25, 7, cyan},
		{0, 19, cyan},
		{42, 20, DefaultAttribute},
		{0, 21, blue},
	}
	for _, c := range checks {
		cell, err := m.Grid.CellAt(c.col, c.row)
		if err != nil {
			t.Fatal(err)
		}
		if cell.Attr != c.attr {
			t.Errorf("(%d,%d) attribute: got 0x%02X, want 0x%02X", c.col, c.row, cell.Attr, c.attr)
		}
	}
	if m.Grid.Attribute() != DefaultAttribute {
		t.Errorf("attribute left at 0x%02X", m.Grid.Attribute())
	}
}

func TestBootDemo_HardwareCursor(t *testing.T) {
	m := NewEmulatedMachine(GridConfig{})
	RunBootDemo(m.Grid, m.Cursor)

	state := m.CRTC.CursorState()
	if state.Start != 12 || state.End != 15 || !state.Enabled {
		t.Errorf("shape: got %+v, want enabled 12-15", state)
	}
	// The parked position is overtaken by the grid's next write
	if state.Column != 0 || state.Row != 22 {
		t.Errorf("position: got (%d,%d), want (0,22)", state.Column, state.Row)
	}
}
