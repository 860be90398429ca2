// script_host_test.go - Tests for the Lua script host

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScript_WriteAndColours(t *testing.T) {
	m := NewEmulatedMachine(GridConfig{})
	host := NewScriptHost(m)

	err := host.RunString(`
		vga.color(vga.LIGHT_GREEN, vga.BLACK)
		vga.write("ok\n")
		vga.putc(65)
	`)
	if err != nil {
		t.Fatalf("RunString: %v", err)
	}

	if got := m.Grid.PageText(); got != "ok\nA" {
		t.Errorf("page: got %q", got)
	}
	c, _ := m.Grid.CellAt(0, 0)
	if c.Attr != MakeAttribute(VGAColorLightGreen, VGAColorBlack) {
		t.Errorf("attribute: got 0x%02X", c.Attr)
	}
}

func TestScript_CursorAndRow(t *testing.T) {
	m := NewEmulatedMachine(GridConfig{})
	host := NewScriptHost(m)

	err := host.RunString(`
		vga.write("abc\nde")
		local col, row = vga.cursor()
		assert(col == 2 and row == 1, "cursor " .. col .. "," .. row)
		assert(vga.row(0):sub(1, 3) == "abc")
		assert(vga.COLS == 80 and vga.ROWS == 25)
		assert(vga.peek(0xB8000) == string.byte("a"))
		assert(vga.peek(0xB8001) == 0x07)
	`)
	if err != nil {
		t.Fatalf("RunString: %v", err)
	}
}

func TestScript_AttrReturnsPrevious(t *testing.T) {
	m := NewEmulatedMachine(GridConfig{})
	host := NewScriptHost(m)

	err := host.RunString(`
		local prev = vga.attr(0x1E)
		assert(prev == 0x07)
		assert(vga.attr() == 0x1E)
	`)
	if err != nil {
		t.Fatalf("RunString: %v", err)
	}
	if m.Grid.Attribute() != 0x1E {
		t.Errorf("attribute: got 0x%02X, want 0x1E", m.Grid.Attribute())
	}
}

func TestScript_ShapeHideMove(t *testing.T) {
	m := NewEmulatedMachine(GridConfig{})
	host := NewScriptHost(m)

	if err := host.RunString(`vga.shape(0, 15) vga.move(10, 3)`); err != nil {
		t.Fatal(err)
	}
	state := m.CRTC.CursorState()
	if state.Start != 0 || state.End != 15 || state.Column != 10 || state.Row != 3 {
		t.Errorf("cursor state: got %+v", state)
	}

	if err := host.RunString(`vga.hide()`); err != nil {
		t.Fatal(err)
	}
	if m.CRTC.CursorEnabled() {
		t.Errorf("cursor still enabled")
	}
}

func TestScript_Errors(t *testing.T) {
	m := NewEmulatedMachine(GridConfig{})
	host := NewScriptHost(m)

	cases := map[string]string{
		"bad cell": `vga.cell(65, 7, 80, 0)`,
		"bad move": `vga.move(0, 25)`,
		"bad byte": `vga.putc(300)`,
		"bad peek": `vga.peek(0xB0000)`,
		"bad row":  `vga.row(-1)`,
		"syntax":   `vga.write(`,
	}
	for name, src := range cases {
		if err := host.RunString(src); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
	if got := m.Grid.PageText(); got != "" {
		t.Errorf("failed scripts changed the page: %q", got)
	}
}

func TestScript_ScrollAndClear(t *testing.T) {
	m := NewEmulatedMachine(GridConfig{})
	host := NewScriptHost(m)

	if err := host.RunString(`vga.write("\nsecond") vga.scroll()`); err != nil {
		t.Fatal(err)
	}
	if got := m.Grid.PageText(); got != "second" {
		t.Errorf("after scroll: got %q", got)
	}
	if err := host.RunString(`vga.clear()`); err != nil {
		t.Fatal(err)
	}
	if got := m.Grid.PageText(); got != "" {
		t.Errorf("after clear: got %q", got)
	}
}

func TestScript_RunFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.lua")
	if err := os.WriteFile(path, []byte(`vga.write("from file")`), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewEmulatedMachine(GridConfig{})
	if err := NewScriptHost(m).RunFile(path); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if got := m.Grid.PageText(); got != "from file" {
		t.Errorf("page: got %q", got)
	}

	err := NewScriptHost(m).RunFile(filepath.Join(dir, "missing.lua"))
	if err == nil || !strings.Contains(err.Error(), "missing.lua") {
		t.Errorf("missing file: got %v", err)
	}
}
