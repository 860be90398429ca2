// script_host.go - Lua scripting for the text console

package main

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// ScriptHost runs Lua programs against a machine. Scripts see one global
// table, vga, with the output calls and the colour constants.
type ScriptHost struct {
	machine *TextModeMachine
}

func NewScriptHost(machine *TextModeMachine) *ScriptHost {
	return &ScriptHost{machine: machine}
}

// RunFile executes a script file
func (h *ScriptHost) RunFile(path string) error {
	L := h.newState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	return nil
}

// RunString executes script source
func (h *ScriptHost) RunString(src string) error {
	L := h.newState()
	defer L.Close()

	if err := L.DoString(src); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

func (h *ScriptHost) newState() *lua.LState {
	L := lua.NewState()
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"write":  h.luaWrite,
		"putc":   h.luaPutc,
		"color":  h.luaColor,
		"attr":   h.luaAttr,
		"cell":   h.luaCell,
		"scroll": h.luaScroll,
		"clear":  h.luaClear,
		"cursor": h.luaCursor,
		"shape":  h.luaShape,
		"hide":   h.luaHide,
		"move":   h.luaMove,
		"peek":   h.luaPeek,
		"row":    h.luaRow,
	})
	for i, name := range luaColorNames {
		L.SetField(mod, name, lua.LNumber(i))
	}
	L.SetField(mod, "COLS", lua.LNumber(VGA_TEXT_COLS))
	L.SetField(mod, "ROWS", lua.LNumber(VGA_TEXT_ROWS))
	L.SetGlobal("vga", mod)
	return L
}

var luaColorNames = [16]string{
	"BLACK", "BLUE", "GREEN", "CYAN", "RED", "MAGENTA", "BROWN", "LIGHT_GREY",
	"DARK_GREY", "LIGHT_BLUE", "LIGHT_GREEN", "LIGHT_CYAN", "LIGHT_RED",
	"LIGHT_MAGENTA", "LIGHT_BROWN", "WHITE",
}

func checkByte(L *lua.LState, n int) byte {
	v := L.CheckInt(n)
	if v < 0 || v > 0xFF {
		L.ArgError(n, fmt.Sprintf("%d does not fit in a byte", v))
	}
	return byte(v)
}

// vga.write(s)
func (h *ScriptHost) luaWrite(L *lua.LState) int {
	h.machine.Grid.WriteSequence([]byte(L.CheckString(1)))
	return 0
}

// vga.putc(code)
func (h *ScriptHost) luaPutc(L *lua.LState) int {
	h.machine.Grid.PutCharacter(checkByte(L, 1))
	return 0
}

// vga.color(fg, bg)
func (h *ScriptHost) luaColor(L *lua.LState) int {
	fg := checkByte(L, 1)
	bg := byte(L.OptInt(2, int(VGAColorBlack)))
	h.machine.Grid.SetColors(VGAColor(fg), VGAColor(bg))
	return 0
}

// vga.attr([a]) sets the raw attribute byte and returns the previous one
func (h *ScriptHost) luaAttr(L *lua.LState) int {
	prev := h.machine.Grid.Attribute()
	if L.GetTop() >= 1 {
		h.machine.Grid.SetAttribute(Attribute(checkByte(L, 1)))
	}
	L.Push(lua.LNumber(prev))
	return 1
}

// vga.cell(ch, attr, col, row)
func (h *ScriptHost) luaCell(L *lua.LState) int {
	ch := checkByte(L, 1)
	attr := checkByte(L, 2)
	if err := h.machine.Grid.WriteCell(ch, Attribute(attr), L.CheckInt(3), L.CheckInt(4)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (h *ScriptHost) luaScroll(L *lua.LState) int {
	h.machine.Grid.Scroll()
	return 0
}

func (h *ScriptHost) luaClear(L *lua.LState) int {
	h.machine.Grid.Initialize()
	return 0
}

// vga.cursor() returns col, row
func (h *ScriptHost) luaCursor(L *lua.LState) int {
	col, row := h.machine.Grid.Cursor()
	L.Push(lua.LNumber(col))
	L.Push(lua.LNumber(row))
	return 2
}

// vga.shape(start, end)
func (h *ScriptHost) luaShape(L *lua.LState) int {
	start := checkByte(L, 1)
	end := checkByte(L, 2)
	h.machine.Cursor.SetShape(start&VGA_CURSOR_LINE_MASK, end&VGA_CURSOR_LINE_MASK)
	return 0
}

func (h *ScriptHost) luaHide(L *lua.LState) int {
	h.machine.Cursor.Disable()
	return 0
}

// vga.move(col, row) moves only the hardware cursor
func (h *ScriptHost) luaMove(L *lua.LState) int {
	col, row := L.CheckInt(1), L.CheckInt(2)
	if err := checkPosition(col, row); err != nil {
		L.RaiseError("%v", err)
	}
	h.machine.Cursor.MoveTo(col, row)
	return 0
}

// vga.peek(addr) reads one byte of the text window at its physical address
func (h *ScriptHost) luaPeek(L *lua.LState) int {
	addr := L.CheckInt(1)
	offset := addr - VGA_TEXT_WINDOW
	if offset < 0 || offset >= VGA_TEXT_BYTES {
		L.ArgError(1, fmt.Sprintf("$%X is outside the text window", addr))
	}
	if mem, ok := h.machine.Text.(*TextMemory); ok {
		L.Push(lua.LNumber(mem.HandleTextRead(uint32(addr))))
		return 1
	}
	v := h.machine.Text.LoadCell(offset / 2)
	if offset%2 == 1 {
		v >>= 8
	}
	L.Push(lua.LNumber(v & 0xFF))
	return 1
}

// vga.row(n) returns the text of row n
func (h *ScriptHost) luaRow(L *lua.LState) int {
	text, err := h.machine.Grid.RowText(L.CheckInt(1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LString(text))
	return 1
}
