// grid_buffer.go - 80x25 text grid with a logical write cursor

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
grid_buffer.go - Text Grid Output Engine

GridBuffer owns the 80x25 page and the logical cursor. It writes straight
through a TextSurface (the emulated buffer or the mapped 0xB8000 window);
there is no shadow copy.

Character flow for PutCharacter:
1. Newline: column 0, next row. Nothing is written.
2. Otherwise the character lands at the cursor, then the cursor advances.
   Running off column 79 wraps to column 0 of the next row.
3. Landing on the last row with a non-zero column scrolls the page up one
   row and pulls the cursor back a row. A wrap that lands on column 0 of
   the last row does not scroll.
4. Advancing past the last row (newline or wrap on row 24) scrolls instead,
   so the cursor never leaves the page.
5. The hardware cursor is moved to the final position.
*/

package main

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrInvalidPosition is returned for cell coordinates off the page
var ErrInvalidPosition = errors.New("invalid position")

// ScrollPolicy decides what the row exposed by a scroll holds
type ScrollPolicy int

const (
	// ScrollClearBottom blanks the last row under the current attribute
	ScrollClearBottom ScrollPolicy = iota
	// ScrollKeepBottom leaves the last row as it was, so it reappears
	// duplicated on the row above until overwritten
	ScrollKeepBottom
)

func (p ScrollPolicy) String() string {
	switch p {
	case ScrollClearBottom:
		return "clear"
	case ScrollKeepBottom:
		return "keep"
	}
	return fmt.Sprintf("ScrollPolicy(%d)", int(p))
}

// ParseScrollPolicy accepts "clear" or "keep"
func ParseScrollPolicy(s string) (ScrollPolicy, error) {
	switch strings.ToLower(s) {
	case "clear", "":
		return ScrollClearBottom, nil
	case "keep":
		return ScrollKeepBottom, nil
	}
	return 0, fmt.Errorf("unknown scroll policy %q (want clear or keep)", s)
}

// GridConfig tunes grid behaviour
type GridConfig struct {
	ScrollPolicy ScrollPolicy
	// BatchCursor moves the hardware cursor once per WriteSequence
	// instead of once per character.
	BatchCursor bool
}

// GridBuffer is the text page plus its logical cursor
type GridBuffer struct {
	mutex   sync.Mutex
	surface TextSurface
	cursor  CursorMover
	config  GridConfig

	cursorRow    int
	cursorColumn int
	attr         Attribute

	scrolls uint64
}

// NewGridBuffer binds a grid to its surface. cursor may be nil when there
// is no hardware cursor to follow.
func NewGridBuffer(surface TextSurface, cursor CursorMover, config GridConfig) *GridBuffer {
	return &GridBuffer{
		surface: surface,
		cursor:  cursor,
		config:  config,
		attr:    DefaultAttribute,
	}
}

// Initialize homes the cursor, restores the default attribute and blanks
// every cell.
func (g *GridBuffer) Initialize() {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.cursorRow = 0
	g.cursorColumn = 0
	g.attr = DefaultAttribute

	blank := BlankCell(g.attr).Encode()
	for i := 0; i < VGA_TEXT_CELLS; i++ {
		g.surface.StoreCell(i, blank)
	}
	g.syncCursor()
}

// SetAttribute changes the attribute for characters written from now on
func (g *GridBuffer) SetAttribute(attr Attribute) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.attr = attr
}

func (g *GridBuffer) Attribute() Attribute {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.attr
}

// SetColors is SetAttribute for a colour pair
func (g *GridBuffer) SetColors(fg, bg VGAColor) {
	g.SetAttribute(MakeAttribute(fg, bg))
}

// WriteCell stores ch/attr at (column, row) without moving the cursor
func (g *GridBuffer) WriteCell(ch byte, attr Attribute, column, row int) error {
	if err := checkPosition(column, row); err != nil {
		return err
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.storeCell(Cell{Char: ch, Attr: attr}, column, row)
	return nil
}

// CellAt reads the cell at (column, row)
func (g *GridBuffer) CellAt(column, row int) (Cell, error) {
	if err := checkPosition(column, row); err != nil {
		return Cell{}, err
	}
	return DecodeCell(g.surface.LoadCell(row*VGA_TEXT_COLS + column)), nil
}

func checkPosition(column, row int) error {
	if column < 0 || column >= VGA_TEXT_COLS || row < 0 || row >= VGA_TEXT_ROWS {
		return fmt.Errorf("cell (%d,%d): %w", column, row, ErrInvalidPosition)
	}
	return nil
}

func (g *GridBuffer) storeCell(c Cell, column, row int) {
	g.surface.StoreCell(row*VGA_TEXT_COLS+column, c.Encode())
}

// Scroll shifts every row up by one, dropping row 0
func (g *GridBuffer) Scroll() {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.scroll()
}

func (g *GridBuffer) scroll() {
	for i := 0; i < (VGA_TEXT_ROWS-1)*VGA_TEXT_COLS; i++ {
		g.surface.StoreCell(i, g.surface.LoadCell(i+VGA_TEXT_COLS))
	}
	if g.config.ScrollPolicy == ScrollClearBottom {
		blank := BlankCell(g.attr).Encode()
		last := (VGA_TEXT_ROWS - 1) * VGA_TEXT_COLS
		for i := last; i < VGA_TEXT_CELLS; i++ {
			g.surface.StoreCell(i, blank)
		}
	}
	g.scrolls++
}

// PutCharacter emits one byte at the cursor
func (g *GridBuffer) PutCharacter(ch byte) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.put(ch)
	g.syncCursor()
}

func (g *GridBuffer) put(ch byte) {
	if ch == TEXT_NEWLINE {
		g.cursorColumn = 0
		g.nextRow()
		return
	}

	column, row := g.cursorColumn, g.cursorRow

	g.cursorColumn++
	if g.cursorColumn == VGA_TEXT_COLS {
		g.cursorColumn = 0
		if g.nextRow() {
			row--
		}
	}

	if g.cursorRow == VGA_TEXT_ROWS-1 && g.cursorColumn != 0 {
		g.scroll()
		g.cursorRow--
		row--
	}

	g.storeCell(Cell{Char: ch, Attr: g.attr}, column, row)
}

// nextRow moves the cursor down one row, scrolling instead when it is
// already on the last row. Reports whether it scrolled.
func (g *GridBuffer) nextRow() bool {
	if g.cursorRow == VGA_TEXT_ROWS-1 {
		g.scroll()
		return true
	}
	g.cursorRow++
	return false
}

// WriteSequence emits each byte in order
func (g *GridBuffer) WriteSequence(data []byte) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	for _, ch := range data {
		g.put(ch)
		if !g.config.BatchCursor {
			g.syncCursor()
		}
	}
	if g.config.BatchCursor && len(data) > 0 {
		g.syncCursor()
	}
}

// Write implements io.Writer. It never fails.
func (g *GridBuffer) Write(p []byte) (int, error) {
	g.WriteSequence(p)
	return len(p), nil
}

// WriteString implements io.StringWriter
func (g *GridBuffer) WriteString(s string) (int, error) {
	return g.Write([]byte(s))
}

func (g *GridBuffer) syncCursor() {
	if g.cursor != nil {
		g.cursor.MoveTo(g.cursorColumn, g.cursorRow)
	}
}

// Cursor returns the logical cursor column and row
func (g *GridBuffer) Cursor() (int, int) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.cursorColumn, g.cursorRow
}

// ScrollCount is the number of scrolls since the grid was created
func (g *GridBuffer) ScrollCount() uint64 {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.scrolls
}

// RowText returns the characters of one row, trailing blanks kept
func (g *GridBuffer) RowText(row int) (string, error) {
	if err := checkPosition(0, row); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(VGA_TEXT_COLS)
	for col := 0; col < VGA_TEXT_COLS; col++ {
		sb.WriteByte(byte(g.surface.LoadCell(row*VGA_TEXT_COLS + col)))
	}
	return sb.String(), nil
}

// PageText returns the page as rows joined by newlines, trailing blanks
// trimmed from each row.
func (g *GridBuffer) PageText() string {
	return pageText(g.surface)
}

func pageText(s TextSurface) string {
	cells := snapshotSurface(s)
	lines := make([]string, VGA_TEXT_ROWS)
	for row := range lines {
		b := make([]byte, VGA_TEXT_COLS)
		for col := range b {
			b[col] = byte(cells[row*VGA_TEXT_COLS+col])
		}
		lines[row] = strings.TrimRight(string(b), " \x00")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
