// terminal_display.go - Mirrors the text page onto a tcell screen

package main

import (
	"github.com/gdamore/tcell/v2"
)

// Text mode colour order differs from the ANSI order terminals use
var vgaToANSI = [16]int{0, 4, 2, 6, 1, 5, 3, 7, 8, 12, 10, 14, 9, 13, 11, 15}

// TcellDisplay draws cells and the hardware cursor into a terminal
type TcellDisplay struct {
	screen tcell.Screen
}

func NewTcellDisplay(screen tcell.Screen) *TcellDisplay {
	return &TcellDisplay{screen: screen}
}

// OpenTcellDisplay initialises the controlling terminal
func OpenTcellDisplay() (*TcellDisplay, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, &VideoError{Operation: "terminal open", Details: "no screen", Err: err}
	}
	if err := screen.Init(); err != nil {
		return nil, &VideoError{Operation: "terminal open", Details: "init", Err: err}
	}
	return NewTcellDisplay(screen), nil
}

func attributeStyle(attr Attribute) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(vgaToANSI[attr.Foreground()])).
		Background(tcell.PaletteColor(vgaToANSI[attr.Background()]))
}

// Draw copies the page and cursor into the screen and shows it. Cells that
// do not fit the terminal are clipped.
func (d *TcellDisplay) Draw(cells []uint16, cursor CursorState) {
	w, h := d.screen.Size()
	for row := 0; row < VGA_TEXT_ROWS && row < h; row++ {
		for col := 0; col < VGA_TEXT_COLS && col < w; col++ {
			idx := row*VGA_TEXT_COLS + col
			if idx >= len(cells) {
				continue
			}
			c := DecodeCell(cells[idx])
			d.screen.SetContent(col, row, glyphRune(c.Char), nil, attributeStyle(c.Attr))
		}
	}

	if cursor.Enabled && cursor.Row < VGA_TEXT_ROWS && cursor.Start <= cursor.End {
		if cursor.End-cursor.Start >= VGA_FONT_HEIGHT/2 {
			d.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
		} else {
			d.screen.SetCursorStyle(tcell.CursorStyleSteadyUnderline)
		}
		d.screen.ShowCursor(cursor.Column, cursor.Row)
	} else {
		d.screen.HideCursor()
	}
	d.screen.Show()
}

// Present draws straight from a surface and CRTC
func (d *TcellDisplay) Present(s TextSurface, crtc *CRTCDevice) {
	var cursor CursorState
	if crtc != nil {
		cursor = crtc.CursorState()
	}
	d.Draw(snapshotSurface(s), cursor)
}

func (d *TcellDisplay) Close() {
	d.screen.Fini()
}
