// terminal_dump.go - One-shot dump of the text page to a stream

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// DumpANSI writes the page row by row. With colour on, every attribute
// change emits a 256-colour SGR sequence; otherwise rows are plain text
// with trailing blanks trimmed.
func DumpANSI(w io.Writer, cells []uint16, colour bool) error {
	if !colour {
		_, err := io.WriteString(w, pageTextFromCells(cells)+"\n")
		return err
	}

	bw := bufio.NewWriter(w)
	for row := 0; row < VGA_TEXT_ROWS; row++ {
		last := -1
		for col := 0; col < VGA_TEXT_COLS; col++ {
			idx := row*VGA_TEXT_COLS + col
			if idx >= len(cells) {
				break
			}
			c := DecodeCell(cells[idx])
			if int(c.Attr) != last {
				fmt.Fprintf(bw, "\x1b[38;5;%d;48;5;%dm", vgaToANSI[c.Attr.Foreground()], vgaToANSI[c.Attr.Background()])
				last = int(c.Attr)
			}
			bw.WriteRune(glyphRune(c.Char))
		}
		bw.WriteString("\x1b[0m\n")
	}
	return bw.Flush()
}

func pageTextFromCells(cells []uint16) string {
	mem := NewTextMemory()
	for i, v := range cells {
		mem.StoreCell(i, v)
	}
	return pageText(mem)
}

// stdoutTerminal reports whether stdout is a terminal and its width
func stdoutTerminal() (bool, int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return false, 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return true, 0
	}
	return true, w
}
