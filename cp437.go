// cp437.go - Character ROM code page for host-side display

package main

import "golang.org/x/text/encoding/charmap"

// The VGA character ROM draws pictures for the control range; the code page
// table treats those bytes as C0 controls, so they are mapped here.
var cp437Controls = [32]rune{
	' ', '☺', '☻', '♥', '♦', '♣', '♠', '•', '◘', '○', '◙', '♂', '♀', '♪', '♫', '☼',
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨', '↑', '↓', '→', '←', '∟', '↔', '▲', '▼',
}

// glyphRune returns the rune the character ROM shows for ch
func glyphRune(ch byte) rune {
	switch {
	case ch < 0x20:
		return cp437Controls[ch]
	case ch == 0x7F:
		return '⌂'
	}
	return charmap.CodePage437.DecodeByte(ch)
}
