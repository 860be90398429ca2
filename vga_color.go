// vga_color.go - Text mode colours, attribute bytes and cell encoding

package main

import "fmt"

// VGAColor is a 4-bit text mode colour index
type VGAColor uint8

const (
	VGAColorBlack VGAColor = iota
	VGAColorBlue
	VGAColorGreen
	VGAColorCyan
	VGAColorRed
	VGAColorMagenta
	VGAColorBrown
	VGAColorLightGrey
	VGAColorDarkGrey
	VGAColorLightBlue
	VGAColorLightGreen
	VGAColorLightCyan
	VGAColorLightRed
	VGAColorLightMagenta
	VGAColorLightBrown
	VGAColorWhite
)

var vgaColorNames = [16]string{
	"black", "blue", "green", "cyan", "red", "magenta", "brown", "light-grey",
	"dark-grey", "light-blue", "light-green", "light-cyan", "light-red",
	"light-magenta", "light-brown", "white",
}

func (c VGAColor) String() string {
	if int(c) < len(vgaColorNames) {
		return vgaColorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Attribute packs a foreground colour (low nibble) and background colour
// (high nibble). Bit 7 is passed through untouched; the hardware decides
// whether it means blink or bright background.
type Attribute uint8

// DefaultAttribute is light grey on black
const DefaultAttribute = Attribute(VGAColorLightGrey) | Attribute(VGAColorBlack)<<4

func MakeAttribute(fg, bg VGAColor) Attribute {
	return Attribute(fg&0x0F) | Attribute(bg&0x0F)<<4
}

func (a Attribute) Foreground() VGAColor {
	return VGAColor(a & 0x0F)
}

func (a Attribute) Background() VGAColor {
	return VGAColor(a>>4) & 0x0F
}

// Cell is one character position: code plus attribute
type Cell struct {
	Char byte
	Attr Attribute
}

// BlankCell returns a space under attr
func BlankCell(attr Attribute) Cell {
	return Cell{Char: TEXT_BLANK, Attr: attr}
}

// Encode returns the 16-bit memory form: attribute high, character low
func (c Cell) Encode() uint16 {
	return uint16(c.Attr)<<8 | uint16(c.Char)
}

func DecodeCell(v uint16) Cell {
	return Cell{Char: byte(v), Attr: Attribute(v >> 8)}
}

// Standard 16-colour DAC palette, 6 bits per component
var vgaTextPalette = [16][3]uint8{
	{0, 0, 0},    // 0: Black
	{0, 0, 42},   // 1: Blue
	{0, 42, 0},   // 2: Green
	{0, 42, 42},  // 3: Cyan
	{42, 0, 0},   // 4: Red
	{42, 0, 42},  // 5: Magenta
	{42, 21, 0},  // 6: Brown
	{42, 42, 42}, // 7: Light Gray
	{21, 21, 21}, // 8: Dark Gray
	{21, 21, 63}, // 9: Light Blue
	{21, 63, 21}, // 10: Light Green
	{21, 63, 63}, // 11: Light Cyan
	{63, 21, 21}, // 12: Light Red
	{63, 21, 63}, // 13: Light Magenta
	{63, 63, 21}, // 14: Yellow
	{63, 63, 63}, // 15: White
}

// Expand6BitTo8Bit maps DAC values 0-63 onto 0-255
func Expand6BitTo8Bit(val uint8) uint8 {
	return (val << 2) | (val >> 4)
}

// PaletteRGBA returns the 8-bit colour for a text mode colour index
func PaletteRGBA(c VGAColor) (uint8, uint8, uint8, uint8) {
	e := vgaTextPalette[c&0x0F]
	return Expand6BitTo8Bit(e[0]), Expand6BitTo8Bit(e[1]), Expand6BitTo8Bit(e[2]), 255
}
