// video_text_render.go - Paints the text page into an RGBA frame

package main

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Glyph placement inside the 8x16 character cell
const (
	glyphOffsetX   = 0
	glyphBaselineY = 12
)

// TextRenderer turns cells plus cursor state into a 640x400 frame
type TextRenderer struct {
	face    font.Face
	palette [16]*image.Uniform
}

func NewTextRenderer() *TextRenderer {
	r := &TextRenderer{face: basicfont.Face7x13}
	for i := range r.palette {
		cr, cg, cb, ca := PaletteRGBA(VGAColor(i))
		r.palette[i] = image.NewUniform(color.RGBA{R: cr, G: cg, B: cb, A: ca})
	}
	return r
}

// Render paints every cell, then the cursor if it is enabled and on the page
func (r *TextRenderer) Render(cells []uint16, cursor CursorState) *image.RGBA {
	fb := image.NewRGBA(image.Rect(0, 0, VGA_TEXT_PIXEL_WIDTH, VGA_TEXT_PIXEL_HEIGHT))

	for row := 0; row < VGA_TEXT_ROWS; row++ {
		for col := 0; col < VGA_TEXT_COLS; col++ {
			idx := row*VGA_TEXT_COLS + col
			if idx >= len(cells) {
				continue
			}
			r.drawCell(fb, DecodeCell(cells[idx]), col, row)
		}
	}

	if cursor.Enabled && cursor.Row < VGA_TEXT_ROWS && cursor.Start <= cursor.End {
		idx := cursor.Row*VGA_TEXT_COLS + cursor.Column
		if idx < len(cells) {
			r.drawCursor(fb, DecodeCell(cells[idx]).Attr, cursor)
		}
	}
	return fb
}

// RenderSurface is Render over a live surface and CRTC
func (r *TextRenderer) RenderSurface(s TextSurface, crtc *CRTCDevice) *image.RGBA {
	var cursor CursorState
	if crtc != nil {
		cursor = crtc.CursorState()
	}
	return r.Render(snapshotSurface(s), cursor)
}

func cellRect(col, row int) image.Rectangle {
	x := col * VGA_FONT_WIDTH
	y := row * VGA_FONT_HEIGHT
	return image.Rect(x, y, x+VGA_FONT_WIDTH, y+VGA_FONT_HEIGHT)
}

func (r *TextRenderer) drawCell(fb *image.RGBA, c Cell, col, row int) {
	rect := cellRect(col, row)
	draw.Draw(fb, rect, r.palette[c.Attr.Background()], image.Point{}, draw.Src)

	if c.Char == 0 || c.Char == TEXT_BLANK {
		return
	}
	dot := fixed.P(rect.Min.X+glyphOffsetX, rect.Min.Y+glyphBaselineY)
	dr, mask, maskp, _, ok := r.face.Glyph(dot, glyphRune(c.Char))
	if !ok {
		return
	}
	draw.DrawMask(fb, dr, r.palette[c.Attr.Foreground()], image.Point{}, mask, maskp, draw.Over)
}

func (r *TextRenderer) drawCursor(fb *image.RGBA, attr Attribute, cursor CursorState) {
	rect := cellRect(cursor.Column, cursor.Row)
	end := int(cursor.End)
	if end > VGA_FONT_HEIGHT-1 {
		end = VGA_FONT_HEIGHT - 1
	}
	lines := image.Rect(rect.Min.X, rect.Min.Y+int(cursor.Start), rect.Max.X, rect.Min.Y+end+1)
	draw.Draw(fb, lines.Intersect(rect), r.palette[attr.Foreground()], image.Point{}, draw.Src)
}
