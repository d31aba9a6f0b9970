// Package pixel draws the dashboard's cell buffer in an Ebitengine window.
package pixel

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/spacehole-rogue/bridgepanel/internal/render"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

var ink = color.NRGBA{255, 255, 255, 255}

// FontAtlas holds the CP437 glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas generates the atlas at startup. ASCII comes from
// basicfont.Face7x13; box, block and the dashboard's shape glyphs are
// drawn by hand.
func NewFontAtlas() *FontAtlas {
	img := BuildAtlasImage()
	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := 0; code < 256; code++ {
		a.glyphs[code] = eimg.SubImage(glyphRect(code)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a CP437 character code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

func glyphRect(code int) image.Rectangle {
	x := (code % AtlasCols) * GlyphWidth
	y := (code / AtlasCols) * GlyphHeight
	return image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
}

// BuildAtlasImage rasterises every glyph into a 256x256 white-on-clear
// image. It needs no graphics context.
func BuildAtlasImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13
	for code := 0; code < 256; code++ {
		r := glyphRect(code)
		cx, cy := r.Min.X, r.Min.Y
		ch := render.CP437ToUnicode[code]

		if ch >= 32 && ch <= 126 {
			drawFontGlyph(img, face, cx, cy, ch)
			continue
		}
		if bc, ok := boxChars[byte(code)]; ok {
			drawBoxGlyph(img, cx, cy, bc[0], bc[1], bc[2], bc[3])
			continue
		}
		if drawShapeGlyph(img, cx, cy, byte(code)) {
			continue
		}
		drawBlockGlyph(img, cx, cy, byte(code))
	}
	return img
}

// drawFontGlyph renders a single ASCII character into the atlas.
// basicfont.Face7x13 glyphs are 7x13, centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// boxChars maps CP437 codes to single-line box connection flags: {left, right, top, bottom}.
var boxChars = map[byte][4]bool{
	179: {false, false, true, true},  // │
	180: {true, false, true, true},   // ┤
	191: {true, false, false, true},  // ┐
	192: {false, true, true, false},  // └
	193: {true, true, true, false},   // ┴
	194: {true, true, false, true},   // ┬
	195: {false, true, true, true},   // ├
	196: {true, true, false, false},  // ─
	197: {true, true, true, true},    // ┼
	217: {true, false, true, false},  // ┘
	218: {false, true, false, true},  // ┌
}

// drawBoxGlyph draws a single-line box-drawing character.
// Lines are 2 pixels wide, centered in the 16x16 cell.
func drawBoxGlyph(img *image.NRGBA, cellX, cellY int, left, right, top, bottom bool) {
	cx := cellX + 7
	cy := cellY + 7
	if left {
		fillRect(img, cellX, cy, cx+2, cy+2)
	}
	if right {
		fillRect(img, cx, cy, cellX+GlyphWidth, cy+2)
	}
	if top {
		fillRect(img, cx, cellY, cx+2, cy+2)
	}
	if bottom {
		fillRect(img, cx, cy, cx+2, cellY+GlyphHeight)
	}
}

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, ink)
		}
	}
}

// drawBlockGlyph draws block elements and shading characters.
func drawBlockGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	shade := func(on func(x, y int) bool) {
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if on(x, y) {
					img.SetNRGBA(cellX+x, cellY+y, ink)
				}
			}
		}
	}
	switch code {
	case 176: // ░
		shade(func(x, y int) bool { return (x+y)%4 == 0 })
	case 177: // ▒
		shade(func(x, y int) bool { return (x+y)%2 == 0 })
	case 178: // ▓
		shade(func(x, y int) bool { return (x+y)%4 != 0 })
	case 219: // █
		fillRect(img, cellX, cellY, cellX+GlyphWidth, cellY+GlyphHeight)
	case 220: // ▄
		fillRect(img, cellX, cellY+GlyphHeight/2, cellX+GlyphWidth, cellY+GlyphHeight)
	case 221: // ▌
		fillRect(img, cellX, cellY, cellX+GlyphWidth/2, cellY+GlyphHeight)
	case 222: // ▐
		fillRect(img, cellX+GlyphWidth/2, cellY, cellX+GlyphWidth, cellY+GlyphHeight)
	case 223: // ▀
		fillRect(img, cellX, cellY, cellX+GlyphWidth, cellY+GlyphHeight/2)
	case 254: // ■
		fillRect(img, cellX+4, cellY+4, cellX+12, cellY+12)
	}
}

// drawShapeGlyph draws the round and arrow glyphs the panels plot with.
// It reports whether code is one of them.
func drawShapeGlyph(img *image.NRGBA, cellX, cellY int, code byte) bool {
	const c = 7.5
	switch code {
	case render.GlyphBullet:
		disc(img, cellX, cellY, c, c, 3, 0)
	case render.GlyphCircle:
		disc(img, cellX, cellY, c, c, 5, 3.5)
	case render.GlyphDot:
		disc(img, cellX, cellY, c, c, 1.5, 0)
	case render.GlyphDegree:
		disc(img, cellX, cellY, c, 4.5, 3, 1.5)
	case render.GlyphSun:
		disc(img, cellX, cellY, c, c, 3, 0)
		disc(img, cellX, cellY, c, c, 7, 5.8)
	case render.GlyphDiamond:
		plot(img, cellX, cellY, func(x, y float64) bool {
			return math.Abs(x-c)+math.Abs(y-c) <= 5.5
		})
	case render.GlyphUp:
		plot(img, cellX, cellY, func(x, y float64) bool {
			return y >= 3 && y <= 12 && math.Abs(x-c) <= (y-3)*0.6
		})
	case render.GlyphDown:
		plot(img, cellX, cellY, func(x, y float64) bool {
			return y >= 3 && y <= 12 && math.Abs(x-c) <= (12-y)*0.6
		})
	case render.GlyphRight:
		plot(img, cellX, cellY, func(x, y float64) bool {
			return x >= 3 && x <= 12 && math.Abs(y-c) <= (12-x)*0.6
		})
	case render.GlyphLeft:
		plot(img, cellX, cellY, func(x, y float64) bool {
			return x >= 3 && x <= 12 && math.Abs(y-c) <= (x-3)*0.6
		})
	default:
		return false
	}
	return true
}

// plot sets every pixel whose centre satisfies in.
func plot(img *image.NRGBA, cellX, cellY int, in func(x, y float64) bool) {
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if in(float64(x)+0.5, float64(y)+0.5) {
				img.SetNRGBA(cellX+x, cellY+y, ink)
			}
		}
	}
}

// disc fills the ring between inner and outer radius around (ox, oy).
func disc(img *image.NRGBA, cellX, cellY int, ox, oy, outer, inner float64) {
	plot(img, cellX, cellY, func(x, y float64) bool {
		d := math.Hypot(x-ox-0.5, y-oy-0.5)
		return d <= outer && d >= inner
	})
}
