package pixel

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spacehole-rogue/bridgepanel/internal/render"
)

// GridRenderer draws a CellBuffer to an Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image // 1x1 white pixel for drawing backgrounds
}

// NewGridRenderer creates a renderer with the given atlas and cell dimensions.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

// Draw renders the entire CellBuffer to the screen.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *render.CellBuffer) {
	screen.Fill(render.Palette[render.ColorVoid])
	scaleX := float64(r.CellW) / float64(GlyphWidth)
	scaleY := float64(r.CellH) / float64(GlyphHeight)

	var op ebiten.DrawImageOptions
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			if cell.BG != render.ColorVoid {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(render.Palette[cell.BG])
				screen.DrawImage(r.bgPixel, &op)
			}

			if cell.Glyph != ' ' && cell.Glyph != 0 {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(scaleX, scaleY)
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(render.Palette[cell.FG])
				screen.DrawImage(r.Atlas.Glyph(cell.Glyph), &op)
			}
		}
	}
}

// CellAt converts a screen pixel position into fractional cell
// coordinates for pointer hit-testing.
func (r *GridRenderer) CellAt(px, py int) (float64, float64) {
	return float64(px) / float64(r.CellW), float64(py) / float64(r.CellH)
}
