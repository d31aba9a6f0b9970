package render

import (
	"math"

	"github.com/spacehole-rogue/bridgepanel/internal/game"
)

// CellAspect is the height of a cell in cell widths (10x16 px cells).
// Circles are squashed by it vertically so they look round.
const CellAspect = 1.6

// ringBand is how far from the throttle ring, in columns, a pointer
// still grabs it.
const ringBand = 1.8

// Rect is a panel area in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns r's centre in fractional cells.
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	out := Rect{r.X + n, r.Y + n, r.W - 2*n, r.H - 2*n}
	out.W = max(out.W, 0)
	out.H = max(out.H, 0)
	return out
}

// Radius is the largest circle, in columns, that fits inside r.
func (r Rect) Radius() float64 {
	return math.Min(float64(r.W), float64(r.H)*CellAspect) / 2
}

// Layout places the dashboard panels on a cols x rows grid.
type Layout struct {
	Cols, Rows int

	Header   Rect
	Radar    Rect
	Core     Rect
	Hologram Rect
	Trend    Rect
	Spectrum Rect
	Tape     Rect
	Controls Rect
	Terminal Rect // overlay, drawn only while the terminal is open
}

// NewLayout splits the screen the way the bridge console does: a header
// strip, radar | core | hologram across the middle, and spectrum | glyph
// tape | controls along the bottom.
func NewLayout(cols, rows int) Layout {
	l := Layout{Cols: cols, Rows: rows}
	topH := max(3, int(float64(rows)*0.11))
	bottomH := max(9, int(float64(rows)*0.26))
	midH := max(0, rows-topH-bottomH)
	leftW := int(float64(cols) * 0.38)
	rightW := cols - leftW
	coreW := int(float64(rightW) * 0.62)
	holoW := rightW - coreW
	holoH := midH * 6 / 10

	l.Header = Rect{0, 0, cols, topH}
	l.Radar = Rect{0, topH, leftW, midH}
	l.Core = Rect{leftW, topH, coreW, midH}
	l.Hologram = Rect{leftW + coreW, topH, holoW, holoH}
	l.Trend = Rect{leftW + coreW, topH + holoH, holoW, midH - holoH}

	bottomY := rows - bottomH
	specW := int(float64(cols) * 0.58)
	rest := cols - specW
	tapeW := int(float64(rest) * 0.45)
	l.Spectrum = Rect{0, bottomY, specW, bottomH}
	l.Tape = Rect{specW, bottomY, tapeW, bottomH}
	l.Controls = Rect{specW + tapeW, bottomY, rest - tapeW, bottomH}

	tw, th := cols*7/10, rows*6/10
	l.Terminal = Rect{(cols - tw) / 2, (rows - th) / 2, tw, th}
	return l
}

// CoreRadius is the quantum core's radius in columns.
func (l Layout) CoreRadius() float64 {
	return l.Core.Radius() * 0.62
}

// RingRadius is the throttle ring's radius in columns.
func (l Layout) RingRadius() float64 {
	return l.CoreRadius() * 0.95
}

// ZoneAt resolves the interactive zone under cell position (x, y). The
// local offset is from the zone's centre with rows scaled to columns, so
// its direction matches what is on screen.
func (l Layout) ZoneAt(x, y float64) (zone game.Zone, localX, localY float64) {
	cx, cy := l.Core.Center()
	dx, dy := x-cx, (y-cy)*CellAspect
	if math.Abs(math.Hypot(dx, dy)-l.RingRadius()) < ringBand {
		return game.ZoneCoreRing, dx, dy
	}
	cellX, cellY := int(math.Floor(x)), int(math.Floor(y))
	if l.Hologram.Contains(cellX, cellY) {
		hx, hy := l.Hologram.Center()
		return game.ZoneHologram, x - hx, (y - hy) * CellAspect
	}
	if _, ok := l.ToggleAt(cellX, cellY); ok {
		return game.ZoneToggle, 0, 0
	}
	return game.ZoneNone, 0, 0
}

// ToggleRow is the row of the controls panel that shows t. It is empty
// when the panel is too short to hold every toggle.
func (l Layout) ToggleRow(t game.Toggle) Rect {
	in := l.Controls.Inset(1)
	if in.H < int(game.ToggleCount) || t >= game.ToggleCount {
		return Rect{}
	}
	return Rect{in.X, in.Y + int(t), in.W, 1}
}

// ToggleAt resolves the toggle row under cell (x, y).
func (l Layout) ToggleAt(x, y int) (game.Toggle, bool) {
	for _, t := range game.Toggles() {
		if l.ToggleRow(t).Contains(x, y) {
			return t, true
		}
	}
	return 0, false
}

// Hint is the help line for the interactive zone under cell position
// (x, y), or "" when there is none.
func (l Layout) Hint(x, y float64) string {
	zone, _, _ := l.ZoneAt(x, y)
	switch zone {
	case game.ZoneCoreRing:
		return "Drag the core ring to set throttle"
	case game.ZoneHologram:
		return "Drag to rotate hologram model"
	case game.ZoneToggle:
		t, _ := l.ToggleAt(int(math.Floor(x)), int(math.Floor(y)))
		return "Click to toggle " + t.Label()
	}
	return ""
}

// Pointer builds a PointerEvent for a pointer at cell position (x, y).
// Screen coordinates are in cells, so pings land where the pointer is.
func (l Layout) Pointer(action game.PointerAction, x, y float64) game.PointerEvent {
	zone, lx, ly := l.ZoneAt(x, y)
	toggle, _ := l.ToggleAt(int(math.Floor(x)), int(math.Floor(y)))
	return game.PointerEvent{
		Action: action,
		X:      x,
		Y:      y,
		Width:  float64(l.Cols),
		Height: float64(l.Rows),
		Zone:   zone,
		Toggle: toggle,
		LocalX: lx,
		LocalY: ly,
	}
}
