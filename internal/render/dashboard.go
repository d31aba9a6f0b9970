package render

import (
	"math"

	"github.com/spacehole-rogue/bridgepanel/internal/game"
)

// Trend history: one sample every 6 frames, 120 samples.
const (
	trendLimit = 120
	trendEvery = 6
)

// Dashboard composes the whole bridge console into a CellBuffer. It is
// read-only with respect to the Sim; frontends blit Buf after Draw.
type Dashboard struct {
	Layout Layout
	Buf    *CellBuffer

	throttle *Gauge
	energy   *Gauge
	trend    *Trend
	frames   uint64

	hoverX, hoverY float64
	hovering       bool
}

// NewDashboard creates a dashboard for a cols x rows screen redrawn fps
// times a second.
func NewDashboard(cols, rows, fps int) *Dashboard {
	return &Dashboard{
		Layout:   NewLayout(cols, rows),
		Buf:      NewCellBuffer(cols, rows),
		throttle: NewGauge(fps, 7, 0.6),
		energy:   NewGauge(fps, 4, 1),
		trend:    NewTrend(trendLimit, trendEvery),
	}
}

// Resize re-lays the panels for a new screen size.
func (d *Dashboard) Resize(cols, rows int) {
	if cols == d.Layout.Cols && rows == d.Layout.Rows {
		return
	}
	d.Layout = NewLayout(cols, rows)
	d.Buf.Resize(cols, rows)
}

// Hover records where the pointer rests, in cells, for the hint line.
func (d *Dashboard) Hover(x, y float64) {
	d.hoverX, d.hoverY, d.hovering = x, y, true
}

// ThrottleNeedle returns the smoothed throttle reading.
func (d *Dashboard) ThrottleNeedle() float64 { return d.throttle.Pos }

// Draw renders one frame of s.
func (d *Dashboard) Draw(s *game.Sim) {
	d.frames++
	st := s.State()
	d.throttle.Update(st.Throttle)
	d.energy.Update(s.Core.Energy)
	d.trend.Push(s.Core.Energy)

	b := d.Buf
	b.Clear()
	d.drawStars(s, st)
	d.drawHeader(s, st)
	d.drawRadar(s, st)
	d.drawCore(s, st)
	d.drawHologram(s, st)
	d.drawTrend()
	d.drawSpectrum(s, st)
	d.drawTape(s, st)
	d.drawControls(s, st)
	d.drawPings(s)
	if s.Terminal.Active {
		d.drawTerminal(s)
	} else if d.hovering {
		d.drawHint()
	}
}

// toCell maps a point at angle a and radius r (columns) around (cx, cy)
// to cell coordinates.
func toCell(cx, cy, r, a float64) (float64, float64) {
	return cx + math.Cos(a)*r, cy + math.Sin(a)*r/CellAspect
}

// circle plots a ring of radius r columns around (cx, cy).
func (d *Dashboard) circle(cx, cy, r float64, glyph byte, fg uint8, overText bool) {
	if r <= 0 {
		return
	}
	steps := max(16, int(2*math.Pi*r*1.5))
	for i := 0; i < steps; i++ {
		x, y := toCell(cx, cy, r, float64(i)*2*math.Pi/float64(steps))
		xi, yi := int(math.Round(x)), int(math.Round(y))
		if overText {
			d.Buf.SetFG(xi, yi, glyph, fg)
		} else {
			d.Buf.SetIfBlank(xi, yi, glyph, fg)
		}
	}
}

// arc plots a ring segment from a0 to a1 radians.
func (d *Dashboard) arc(cx, cy, r, a0, a1 float64, glyph byte, fg uint8) {
	if a1 <= a0 || r <= 0 {
		return
	}
	steps := max(2, int((a1-a0)*r*1.5))
	for i := 0; i <= steps; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(steps)
		x, y := toCell(cx, cy, r, a)
		d.Buf.SetFG(int(math.Round(x)), int(math.Round(y)), glyph, fg)
	}
}
