package game

import (
	"strings"

	"github.com/spacehole-rogue/bridgepanel/internal/config"
)

// tapeGlyphs is the symbol set rows are drawn from.
var tapeGlyphs = []rune("⟡⊕⋄⌁⌂⚙◌◍◈◉◒◓◔◕◆◇◻◽▢▣▤▥▦▧▨▩░▒▓▮▯▰▱▵▴▿▾▹▸◁◀▷▶◢◣◤◥◦◯△▽☼☍☌☊☉☽☾✶✷✸✹✺✦✧✩✪✫✬✭")

// GlyphTape is a conveyor of symbol rows scrolling upward.
type GlyphTape struct {
	cfg    config.GlyphTape
	Rows   []string // oldest first
	Offset float64  // pixels scrolled into the current line
}

// NewGlyphTape fills the tape with random rows.
func NewGlyphTape(cfg config.GlyphTape, rnd *Random) *GlyphTape {
	g := &GlyphTape{cfg: cfg}
	for i := 0; i < cfg.Rows; i++ {
		g.Rows = append(g.Rows, g.randomRow(rnd))
	}
	return g
}

func (g *GlyphTape) randomRow(rnd *Random) string {
	var b strings.Builder
	for i := 0; i < g.cfg.Width; i++ {
		if rnd.Chance(g.cfg.BlankChance) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(Pick(rnd, tapeGlyphs))
		}
	}
	return b.String()
}

// ScrollRate is the per-tick offset increase for the given state.
func ScrollRate(s ShipState) float64 {
	v := 0.5 + s.Throttle*1.5
	if s.WarpEngaged {
		v++
	}
	if s.AnomalyDetected {
		v += 2
	}
	return v
}

// Update scrolls the tape, cycling a row once a full line has passed.
func (g *GlyphTape) Update(tc *tickContext) {
	g.Offset += ScrollRate(tc.state)
	if g.Offset > g.cfg.LineHeight {
		g.Offset = 0
		copy(g.Rows, g.Rows[1:])
		g.Rows[len(g.Rows)-1] = g.randomRow(tc.rnd)
	}
}

// LineFraction is the scroll offset as a fraction of a line.
func (g *GlyphTape) LineFraction() float64 {
	return g.Offset / g.cfg.LineHeight
}
