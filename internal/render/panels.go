package render

import (
	"fmt"
	"math"

	"github.com/spacehole-rogue/bridgepanel/internal/game"
	"github.com/spacehole-rogue/bridgepanel/internal/world"
)

const shipName = "S.S. PARALLAX // BRIDGE CONTROL MK-XI"

// RegistryID is the header's hull registry line, stable for a seed.
func RegistryID(seed int64) string {
	if seed < 0 {
		seed = -seed
	}
	return fmt.Sprintf("REG-%06d • CORE v%d.%d", seed%1000000, 100+seed%50, 10+seed%89)
}

// Stardate is the Julian date of the sim's wall clock, one decimal.
func Stardate(s *game.Sim) string {
	ms := float64(s.Clock.Wall().UnixMilli())
	jd := math.Floor((ms/86400000+2440587.5)*10) / 10
	return fmt.Sprintf("STARDATE %.1f", jd)
}

func chip(b *CellBuffer, x, y int, label string, on bool) int {
	fg := uint8(ColorGrid)
	if on {
		fg = ColorLime
	}
	return b.WriteString(x, y, "["+label+"]", fg) + 1
}

func (d *Dashboard) drawHeader(s *game.Sim, st game.ShipState) {
	b, r := d.Buf, d.Layout.Header
	frameFG := AlertColor(st.AlertLevel)
	b.Fill(r, ColorDeep)
	b.Frame(r, frameFG, "")

	x, y := r.X+2, r.Y+1
	nameFG := uint8(ColorWhite)
	if st.StealthEngaged {
		nameFG = ColorGrid
	}
	x += b.WriteString(x, y, shipName, nameFG) + 2
	switch st.AlertLevel {
	case game.AlertYellow:
		x += b.WriteString(x, y, "YELLOW ALERT", ColorAmber) + 2
	case game.AlertRed:
		// flashes at 2 Hz
		if s.Ticks/15%2 == 0 {
			b.WriteString(x, y, "RED ALERT", ColorRed)
		}
		x += len("RED ALERT") + 2
	}
	if st.AnomalyDetected {
		b.WriteString(x, y, "QUANTUM ANOMALY", ColorMagenta)
	}

	right := r.X + r.W - 2
	chips := []struct {
		label string
		on    bool
	}{
		{"WARP", st.WarpEngaged},
		{"SHIELDS", st.ShieldsUp},
		{"AUTONAV", st.AutonavEngaged},
		{"STEALTH", st.StealthEngaged},
	}
	cx := right
	for _, c := range chips {
		cx -= len(c.label) + 3
	}
	for _, c := range chips {
		cx += chip(b, cx, y, c.label, c.on)
	}

	if r.H < 4 {
		return
	}
	y++
	x = r.X + 2
	x += b.WriteString(x, y, RegistryID(s.Config().Seed), ColorGrid) + 2
	x += b.WriteString(x, y, Stardate(s), ColorDimCyan) + 2

	hull := "HULL INTEGRITY "
	barW := 12
	hx := right - len(hull) - barW - 5
	b.WriteString(hx, y, hull, ColorGrid)
	b.Bar(hx+len(hull), y, barW, st.ShipIntegrity, IntegrityColor(st.ShipIntegrity))
	b.WriteRight(right, y, fmt.Sprintf("%3.0f%%", st.ShipIntegrity*100), IntegrityColor(st.ShipIntegrity))

	if last, ok := s.Log.Last(); ok {
		b.WriteClipped(x, y, hx-x-2, last.Text, CategoryColor(last.Category()))
	}
}

func (d *Dashboard) drawRadar(s *game.Sim, st game.ShipState) {
	b, r := d.Buf, d.Layout.Radar
	b.Frame(r, ColorCyan, "RADAR // sector sweep")
	in := r.Inset(1)
	if in.W < 8 || in.H < 6 {
		return
	}
	now := s.Clock.Now()

	pingText, pingFG := "PING: READY", uint8(ColorGrid)
	if s.Radar.PingActive(now) {
		pingText, pingFG = "PING: ACTIVE", ColorCyan
	}
	b.WriteRight(in.X+in.W, in.Y, pingText, pingFG)

	scope := Rect{in.X, in.Y + 1, in.W, in.H - 3}
	cx, cy := scope.Center()
	R := scope.Radius() * 0.92

	for _, f := range []float64{0.33, 0.66, 1} {
		d.circle(cx, cy, R*f, GlyphDot, ColorPanel, false)
	}
	b.Line(cx-R, cy, cx+R, cy, GlyphDot, ColorPanel)
	b.Line(cx, cy-R/CellAspect, cx, cy+R/CellAspect, GlyphDot, ColorPanel)

	sweepFG := uint8(ColorCyan)
	if st.WarpEngaged {
		sweepFG = ColorLime
	}
	for _, a := range s.Radar.Trail() {
		x, y := toCell(cx, cy, R, a)
		b.Line(cx, cy, x, y, GlyphDot, ColorDimCyan)
	}
	sx, sy := toCell(cx, cy, R, s.Radar.Sweep)
	b.Line(cx, cy, sx, sy, GlyphBullet, sweepFG)

	if s.Radar.PingActive(now) {
		d.circle(cx, cy, R*s.Radar.PingFraction(now), GlyphMedShade, ColorCyan, true)
	}

	for _, c := range s.Radar.Contacts() {
		x, y := toCell(cx, cy, R*c.Radius, c.Angle)
		xi, yi := int(math.Round(x)), int(math.Round(y))
		fg := uint8(ColorPanel)
		if c.Seen {
			fg = contactColor(c.Kind, st)
		}
		b.SetFG(xi, yi, contactGlyph(c.Kind), fg)
		if c.Selected && st.AutonavEngaged {
			b.SetFG(xi-1, yi, '[', ColorAmber)
			b.SetFG(xi+1, yi, ']', ColorAmber)
			b.WriteString(xi+2, yi, c.Label(), ColorAmber)
		}
	}

	y := in.Y + in.H - 2
	if nav, ok := s.Radar.Nav(st); ok {
		b.WriteClipped(in.X, in.Y, in.W-len(pingText)-1, "NAV-> "+nav.Target, ColorAmber)
		eta := "ETA: --"
		if nav.HasETA {
			eta = fmt.Sprintf("ETA: %.1f MIN", nav.ETA)
		}
		b.WriteString(in.X, y, fmt.Sprintf("%s  %.0f km", eta, nav.Distance), ColorAmber)
	}
	y++
	status := st.SystemStatus[world.Sensors]
	n := b.WriteString(in.X, y, "SENSOR STATUS: ", ColorGrid)
	b.WriteString(in.X+n, y, status.String(), StatusColor(status))
	b.WriteRight(in.X+in.W, y, fmt.Sprintf("CONTACTS: %d", s.Radar.Count()), ColorCyan)
}

func contactGlyph(k game.ContactKind) byte {
	switch k {
	case game.KindShip:
		return GlyphUp
	case game.KindStation:
		return GlyphSquare
	case game.KindAsteroid:
		return GlyphCircle
	default:
		return GlyphDot
	}
}

func contactColor(k game.ContactKind, st game.ShipState) uint8 {
	if st.StealthEngaged {
		return ColorGrid
	}
	switch k {
	case game.KindShip:
		return ColorMagenta
	case game.KindStation:
		return ColorLime
	case game.KindAsteroid:
		return ColorAmber
	default:
		return ColorWhite
	}
}

func (d *Dashboard) drawCore(s *game.Sim, st game.ShipState) {
	b, r := d.Buf, d.Layout.Core
	b.Frame(r, ColorMagenta, "QUANTUM CORE")
	in := r.Inset(1)
	if in.W < 8 || in.H < 6 {
		return
	}
	d.drawGrid(s, in)

	cx, cy := r.Center()
	coreR := d.Layout.CoreRadius()
	ringR := d.Layout.RingRadius()

	for _, fp := range s.Core.Flow {
		a, inner, outer := s.Core.FlowSpoke(fp)
		x0, y0 := toCell(cx, cy, coreR*inner, a)
		x1, y1 := toCell(cx, cy, coreR*outer*0.9, a)
		b.Line(x0, y0, x1, y1, GlyphDot, pick(fp.Intensity < 0.6, ColorDimBlue, ColorBlue))
	}

	outlineFG := uint8(ColorCyan)
	switch {
	case s.Core.Resonance > 0.2:
		outlineFG = ColorMagenta
	case st.WarpEngaged:
		outlineFG = ColorLime
	}
	for _, p := range s.Core.Outline(st.Throttle) {
		b.SetFG(int(math.Round(cx+p.X*coreR)), int(math.Round(cy+p.Y*coreR/CellAspect)), GlyphBullet, outlineFG)
	}

	d.circle(cx, cy, ringR, GlyphDot, ColorGrid, true)
	top := -math.Pi / 2
	d.arc(cx, cy, ringR, top, game.HandleAngle(d.throttle.Pos), GlyphBullet, ColorAmber)
	hx, hy := toCell(cx, cy, ringR, game.HandleAngle(st.Throttle))
	b.SetFG(int(math.Round(hx)), int(math.Round(hy)), GlyphSquare, ColorWhite)

	label := fmt.Sprintf("THROTTLE %02.0f%%", st.Throttle*100)
	b.WriteString(int(cx)-len(label)/2, int(math.Round(cy+ringR/CellAspect))+2, label, ColorAmber)

	temp := s.Core.Temperature(st)
	tempFG := uint8(ColorCyan)
	if temp > 130 {
		tempFG = ColorRed
	} else if temp > 110 {
		tempFG = ColorAmber
	}
	b.WriteString(in.X, in.Y+in.H-2, fmt.Sprintf("CORE TEMP: %.0f°C", temp), tempFG)
	status := st.SystemStatus[world.Engines]
	n := b.WriteString(in.X, in.Y+in.H-1, "ENGINE STATUS: ", ColorGrid)
	b.WriteString(in.X+n, in.Y+in.H-1, status.String(), StatusColor(status))
}

// drawGrid lays the signal lattice across the core panel, behind the core.
func (d *Dashboard) drawGrid(s *game.Sim, in Rect) {
	b := d.Buf
	lat := s.Grid.Lattice
	if lat.Cols < 2 || lat.Rows < 2 {
		return
	}
	sx := float64(in.W-1) / float64(lat.Cols-1)
	sy := float64(in.H-1) / float64(lat.Rows-1)
	at := func(x, y float64) (float64, float64) {
		return float64(in.X) + x*sx, float64(in.Y) + y*sy
	}
	for i := range lat.Edges {
		ax, ay, bx, by := lat.Endpoints(i)
		x0, y0 := at(ax, ay)
		x1, y1 := at(bx, by)
		b.Line(x0, y0, x1, y1, GlyphDot, ColorDeep)
	}
	for _, n := range lat.Nodes {
		x, y := at(float64(n.X), float64(n.Y))
		b.SetFG(int(math.Round(x)), int(math.Round(y)), '+', pick(n.Activity < 0.6, ColorPanel, ColorGrid))
	}
	for _, p := range s.Grid.PacketViews() {
		if p.Priority {
			tx, ty := at(p.TX, p.TY)
			b.SetFG(int(math.Round(tx)), int(math.Round(ty)), GlyphDot, HueColor(p.Hue, true))
		}
		x, y := at(p.X, p.Y)
		b.SetFG(int(math.Round(x)), int(math.Round(y)), GlyphBullet, HueColor(p.Hue, false))
	}
}

func (d *Dashboard) drawHologram(s *game.Sim, st game.ShipState) {
	b, r := d.Buf, d.Layout.Hologram
	// the frame goes on last so the model never cuts the border
	defer b.Frame(r, ColorBlue, "SHIP SCHEMATIC")
	in := r.Inset(1)
	if in.W < 6 || in.H < 4 {
		return
	}
	cx, cy := in.Center()
	scale := in.Radius() * 0.8
	f := s.Hologram.Frame(scale, st.StealthEngaged)
	cell := func(p world.Projected) (float64, float64) {
		return cx + p.X, cy + p.Y/CellAspect
	}
	for _, e := range f.Edges {
		x0, y0 := cell(e.A)
		x1, y1 := cell(e.B)
		b.Line(x0, y0, x1, y1, GlyphDot, Shade(e.Hue, e.Brightness))
	}
	for _, v := range f.Vertices {
		x, y := cell(v.P)
		b.SetFG(int(math.Round(x)), int(math.Round(y)), GlyphBullet, Shade(v.Hue, v.Brightness))
	}
	for _, l := range f.Labels {
		x, y := cell(l.P)
		xi, yi := int(math.Round(x)), int(math.Round(y))
		b.SetFG(xi, yi, '+', ColorWhite)
		if l.ShowText {
			b.WriteClipped(xi+1, yi, in.X+in.W-xi-1, l.Text, pick(l.Brightness < 0.5, ColorGrid, ColorWhite))
		}
	}

	detail := "SCAN DETAIL: LOW"
	if st.PowerAllocation[world.Sensors] >= game.DivertedShare {
		detail = "SCAN DETAIL: HIGH"
	}
	b.WriteString(in.X, in.Y+in.H-1, detail, ColorDimBlue)
	if st.AutonavEngaged {
		b.WriteClipped(in.X, in.Y, in.W, "NAVIGATION TARGET LOCKED", ColorAmber)
	}
}

func (d *Dashboard) drawTrend() {
	b, r := d.Buf, d.Layout.Trend
	b.Frame(r, ColorGrid, "CORE ENERGY")
	in := r.Inset(1)
	if in.W < 12 || in.H < 2 {
		return
	}
	lines := d.trend.Lines(in.W-7, in.H-1, "")
	for i, line := range lines {
		if i >= in.H {
			break
		}
		b.WriteClipped(in.X, in.Y+i, in.W, line, ColorDimLime)
	}
	b.WriteRight(in.X+in.W, in.Y+in.H-1, fmt.Sprintf("%3.0f%%", d.energy.Pos*100), ColorLime)
}

func (d *Dashboard) drawSpectrum(s *game.Sim, st game.ShipState) {
	b, r := d.Buf, d.Layout.Spectrum
	b.Frame(r, ColorCyan, "HARMONIC SPECTRUM")
	b.WriteRight(r.X+r.W-2, r.Y, " 120-300 GHz ", ColorGrid)
	in := r.Inset(1)
	if in.W < 4 || in.H < 3 {
		return
	}
	levels := s.Spectrum.Levels(st, s.Rand)
	hi, lo := uint8(ColorCyan), uint8(ColorDimCyan)
	switch {
	case st.AlertLevel == game.AlertRed:
		hi, lo = ColorRed, ColorRed
	case st.WarpEngaged:
		hi, lo = ColorLime, ColorDimLime
	}
	bottom := in.Y + in.H - 1
	for x := 0; x < in.W; x++ {
		lv := levels[x*len(levels)/in.W]
		h := lv * float64(in.H)
		full := int(h)
		for i := 0; i < full && i < in.H; i++ {
			b.SetFG(in.X+x, bottom-i, GlyphFull, pick(i == full-1, hi, lo))
		}
		if full < in.H && h-float64(full) >= 0.5 {
			b.SetFG(in.X+x, bottom-full, GlyphLowerHalf, hi)
		}
	}
	for _, m := range s.Spectrum.Markers {
		x := in.X + int(m.Position*float64(in.W))
		h := int(s.Spectrum.Pulse(m) * float64(in.H))
		for i := 0; i < h; i++ {
			b.SetFG(x, bottom-i, 179, ColorMagenta)
		}
		label := fmt.Sprintf("%s %.1f", m.Kind, m.Frequency())
		b.WriteClipped(x+1, in.Y, in.X+in.W-x-1, label, ColorMagenta)
	}
}

func (d *Dashboard) drawTape(s *game.Sim, st game.ShipState) {
	b, r := d.Buf, d.Layout.Tape
	b.Frame(r, ColorMagenta, "GLYPH STREAM")
	in := r.Inset(1)
	if in.W < 4 || in.H < 2 {
		return
	}
	rows := s.Tape.Rows
	visible := min(len(rows), in.H-1)
	for i := 0; i < visible; i++ {
		row := rows[len(rows)-visible+i]
		fg := uint8(ColorDimMagenta)
		if i == visible-1 {
			fg = ColorMagenta
		}
		if st.StealthEngaged {
			fg = ColorPanel
		}
		b.WriteClipped(in.X, in.Y+i, in.W, row, fg)
	}
	status, fg := "NOMINAL", uint8(ColorCyan)
	if st.AnomalyDetected {
		status, fg = "ANOMALY DETECTED", ColorMagenta
	}
	b.WriteRight(in.X+in.W, in.Y+in.H-1, status, fg)
}

func (d *Dashboard) drawControls(s *game.Sim, st game.ShipState) {
	b, r := d.Buf, d.Layout.Controls
	b.Frame(r, ColorAmber, "SHIP CONTROLS")
	hint := " PRESS [T] FOR TERMINAL "
	if len(hint) > r.W-4 {
		hint = " [T] TERMINAL "
	}
	if len(hint) <= r.W-4 {
		b.WriteRight(r.X+r.W-2, r.Y+r.H-1, hint, ColorGrid)
	}
	in := r.Inset(1)
	if in.W < 16 {
		return
	}
	y := in.Y
	for _, t := range game.Toggles() {
		row := d.Layout.ToggleRow(t)
		if row.W == 0 {
			break
		}
		on := st.Engaged(t)
		fg, state := uint8(ColorGrid), "OFFLINE"
		if on {
			fg, state = toggleColor(t), "ONLINE"
		}
		b.SetFG(row.X, row.Y, pick(on, GlyphBullet, GlyphCircle), fg)
		b.WriteString(row.X+2, row.Y, fmt.Sprintf("%s [%c]", t.Label(), t.Hotkey()), fg)
		b.WriteRight(row.X+row.W, row.Y, state, pick(on, uint8(ColorWhite), ColorGrid))
		y = row.Y + 1
	}
	if y >= in.Y+in.H {
		return
	}
	b.WriteString(in.X, y, "POWER ALLOCATION", ColorWhite)
	y++
	barW := in.W - 14
	for _, sub := range world.Subsystems() {
		if y >= in.Y+in.H {
			return
		}
		share := st.PowerAllocation[sub]
		b.WriteString(in.X, y, fmt.Sprintf("%-8s", sub.Label()), StatusColor(st.SystemStatus[sub]))
		b.Bar(in.X+9, y, barW, share, SubsystemColor(sub))
		b.WriteRight(in.X+in.W, y, fmt.Sprintf("%3.0f%%", share*100), SubsystemColor(sub))
		y++
	}
}

func toggleColor(t game.Toggle) uint8 {
	switch t {
	case game.ToggleWarp:
		return ColorLime
	case game.ToggleShields:
		return ColorCyan
	case game.ToggleAutonav:
		return ColorAmber
	}
	return ColorMagenta
}

// drawHint writes the hover help on the spectrum panel's bottom edge.
func (d *Dashboard) drawHint() {
	hint := d.Layout.Hint(d.hoverX, d.hoverY)
	r := d.Layout.Spectrum
	if hint == "" || r.W < 6 {
		return
	}
	d.Buf.WriteClipped(r.X+2, r.Y+r.H-1, r.W-4, " "+hint+" ", ColorWhite)
}

func (d *Dashboard) drawPings(s *game.Sim) {
	cols, rows := float64(d.Layout.Cols), float64(d.Layout.Rows)
	reach := math.Max(cols, rows*CellAspect) * 0.25
	s.Pings.Each(func(p game.PingView) {
		if p.Fade < 0.1 {
			return
		}
		d.circle(p.X*cols, p.Y*rows, p.Radius*reach, GlyphDot, Shade(p.Hue, p.Fade), false)
	})
}

// drawStars paints the starfield behind the panels, as pixels from the
// field centre scaled onto the whole screen.
func (d *Dashboard) drawStars(s *game.Sim, st game.ShipState) {
	b := d.Buf
	cfg := s.Config().Starfield
	cols, rows := float64(d.Layout.Cols), float64(d.Layout.Rows)
	at := func(x, y float64) (float64, float64) {
		return (x/cfg.Width + 0.5) * cols, (y/cfg.Height + 0.5) * rows
	}
	inside := func(x, y float64) bool {
		return x >= 0 && y >= 0 && x < cols && y < rows
	}
	for _, sk := range s.Stars.Streaks(st) {
		x1, y1 := at(sk.X1, sk.Y1)
		if !inside(x1, y1) {
			continue
		}
		fg := Shade(sk.Hue, sk.Intensity)
		if st.WarpEngaged {
			x0, y0 := at(sk.X0, sk.Y0)
			if inside(x0, y0) {
				b.Line(x0, y0, x1, y1, GlyphDot, fg)
			}
			if sk.Echo {
				ex, ey := at(sk.EX, sk.EY)
				if inside(ex, ey) {
					b.Line(x0, y0, ex, ey, GlyphDot, ColorDimBlue)
				}
			}
		}
		glyph := byte('.')
		if sk.Bright {
			glyph = '*'
		}
		b.SetFG(int(x1), int(y1), glyph, fg)
	}
}

func (d *Dashboard) drawTerminal(s *game.Sim) {
	b, r := d.Buf, d.Layout.Terminal
	b.Fill(r, ColorDeep)
	b.Frame(r, ColorCyan, "TERMINAL")
	hint := " PRESS [ESC] TO EXIT TERMINAL "
	b.WriteRight(r.X+r.W-2, r.Y+r.H-1, hint, ColorGrid)
	in := r.Inset(1)
	if in.W < 12 || in.H < 3 {
		return
	}
	lines := s.Log.Recent(in.H - 2)
	for i, l := range lines {
		y := in.Y + i
		n := b.WriteString(in.X, y, l.Time, ColorGrid) + 1
		b.WriteClipped(in.X+n, y, in.W-n, l.Text, CategoryColor(l.Category()))
	}

	y := in.Y + in.H - 1
	n := b.WriteString(in.X, y, "> ", ColorCyan)
	buf := []rune(s.Terminal.Buffer())
	room := in.W - n - 1
	start := max(0, s.Terminal.Cursor()-room)
	b.WriteClipped(in.X+n, y, room, string(buf[min(start, len(buf)):]), ColorWhite)
	if d.frames/30%2 == 0 {
		cx := in.X + n + s.Terminal.Cursor() - start
		c := b.Get(cx, y)
		b.Set(cx, y, c.Glyph, ColorVoid, ColorCyan)
	}
}
