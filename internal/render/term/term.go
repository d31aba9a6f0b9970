// Package term blits the dashboard to a terminal through tcell.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/spacehole-rogue/bridgepanel/internal/game"
	"github.com/spacehole-rogue/bridgepanel/internal/render"
)

var palette [16]tcell.Color

func init() {
	for i, c := range render.Palette {
		palette[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
}

// Color returns the terminal color for a palette index.
func Color(idx uint8) tcell.Color {
	return palette[idx&15]
}

// Blit copies buf onto the screen. Cells outside the screen are dropped.
// The caller calls Show.
func Blit(s tcell.Screen, buf *render.CellBuffer) {
	w, h := s.Size()
	for y := 0; y < buf.Rows && y < h; y++ {
		for x := 0; x < buf.Cols && x < w; x++ {
			c := buf.Cells[y*buf.Cols+x]
			style := tcell.StyleDefault.Foreground(Color(c.FG)).Background(Color(c.BG))
			s.SetContent(x, y, render.CP437ToUnicode[c.Glyph], nil, style)
		}
	}
}

// KeyFromEvent maps a tcell key press to the sim's logical key. Keys the
// console has no use for report false.
func KeyFromEvent(ev *tcell.EventKey) (game.KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return game.KeyEvent{Key: game.KeyRune, Rune: ev.Rune()}, true
	case tcell.KeyEnter:
		return game.KeyEvent{Key: game.KeyEnter}, true
	case tcell.KeyEscape:
		return game.KeyEvent{Key: game.KeyEscape}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return game.KeyEvent{Key: game.KeyBackspace}, true
	case tcell.KeyDelete:
		return game.KeyEvent{Key: game.KeyDelete}, true
	case tcell.KeyLeft:
		return game.KeyEvent{Key: game.KeyLeft}, true
	case tcell.KeyRight:
		return game.KeyEvent{Key: game.KeyRight}, true
	case tcell.KeyUp:
		return game.KeyEvent{Key: game.KeyUp}, true
	case tcell.KeyDown:
		return game.KeyEvent{Key: game.KeyDown}, true
	}
	return game.KeyEvent{}, false
}

// Mouse turns tcell's button-state mouse reports into press, drag and
// release gestures.
type Mouse struct {
	down bool
}

// Event converts one report. Motion with no button held yields nothing.
func (m *Mouse) Event(ev *tcell.EventMouse, l render.Layout) (game.PointerEvent, bool) {
	x, y := ev.Position()
	// aim at the middle of the cell
	fx, fy := float64(x)+0.5, float64(y)+0.5
	held := ev.Buttons()&tcell.Button1 != 0
	switch {
	case held && !m.down:
		m.down = true
		return l.Pointer(game.PointerPress, fx, fy), true
	case held:
		return l.Pointer(game.PointerDrag, fx, fy), true
	case m.down:
		m.down = false
		return l.Pointer(game.PointerRelease, fx, fy), true
	}
	return game.PointerEvent{}, false
}
