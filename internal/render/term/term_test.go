package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/spacehole-rogue/bridgepanel/internal/game"
	"github.com/spacehole-rogue/bridgepanel/internal/render"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestBlitTranslatesGlyphsAndColors(t *testing.T) {
	s := newScreen(t, 10, 3)
	buf := render.NewCellBuffer(10, 3)
	buf.WriteString(0, 0, "OK", render.ColorCyan)
	buf.Set(3, 1, render.GlyphFull, render.ColorAmber, render.ColorDeep)
	Blit(s, buf)

	r, _, style, _ := s.GetContent(0, 0)
	if r != 'O' {
		t.Errorf("Expected 'O', got %q", r)
	}
	fg, _, _ := style.Decompose()
	if fg != Color(render.ColorCyan) {
		t.Errorf("Expected cyan foreground, got %v", fg)
	}

	r, _, style, _ = s.GetContent(3, 1)
	if r != '█' {
		t.Errorf("Expected full block, got %q", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != Color(render.ColorAmber) || bg != Color(render.ColorDeep) {
		t.Errorf("Expected amber on deep, got %v on %v", fg, bg)
	}
}

func TestBlitClipsToScreen(t *testing.T) {
	s := newScreen(t, 4, 2)
	buf := render.NewCellBuffer(8, 4)
	buf.WriteString(0, 0, "ABCDEFGH", render.ColorWhite)
	Blit(s, buf)

	r, _, _, _ := s.GetContent(3, 0)
	if r != 'D' {
		t.Errorf("Expected 'D' at the last column, got %q", r)
	}
}

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want game.KeyEvent
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), game.KeyEvent{Key: game.KeyRune, Rune: 'w'}, true},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), game.KeyEvent{Key: game.KeyEnter}, true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.KeyEvent{Key: game.KeyEscape}, true},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), game.KeyEvent{Key: game.KeyBackspace}, true},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.KeyEvent{Key: game.KeyUp}, true},
		{tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), game.KeyEvent{}, false},
	}
	for _, tt := range tests {
		got, ok := KeyFromEvent(tt.ev)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Expected %+v/%v, got %+v/%v", tt.want, tt.ok, got, ok)
		}
	}
}

func TestMouseGestures(t *testing.T) {
	l := render.NewLayout(128, 45)
	var m Mouse

	if _, ok := m.Event(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone), l); ok {
		t.Error("Expected hover to be ignored")
	}
	ev, ok := m.Event(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone), l)
	if !ok || ev.Action != game.PointerPress {
		t.Fatalf("Expected press, got %+v/%v", ev, ok)
	}
	if ev.Width != 128 || ev.Height != 45 {
		t.Errorf("Expected screen size 128x45, got %vx%v", ev.Width, ev.Height)
	}
	ev, ok = m.Event(tcell.NewEventMouse(6, 5, tcell.Button1, tcell.ModNone), l)
	if !ok || ev.Action != game.PointerDrag {
		t.Errorf("Expected drag, got %+v/%v", ev, ok)
	}
	ev, ok = m.Event(tcell.NewEventMouse(6, 5, tcell.ButtonNone, tcell.ModNone), l)
	if !ok || ev.Action != game.PointerRelease {
		t.Errorf("Expected release, got %+v/%v", ev, ok)
	}
}
