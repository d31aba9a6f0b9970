package game

import (
	"testing"
	"time"
)

func TestSchedulerRunsInDeadlineOrder(t *testing.T) {
	c := NewClock(testEpoch)
	s := NewScheduler(c)
	var order []string
	s.After(2*time.Second, func() { order = append(order, "a") })
	s.After(time.Second, func() { order = append(order, "b") })
	s.After(time.Second, func() { order = append(order, "c") })

	if n := s.RunDue(); n != 0 {
		t.Errorf("Expected nothing due at start, ran %d", n)
	}
	c.advance(2 * time.Second)
	if n := s.RunDue(); n != 3 {
		t.Errorf("Expected 3 tasks to run, got %d", n)
	}
	if got := order; len(got) != 3 || got[0] != "b" || got[1] != "c" || got[2] != "a" {
		t.Errorf("Expected [b c a], got %v", got)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected empty queue, got %d", s.Pending())
	}
}

func TestSchedulerEvery(t *testing.T) {
	c := NewClock(testEpoch)
	s := NewScheduler(c)
	n := 0
	s.Every(time.Second, func() { n++ })
	s.Every(0, func() { t.Error("Expected non-positive period to be ignored") })

	c.advance(3500 * time.Millisecond)
	s.RunDue()
	if n != 3 {
		t.Errorf("Expected 3 runs, got %d", n)
	}
	if s.Pending() != 1 {
		t.Errorf("Expected the periodic task to stay queued, got %d", s.Pending())
	}
}

func TestSchedulerChainedTask(t *testing.T) {
	c := NewClock(testEpoch)
	s := NewScheduler(c)
	ran := false
	s.After(time.Second, func() {
		s.After(0, func() { ran = true })
	})
	c.advance(time.Second)
	if n := s.RunDue(); n != 2 {
		t.Errorf("Expected 2 runs in one drain, got %d", n)
	}
	if !ran {
		t.Error("Expected the chained task to run")
	}
}

func TestClockWall(t *testing.T) {
	c := NewClock(testEpoch)
	c.advance(90 * time.Second)
	if got := c.Wall().Format("15:04:05"); got != "09:28:23" {
		t.Errorf("Expected 09:28:23, got %s", got)
	}
	if c.Now() != 90*time.Second {
		t.Errorf("Expected 90s elapsed, got %v", c.Now())
	}
}

func TestTerminalLogBounded(t *testing.T) {
	l := NewTerminalLog(16, func() time.Time { return testEpoch })
	for i := 0; i < 40; i++ {
		l.Addf("line %d", i)
		if l.Len() > l.Cap() {
			t.Fatalf("Log grew to %d past its cap %d", l.Len(), l.Cap())
		}
	}
	if l.Len() != 16 {
		t.Errorf("Expected 16 lines, got %d", l.Len())
	}
	if got := l.Lines()[0].Text; got != "line 24" {
		t.Errorf("Expected oldest line 24, got %q", got)
	}
	if last, _ := l.Last(); last.Text != "line 39" {
		t.Errorf("Expected newest line 39, got %q", last.Text)
	}
	if got := len(l.TakeNew()); got != 40 {
		t.Errorf("Expected 40 fresh lines, got %d", got)
	}
	if got := len(l.TakeNew()); got != 0 {
		t.Errorf("Expected fresh lines drained, got %d", got)
	}
	if got := len(l.Recent(100)); got != 16 {
		t.Errorf("Expected Recent to cap at 16, got %d", got)
	}
}

func TestLogLineCategory(t *testing.T) {
	tests := []struct {
		text string
		want Category
	}{
		{"SYSTEM: Terminal ready", CatSystem},
		{"ERROR: Unknown command. Type 'help' for available commands.", CatError},
		{"SENSORS: Sweep complete. 4 contacts detected.", CatSensors},
		{"ENGINES: Engaging warp drive", CatEngines},
		{"DEFENSE: Shield systems online", CatDefense},
		{"NAV: Auto-navigation engaged", CatNav},
		{"ALERT: Alert level elevated to YELLOW", CatAlert},
		{"> status", CatEcho},
		{"--- SHIP STATUS REPORT ---", CatReport},
		{"  Throttle: 42.0%", CatPlain},
	}
	for _, tt := range tests {
		if got := (LogLine{Text: tt.text}).Category(); got != tt.want {
			t.Errorf("%q: expected category %d, got %d", tt.text, tt.want, got)
		}
	}
}

func TestRandomDeterministic(t *testing.T) {
	a, b := NewRandom(7), NewRandom(7)
	for i := 0; i < 100; i++ {
		if a.Float() != b.Float() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
	for i := 0; i < 500; i++ {
		d := a.Duration(5*time.Second, 15*time.Second)
		if d < 5*time.Second || d > 15*time.Second {
			t.Fatalf("Duration %v out of range", d)
		}
		if v := a.Noise3(float64(i)*0.3, 1.7, 2.1); v < 0 || v > 1 {
			t.Fatalf("Noise %v out of [0, 1]", v)
		}
	}
	if a.IntN(0) != 0 {
		t.Error("Expected IntN(0) to be 0")
	}
	if a.Chance(0) || !a.Chance(1) {
		t.Error("Expected Chance(0) false and Chance(1) true")
	}
}

func submit(term *Terminal, line string) (string, bool) {
	for _, k := range typeKeys(line) {
		term.Key(k)
	}
	return term.Key(KeyEvent{Key: KeyEnter})
}

func TestTerminalHistory(t *testing.T) {
	term := NewTerminal(20)
	submit(term, "warp on")
	submit(term, "scan")
	if _, ok := submit(term, "   "); ok {
		t.Error("Expected a blank line to submit nothing")
	}
	if got := len(term.History()); got != 2 {
		t.Fatalf("Expected 2 history entries, got %d", got)
	}

	steps := []struct {
		key  Key
		want string
	}{
		{KeyUp, "scan"},
		{KeyUp, "warp on"},
		{KeyUp, "warp on"}, // stays on the oldest entry
		{KeyDown, "scan"},
		{KeyDown, ""},
	}
	for i, st := range steps {
		term.Key(KeyEvent{Key: st.key})
		if got := term.Buffer(); got != st.want {
			t.Errorf("Step %d: expected %q, got %q", i, st.want, got)
		}
		if term.Cursor() != len([]rune(st.want)) {
			t.Errorf("Step %d: expected cursor at end, got %d", i, term.Cursor())
		}
	}
}

func TestTerminalHistoryBounded(t *testing.T) {
	term := NewTerminal(2)
	for _, cmd := range []string{"status", "scan", "clear"} {
		submit(term, cmd)
	}
	h := term.History()
	if len(h) != 2 || h[0] != "scan" || h[1] != "clear" {
		t.Errorf("Expected [scan clear], got %v", h)
	}
}

func TestTerminalEditing(t *testing.T) {
	term := NewTerminal(4)
	for _, k := range typeKeys("sacn") {
		term.Key(k)
	}
	term.Key(KeyEvent{Key: KeyLeft})
	term.Key(KeyEvent{Key: KeyLeft})
	term.Key(KeyEvent{Key: KeyBackspace})
	term.Key(KeyEvent{Key: KeyRight})
	term.Key(KeyEvent{Key: KeyRune, Rune: 'a'})
	if got := term.Buffer(); got != "scan" {
		t.Errorf("Expected \"scan\", got %q", got)
	}
	term.Key(KeyEvent{Key: KeyDelete})
	if got := term.Buffer(); got != "sca" {
		t.Errorf("Expected \"sca\", got %q", got)
	}
	cmd, ok := term.Key(KeyEvent{Key: KeyEnter})
	if !ok || cmd != "sca" {
		t.Errorf("Expected \"sca\" submitted, got %q/%v", cmd, ok)
	}
}
