package game

import (
	"strings"

	"github.com/spacehole-rogue/bridgepanel/internal/world"
)

// Terminal is the modal command line: an editable buffer with a cursor
// and a bounded command history.
type Terminal struct {
	Active bool

	buf     []rune
	cursor  int
	history []string // oldest first
	histIdx int      // steps back from the newest entry; -1 when not browsing
	histMax int
}

// NewTerminal creates a closed terminal keeping histMax commands.
func NewTerminal(histMax int) *Terminal {
	return &Terminal{histIdx: -1, histMax: histMax}
}

// Open activates the terminal.
func (t *Terminal) Open() { t.Active = true }

// Buffer returns the current input line.
func (t *Terminal) Buffer() string { return string(t.buf) }

// Cursor returns the cursor position in runes.
func (t *Terminal) Cursor() int { return t.cursor }

// History returns submitted commands, oldest first.
func (t *Terminal) History() []string { return t.history }

// Key edits the buffer. On enter it returns the normalised command and
// true; empty commands are dropped without touching the history.
func (t *Terminal) Key(ev KeyEvent) (string, bool) {
	switch ev.Key {
	case KeyEscape:
		t.Active = false
	case KeyBackspace:
		if t.cursor > 0 {
			t.buf = append(t.buf[:t.cursor-1], t.buf[t.cursor:]...)
			t.cursor--
		}
	case KeyDelete:
		if t.cursor < len(t.buf) {
			t.buf = append(t.buf[:t.cursor], t.buf[t.cursor+1:]...)
		}
	case KeyLeft:
		t.cursor = max(0, t.cursor-1)
	case KeyRight:
		t.cursor = min(len(t.buf), t.cursor+1)
	case KeyUp:
		if len(t.history) > 0 {
			t.histIdx = min(len(t.history)-1, t.histIdx+1)
			t.recall()
		}
	case KeyDown:
		if t.histIdx > 0 {
			t.histIdx--
			t.recall()
		} else if t.histIdx == 0 {
			t.histIdx = -1
			t.buf = t.buf[:0]
		}
		t.cursor = len(t.buf)
	case KeyEnter:
		cmd := strings.ToLower(strings.TrimSpace(string(t.buf)))
		t.buf = t.buf[:0]
		t.cursor = 0
		t.histIdx = -1
		if cmd == "" {
			return "", false
		}
		t.history = append(t.history, cmd)
		if len(t.history) > t.histMax {
			t.history = t.history[1:]
		}
		return cmd, true
	case KeyRune:
		t.buf = append(t.buf, 0)
		copy(t.buf[t.cursor+1:], t.buf[t.cursor:])
		t.buf[t.cursor] = ev.Rune
		t.cursor++
	}
	return "", false
}

func (t *Terminal) recall() {
	t.buf = []rune(t.history[len(t.history)-1-t.histIdx])
	t.cursor = len(t.buf)
}

var helpLines = []string{
	"SYSTEM: Available commands:",
	"  status - Display ship systems status",
	"  scan - Perform sensor sweep",
	"  warp [on/off] - Control warp drive",
	"  shields [on/off] - Control shield systems",
	"  autonav [on/off] - Control navigation",
	"  stealth [on/off] - Control stealth systems",
	"  set course [id] - Set navigation target",
	"  divert power [system] - Reallocate power",
	"  full report - Show all ship systems",
	"  clear - Clear terminal",
}

const unknownCommand = "ERROR: Unknown command. Type 'help' for available commands."

// Execute runs one normalised command against the ship. Delayed output
// (scan, full report) is queued on the task scheduler.
func (s *Sim) Execute(cmd string) {
	if cmd == "" {
		return
	}
	s.Log.Add("> " + cmd)

	switch cmd {
	case "help":
		for _, l := range helpLines {
			s.Log.Add(l)
		}
	case "status":
		s.Log.Add("SHIP: Status report")
		s.Log.Addf("  Alert Level: %s", s.state.AlertLevel)
		s.Log.Addf("  Hull Integrity: %.1f%%", s.state.ShipIntegrity*100)
		s.Log.Addf("  Throttle: %.1f%%", s.state.Throttle*100)
	case "scan":
		s.Log.Add("SENSORS: Initiating sensor sweep...")
		s.Radar.Ping(s.Clock.Now())
		s.Cues.Play(SoundPing)
		s.Tasks.After(s.cfg.Terminal.ScanDelay, s.finishScan)
	case "warp on":
		s.state.WarpEngaged = true
		s.Cues.Play(SoundWarp)
		s.Log.Add("ENGINES: Engaging warp drive")
	case "warp off":
		s.state.WarpEngaged = false
		s.Log.Add("ENGINES: Disengaging warp drive")
	case "shields on":
		s.state.ShieldsUp = true
		s.Cues.Play(SoundShield)
		s.Log.Add("DEFENSE: Shield systems online")
	case "shields off":
		s.state.ShieldsUp = false
		s.Log.Add("DEFENSE: Shield systems offline")
	case "autonav on":
		s.state.AutonavEngaged = true
		s.Log.Add("NAV: Auto-navigation engaged")
	case "autonav off":
		s.state.AutonavEngaged = false
		s.Log.Add("NAV: Auto-navigation disengaged")
	case "stealth on":
		s.state.StealthEngaged = true
		s.Log.Add("DEFENSE: Stealth systems activated")
	case "stealth off":
		s.state.StealthEngaged = false
		s.Log.Add("DEFENSE: Stealth systems deactivated")
	case "full report":
		s.Log.Add("SYSTEM: Generating full status report...")
		s.Tasks.After(s.cfg.Terminal.ReportDelay, s.fullReport)
	case "clear":
		s.Log.Clear()
		s.Log.Add("SYSTEM: Terminal cleared")
	default:
		switch {
		case cmd == "set course" || strings.HasPrefix(cmd, "set course "):
			s.setCourse(strings.TrimSpace(strings.TrimPrefix(cmd, "set course")))
		case cmd == "divert power" || strings.HasPrefix(cmd, "divert power "):
			s.divertPower(strings.TrimSpace(strings.TrimPrefix(cmd, "divert power")))
		default:
			s.Log.Add(unknownCommand)
		}
	}
}

func (s *Sim) finishScan() {
	s.Log.Addf("SENSORS: Sweep complete. %d contacts detected.", 3+s.Rand.IntN(5))
	if s.state.AnomalyDetected {
		s.Log.Add("SENSORS: WARNING - Quantum anomaly detected!")
	}
}

func (s *Sim) setCourse(id string) {
	s.state.AutonavEngaged = true
	s.Radar.SelectRandom(s.Rand)
	if id == "" {
		if sel, ok := s.Radar.Selected(); ok {
			id = sel.Label()
		}
	}
	s.Log.Addf("NAV: Setting course to target %s", id)
}

func (s *Sim) divertPower(name string) {
	sub, ok := world.ParseSubsystem(name)
	if !ok {
		s.Log.Add("POWER: Unknown system. Available: " + world.SubsystemNames())
		return
	}
	s.state.DivertPower(sub)
	s.Log.Addf("POWER: Diverting power to %s", sub.Label())
	s.Log.Addf("POWER: %s allocation: %.0f%%", sub.Label(), s.state.PowerAllocation[sub]*100)
}

func (s *Sim) fullReport() {
	st := &s.state
	s.Log.Add("--- SHIP STATUS REPORT ---")
	s.Log.Addf("Alert Level: %s", st.AlertLevel)
	s.Log.Addf("Hull Integrity: %.1f%%", st.ShipIntegrity*100)
	s.Log.Addf("Throttle: %.1f%%", st.Throttle*100)
	for _, sub := range world.Subsystems() {
		label := sub.Label()
		s.Log.Addf("%s%s: %s (%.0f%%)", label[:1], strings.ToLower(label[1:]), st.SystemStatus[sub], st.PowerAllocation[sub]*100)
	}
	s.Log.Addf("Systems: WARP=%t, SHIELDS=%t, AUTONAV=%t, STEALTH=%t",
		st.WarpEngaged, st.ShieldsUp, st.AutonavEngaged, st.StealthEngaged)
}
