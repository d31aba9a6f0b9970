package game

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/spacehole-rogue/bridgepanel/internal/config"
	"github.com/spacehole-rogue/bridgepanel/internal/world"
)

var testEpoch = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

// newTestSim builds a Sim with the random background activity switched
// off, so only what a test does shows up in the log.
func newTestSim(t *testing.T, tweak ...func(*config.Config)) *Sim {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1
	cfg.Events.Chance = 0
	cfg.Core.ResonanceChance = 0
	cfg.Radar.AddChance = 0
	cfg.Radar.RemoveChance = 0
	for _, f := range tweak {
		f(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return NewSim(cfg, testEpoch)
}

func lastLine(t *testing.T, s *Sim) string {
	t.Helper()
	l, ok := s.Log.Last()
	if !ok {
		t.Fatal("Expected a log line, log is empty")
	}
	return l.Text
}

func hasLinePrefix(lines []LogLine, prefix string) bool {
	for _, l := range lines {
		if strings.HasPrefix(l.Text, prefix) {
			return true
		}
	}
	return false
}

func hasSound(sounds []Sound, want Sound) bool {
	for _, s := range sounds {
		if s == want {
			return true
		}
	}
	return false
}

func typeKeys(text string) []KeyEvent {
	var keys []KeyEvent
	for _, r := range text {
		keys = append(keys, KeyEvent{Key: KeyRune, Rune: r})
	}
	return keys
}

func TestNewSimBootState(t *testing.T) {
	s := newTestSim(t)
	st := s.State()
	if st.WarpEngaged || !st.ShieldsUp || st.AutonavEngaged || st.StealthEngaged {
		t.Errorf("Unexpected boot flags: %+v", st)
	}
	if st.Throttle != 0.42 {
		t.Errorf("Expected throttle 0.42, got %v", st.Throttle)
	}
	if st.SystemStatus[world.Shields] != world.StatusOnline {
		t.Errorf("Expected shields ONLINE, got %v", st.SystemStatus[world.Shields])
	}

	f := s.Step(Input{})
	if len(f.Lines) != 2 || f.Lines[0].Text != "SYSTEM: Terminal ready" {
		t.Errorf("Expected the two startup lines in the first frame, got %v", f.Lines)
	}
	if f.Lines[0].Time != "09:26:53" {
		t.Errorf("Expected timestamp 09:26:53, got %s", f.Lines[0].Time)
	}
	if f2 := s.Step(Input{}); len(f2.Lines) != 0 {
		t.Errorf("Expected no lines in the second frame, got %v", f2.Lines)
	}
}

func TestWarpOnScenario(t *testing.T) {
	s := newTestSim(t)
	s.Execute("warp on")

	if !s.State().WarpEngaged {
		t.Error("Expected warp engaged")
	}
	if !hasLinePrefix(s.Log.Lines(), "ENGINES: Engaging warp drive") {
		t.Error("Expected an ENGINES: Engaging warp drive line")
	}
	f := s.Step(Input{})
	if !hasSound(f.Sounds, SoundWarp) {
		t.Errorf("Expected warp cue, got %v", f.Sounds)
	}
}

func TestTypedCommandThroughTerminal(t *testing.T) {
	s := newTestSim(t)
	keys := []KeyEvent{{Key: KeyRune, Rune: 't'}}
	keys = append(keys, typeKeys("  WARP ON ")...)
	keys = append(keys, KeyEvent{Key: KeyEnter})

	f := s.Step(Input{Keys: keys})
	if !s.Terminal.Active {
		t.Error("Expected terminal to stay open after submit")
	}
	if !s.State().WarpEngaged {
		t.Error("Expected typed command to engage warp")
	}
	if !hasLinePrefix(f.Lines, "> warp on") {
		t.Errorf("Expected normalised echo, got %v", f.Lines)
	}

	// hotkeys are swallowed while the terminal is open
	s.Step(Input{Keys: typeKeys("w")})
	if !s.State().WarpEngaged {
		t.Error("Expected 'w' to be typed, not toggle warp")
	}
	if s.Terminal.Buffer() != "w" {
		t.Errorf("Expected buffer \"w\", got %q", s.Terminal.Buffer())
	}

	s.Step(Input{Keys: []KeyEvent{{Key: KeyEscape}}})
	if s.Terminal.Active {
		t.Error("Expected escape to close the terminal")
	}
}

func TestDivertPowerScenario(t *testing.T) {
	s := newTestSim(t)
	s.Execute("divert power shields")

	st := s.State()
	if st.PowerAllocation[world.Shields] != 0.5 {
		t.Errorf("Expected shields 0.5, got %v", st.PowerAllocation[world.Shields])
	}
	for _, sub := range []world.Subsystem{world.Engines, world.Sensors, world.Weapons} {
		if math.Abs(st.PowerAllocation[sub]-1.0/6) > 1e-9 {
			t.Errorf("Expected %s ≈ 0.1667, got %v", sub.Name(), st.PowerAllocation[sub])
		}
	}
	if got := lastLine(t, s); got != "POWER: SHIELDS allocation: 50%" {
		t.Errorf("Unexpected last line %q", got)
	}
}

func TestDivertPowerInvariant(t *testing.T) {
	for _, sub := range world.Subsystems() {
		s := newTestSim(t)
		s.Execute("divert power " + sub.Name())
		st := s.State()
		if st.PowerAllocation[sub] != DivertedShare {
			t.Errorf("%s: expected 0.5, got %v", sub.Name(), st.PowerAllocation[sub])
		}
		rest := 0.0
		for _, o := range world.Subsystems() {
			if o == sub {
				continue
			}
			rest += st.PowerAllocation[o]
			if math.Abs(st.PowerAllocation[o]-0.5/3) > 1e-12 {
				t.Errorf("%s: expected %s at one third of the remainder, got %v", sub.Name(), o.Name(), st.PowerAllocation[o])
			}
		}
		if math.Abs(rest-0.5) > 1e-12 {
			t.Errorf("%s: expected others to sum to 0.5, got %v", sub.Name(), rest)
		}
	}
}

func TestDivertPowerUnknownSystem(t *testing.T) {
	s := newTestSim(t)
	before := s.State()
	s.Execute("divert power warp")
	if s.State() != before {
		t.Error("Expected no state change")
	}
	want := "POWER: Unknown system. Available: engines, shields, sensors, weapons"
	if got := lastLine(t, s); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestKeywordNeedsSeparator(t *testing.T) {
	s := newTestSim(t)
	before := s.State()
	for _, cmd := range []string{"divert powerengines", "set course42"} {
		s.Execute(cmd)
		if got := lastLine(t, s); got != unknownCommand {
			t.Errorf("%q: expected %q, got %q", cmd, unknownCommand, got)
		}
	}
	if s.State() != before {
		t.Error("Expected no state change")
	}

	s.Execute("divert power")
	if got := lastLine(t, s); !strings.HasPrefix(got, "POWER: Unknown system.") {
		t.Errorf("Expected the system list for a bare divert, got %q", got)
	}
}

func TestUnknownCommandScenario(t *testing.T) {
	s := newTestSim(t)
	before := s.State()
	s.Execute("foobar")

	if got := lastLine(t, s); got != "ERROR: Unknown command. Type 'help' for available commands." {
		t.Errorf("Unexpected last line %q", got)
	}
	if s.State() != before {
		t.Error("Expected no ShipState change")
	}
}

func TestAnomalyScenario(t *testing.T) {
	s := newTestSim(t)
	hold := s.Events.TriggerAnomaly()
	if hold < 5*time.Second || hold > 15*time.Second {
		t.Fatalf("Expected hold in [5s, 15s], got %v", hold)
	}
	if !s.State().AnomalyDetected {
		t.Fatal("Expected anomaly immediately after trigger")
	}
	if lastLine(t, s) != "SYSTEM: Quantum anomaly detected in vicinity" {
		t.Errorf("Unexpected last line %q", lastLine(t, s))
	}

	s.Advance(hold - 2*FrameDuration)
	if !s.State().AnomalyDetected {
		t.Error("Expected anomaly to persist before its hold elapses")
	}
	s.Advance(3 * FrameDuration)
	if s.State().AnomalyDetected {
		t.Error("Expected anomaly to clear after its hold")
	}
}

func TestStatusCommand(t *testing.T) {
	s := newTestSim(t)
	s.Execute("status")
	want := []string{
		"> status",
		"SHIP: Status report",
		"  Alert Level: NORMAL",
		"  Hull Integrity: 100.0%",
		"  Throttle: 42.0%",
	}
	got := s.Log.Recent(len(want))
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("Line %d: expected %q, got %q", i, w, got[i].Text)
		}
	}
}

func TestToggleCommands(t *testing.T) {
	tests := []struct {
		cmd  string
		line string
		get  func(ShipState) bool
		want bool
	}{
		{"warp off", "ENGINES: Disengaging warp drive", func(s ShipState) bool { return s.WarpEngaged }, false},
		{"shields off", "DEFENSE: Shield systems offline", func(s ShipState) bool { return s.ShieldsUp }, false},
		{"shields on", "DEFENSE: Shield systems online", func(s ShipState) bool { return s.ShieldsUp }, true},
		{"autonav on", "NAV: Auto-navigation engaged", func(s ShipState) bool { return s.AutonavEngaged }, true},
		{"autonav off", "NAV: Auto-navigation disengaged", func(s ShipState) bool { return s.AutonavEngaged }, false},
		{"stealth on", "DEFENSE: Stealth systems activated", func(s ShipState) bool { return s.StealthEngaged }, true},
		{"stealth off", "DEFENSE: Stealth systems deactivated", func(s ShipState) bool { return s.StealthEngaged }, false},
	}
	s := newTestSim(t)
	for _, tt := range tests {
		s.Execute(tt.cmd)
		if got := tt.get(s.State()); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.cmd, tt.want, got)
		}
		if got := lastLine(t, s); got != tt.line {
			t.Errorf("%s: expected %q, got %q", tt.cmd, tt.line, got)
		}
	}
}

func TestHelpAndClear(t *testing.T) {
	s := newTestSim(t)
	s.Execute("help")
	if !hasLinePrefix(s.Log.Lines(), "SYSTEM: Available commands:") {
		t.Error("Expected help header")
	}
	if lastLine(t, s) != "  clear - Clear terminal" {
		t.Errorf("Unexpected last help line %q", lastLine(t, s))
	}

	s.Execute("clear")
	if s.Log.Len() != 1 || lastLine(t, s) != "SYSTEM: Terminal cleared" {
		t.Errorf("Expected only the cleared line, got %v", s.Log.Lines())
	}
}

func TestScanIsDeferred(t *testing.T) {
	s := newTestSim(t)
	s.Events.TriggerAnomaly()
	s.Execute("scan")

	if lastLine(t, s) != "SENSORS: Initiating sensor sweep..." {
		t.Errorf("Unexpected last line %q", lastLine(t, s))
	}
	if !s.Radar.PingActive(s.Clock.Now()) {
		t.Error("Expected scan to start a radar ping")
	}

	f := s.Advance(time.Second)
	if hasLinePrefix(f.Lines, "SENSORS: Sweep complete.") {
		t.Error("Expected sweep result to wait 1.5s")
	}
	f = s.Advance(600 * time.Millisecond)
	if !hasLinePrefix(f.Lines, "SENSORS: Sweep complete.") {
		t.Fatalf("Expected sweep result, got %v", f.Lines)
	}
	if !hasLinePrefix(f.Lines, "SENSORS: WARNING - Quantum anomaly detected!") {
		t.Error("Expected anomaly warning during an anomaly")
	}

	var n int
	for _, l := range f.Lines {
		if strings.HasPrefix(l.Text, "SENSORS: Sweep complete.") {
			if _, err := fmt.Sscanf(l.Text, "SENSORS: Sweep complete. %d contacts detected.", &n); err != nil {
				t.Fatalf("Unparseable sweep line %q", l.Text)
			}
		}
	}
	if n < 3 || n >= 8 {
		t.Errorf("Expected contact count in [3, 8), got %d", n)
	}
}

func TestFullReportIsDeferred(t *testing.T) {
	s := newTestSim(t)
	s.Execute("full report")
	if lastLine(t, s) != "SYSTEM: Generating full status report..." {
		t.Errorf("Unexpected last line %q", lastLine(t, s))
	}

	f := s.Advance(time.Second + FrameDuration)
	want := []string{
		"--- SHIP STATUS REPORT ---",
		"Alert Level: NORMAL",
		"Hull Integrity: 100.0%",
		"Throttle: 42.0%",
		"Engines: NOMINAL (30%)",
		"Shields: ONLINE (30%)",
		"Sensors: ACTIVE (20%)",
		"Weapons: STANDBY (20%)",
		"Systems: WARP=false, SHIELDS=true, AUTONAV=false, STEALTH=false",
	}
	if len(f.Lines) < len(want) {
		t.Fatalf("Expected %d report lines, got %v", len(want), f.Lines)
	}
	got := f.Lines[len(f.Lines)-len(want):]
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("Line %d: expected %q, got %q", i, w, got[i].Text)
		}
	}
}

func TestSetCourse(t *testing.T) {
	s := newTestSim(t)
	s.Execute("set course 421")
	if !s.State().AutonavEngaged {
		t.Error("Expected autonav engaged")
	}
	if got := lastLine(t, s); got != "NAV: Setting course to target 421" {
		t.Errorf("Unexpected line %q", got)
	}
	if i := s.Radar.SelectedIndex(); i < 0 || i >= s.Radar.Count() {
		t.Errorf("Selected index %d out of range", i)
	}

	s.Execute("set course")
	sel, _ := s.Radar.Selected()
	if got := lastLine(t, s); got != "NAV: Setting course to target "+sel.Label() {
		t.Errorf("Expected the selected contact's label, got %q", got)
	}
}

func TestHotkeys(t *testing.T) {
	s := newTestSim(t)
	f := s.Step(Input{Keys: []KeyEvent{
		{Key: KeyRune, Rune: 'W'},
		{Key: KeyRune, Rune: 's'},
		{Key: KeyRune, Rune: 'a'},
		{Key: KeyRune, Rune: 'D'},
		{Key: KeyRune, Rune: ' '},
	}})
	st := s.State()
	if !st.WarpEngaged || st.ShieldsUp || !st.AutonavEngaged || !st.StealthEngaged {
		t.Errorf("Unexpected flags after hotkeys: %+v", st)
	}
	for _, want := range []Sound{SoundWarp, SoundShield, SoundPing} {
		if !hasSound(f.Sounds, want) {
			t.Errorf("Expected %v cue, got %v", want, f.Sounds)
		}
	}
	if !s.Radar.PingActive(s.Clock.Now()) {
		t.Error("Expected space to ping the radar")
	}
	if s.Pings.Count() != 1 {
		t.Errorf("Expected one ripple, got %d", s.Pings.Count())
	}

	s.Step(Input{Keys: []KeyEvent{{Key: KeyRune, Rune: 'T'}}})
	if !s.Terminal.Active {
		t.Error("Expected T to open the terminal")
	}
}

func TestThrottleRingPointer(t *testing.T) {
	s := newTestSim(t)
	f := s.Step(Input{Pointers: []PointerEvent{{
		Action: PointerPress, X: 700, Y: 300, Width: 1280, Height: 720,
		Zone: ZoneCoreRing, LocalX: 1, LocalY: 0,
	}}})
	if got := s.State().Throttle; math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Expected throttle 0.25 at three o'clock, got %v", got)
	}
	if !hasSound(f.Sounds, SoundClick) {
		t.Error("Expected click cue on press")
	}

	beeps := 0
	for i := 0; i < 30; i++ {
		f := s.Step(Input{Pointers: []PointerEvent{{
			Action: PointerDrag, X: 700, Y: 300, Width: 1280, Height: 720,
			Zone: ZoneCoreRing, LocalX: 0, LocalY: 1,
		}}})
		for _, snd := range f.Sounds {
			if snd == SoundBeep {
				beeps++
			}
		}
	}
	if beeps != 3 {
		t.Errorf("Expected 3 beeps over 30 held ticks, got %d", beeps)
	}
	if got := s.State().Throttle; math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Expected throttle 0.5 at six o'clock, got %v", got)
	}

	s.Step(Input{Pointers: []PointerEvent{{Action: PointerRelease}}})
	for i := 0; i < 20; i++ {
		if f := s.Step(Input{}); hasSound(f.Sounds, SoundBeep) {
			t.Fatal("Expected no beeps after release")
		}
	}
}

func TestPointerIgnoredWhileTerminalOpen(t *testing.T) {
	s := newTestSim(t)
	s.Terminal.Open()
	before := s.State().Throttle
	f := s.Step(Input{Pointers: []PointerEvent{{
		Action: PointerPress, X: 10, Y: 10, Width: 1280, Height: 720,
		Zone: ZoneCoreRing, LocalX: 0, LocalY: 1,
	}}})
	if s.State().Throttle != before {
		t.Error("Expected throttle unchanged while the terminal is open")
	}
	if hasSound(f.Sounds, SoundClick) || s.Pings.Count() != 0 {
		t.Error("Expected no click or ripple while the terminal is open")
	}
}

func TestThrottleClampProperty(t *testing.T) {
	s := newTestSim(t)
	for i := 0; i < 360; i++ {
		a := float64(i) * math.Pi / 180
		s.Step(Input{Pointers: []PointerEvent{{
			Action: PointerDrag, Width: 1280, Height: 720,
			Zone: ZoneCoreRing, LocalX: math.Cos(a) * 3, LocalY: math.Sin(a) * 3,
		}}})
		if th := s.State().Throttle; th < 0 || th > 1 {
			t.Fatalf("Throttle %v escaped [0, 1] at angle %d", th, i)
		}
	}

	var st ShipState
	for _, v := range []float64{-5, -0.001, 0, 0.3, 1, 1.001, 42} {
		st.SetThrottle(v)
		if st.Throttle < 0 || st.Throttle > 1 {
			t.Errorf("SetThrottle(%v) gave %v", v, st.Throttle)
		}
	}
}

func TestHologramDrag(t *testing.T) {
	s := newTestSim(t)
	s.Step(Input{Pointers: []PointerEvent{{
		Action: PointerPress, X: 640, Y: 720, Width: 1280, Height: 720, Zone: ZoneHologram,
	}}})
	if !s.Hologram.Dragging {
		t.Fatal("Expected drag to start")
	}
	if math.Abs(s.Hologram.Projector.Theta) > 1e-12 {
		t.Errorf("Expected theta 0 at mid-screen, got %v", s.Hologram.Projector.Theta)
	}
	if math.Abs(s.Hologram.Projector.Phi-math.Pi/2) > 1e-12 {
		t.Errorf("Expected phi π/2 at the bottom edge, got %v", s.Hologram.Projector.Phi)
	}

	// drag continues outside the panel and clamps phi
	s.Step(Input{Pointers: []PointerEvent{{
		Action: PointerDrag, X: 1280, Y: 5000, Width: 1280, Height: 720,
	}}})
	if math.Abs(s.Hologram.Projector.Theta-math.Pi) > 1e-12 {
		t.Errorf("Expected theta π, got %v", s.Hologram.Projector.Theta)
	}
	if s.Hologram.Projector.Phi > math.Pi/2 {
		t.Errorf("Expected phi clamped, got %v", s.Hologram.Projector.Phi)
	}

	s.Step(Input{Pointers: []PointerEvent{{Action: PointerRelease}}})
	if s.Hologram.Dragging {
		t.Error("Expected drag to end on release")
	}
	theta := s.Hologram.Projector.Theta
	s.Step(Input{})
	if math.Abs(s.Hologram.Projector.Theta-theta-s.Config().Hologram.AutoRotate) > 1e-12 {
		t.Error("Expected auto-rotation to resume after release")
	}
}

func TestShieldImpacts(t *testing.T) {
	s := newTestSim(t, func(c *config.Config) { c.Pings.ShieldImpactChance = 1 })
	s.Step(Input{})
	if s.Pings.Count() != 0 {
		t.Error("Expected no impacts on an intact hull")
	}
	s.SetIntegrity(0.5)
	s.Step(Input{})
	if s.Pings.Count() != 1 {
		t.Errorf("Expected one impact ripple, got %d", s.Pings.Count())
	}
	s.Execute("shields off")
	n := s.Pings.Count()
	s.Step(Input{})
	if s.Pings.Count() != n {
		t.Error("Expected no impacts with shields down")
	}
}

func TestResonanceSpike(t *testing.T) {
	s := newTestSim(t, func(c *config.Config) {
		c.Core.ResonanceChance = 1
		c.Core.FluctuationChance = 1
	})
	f := s.Advance(4 * time.Second)
	if hasLinePrefix(f.Lines, "CORE:") {
		t.Fatal("Expected no spike inside the cooldown")
	}
	f = s.Advance(1100 * time.Millisecond)
	if !hasLinePrefix(f.Lines, "CORE: Quantum resonance cascade detected") {
		t.Fatalf("Expected a spike after the cooldown, got %v", f.Lines)
	}
	faulted := 0
	for _, sub := range world.Subsystems() {
		if s.State().SystemStatus[sub] == world.StatusFluctuating {
			faulted++
		}
	}
	if faulted != 1 {
		t.Errorf("Expected exactly one fluctuating subsystem, got %d", faulted)
	}

	// the forced fault reverts after four seconds
	s.Core.cfg.ResonanceChance = 0
	s.Advance(4*time.Second + 2*FrameDuration)
	st := s.State()
	boot := NewShipState()
	for _, sub := range world.Subsystems() {
		if st.SystemStatus[sub] == world.StatusFluctuating {
			t.Errorf("Expected %s to revert, still FLUCTUATING", sub.Name())
		}
		if sub == world.Weapons && st.SystemStatus[sub] != boot.SystemStatus[sub] {
			t.Errorf("Expected weapons back at STANDBY, got %v", st.SystemStatus[sub])
		}
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() (ShipState, []string) {
		cfg := config.Default()
		cfg.Seed = 99
		s := NewSim(cfg, testEpoch)
		var lines []string
		for i := 0; i < 3000; i++ {
			in := Input{}
			if i == 100 {
				in.Keys = []KeyEvent{{Key: KeyRune, Rune: 'w'}}
			}
			for _, l := range s.Step(in).Lines {
				lines = append(lines, l.Text)
			}
		}
		return s.State(), lines
	}
	st1, l1 := run()
	st2, l2 := run()
	if st1 != st2 {
		t.Error("Expected identical state for identical seed and input")
	}
	if strings.Join(l1, "\n") != strings.Join(l2, "\n") {
		t.Error("Expected identical log output for identical seed and input")
	}
}

func TestTogglePanelClick(t *testing.T) {
	s := newTestSim(t)
	click := func(tg Toggle) Frame {
		f := s.Step(Input{Pointers: []PointerEvent{{
			Action: PointerPress, X: 1100, Y: 650, Width: 1280, Height: 720,
			Zone: ZoneToggle, Toggle: tg,
		}}})
		s.Step(Input{Pointers: []PointerEvent{{Action: PointerRelease}}})
		return f
	}

	f := click(ToggleStealth)
	if !s.State().StealthEngaged {
		t.Error("Expected a click on STEALTH to engage stealth")
	}
	if !hasSound(f.Sounds, SoundClick) {
		t.Errorf("Expected click cue, got %v", f.Sounds)
	}
	click(ToggleShields)
	if s.State().ShieldsUp {
		t.Error("Expected a click on SHIELDS to drop the shields")
	}
	click(ToggleStealth)
	if s.State().StealthEngaged {
		t.Error("Expected a second click to disengage stealth")
	}

	// a drag across the row is not a click
	s.Step(Input{Pointers: []PointerEvent{{
		Action: PointerDrag, Width: 1280, Height: 720, Zone: ZoneToggle, Toggle: ToggleWarp,
	}}})
	if s.State().WarpEngaged {
		t.Error("Expected a drag to leave warp alone")
	}

	s.Terminal.Open()
	click(ToggleWarp)
	if s.State().WarpEngaged {
		t.Error("Expected toggles to ignore clicks while the terminal is open")
	}
}

func TestShipStateToggles(t *testing.T) {
	st := NewShipState()
	want := map[Toggle]bool{ToggleWarp: false, ToggleShields: true, ToggleAutonav: false, ToggleStealth: false}
	for _, tg := range Toggles() {
		if got := st.Engaged(tg); got != want[tg] {
			t.Errorf("%s: expected %v at boot, got %v", tg.Label(), want[tg], got)
		}
	}
	if !st.Flip(ToggleAutonav) || !st.AutonavEngaged {
		t.Error("Expected Flip to engage autonav")
	}
	if st.Flip(ToggleCount) {
		t.Error("Expected an unknown toggle to stay off")
	}
	if ToggleWarp.Label() != "WARP" || ToggleStealth.Hotkey() != 'D' {
		t.Errorf("Unexpected toggle naming %q/%c", ToggleWarp.Label(), ToggleStealth.Hotkey())
	}
}
