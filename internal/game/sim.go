package game

import (
	"math"
	"time"

	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/bridgepanel/internal/config"
	"github.com/spacehole-rogue/bridgepanel/internal/world"
)

// Tick intervals (at 60 TPS)
const (
	beepInterval = 10 // throttle drag beeps every 10 ticks while held
)

// tickContext is what every widget sees during one step. state is a copy
// taken before any widget runs, so all widgets agree on it.
type tickContext struct {
	state ShipState
	frame uint64
	now   time.Duration
	dt    float64 // seconds
	rnd   *Random
}

// Frame is what one step emitted.
type Frame struct {
	Tick   uint64
	Lines  []LogLine // terminal lines added during the step
	Sounds []Sound
}

// Sim is the panel simulation. It owns all ship and widget state and is
// only mutated through Step (and the direct triggers used by tests).
type Sim struct {
	cfg *config.Config

	ECS      *ecs.World
	Clock    *Clock
	Tasks    *Scheduler
	Rand     *Random
	Log      *TerminalLog
	Cues     Cues
	Events   *EventScheduler
	Terminal *Terminal
	Ticks    uint64

	Radar    *Radar
	Core     *QuantumCore
	Stars    *Starfield
	Grid     *SignalGrid
	Spectrum *Spectrum
	Tape     *GlyphTape
	Hologram *Hologram
	Pings    *Pings

	state    ShipState
	ringHeld bool // pointer is held on the throttle ring
}

// NewSim creates a simulation from cfg. cfg.Seed seeds every random
// source; epoch is the wall time shown in log timestamps at tick zero.
func NewSim(cfg *config.Config, epoch time.Time) *Sim {
	w := ecs.NewWorld(256)
	clock := NewClock(epoch)
	rnd := NewRandom(cfg.Seed)

	s := &Sim{
		cfg:      cfg,
		ECS:      w,
		Clock:    clock,
		Tasks:    NewScheduler(clock),
		Rand:     rnd,
		Log:      NewTerminalLog(cfg.Terminal.LogSize, clock.Wall),
		Terminal: NewTerminal(cfg.Terminal.HistorySize),
		Radar:    NewRadar(cfg.Radar, w, rnd),
		Core:     NewQuantumCore(cfg.Core, rnd),
		Stars:    NewStarfield(cfg.Starfield, rnd),
		Grid:     NewSignalGrid(cfg.SignalGrid, rnd),
		Spectrum: NewSpectrum(cfg.Spectrum, rnd),
		Tape:     NewGlyphTape(cfg.GlyphTape, rnd),
		Hologram: NewHologram(cfg.Hologram),
		Pings:    NewPings(w, cfg.Pings.Life),
		state:    NewShipState(),
	}
	s.Events = NewEventScheduler(cfg.Events, &s.state, s.Log, s.Tasks, rnd, &s.Cues)
	s.Events.Start()

	s.Log.Add("SYSTEM: Terminal ready")
	s.Log.Add("SYSTEM: Type 'help' for commands")
	return s
}

// Config returns the configuration the Sim was built with.
func (s *Sim) Config() *config.Config { return s.cfg }

// State returns a copy of the ship state.
func (s *Sim) State() ShipState { return s.state }

// Step advances the simulation by one tick.
func (s *Sim) Step(in Input) Frame {
	s.Ticks++
	s.Clock.advance(FrameDuration)
	s.Tasks.RunDue()

	for _, k := range in.Keys {
		s.handleKey(k)
	}
	for _, p := range in.Pointers {
		s.handlePointer(p)
	}

	tc := &tickContext{
		state: s.state,
		frame: s.Ticks,
		now:   s.Clock.Now(),
		dt:    FrameDuration.Seconds(),
		rnd:   s.Rand,
	}
	s.tickRadar(tc)
	s.tickCore(tc)
	s.Stars.Update(tc)
	s.Grid.Update(tc)
	s.Spectrum.Update(tc)
	s.Tape.Update(tc)
	s.Hologram.Update(tc)
	s.tickShieldImpacts(tc)
	s.Pings.Update(tc.dt)

	if s.ringHeld && s.Ticks%beepInterval == 0 {
		s.Cues.Play(SoundBeep)
	}

	return Frame{Tick: s.Ticks, Lines: s.Log.TakeNew(), Sounds: s.Cues.Take()}
}

// Advance steps with no input until d of simulated time has passed and
// returns everything emitted on the way.
func (s *Sim) Advance(d time.Duration) Frame {
	var out Frame
	for end := s.Clock.Now() + d; s.Clock.Now() < end; {
		f := s.Step(Input{})
		out.Tick = f.Tick
		out.Lines = append(out.Lines, f.Lines...)
		out.Sounds = append(out.Sounds, f.Sounds...)
	}
	return out
}

func (s *Sim) tickRadar(tc *tickContext) {
	c, added := s.Radar.Update(tc)
	if added && !tc.state.StealthEngaged && tc.rnd.Chance(0.5) {
		s.Log.Add("RADAR: New contact detected: " + c.Label())
	}
}

func (s *Sim) tickCore(tc *tickContext) {
	if !s.Core.Update(tc) {
		return
	}
	hue := world.HueCyan
	if tc.state.WarpEngaged {
		hue = world.HueLime
	}
	s.Pings.Spawn(corePingX, corePingY, hue)

	if tc.rnd.Chance(s.cfg.Core.FluctuationChance) {
		sub := Pick(tc.rnd, world.Subsystems())
		s.Events.Fluctuate(sub, world.StatusFluctuating, s.cfg.Core.FluctuationHold)
	}
	s.Log.Add("CORE: Quantum resonance cascade detected")
}

// tickShieldImpacts sparks red pings on the shield ellipse while the hull
// is damaged.
func (s *Sim) tickShieldImpacts(tc *tickContext) {
	st := tc.state
	if !st.ShieldsUp || st.ShipIntegrity >= s.cfg.Pings.ShieldImpactIntegrity {
		return
	}
	if !tc.rnd.Chance(s.cfg.Pings.ShieldImpactChance) {
		return
	}
	w, h := s.cfg.Starfield.Width, s.cfg.Starfield.Height
	a := tc.rnd.Range(0, 2*math.Pi)
	d := math.Min(w, h) * 0.6
	s.Pings.Spawn(0.5+math.Cos(a)*d/w, 0.5+math.Sin(a)*d/h, world.HueRed)
}

// SetIntegrity sets hull integrity, clamped to [0, 1].
func (s *Sim) SetIntegrity(v float64) { s.state.SetIntegrity(v) }
