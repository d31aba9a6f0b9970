// Package config holds the tunable parameters of the bridge panel.
// Defaults are embedded; a user file only needs the keys it changes.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the full tuning set, one section per component.
type Config struct {
	Seed int64 `yaml:"seed"` // 0 derives the seed from the wall clock

	Events     Events     `yaml:"events"`
	Radar      Radar      `yaml:"radar"`
	Core       Core       `yaml:"core"`
	Starfield  Starfield  `yaml:"starfield"`
	SignalGrid SignalGrid `yaml:"signal_grid"`
	Spectrum   Spectrum   `yaml:"spectrum"`
	GlyphTape  GlyphTape  `yaml:"glyph_tape"`
	Hologram   Hologram   `yaml:"hologram"`
	Terminal   Terminal   `yaml:"terminal"`
	Pings      Pings      `yaml:"pings"`
	Audio      Audio      `yaml:"audio"`
	Display    Display    `yaml:"display"`
}

// Events tunes the periodic random ship events.
type Events struct {
	Interval       time.Duration `yaml:"interval"`
	Chance         float64       `yaml:"chance"` // chance that a tick does anything
	AnomalyMin     time.Duration `yaml:"anomaly_min"`
	AnomalyMax     time.Duration `yaml:"anomaly_max"`
	FluctuationMin time.Duration `yaml:"fluctuation_min"`
	FluctuationMax time.Duration `yaml:"fluctuation_max"`
	DegradedChance float64       `yaml:"degraded_chance"`
	AlertChance    float64       `yaml:"alert_chance"`
	AlertMin       time.Duration `yaml:"alert_min"`
	AlertMax       time.Duration `yaml:"alert_max"`
}

// Radar tunes the contact population and the sweep trail.
type Radar struct {
	InitialContacts int           `yaml:"initial_contacts"`
	MinContacts     int           `yaml:"min_contacts"`
	MaxContacts     int           `yaml:"max_contacts"`
	AddChance       float64       `yaml:"add_chance"`
	RemoveChance    float64       `yaml:"remove_chance"`
	TrailLength     int           `yaml:"trail_length"`
	TrailEvery      int           `yaml:"trail_every"` // ticks between trail samples
	PingWindow      time.Duration `yaml:"ping_window"`
}

// Core tunes the quantum core's resonance spikes.
type Core struct {
	ResonanceCooldown time.Duration `yaml:"resonance_cooldown"`
	ResonanceChance   float64       `yaml:"resonance_chance"`
	ResonanceDecay    float64       `yaml:"resonance_decay"`
	FluctuationChance float64       `yaml:"fluctuation_chance"`
	FluctuationHold   time.Duration `yaml:"fluctuation_hold"`
	FlowPoints        int           `yaml:"flow_points"`
}

// Starfield sizes the background star field.
type Starfield struct {
	Stars  int     `yaml:"stars"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SignalGrid sizes the core lattice and its packet traffic.
type SignalGrid struct {
	Cols           int     `yaml:"cols"`
	Rows           int     `yaml:"rows"`
	DiagonalChance float64 `yaml:"diagonal_chance"`
	InitialPackets int     `yaml:"initial_packets"`
	MinPackets     int     `yaml:"min_packets"`
	MaxPackets     int     `yaml:"max_packets"`
	AddChance      float64 `yaml:"add_chance"`
	RemoveChance   float64 `yaml:"remove_chance"`
	HopChance      float64 `yaml:"hop_chance"`
}

// Spectrum sizes the harmonic spectrum and its anomaly markers.
type Spectrum struct {
	Bins           int     `yaml:"bins"`
	InitialMarkers int     `yaml:"initial_markers"`
	MinMarkers     int     `yaml:"min_markers"`
	MaxMarkers     int     `yaml:"max_markers"`
	AddChance      float64 `yaml:"add_chance"`
	RemoveChance   float64 `yaml:"remove_chance"`
}

// GlyphTape sizes the scrolling glyph tape.
type GlyphTape struct {
	Rows        int     `yaml:"rows"`
	Width       int     `yaml:"width"`
	BlankChance float64 `yaml:"blank_chance"`
	LineHeight  float64 `yaml:"line_height"`
}

// Hologram sets the schematic projection.
type Hologram struct {
	Depth       float64 `yaml:"depth"`
	TiltDegrees float64 `yaml:"tilt_degrees"` // initial phi
	AutoRotate  float64 `yaml:"auto_rotate"`  // theta per tick while idle
}

// Terminal bounds the log and command history and sets command delays.
type Terminal struct {
	LogSize     int           `yaml:"log_size"`
	HistorySize int           `yaml:"history_size"`
	ScanDelay   time.Duration `yaml:"scan_delay"`
	ReportDelay time.Duration `yaml:"report_delay"`
}

// Pings sets ripple lifetime and shield impact odds.
type Pings struct {
	Life                  time.Duration `yaml:"life"`
	ShieldImpactChance    float64       `yaml:"shield_impact_chance"`
	ShieldImpactIntegrity float64       `yaml:"shield_impact_integrity"`
}

// Audio controls sound cues.
type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // gain added to every cue, -1 is silent
}

// Display sets the window and cell size in pixels and the terminal frame rate.
type Display struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	TTYFPS     int `yaml:"tty_fps"`
}

// Default returns the embedded defaults.
func Default() *Config {
	var c Config
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		panic(fmt.Sprintf("embedded defaults: %v", err))
	}
	return &c
}

// Load overlays data on the defaults and validates the result.
func Load(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// LoadFile reads and loads a config file. An empty path yields the defaults.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Load(data)
}

// ResolveSeed fills in a zero seed from now. A configured seed is kept.
func (c *Config) ResolveSeed(now time.Time) int64 {
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
		if c.Seed == 0 {
			c.Seed = 1
		}
	}
	return c.Seed
}
