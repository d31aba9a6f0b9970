package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid value")

// Validate checks ranges and orderings. It reports the first bad field.
func (c *Config) Validate() error {
	checks := []error{
		positiveDuration("events.interval", c.Events.Interval),
		probability("events.chance", c.Events.Chance),
		durationRange("events.anomaly", c.Events.AnomalyMin, c.Events.AnomalyMax),
		durationRange("events.fluctuation", c.Events.FluctuationMin, c.Events.FluctuationMax),
		probability("events.degraded_chance", c.Events.DegradedChance),
		probability("events.alert_chance", c.Events.AlertChance),
		durationRange("events.alert", c.Events.AlertMin, c.Events.AlertMax),

		population("radar.contacts", c.Radar.MinContacts, c.Radar.InitialContacts, c.Radar.MaxContacts),
		probability("radar.add_chance", c.Radar.AddChance),
		probability("radar.remove_chance", c.Radar.RemoveChance),
		positive("radar.trail_length", c.Radar.TrailLength),
		positive("radar.trail_every", c.Radar.TrailEvery),
		positiveDuration("radar.ping_window", c.Radar.PingWindow),

		probability("core.resonance_chance", c.Core.ResonanceChance),
		probability("core.resonance_decay", c.Core.ResonanceDecay),
		probability("core.fluctuation_chance", c.Core.FluctuationChance),
		positiveDuration("core.fluctuation_hold", c.Core.FluctuationHold),
		positive("core.flow_points", c.Core.FlowPoints),

		positive("starfield.stars", c.Starfield.Stars),
		positiveFloat("starfield.width", c.Starfield.Width),
		positiveFloat("starfield.height", c.Starfield.Height),

		atLeast("signal_grid.cols", c.SignalGrid.Cols, 2),
		atLeast("signal_grid.rows", c.SignalGrid.Rows, 2),
		probability("signal_grid.diagonal_chance", c.SignalGrid.DiagonalChance),
		population("signal_grid.packets", c.SignalGrid.MinPackets, c.SignalGrid.InitialPackets, c.SignalGrid.MaxPackets),
		probability("signal_grid.add_chance", c.SignalGrid.AddChance),
		probability("signal_grid.remove_chance", c.SignalGrid.RemoveChance),
		probability("signal_grid.hop_chance", c.SignalGrid.HopChance),

		positive("spectrum.bins", c.Spectrum.Bins),
		population("spectrum.markers", c.Spectrum.MinMarkers, c.Spectrum.InitialMarkers, c.Spectrum.MaxMarkers),
		probability("spectrum.add_chance", c.Spectrum.AddChance),
		probability("spectrum.remove_chance", c.Spectrum.RemoveChance),

		positive("glyph_tape.rows", c.GlyphTape.Rows),
		positive("glyph_tape.width", c.GlyphTape.Width),
		probability("glyph_tape.blank_chance", c.GlyphTape.BlankChance),
		positiveFloat("glyph_tape.line_height", c.GlyphTape.LineHeight),

		positiveFloat("hologram.depth", c.Hologram.Depth),

		positive("terminal.log_size", c.Terminal.LogSize),
		positive("terminal.history_size", c.Terminal.HistorySize),
		nonNegativeDuration("terminal.scan_delay", c.Terminal.ScanDelay),
		nonNegativeDuration("terminal.report_delay", c.Terminal.ReportDelay),

		positiveDuration("pings.life", c.Pings.Life),
		probability("pings.shield_impact_chance", c.Pings.ShieldImpactChance),
		probability("pings.shield_impact_integrity", c.Pings.ShieldImpactIntegrity),

		positive("audio.sample_rate", c.Audio.SampleRate),
		gainRange("audio.volume", c.Audio.Volume),

		positive("display.width", c.Display.Width),
		positive("display.height", c.Display.Height),
		positive("display.cell_width", c.Display.CellWidth),
		positive("display.cell_height", c.Display.CellHeight),
		positive("display.tty_fps", c.Display.TTYFPS),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

func probability(field string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s = %v, must be within [0, 1]: %w", field, v, ErrInvalid)
	}
	return nil
}

func gainRange(field string, v float64) error {
	if v < -1 || v > 0 {
		return fmt.Errorf("%s = %v, must be within [-1, 0]: %w", field, v, ErrInvalid)
	}
	return nil
}

func positive(field string, v int) error {
	return atLeast(field, v, 1)
}

func atLeast(field string, v, least int) error {
	if v < least {
		return fmt.Errorf("%s = %d, must be at least %d: %w", field, v, least, ErrInvalid)
	}
	return nil
}

func positiveFloat(field string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%s = %v, must be positive: %w", field, v, ErrInvalid)
	}
	return nil
}

func positiveDuration(field string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%s = %v, must be positive: %w", field, d, ErrInvalid)
	}
	return nil
}

func nonNegativeDuration(field string, d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%s = %v, must not be negative: %w", field, d, ErrInvalid)
	}
	return nil
}

func durationRange(field string, lo, hi time.Duration) error {
	if err := positiveDuration(field+"_min", lo); err != nil {
		return err
	}
	if hi < lo {
		return fmt.Errorf("%s_max = %v is below %s_min = %v: %w", field, hi, field, lo, ErrInvalid)
	}
	return nil
}

// population checks floor <= initial <= cap.
func population(field string, floor, initial, ceiling int) error {
	if floor < 0 {
		return fmt.Errorf("%s floor = %d, must not be negative: %w", field, floor, ErrInvalid)
	}
	if initial < floor || initial > ceiling {
		return fmt.Errorf("%s initial = %d, must be within [%d, %d]: %w", field, initial, floor, ceiling, ErrInvalid)
	}
	return nil
}
