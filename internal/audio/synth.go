// Package audio synthesises the console's sound cues with beep.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/spacehole-rogue/bridgepanel/internal/game"
)

// Envelope shapes a finite streamer with a linear attack and an
// exponential release, so cues start and stop without clicks.
type Envelope struct {
	streamer beep.Streamer
	total    int
	attack   int
	release  int
	pos      int
}

// NewEnvelope plays s for d, fading in over attack and out over release.
func NewEnvelope(s beep.Streamer, rate beep.SampleRate, d, attack, release time.Duration) *Envelope {
	return &Envelope{
		streamer: beep.Take(rate.N(d), s),
		total:    rate.N(d),
		attack:   max(1, rate.N(attack)),
		release:  max(1, rate.N(release)),
	}
}

func (e *Envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if e.pos < e.attack {
			g = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; left < e.release {
			g *= math.Pow(float64(left)/float64(e.release), 2)
		}
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *Envelope) Err() error { return e.streamer.Err() }

// Sweep is a sine whose pitch glides from one frequency to another.
type Sweep struct {
	rate     beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

// NewSweep glides from one frequency to another over d.
func NewSweep(rate beep.SampleRate, from, to float64, d time.Duration) *Sweep {
	return &Sweep{rate: rate, from: from, to: to, total: max(1, rate.N(d))}
}

func (s *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}
		t := float64(s.pos) / float64(s.total)
		// exponential glide sounds even to the ear
		f := s.from * math.Pow(s.to/s.from, t)
		s.phase += 2 * math.Pi * f / float64(s.rate)
		v := math.Sin(s.phase)
		samples[i] = [2]float64{v, v}
		s.pos++
	}
	return len(samples), true
}

func (s *Sweep) Err() error { return nil }

// gain scales s by vol, 0 silences it.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(rate beep.SampleRate, freq float64, square bool) beep.Streamer {
	var s beep.Streamer
	var err error
	if square {
		s, err = generators.SquareTone(rate, freq)
	} else {
		s, err = generators.SineTone(rate, freq)
	}
	if err != nil {
		return beep.Silence(-1)
	}
	return s
}

func note(rate beep.SampleRate, freq float64, square bool, d time.Duration) beep.Streamer {
	return NewEnvelope(tone(rate, freq, square), rate, d, 4*time.Millisecond, d/2)
}

// CueDuration is how long each cue plays.
var CueDuration = [game.SoundCount]time.Duration{
	game.SoundWarp:   700 * time.Millisecond,
	game.SoundShield: 240 * time.Millisecond,
	game.SoundPing:   250 * time.Millisecond,
	game.SoundClick:  25 * time.Millisecond,
	game.SoundBeep:   40 * time.Millisecond,
	game.SoundAlert:  450 * time.Millisecond,
}

// Cue builds the streamer for a sound. master is added to the unit gain,
// so -1 is silent and 0 is full volume. Unknown sounds return nil.
func Cue(s game.Sound, rate beep.SampleRate, master float64) beep.Streamer {
	var out beep.Streamer
	switch s {
	case game.SoundWarp:
		d := CueDuration[s]
		out = gain(NewEnvelope(NewSweep(rate, 110, 660, d), rate, d, 40*time.Millisecond, 200*time.Millisecond), 0.5)
	case game.SoundShield:
		half := CueDuration[s] / 2
		out = gain(beep.Seq(note(rate, 330, false, half), note(rate, 495, false, half)), 0.5)
	case game.SoundPing:
		d := CueDuration[s]
		out = gain(NewEnvelope(tone(rate, 1320, false), rate, d, 2*time.Millisecond, d), 0.6)
	case game.SoundClick:
		out = gain(note(rate, 1800, true, CueDuration[s]), 0.2)
	case game.SoundBeep:
		out = gain(note(rate, 880, false, CueDuration[s]), 0.3)
	case game.SoundAlert:
		step := CueDuration[s] / 3
		out = gain(beep.Seq(
			note(rate, 440, true, step),
			note(rate, 330, true, step),
			note(rate, 440, true, step),
		), 0.25)
	default:
		return nil
	}
	return &effects.Gain{Streamer: out, Gain: master}
}
