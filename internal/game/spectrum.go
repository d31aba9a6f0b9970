package game

import (
	"math"

	"github.com/spacehole-rogue/bridgepanel/internal/config"
)

// Bar heights are this fraction of the panel at full signal.
const spectrumHeadroom = 0.88

// MarkerKind labels a spectrum spike.
type MarkerKind uint8

const (
	MarkerComm MarkerKind = iota
	MarkerSensor
	MarkerAnomaly
)

var markerKinds = []MarkerKind{MarkerComm, MarkerSensor, MarkerAnomaly}

func (k MarkerKind) String() string {
	switch k {
	case MarkerComm:
		return "COMM"
	case MarkerSensor:
		return "SENSOR"
	case MarkerAnomaly:
		return "ANOMALY"
	}
	return "UNKNOWN"
}

// Marker is a labelled frequency spike.
type Marker struct {
	Position  float64 // 0.1..0.9 across the panel
	PulseRate float64 // 0.5..2
	Kind      MarkerKind
}

// Frequency returns the marker's label frequency in GHz.
func (m Marker) Frequency() float64 { return m.Position*18 + 120 }

// Spectrum is the harmonic bar display.
type Spectrum struct {
	cfg     config.Spectrum
	Phase   float64
	Markers []Marker
}

// NewSpectrum creates the display at a random phase.
func NewSpectrum(cfg config.Spectrum, rnd *Random) *Spectrum {
	s := &Spectrum{cfg: cfg, Phase: rnd.Range(0, 1000)}
	for i := 0; i < cfg.InitialMarkers; i++ {
		s.Markers = append(s.Markers, newMarker(rnd))
	}
	return s
}

func newMarker(rnd *Random) Marker {
	return Marker{
		Position:  rnd.Range(0.1, 0.9),
		PulseRate: rnd.Range(0.5, 2),
		Kind:      Pick(rnd, markerKinds),
	}
}

// Update advances the phase and churns the markers.
func (s *Spectrum) Update(tc *tickContext) {
	s.Phase += 0.008 + tc.state.Throttle*0.02
	if tc.state.WarpEngaged {
		s.Phase += 0.01
	}
	if tc.rnd.Chance(s.cfg.AddChance) && len(s.Markers) < s.cfg.MaxMarkers {
		s.Markers = append(s.Markers, newMarker(tc.rnd))
	}
	if tc.rnd.Chance(s.cfg.RemoveChance) && len(s.Markers) > s.cfg.MinMarkers {
		i := tc.rnd.IntN(len(s.Markers))
		s.Markers = append(s.Markers[:i], s.Markers[i+1:]...)
	}
}

// Level returns bin i's bar height as a fraction of the panel, 0..0.88.
func (s *Spectrum) Level(i int, st ShipState, rnd *Random) float64 {
	fi := float64(i)
	n := rnd.Noise2(fi*0.17, s.Phase) *
		rnd.Noise2(fi*0.07, s.Phase*0.7) *
		(0.4 + 0.6*rnd.Noise2(fi*0.03, s.Phase*0.3))

	if st.Throttle > 0.5 {
		n = math.Min(1, n+math.Sin(fi*0.2+s.Phase)*st.Throttle*0.4)
	}
	if st.AlertLevel > AlertNormal {
		n = math.Min(1, n+math.Sin(fi*0.3+s.Phase*1.5)*float64(st.AlertLevel)*0.3)
	}
	n = math.Max(0, n)
	return math.Pow(n, 1.2) * spectrumHeadroom
}

// Levels returns every bin's height.
func (s *Spectrum) Levels(st ShipState, rnd *Random) []float64 {
	out := make([]float64, s.cfg.Bins)
	for i := range out {
		out[i] = s.Level(i, st, rnd)
	}
	return out
}

// Pulse returns a marker's current height as a fraction of the panel.
func (s *Spectrum) Pulse(m Marker) float64 {
	return 0.5 + 0.4*math.Sin(s.Phase*m.PulseRate)
}
