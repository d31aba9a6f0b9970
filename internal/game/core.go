package game

import (
	"math"
	"time"

	"github.com/spacehole-rogue/bridgepanel/internal/config"
)

const outlineStep = 0.05 // radians between outline samples

// ShapeParams are the superformula parameters of the core silhouette.
type ShapeParams struct {
	M, N1, N2, N3 float64
}

// ShapeFor derives the silhouette parameters from throttle and core phase.
func ShapeFor(throttle, phase float64) ShapeParams {
	return ShapeParams{
		M:  math.Floor(4 + throttle*10),
		N1: 0.3 + throttle*1.1,
		N2: 1.7 + 0.3*math.Sin(phase*1.3),
		N3: 1.7 + 0.3*math.Cos(phase*1.1),
	}
}

// Superformula evaluates r(θ) = (|cos(mθ/4)|^n2 + |sin(mθ/4)|^n3)^(-1/n1)
// with unit a and b.
func Superformula(theta float64, p ShapeParams) float64 {
	t1 := math.Pow(math.Abs(math.Cos(p.M*theta/4)), p.N2)
	t2 := math.Pow(math.Abs(math.Sin(p.M*theta/4)), p.N3)
	return math.Pow(t1+t2, -1/p.N1)
}

// Point2 is a 2D point in panel units.
type Point2 struct {
	X, Y float64
}

// FlowPoint is one of the energy spokes around the core.
type FlowPoint struct {
	Angle     float64
	Intensity float64 // 0.3..1
	Frequency float64 // 0.5..2
}

// QuantumCore is the generative core display and the throttle ring.
type QuantumCore struct {
	cfg config.Core

	Phase     float64
	Energy    float64 // lags behind the throttle
	Resonance float64 // 1 on a spike, decays every tick
	Flow      []FlowPoint

	lastSpike time.Duration
}

// NewQuantumCore creates the core at half energy.
func NewQuantumCore(cfg config.Core, rnd *Random) *QuantumCore {
	c := &QuantumCore{cfg: cfg, Energy: 0.5}
	for i := 0; i < cfg.FlowPoints; i++ {
		c.Flow = append(c.Flow, FlowPoint{
			Angle:     float64(i) * 2 * math.Pi / float64(cfg.FlowPoints),
			Intensity: rnd.Range(0.3, 1),
			Frequency: rnd.Range(0.5, 2),
		})
	}
	return c
}

// Update advances the core one tick and reports whether a resonance
// spike fired.
func (c *QuantumCore) Update(tc *tickContext) bool {
	s := tc.state
	c.Phase += 0.01 + s.Throttle*0.04
	if s.WarpEngaged {
		c.Phase += 0.02
	}
	c.Energy = lerp(c.Energy, 0.2+s.Throttle*0.8, 0.01)

	spiked := false
	if tc.now-c.lastSpike >= c.cfg.ResonanceCooldown && tc.rnd.Chance(c.cfg.ResonanceChance) {
		c.Resonance = 1
		c.lastSpike = tc.now
		spiked = true
	}
	c.Resonance *= c.cfg.ResonanceDecay
	return spiked
}

// Shape returns the current silhouette parameters.
func (c *QuantumCore) Shape(throttle float64) ShapeParams {
	return ShapeFor(throttle, c.Phase)
}

// Outline samples the silhouette in units of the core radius, already
// rotated by the core's spin.
func (c *QuantumCore) Outline(throttle float64) []Point2 {
	p := c.Shape(throttle)
	spin := c.Phase * 0.7
	cs, sn := math.Cos(spin), math.Sin(spin)

	pts := make([]Point2, 0, int(math.Floor(2*math.Pi/outlineStep))+1)
	for a := 0.0; a < 2*math.Pi; a += outlineStep {
		rr := 0.55 * (0.85 + 0.15*math.Sin(c.Phase*2+a*3))
		if c.Resonance > 0.2 {
			rr *= 1 + math.Sin(a*8+c.Phase*10)*c.Resonance*0.15
		}
		r := rr * Superformula(a, p)
		x, y := r*math.Cos(a), r*math.Sin(a)
		pts = append(pts, Point2{x*cs - y*sn, x*sn + y*cs})
	}
	return pts
}

// FlowSpoke returns a flow point's current angle and its inner and outer
// radius as fractions of the core radius.
func (c *QuantumCore) FlowSpoke(fp FlowPoint) (angle, inner, outer float64) {
	angle = fp.Angle + c.Phase*fp.Frequency*0.1
	outer = 0.8 + c.Energy*0.3 + math.Sin(c.Phase*2+angle)*0.1
	return angle, 0.3, outer
}

// Temperature is the displayed core temperature in °C.
func (c *QuantumCore) Temperature(s ShipState) float64 {
	t := 78 + s.Throttle*40 + c.Resonance*40
	if s.WarpEngaged {
		t += 30
	}
	return t
}

// HandleAngle is where the throttle handle sits on the ring.
func HandleAngle(throttle float64) float64 {
	return -math.Pi/2 + throttle*2*math.Pi
}

// ThrottleFromPointer converts a pointer offset from the ring centre into
// a throttle value. Twelve o'clock is zero, increasing clockwise.
func ThrottleFromPointer(dx, dy float64) float64 {
	a := math.Atan2(dy, dx)
	return clamp01(math.Mod(a+math.Pi/2+2*math.Pi, 2*math.Pi) / (2 * math.Pi))
}
