package render

import "github.com/charmbracelet/harmonica"

// Gauge is a needle that chases its target on a damped spring, so bars
// glide instead of jumping when the throttle is dragged.
type Gauge struct {
	spring harmonica.Spring
	Pos    float64
	vel    float64
}

// NewGauge creates a gauge updated fps times a second. A damping ratio
// below 1 lets the needle overshoot a little.
func NewGauge(fps int, frequency, damping float64) *Gauge {
	return &Gauge{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Update moves the needle one frame towards target and returns it.
func (g *Gauge) Update(target float64) float64 {
	g.Pos, g.vel = g.spring.Update(g.Pos, g.vel, target)
	return g.Pos
}

// Snap puts the needle on v at rest.
func (g *Gauge) Snap(v float64) {
	g.Pos, g.vel = v, 0
}
