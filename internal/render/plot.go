package render

import (
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Trend keeps a rolling history of a 0..1 reading and plots it.
type Trend struct {
	samples []float64
	limit   int
	every   int // keep one sample per every frames
	count   int
}

// NewTrend keeps up to limit samples, one per every calls to Push.
func NewTrend(limit, every int) *Trend {
	return &Trend{limit: limit, every: max(1, every)}
}

// Push offers a sample.
func (t *Trend) Push(v float64) {
	t.count++
	if t.count%t.every != 0 {
		return
	}
	if len(t.samples) >= t.limit {
		copy(t.samples, t.samples[1:])
		t.samples[len(t.samples)-1] = v
		return
	}
	t.samples = append(t.samples, v)
}

// Len returns the number of stored samples.
func (t *Trend) Len() int { return len(t.samples) }

// Lines renders the history as an ASCII chart of the given plot size.
// The y axis is fixed to 0..1 so a flat reading still draws.
func (t *Trend) Lines(width, height int, caption string) []string {
	if len(t.samples) < 2 || width < 2 || height < 1 {
		return nil
	}
	chart := asciigraph.Plot(t.samples,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
	return strings.Split(chart, "\n")
}
