package world

import "math"

// Vec3 is a point in hologram model space (roughly -1..1 on every axis).
type Vec3 struct {
	X, Y, Z float64
}

// Vertex is a model point with its display hue.
type Vertex struct {
	Pos Vec3
	Hue Hue
}

// LabelPoint is a named feature anchored in model space.
type LabelPoint struct {
	Pos   Vec3
	Label string
}

// HologramModel is the static wireframe shown in the hologram panel.
// Built once, never mutated; orientation lives in the Projector.
type HologramModel struct {
	Vertices []Vertex
	Edges    [][2]int // vertex index pairs
	Labels   []LabelPoint
}

// Hull and nozzle geometry.
const (
	hullSections      = 10
	hullPointsPerRing = 8
	hullForeSections  = 6 // sections drawn cyan; the rest are magenta
	nozzlePoints      = 8
	nozzleRadius      = 0.15
	nozzleZ           = 1.1
	nozzleOffsetX     = 0.25
)

// wingOutline is the starboard wing; the port wing mirrors it on X.
var wingOutline = []Vec3{
	{0.1, 0, -0.2}, // root front
	{0.6, 0, 0.2},  // tip front
	{0.6, 0, 0.6},  // tip back
	{0.1, 0, 0.4},  // root back
}

// BuildStarshipModel generates the schematic: a tapered hull of stacked
// rings, two flat wings and two engine nozzles.
func BuildStarshipModel() *HologramModel {
	m := &HologramModel{}

	for s := 0; s < hullSections; s++ {
		z := -1 + 2*float64(s)/float64(hullSections-1)
		// wider in the middle, tapering at both ends
		radius := 0.4 * (1 - math.Pow(math.Abs(z)*1.2, 2))

		hue := HueCyan
		if s >= hullForeSections {
			hue = HueMagenta
		}

		base := s * hullPointsPerRing
		for p := 0; p < hullPointsPerRing; p++ {
			angle := float64(p) * 2 * math.Pi / hullPointsPerRing
			r := radius * (1 + 0.1*math.Sin(angle*2+z*3))
			m.Vertices = append(m.Vertices, Vertex{
				Pos: Vec3{r * math.Cos(angle), r * math.Sin(angle), z},
				Hue: hue,
			})

			if p > 0 {
				m.Edges = append(m.Edges, [2]int{base + p, base + p - 1})
			}
			if p == hullPointsPerRing-1 {
				m.Edges = append(m.Edges, [2]int{base + p, base})
			}
			if s < hullSections-1 {
				m.Edges = append(m.Edges, [2]int{base + p, base + hullPointsPerRing + p})
			}
		}
	}

	for _, side := range []float64{-1, 1} {
		start := len(m.Vertices)
		for _, p := range wingOutline {
			m.Vertices = append(m.Vertices, Vertex{Pos: Vec3{p.X * side, p.Y, p.Z}, Hue: HueLime})
		}
		m.addLoop(start, len(wingOutline))
	}

	for _, cx := range []float64{-nozzleOffsetX, nozzleOffsetX} {
		start := len(m.Vertices)
		for i := 0; i < nozzlePoints; i++ {
			angle := float64(i) * 2 * math.Pi / nozzlePoints
			m.Vertices = append(m.Vertices, Vertex{
				Pos: Vec3{cx + nozzleRadius*math.Cos(angle), nozzleRadius * math.Sin(angle), nozzleZ},
				Hue: HueAmber,
			})
		}
		m.addLoop(start, nozzlePoints)
	}

	m.Labels = []LabelPoint{
		{Vec3{0, 0, -1}, "FORWARD SENSOR"},
		{Vec3{0, 0.35, 0}, "BRIDGE"},
		{Vec3{0, -0.35, 0.2}, "CARGO"},
		{Vec3{-nozzleOffsetX, 0, nozzleZ}, "ENGINE L"},
		{Vec3{nozzleOffsetX, 0, nozzleZ}, "ENGINE R"},
		{Vec3{0.5, 0, 0.3}, "WING"},
	}
	return m
}

// addLoop closes n consecutive vertices starting at start into a ring.
func (m *HologramModel) addLoop(start, n int) {
	for i := 0; i < n; i++ {
		m.Edges = append(m.Edges, [2]int{start + i, start + (i+1)%n})
	}
}
