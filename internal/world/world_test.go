package world

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestParseSubsystem(t *testing.T) {
	tests := []struct {
		in   string
		want Subsystem
		ok   bool
	}{
		{"engines", Engines, true},
		{"  SHIELDS ", Shields, true},
		{"sensors", Sensors, true},
		{"weapons", Weapons, true},
		{"warp", SubsystemCount, false},
		{"", SubsystemCount, false},
	}
	for _, tt := range tests {
		got, ok := ParseSubsystem(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSubsystem(%q): expected (%v, %v), got (%v, %v)", tt.in, tt.want, tt.ok, got, ok)
		}
	}
}

func TestSubsystemTemplates(t *testing.T) {
	sum := 0.0
	for _, s := range Subsystems() {
		sum += SubsystemTemplates[s].Power
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("Expected boot power to sum to 1, got %v", sum)
	}
	if Weapons.RevertStatus() != StatusStandby {
		t.Errorf("Expected weapons to revert to STANDBY, got %v", Weapons.RevertStatus())
	}
	if Shields.RevertStatus() != StatusNominal {
		t.Errorf("Expected shields to revert to NOMINAL, got %v", Shields.RevertStatus())
	}
	if got := SubsystemNames(); got != "engines, shields, sensors, weapons" {
		t.Errorf("Unexpected subsystem names %q", got)
	}
	if StatusFluctuating.String() != "FLUCTUATING" {
		t.Errorf("Expected FLUCTUATING, got %s", StatusFluctuating)
	}
}

func TestLatticeTopology(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	l := NewLattice(16, 9, 0.2, rng)

	if len(l.Nodes) != 16*9 {
		t.Fatalf("Expected %d nodes, got %d", 16*9, len(l.Nodes))
	}

	orth := 15*9 + 16*8
	maxEdges := orth + 2*15*8
	if len(l.Edges) < orth || len(l.Edges) > maxEdges {
		t.Errorf("Expected edge count in [%d, %d], got %d", orth, maxEdges, len(l.Edges))
	}

	for i, n := range l.Nodes {
		if n.Activity < 0.3 || n.Activity > 1 {
			t.Errorf("Node %d activity %v out of range", i, n.Activity)
		}
		if len(l.Incident(i)) < 2 {
			t.Errorf("Node %d has only %d incident edges", i, len(l.Incident(i)))
		}
	}

	for i, e := range l.Edges {
		found := false
		for _, ei := range l.Incident(e.B) {
			if ei == i {
				found = true
			}
		}
		if !found {
			t.Errorf("Edge %d missing from incident list of node %d", i, e.B)
		}
	}
}

func TestLatticeIndexBounds(t *testing.T) {
	l := NewLattice(4, 3, 0, rand.New(rand.NewPCG(1, 2)))
	if l.Index(-1, 0) != -1 || l.Index(4, 0) != -1 || l.Index(0, 3) != -1 {
		t.Error("Expected out-of-bounds index to be -1")
	}
	if l.Index(3, 2) != 11 {
		t.Errorf("Expected index 11, got %d", l.Index(3, 2))
	}
	if l.Incident(-1) != nil || l.Incident(100) != nil {
		t.Error("Expected nil incident list for invalid node")
	}
	// no diagonals at chance 0
	if len(l.Edges) != 3*3+4*2 {
		t.Errorf("Expected 17 edges, got %d", len(l.Edges))
	}
}

func TestStarshipModel(t *testing.T) {
	m := BuildStarshipModel()

	wantVerts := hullSections*hullPointsPerRing + 2*len(wingOutline) + 2*nozzlePoints
	if len(m.Vertices) != wantVerts {
		t.Errorf("Expected %d vertices, got %d", wantVerts, len(m.Vertices))
	}

	wantEdges := hullSections*hullPointsPerRing + (hullSections-1)*hullPointsPerRing +
		2*len(wingOutline) + 2*nozzlePoints
	if len(m.Edges) != wantEdges {
		t.Errorf("Expected %d edges, got %d", wantEdges, len(m.Edges))
	}

	for i, e := range m.Edges {
		if e[0] < 0 || e[0] >= len(m.Vertices) || e[1] < 0 || e[1] >= len(m.Vertices) {
			t.Errorf("Edge %d references missing vertex: %v", i, e)
		}
	}

	if m.Vertices[0].Hue != HueCyan {
		t.Errorf("Expected bow section cyan, got %v", m.Vertices[0].Hue)
	}
	if m.Vertices[hullSections*hullPointsPerRing-1].Hue != HueMagenta {
		t.Error("Expected stern section magenta")
	}
	if len(m.Labels) != 6 {
		t.Errorf("Expected 6 label points, got %d", len(m.Labels))
	}
}

func TestProjectorCulling(t *testing.T) {
	pr := NewProjector(0, 0)

	behind := pr.Project(Vec3{0.3, 0.2, -pr.Depth}, 100)
	if behind.Visible {
		t.Error("Expected point at z = -depth to be culled")
	}

	plane := pr.Project(Vec3{0.5, -0.25, 0}, 100)
	if !plane.Visible {
		t.Fatal("Expected point at z = 0 to be visible")
	}
	if plane.Scale != 1 {
		t.Errorf("Expected scale 1 at z = 0, got %v", plane.Scale)
	}
	if plane.X != 50 || plane.Y != -25 {
		t.Errorf("Expected (50, -25), got (%v, %v)", plane.X, plane.Y)
	}

	near := pr.Project(Vec3{0, 0, 5}, 1)
	if !near.Visible || math.Abs(near.Scale-0.5) > 1e-12 {
		t.Errorf("Expected scale 0.5 at z = depth, got %v", near.Scale)
	}
}

func TestProjectorRotation(t *testing.T) {
	// quarter turn about Y swings +X towards the viewer
	pr := NewProjector(math.Pi/2, 0)
	r := pr.Rotate(Vec3{1, 0, 0})
	if math.Abs(r.X) > 1e-12 || math.Abs(r.Z-1) > 1e-12 {
		t.Errorf("Expected (0, 0, 1), got %v", r)
	}

	pr = NewProjector(0, math.Pi/2)
	r = pr.Rotate(Vec3{0, 1, 0})
	if math.Abs(r.Y) > 1e-12 || math.Abs(r.Z-1) > 1e-12 {
		t.Errorf("Expected (0, 0, 1), got %v", r)
	}
}
