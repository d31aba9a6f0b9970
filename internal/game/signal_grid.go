package game

import (
	"github.com/spacehole-rogue/bridgepanel/internal/config"
	"github.com/spacehole-rogue/bridgepanel/internal/world"
)

// Packet is a token travelling along one lattice edge.
type Packet struct {
	Edge     int
	T        float64 // 0 at the edge's A node, 1 at B
	Dir      float64 // +1 towards B, -1 towards A
	Hue      world.Hue
	Speed    float64
	Size     float64
	Priority bool
}

// PacketView is a packet located in lattice coordinates.
type PacketView struct {
	X, Y     float64
	TX, TY   float64 // trail end, priority packets only
	Hue      world.Hue
	Size     float64
	Priority bool
}

// SignalGrid is the data lattice overlaid on the core panel.
type SignalGrid struct {
	cfg     config.SignalGrid
	Lattice *world.Lattice
	Packets []Packet
}

// NewSignalGrid builds the lattice and its initial packets.
func NewSignalGrid(cfg config.SignalGrid, rnd *Random) *SignalGrid {
	g := &SignalGrid{cfg: cfg}
	g.Rebuild(rnd)
	return g
}

// Rebuild regenerates nodes, edges and packets.
func (g *SignalGrid) Rebuild(rnd *Random) {
	g.Lattice = world.NewLattice(g.cfg.Cols, g.cfg.Rows, g.cfg.DiagonalChance, rnd.Rand())
	g.Packets = g.Packets[:0]
	for i := 0; i < g.cfg.InitialPackets; i++ {
		p := g.newPacket(rnd)
		p.T = rnd.Float()
		p.Dir = rnd.Sign()
		g.Packets = append(g.Packets, p)
	}
}

func (g *SignalGrid) newPacket(rnd *Random) Packet {
	return Packet{
		Edge:     rnd.IntN(len(g.Lattice.Edges)),
		Dir:      1,
		Hue:      Pick(rnd, world.PacketHues),
		Speed:    rnd.Range(0.003, 0.01),
		Size:     rnd.Range(1, 3),
		Priority: rnd.Chance(0.2),
	}
}

// PacketSpeedMultiplier scales packet motion by ship state.
func PacketSpeedMultiplier(s ShipState, priority bool) float64 {
	m := 1 + s.Throttle*2
	if s.WarpEngaged {
		m += 2
	}
	if priority {
		m *= 1.5
	}
	return m
}

// Update pulses node activity and moves packets.
func (g *SignalGrid) Update(tc *tickContext) {
	secs := tc.now.Seconds()
	for i := range g.Lattice.Nodes {
		n := &g.Lattice.Nodes[i]
		n.Activity = 0.3 + 0.7*tc.rnd.Noise3(float64(n.X)*0.2, float64(n.Y)*0.2, secs*0.3)
	}

	for i := range g.Packets {
		p := &g.Packets[i]
		p.T += p.Speed * p.Dir * PacketSpeedMultiplier(tc.state, p.Priority)
		if p.T < 0 || p.T > 1 {
			g.bounce(p, tc.rnd)
		}
	}

	if tc.rnd.Chance(g.cfg.AddChance) && len(g.Packets) < g.cfg.MaxPackets {
		g.Packets = append(g.Packets, g.newPacket(tc.rnd))
	}
	if tc.rnd.Chance(g.cfg.RemoveChance) && len(g.Packets) > g.cfg.MinPackets {
		i := tc.rnd.IntN(len(g.Packets))
		g.Packets = append(g.Packets[:i], g.Packets[i+1:]...)
	}
}

// bounce handles a packet running off either end of its edge. It turns
// around and may hop onto another edge at the node it reached.
func (g *SignalGrid) bounce(p *Packet, rnd *Random) {
	e := g.Lattice.Edges[p.Edge]
	node := e.A
	if p.T > 1 {
		node = e.B
	}
	p.Dir = -p.Dir
	p.T = clamp01(p.T)

	if !rnd.Chance(g.cfg.HopChance) {
		return
	}
	var cand []int
	for _, ei := range g.Lattice.Incident(node) {
		if ei != p.Edge {
			cand = append(cand, ei)
		}
	}
	if len(cand) == 0 {
		return
	}
	p.Edge = Pick(rnd, cand)
	// leave the shared node along the new edge
	if g.Lattice.Edges[p.Edge].A == node {
		p.T, p.Dir = 0, 1
	} else {
		p.T, p.Dir = 1, -1
	}
}

// packetPos returns a point at t along the packet's edge, in lattice coordinates.
func (g *SignalGrid) packetPos(p Packet, t float64) (float64, float64) {
	ax, ay, bx, by := g.Lattice.Endpoints(p.Edge)
	return lerp(ax, bx, t), lerp(ay, by, t)
}

// PacketViews locates every packet for the renderer.
func (g *SignalGrid) PacketViews() []PacketView {
	out := make([]PacketView, len(g.Packets))
	for i, p := range g.Packets {
		x, y := g.packetPos(p, p.T)
		v := PacketView{X: x, Y: y, TX: x, TY: y, Hue: p.Hue, Size: p.Size, Priority: p.Priority}
		if p.Priority {
			v.TX, v.TY = g.packetPos(p, p.T-0.1*p.Dir)
		}
		out[i] = v
	}
	return out
}
