package world

import "math/rand/v2"

// Node is a lattice point of the signal grid.
type Node struct {
	X, Y     int
	ID       int
	Activity float64 // 0.3..1, rewritten every tick by the grid
}

// Edge is an undirected link between two node indices. A is always the
// node that comes first in row-major order.
type Edge struct {
	A, B int
}

// Lattice is the fixed node/edge topology of the signal grid.
// It is immutable after construction except for node activity.
type Lattice struct {
	Cols  int
	Rows  int
	Nodes []Node
	Edges []Edge

	incident [][]int // node index → edge indices touching it
}

// NewLattice builds a cols×rows lattice with 4-neighbour links and, per
// cell, each of the two diagonals with probability diagChance.
func NewLattice(cols, rows int, diagChance float64, rng *rand.Rand) *Lattice {
	l := &Lattice{
		Cols:  cols,
		Rows:  rows,
		Nodes: make([]Node, 0, cols*rows),
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			l.Nodes = append(l.Nodes, Node{
				X:        x,
				Y:        y,
				ID:       y*cols + x,
				Activity: 0.3 + rng.Float64()*0.7,
			})
		}
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if x < cols-1 {
				l.Edges = append(l.Edges, Edge{l.Index(x, y), l.Index(x+1, y)})
			}
			if y < rows-1 {
				l.Edges = append(l.Edges, Edge{l.Index(x, y), l.Index(x, y+1)})
			}
			// Sparse diagonals break up the checkerboard look
			if x < cols-1 && y < rows-1 && rng.Float64() < diagChance {
				l.Edges = append(l.Edges, Edge{l.Index(x, y), l.Index(x+1, y+1)})
			}
			if x > 0 && y < rows-1 && rng.Float64() < diagChance {
				l.Edges = append(l.Edges, Edge{l.Index(x, y), l.Index(x-1, y+1)})
			}
		}
	}

	l.incident = make([][]int, len(l.Nodes))
	for i, e := range l.Edges {
		l.incident[e.A] = append(l.incident[e.A], i)
		l.incident[e.B] = append(l.incident[e.B], i)
	}
	return l
}

// Index returns the node index for (x, y), or -1 when out of bounds.
func (l *Lattice) Index(x, y int) int {
	if x < 0 || x >= l.Cols || y < 0 || y >= l.Rows {
		return -1
	}
	return y*l.Cols + x
}

// Node returns the node at (x, y). Out-of-bounds returns a zero node.
func (l *Lattice) Node(x, y int) Node {
	if i := l.Index(x, y); i >= 0 {
		return l.Nodes[i]
	}
	return Node{}
}

// Incident returns the indices of every edge touching node.
func (l *Lattice) Incident(node int) []int {
	if node < 0 || node >= len(l.incident) {
		return nil
	}
	return l.incident[node]
}

// Endpoints returns the lattice coordinates of both ends of edge i.
func (l *Lattice) Endpoints(i int) (ax, ay, bx, by float64) {
	e := l.Edges[i]
	a, b := l.Nodes[e.A], l.Nodes[e.B]
	return float64(a.X), float64(a.Y), float64(b.X), float64(b.Y)
}
