package world

import "math"

// DefaultFocalDepth is the camera distance used by the hologram.
const DefaultFocalDepth = 5.0

// Projected is a model point after rotation and perspective.
type Projected struct {
	X, Y    float64 // screen-space offset from the panel centre, in scale units
	Z       float64 // rotated depth; larger is nearer the viewer
	Scale   float64 // perspective factor depth/(depth+z)
	Visible bool    // false when culled behind the view
}

// Projector rotates model points about Y (Theta) then X (Phi) and
// applies a perspective divide.
type Projector struct {
	Theta float64
	Phi   float64
	Depth float64
}

// NewProjector returns a projector with the default focal depth.
func NewProjector(theta, phi float64) Projector {
	return Projector{Theta: theta, Phi: phi, Depth: DefaultFocalDepth}
}

// Rotate returns p rotated by the projector's orientation.
func (pr Projector) Rotate(p Vec3) Vec3 {
	ct, st := math.Cos(pr.Theta), math.Sin(pr.Theta)
	cp, sp := math.Cos(pr.Phi), math.Sin(pr.Phi)

	// around Y
	x1 := p.X*ct - p.Z*st
	z1 := p.X*st + p.Z*ct

	// around X
	y2 := p.Y*cp - z1*sp
	z2 := p.Y*sp + z1*cp

	return Vec3{x1, y2, z2}
}

// Project maps p to panel space. scale is the panel radius in output units.
func (pr Projector) Project(p Vec3, scale float64) Projected {
	r := pr.Rotate(p)
	return pr.perspective(r, scale)
}

// perspective applies the divide to an already rotated point. Points with
// negative depth are culled but keep their coordinates so an edge with one
// visible end can still be drawn; at depth+z <= 0 the divide is undefined
// and only Z is set.
func (pr Projector) perspective(r Vec3, scale float64) Projected {
	denom := pr.Depth + r.Z
	if denom <= 0 {
		return Projected{Z: r.Z}
	}
	k := pr.Depth / denom
	return Projected{
		X:       r.X * k * scale,
		Y:       r.Y * k * scale,
		Z:       r.Z,
		Scale:   k,
		Visible: r.Z >= 0,
	}
}

// ProjectRotated applies only the perspective step to a point already in
// camera space.
func (pr Projector) ProjectRotated(r Vec3, scale float64) Projected {
	return pr.perspective(r, scale)
}
