package game

import (
	"math"

	"github.com/spacehole-rogue/bridgepanel/internal/config"
	"github.com/spacehole-rogue/bridgepanel/internal/world"
)

// HoloEdge is a projected model edge ready to draw.
type HoloEdge struct {
	A, B       world.Projected
	Hue        world.Hue
	Brightness float64 // 0.2 far .. 0.7 near, halved under stealth
}

// HoloVertex is a projected, visible model vertex.
type HoloVertex struct {
	P          world.Projected
	Hue        world.Hue
	Brightness float64 // 0.3..0.9
	Size       float64 // 4 far .. 2 near
}

// HoloLabel is a projected label point.
type HoloLabel struct {
	P          world.Projected
	Text       string
	ShowText   bool // only points strictly in front carry text
	Brightness float64
}

// HoloFrame is everything the hologram panel draws in one frame.
type HoloFrame struct {
	Edges    []HoloEdge
	Vertices []HoloVertex
	Labels   []HoloLabel
}

// Hologram is the rotating ship schematic.
type Hologram struct {
	cfg       config.Hologram
	Model     *world.HologramModel
	Projector world.Projector
	Dragging  bool
}

// NewHologram builds the schematic tilted by the configured angle.
func NewHologram(cfg config.Hologram) *Hologram {
	pr := world.NewProjector(0, cfg.TiltDegrees*math.Pi/180)
	pr.Depth = cfg.Depth
	return &Hologram{cfg: cfg, Model: world.BuildStarshipModel(), Projector: pr}
}

// Update spins the model while nobody is dragging it.
func (h *Hologram) Update(tc *tickContext) {
	if !h.Dragging {
		h.Projector.Theta += h.cfg.AutoRotate
	}
}

// BeginDrag starts a drag gesture.
func (h *Hologram) BeginDrag() { h.Dragging = true }

// EndDrag ends the drag gesture.
func (h *Hologram) EndDrag() { h.Dragging = false }

// DragTo maps an absolute pointer position onto the orientation.
func (h *Hologram) DragTo(x, y, width, height float64) {
	if !h.Dragging || width <= 0 || height <= 0 {
		return
	}
	h.Projector.Theta = remap(x, 0, width, -math.Pi, math.Pi)
	h.Projector.Phi = clamp(remap(y, 0, height, -math.Pi/2, math.Pi/2), -math.Pi/2, math.Pi/2)
}

// Frame projects the model at scale for the renderer.
func (h *Hologram) Frame(scale float64, stealth bool) HoloFrame {
	dim := 1.0
	if stealth {
		dim = 0.5
	}
	pr := h.Projector
	verts := make([]world.Projected, len(h.Model.Vertices))
	for i, v := range h.Model.Vertices {
		verts[i] = pr.Project(v.Pos, scale)
	}

	var f HoloFrame
	for _, e := range h.Model.Edges {
		a, b := verts[e[0]], verts[e[1]]
		if !a.Visible && !b.Visible {
			continue
		}
		depth := (a.Z+b.Z)*0.5 + 1
		f.Edges = append(f.Edges, HoloEdge{
			A: a, B: b,
			Hue:        h.Model.Vertices[e[0]].Hue,
			Brightness: remap(depth, 0, 2, 0.2, 0.7) * dim,
		})
	}
	for i, p := range verts {
		if !p.Visible {
			continue
		}
		depth := p.Z + 1
		f.Vertices = append(f.Vertices, HoloVertex{
			P:          p,
			Hue:        h.Model.Vertices[i].Hue,
			Brightness: remap(depth, 0, 2, 0.3, 0.9) * dim,
			Size:       remap(depth, 0, 2, 4, 2),
		})
	}
	for _, lp := range h.Model.Labels {
		p := pr.Project(lp.Pos, scale)
		if !p.Visible {
			continue
		}
		f.Labels = append(f.Labels, HoloLabel{
			P:          p,
			Text:       lp.Label,
			ShowText:   p.Z > 0,
			Brightness: remap(p.Z+1, 0, 2, 0.3, 0.9) * dim,
		})
	}
	return f
}
