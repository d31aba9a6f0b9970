package game

import (
	"github.com/spacehole-rogue/bridgepanel/internal/config"
	"github.com/spacehole-rogue/bridgepanel/internal/world"
)

// Star is one point of the background field. Z is depth; PZ is the depth
// before the last move, used to draw the streak.
type Star struct {
	X, Y  float64
	Z, PZ float64
	Size  float64
	Hue   world.Hue
}

// Streak is a star projected for drawing, in pixels from the field centre.
type Streak struct {
	X0, Y0, X1, Y1 float64 // previous → current
	Size           float64
	Intensity      float64 // 0.2 far .. 1 near, halved under stealth
	Hue            world.Hue
	Echo           bool    // warp only: blue-shifted trailing segment
	EX, EY         float64 // echo end point
	Bright         bool    // large star gets a head dot
}

// Starfield is the fly-through star background.
type Starfield struct {
	w, h  float64
	Stars []Star
}

// NewStarfield scatters the stars through the whole depth range.
func NewStarfield(cfg config.Starfield, rnd *Random) *Starfield {
	sf := &Starfield{w: cfg.Width, h: cfg.Height, Stars: make([]Star, cfg.Stars)}
	for i := range sf.Stars {
		s := &sf.Stars[i]
		s.X = rnd.Range(-sf.w, sf.w)
		s.Y = rnd.Range(-sf.h, sf.h)
		s.Z = rnd.Range(1, sf.w)
		s.PZ = s.Z
		s.Size = rnd.Range(0.5, 1.2)
		s.Hue = Pick(rnd, world.StarHues)
	}
	return sf
}

// StarSpeed is the per-tick depth change for the given state.
func StarSpeed(s ShipState) float64 {
	v := 6 + s.Throttle*18
	if s.WarpEngaged {
		v += 28
	}
	return v
}

// Update moves every star towards the viewer, respawning those that pass it.
func (sf *Starfield) Update(tc *tickContext) {
	spd := StarSpeed(tc.state)
	warp := tc.state.WarpEngaged
	for i := range sf.Stars {
		s := &sf.Stars[i]
		s.PZ = s.Z
		s.Z -= spd
		if s.Z < 1 {
			s.X = tc.rnd.Range(-sf.w, sf.w)
			s.Y = tc.rnd.Range(-sf.h, sf.h)
			s.Z = sf.w
			s.PZ = s.Z
			s.Hue = Pick(tc.rnd, world.StarHues)
			s.Size = tc.rnd.Range(0.5, 1.2)
			if warp {
				s.Size += tc.rnd.Range(0, 0.5)
			}
		}
	}
}

// Streaks projects every star for the renderer.
func (sf *Starfield) Streaks(s ShipState) []Streak {
	out := make([]Streak, len(sf.Stars))
	for i, st := range sf.Stars {
		sx, sy := st.X/st.Z*sf.w/2, st.Y/st.Z*sf.h/2
		px, py := st.X/st.PZ*sf.w/2, st.Y/st.PZ*sf.h/2

		intensity := remap(st.Z, 0, sf.w, 1, 0.2)
		if s.StealthEngaged {
			intensity *= 0.5
		}
		k := Streak{
			X0: px, Y0: py, X1: sx, Y1: sy,
			Size:      st.Size * remap(st.Z, 0, sf.w, 1.5, 0.5),
			Intensity: intensity,
			Hue:       st.Hue,
			Bright:    st.Size > 1 && !s.StealthEngaged,
		}
		if s.WarpEngaged {
			k.Echo = true
			k.EX = px - (sx-px)*0.3
			k.EY = py - (sy-py)*0.3
		}
		out[i] = k
	}
	return out
}
