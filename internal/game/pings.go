package game

import (
	"time"

	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/bridgepanel/internal/world"
)

// Fixed ping origins in normalized screen coordinates.
const (
	radarPingX = 0.19
	radarPingY = 0.47
	corePingX  = 0.5
	corePingY  = 0.5
)

// Ripple is where a ping was spawned and how it is colored.
type Ripple struct {
	X, Y float64 // normalized screen coordinates
	Hue  world.Hue
}

// Lifetime tracks a ping's age in seconds.
type Lifetime struct {
	Age  float64
	Life float64
}

// PingView is a ping as the renderer sees it.
type PingView struct {
	X, Y   float64
	Hue    world.Hue
	Radius float64 // eased 0..1 fraction of the maximum ripple size
	Fade   float64 // 1 when fresh, 0 at end of life
}

// Pings is the set of expanding ripple effects.
type Pings struct {
	ecs    *ecs.World
	spawn  *ecs.Map2[Ripple, Lifetime]
	filter *ecs.Filter2[Ripple, Lifetime]
	life   float64
	dead   []ecs.Entity
}

// NewPings stores pings as entities in w.
func NewPings(w *ecs.World, life time.Duration) *Pings {
	return &Pings{
		ecs:    w,
		spawn:  ecs.NewMap2[Ripple, Lifetime](w),
		filter: ecs.NewFilter2[Ripple, Lifetime](w),
		life:   life.Seconds(),
	}
}

// Spawn adds a ping at normalized (x, y).
func (p *Pings) Spawn(x, y float64, hue world.Hue) {
	p.spawn.NewEntity(&Ripple{X: x, Y: y, Hue: hue}, &Lifetime{Life: p.life})
}

// Update ages every ping by dt seconds and drops expired ones.
func (p *Pings) Update(dt float64) {
	query := p.filter.Query()
	for query.Next() {
		_, lt := query.Get()
		lt.Age += dt
		if lt.Age > lt.Life {
			p.dead = append(p.dead, query.Entity())
		}
	}
	// the world is locked while a query is open
	for _, e := range p.dead {
		p.ecs.RemoveEntity(e)
	}
	p.dead = p.dead[:0]
}

// Count returns the number of live pings.
func (p *Pings) Count() int {
	query := p.filter.Query()
	n := query.Count()
	query.Close()
	return n
}

// Each calls fn for every live ping.
func (p *Pings) Each(fn func(PingView)) {
	query := p.filter.Query()
	for query.Next() {
		r, lt := query.Get()
		k := clamp01(lt.Age / lt.Life)
		fn(PingView{X: r.X, Y: r.Y, Hue: r.Hue, Radius: easeOutCubic(k), Fade: 1 - k})
	}
}

func easeOutCubic(x float64) float64 {
	inv := 1 - x
	return 1 - inv*inv*inv
}
