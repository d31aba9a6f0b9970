package game

import (
	"fmt"
	"math"
	"time"

	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/bridgepanel/internal/config"
)

// Radar constants (per tick at 60 TPS).
const (
	sweepStep      = 0.01
	sweepWarpMul   = 2.4
	sweepCruiseMul = 0.8
	sweepLead      = 0.175 // the wedge's leading edge sits ahead of the sweep angle
	seenWidth      = 0.22
	minRadius      = 0.08
	maxRadius      = 1.0
)

// ContactKind is what a radar contact is.
type ContactKind uint8

const (
	KindShip ContactKind = iota
	KindAsteroid
	KindDebris
	KindStation
)

var contactKinds = []ContactKind{KindShip, KindAsteroid, KindDebris, KindStation}

func (k ContactKind) String() string {
	switch k {
	case KindShip:
		return "SHIP"
	case KindAsteroid:
		return "ASTEROID"
	case KindDebris:
		return "DEBRIS"
	case KindStation:
		return "STATION"
	}
	return "UNKNOWN"
}

// Polar is a contact's position on the scope.
type Polar struct {
	Angle  float64 // radians
	Radius float64 // 0.08..1 of the scope radius
}

// Contact is a contact's identity and motion.
type Contact struct {
	ID       int
	Kind     ContactKind
	Strength float64 // 0.5..1
	Velocity float64 // signed angular drift
}

// Label returns the display name, e.g. "SHIP-421".
func (c Contact) Label() string {
	return fmt.Sprintf("%s-%d", c.Kind, c.ID)
}

// ContactView is a contact as the renderer sees it.
type ContactView struct {
	Polar
	Contact
	Seen     bool
	Selected bool
}

// NavReadout is the autonav intercept estimate for the selected contact.
type NavReadout struct {
	Target   string
	Distance float64 // km
	Speed    float64
	ETA      float64 // minutes; valid only when HasETA
	HasETA   bool
}

// Radar is the sweep scope. Contacts live in the ECS world; order keeps
// them addressable by index for selection.
type Radar struct {
	cfg    config.Radar
	ecs    *ecs.World
	spawn  *ecs.Map2[Polar, Contact]
	filter *ecs.Filter2[Polar, Contact]
	order  []ecs.Entity

	Sweep float64
	Pulse float64

	trail      []float64 // ring of recent sweep angles
	trailStart int
	trailLen   int

	selected int
	lastPing time.Duration // zero at boot, so the scope powers up with a ping
	now      time.Duration
}

// NewRadar creates a scope seeded with the initial contact population.
func NewRadar(cfg config.Radar, w *ecs.World, rnd *Random) *Radar {
	r := &Radar{
		cfg:    cfg,
		ecs:    w,
		spawn:  ecs.NewMap2[Polar, Contact](w),
		filter: ecs.NewFilter2[Polar, Contact](w),
		trail:  make([]float64, cfg.TrailLength),
	}
	for i := 0; i < cfg.InitialContacts; i++ {
		r.addContact(rnd)
	}
	return r
}

func (r *Radar) addContact(rnd *Random) Contact {
	p := Polar{Angle: rnd.Range(0, 2*math.Pi), Radius: rnd.Range(0.12, 0.92)}
	c := Contact{
		ID:       100 + rnd.IntN(899),
		Kind:     Pick(rnd, contactKinds),
		Strength: rnd.Range(0.5, 1),
		Velocity: rnd.Range(0.2, 0.8) * rnd.Sign(),
	}
	r.order = append(r.order, r.spawn.NewEntity(&p, &c))
	return c
}

func (r *Radar) removeContact(i int) {
	r.ecs.RemoveEntity(r.order[i])
	r.order = append(r.order[:i], r.order[i+1:]...)
	if r.selected > i {
		r.selected--
	}
	if r.selected >= len(r.order) {
		r.selected = max(len(r.order)-1, 0)
	}
}

// Update advances the sweep and drifts every contact. It returns the
// contact added this tick, if any.
func (r *Radar) Update(tc *tickContext) (Contact, bool) {
	r.now = tc.now

	mul := sweepCruiseMul
	if tc.state.WarpEngaged {
		mul = sweepWarpMul
	}
	r.Sweep = math.Mod(r.Sweep+sweepStep*mul, 2*math.Pi)
	r.Pulse += 0.02

	if tc.frame%uint64(r.cfg.TrailEvery) == 0 {
		r.pushTrail(r.Sweep)
	}

	f := float64(tc.frame)
	query := r.filter.Query()
	for query.Next() {
		p, c := query.Get()
		id := float64(c.ID)
		p.Angle += tc.rnd.Noise2(id, f*0.001)*0.002 - 0.001 + c.Velocity*0.0005
		p.Radius += tc.rnd.Noise2(id+99, f*0.0013)*0.001 - 0.0005
		p.Radius = clamp(p.Radius, minRadius, maxRadius)
	}

	var added Contact
	ok := false
	if tc.rnd.Chance(r.cfg.AddChance) && len(r.order) < r.cfg.MaxContacts {
		added, ok = r.addContact(tc.rnd), true
	}
	if tc.rnd.Chance(r.cfg.RemoveChance) && len(r.order) > r.cfg.MinContacts {
		r.removeContact(tc.rnd.IntN(len(r.order)))
	}
	return added, ok
}

func (r *Radar) pushTrail(a float64) {
	n := len(r.trail)
	if r.trailLen < n {
		r.trail[(r.trailStart+r.trailLen)%n] = a
		r.trailLen++
		return
	}
	r.trail[r.trailStart] = a
	r.trailStart = (r.trailStart + 1) % n
}

// Trail returns the recorded sweep angles, oldest first.
func (r *Radar) Trail() []float64 {
	out := make([]float64, r.trailLen)
	for i := range out {
		out[i] = r.trail[(r.trailStart+i)%len(r.trail)]
	}
	return out
}

// Ping starts a radar ping at now.
func (r *Radar) Ping(now time.Duration) {
	r.lastPing = now
}

// PingActive reports whether a ping is still expanding at now.
func (r *Radar) PingActive(now time.Duration) bool {
	return now >= r.lastPing && now-r.lastPing < r.cfg.PingWindow
}

// PingFraction is how far the active ping has expanded, 0..1.
func (r *Radar) PingFraction(now time.Duration) float64 {
	if !r.PingActive(now) {
		return 0
	}
	return float64(now-r.lastPing) / float64(r.cfg.PingWindow)
}

// Seen reports whether a contact at p is lit by the sweep or the ping.
func (r *Radar) Seen(p Polar, now time.Duration) bool {
	if math.Abs(angularDiff(r.Sweep+sweepLead, p.Angle)) < seenWidth {
		return true
	}
	return r.PingActive(now) && p.Radius < r.PingFraction(now)
}

// Count returns the number of contacts.
func (r *Radar) Count() int { return len(r.order) }

// Contacts returns every contact in selection order.
func (r *Radar) Contacts() []ContactView {
	out := make([]ContactView, len(r.order))
	for i, e := range r.order {
		p, c := r.spawn.Get(e)
		out[i] = ContactView{Polar: *p, Contact: *c, Seen: r.Seen(*p, r.now), Selected: i == r.selected}
	}
	return out
}

// SelectRandom picks a new selected contact.
func (r *Radar) SelectRandom(rnd *Random) {
	r.selected = rnd.IntN(len(r.order))
}

// SelectedIndex returns the index of the selected contact.
func (r *Radar) SelectedIndex() int { return r.selected }

// Selected returns the selected contact.
func (r *Radar) Selected() (ContactView, bool) {
	if len(r.order) == 0 {
		return ContactView{}, false
	}
	p, c := r.spawn.Get(r.order[r.selected])
	return ContactView{Polar: *p, Contact: *c, Seen: r.Seen(*p, r.now), Selected: true}, true
}

// Nav computes the intercept readout for the selected contact.
func (r *Radar) Nav(state ShipState) (NavReadout, bool) {
	sel, ok := r.Selected()
	if !ok {
		return NavReadout{}, false
	}
	nav := NavReadout{Target: sel.Label(), Distance: sel.Radius * 100}
	if state.WarpEngaged {
		nav.Speed = 80
	} else {
		nav.Speed = 20 * state.Throttle
	}
	if nav.Speed > 0 {
		nav.ETA = nav.Distance / nav.Speed
		nav.HasETA = true
	}
	return nav, true
}

// angularDiff returns a-b wrapped into [-π, π).
func angularDiff(a, b float64) float64 {
	d := math.Mod(a-b+math.Pi, 2*math.Pi) - math.Pi
	if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
