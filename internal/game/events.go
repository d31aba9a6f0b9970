package game

import (
	"time"

	"github.com/spacehole-rogue/bridgepanel/internal/config"
	"github.com/spacehole-rogue/bridgepanel/internal/world"
)

// EventKind is what a scheduler tick did.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventAnomaly
	EventFluctuation
	EventAlert // alert branch chosen; the level may not have changed
)

// EventScheduler injects random transient faults into the ship state.
// Every reversion goes through the task queue and is never cancelled,
// so a later reversion can overwrite a newer change to the same field.
type EventScheduler struct {
	cfg   config.Events
	state *ShipState
	log   *TerminalLog
	tasks *Scheduler
	rnd   *Random
	cues  *Cues
}

// NewEventScheduler wires the scheduler to the Sim's shared pieces.
func NewEventScheduler(cfg config.Events, state *ShipState, log *TerminalLog, tasks *Scheduler, rnd *Random, cues *Cues) *EventScheduler {
	return &EventScheduler{cfg: cfg, state: state, log: log, tasks: tasks, rnd: rnd, cues: cues}
}

// Start registers the periodic tick.
func (e *EventScheduler) Start() {
	e.tasks.Every(e.cfg.Interval, func() { e.Tick() })
}

// Tick rolls for an event and, if one fires, performs exactly one action.
func (e *EventScheduler) Tick() EventKind {
	if !e.rnd.Chance(e.cfg.Chance) {
		return EventNone
	}
	switch e.rnd.IntN(3) {
	case 0:
		e.TriggerAnomaly()
		return EventAnomaly
	case 1:
		e.TriggerFluctuation()
		return EventFluctuation
	default:
		e.TriggerAlert()
		return EventAlert
	}
}

// TriggerAnomaly raises the anomaly flag and schedules its reset.
func (e *EventScheduler) TriggerAnomaly() time.Duration {
	e.state.AnomalyDetected = true
	hold := e.rnd.Duration(e.cfg.AnomalyMin, e.cfg.AnomalyMax)
	e.tasks.After(hold, func() { e.state.AnomalyDetected = false })
	e.log.Add("SYSTEM: Quantum anomaly detected in vicinity")
	return hold
}

// TriggerFluctuation faults a random subsystem.
func (e *EventScheduler) TriggerFluctuation() world.Subsystem {
	sub := Pick(e.rnd, world.Subsystems())
	status := world.StatusFluctuating
	if e.rnd.Chance(e.cfg.DegradedChance) {
		status = world.StatusDegraded
	}
	e.Fluctuate(sub, status, e.rnd.Duration(e.cfg.FluctuationMin, e.cfg.FluctuationMax))
	e.log.Addf("SYSTEM: Power fluctuation detected in %s subsystem", sub.Label())
	return sub
}

// Fluctuate sets sub to status and reverts it after hold.
func (e *EventScheduler) Fluctuate(sub world.Subsystem, status world.Status, hold time.Duration) {
	e.state.SystemStatus[sub] = status
	e.tasks.After(hold, func() { e.state.SystemStatus[sub] = sub.RevertStatus() })
}

// TriggerAlert escalates with the configured chance. It reports whether
// the level rose.
func (e *EventScheduler) TriggerAlert() bool {
	if e.state.AlertLevel >= AlertRed || !e.rnd.Chance(e.cfg.AlertChance) {
		return false
	}
	return e.EscalateAlert()
}

// EscalateAlert raises the alert level and schedules the matching decrease.
func (e *EventScheduler) EscalateAlert() bool {
	if !e.state.RaiseAlert() {
		return false
	}
	e.log.Addf("ALERT: Alert level elevated to %s", e.state.AlertLevel)
	e.cues.Play(SoundAlert)
	e.tasks.After(e.rnd.Duration(e.cfg.AlertMin, e.cfg.AlertMax), func() {
		e.state.LowerAlert()
		e.log.Addf("ALERT: Alert level reduced to %s", e.state.AlertLevel)
	})
	return true
}
