package game

import "github.com/spacehole-rogue/bridgepanel/internal/world"

// AlertLevel is the ship's escalation state.
type AlertLevel uint8

const (
	AlertNormal AlertLevel = iota
	AlertYellow
	AlertRed
)

func (a AlertLevel) String() string {
	switch a {
	case AlertNormal:
		return "NORMAL"
	case AlertYellow:
		return "YELLOW"
	case AlertRed:
		return "RED"
	}
	return "UNKNOWN"
}

// DivertedShare is the allocation a subsystem gets when power is diverted to it.
const DivertedShare = 0.5

// ShipState is the shared control state every widget reads. It is a plain
// value so a tick can snapshot it by copy.
type ShipState struct {
	WarpEngaged     bool
	ShieldsUp       bool
	AutonavEngaged  bool
	StealthEngaged  bool
	Throttle        float64 // [0, 1]
	AlertLevel      AlertLevel
	AnomalyDetected bool // transient, reset by a scheduled task
	ShipIntegrity   float64 // [0, 1]

	PowerAllocation [world.SubsystemCount]float64
	SystemStatus    [world.SubsystemCount]world.Status
}

// NewShipState returns the boot state.
func NewShipState() ShipState {
	s := ShipState{
		ShieldsUp:     true,
		Throttle:      0.42,
		ShipIntegrity: 1.0,
	}
	for _, sub := range world.Subsystems() {
		s.PowerAllocation[sub] = world.SubsystemTemplates[sub].Power
		s.SystemStatus[sub] = world.SubsystemTemplates[sub].Initial
	}
	return s
}

// SetThrottle clamps v into [0, 1].
func (s *ShipState) SetThrottle(v float64) {
	s.Throttle = clamp01(v)
}

// SetIntegrity clamps v into [0, 1].
func (s *ShipState) SetIntegrity(v float64) {
	s.ShipIntegrity = clamp01(v)
}

// DivertPower gives target DivertedShare and splits the rest evenly
// between the other subsystems.
func (s *ShipState) DivertPower(target world.Subsystem) {
	if target >= world.SubsystemCount {
		return
	}
	rest := (1 - DivertedShare) / float64(world.SubsystemCount-1)
	for _, sub := range world.Subsystems() {
		if sub == target {
			s.PowerAllocation[sub] = DivertedShare
		} else {
			s.PowerAllocation[sub] = rest
		}
	}
}

// TotalPower sums the allocation shares.
func (s *ShipState) TotalPower() float64 {
	total := 0.0
	for _, p := range s.PowerAllocation {
		total += p
	}
	return total
}

// RaiseAlert increments the alert level, capped at red. It reports
// whether the level changed.
func (s *ShipState) RaiseAlert() bool {
	if s.AlertLevel >= AlertRed {
		return false
	}
	s.AlertLevel++
	return true
}

// LowerAlert decrements the alert level, floored at normal.
func (s *ShipState) LowerAlert() bool {
	if s.AlertLevel == AlertNormal {
		return false
	}
	s.AlertLevel--
	return true
}

// Toggle is one of the on/off ship systems on the control panel.
type Toggle uint8

const (
	ToggleWarp Toggle = iota
	ToggleShields
	ToggleAutonav
	ToggleStealth
	ToggleCount
)

// Toggles lists every toggle in panel order.
func Toggles() []Toggle {
	return []Toggle{ToggleWarp, ToggleShields, ToggleAutonav, ToggleStealth}
}

var toggleLabels = [ToggleCount]string{"WARP", "SHIELDS", "AUTONAV", "STEALTH"}
var toggleKeys = [ToggleCount]rune{'W', 'S', 'A', 'D'}

// Label is the panel label, e.g. "WARP".
func (t Toggle) Label() string {
	if t >= ToggleCount {
		return "UNKNOWN"
	}
	return toggleLabels[t]
}

// Hotkey is the key that flips t outside the terminal.
func (t Toggle) Hotkey() rune {
	if t >= ToggleCount {
		return 0
	}
	return toggleKeys[t]
}

func (s *ShipState) toggleFlag(t Toggle) *bool {
	switch t {
	case ToggleWarp:
		return &s.WarpEngaged
	case ToggleShields:
		return &s.ShieldsUp
	case ToggleAutonav:
		return &s.AutonavEngaged
	case ToggleStealth:
		return &s.StealthEngaged
	}
	return nil
}

// Engaged reports whether t is on.
func (s *ShipState) Engaged(t Toggle) bool {
	if f := s.toggleFlag(t); f != nil {
		return *f
	}
	return false
}

// Flip switches t and returns its new setting.
func (s *ShipState) Flip(t Toggle) bool {
	f := s.toggleFlag(t)
	if f == nil {
		return false
	}
	*f = !*f
	return *f
}
