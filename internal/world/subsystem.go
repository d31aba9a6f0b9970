package world

import "strings"

// Subsystem identifies one of the ship's power-allocated systems.
type Subsystem uint8

const (
	Engines Subsystem = iota
	Shields
	Sensors
	Weapons
	SubsystemCount // sentinel
)

// Status is the display-only condition of a subsystem.
type Status uint8

const (
	StatusNominal     Status = iota // healthy, idle-ready
	StatusFluctuating               // transient power fault
	StatusDegraded                  // transient heavy fault
	StatusStandby                   // powered down, ready
	StatusOnline                    // powered, active
	StatusActive                    // powered, sweeping
)

var statusNames = [...]string{
	StatusNominal:     "NOMINAL",
	StatusFluctuating: "FLUCTUATING",
	StatusDegraded:    "DEGRADED",
	StatusStandby:     "STANDBY",
	StatusOnline:      "ONLINE",
	StatusActive:      "ACTIVE",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "UNKNOWN"
}

// SubsystemTemplate defines the boot values for a subsystem.
type SubsystemTemplate struct {
	Name    string  // command-line name (lowercase)
	Label   string  // display label (uppercase)
	Power   float64 // initial share of reactor output
	Initial Status  // status at boot
	Revert  Status  // status restored after a transient fault
}

// SubsystemTemplates holds boot values for every subsystem, indexed by Subsystem.
var SubsystemTemplates = [SubsystemCount]SubsystemTemplate{
	Engines: {"engines", "ENGINES", 0.3, StatusNominal, StatusNominal},
	Shields: {"shields", "SHIELDS", 0.3, StatusOnline, StatusNominal},
	Sensors: {"sensors", "SENSORS", 0.2, StatusActive, StatusNominal},
	Weapons: {"weapons", "WEAPONS", 0.2, StatusStandby, StatusStandby}, // weapons idle cold
}

// Subsystems lists every subsystem in display order.
func Subsystems() []Subsystem {
	return []Subsystem{Engines, Shields, Sensors, Weapons}
}

// Name returns the lowercase command name.
func (s Subsystem) Name() string {
	if s < SubsystemCount {
		return SubsystemTemplates[s].Name
	}
	return "unknown"
}

// Label returns the uppercase display label.
func (s Subsystem) Label() string {
	if s < SubsystemCount {
		return SubsystemTemplates[s].Label
	}
	return "UNKNOWN"
}

// RevertStatus returns the status a subsystem settles back to after a fault.
func (s Subsystem) RevertStatus() Status {
	if s < SubsystemCount {
		return SubsystemTemplates[s].Revert
	}
	return StatusNominal
}

// ParseSubsystem resolves a command-line name. Matching is exact after
// trimming and lowercasing.
func ParseSubsystem(name string) (Subsystem, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, t := range SubsystemTemplates {
		if t.Name == name {
			return Subsystem(i), true
		}
	}
	return SubsystemCount, false
}

// SubsystemNames returns the valid command names, comma separated.
func SubsystemNames() string {
	names := make([]string, 0, SubsystemCount)
	for _, t := range SubsystemTemplates {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}
