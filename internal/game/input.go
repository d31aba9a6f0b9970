package game

import "github.com/spacehole-rogue/bridgepanel/internal/world"

// Key is a logical key, independent of the frontend's key codes.
type Key uint8

const (
	KeyRune Key = iota // printable character in KeyEvent.Rune
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// KeyEvent is a single key press.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// PointerAction is the phase of a pointer gesture.
type PointerAction uint8

const (
	PointerPress PointerAction = iota
	PointerDrag
	PointerRelease
)

// Zone is the interactive region under the pointer, resolved by the
// frontend's layout.
type Zone uint8

const (
	ZoneNone     Zone = iota
	ZoneCoreRing      // the throttle ring around the quantum core
	ZoneHologram      // the schematic panel
	ZoneToggle        // a system toggle row, see PointerEvent.Toggle
)

// PointerEvent is a pointer press, drag or release.
type PointerEvent struct {
	Action        PointerAction
	X, Y          float64 // screen position
	Width, Height float64 // screen size, for normalising
	Zone          Zone
	Toggle        Toggle // the row under the pointer when Zone is ZoneToggle
	// LocalX and LocalY are the offset from the zone's centre. Only the
	// direction matters for the throttle ring.
	LocalX, LocalY float64
}

// Input is everything the frontend collected since the previous step.
type Input struct {
	Keys     []KeyEvent
	Pointers []PointerEvent
}

// handleHotkey applies a global shortcut. Letters are case-insensitive.
func (s *Sim) handleHotkey(ev KeyEvent) {
	if ev.Key != KeyRune {
		return
	}
	switch ev.Rune {
	case 'w', 'W':
		s.state.Flip(ToggleWarp)
		s.Cues.Play(SoundWarp)
	case 's', 'S':
		s.state.Flip(ToggleShields)
		s.Cues.Play(SoundShield)
	case 'a', 'A':
		s.state.Flip(ToggleAutonav)
	case 'd', 'D':
		s.state.Flip(ToggleStealth)
	case ' ':
		s.Radar.Ping(s.Clock.Now())
		s.Pings.Spawn(radarPingX, radarPingY, world.HueCyan)
		s.Cues.Play(SoundPing)
	case 't', 'T':
		s.Terminal.Open()
	}
}

// handleKey routes a key to the terminal when it is open, else to the hotkeys.
func (s *Sim) handleKey(ev KeyEvent) {
	if !s.Terminal.Active {
		s.handleHotkey(ev)
		return
	}
	if cmd, ok := s.Terminal.Key(ev); ok {
		s.Execute(cmd)
	}
}

// handlePointer applies a pointer event. While the terminal is open only
// releases get through, so gestures still end cleanly.
func (s *Sim) handlePointer(ev PointerEvent) {
	if ev.Action == PointerRelease {
		s.Hologram.EndDrag()
		s.ringHeld = false
		return
	}
	if s.Terminal.Active {
		return
	}

	if ev.Action == PointerPress {
		hue := world.HueAmber
		if s.state.WarpEngaged {
			hue = world.HueLime
		}
		if ev.Width > 0 && ev.Height > 0 {
			s.Pings.Spawn(ev.X/ev.Width, ev.Y/ev.Height, hue)
		}
		s.Cues.Play(SoundClick)
		switch ev.Zone {
		case ZoneHologram:
			s.Hologram.BeginDrag()
		case ZoneToggle:
			s.state.Flip(ev.Toggle)
		}
	}

	s.ringHeld = ev.Zone == ZoneCoreRing
	if s.ringHeld {
		s.state.SetThrottle(ThrottleFromPointer(ev.LocalX, ev.LocalY))
	}
	s.Hologram.DragTo(ev.X, ev.Y, ev.Width, ev.Height)
}
