package game

// Sound identifies a short audio cue emitted by the simulation.
type Sound uint8

const (
	SoundWarp   Sound = iota // warp engaged
	SoundShield              // shields raised
	SoundPing                // radar ping
	SoundClick               // pointer press
	SoundBeep                // throttle drag
	SoundAlert               // alert escalation
	SoundCount               // sentinel
)

var soundNames = [...]string{"warp", "shield", "ping", "click", "beep", "alert"}

func (s Sound) String() string {
	if s < SoundCount {
		return soundNames[s]
	}
	return "unknown"
}

// Cues collects sounds requested during a step. Playback is the
// frontend's job; the simulation only records what should be heard.
type Cues struct {
	pending []Sound
}

// Play queues a sound.
func (c *Cues) Play(s Sound) {
	c.pending = append(c.pending, s)
}

// Take returns and clears the queued sounds.
func (c *Cues) Take() []Sound {
	out := c.pending
	c.pending = nil
	return out
}
