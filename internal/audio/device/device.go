// Package device plays synthesised cues on the system's audio output.
package device

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/spacehole-rogue/bridgepanel/internal/audio"
	"github.com/spacehole-rogue/bridgepanel/internal/config"
	"github.com/spacehole-rogue/bridgepanel/internal/game"
)

// Player mixes cues into a single speaker stream. An uninitialised
// Player drops everything, so frontends keep running without audio.
type Player struct {
	mu          sync.Mutex
	cfg         config.Audio
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Init before Play.
func NewPlayer(cfg config.Audio) *Player {
	return &Player{cfg: cfg, rate: beep.SampleRate(cfg.SampleRate), mixer: &beep.Mixer{}}
}

// Init opens the speaker. It is a no-op when audio is disabled.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized || !p.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the cues emitted by one Step.
func (p *Player) Play(sounds []game.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || len(sounds) == 0 {
		return
	}
	speaker.Lock()
	for _, s := range sounds {
		if st := audio.Cue(s, p.rate, p.cfg.Volume); st != nil {
			p.mixer.Add(st)
		}
	}
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
