package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/spacehole-rogue/bridgepanel/internal/audio/device"
	"github.com/spacehole-rogue/bridgepanel/internal/config"
	"github.com/spacehole-rogue/bridgepanel/internal/game"
	"github.com/spacehole-rogue/bridgepanel/internal/render"
	"github.com/spacehole-rogue/bridgepanel/internal/render/term"
)

// Console runs the bridge panel in a terminal: input is polled on its own
// goroutine, the sim steps on one ticker and the screen redraws on another.
type Console struct {
	screen tcell.Screen
	sim    *game.Sim
	dash   *render.Dashboard
	player *device.Player
	mouse  term.Mouse
	events chan tcell.Event
	quit   chan struct{}
}

func NewConsole(s tcell.Screen, cfg *config.Config, player *device.Player) *Console {
	w, h := s.Size()
	return &Console{
		screen: s,
		sim:    game.NewSim(cfg, time.Now()),
		dash:   render.NewDashboard(w, h, cfg.Display.TTYFPS),
		player: player,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
}

// HandleInput polls tcell for events until the screen is finalised.
func (c *Console) HandleInput() {
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case c.events <- ev:
		case <-c.quit:
			return
		}
	}
}

// Run steps at the sim rate and draws at the configured frame rate until
// Ctrl-C.
func (c *Console) Run(fps int) {
	simTicker := time.NewTicker(game.FrameDuration)
	renderTicker := time.NewTicker(time.Second / time.Duration(fps))
	defer simTicker.Stop()
	defer renderTicker.Stop()

	var in game.Input
	for {
		select {
		case ev := <-c.events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				c.dash.Resize(w, h)
				c.screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					close(c.quit)
					return
				}
				if k, ok := term.KeyFromEvent(ev); ok {
					in.Keys = append(in.Keys, k)
				}
			case *tcell.EventMouse:
				x, y := ev.Position()
				c.dash.Hover(float64(x)+0.5, float64(y)+0.5)
				if p, ok := c.mouse.Event(ev, c.dash.Layout); ok {
					in.Pointers = append(in.Pointers, p)
				}
			}
		case <-simTicker.C:
			frame := c.sim.Step(in)
			in = game.Input{}
			c.player.Play(frame.Sounds)
		case <-renderTicker.C:
			c.dash.Draw(c.sim)
			term.Blit(c.screen, c.dash.Buf)
			c.screen.Show()
		}
	}
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in tuning")
	seed := flag.Int64("seed", 0, "random seed (0 uses the config, then the clock)")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	cfg.ResolveSeed(time.Now())
	if *mute {
		cfg.Audio.Enabled = false
	}

	// before the screen takes over stderr
	player := device.NewPlayer(cfg.Audio)
	if err := player.Init(); err != nil {
		log.Printf("audio unavailable: %v", err)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := s.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	s.EnableMouse()
	s.HideCursor()

	c := NewConsole(s, cfg, player)
	go c.HandleInput()
	c.Run(cfg.Display.TTYFPS)

	player.Close()
	s.Fini()
}
