package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spacehole-rogue/bridgepanel/internal/audio/device"
	"github.com/spacehole-rogue/bridgepanel/internal/config"
	"github.com/spacehole-rogue/bridgepanel/internal/game"
	"github.com/spacehole-rogue/bridgepanel/internal/render"
	"github.com/spacehole-rogue/bridgepanel/internal/render/pixel"
)

const title = "S.S. Parallax // Bridge Control"

// Held editing keys repeat after repeatDelay ticks, every repeatEvery.
const (
	repeatDelay = 24
	repeatEvery = 3
)

// specialKeys are the non-character keys the console reacts to.
var specialKeys = []struct {
	key    ebiten.Key
	ev     game.Key
	repeat bool
}{
	{ebiten.KeyEnter, game.KeyEnter, false},
	{ebiten.KeyNumpadEnter, game.KeyEnter, false},
	{ebiten.KeyEscape, game.KeyEscape, false},
	{ebiten.KeyBackspace, game.KeyBackspace, true},
	{ebiten.KeyDelete, game.KeyDelete, true},
	{ebiten.KeyArrowLeft, game.KeyLeft, true},
	{ebiten.KeyArrowRight, game.KeyRight, true},
	{ebiten.KeyArrowUp, game.KeyUp, false},
	{ebiten.KeyArrowDown, game.KeyDown, false},
}

// Game is the Ebitengine game struct. It owns rendering and input.
// All console state lives in sim.
type Game struct {
	cfg      *config.Config
	renderer *pixel.GridRenderer
	dash     *render.Dashboard
	sim      *game.Sim
	player   *device.Player
	chars    []rune
}

func NewGame(cfg *config.Config, player *device.Player) *Game {
	d := cfg.Display
	cols, rows := d.Width/d.CellWidth, d.Height/d.CellHeight
	return &Game{
		cfg:      cfg,
		renderer: pixel.NewGridRenderer(pixel.NewFontAtlas(), d.CellWidth, d.CellHeight),
		dash:     render.NewDashboard(cols, rows, ebiten.TPS()),
		sim:      game.NewSim(cfg, time.Now()),
		player:   player,
	}
}

func (g *Game) Update() error {
	var in game.Input

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		in.Keys = append(in.Keys, game.KeyEvent{Key: game.KeyRune, Rune: r})
	}
	for _, k := range specialKeys {
		if pressed(k.key, k.repeat) {
			in.Keys = append(in.Keys, game.KeyEvent{Key: k.ev})
		}
	}

	x, y := g.renderer.CellAt(ebiten.CursorPosition())
	g.dash.Hover(x, y)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		in.Pointers = append(in.Pointers, g.dash.Layout.Pointer(game.PointerPress, x, y))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		in.Pointers = append(in.Pointers, g.dash.Layout.Pointer(game.PointerRelease, x, y))
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		in.Pointers = append(in.Pointers, g.dash.Layout.Pointer(game.PointerDrag, x, y))
	}

	frame := g.sim.Step(in)
	g.player.Play(frame.Sounds)
	g.dash.Draw(g.sim)
	return nil
}

// pressed reports a key press this tick, with auto-repeat when asked.
func pressed(k ebiten.Key, repeat bool) bool {
	if inpututil.IsKeyJustPressed(k) {
		return true
	}
	if !repeat {
		return false
	}
	d := inpututil.KeyPressDuration(k)
	return d >= repeatDelay && (d-repeatDelay)%repeatEvery == 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.dash.Buf)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Display.Width, g.cfg.Display.Height
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

	player := device.NewPlayer(cfg.Audio)
	if err := player.Init(); err != nil {
		log.Printf("audio unavailable: %v", err)
	}
	defer player.Close()

	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(cfg, player)); err != nil {
		log.Fatal(err)
	}
}
