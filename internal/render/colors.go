package render

import (
	"image/color"

	"github.com/spacehole-rogue/bridgepanel/internal/game"
	"github.com/spacehole-rogue/bridgepanel/internal/world"
)

// Neon palette indices.
const (
	ColorVoid       = 0 // background
	ColorDeep       = 1
	ColorPanel      = 2
	ColorGrid       = 3
	ColorWhite      = 4
	ColorCyan       = 5
	ColorMagenta    = 6
	ColorAmber      = 7
	ColorLime       = 8
	ColorRed        = 9
	ColorBlue       = 10
	ColorDimCyan    = 11
	ColorDimMagenta = 12
	ColorDimAmber   = 13
	ColorDimLime    = 14
	ColorDimBlue    = 15
)

// Palette holds the bridge's neon theme.
var Palette = [16]color.RGBA{
	{7, 8, 10, 255},      // 0: void
	{14, 16, 20, 255},    // 1: deep
	{37, 41, 46, 255},    // 2: panel
	{92, 107, 115, 255},  // 3: grid
	{255, 255, 255, 255}, // 4: white
	{36, 235, 242, 255},  // 5: cyan
	{242, 36, 190, 255},  // 6: magenta
	{255, 156, 26, 255},  // 7: amber
	{153, 255, 51, 255},  // 8: lime
	{255, 26, 26, 255},   // 9: red
	{51, 153, 255, 255},  // 10: blue
	{14, 94, 97, 255},    // 11: dim cyan
	{97, 14, 76, 255},    // 12: dim magenta
	{102, 62, 10, 255},   // 13: dim amber
	{61, 102, 20, 255},   // 14: dim lime
	{20, 61, 102, 255},   // 15: dim blue
}

// HueColor returns the palette index for h. dim picks the darker shade
// where the palette has one.
func HueColor(h world.Hue, dim bool) uint8 {
	switch h {
	case world.HueCyan:
		return pick(dim, ColorDimCyan, ColorCyan)
	case world.HueMagenta:
		return pick(dim, ColorDimMagenta, ColorMagenta)
	case world.HueAmber:
		return pick(dim, ColorDimAmber, ColorAmber)
	case world.HueLime:
		return pick(dim, ColorDimLime, ColorLime)
	case world.HueRed:
		return ColorRed
	case world.HueBlue:
		return pick(dim, ColorDimBlue, ColorBlue)
	}
	return pick(dim, ColorGrid, ColorWhite)
}

// Shade picks the dim variant of h below half brightness.
func Shade(h world.Hue, brightness float64) uint8 {
	return HueColor(h, brightness < 0.5)
}

func pick(dim bool, d, b uint8) uint8 {
	if dim {
		return d
	}
	return b
}

// CategoryColor colors a terminal log line.
func CategoryColor(c game.Category) uint8 {
	switch c {
	case game.CatSystem, game.CatReport:
		return ColorCyan
	case game.CatError, game.CatAlert:
		return ColorRed
	case game.CatSensors:
		return ColorLime
	case game.CatEngines:
		return ColorAmber
	case game.CatDefense:
		return ColorMagenta
	case game.CatNav:
		return ColorBlue
	case game.CatEcho:
		return ColorWhite
	default:
		return ColorGrid
	}
}

// AlertColor is the frame color for an alert level.
func AlertColor(a game.AlertLevel) uint8 {
	switch a {
	case game.AlertYellow:
		return ColorAmber
	case game.AlertRed:
		return ColorRed
	default:
		return ColorCyan
	}
}

// StatusColor colors a subsystem status readout.
func StatusColor(s world.Status) uint8 {
	switch s {
	case world.StatusFluctuating:
		return ColorAmber
	case world.StatusDegraded:
		return ColorRed
	case world.StatusStandby:
		return ColorGrid
	default:
		return ColorLime
	}
}

// SubsystemColor is the power bar color for a subsystem.
func SubsystemColor(s world.Subsystem) uint8 {
	switch s {
	case world.Engines:
		return ColorAmber
	case world.Shields:
		return ColorCyan
	case world.Sensors:
		return ColorLime
	default:
		return ColorMagenta
	}
}

// IntegrityColor grades hull integrity lime, amber or red.
func IntegrityColor(v float64) uint8 {
	switch {
	case v > 0.7:
		return ColorLime
	case v > 0.3:
		return ColorAmber
	default:
		return ColorRed
	}
}
