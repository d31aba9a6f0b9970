package world

// Hue is a named neon accent shared by the simulation and the renderer.
// The simulation only picks hues; the renderer owns the actual colors.
type Hue uint8

const (
	HueCyan    Hue = iota // 182°, default accent
	HueMagenta            // 315°
	HueAmber              // 34°
	HueLime               // 90°, warp accent
	HueRed                // 0°, damage / red alert
	HueBlue               // 210°
	HueWhite
)

// StarHues are the hues a starfield star may take.
var StarHues = []Hue{HueCyan, HueMagenta, HueAmber, HueBlue}

// PacketHues are the hues a signal packet may take.
var PacketHues = []Hue{HueCyan, HueMagenta, HueAmber, HueLime}
