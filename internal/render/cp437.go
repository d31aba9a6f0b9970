package render

// CP437ToUnicode maps every code page 437 byte to the rune it displays.
var CP437ToUnicode = [256]rune{
	0x0000, 0x263A, 0x263B, 0x2665, 0x2666, 0x2663, 0x2660, 0x2022, 0x25D8, 0x25CB, 0x25D9, 0x2642, 0x2640, 0x266A, 0x266B, 0x263C,
	0x25BA, 0x25C4, 0x2195, 0x203C, 0x00B6, 0x00A7, 0x25AC, 0x21A8, 0x2191, 0x2193, 0x2192, 0x2190, 0x221F, 0x2194, 0x25B2, 0x25BC,
	' ', '!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?',
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', '[', '\\', ']', '^', '_',
	'`', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '{', '|', '}', '~', 0x2302,
	0x00C7, 0x00FC, 0x00E9, 0x00E2, 0x00E4, 0x00E0, 0x00E5, 0x00E7, 0x00EA, 0x00EB, 0x00E8, 0x00EF, 0x00EE, 0x00EC, 0x00C4, 0x00C5,
	0x00C9, 0x00E6, 0x00C6, 0x00F4, 0x00F6, 0x00F2, 0x00FB, 0x00F9, 0x00FF, 0x00D6, 0x00DC, 0x00A2, 0x00A3, 0x00A5, 0x20A7, 0x0192,
	0x00E1, 0x00ED, 0x00F3, 0x00FA, 0x00F1, 0x00D1, 0x00AA, 0x00BA, 0x00BF, 0x2310, 0x00AC, 0x00BD, 0x00BC, 0x00A1, 0x00AB, 0x00BB,
	0x2591, 0x2592, 0x2593, 0x2502, 0x2524, 0x2561, 0x2562, 0x2556, 0x2555, 0x2563, 0x2551, 0x2557, 0x255D, 0x255C, 0x255B, 0x2510,
	0x2514, 0x2534, 0x252C, 0x251C, 0x2500, 0x253C, 0x255E, 0x255F, 0x255A, 0x2554, 0x2569, 0x2566, 0x2560, 0x2550, 0x256C, 0x2567,
	0x2568, 0x2564, 0x2565, 0x2559, 0x2558, 0x2552, 0x2553, 0x256B, 0x256A, 0x2518, 0x250C, 0x2588, 0x2584, 0x258C, 0x2590, 0x2580,
	0x03B1, 0x00DF, 0x0393, 0x03C0, 0x03A3, 0x03C3, 0x00B5, 0x03C4, 0x03A6, 0x0398, 0x03A9, 0x03B4, 0x221E, 0x03C6, 0x03B5, 0x2229,
	0x2261, 0x00B1, 0x2265, 0x2264, 0x2320, 0x2321, 0x00F7, 0x2248, 0x00B0, 0x2219, 0x00B7, 0x221A, 0x207F, 0x00B2, 0x25A0, 0x00A0,
}

// Glyph codes the dashboard draws with.
const (
	GlyphSun        byte = 15  // ☼
	GlyphRight      byte = 16  // ►
	GlyphLeft       byte = 17  // ◄
	GlyphUp         byte = 30  // ▲
	GlyphDown       byte = 31  // ▼
	GlyphDiamond    byte = 4   // ♦
	GlyphBullet     byte = 7   // •
	GlyphCircle     byte = 9   // ○
	GlyphLightShade byte = 176 // ░
	GlyphMedShade   byte = 177 // ▒
	GlyphDarkShade  byte = 178 // ▓
	GlyphFull       byte = 219 // █
	GlyphLowerHalf  byte = 220 // ▄
	GlyphUpperHalf  byte = 223 // ▀
	GlyphDegree     byte = 248 // °
	GlyphDot        byte = 250 // ·
	GlyphSquare     byte = 254 // ■
)

var unicodeToCP437 = func() map[rune]byte {
	m := make(map[rune]byte, 256)
	for code, r := range CP437ToUnicode {
		if _, dup := m[r]; !dup {
			m[r] = byte(code)
		}
	}
	return m
}()

// standIns draw symbols outside code page 437 with the closest glyph
// the atlas has.
var standIns = map[rune]byte{
	'◆': GlyphDiamond, '◇': GlyphDiamond, '◈': GlyphDiamond, '⋄': GlyphDiamond, '⟡': GlyphDiamond,
	'◉': GlyphCircle, '◌': GlyphCircle, '◍': GlyphCircle, '◯': GlyphCircle, '◦': GlyphCircle,
	'◒': GlyphCircle, '◓': GlyphCircle, '◔': GlyphCircle, '◕': GlyphCircle, '⊕': GlyphCircle,
	'☉': GlyphSun, '✶': GlyphSun, '✷': GlyphSun, '✸': GlyphSun, '✹': GlyphSun,
	'✺': GlyphSun, '⚙': GlyphSun,
	'✦': '*', '✧': '*', '✩': '*', '✪': '*', '✫': '*', '✬': '*', '✭': '*',
	'▵': GlyphUp, '▴': GlyphUp, '△': GlyphUp, '◢': GlyphUp, '◣': GlyphUp,
	'▿': GlyphDown, '▾': GlyphDown, '▽': GlyphDown, '◤': GlyphDown, '◥': GlyphDown,
	'▹': GlyphRight, '▸': GlyphRight, '▷': GlyphRight, '▶': GlyphRight,
	'◁': GlyphLeft, '◀': GlyphLeft,
	'◻': GlyphSquare, '◽': GlyphSquare, '▢': GlyphSquare, '▣': GlyphSquare, '▮': GlyphSquare,
	'▯': GlyphSquare, '▰': GlyphSquare, '▱': GlyphSquare,
	'▤': GlyphMedShade, '▥': GlyphMedShade, '▦': GlyphMedShade, '▧': GlyphLightShade,
	'▨': GlyphLightShade, '▩': GlyphDarkShade,
	'╭': 218, '╮': 191, '╰': 192, '╯': 217,
	'⌁': '~', '☍': '%', '☌': '&', '☊': 'n', '☽': '(', '☾': ')',
}

// ToCP437 returns the atlas code for r. Runes with no glyph become '?'.
func ToCP437(r rune) byte {
	if r < 0x80 && r >= 0x20 {
		return byte(r)
	}
	if c, ok := unicodeToCP437[r]; ok {
		return c
	}
	if c, ok := standIns[r]; ok {
		return c
	}
	return '?'
}
