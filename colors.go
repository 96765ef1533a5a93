// colors.go - RGBA colour type and the named palette

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

import (
	"image/color"
	"sort"
	"strings"
)

// RGBA is a straight-alpha colour. R, G and B are 0-255, A is 0.0-1.0.
type RGBA struct {
	R uint8
	G uint8
	B uint8
	A float32
}

func (c RGBA) alpha8() uint8 {
	switch {
	case c.A <= 0:
		return 0
	case c.A >= 1:
		return 255
	}
	return uint8(c.A*255 + 0.5)
}

// NRGBA converts to the non-premultiplied image/color form.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.alpha8()}
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float32) RGBA {
	c.A = a
	return c
}

var (
	Red           = RGBA{255, 0, 0, 1.0}
	Green         = RGBA{0, 255, 0, 1.0}
	Blue          = RGBA{0, 0, 255, 1.0}
	Black         = RGBA{0, 0, 0, 1.0}
	White         = RGBA{255, 255, 255, 1.0}
	Yellow        = RGBA{255, 255, 0, 1.0}
	Cyan          = RGBA{0, 255, 255, 1.0}
	Magenta       = RGBA{255, 0, 255, 1.0}
	Orange        = RGBA{255, 165, 0, 1.0}
	Purple        = RGBA{128, 0, 128, 1.0}
	Pink          = RGBA{255, 192, 203, 1.0}
	Gray          = RGBA{128, 128, 128, 1.0}
	DarkGray      = RGBA{169, 169, 169, 1.0}
	LightGray     = RGBA{211, 211, 211, 1.0}
	Brown         = RGBA{165, 42, 42, 1.0}
	Olive         = RGBA{128, 128, 0, 1.0}
	DarkGreen     = RGBA{0, 100, 0, 1.0}
	DarkRed       = RGBA{139, 0, 0, 1.0}
	DarkBlue      = RGBA{0, 0, 139, 1.0}
	DarkOrange    = RGBA{255, 140, 0, 1.0}
	DarkPurple    = RGBA{128, 0, 128, 1.0}
	DarkPink      = RGBA{255, 20, 147, 1.0}
	DarkCyan      = RGBA{0, 139, 139, 1.0}
	DarkBrown     = RGBA{101, 67, 33, 1.0}
	DarkOlive     = RGBA{85, 107, 47, 1.0}
	DarkGold      = RGBA{184, 134, 11, 1.0}
	DarkTeal      = RGBA{0, 128, 128, 1.0}
	DarkSalmon    = RGBA{233, 150, 122, 1.0}
	DarkLime      = RGBA{50, 205, 50, 1.0}
	DarkLavender  = RGBA{230, 230, 250, 1.0}
	DarkBeige     = RGBA{245, 245, 220, 1.0}
	DarkMaroon    = RGBA{128, 0, 0, 1.0}
	DarkMint      = RGBA{189, 252, 201, 1.0}
	DarkPeach     = RGBA{255, 218, 185, 1.0}
	DarkMustard   = RGBA{255, 219, 88, 1.0}
	DarkCoral     = RGBA{205, 92, 92, 1.0}
	DarkNavy      = RGBA{0, 0, 128, 1.0}
	DarkTurquoise = RGBA{0, 206, 209, 1.0}
	DarkIndigo    = RGBA{75, 0, 130, 1.0}
	DarkSand      = RGBA{255, 235, 205, 1.0}
	DarkRaspberry = RGBA{135, 38, 87, 1.0}
	Transparent   = RGBA{0, 0, 0, 0}
)

var palette = map[string]RGBA{
	"red":            Red,
	"green":          Green,
	"blue":           Blue,
	"black":          Black,
	"white":          White,
	"yellow":         Yellow,
	"cyan":           Cyan,
	"magenta":        Magenta,
	"orange":         Orange,
	"purple":         Purple,
	"pink":           Pink,
	"gray":           Gray,
	"dark_gray":      DarkGray,
	"light_gray":     LightGray,
	"brown":          Brown,
	"olive":          Olive,
	"dark_green":     DarkGreen,
	"dark_red":       DarkRed,
	"dark_blue":      DarkBlue,
	"dark_orange":    DarkOrange,
	"dark_purple":    DarkPurple,
	"dark_pink":      DarkPink,
	"dark_cyan":      DarkCyan,
	"dark_brown":     DarkBrown,
	"dark_olive":     DarkOlive,
	"dark_gold":      DarkGold,
	"dark_teal":      DarkTeal,
	"dark_salmon":    DarkSalmon,
	"dark_lime":      DarkLime,
	"dark_lavender":  DarkLavender,
	"dark_beige":     DarkBeige,
	"dark_maroon":    DarkMaroon,
	"dark_mint":      DarkMint,
	"dark_peach":     DarkPeach,
	"dark_mustard":   DarkMustard,
	"dark_coral":     DarkCoral,
	"dark_navy":      DarkNavy,
	"dark_turquoise": DarkTurquoise,
	"dark_indigo":    DarkIndigo,
	"dark_sand":      DarkSand,
	"dark_raspberry": DarkRaspberry,
	"transparent":    Transparent,
}

// ColorByName looks up a palette entry. Names are case-insensitive and accept
// either underscores or hyphens ("dark_orange", "Dark-Orange").
func ColorByName(name string) (RGBA, bool) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	c, ok := palette[key]
	return c, ok
}

// PaletteNames lists the palette entries in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
