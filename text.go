// text.go - Fixed-advance bitmap text layout

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font/basicfont"
)

// Metrics of the 7x13 face. Every glyph advances by the same amount.
var (
	glyphAdvance = basicfont.Face7x13.Advance
	lineHeight   = basicfont.Face7x13.Height
	glyphAscent  = basicfont.Face7x13.Ascent
)

// Anchor selects which point of a text block is placed on the given position.
type Anchor int

const (
	AnchorUpperLeft Anchor = iota
	AnchorUpperCenter
	AnchorUpperRight
	AnchorMiddleLeft
	AnchorMiddleCenter
	AnchorMiddleRight
	AnchorLowerLeft
	AnchorLowerCenter
	AnchorLowerRight
	// AnchorBaselineCenter centres the first line horizontally with its
	// baseline on the position. DrawText uses it.
	AnchorBaselineCenter
)

var anchorNames = map[string]Anchor{
	"ul": AnchorUpperLeft,
	"uc": AnchorUpperCenter,
	"ur": AnchorUpperRight,
	"ml": AnchorMiddleLeft,
	"mc": AnchorMiddleCenter,
	"mr": AnchorMiddleRight,
	"ll": AnchorLowerLeft,
	"lc": AnchorLowerCenter,
	"lr": AnchorLowerRight,
	"bc": AnchorBaselineCenter,
}

// ParseAnchor accepts the two-letter codes ul, uc, ur, ml, mc, mr, ll, lc, lr
// and bc.
func ParseAnchor(s string) (Anchor, error) {
	a, ok := anchorNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return AnchorUpperLeft, fmt.Errorf("unknown text anchor %q", s)
	}
	return a, nil
}

type textLine struct {
	text   string
	origin Point // start of the baseline
}

// TextSize returns the pixel size of the text block.
func TextSize(text string) (width, height int) {
	lines := strings.Split(text, "\n")
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l)*glyphAdvance)
	}
	return width, len(lines) * lineHeight
}

func layoutText(text string, pos Point, anchor Anchor) []textLine {
	lines := strings.Split(text, "\n")
	_, blockH := TextSize(text)

	var top int
	switch anchor {
	case AnchorUpperLeft, AnchorUpperCenter, AnchorUpperRight:
		top = pos.Y
	case AnchorMiddleLeft, AnchorMiddleCenter, AnchorMiddleRight:
		top = pos.Y - blockH/2
	case AnchorLowerLeft, AnchorLowerCenter, AnchorLowerRight:
		top = pos.Y - blockH
	default:
		top = pos.Y - glyphAscent
	}

	out := make([]textLine, 0, len(lines))
	for i, l := range lines {
		w := utf8.RuneCountInString(l) * glyphAdvance
		x := pos.X
		switch anchor {
		case AnchorUpperCenter, AnchorMiddleCenter, AnchorLowerCenter, AnchorBaselineCenter:
			x -= w / 2
		case AnchorUpperRight, AnchorMiddleRight, AnchorLowerRight:
			x -= w
		}
		out = append(out, textLine{
			text:   l,
			origin: Point{X: x, Y: top + i*lineHeight + glyphAscent},
		})
	}
	return out
}
