package glasspane

import "testing"

func TestTextSize(t *testing.T) {
	w, h := TextSize("abc\nlonger line")
	if w != 11*glyphAdvance || h != 2*lineHeight {
		t.Fatalf("expected %dx%d, got %dx%d", 11*glyphAdvance, 2*lineHeight, w, h)
	}
	if w, h := TextSize(""); w != 0 || h != lineHeight {
		t.Fatalf("expected empty text to be one line high, got %dx%d", w, h)
	}
}

func TestLayoutText_Anchors(t *testing.T) {
	// "abcd" is 4 glyphs wide, one line high
	w := 4 * glyphAdvance
	pos := Point{100, 100}
	cases := []struct {
		anchor Anchor
		want   Point
	}{
		{AnchorUpperLeft, Point{100, 100 + glyphAscent}},
		{AnchorUpperCenter, Point{100 - w/2, 100 + glyphAscent}},
		{AnchorUpperRight, Point{100 - w, 100 + glyphAscent}},
		{AnchorMiddleLeft, Point{100, 100 - lineHeight/2 + glyphAscent}},
		{AnchorMiddleRight, Point{100 - w, 100 - lineHeight/2 + glyphAscent}},
		{AnchorLowerLeft, Point{100, 100 - lineHeight + glyphAscent}},
		{AnchorLowerCenter, Point{100 - w/2, 100 - lineHeight + glyphAscent}},
		{AnchorBaselineCenter, Point{100 - w/2, 100}},
	}
	for _, tc := range cases {
		lines := layoutText("abcd", pos, tc.anchor)
		if len(lines) != 1 {
			t.Fatalf("anchor %d: expected 1 line, got %d", tc.anchor, len(lines))
		}
		if lines[0].origin != tc.want {
			t.Fatalf("anchor %d: expected origin %v, got %v", tc.anchor, tc.want, lines[0].origin)
		}
	}
}

func TestLayoutText_MultiLineCentred(t *testing.T) {
	lines := layoutText("ab\nabcd", Point{50, 0}, AnchorUpperCenter)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].origin.X != 50-glyphAdvance || lines[1].origin.X != 50-2*glyphAdvance {
		t.Fatalf("expected each line centred on its own width, got %v and %v", lines[0].origin, lines[1].origin)
	}
	if lines[1].origin.Y-lines[0].origin.Y != lineHeight {
		t.Fatalf("expected line spacing %d, got %d", lineHeight, lines[1].origin.Y-lines[0].origin.Y)
	}
}

func TestLayoutText_MiddleOfBlock(t *testing.T) {
	lines := layoutText("a\nb\nc\nd", Point{0, 200}, AnchorMiddleLeft)
	top := lines[0].origin.Y - glyphAscent
	bottom := lines[3].origin.Y - glyphAscent + lineHeight
	if top+bottom != 400 {
		t.Fatalf("expected block centred on y=200, spans %d..%d", top, bottom)
	}
}

func TestParseAnchor(t *testing.T) {
	for name, want := range map[string]Anchor{"ul": AnchorUpperLeft, "MC": AnchorMiddleCenter, " lr ": AnchorLowerRight, "bc": AnchorBaselineCenter} {
		got, err := ParseAnchor(name)
		if err != nil || got != want {
			t.Fatalf("ParseAnchor(%q) = %d, %v", name, got, err)
		}
	}
	if _, err := ParseAnchor("top"); err == nil {
		t.Fatal("expected error for unknown anchor")
	}
}
