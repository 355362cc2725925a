package render

// Style selects the glyph set used for the board frame.
type Style struct {
	Name        string
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
	Indicator   rune
}

// Unicode is the default box-drawing glyph set.
func Unicode() Style {
	return Style{
		Name:        "unicode",
		TopLeft:     '┌',
		TopRight:    '┐',
		BottomLeft:  '└',
		BottomRight: '┘',
		Horizontal:  '─',
		Vertical:    '│',
		Indicator:   '▀',
	}
}

// ASCII is the plain fallback for terminals without box-drawing glyphs.
func ASCII() Style {
	return Style{
		Name:        "ascii",
		TopLeft:     '+',
		TopRight:    '+',
		BottomLeft:  '+',
		BottomRight: '+',
		Horizontal:  '-',
		Vertical:    '|',
		Indicator:   '=',
	}
}

// StyleByName resolves a config value to a glyph set, defaulting to
// Unicode for anything unrecognized.
func StyleByName(name string) Style {
	if name == "ascii" || name == "simple" {
		return ASCII()
	}
	return Unicode()
}
