package layout

import (
	"sort"
	"strings"

	"github.com/docsift/docsift/internal/chars"
)

// Vertical tolerance in points for characters considered part of the same
// line.
const sameLineTolerance = 0.5

// Line is a reconstructed run of characters sharing a vertical band. It
// inherits font, size and position from its first character and is the
// base unit for all downstream classification.
type Line struct {
	Text string
	Font string
	Size float64
	X0   float64
	Y    float64 // top of the first character
	Page int
}

// ReconstructLines groups per-page characters into text lines. Characters
// are ordered by (rounded top, x0); a jump of more than half a point in
// the vertical direction starts a new line, and a horizontal gap wider
// than half the current character's width is rendered as a space to
// recover word boundaries lost in the raw stream.
func ReconstructLines(pages []chars.Page) []Line {
	var lines []Line
	for _, page := range pages {
		cs := make([]chars.Char, len(page.Chars))
		copy(cs, page.Chars)
		sort.SliceStable(cs, func(i, j int) bool {
			yi, yj := Round1(cs[i].Top), Round1(cs[j].Top)
			if yi != yj {
				return yi < yj
			}
			return cs[i].X0 < cs[j].X0
		})

		var current []chars.Char
		prevY := 0.0
		for _, c := range cs {
			y := Round1(c.Top)
			if len(current) == 0 || abs(y-prevY) > sameLineTolerance {
				if ln, ok := buildLine(current, page.Number); ok {
					lines = append(lines, ln)
				}
				current = current[:0]
			}
			current = append(current, c)
			prevY = y
		}
		if ln, ok := buildLine(current, page.Number); ok {
			lines = append(lines, ln)
		}
	}
	return lines
}

// buildLine assembles one line's text from its characters. Lines whose
// first character has a non-positive font size, or whose text is blank,
// are dropped.
func buildLine(cs []chars.Char, page int) (Line, bool) {
	if len(cs) == 0 {
		return Line{}, false
	}

	var text strings.Builder
	prevEnd := 0.0
	for i, c := range cs {
		if i > 0 {
			gap := c.X0 - prevEnd
			if gap > c.Width*0.5 && strings.TrimSpace(text.String()) != "" {
				text.WriteByte(' ')
			}
		}
		text.WriteString(c.Text)
		prevEnd = c.X0 + c.Width
	}

	first := cs[0]
	trimmed := strings.TrimSpace(text.String())
	if trimmed == "" || first.Size <= 0 {
		return Line{}, false
	}
	return Line{
		Text: trimmed,
		Font: first.Font,
		Size: first.Size,
		X0:   first.X0,
		Y:    first.Top,
		Page: page,
	}, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
