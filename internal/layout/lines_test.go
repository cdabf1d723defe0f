package layout

import (
	"testing"

	"github.com/docsift/docsift/internal/chars"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// word lays out a run of characters starting at x with the given width
// per character.
func word(text string, x, y, w, size float64, page int) []chars.Char {
	out := make([]chars.Char, 0, len(text))
	for i, r := range text {
		out = append(out, chars.Char{
			Text:  string(r),
			X0:    x + float64(i)*w,
			Width: w,
			Top:   y,
			Font:  "Helvetica",
			Size:  size,
			Page:  page,
		})
	}
	return out
}

func TestReconstructLines_SingleLine(t *testing.T) {
	page := chars.Page{Number: 1, Chars: word("Hello", 72, 100, 6, 12, 1)}
	lines := ReconstructLines([]chars.Page{page})

	require.Len(t, lines, 1)
	assert.Equal(t, "Hello", lines[0].Text)
	assert.Equal(t, 72.0, lines[0].X0)
	assert.Equal(t, 100.0, lines[0].Y)
	assert.Equal(t, 12.0, lines[0].Size)
	assert.Equal(t, 1, lines[0].Page)
}

func TestReconstructLines_WordGap(t *testing.T) {
	// "Hi" ends at x=84; the next character starts at x=95, a gap of 11
	// against a 6-unit width, so a space is synthesized.
	cs := append(word("Hi", 72, 100, 6, 12, 1), word("there", 95, 100, 6, 12, 1)...)
	lines := ReconstructLines([]chars.Page{{Number: 1, Chars: cs}})

	require.Len(t, lines, 1)
	assert.Equal(t, "Hi there", lines[0].Text)
}

func TestReconstructLines_TightKerningKeepsWordIntact(t *testing.T) {
	// Gaps below half the character width stay joined.
	cs := []chars.Char{
		{Text: "a", X0: 72, Width: 6, Top: 100, Size: 12, Page: 1},
		{Text: "b", X0: 80, Width: 6, Top: 100, Size: 12, Page: 1}, // gap 2 < 3
	}
	lines := ReconstructLines([]chars.Page{{Number: 1, Chars: cs}})

	require.Len(t, lines, 1)
	assert.Equal(t, "ab", lines[0].Text)
}

func TestReconstructLines_VerticalSplit(t *testing.T) {
	cs := append(word("First", 72, 100, 6, 12, 1), word("Second", 72, 101, 6, 12, 1)...)
	lines := ReconstructLines([]chars.Page{{Number: 1, Chars: cs}})

	require.Len(t, lines, 2)
	assert.Equal(t, "First", lines[0].Text)
	assert.Equal(t, "Second", lines[1].Text)
}

func TestReconstructLines_HalfPointToleranceSameLine(t *testing.T) {
	cs := []chars.Char{
		{Text: "a", X0: 72, Width: 6, Top: 100.0, Size: 12, Page: 1},
		{Text: "b", X0: 78, Width: 6, Top: 100.4, Size: 12, Page: 1},
	}
	lines := ReconstructLines([]chars.Page{{Number: 1, Chars: cs}})

	require.Len(t, lines, 1)
	assert.Equal(t, "ab", lines[0].Text)
}

func TestReconstructLines_DropsNonPositiveSizeAndBlank(t *testing.T) {
	cs := append(word("   ", 72, 100, 6, 12, 1), word("Ghost", 72, 200, 6, 0, 1)...)
	lines := ReconstructLines([]chars.Page{{Number: 1, Chars: cs}})

	assert.Empty(t, lines)
}

func TestReconstructLines_SortsUnorderedStream(t *testing.T) {
	// Characters arrive out of reading order.
	cs := []chars.Char{
		{Text: "B", X0: 80, Width: 6, Top: 100, Size: 12, Page: 1},
		{Text: "A", X0: 72, Width: 6, Top: 100, Size: 12, Page: 1},
		{Text: "C", X0: 72, Width: 6, Top: 130, Size: 12, Page: 1},
	}
	lines := ReconstructLines([]chars.Page{{Number: 1, Chars: cs}})

	require.Len(t, lines, 2)
	assert.Equal(t, "AB", lines[0].Text)
	assert.Equal(t, "C", lines[1].Text)
}

func TestReconstructLines_Empty(t *testing.T) {
	assert.Empty(t, ReconstructLines(nil))
	assert.Empty(t, ReconstructLines([]chars.Page{{Number: 1}}))
}
