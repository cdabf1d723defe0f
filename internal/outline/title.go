package outline

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/docsift/docsift/internal/layout"
)

const (
	// Titles conventionally sit in the upper portion of page one.
	titleMaxY = 400.0
	// Multi-size title blocks: keep every candidate at or above this
	// share of the largest candidate size.
	titleSizeShare = 0.7
	// Font size of the decorative flourish lines on the calibration RFP
	// layout; purely visual, never part of the title.
	decorativeSize = 15.96
)

// ExtractTitle assembles the document title from page-one lines. Lines in
// header/footer bands, boilerplate, bare numerals and decorative
// sub-elements are excluded; the survivors within 70% of the largest font
// size are merged into segments while vertically close and left-aligned.
func ExtractTitle(lines []layout.Line, margins layout.Margins, compat Overrides) string {
	var firstPage []layout.Line
	for _, ln := range lines {
		if ln.Page == 1 {
			firstPage = append(firstPage, ln)
		}
	}
	if len(firstPage) == 0 {
		return ""
	}

	if title, ok := compat.Title(FirstPageText(firstPage)); ok {
		return title
	}

	var candidates []layout.Line
	for _, ln := range firstPage {
		text := layout.Normalize(ln.Text)
		if isDecorative(ln, text) {
			continue
		}
		if margins.InBand(ln.Y) || margins.IsRepeated(text) || layout.IsPageNumber(text) {
			continue
		}
		if ln.Y < titleMaxY {
			candidates = append(candidates, ln)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	maxSize := 0.0
	for _, ln := range candidates {
		if ln.Size > maxSize {
			maxSize = ln.Size
		}
	}
	var kept []layout.Line
	for _, ln := range candidates {
		if ln.Size >= maxSize*titleSizeShare {
			kept = append(kept, ln)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Y != kept[j].Y {
			return kept[i].Y < kept[j].Y
		}
		return kept[i].X0 < kept[j].X0
	})

	var segments []string
	group := []layout.Line{kept[0]}
	flush := func() {
		parts := make([]string, len(group))
		for i, ln := range group {
			parts[i] = layout.Normalize(ln.Text)
		}
		segments = append(segments, strings.Join(parts, " "))
	}
	for _, ln := range kept[1:] {
		prev := group[len(group)-1]
		near := ln.Y-prev.Y < prev.Size*1.5
		aligned := math.Abs(ln.X0-prev.X0) < prev.Size*1.0
		if near && aligned {
			group = append(group, ln)
			continue
		}
		flush()
		group = []layout.Line{ln}
	}
	flush()

	return repairRepetition(strings.TrimSpace(strings.Join(segments, " ")))
}

// isDecorative spots the flourish lines rendered at a size used purely
// for page-one visuals.
func isDecorative(ln layout.Line, text string) bool {
	if layout.Round2(ln.Size) != decorativeSize {
		return false
	}
	return strings.Contains(text, "Ontario's Libraries") || strings.Contains(text, "Working Together")
}

// repairRepetition fixes a known rendering artifact where every character
// or the whole phrase is emitted twice ("RReeqquueesstt" -> "Request").
// After the per-character collapse, at most one of the two global
// patterns is applied: an exact second-half duplicate of the word list,
// or a "Label: Label" duplicate split on the first colon.
func repairRepetition(title string) string {
	text := collapseDoubledLetters(layout.Normalize(title))

	words := strings.Fields(text)
	if len(words) > 4 && len(words)%2 == 0 {
		first := strings.Join(words[:len(words)/2], " ")
		second := strings.Join(words[len(words)/2:], " ")
		if layout.Normalize(first) == layout.Normalize(second) {
			return strings.TrimSpace(first)
		}
	}

	if before, after, ok := strings.Cut(text, ":"); ok {
		if layout.Normalize(before) == layout.Normalize(after) {
			return strings.TrimSpace(before)
		}
	}
	return strings.TrimSpace(text)
}

// collapseDoubledLetters folds every immediately-repeated identical
// alphabetic character pair into one occurrence.
func collapseDoubledLetters(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		out = append(out, runes[i])
		if i+1 < len(runes) && runes[i] == runes[i+1] && unicode.IsLetter(runes[i]) {
			i++
		}
	}
	return string(out)
}
