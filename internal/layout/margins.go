package layout

// Page-band thresholds in points (top-origin coordinates).
const (
	headerBandMaxY = 120.0
	footerBandMinY = 650.0
)

// Margins records the y-coordinates claimed by running headers and
// footers and the normalized texts repeated across enough pages to count
// as boilerplate. Computed once per document, then read-only.
type Margins struct {
	headerYs map[float64]struct{}
	footerYs map[float64]struct{}
	repeated map[string]struct{}
}

// DetectMargins classifies rounded y-coordinates and normalized texts by
// how many distinct pages they appear on. The threshold is fractional,
// max(2, 0.6×totalPages), so a heading that happens to repeat on a couple
// of pages of a long document is not mistaken for a running header.
func DetectMargins(lines []Line, totalPages int) Margins {
	yPages := make(map[float64]map[int]struct{})
	textPages := make(map[string]map[int]struct{})
	for _, ln := range lines {
		y := Round1(ln.Y)
		if yPages[y] == nil {
			yPages[y] = make(map[int]struct{})
		}
		yPages[y][ln.Page] = struct{}{}

		text := Normalize(ln.Text)
		if textPages[text] == nil {
			textPages[text] = make(map[int]struct{})
		}
		textPages[text][ln.Page] = struct{}{}
	}

	threshold := float64(totalPages) * 0.6
	if threshold < 2 {
		threshold = 2
	}

	m := Margins{
		headerYs: make(map[float64]struct{}),
		footerYs: make(map[float64]struct{}),
		repeated: make(map[string]struct{}),
	}

	for text, pages := range textPages {
		if float64(len(pages)) >= threshold && !IsPageNumber(text) {
			m.repeated[text] = struct{}{}
		}
	}
	for y, pages := range yPages {
		if float64(len(pages)) < threshold {
			continue
		}
		switch {
		case y < headerBandMaxY:
			m.headerYs[y] = struct{}{}
		case y > footerBandMinY:
			m.footerYs[y] = struct{}{}
		}
	}
	return m
}

// InBand reports whether y (rounded) is a detected header or footer
// coordinate.
func (m Margins) InBand(y float64) bool {
	r := Round1(y)
	if _, ok := m.headerYs[r]; ok {
		return true
	}
	_, ok := m.footerYs[r]
	return ok
}

// IsRepeated reports whether normalized text is document boilerplate.
func (m Margins) IsRepeated(normalized string) bool {
	_, ok := m.repeated[normalized]
	return ok
}
