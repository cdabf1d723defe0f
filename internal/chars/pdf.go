package chars

import (
	"fmt"

	pdflib "github.com/ledongthuc/pdf"
)

// US Letter height in points, used when a page carries no usable MediaBox.
const defaultPageHeight = 792.0

// ReadPages extracts the per-character stream of every page in the PDF at
// path. ledongthuc/pdf reports Y from the bottom edge; we flip it against
// the page height so that callers work in top-origin coordinates.
func ReadPages(path string) ([]Page, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]Page, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		height := pageHeight(page)

		content := page.Content()
		out := Page{Number: i, Chars: make([]Char, 0, len(content.Text))}
		for _, t := range content.Text {
			if t.S == "" {
				continue
			}
			out.Chars = append(out.Chars, Char{
				Text:  t.S,
				X0:    t.X,
				Width: t.W,
				Top:   height - t.Y,
				Font:  t.Font,
				Size:  t.FontSize,
				Page:  i,
			})
		}
		pages = append(pages, out)
	}
	return pages, nil
}

// pageHeight resolves the MediaBox height for a page, walking up the page
// tree for inherited boxes.
func pageHeight(p pdflib.Page) float64 {
	v := p.V
	for seen := 0; !v.IsNull() && seen < 32; seen++ {
		if mb := v.Key("MediaBox"); !mb.IsNull() && mb.Len() == 4 {
			h := mb.Index(3).Float64() - mb.Index(1).Float64()
			if h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return defaultPageHeight
}
