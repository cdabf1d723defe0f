package source

import (
	"fmt"
	"io"
	"os"

	"github.com/docsift/docsift/internal/chars"
	"github.com/docsift/docsift/internal/layout"
	"github.com/docsift/docsift/internal/outline"
)

// PDFSource infers an outline from raw character layout. The stages are
// strictly sequential: classification needs the margin bands and font
// hierarchy computed from the complete line set.
type PDFSource struct {
	Compat outline.Overrides
}

func (s *PDFSource) Extract(r io.Reader, filename string) (*outline.Document, error) {
	// The PDF reader requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "docsift-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	return s.FromPath(tmpPath)
}

// FromPath runs the full layout-to-structure pipeline against a PDF on
// disk. An unreadable file is the only error surface; past that point
// every stage degrades to empty output.
func (s *PDFSource) FromPath(path string) (*outline.Document, error) {
	pages, err := chars.ReadPages(path)
	if err != nil {
		return nil, fmt.Errorf("read characters: %w", err)
	}

	lines := layout.ReconstructLines(pages)

	totalPages := 1
	for _, ln := range lines {
		if ln.Page > totalPages {
			totalPages = ln.Page
		}
	}

	margins := layout.DetectMargins(lines, totalPages)
	fonts := layout.InferFontHierarchy(lines)

	title := outline.ExtractTitle(lines, margins, s.Compat)
	ctx := outline.NewContext(lines, margins, fonts, s.Compat)
	headings := outline.Classify(lines, ctx)

	return outline.Assemble(title, headings), nil
}
