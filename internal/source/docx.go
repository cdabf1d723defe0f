package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/docsift/docsift/internal/layout"
	"github.com/docsift/docsift/internal/outline"
	"github.com/fumiama/go-docx"
)

// DOCXSource maps Heading1..Heading6 paragraph styles to outline
// entries.
type DOCXSource struct{}

func (s *DOCXSource) Extract(r io.Reader, filename string) (*outline.Document, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "docsift-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	title := baseName(filename)
	titleSet := false

	var headings []outline.Heading
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := layout.Normalize(paragraphText(para))
		if text == "" {
			continue
		}
		if style := paragraphStyle(para); strings.EqualFold(style, "Title") && !titleSet {
			title = text
			titleSet = true
			continue
		}
		level := docxHeadingLevel(para)
		if level == 0 {
			continue
		}
		if level == 1 && !titleSet {
			title = text
			titleSet = true
		}
		headings = append(headings, outline.Heading{
			Level: clampLevel(level),
			Text:  text,
			Page:  1,
		})
	}

	return outline.Assemble(title, headings), nil
}

func paragraphStyle(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	return para.Properties.Style.Val
}

func docxHeadingLevel(para *docx.Paragraph) int {
	style := paragraphStyle(para)
	for level := 1; level <= 6; level++ {
		if strings.EqualFold(style, fmt.Sprintf("Heading%d", level)) ||
			strings.EqualFold(style, fmt.Sprintf("heading %d", level)) {
			return level
		}
	}
	return 0
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
