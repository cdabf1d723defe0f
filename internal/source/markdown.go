package source

import (
	"io"

	"github.com/docsift/docsift/internal/layout"
	"github.com/docsift/docsift/internal/outline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownSource maps ATX/setext headings to outline entries using the
// goldmark AST. The first top-level heading doubles as the title.
type MarkdownSource struct{}

func (s *MarkdownSource) Extract(r io.Reader, filename string) (*outline.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	title := baseName(filename)
	titleSet := false

	var headings []outline.Heading
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		content := layout.Normalize(string(headingText(h, src)))
		if content == "" {
			continue
		}
		if h.Level == 1 && !titleSet {
			title = content
			titleSet = true
		}
		headings = append(headings, outline.Heading{
			Level: clampLevel(h.Level),
			Text:  content,
			Page:  1,
		})
	}

	return outline.Assemble(title, headings), nil
}

// headingText collects the literal text of a heading's inline children.
func headingText(n ast.Node, src []byte) []byte {
	var out []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			out = append(out, t.Value(src)...)
			continue
		}
		out = append(out, headingText(c, src)...)
	}
	return out
}
