// Package outline turns reconstructed layout lines into a document title
// and a leveled H1-H4 heading outline.
package outline

import (
	"strings"
	"unicode"

	"github.com/docsift/docsift/internal/layout"
)

// Heading is one outline entry. The unexported coordinates are carried
// only through merge and sort and never serialize.
type Heading struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`

	y        float64
	x0       float64
	fontSize float64
}

// Document is the per-document output record. Key order is fixed by the
// struct; Outline is always present, never null.
type Document struct {
	Title   string    `json:"title"`
	Outline []Heading `json:"outline"`
}

// Assemble combines a title and classified headings into the final
// record.
func Assemble(title string, headings []Heading) *Document {
	if headings == nil {
		headings = []Heading{}
	}
	return &Document{Title: title, Outline: headings}
}

// levelRank orders heading labels, H1 strongest. Unknown labels rank
// below H4.
func levelRank(level string) int {
	switch level {
	case "H1":
		return 1
	case "H2":
		return 2
	case "H3":
		return 3
	case "H4":
		return 4
	}
	return 5
}

// FirstPageText joins the normalized text of all page-one lines, in the
// order given. Used to fingerprint known calibration documents.
func FirstPageText(lines []layout.Line) string {
	var parts []string
	for _, ln := range lines {
		if ln.Page == 1 {
			parts = append(parts, layout.Normalize(ln.Text))
		}
	}
	return strings.Join(parts, " ")
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
