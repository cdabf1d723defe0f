// Package source dispatches documents to outline extractors by format.
// PDF runs the full layout-inference pipeline; HTML, Markdown and DOCX
// carry explicit heading structure and map it directly.
package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/docsift/docsift/internal/outline"
)

// Source converts raw document bytes into a title and outline.
type Source interface {
	Extract(r io.Reader, filename string) (*outline.Document, error)
}

// Options configures extraction behavior shared by all sources.
type Options struct {
	// CompatOverrides enables the fixture table for known calibration
	// documents, including their legacy 0-based page numbers.
	CompatOverrides bool
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".html":     true,
	".htm":      true,
	".md":       true,
	".markdown": true,
	".docx":     true,
}

// ForFile returns the appropriate source for a filename.
func ForFile(filename string, opts Options) (Source, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return &PDFSource{Compat: outline.NewOverrides(opts.CompatOverrides)}, nil
	case ".html", ".htm":
		return &HTMLSource{}, nil
	case ".md", ".markdown":
		return &MarkdownSource{}, nil
	case ".docx":
		return &DOCXSource{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// baseName strips the directory and extension from a filename; the
// fallback title for formats without an intrinsic one.
func baseName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// clampLevel caps structural heading depth at H4, the deepest level the
// outline record carries.
func clampLevel(level int) string {
	if level > 4 {
		level = 4
	}
	return fmt.Sprintf("H%d", level)
}
