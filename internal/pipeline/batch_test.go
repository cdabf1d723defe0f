package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/internal/outline"
	"github.com/docsift/docsift/internal/source"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeInput(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRunBatch(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	writeInput(t, inputDir, "notes.md", "# Release Notes\n\n## Fixes\n\ntext\n")
	writeInput(t, inputDir, "page.html", "<html><head><title>Landing</title></head><body><h1>Welcome</h1></body></html>")
	writeInput(t, inputDir, "readme.txt", "not a supported format")

	summary, err := RunBatch(context.Background(), discardLogger(), inputDir, outputDir, 2, source.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 0, summary.Failed)

	data, err := os.ReadFile(filepath.Join(outputDir, "notes.json"))
	require.NoError(t, err)
	var doc outline.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Release Notes", doc.Title)
	require.Len(t, doc.Outline, 2)
	assert.Equal(t, "H2", doc.Outline[1].Level)

	_, err = os.Stat(filepath.Join(outputDir, "page.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outputDir, "readme.json"))
	assert.True(t, os.IsNotExist(err), "unsupported files are skipped")
}

func TestRunBatch_FailedDocumentDoesNotStopBatch(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	writeInput(t, inputDir, "broken.pdf", "this is not a pdf")
	writeInput(t, inputDir, "ok.md", "# Works\n")

	summary, err := RunBatch(context.Background(), discardLogger(), inputDir, outputDir, 1, source.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Failed)

	_, err = os.Stat(filepath.Join(outputDir, "broken.json"))
	assert.True(t, os.IsNotExist(err), "failed documents produce no output file")
}

func TestRunBatch_MissingInputDir(t *testing.T) {
	_, err := RunBatch(context.Background(), discardLogger(), filepath.Join(t.TempDir(), "nope"), t.TempDir(), 1, source.Options{})
	assert.Error(t, err)
}
