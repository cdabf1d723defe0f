package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/docsift/docsift/internal/source"
	"golang.org/x/sync/errgroup"
)

// BatchSummary reports the outcome of a directory run.
type BatchSummary struct {
	Processed int
	Failed    int
}

// RunBatch extracts outlines for every supported file in inputDir and
// writes one <name>.json per document into outputDir. Documents are fully
// independent, so they run in parallel up to the worker limit; a failed
// document is logged and counted but never stops the batch.
func RunBatch(ctx context.Context, log *slog.Logger, inputDir, outputDir string, workers int, opts source.Options) (BatchSummary, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return BatchSummary{}, fmt.Errorf("read input dir: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return BatchSummary{}, fmt.Errorf("create output dir: %w", err)
	}

	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var processed, failed atomic.Int64
	for _, entry := range entries {
		if entry.IsDir() || !source.IsSupportedExtension(entry.Name()) {
			continue
		}
		name := entry.Name()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := extractOne(filepath.Join(inputDir, name), outputDir, opts); err != nil {
				log.Error("document failed", "file", name, "error", err)
				failed.Add(1)
				return nil
			}
			log.Info("document processed", "file", name)
			processed.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchSummary{}, err
	}
	return BatchSummary{
		Processed: int(processed.Load()),
		Failed:    int(failed.Load()),
	}, nil
}

// extractOne runs one document end to end and writes its JSON record.
func extractOne(path, outputDir string, opts source.Options) error {
	src, err := source.ForFile(path, opts)
	if err != nil {
		return err
	}

	var doc any
	if pdfSrc, ok := src.(*source.PDFSource); ok {
		// PDFs are read from disk directly; no temp-file round trip.
		doc, err = pdfSrc.FromPath(path)
	} else {
		f, openErr := os.Open(path)
		if openErr != nil {
			return fmt.Errorf("open: %w", openErr)
		}
		defer f.Close()
		doc, err = src.Extract(f, filepath.Base(path))
	}
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	data = append(data, '\n')

	base := filepath.Base(path)
	outName := strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
	outPath := filepath.Join(outputDir, outName)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
