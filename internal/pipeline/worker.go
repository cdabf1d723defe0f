package pipeline

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/docsift/docsift/internal/source"
)

// Worker processes a single document job.
type Worker struct {
	log   *slog.Logger
	opts  source.Options
	stats *ExtractStats
}

func NewWorker(log *slog.Logger, opts source.Options, stats *ExtractStats) *Worker {
	return &Worker{log: log, opts: opts, stats: stats}
}

// Process runs outline extraction for one job. A failure marks only this
// job; the pool keeps draining the queue.
func (w *Worker) Process(job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	job.SetStatus(StatusExtracting)
	start := time.Now()

	src, err := source.ForFile(job.Filename, w.opts)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed)
		return
	}

	doc, err := src.Extract(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		job.SetStatus(StatusFailed)
		return
	}

	elapsed := time.Since(start)
	w.stats.Record(elapsed.Milliseconds(), len(doc.Outline))

	job.SetResult(doc)
	job.SetStatus(StatusCompleted)
	log.Info("extraction complete",
		"headings", len(doc.Outline),
		"title_len", len(doc.Title),
		"duration_ms", elapsed.Milliseconds(),
	)
}
