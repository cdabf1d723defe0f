package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/internal/config"
)

func testOrchConfig() config.Config {
	return config.Config{
		WorkerCount:  2,
		MaxQueueSize: 4,
		JobTTL:       time.Hour,
	}
}

func TestOrchestrator_ProcessesJob(t *testing.T) {
	orch := NewOrchestrator(testOrchConfig(), discardLogger())
	orch.Start(context.Background())
	defer orch.Stop()

	job := NewJob("notes.md", []byte("# Minutes\n\n## Attendees\n"))
	require.NoError(t, orch.Submit(job))

	require.Eventually(t, func() bool {
		return orch.GetJob(job.ID).Snapshot().Status == StatusCompleted
	}, 2*time.Second, 10*time.Millisecond)

	snap := orch.GetJob(job.ID).Snapshot()
	require.NotNil(t, snap.Result)
	assert.Equal(t, "Minutes", snap.Result.Title)
	assert.GreaterOrEqual(t, orch.Stats().Snapshot().Documents, 1)
}

func TestOrchestrator_SubmitAfterStop(t *testing.T) {
	orch := NewOrchestrator(testOrchConfig(), discardLogger())
	orch.Start(context.Background())
	orch.Stop()

	// A request racing shutdown must never crash the process; the job
	// simply stays queued with no worker to drain it.
	assert.NotPanics(t, func() {
		job := NewJob("late.md", []byte("# Too Late\n"))
		_ = orch.Submit(job)
		assert.NotNil(t, orch.GetJob(job.ID))
	})
}

func TestOrchestrator_QueueFull(t *testing.T) {
	cfg := testOrchConfig()
	cfg.MaxQueueSize = 1
	orch := NewOrchestrator(cfg, discardLogger())
	// Not started: nothing drains the queue.

	require.NoError(t, orch.Submit(NewJob("a.md", nil)))

	overflow := NewJob("b.md", nil)
	err := orch.Submit(overflow)
	require.Error(t, err)
	assert.Equal(t, StatusFailed, overflow.Snapshot().Status)
	assert.Equal(t, 1, orch.QueueDepth())
}
