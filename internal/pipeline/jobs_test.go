package pipeline

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/internal/outline"
)

func TestNewJob(t *testing.T) {
	job := NewJob("report.pdf", []byte("%PDF-1.4"))

	assert.NotEmpty(t, job.ID)
	assert.Len(t, job.ID, 26)
	assert.Equal(t, StatusQueued, job.Status)
	assert.Equal(t, "report.pdf", job.Filename)
	assert.Equal(t, []byte("%PDF-1.4"), job.FileData())
}

func TestJob_IDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewJob("a.md", nil).ID
		assert.False(t, seen[id], "duplicate job id %s", id)
		seen[id] = true
	}
}

func TestJob_Snapshot(t *testing.T) {
	job := NewJob("doc.md", nil)
	job.SetStatus(StatusCompleted)
	job.SetResult(&outline.Document{
		Title:   "Quarterly Report",
		Outline: []outline.Heading{{Level: "H1", Text: "Summary", Page: 1}},
	})

	snap := job.Snapshot()
	assert.Equal(t, job.ID, snap.ID)
	assert.Equal(t, StatusCompleted, snap.Status)
	assert.NotNil(t, snap.Errors, "errors serialize as [] rather than null")
	require.NotNil(t, snap.Result)
	assert.Equal(t, "Quarterly Report", snap.Result.Title)
}

func TestJob_SnapshotOmitsResultWhenAbsent(t *testing.T) {
	job := NewJob("doc.md", nil)
	job.SetStatus(StatusFailed)
	job.AddError("unsupported file type")

	data, err := json.Marshal(job.Snapshot())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "result")
	assert.Contains(t, string(data), "unsupported file type")
}

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := NewJob("doc.md", nil)
	store.Put(job)

	assert.Same(t, job, store.Get(job.ID))
	assert.Nil(t, store.Get("missing"))
}

func TestJobStore_CleanupEvictsExpired(t *testing.T) {
	store := NewJobStore(time.Minute)

	stale := NewJob("old.md", nil)
	stale.UpdatedAt = time.Now().Add(-2 * time.Minute)
	store.Put(stale)

	fresh := NewJob("new.md", nil)
	store.Put(fresh)

	store.Cleanup()
	assert.Nil(t, store.Get(stale.ID))
	assert.NotNil(t, store.Get(fresh.ID))
}
