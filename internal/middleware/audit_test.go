package middleware

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fleetrent/internal/model"
)

// recordingLogRepo captures writes and signals when a batch lands.
type recordingLogRepo struct {
	mu      sync.Mutex
	singles []model.RequestLog
	batches [][]model.RequestLog
	flushed chan struct{}
}

func newRecordingLogRepo() *recordingLogRepo {
	return &recordingLogRepo{flushed: make(chan struct{}, 10)}
}

func (r *recordingLogRepo) Create(ctx context.Context, entry *model.RequestLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.singles = append(r.singles, *entry)
	return nil
}

func (r *recordingLogRepo) CreateBatch(ctx context.Context, entries []model.RequestLog) error {
	r.mu.Lock()
	r.batches = append(r.batches, append([]model.RequestLog(nil), entries...))
	r.mu.Unlock()
	r.flushed <- struct{}{}
	return nil
}

func TestAuditLogger_WorkerFlushesFullBatch(t *testing.T) {
	repo := newRecordingLogRepo()
	logger := NewAuditLogger(repo)

	at := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	for i := 0; i < auditBatchSize; i++ {
		logger.Record(context.Background(), "GET", "/analytics", at)
	}

	select {
	case <-repo.flushed:
	case <-time.After(3 * time.Second):
		t.Fatal("batch was never flushed")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.NotEmpty(t, repo.batches)
	total := 0
	for _, b := range repo.batches {
		total += len(b)
	}
	assert.Equal(t, auditBatchSize, total)
	assert.Equal(t, "GET", repo.batches[0][0].Method)
	assert.Equal(t, "/analytics", repo.batches[0][0].Path)
}

func TestAuditLogger_RecordFallsBackWhenChannelFull(t *testing.T) {
	repo := newRecordingLogRepo()
	// no worker draining the channel
	logger := &AuditLogger{repo: repo, entries: make(chan model.RequestLog, 1)}

	at := time.Now().UTC()
	logger.Record(context.Background(), "POST", "/vehicles/add", at)
	logger.Record(context.Background(), "POST", "/trips/create", at)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if assert.Len(t, repo.singles, 1) {
		assert.Equal(t, "/trips/create", repo.singles[0].Path)
	}
}
