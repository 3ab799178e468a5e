package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"fleetrent/internal/model"
	"fleetrent/internal/repository"
)

const auditBatchSize = 10

// AuditLogger appends one RequestLog row per inbound request through a
// buffered channel and a batching worker. Failures to write are swallowed;
// auditing is never allowed to fail a request.
type AuditLogger struct {
	repo    repository.RequestLogRepository
	entries chan model.RequestLog
}

// NewAuditLogger creates an audit logger and starts its worker.
func NewAuditLogger(repo repository.RequestLogRepository) *AuditLogger {
	l := &AuditLogger{
		repo:    repo,
		entries: make(chan model.RequestLog, 100),
	}
	go l.worker(context.Background())
	return l
}

// worker flushes batches by size or once a second, whichever comes first.
func (l *AuditLogger) worker(ctx context.Context) {
	batch := make([]model.RequestLog, 0, auditBatchSize)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case entry, ok := <-l.entries:
			if !ok {
				if len(batch) > 0 {
					_ = l.repo.CreateBatch(ctx, batch)
				}
				return
			}
			batch = append(batch, entry)
			if len(batch) >= auditBatchSize {
				_ = l.repo.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				_ = l.repo.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ctx.Done():
			return
		}
	}
}

// Record enqueues an audit row, falling back to a direct write if the
// channel is full.
func (l *AuditLogger) Record(ctx context.Context, method, path string, at time.Time) {
	entry := model.RequestLog{Method: method, Path: path, RequestedAt: at}
	select {
	case l.entries <- entry:
	default:
		_ = l.repo.Create(ctx, &entry)
	}
}

// Middleware returns an Echo middleware appending one audit line per request.
func (l *AuditLogger) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			l.Record(c.Request().Context(), c.Request().Method, c.Request().URL.Path, time.Now().UTC())
			return next(c)
		}
	}
}
