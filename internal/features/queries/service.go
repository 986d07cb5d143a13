package queries

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xyz-asif/filmdeck/internal/pkg/logger"
)

// FailureCounter is told about every record that could not be stored.
type FailureCounter interface {
	QueryLogFailed()
}

// Log records search queries and reads back the most recent ones.
type Log struct {
	repo     Repository
	failures FailureCounter
	log      *logger.Logger
	now      func() time.Time
}

// NewLog wires the query log. failures may be nil.
func NewLog(repo Repository, failures FailureCounter, log *logger.Logger) *Log {
	return &Log{
		repo:     repo,
		failures: failures,
		log:      log.With("component", "querylog"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Record appends query to the log exactly as supplied. It never fails the
// caller: store errors are logged and counted.
func (l *Log) Record(ctx context.Context, query string) {
	if strings.TrimSpace(query) == "" {
		return
	}

	rec := &Record{
		ID:        uuid.NewString(),
		Query:     query,
		CreatedAt: l.now(),
	}
	if err := l.repo.Append(ctx, rec); err != nil {
		if l.failures != nil {
			l.failures.QueryLogFailed()
		}
		l.log.WarnContext(ctx, "query log append failed", "error", err)
	}
}

// RecentN returns up to n records, newest first.
func (l *Log) RecentN(ctx context.Context, n int) ([]Record, error) {
	if n <= 0 {
		return []Record{}, nil
	}
	return l.repo.Recent(ctx, n)
}
