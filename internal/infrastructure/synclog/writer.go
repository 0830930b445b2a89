// Package synclog appends sync summaries to daily JSON-lines files.
package synclog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/courtvision/court-vision/internal/domain/syncrun"
)

const fileLayout = "2006-01-02"

type record struct {
	RunID         string   `json:"runId,omitempty"`
	Entity        string   `json:"entity"`
	Status        string   `json:"status"`
	Created       int      `json:"created"`
	Updated       int      `json:"updated"`
	Skipped       int      `json:"skipped"`
	Errors        int      `json:"errors"`
	ErrorMessages []string `json:"errorMessages,omitempty"`
	SkipReason    string   `json:"skipReason,omitempty"`
	StartedAt     string   `json:"startedAt"`
	FinishedAt    string   `json:"finishedAt"`
	DurationMs    int64    `json:"durationMs"`
}

// Writer appends one line per run to dir/sync-YYYY-MM-DD.jsonl. The file
// day follows the run's finish time in UTC.
type Writer struct {
	dir string
	mu  sync.Mutex
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

func (w *Writer) Path(at time.Time) string {
	return filepath.Join(w.dir, "sync-"+at.UTC().Format(fileLayout)+".jsonl")
}

func (w *Writer) Append(_ context.Context, run syncrun.Run) error {
	s := run.Summary
	rec := record{
		RunID:         run.ID,
		Entity:        string(s.Entity),
		Status:        string(run.Status),
		Created:       s.Created,
		Updated:       s.Updated,
		Skipped:       s.Skipped,
		Errors:        s.Errors,
		ErrorMessages: s.ErrorMessages,
		SkipReason:    s.SkipReason,
		StartedAt:     s.StartedAt.UTC().Format(time.RFC3339Nano),
		FinishedAt:    s.FinishedAt.UTC().Format(time.RFC3339Nano),
		DurationMs:    s.Duration().Milliseconds(),
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	raw, err := sonic.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode sync log record: %w", err)
	}
	_, _ = buf.Write(raw)
	_ = buf.WriteByte('\n')

	finished := s.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create sync log dir: %w", err)
	}
	f, err := os.OpenFile(w.Path(finished), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open sync log: %w", err)
	}
	if _, err := f.Write(buf.B); err != nil {
		_ = f.Close()
		return fmt.Errorf("write sync log: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close sync log: %w", err)
	}
	return nil
}
