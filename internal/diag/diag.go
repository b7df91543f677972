package diag

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"iconpack/internal/domain"
)

// Logger reports diagnostics as structured log lines.
type Logger struct {
	log *slog.Logger
}

// NewLogger writes text-format diagnostics to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{log: slog.New(slog.NewTextHandler(w, nil))}
}

func (l *Logger) Report(d domain.Diagnostic) {
	level := slog.LevelWarn
	if d.Severity == domain.SeverityInfo {
		level = slog.LevelInfo
	}
	l.log.Log(context.Background(), level, d.Reason, "subject", d.Subject)
}

// Recorder collects diagnostics in memory so tests can assert on them.
type Recorder struct {
	mu sync.Mutex
	ds []domain.Diagnostic
}

func (r *Recorder) Report(d domain.Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ds = append(r.ds, d)
}

// All returns a copy of everything reported so far.
func (r *Recorder) All() []domain.Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Diagnostic(nil), r.ds...)
}

// Subjects returns the subject of every reported diagnostic, in order.
func (r *Recorder) Subjects() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.ds))
	for i, d := range r.ds {
		out[i] = d.Subject
	}
	return out
}
