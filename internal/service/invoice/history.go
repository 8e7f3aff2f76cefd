package invoice

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

type historyRepo interface {
	AddHistory(ctx context.Context, e *domain.InvoiceHistoryEntry) error
}

// HistoryRecorder writes invoice audit entries off the request path.
// Record never blocks and never fails the mutation that produced the
// entry: when the buffer is full the entry is dropped with a warning.
type HistoryRecorder struct {
	repo    historyRepo
	entries chan domain.InvoiceHistoryEntry
	done    chan struct{}
	timeout time.Duration
	log     *slog.Logger
}

// NewHistoryRecorder creates a recorder and starts its writer goroutine.
func NewHistoryRecorder(log *slog.Logger, repo historyRepo, bufferSize int, writeTimeout time.Duration) *HistoryRecorder {
	r := &HistoryRecorder{
		repo:    repo,
		entries: make(chan domain.InvoiceHistoryEntry, bufferSize),
		done:    make(chan struct{}),
		timeout: writeTimeout,
		log:     log.With("component", "invoice_history"),
	}
	go r.run()
	return r
}

// Record enqueues an audit entry. Best effort only.
func (r *HistoryRecorder) Record(e domain.InvoiceHistoryEntry) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	select {
	case r.entries <- e:
	default:
		r.log.Warn("history buffer full, entry dropped",
			slog.String("invoice_id", e.InvoiceID.String()),
			slog.String("action", e.Action.String()),
		)
	}
}

// Close stops accepting entries, drains the buffer and waits for the
// writer goroutine to finish.
func (r *HistoryRecorder) Close() {
	close(r.entries)
	<-r.done
}

func (r *HistoryRecorder) run() {
	defer close(r.done)

	for e := range r.entries {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		if err := r.repo.AddHistory(ctx, &e); err != nil {
			r.log.Warn("history write failed",
				slog.String("invoice_id", e.InvoiceID.String()),
				slog.String("action", e.Action.String()),
				slog.String("error", err.Error()),
			)
		}
		cancel()
	}
}
