package invoice

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	mu      sync.Mutex
	written []domain.InvoiceHistoryEntry
	err     error
	block   chan struct{}
}

func (m *historyRepoMock) AddHistory(ctx context.Context, e *domain.InvoiceHistoryEntry) error {
	if m.block != nil {
		<-m.block
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.written = append(m.written, *e)
	return nil
}

func (m *historyRepoMock) entries() []domain.InvoiceHistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.InvoiceHistoryEntry(nil), m.written...)
}

func TestHistoryRecorder_WritesEntries(t *testing.T) {
	t.Parallel()

	repo := &historyRepoMock{}
	rec := NewHistoryRecorder(slog.Default(), repo, 16, time.Second)

	invoiceID := uuid.New()
	rec.Record(domain.InvoiceHistoryEntry{
		InvoiceID: invoiceID,
		UserID:    uuid.New(),
		Action:    domain.HistoryInvoiceCreated,
	})
	rec.Close()

	got := repo.entries()
	if len(got) != 1 {
		t.Fatalf("written entries: got %d, want 1", len(got))
	}
	if got[0].InvoiceID != invoiceID {
		t.Errorf("invoice ID: got %v, want %v", got[0].InvoiceID, invoiceID)
	}
	if got[0].ID == uuid.Nil {
		t.Error("expected an ID to be assigned")
	}
}

func TestHistoryRecorder_CloseDrainsBuffer(t *testing.T) {
	t.Parallel()

	repo := &historyRepoMock{}
	rec := NewHistoryRecorder(slog.Default(), repo, 16, time.Second)

	for range 10 {
		rec.Record(domain.InvoiceHistoryEntry{
			InvoiceID: uuid.New(),
			Action:    domain.HistoryItemAdded,
		})
	}
	rec.Close()

	if got := len(repo.entries()); got != 10 {
		t.Errorf("written entries: got %d, want 10", got)
	}
}

func TestHistoryRecorder_FullBufferDoesNotBlock(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	repo := &historyRepoMock{block: block}
	rec := NewHistoryRecorder(slog.Default(), repo, 1, time.Second)

	// The writer takes the first entry and blocks; the second fills the
	// buffer, so the rest must be dropped without blocking the caller.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 5 {
			rec.Record(domain.InvoiceHistoryEntry{
				InvoiceID: uuid.New(),
				Action:    domain.HistoryFieldUpdated,
			})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked on a full buffer")
	}

	close(block)
	rec.Close()
}

func TestHistoryRecorder_WriteFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	repo := &historyRepoMock{err: errors.New("db down")}
	rec := NewHistoryRecorder(slog.Default(), repo, 4, time.Second)

	rec.Record(domain.InvoiceHistoryEntry{
		InvoiceID: uuid.New(),
		Action:    domain.HistoryItemDeleted,
	})
	rec.Close()

	if got := len(repo.entries()); got != 0 {
		t.Errorf("written entries: got %d, want 0", got)
	}
}
