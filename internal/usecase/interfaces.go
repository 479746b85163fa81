package usecase

import (
	"context"

	"github.com/iho/txengine/internal/domain"
)

// EventSource yields input events in order. Next returns io.EOF when the
// input is exhausted and a *domain.RecordError for a record that must be
// skipped. Any other error is fatal for the run.
type EventSource interface {
	Next() (domain.Event, error)
	// Line returns the input line of the last record returned by Next.
	Line() int
}

// SummaryWriter writes the final per-client report.
type SummaryWriter interface {
	Write(summaries []domain.ClientSummary) error
}

// SummaryExporter publishes the final per-client report to an external store.
type SummaryExporter interface {
	Name() string
	Export(ctx context.Context, runID string, summaries []domain.ClientSummary) error
}

// Journal receives every successfully applied event.
type Journal interface {
	Record(entry domain.JournalEntry)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
