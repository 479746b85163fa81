package csv

import (
	stdcsv "encoding/csv"
	"io"
	"strconv"

	"github.com/iho/txengine/internal/domain"
)

var outputHeader = []string{"client", "available", "held", "total", "locked"}

// SummaryWriter writes client summaries as CSV. It implements
// usecase.SummaryWriter.
type SummaryWriter struct {
	w *stdcsv.Writer
}

// NewSummaryWriter creates a new SummaryWriter.
func NewSummaryWriter(w io.Writer) *SummaryWriter {
	return &SummaryWriter{w: stdcsv.NewWriter(w)}
}

// Write emits the header followed by one row per summary.
func (w *SummaryWriter) Write(summaries []domain.ClientSummary) error {
	if err := w.w.Write(outputHeader); err != nil {
		return err
	}

	row := make([]string, len(outputHeader))
	for _, s := range summaries {
		row[0] = s.Client.String()
		row[1] = s.Available.String()
		row[2] = s.Held.String()
		row[3] = s.Total.String()
		row[4] = strconv.FormatBool(s.Locked)
		if err := w.w.Write(row); err != nil {
			return err
		}
	}

	w.w.Flush()
	return w.w.Error()
}
