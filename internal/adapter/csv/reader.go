// Package csv reads ledger events from and writes client summaries to CSV.
package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iho/txengine/internal/domain"
)

var (
	// ErrMalformedRecord is wrapped by every structural record error.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrInvalidHeader is returned when the first line is not a known header.
	ErrInvalidHeader = errors.New("invalid input header")
)

var inputHeader = []string{"type", "client", "tx", "amount"}

const byteOrderMark = "\uFEFF"

// EventReader is a usecase.EventSource over CSV input with the header
// type,client,tx,amount. Fields are trimmed and the amount column may be
// omitted for disputes, resolves and chargebacks.
type EventReader struct {
	r          *stdcsv.Reader
	line       int
	headerRead bool
}

// NewEventReader creates a new EventReader.
func NewEventReader(r io.Reader) *EventReader {
	cr := stdcsv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return &EventReader{r: cr}
}

// Line returns the input line of the record last returned by Next.
func (r *EventReader) Line() int {
	return r.line
}

// Next returns the next event. Records that cannot be turned into an event
// yield a *domain.RecordError and reading may continue.
func (r *EventReader) Next() (domain.Event, error) {
	if !r.headerRead {
		if err := r.readHeader(); err != nil {
			return nil, err
		}
	}

	record, err := r.r.Read()
	if err != nil {
		var parseErr *stdcsv.ParseError
		if errors.As(err, &parseErr) {
			r.line = parseErr.StartLine
			return nil, &domain.RecordError{
				Line: r.line,
				Err:  fmt.Errorf("%w: %w", ErrMalformedRecord, parseErr.Err),
			}
		}
		return nil, err
	}
	r.line, _ = r.r.FieldPos(0)

	event, err := parseRecord(record)
	if err != nil {
		return nil, &domain.RecordError{Line: r.line, Err: err}
	}
	return event, nil
}

func (r *EventReader) readHeader() error {
	record, err := r.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	r.headerRead = true
	r.line = 1
	if len(record) > 0 {
		record[0] = strings.TrimPrefix(record[0], byteOrderMark)
	}

	if len(record) < len(inputHeader)-1 || len(record) > len(inputHeader) {
		return fmt.Errorf("%w: %q", ErrInvalidHeader, record)
	}
	for i, field := range record {
		if !strings.EqualFold(strings.TrimSpace(field), inputHeader[i]) {
			return fmt.Errorf("%w: %q", ErrInvalidHeader, record)
		}
	}
	return nil
}

func parseRecord(record []string) (domain.Event, error) {
	if len(record) < 3 || len(record) > 4 {
		return nil, fmt.Errorf("%w: expected 3 or 4 fields, got %d", ErrMalformedRecord, len(record))
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	kind, err := domain.ParseEventKind(record[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	client, err := domain.ParseClientID(record[1])
	if err != nil {
		return nil, fmt.Errorf("%w: client: %w", ErrMalformedRecord, err)
	}
	tx, err := domain.ParseTxID(record[2])
	if err != nil {
		return nil, fmt.Errorf("%w: tx: %w", ErrMalformedRecord, err)
	}

	var amount domain.Amount
	if kind.RequiresAmount() {
		if len(record) < 4 {
			return nil, fmt.Errorf("%w: %s without amount", ErrMalformedRecord, kind)
		}
		if amount, err = domain.ParseAmount(record[3]); err != nil {
			return nil, fmt.Errorf("amount %q: %w", record[3], err)
		}
	}

	return domain.NewEvent(kind, client, tx, amount)
}
