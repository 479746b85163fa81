package mocks

import (
	"io"

	"github.com/iho/txengine/internal/domain"
)

// SourceItem is one result returned by SliceEventSource.Next.
type SourceItem struct {
	Event domain.Event
	Err   error
}

// SliceEventSource is an in-memory usecase.EventSource. Lines are numbered
// from 2, as if a header occupied line 1.
type SliceEventSource struct {
	items []SourceItem
	pos   int
}

// NewSliceEventSource returns a source yielding the given events in order.
func NewSliceEventSource(events ...domain.Event) *SliceEventSource {
	items := make([]SourceItem, 0, len(events))
	for _, e := range events {
		items = append(items, SourceItem{Event: e})
	}
	return &SliceEventSource{items: items}
}

// NewSliceEventSourceWithItems allows interleaving record errors.
func NewSliceEventSourceWithItems(items ...SourceItem) *SliceEventSource {
	return &SliceEventSource{items: items}
}

func (s *SliceEventSource) Next() (domain.Event, error) {
	if s.pos >= len(s.items) {
		return nil, io.EOF
	}
	item := s.items[s.pos]
	s.pos++
	return item.Event, item.Err
}

func (s *SliceEventSource) Line() int {
	return s.pos + 1
}

// SummaryCollector is a usecase.SummaryWriter that keeps what it was given.
type SummaryCollector struct {
	Summaries []domain.ClientSummary
	Err       error
}

func (c *SummaryCollector) Write(summaries []domain.ClientSummary) error {
	if c.Err != nil {
		return c.Err
	}
	c.Summaries = append([]domain.ClientSummary(nil), summaries...)
	return nil
}
