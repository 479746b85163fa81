package domain

import "fmt"

// RecordError reports an input record that could not become an Event.
// Such records are skipped; the run continues with the next one.
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record on line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
