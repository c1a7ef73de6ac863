package kline

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord reports a raw record with the wrong number of fields.
var ErrMalformedRecord = errors.New("malformed record")

// RecordError locates a malformed record within its input.
type RecordError struct {
	Index  int
	Record string
	Got    int
	Want   int
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d %q: %d fields, want %d: %v", e.Index, e.Record, e.Got, e.Want, ErrMalformedRecord)
}

func (e *RecordError) Unwrap() error { return ErrMalformedRecord }
