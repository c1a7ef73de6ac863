package recorder

import (
	"errors"

	"KlineScope/internal/model"
)

// ErrNoSnapshot is returned by Latest for a symbol never recorded.
var ErrNoSnapshot = errors.New("no snapshot recorded")

// Recorder keeps the latest indicator snapshot of each symbol for the chart
// front end to read.
type Recorder interface {
	RecordSnapshot(snap *model.Snapshot) error
	Latest(symbol string) (*model.Snapshot, error)
	Close() error
}
