package repository

import (
	"github.com/andynikk/counterfile/internal/models"
)

type ReadStatus int

const (
	Parsed ReadStatus = iota
	Absent
	Malformed
)

func (rs ReadStatus) String() string {
	return [...]string{"parsed", "absent", "malformed"}[rs]
}

// ReadResult is the outcome of reading a counter file.
// Value is only meaningful when Status is Parsed.
type ReadResult struct {
	Status ReadStatus
	Value  models.Counter
}

func (r ReadResult) Found() bool {
	return r.Status == Parsed
}

// Current collapses Absent and Malformed to zero.
func (r ReadResult) Current() models.Counter {
	if r.Status != Parsed {
		return 0
	}
	return r.Value
}
