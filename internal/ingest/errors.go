package ingest

import "errors"

// Sentinel kinds for load errors.
var (
	ErrMissingColumn = errors.New("required column missing")
	ErrOpenInput     = errors.New("open input failed")
	ErrReadInput     = errors.New("read input failed")
)

// Issue reasons surfaced in RowIssue and the skip metrics.
const (
	ReasonBadDate     = "bad_date"
	ReasonBadDistrict = "bad_district"
	ReasonUnknownType = "unknown_type"
)
