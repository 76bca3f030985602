package archive

import "errors"

// Sentinel kinds for archive errors.
var (
	ErrOpenDatabase = errors.New("open archive database failed")
	ErrMigrate      = errors.New("archive schema migration failed")
	ErrStoreRun     = errors.New("store run statistics failed")
)
