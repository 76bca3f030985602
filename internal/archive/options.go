package archive

import "github.com/subcentral/fillrate/pkg/logger"

// Option applies a configuration option to the Archiver.
type Option func(*Archiver)

// WithLogger replaces the archiver's logger.
func WithLogger(log logger.Logger) Option {
	return func(a *Archiver) {
		if log != nil {
			a.log = log
		}
	}
}
