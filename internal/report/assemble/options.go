package assemble

import "github.com/subcentral/fillrate/pkg/logger"

// Option applies a configuration option to the Assembler.
type Option func(*Assembler)

// WithLogger replaces the assembler's logger.
func WithLogger(log logger.Logger) Option {
	return func(a *Assembler) {
		if log != nil {
			a.log = log
		}
	}
}

// WithLogo sets the source path of the logo copied into the output root.
// Empty disables the logo block on every page.
func WithLogo(path string) Option {
	return func(a *Assembler) { a.logoPath = path }
}
