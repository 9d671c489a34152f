package visitor

import "github.com/lang-tools/gqlvisit/gqllog"

// Option configures a Visit call using the functional-options pattern.
type Option func(*engine)

// WithLogger attaches a logger that receives one Debug line per dispatched
// enter/leave event and one Debug line per non-Continue command. Logging
// is purely diagnostic: it never influences traversal behavior.
func WithLogger(logger gqllog.Logger) Option {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
