package lagoon

import (
	"github.com/bft-labs/lagoon/internal/parser"
	"github.com/bft-labs/lagoon/pkg/log"
)

// Option configures optional behavior of Solve.
type Option func(*options)

type options struct {
	decoder     parser.Decoder
	logger      log.Logger
	checkClosed bool
}

func defaultOptions() options {
	return options{
		decoder: parser.HexDecoder{},
		logger:  log.NewNoopLogger(),
	}
}

// WithDecoder selects how lines are decoded (see DecoderByName).
// The default decodes the hex color code.
func WithDecoder(d Decoder) Option {
	return func(o *options) {
		if d != nil {
			o.decoder = d
		}
	}
}

// WithLogger sets a logger for debug output.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClosureCheck makes Solve fail with ErrOpenPath when the traced path
// does not return to the origin. Off by default.
func WithClosureCheck(enabled bool) Option {
	return func(o *options) {
		o.checkClosed = enabled
	}
}
