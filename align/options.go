// SPDX-License-Identifier: MIT

package align

import "log/slog"

// DefaultWorkers runs the fill row by row on the calling goroutine.
const DefaultWorkers = 1

const (
	panicWorkersInvalid = "align: WithConcurrency: workers must be >= 0"
	panicLoggerNil      = "align: WithLogger: logger must not be nil"
)

// Option configures one Align call. Constructors panic only on
// nonsensical values (programmer error).
type Option func(*options)

// options is the effective configuration after applying Option setters.
type options struct {
	workers int          // DefaultWorkers
	logger  *slog.Logger // discard by default
}

// WithConcurrency fills the score matrix by anti-diagonals on up to workers
// goroutines. 0 and 1 mean sequential. Results are identical either way.
func WithConcurrency(workers int) Option {
	if workers < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = workers }
}

// WithLogger sets the logger that receives a debug record per alignment.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = logger }
}

// gatherOptions applies opts over the defaults; later options win.
func gatherOptions(opts []Option) options {
	o := options{
		workers: DefaultWorkers,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
