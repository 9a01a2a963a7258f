package btree

// Options configures tree behavior that is not part of its shape.
type Options struct {
	logger Logger
}

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		logger: DiscardLogger{},
	}
}

// Option configures tree options using the functional options pattern.
type Option func(*Options)

// WithLogger routes the tree's informational messages (deletes on an empty
// tree, deletes of absent keys, value replacements) to logger.
// A nil logger restores the default no-op logger.
func WithLogger(logger Logger) Option {
	return func(opts *Options) {
		if logger == nil {
			logger = DiscardLogger{}
		}
		opts.logger = logger
	}
}
