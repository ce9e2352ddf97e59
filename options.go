package objstore

import "log/slog"

type options[T any] struct {
	ordering Ordering
	compare  CompareFunc[T]
	synth    SynthFunc[T]
	capInc   int
	sep      string
	digits   int
	decimals int
	logger   *Logger
	metrics  MetricsCollector
}

// Option configures Store construction.
//
// Options exist to avoid exploding the constructor surface; everything they
// set can also be changed later through the corresponding Set* methods.
type Option[T any] func(*options[T])

// WithOrdering sets the identifier ordering discipline. The default is
// Unordered, which keeps entries in insertion order.
func WithOrdering[T any](o Ordering) Option[T] {
	return func(opts *options[T]) {
		opts.ordering = o
	}
}

// WithCompareFunc orders entries by value content instead of by identifier.
// Ties are broken by identifier comparison. Setting a compare function also
// enables value-based lookups (GetByValue, IDByValue, DeleteByValue).
func WithCompareFunc[T any](cmp CompareFunc[T]) Option[T] {
	return func(opts *options[T]) {
		opts.compare = cmp
	}
}

// WithSynthFunc sets the function deriving identifiers from value content
// for AddValue. Without one, identifiers come from an internal counter.
func WithSynthFunc[T any](fn SynthFunc[T]) Option[T] {
	return func(opts *options[T]) {
		opts.synth = fn
	}
}

// WithCapacityIncrement sets the chunk size by which backing storage grows
// on overflow. Larger increments trade memory for fewer reallocations under
// bursts of insertions. Values of 1 or less are ignored.
func WithCapacityIncrement[T any](n int) Option[T] {
	return func(opts *options[T]) {
		if n > 1 {
			opts.capInc = n
		}
	}
}

// WithIDFormat sets the formatting parameters for synthesized identifiers:
// the separator between parts, the fixed digit width of numeric parts and
// the precision of floating-point parts. Empty or non-positive parameters
// are ignored individually, keeping their defaults.
func WithIDFormat[T any](sep string, digits, decimals int) Option[T] {
	return func(opts *options[T]) {
		if sep != "" {
			opts.sep = sep
		}
		if digits > 0 {
			opts.digits = digits
		}
		if decimals > 0 {
			opts.decimals = decimals
		}
	}
}

// WithLogger configures structured logging for store operations. Pass nil to
// keep logging disabled.
func WithLogger[T any](logger *Logger) Option[T] {
	return func(opts *options[T]) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel[T any](level slog.Level) Option[T] {
	return func(opts *options[T]) {
		opts.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for store operations.
// Pass nil to keep metrics collection disabled.
func WithMetricsCollector[T any](mc MetricsCollector) Option[T] {
	return func(opts *options[T]) {
		if mc != nil {
			opts.metrics = mc
		}
	}
}

func applyOptions[T any](optFns []Option[T]) options[T] {
	opts := options[T]{
		ordering: Unordered,
		capInc:   DefaultCapacityIncrement,
		sep:      DefaultIDSeparator,
		digits:   DefaultIDDigits,
		decimals: DefaultIDDecimals,
		logger:   NoopLogger(),
		metrics:  NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}
	return opts
}
