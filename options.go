package vecframe

import (
	"github.com/hupe1980/vecframe/index"
	"github.com/hupe1980/vecframe/store"
)

type options struct {
	index     *index.Index
	labels    []Label
	hasLabels bool
	name      Label
	storeKind store.Kind
	columns   []Label
	logger    *Logger
	metrics   MetricsCollector
}

// Option configures Vector and DataFrame constructors.
//
// Options that do not apply to a constructor are ignored: WithColumns has no
// effect on NewVector, and WithStore applies to every column of a DataFrame.
type Option func(*options)

func applyOptions(opts []Option) *options {
	o := &options{storeKind: store.KindPlain}
	for _, fn := range opts {
		fn(o)
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}
	return o
}

// WithIndex sets the (row) index.
func WithIndex(idx *index.Index) Option {
	return func(o *options) {
		o.index = idx
	}
}

// WithLabels sets the (row) index from labels. Duplicate labels fail the
// constructor with ErrDuplicateLabel.
func WithLabels(labels ...Label) Option {
	return func(o *options) {
		o.labels = labels
		o.hasLabels = true
	}
}

// WithName sets the optional identifier. The default is unset (nil).
func WithName(name Label) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithStore sets the backing store kind. The default is store.KindPlain.
func WithStore(kind store.Kind) Option {
	return func(o *options) {
		o.storeKind = kind
	}
}

// WithColumns sets the leading column order of a DataFrame.
func WithColumns(names ...Label) Option {
	return func(o *options) {
		o.columns = names
	}
}

// WithLogger configures structured logging. The default discards output.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics configures a metrics collector. The default records nothing.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// rowIndex returns the explicitly configured index, or nil.
func (o *options) rowIndex() (*index.Index, error) {
	if o.index != nil {
		return o.index, nil
	}
	if o.hasLabels {
		return index.FromLabels(o.labels)
	}
	return nil, nil
}
