package dynarray

import "go.uber.org/zap"

// Option configures an Array at Alloc time.
type Option func(*options)

type options struct {
	allocator Allocator
	logger    *zap.Logger
	zeroFill  bool
}

func defaultOptions() *options {
	return &options{
		allocator: DefaultAllocator,
		logger:    zap.NewNop(),
		zeroFill:  true,
	}
}

// WithAllocator sets the allocator captured for the lifetime of the array.
// A nil allocator keeps the default.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.allocator = a
		}
	}
}

// WithLogger sets the logger used for allocation events. A nil logger keeps
// the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithoutZeroFill makes Resize leave newly exposed bytes as the allocator
// returned them instead of zeroing them.
func WithoutZeroFill() Option {
	return func(o *options) {
		o.zeroFill = false
	}
}
