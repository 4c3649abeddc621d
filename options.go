package ringqueue

type queueOptions struct {
	alloc   Allocator
	initial []string
}

// Option configures a queue at construction time.
type Option func(*queueOptions)

func defaultOptions() queueOptions {
	return queueOptions{alloc: defaultAllocator}
}

// WithAllocator replaces the allocator the queue provisions elements from.
// A nil allocator keeps the default.
func WithAllocator(a Allocator) Option {
	return func(opts *queueOptions) {
		if a != nil {
			opts.alloc = a
		}
	}
}

// WithInitial seeds the queue with values inserted at the tail in the given
// order.
func WithInitial(values ...string) Option {
	return func(opts *queueOptions) {
		opts.initial = append(opts.initial[:0], values...)
	}
}
