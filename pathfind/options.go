package pathfind

import "github.com/katalvlaran/polyanya/geom"

// defaultQueueCapacity and defaultBufferCapacity pre-size the search queue
// and the per-node successor buffer to the scale typical of a single query
// over a modestly sized mesh. Both are only capacity hints; both grow past
// them without error.
const (
	defaultQueueCapacity  = 15
	defaultBufferCapacity = 10
)

// Options configures a Query call. Use Option functions to override
// individual fields; the zero value of Options is never used directly.
type Options struct {
	QueueCapacity  int
	BufferCapacity int
	Observer       Observer

	// RootDiscretisation is the factor root coordinates are scaled by,
	// then truncated, before root-history dominance lookups. Coarser
	// (smaller) values coalesce more near-duplicate roots; finer (larger)
	// values admit more near-duplicates into the frontier. Defaults to
	// geom.RootDiscretisation.
	RootDiscretisation float64
}

// DefaultOptions returns the Options a Query call uses when no Option
// arguments are given.
func DefaultOptions() Options {
	return Options{
		QueueCapacity:      defaultQueueCapacity,
		BufferCapacity:     defaultBufferCapacity,
		Observer:           nopObserver{},
		RootDiscretisation: geom.RootDiscretisation,
	}
}

// Option configures an Options value.
type Option func(*Options)

// WithQueueCapacity overrides the initial search-queue capacity.
func WithQueueCapacity(n int) Option {
	return func(o *Options) { o.QueueCapacity = n }
}

// WithBufferCapacity overrides the initial per-node successor-buffer
// capacity.
func WithBufferCapacity(n int) Option {
	return func(o *Options) { o.BufferCapacity = n }
}

// WithObserver attaches an Observer notified of queue pushes, pops, and
// prunes as the search runs. The default Query call uses a no-op Observer.
func WithObserver(o Observer) Option {
	return func(opts *Options) { opts.Observer = o }
}

// WithRootDiscretisation overrides the default root-history discretisation
// factor (geom.RootDiscretisation). spec.md §9 notes implementations MAY
// choose a different granularity provided the "within 1/factor of an
// already-better root is pruned" property holds.
func WithRootDiscretisation(factor float64) Option {
	return func(o *Options) { o.RootDiscretisation = factor }
}
