package navmesh

// LocateOptions configures point-location nudging.
type LocateOptions struct {
	// NudgeDelta is the magnitude of the 3x3 grid of offsets tried around a
	// query point that falls exactly on a shared edge or outside every
	// polygon's interior test. Default 0.1.
	NudgeDelta float64
}

// LocateOption is a functional option configuring LocateOptions.
type LocateOption func(*LocateOptions)

// WithNudgeDelta overrides the default nudge magnitude.
func WithNudgeDelta(delta float64) LocateOption {
	return func(o *LocateOptions) { o.NudgeDelta = delta }
}

// DefaultLocateOptions returns the default nudge configuration.
func DefaultLocateOptions() LocateOptions {
	return LocateOptions{NudgeDelta: 0.1}
}
