package repo

type Option func(*Repository)

// WithVerboseLogging enables a warning-level diagnostic naming the target
// identifier on every update call (default: disabled).
func WithVerboseLogging(enabled bool) Option {
	return func(r *Repository) {
		r.verbose = enabled
	}
}

// WithIDGenerator overrides the identifier generator used for documents
// created without an _id (default: random version-4 UUIDs).
func WithIDGenerator(gen func() string) Option {
	return func(r *Repository) {
		r.newID = gen
	}
}
