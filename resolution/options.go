package resolution

// Options configures a Job (spec.md §4.F). DefaultOptions resolves the
// spec's open question about IncludeHits: the source initializes it from
// the wrong constant (a bug), and the intended default is true.
type Options struct {
	IncludeAttributes bool
	IncludeHits       bool
	IncludeQueries    bool
	IncludeSource     bool
	MaxDocsPerQuery   int64
	MaxHops           int64
	Pretty            bool
	Profile           bool
}

// DefaultOptions returns the defaults listed in spec.md §4.F.
func DefaultOptions() Options {
	return Options{
		IncludeAttributes: true,
		IncludeHits:       true,
		IncludeQueries:    false,
		IncludeSource:     true,
		MaxDocsPerQuery:   1000,
		MaxHops:           100,
		Pretty:            false,
		Profile:           false,
	}
}
