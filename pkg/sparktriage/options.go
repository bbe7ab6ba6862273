package sparktriage

type options struct {
	catalogPath string
	chunkSize   int
	tokenLimit  int
	searchTerm  string
}

// Option configures an Analyzer.
type Option func(*options)

// WithCatalogFile replaces the built-in error catalog with one loaded from
// a YAML file.
func WithCatalogFile(path string) Option {
	return func(o *options) {
		o.catalogPath = path
	}
}

// WithChunkSize sets the chunking granularity in characters. Every 100
// characters of chunk size maps to one line per chunk. Default: 10000.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithTokenLimit sets the output token budget. Default: 100000.
func WithTokenLimit(n int) Option {
	return func(o *options) {
		o.tokenLimit = n
	}
}

// WithSearchTerm sets a default literal term boosted during scoring.
func WithSearchTerm(term string) Option {
	return func(o *options) {
		o.searchTerm = term
	}
}
