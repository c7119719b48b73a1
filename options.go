package ipinfo

import (
	"net/http"
	"time"

	"ipinfo/cache"
	"ipinfo/refdata"
)

const (
	// DefaultRequestTimeout bounds each single-target API call.
	DefaultRequestTimeout = 2 * time.Second

	// DefaultBatchTimeout bounds each batch chunk request.
	DefaultBatchTimeout = 5 * time.Second

	// DefaultCacheTTL and DefaultCacheMaxEntries size the in-memory
	// cache a Client builds when none is supplied.
	DefaultCacheTTL        = 24 * time.Hour
	DefaultCacheMaxEntries = 4096

	// BatchMaxSize is the most targets the batch endpoint accepts in
	// one request; larger chunk sizes are clamped to it.
	BatchMaxSize = 1000
)

// Config adjusts a Client. The zero value works: a nil config gets the
// default HTTP transport, a process-local in-memory cache, the built-in
// reference tables, and the standard timeouts.
type Config struct {
	// HTTPClient overrides the transport used for API calls.
	HTTPClient *http.Client

	// Cache replaces the response cache; NoCache disables caching
	// entirely, including the default cache.
	Cache   cache.Cache
	NoCache bool

	// CacheTTL and CacheMaxEntries size the default in-memory cache.
	// Both are ignored when Cache is set.
	CacheTTL        time.Duration
	CacheMaxEntries int

	// RequestTimeout bounds each single-target API call.
	RequestTimeout time.Duration

	// Tables overrides the country reference tables. Tables left nil
	// inside fall back to the built-in ones.
	Tables *refdata.Tables

	// Headers adds HTTP headers to every request. Authorization and
	// Content-Type cannot be overridden.
	Headers map[string]string
}

func normalizeConfig(cfg *Config) Config {
	out := Config{}
	if cfg != nil {
		out = *cfg
	}
	if out.HTTPClient == nil {
		out.HTTPClient = &http.Client{}
	}
	if out.RequestTimeout <= 0 {
		out.RequestTimeout = DefaultRequestTimeout
	}
	if out.CacheTTL <= 0 {
		out.CacheTTL = DefaultCacheTTL
	}
	if out.CacheMaxEntries <= 0 {
		out.CacheMaxEntries = DefaultCacheMaxEntries
	}
	return out
}

// BatchOptions tunes one batch lookup. The zero value chunks at the API
// maximum, dispatches every chunk at once, and records per-target
// failures instead of aborting.
type BatchOptions struct {
	// BatchSize caps targets per API request, clamped to BatchMaxSize.
	BatchSize int

	// TimeoutPerBatch bounds each chunk request.
	TimeoutPerBatch time.Duration

	// TimeoutTotal bounds the whole operation across all chunks. Zero
	// means no overall deadline.
	TimeoutTotal time.Duration

	// Concurrency caps in-flight chunk requests. Zero dispatches all
	// chunks at once; one degrades to sequential dispatch.
	Concurrency int

	// FailFast aborts the whole batch on the first chunk failure
	// instead of marking the chunk's targets failed and moving on.
	FailFast bool
}

func normalizeBatchOptions(opts *BatchOptions) BatchOptions {
	out := BatchOptions{}
	if opts != nil {
		out = *opts
	}
	if out.BatchSize <= 0 || out.BatchSize > BatchMaxSize {
		out.BatchSize = BatchMaxSize
	}
	if out.TimeoutPerBatch <= 0 {
		out.TimeoutPerBatch = DefaultBatchTimeout
	}
	if out.TimeoutTotal < 0 {
		out.TimeoutTotal = 0
	}
	if out.Concurrency < 0 {
		out.Concurrency = 0
	}
	return out
}
