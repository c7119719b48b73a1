package ipinfo

import (
	"testing"
	"time"
)

func TestNormalizeBatchOptions(t *testing.T) {
	got := normalizeBatchOptions(nil)
	if got.BatchSize != BatchMaxSize {
		t.Fatalf("expected default batch size %d, got %d", BatchMaxSize, got.BatchSize)
	}
	if got.TimeoutPerBatch != DefaultBatchTimeout {
		t.Fatalf("expected default per-batch timeout, got %v", got.TimeoutPerBatch)
	}
	if got.TimeoutTotal != 0 || got.Concurrency != 0 || got.FailFast {
		t.Fatalf("unexpected defaults: %+v", got)
	}

	in := &BatchOptions{BatchSize: 5000, TimeoutTotal: -time.Second, Concurrency: -3}
	got = normalizeBatchOptions(in)
	if got.BatchSize != BatchMaxSize {
		t.Fatalf("oversized batch size should clamp to %d, got %d", BatchMaxSize, got.BatchSize)
	}
	if got.TimeoutTotal != 0 || got.Concurrency != 0 {
		t.Fatalf("negative options should zero out: %+v", got)
	}
	if in.BatchSize != 5000 {
		t.Fatalf("caller options must not be modified: %+v", in)
	}

	got = normalizeBatchOptions(&BatchOptions{BatchSize: 10, TimeoutPerBatch: time.Second})
	if got.BatchSize != 10 || got.TimeoutPerBatch != time.Second {
		t.Fatalf("explicit options lost: %+v", got)
	}
}

func TestNormalizeConfig(t *testing.T) {
	got := normalizeConfig(nil)
	if got.HTTPClient == nil || got.RequestTimeout != DefaultRequestTimeout {
		t.Fatalf("unexpected defaults: %+v", got)
	}
	if got.CacheTTL != DefaultCacheTTL || got.CacheMaxEntries != DefaultCacheMaxEntries {
		t.Fatalf("unexpected cache defaults: %+v", got)
	}
}
