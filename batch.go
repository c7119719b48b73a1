package ipinfo

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/errgroup"
)

// BatchItem is the outcome for one batch target. Exactly one field is
// set: Details for IP targets, Value for everything else (AS numbers,
// field paths, Plus and resproxy lookups), or Err for targets that
// could not be resolved.
type BatchItem struct {
	Details *Details
	Value   any
	Err     error
}

// Batch maps each requested target, spelled the way the caller wrote
// it, to its outcome.
type Batch map[string]BatchItem

// batchOp adapts the shared batch pipeline to one endpoint flavor.
type batchOp struct {
	// classify validates one caller-spelled target and returns the
	// canonical string sent to the API.
	classify func(raw string) (string, error)
	// local answers a target without the API (bogons, cache hits),
	// or nil to send it.
	local func(ctx context.Context, send string) *BatchItem
	// absorb turns one response entry into a result item, caching it
	// when the flavor allows.
	absorb func(ctx context.Context, send string, raw jsoniter.RawMessage) BatchItem
}

// GetBatch resolves many targets in one call. Targets may be IP
// addresses, AS numbers ("AS13335"), or IP/field paths
// ("8.8.8.8/country"). Duplicate spellings collapse onto a single
// lookup, bogons and cache hits are answered locally, and the rest go
// to the batch endpoint in concurrent chunks. Every requested spelling
// is a key in the result.
//
// A failed chunk marks its targets with Err while the call itself
// still succeeds, unless FailFast is set, in which case the first
// chunk failure cancels the rest and the call returns a *BatchError.
func (c *Client) GetBatch(ctx context.Context, targets []string, opts *BatchOptions) (Batch, error) {
	return c.runBatch(ctx, targets, normalizeBatchOptions(opts), batchOp{
		classify: func(raw string) (string, error) {
			send, _, err := classifyTarget(raw)
			return send, err
		},
		local:  c.localCoreItem,
		absorb: c.absorbCoreItem,
	})
}

// runBatch is the pipeline behind every batch flavor: dedupe, local
// resolution, chunking, bounded concurrent dispatch, and merge.
func (c *Client) runBatch(ctx context.Context, targets []string, opts BatchOptions, op batchOp) (Batch, error) {
	c.stats.Batch()
	result := make(Batch, len(targets))

	// Collapse duplicate spellings onto one outbound target each,
	// keeping first-seen order for dispatch.
	order := make([]string, 0, len(targets))
	groups := make(map[string][]string, len(targets))
	seen := make(map[string]bool, len(targets))
	for _, raw := range targets {
		if seen[raw] {
			continue
		}
		seen[raw] = true
		send, err := op.classify(raw)
		if err != nil {
			result[raw] = BatchItem{Err: err}
			continue
		}
		if _, ok := groups[send]; !ok {
			order = append(order, send)
		}
		groups[send] = append(groups[send], raw)
	}

	batchCtx := ctx
	if opts.TimeoutTotal > 0 {
		var cancel context.CancelFunc
		batchCtx, cancel = context.WithTimeout(ctx, opts.TimeoutTotal)
		defer cancel()
	}

	// Resolve what we can without the API.
	pending := make([]string, 0, len(order))
	for _, send := range order {
		if item := op.local(batchCtx, send); item != nil {
			for _, raw := range groups[send] {
				result[raw] = *item
			}
			continue
		}
		pending = append(pending, send)
	}
	if len(pending) == 0 {
		return result, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(batchCtx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for _, chunk := range chunkTargets(pending, opts.BatchSize) {
		g.Go(func() error {
			payload, err := c.postBatchChunk(gctx, chunk, opts.TimeoutPerBatch)
			if err != nil {
				err = batchChunkError(err, batchCtx, ctx, opts)
				mu.Lock()
				for _, send := range chunk {
					for _, raw := range groups[send] {
						result[raw] = BatchItem{Err: err}
					}
				}
				mu.Unlock()
				if opts.FailFast {
					return err
				}
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			for _, send := range chunk {
				entry, ok := payload[send]
				if !ok {
					for _, raw := range groups[send] {
						result[raw] = BatchItem{Err: errNoBatchResponse}
					}
					continue
				}
				item := op.absorb(ctx, send, entry)
				for _, raw := range groups[send] {
					result[raw] = item
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		errs := make(map[string]error)
		for raw, item := range result {
			if item.Err != nil {
				errs[raw] = item.Err
			}
		}
		return nil, &BatchError{Errs: errs}
	}
	return result, nil
}

// postBatchChunk sends one chunk of targets to the batch endpoint and
// returns the response entries keyed by target.
func (c *Client) postBatchChunk(ctx context.Context, chunk []string, timeout time.Duration) (map[string]jsoniter.RawMessage, error) {
	reqCtx, cancel := withTimeout(ctx, timeout)
	defer cancel()
	payload := make(map[string]jsoniter.RawMessage, len(chunk))
	if err := c.post(reqCtx, c.apiURL+"/batch", chunk, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// batchChunkError maps context expiry onto the batch sentinels: the
// overall deadline becomes ErrTotalTimeout unless the caller's own
// context expired first.
func batchChunkError(err error, batchCtx, parent context.Context, opts BatchOptions) error {
	if opts.TimeoutTotal > 0 && errors.Is(err, context.DeadlineExceeded) &&
		errors.Is(batchCtx.Err(), context.DeadlineExceeded) && parent.Err() == nil {
		return ErrTotalTimeout
	}
	return err
}

// chunkTargets splits targets into slices of at most size.
func chunkTargets(targets []string, size int) [][]string {
	chunks := make([][]string, 0, (len(targets)+size-1)/size)
	for start := 0; start < len(targets); start += size {
		end := min(start+size, len(targets))
		chunks = append(chunks, targets[start:end])
	}
	return chunks
}

// targetKind classifies what a canonical batch target refers to.
type targetKind int

const (
	kindIP targetKind = iota
	kindASN
	kindField
)

// classifyTarget canonicalizes a core batch target: an IP address, an
// AS number, or an IP/field path.
func classifyTarget(raw string) (string, targetKind, error) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return "", 0, &InvalidTargetError{Target: raw, Reason: "empty target"}
	}
	if asn, ok := parseASN(t); ok {
		return asn, kindASN, nil
	}
	if ipPart, field, ok := strings.Cut(t, "/"); ok {
		addr, err := netip.ParseAddr(strings.TrimSpace(ipPart))
		if err != nil {
			return "", 0, &InvalidTargetError{Target: raw, Reason: "field path without an IP address"}
		}
		field = strings.TrimSpace(field)
		if field == "" {
			return "", 0, &InvalidTargetError{Target: raw, Reason: "empty field path"}
		}
		return addr.String() + "/" + field, kindField, nil
	}
	addr, err := netip.ParseAddr(t)
	if err != nil {
		return "", 0, &InvalidTargetError{Target: raw, Reason: "not an IP address, AS number, or IP/field path"}
	}
	return addr.String(), kindIP, nil
}

// parseASN normalizes an AS number like "as13335" to "AS13335".
func parseASN(t string) (string, bool) {
	if len(t) < 3 || !strings.EqualFold(t[:2], "AS") {
		return "", false
	}
	digits := t[2:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", false
		}
	}
	return "AS" + digits, true
}

// kindOf recovers the kind of a canonical target. AS numbers start
// with "AS" (never a valid IP), and only field paths contain a slash.
func kindOf(send string) targetKind {
	if strings.HasPrefix(send, "AS") {
		return kindASN
	}
	if strings.Contains(send, "/") {
		return kindField
	}
	return kindIP
}

// localCoreItem short-circuits bogon addresses and cache hits.
func (c *Client) localCoreItem(ctx context.Context, send string) *BatchItem {
	switch kindOf(send) {
	case kindIP:
		if addr, err := netip.ParseAddr(send); err == nil && isBogonAddr(addr) {
			c.stats.Bogon()
			return &BatchItem{Details: &Details{IP: send, Bogon: true}}
		}
		var d Details
		if c.cacheLoad(ctx, CacheKey(send), &d) {
			return &BatchItem{Details: &d}
		}
	case kindASN:
		var v any
		if c.cacheLoad(ctx, CacheKey(send), &v) {
			return &BatchItem{Value: v}
		}
	}
	return nil
}

// absorbCoreItem decodes one batch response entry, enriching and
// caching it according to its kind. Field paths are never cached.
func (c *Client) absorbCoreItem(ctx context.Context, send string, raw jsoniter.RawMessage) BatchItem {
	switch kindOf(send) {
	case kindIP:
		var d Details
		if err := json.Unmarshal(raw, &d); err != nil {
			return BatchItem{Err: fmt.Errorf("ipinfo: decode response for %q: %w", send, err)}
		}
		enrichDetails(&d, c.tables)
		if !d.Bogon {
			c.cacheStore(ctx, CacheKey(send), &d)
		}
		return BatchItem{Details: &d}
	case kindASN:
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return BatchItem{Err: fmt.Errorf("ipinfo: decode response for %q: %w", send, err)}
		}
		c.cacheStoreRaw(ctx, CacheKey(send), raw)
		return BatchItem{Value: v}
	default:
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return BatchItem{Err: fmt.Errorf("ipinfo: decode response for %q: %w", send, err)}
		}
		return BatchItem{Value: v}
	}
}
