package ipinfo

import (
	"context"
	"fmt"
	"net/netip"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// GetResproxy fetches the residential-proxy assessment for an IP. The
// response shape varies by plan, so it is returned undecoded beyond
// JSON. Unlike the other lookups there is no self variant; ip is
// required.
func (c *Client) GetResproxy(ctx context.Context, ip string) (map[string]any, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return nil, &InvalidTargetError{Target: ip, Reason: "not an IP address"}
	}
	target := addr.String()
	if isBogonAddr(addr) {
		c.stats.Bogon()
		return map[string]any{"ip": target, "bogon": true}, nil
	}

	key := CacheKey("resproxy/" + target)
	var v map[string]any
	if c.cacheLoad(ctx, key, &v) {
		return v, nil
	}

	reqCtx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	if err := c.get(reqCtx, c.apiURL+"/resproxy/"+target, &v); err != nil {
		return nil, err
	}
	c.cacheStore(ctx, key, v)
	return v, nil
}

// GetResproxyBatch fetches residential-proxy assessments for many IPs
// in one call. Each result's Value holds a map[string]any.
func (c *Client) GetResproxyBatch(ctx context.Context, ips []string, opts *BatchOptions) (Batch, error) {
	return c.runBatch(ctx, ips, normalizeBatchOptions(opts), batchOp{
		classify: func(raw string) (string, error) {
			send, err := classifyIPTarget(raw)
			if err != nil {
				return "", err
			}
			return "resproxy/" + send, nil
		},
		local: func(ctx context.Context, send string) *BatchItem {
			ip := strings.TrimPrefix(send, "resproxy/")
			if addr, err := netip.ParseAddr(ip); err == nil && isBogonAddr(addr) {
				c.stats.Bogon()
				return &BatchItem{Value: map[string]any{"ip": ip, "bogon": true}}
			}
			var v map[string]any
			if c.cacheLoad(ctx, CacheKey(send), &v) {
				return &BatchItem{Value: v}
			}
			return nil
		},
		absorb: func(ctx context.Context, send string, raw jsoniter.RawMessage) BatchItem {
			var v map[string]any
			if err := json.Unmarshal(raw, &v); err != nil {
				return BatchItem{Err: fmt.Errorf("ipinfo: decode response for %q: %w", send, err)}
			}
			c.cacheStoreRaw(ctx, CacheKey(send), raw)
			return BatchItem{Value: v}
		},
	})
}
