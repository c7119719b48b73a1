package ipinfo

import (
	"context"
	"fmt"
	"net/netip"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// GetPlusDetails resolves the Plus API response for an IP. An empty ip
// looks up the caller's own address. Plus responses are cached
// independently of core ones.
func (c *Client) GetPlusDetails(ctx context.Context, ip string) (*PlusDetails, error) {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		var d PlusDetails
		reqCtx, cancel := withTimeout(ctx, c.timeout)
		defer cancel()
		if err := c.get(reqCtx, c.apiURL+"/plus/me", &d); err != nil {
			return nil, err
		}
		enrichPlusDetails(&d, c.tables)
		return &d, nil
	}

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return nil, &InvalidTargetError{Target: ip, Reason: "not an IP address"}
	}
	target := addr.String()
	if isBogonAddr(addr) {
		c.stats.Bogon()
		return &PlusDetails{IP: target, Bogon: true}, nil
	}

	key := CacheKey("plus/" + target)
	var d PlusDetails
	if c.cacheLoad(ctx, key, &d) {
		return &d, nil
	}

	reqCtx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	if err := c.get(reqCtx, c.apiURL+"/plus/"+target, &d); err != nil {
		return nil, err
	}
	enrichPlusDetails(&d, c.tables)
	if !d.Bogon {
		c.cacheStore(ctx, key, &d)
	}
	return &d, nil
}

// GetPlusBatch resolves many IPs against the Plus API in one call.
// Each result's Value holds a *PlusDetails. Non-IP targets are
// rejected per target; the batch itself proceeds.
func (c *Client) GetPlusBatch(ctx context.Context, ips []string, opts *BatchOptions) (Batch, error) {
	return c.runBatch(ctx, ips, normalizeBatchOptions(opts), batchOp{
		classify: classifyIPTarget,
		local: func(ctx context.Context, send string) *BatchItem {
			if addr, err := netip.ParseAddr(send); err == nil && isBogonAddr(addr) {
				c.stats.Bogon()
				return &BatchItem{Value: &PlusDetails{IP: send, Bogon: true}}
			}
			var d PlusDetails
			if c.cacheLoad(ctx, CacheKey("plus/"+send), &d) {
				return &BatchItem{Value: &d}
			}
			return nil
		},
		absorb: func(ctx context.Context, send string, raw jsoniter.RawMessage) BatchItem {
			var d PlusDetails
			if err := json.Unmarshal(raw, &d); err != nil {
				return BatchItem{Err: fmt.Errorf("ipinfo: decode response for %q: %w", send, err)}
			}
			enrichPlusDetails(&d, c.tables)
			if !d.Bogon {
				c.cacheStore(ctx, CacheKey("plus/"+send), &d)
			}
			return BatchItem{Value: &d}
		},
	})
}

// classifyIPTarget canonicalizes a target that must be a bare IP.
func classifyIPTarget(raw string) (string, error) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return "", &InvalidTargetError{Target: raw, Reason: "empty target"}
	}
	addr, err := netip.ParseAddr(t)
	if err != nil {
		return "", &InvalidTargetError{Target: raw, Reason: "not an IP address"}
	}
	return addr.String(), nil
}
