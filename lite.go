package ipinfo

import (
	"context"
	"net/netip"
	"strings"
)

// GetLiteDetails resolves country and AS data for an IP from the Lite
// API. An empty ip looks up the caller's own address. Lite responses
// are cached independently of core ones.
func (c *Client) GetLiteDetails(ctx context.Context, ip string) (*LiteDetails, error) {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		var d LiteDetails
		reqCtx, cancel := withTimeout(ctx, c.timeout)
		defer cancel()
		if err := c.get(reqCtx, c.apiURL+"/lite/me", &d); err != nil {
			return nil, err
		}
		enrichLiteDetails(&d, c.tables)
		return &d, nil
	}

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return nil, &InvalidTargetError{Target: ip, Reason: "not an IP address"}
	}
	target := addr.String()
	if isBogonAddr(addr) {
		c.stats.Bogon()
		return &LiteDetails{IP: target, Bogon: true}, nil
	}

	key := CacheKey("lite/" + target)
	var d LiteDetails
	if c.cacheLoad(ctx, key, &d) {
		return &d, nil
	}

	reqCtx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	if err := c.get(reqCtx, c.apiURL+"/lite/"+target, &d); err != nil {
		return nil, err
	}
	enrichLiteDetails(&d, c.tables)
	if !d.Bogon {
		c.cacheStore(ctx, key, &d)
	}
	return &d, nil
}
