package ipinfo

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"ipinfo/cache"
	"ipinfo/internal/stats"
	"ipinfo/refdata"
)

// Client talks to the IPinfo API. It is safe for concurrent use; all
// lookups share one cache and one set of reference tables.
type Client struct {
	token      string
	httpClient *http.Client
	cache      cache.Cache
	headers    map[string]string
	timeout    time.Duration
	tables     *refdata.Tables
	stats      stats.Counters

	// Endpoint bases, split out so tests can point at a local server.
	coreURL string
	apiURL  string
}

// NewClient builds a Client with the given API token. An empty token
// restricts lookups to the unauthenticated free tier. cfg may be nil.
func NewClient(token string, cfg *Config) *Client {
	ncfg := normalizeConfig(cfg)
	c := &Client{
		token:      token,
		httpClient: ncfg.HTTPClient,
		headers:    ncfg.Headers,
		timeout:    ncfg.RequestTimeout,
		tables:     refdata.Resolve(ncfg.Tables),
		coreURL:    defaultCoreURL,
		apiURL:     defaultAPIURL,
	}
	switch {
	case ncfg.NoCache:
	case ncfg.Cache != nil:
		c.cache = ncfg.Cache
	default:
		c.cache = cache.NewMemory(ncfg.CacheMaxEntries, ncfg.CacheTTL)
	}
	return c
}

// GetDetails resolves the details for one IP address. An empty ip looks
// up the caller's own address; that result is never cached since it is
// not keyed to a stable target. Bogon addresses are answered locally
// without an API call and never cached either.
func (c *Client) GetDetails(ctx context.Context, ip string) (*Details, error) {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		var d Details
		reqCtx, cancel := withTimeout(ctx, c.timeout)
		defer cancel()
		if err := c.get(reqCtx, c.coreURL+"/json", &d); err != nil {
			return nil, err
		}
		enrichDetails(&d, c.tables)
		return &d, nil
	}

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return nil, &InvalidTargetError{Target: ip, Reason: "not an IP address"}
	}
	target := addr.String()
	if isBogonAddr(addr) {
		c.stats.Bogon()
		return &Details{IP: target, Bogon: true}, nil
	}

	key := CacheKey(target)
	var d Details
	if c.cacheLoad(ctx, key, &d) {
		return &d, nil
	}

	reqCtx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	if err := c.get(reqCtx, c.coreURL+"/"+target, &d); err != nil {
		return nil, err
	}
	enrichDetails(&d, c.tables)
	if !d.Bogon {
		c.cacheStore(ctx, key, &d)
	}
	return &d, nil
}

// GetField fetches one top-level field for an IP, e.g. "country" or
// "org", and returns the raw field text. An empty ip reads the field
// for the caller's own address. Field lookups bypass the cache.
func (c *Client) GetField(ctx context.Context, ip, field string) (string, error) {
	field = strings.Trim(strings.TrimSpace(field), "/")
	if field == "" {
		return "", &InvalidTargetError{Target: field, Reason: "empty field"}
	}
	url := c.coreURL + "/" + field
	if ip = strings.TrimSpace(ip); ip != "" {
		addr, err := netip.ParseAddr(ip)
		if err != nil {
			return "", &InvalidTargetError{Target: ip, Reason: "not an IP address"}
		}
		url = c.coreURL + "/" + addr.String() + "/" + field
	}
	reqCtx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	return c.getText(reqCtx, url)
}

// Stats reports cumulative lookup counters for this client.
func (c *Client) Stats() stats.Snapshot {
	return c.stats.Snapshot()
}

// cacheLoad fetches and decodes a cached response into out, reporting
// whether it was a usable hit. Cache failures degrade to misses.
func (c *Client) cacheLoad(ctx context.Context, key string, out any) bool {
	if c.cache == nil {
		return false
	}
	data, err := c.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrNotFound) {
			log.Printf("Warning: cache get %s: %v", key, err)
		}
		c.stats.CacheMiss()
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("Warning: cache entry %s does not decode: %v", key, err)
		c.stats.CacheMiss()
		return false
	}
	c.stats.CacheHit()
	return true
}

// cacheStore serializes v into the cache under key. Failures are
// logged and otherwise ignored.
func (c *Client) cacheStore(ctx context.Context, key string, v any) {
	if c.cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: cache encode %s: %v", key, err)
		return
	}
	c.cacheStoreRaw(ctx, key, data)
}

// cacheStoreRaw stores already-serialized bytes under key.
func (c *Client) cacheStoreRaw(ctx context.Context, key string, data []byte) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, data, 0); err != nil {
		log.Printf("Warning: cache set %s: %v", key, err)
	}
}
