package ipinfo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const googleDNSPayload = `{
	"ip": "8.8.8.8",
	"hostname": "dns.google",
	"anycast": true,
	"city": "Mountain View",
	"region": "California",
	"country": "US",
	"loc": "37.4056,-122.0775",
	"org": "AS15169 Google LLC",
	"postal": "94043",
	"timezone": "America/Los_Angeles"
}`

func newTestClient(t *testing.T, server *httptest.Server, cfg *Config) *Client {
	t.Helper()
	c := NewClient("test-token", cfg)
	c.coreURL = server.URL
	c.apiURL = server.URL
	return c
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestGetDetails(t *testing.T) {
	t.Helper()
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/8.8.8.8" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected authorization header %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "IPinfoClient/Go/"+clientVersion {
			t.Errorf("unexpected user agent %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("unexpected accept header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(googleDNSPayload))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server, nil)
	d, err := c.GetDetails(testContext(t), "8.8.8.8")
	if err != nil {
		t.Fatalf("get details: %v", err)
	}
	if d.IP != "8.8.8.8" || d.Hostname != "dns.google" || !d.Anycast {
		t.Fatalf("unexpected details: %+v", d)
	}
	if d.CountryName != "United States" || d.Continent == nil || d.Continent.Code != "NA" {
		t.Fatalf("missing enrichment: %+v", d)
	}
	if d.Latitude != "37.4056" || d.Longitude != "-122.0775" {
		t.Fatalf("unexpected coordinates: %q %q", d.Latitude, d.Longitude)
	}

	again, err := c.GetDetails(testContext(t), "8.8.8.8")
	if err != nil {
		t.Fatalf("cached get details: %v", err)
	}
	if again.CountryName != "United States" {
		t.Fatalf("cached details lost enrichment: %+v", again)
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("expected 1 remote call, got %d", n)
	}

	snap := c.Stats()
	if snap.Requests != 1 || snap.CacheMisses != 1 || snap.CacheHits != 1 {
		t.Fatalf("unexpected stats: %+v", snap)
	}
}

func TestGetDetailsCanonicalizesTarget(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/2001:4860:4860::8888" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"ip": "2001:4860:4860::8888", "country": "US"}`))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server, nil)
	if _, err := c.GetDetails(testContext(t), "2001:4860:4860:0:0:0:0:8888"); err != nil {
		t.Fatalf("get details: %v", err)
	}
	// The expanded spelling hits the same cache entry.
	if _, err := c.GetDetails(testContext(t), "2001:4860:4860::8888"); err != nil {
		t.Fatalf("canonical get details: %v", err)
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("expected 1 remote call, got %d", n)
	}
}

func TestGetDetailsBogon(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected remote call for %s", r.URL.Path)
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server, nil)
	d, err := c.GetDetails(testContext(t), "10.1.2.3")
	if err != nil {
		t.Fatalf("get details: %v", err)
	}
	if !d.Bogon || d.IP != "10.1.2.3" {
		t.Fatalf("expected bogon record, got %+v", d)
	}
	if d.CountryName != "" {
		t.Fatalf("bogon record should stay minimal: %+v", d)
	}
	snap := c.Stats()
	if snap.Bogons != 1 || snap.Requests != 0 || snap.CacheMisses != 0 {
		t.Fatalf("unexpected stats: %+v", snap)
	}
}

func TestGetDetailsSelf(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"ip": "1.2.3.4", "country": "GB"}`))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server, nil)
	d, err := c.GetDetails(testContext(t), "")
	if err != nil {
		t.Fatalf("self lookup: %v", err)
	}
	if d.IP != "1.2.3.4" || d.CountryName != "United Kingdom" {
		t.Fatalf("unexpected details: %+v", d)
	}

	// Self lookups are never cached; the answer depends on the caller.
	if _, err := c.GetDetails(testContext(t), ""); err != nil {
		t.Fatalf("second self lookup: %v", err)
	}
	if n := calls.Load(); n != 2 {
		t.Fatalf("expected 2 remote calls, got %d", n)
	}
}

func TestGetDetailsInvalidTarget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected remote call for %s", r.URL.Path)
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server, nil)
	_, err := c.GetDetails(testContext(t), "dns.google")
	var invalid *InvalidTargetError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTargetError, got %v", err)
	}
	if invalid.Target != "dns.google" {
		t.Fatalf("unexpected target in error: %+v", invalid)
	}
}

func TestGetField(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/8.8.8.8/country" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte("US\n"))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server, nil)
	got, err := c.GetField(testContext(t), "8.8.8.8", "country")
	if err != nil {
		t.Fatalf("get field: %v", err)
	}
	if got != "US" {
		t.Fatalf("expected US, got %q", got)
	}

	// Field lookups are not cached.
	if _, err := c.GetField(testContext(t), "8.8.8.8", "country"); err != nil {
		t.Fatalf("second get field: %v", err)
	}
	if n := calls.Load(); n != 2 {
		t.Fatalf("expected 2 remote calls, got %d", n)
	}

	if _, err := c.GetField(testContext(t), "8.8.8.8", ""); err == nil {
		t.Fatalf("expected error for empty field")
	}
}

func TestQuotaExceeded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server, nil)
	_, err := c.GetDetails(testContext(t), "8.8.8.8")
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if snap := c.Stats(); snap.Failures != 1 {
		t.Fatalf("unexpected stats: %+v", snap)
	}
}

func TestAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": "token not authorized"}`))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server, nil)
	_, err := c.GetDetails(testContext(t), "8.8.8.8")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if !apiErr.AuthFailure() || apiErr.StatusCode != http.StatusForbidden {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}

	// A rejected token never disables local resolution.
	d, err := c.GetDetails(testContext(t), "127.0.0.1")
	if err != nil || !d.Bogon {
		t.Fatalf("bogon lookup after auth failure: %v %+v", err, d)
	}
}

func TestCustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Custom"); got != "yes" {
			t.Errorf("custom header missing, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("custom headers must not displace the token, got %q", got)
		}
		_, _ = w.Write([]byte(`{"ip": "8.8.8.8"}`))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server, &Config{
		Headers: map[string]string{
			"X-Custom":      "yes",
			"Authorization": "Bearer stale-token",
		},
	})
	if _, err := c.GetDetails(testContext(t), "8.8.8.8"); err != nil {
		t.Fatalf("get details: %v", err)
	}
}

func TestNoCache(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"ip": "8.8.8.8", "country": "US"}`))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server, &Config{NoCache: true})
	for i := 0; i < 2; i++ {
		if _, err := c.GetDetails(testContext(t), "8.8.8.8"); err != nil {
			t.Fatalf("get details: %v", err)
		}
	}
	if n := calls.Load(); n != 2 {
		t.Fatalf("expected 2 remote calls without a cache, got %d", n)
	}
}
