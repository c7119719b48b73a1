package ipinfo

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const cloudflareLitePayload = `{
	"ip": "1.1.1.1",
	"asn": "AS13335",
	"as_name": "Cloudflare, Inc.",
	"as_domain": "cloudflare.com",
	"country_code": "AU",
	"country": "Australia",
	"continent_code": "OC",
	"continent": "Oceania"
}`

func TestGetLiteDetails(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/lite/1.1.1.1" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(cloudflareLitePayload))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server, nil)
	d, err := c.GetLiteDetails(testContext(t), "1.1.1.1")
	if err != nil {
		t.Fatalf("get lite details: %v", err)
	}
	if d.ASN != "AS13335" || d.CountryCode != "AU" || d.ContinentCode != "OC" {
		t.Fatalf("unexpected details: %+v", d)
	}
	if d.CountryName != "Australia" || d.CountryFlag == nil || d.CountryCurrency == nil {
		t.Fatalf("missing enrichment: %+v", d)
	}

	if _, err := c.GetLiteDetails(testContext(t), "1.1.1.1"); err != nil {
		t.Fatalf("cached get lite details: %v", err)
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("expected 1 remote call, got %d", n)
	}
}

func TestGetLiteDetailsSelf(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/lite/me" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"ip": "1.2.3.4", "country_code": "DE"}`))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server, nil)
	d, err := c.GetLiteDetails(testContext(t), "")
	if err != nil {
		t.Fatalf("self lite lookup: %v", err)
	}
	if d.CountryName != "Germany" || !d.IsEU {
		t.Fatalf("unexpected details: %+v", d)
	}
}

func TestGetLiteDetailsBogon(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected remote call for %s", r.URL.Path)
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server, nil)
	d, err := c.GetLiteDetails(testContext(t), "fe80::1")
	if err != nil {
		t.Fatalf("get lite details: %v", err)
	}
	if !d.Bogon || d.IP != "fe80::1" {
		t.Fatalf("expected bogon record, got %+v", d)
	}
}

func TestGetLiteDetailsSeparateCache(t *testing.T) {
	var litePaths, corePaths atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/lite/1.1.1.1":
			litePaths.Add(1)
			_, _ = w.Write([]byte(cloudflareLitePayload))
		case "/1.1.1.1":
			corePaths.Add(1)
			_, _ = w.Write([]byte(`{"ip": "1.1.1.1", "country": "AU"}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server, nil)
	if _, err := c.GetLiteDetails(testContext(t), "1.1.1.1"); err != nil {
		t.Fatalf("get lite details: %v", err)
	}
	if _, err := c.GetDetails(testContext(t), "1.1.1.1"); err != nil {
		t.Fatalf("get details: %v", err)
	}
	if litePaths.Load() != 1 || corePaths.Load() != 1 {
		t.Fatalf("lite and core lookups must not share cache entries: lite=%d core=%d",
			litePaths.Load(), corePaths.Load())
	}
}
