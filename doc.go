// Package ipinfo is a client for the IPinfo address data API. It
// resolves details for single IP addresses, including the caller's own,
// and batches large lookups with deduplication, chunking, and
// concurrent dispatch. Responses are normalized with country reference
// data and cached behind a pluggable cache interface; unroutable
// (bogon) addresses are answered locally without touching the API.
package ipinfo
