package ipinfo

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrQuotaExceeded is returned when the API reports that the
	// account's request quota is spent.
	ErrQuotaExceeded = errors.New("ipinfo: request quota exceeded")

	// ErrTotalTimeout is returned when a batch lookup's overall
	// deadline expires before every chunk completes.
	ErrTotalTimeout = errors.New("ipinfo: batch total timeout exceeded")

	errNoBatchResponse = errors.New("ipinfo: target missing from batch response")
)

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("ipinfo: api status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("ipinfo: api status %d", e.StatusCode)
}

// AuthFailure reports whether the API rejected the token (missing,
// malformed, or not entitled to the requested data).
func (e *APIError) AuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// InvalidTargetError flags a lookup target the client refused to send
// to the API.
type InvalidTargetError struct {
	Target string
	Reason string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("ipinfo: invalid target %q: %s", e.Target, e.Reason)
}

// BatchError aggregates per-target failures when a fail-fast batch
// aborts. Errs is keyed by the target as the caller spelled it.
type BatchError struct {
	Errs map[string]error
}

func (e *BatchError) Error() string {
	if len(e.Errs) == 1 {
		for target, err := range e.Errs {
			return fmt.Sprintf("ipinfo: batch failed for %q: %v", target, err)
		}
	}
	return fmt.Sprintf("ipinfo: batch failed for %d targets", len(e.Errs))
}

// Unwrap exposes the distinct underlying errors so errors.Is sees
// through the aggregate.
func (e *BatchError) Unwrap() []error {
	seen := make(map[error]bool, len(e.Errs))
	errs := make([]error, 0, len(e.Errs))
	for _, err := range e.Errs {
		if !seen[err] {
			seen[err] = true
			errs = append(errs, err)
		}
	}
	return errs
}
