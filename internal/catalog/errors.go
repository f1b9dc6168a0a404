package catalog

import "fmt"

// NotFoundError indicates the catalog has no entry for an id. This is a valid
// "unmatched" outcome for callers, not a failure of the catalog itself.
type NotFoundError struct {
	CatalogID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog entry not found: %s", e.CatalogID)
}

// UpstreamError indicates a network failure, timeout or 5xx from the catalog
// service. Callers treat it as a soft failure; it is retryable but never
// retried inside this package.
type UpstreamError struct {
	Op      string
	Status  int
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog %s failed: %s: %v", e.Op, e.Message, e.Cause)
	}
	if e.Status != 0 {
		return fmt.Sprintf("catalog %s failed: %s (HTTP %d)", e.Op, e.Message, e.Status)
	}
	return fmt.Sprintf("catalog %s failed: %s", e.Op, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
