package stayrec

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped from API error codes. Use errors.Is() to check.
var (
	ErrBadRequest          = errors.New("stayrec: bad request")
	ErrNotFound            = errors.New("stayrec: not found")
	ErrCatalogNotReady     = errors.New("stayrec: catalog not ready")
	ErrEmptyCatalog        = errors.New("stayrec: catalog feed is empty")
	ErrUpstreamUnavailable = errors.New("stayrec: upstream unavailable")
	ErrUnauthorized        = errors.New("stayrec: unauthorized")
)

// APIError carries the raw error payload returned by the service. It wraps
// the matching sentinel, so errors.Is() works on both.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("stayrec: api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Code {
	case "bad_request":
		if e.StatusCode == 401 {
			return ErrUnauthorized
		}
		return ErrBadRequest
	case "not_found":
		return ErrNotFound
	case "catalog_not_ready":
		return ErrCatalogNotReady
	case "empty_catalog":
		return ErrEmptyCatalog
	case "upstream_error":
		return ErrUpstreamUnavailable
	default:
		return nil
	}
}
