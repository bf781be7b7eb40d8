package domain

import "errors"

var (
	// ErrEmptyCatalog signals a catalog rebuild attempted with no activities.
	ErrEmptyCatalog = errors.New("empty catalog")
	// ErrUnknownActivity signals an activity id outside the indexed catalog.
	ErrUnknownActivity = errors.New("unknown activity")
	// ErrUpstreamUnavailable signals a backend fetch failure. On the
	// recommendation path it is absorbed at the resolver boundary and
	// converted into fallback behavior; only admin operations with no
	// fallback (catalog rebuild) surface it.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrInvalidLimit signals a non-positive result limit from the caller.
	ErrInvalidLimit = errors.New("limit must be positive")
	// ErrCatalogNotReady signals that no catalog index has been built yet.
	ErrCatalogNotReady = errors.New("catalog not ready")
)
