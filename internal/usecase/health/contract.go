package health

import "context"

// CachePinger checks cache availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker reports whether a catalog snapshot is available for serving.
type CatalogChecker interface {
	Ready(ctx context.Context) error
}
