package profile

import (
	"context"

	"github.com/kailas-cloud/stayrec/internal/domain/profile"
)

// Fetcher retrieves a guest profile from the preference upstream. The fetch
// is timeout-bounded by the implementation; any failure (network, status,
// malformed payload) surfaces as an error for the resolver to absorb.
type Fetcher interface {
	Fetch(ctx context.Context, userID int64, tenant string) (profile.Profile, error)
}
