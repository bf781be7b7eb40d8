package recommend

import (
	"context"

	"github.com/kailas-cloud/stayrec/internal/domain/catalog"
	"github.com/kailas-cloud/stayrec/internal/domain/profile"
)

// CatalogProvider yields the current immutable catalog index snapshot.
// Implementations swap snapshots atomically; a returned index is safe for
// unsynchronized concurrent reads for the rest of the request.
type CatalogProvider interface {
	Current(ctx context.Context) (*catalog.Index, error)
}

// ProfileResolver resolves a guest's preference profile. It never fails:
// when the upstream is unreachable it falls back to the deterministic
// synthetic profile derived from the user id.
type ProfileResolver interface {
	Resolve(ctx context.Context, userID int64, tenant string) profile.Profile
}

// HistoryReader reads a guest's previously consumed activity ids, oldest
// first. A missing or unreachable history source yields an empty sequence.
type HistoryReader interface {
	History(ctx context.Context, userID int64, tenant string) ([]int64, error)
}
