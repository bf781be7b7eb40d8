package history

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// listStore is the consumer interface for history lists (ISP).
type listStore interface {
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	RPush(ctx context.Context, key string, values ...string) error
	LTrim(ctx context.Context, key string, start, stop int64) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

const (
	defaultMaxLen = 50
	defaultTTL    = 90 * 24 * time.Hour
)

// Repo reads and records per-guest visit history. The history is a capped
// Redis list keyed by tenant and user; it only feeds similarity propagation,
// nothing about the scoring model is stored here.
type Repo struct {
	store  listStore
	maxLen int64
	ttl    time.Duration
}

// New creates a history repository.
func New(s listStore) *Repo {
	return &Repo{store: s, maxLen: defaultMaxLen, ttl: defaultTTL}
}

// History implements usecase/recommend.HistoryReader. Returns activity ids
// oldest first. Non-numeric entries are skipped.
func (r *Repo) History(ctx context.Context, userID int64, tenant string) ([]int64, error) {
	vals, err := r.store.LRange(ctx, key(tenant, userID), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("read history for user %d: %w", userID, err)
	}

	ids := make([]int64, 0, len(vals))
	for _, v := range vals {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Record appends a visited activity and trims the list to the newest maxLen
// entries. The TTL renews on every write so active guests never expire.
func (r *Repo) Record(ctx context.Context, userID int64, tenant string, activityID int64) error {
	k := key(tenant, userID)
	if err := r.store.RPush(ctx, k, strconv.FormatInt(activityID, 10)); err != nil {
		return fmt.Errorf("record visit for user %d: %w", userID, err)
	}
	if err := r.store.LTrim(ctx, k, -r.maxLen, -1); err != nil {
		return fmt.Errorf("trim history for user %d: %w", userID, err)
	}
	if err := r.store.Expire(ctx, k, r.ttl); err != nil {
		return fmt.Errorf("expire history for user %d: %w", userID, err)
	}
	return nil
}

func key(tenant string, userID int64) string {
	if tenant == "" {
		tenant = "default"
	}
	return "history:" + tenant + ":" + strconv.FormatInt(userID, 10)
}
