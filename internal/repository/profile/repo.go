package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/kailas-cloud/stayrec/internal/domain"
	"github.com/kailas-cloud/stayrec/internal/domain/activity"
	domprof "github.com/kailas-cloud/stayrec/internal/domain/profile"
)

const (
	defaultTimeout = 5 * time.Second
	tenantHeader   = "X-Tenant-ID"
)

// Repo fetches guest preference profiles from the booking backend. Calls run
// through a circuit breaker so a dead upstream stops costing a timeout per
// request; the resolver absorbs every error into the synthetic fallback.
type Repo struct {
	client  *http.Client
	baseURL string
	breaker *gobreaker.CircuitBreaker[domprof.Profile]
}

// New creates a profile repository for the given backend base URL.
func New(baseURL string, timeout time.Duration) *Repo {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	breaker := gobreaker.NewCircuitBreaker[domprof.Profile](gobreaker.Settings{
		Name:        "preference-upstream",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 &&
				float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
	})

	return &Repo{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		breaker: breaker,
	}
}

// Fetch implements usecase/profile.Fetcher.
func (r *Repo) Fetch(ctx context.Context, userID int64, tenant string) (domprof.Profile, error) {
	return r.breaker.Execute(func() (domprof.Profile, error) {
		return r.fetch(ctx, userID, tenant)
	})
}

func (r *Repo) fetch(ctx context.Context, userID int64, tenant string) (domprof.Profile, error) {
	url := fmt.Sprintf("%s/api/users/%d/preferences", r.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domprof.Profile{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if tenant != "" {
		req.Header.Set(tenantHeader, tenant)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return domprof.Profile{}, fmt.Errorf("fetch profile: %w: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domprof.Profile{}, fmt.Errorf("fetch profile: status %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domprof.Profile{}, fmt.Errorf("read profile body: %w", err)
	}

	var row profileRow
	if err := json.Unmarshal(body, &row); err != nil {
		return domprof.Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return row.toProfile(userID), nil
}

// profileRow is the wire representation of the upstream preference payload.
// The backend serializes field names in camelCase.
type profileRow struct {
	Interests []string `json:"interests"`
	Budget    string   `json:"budgetRange"`
	Age       string   `json:"ageGroup"`
	History   []int64  `json:"visitedActivities"`
}

// toProfile maps the row onto the domain type. Unknown interest strings are
// dropped here; the resolver fills remaining gaps with defaults.
func (row profileRow) toProfile(userID int64) domprof.Profile {
	interests := make([]activity.Category, 0, len(row.Interests))
	for _, s := range row.Interests {
		c := activity.Category(strings.ToUpper(strings.TrimSpace(s)))
		if c.IsValid() {
			interests = append(interests, c)
		}
	}

	return domprof.Profile{
		UserID:    userID,
		Interests: interests,
		Budget:    domprof.BudgetTier(strings.ToLower(strings.TrimSpace(row.Budget))),
		Age:       domprof.AgeGroup(strings.ToLower(strings.TrimSpace(row.Age))),
		History:   row.History,
	}
}
