package profile

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/kailas-cloud/stayrec/internal/domain/activity"
	"github.com/kailas-cloud/stayrec/internal/domain/profile"
)

// mockFetcher implements Fetcher for tests.
type mockFetcher struct {
	fetchFn func(ctx context.Context, userID int64, tenant string) (profile.Profile, error)
}

func (m *mockFetcher) Fetch(ctx context.Context, userID int64, tenant string) (profile.Profile, error) {
	return m.fetchFn(ctx, userID, tenant)
}

func TestResolve_UpstreamFailureFallsBackSynthetic(t *testing.T) {
	svc := New(&mockFetcher{
		fetchFn: func(context.Context, int64, string) (profile.Profile, error) {
			return profile.Profile{}, errors.New("connection refused")
		},
	})

	got := svc.Resolve(context.Background(), 7, "tenant-a")
	want := profile.Synthetic(7)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %+v, want synthetic %+v", got, want)
	}

	// Determinism of the fallback: byte-identical output on repeated calls.
	again := svc.Resolve(context.Background(), 7, "tenant-a")
	if !reflect.DeepEqual(got, again) {
		t.Error("fallback profile must be reproducible for the same user id")
	}
}

func TestResolve_NilFetcherIsSynthetic(t *testing.T) {
	svc := New(nil)
	got := svc.Resolve(context.Background(), 12, "")
	if !reflect.DeepEqual(got, profile.Synthetic(12)) {
		t.Errorf("Resolve() = %+v, want synthetic", got)
	}
}

func TestResolve_NormalizesSparseUpstream(t *testing.T) {
	svc := New(&mockFetcher{
		fetchFn: func(context.Context, int64, string) (profile.Profile, error) {
			return profile.Profile{History: []int64{3}}, nil
		},
	})

	got := svc.Resolve(context.Background(), 8, "tenant-a")
	if !reflect.DeepEqual(got.Interests, []activity.Category{activity.Cultural, activity.Culinary}) {
		t.Errorf("interests = %v, want default CULTURAL+CULINARY", got.Interests)
	}
	if got.Budget != profile.BudgetMedium {
		t.Errorf("budget = %s, want medium default", got.Budget)
	}
	if got.Age != profile.AgeSenior {
		t.Errorf("age = %s, want senior for id 8", got.Age)
	}
	if got.UserID != 8 {
		t.Errorf("user id = %d, want 8", got.UserID)
	}
}

func TestResolve_KeepsUpstreamFields(t *testing.T) {
	upstream := profile.Profile{
		Interests: []activity.Category{activity.Adventure},
		Budget:    profile.BudgetHigh,
		History:   []int64{1, 2},
	}
	svc := New(&mockFetcher{
		fetchFn: func(context.Context, int64, string) (profile.Profile, error) {
			return upstream, nil
		},
	})

	got := svc.Resolve(context.Background(), 4, "tenant-a")
	if !reflect.DeepEqual(got.Interests, upstream.Interests) {
		t.Errorf("interests = %v, want upstream %v", got.Interests, upstream.Interests)
	}
	if got.Budget != profile.BudgetHigh {
		t.Errorf("budget = %s, want high", got.Budget)
	}
	if !reflect.DeepEqual(got.History, upstream.History) {
		t.Errorf("history = %v, want upstream %v", got.History, upstream.History)
	}
}
