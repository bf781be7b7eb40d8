package recommend

import (
	"math"
	"testing"

	domrec "github.com/kailas-cloud/stayrec/internal/domain/recommend"
)

func rec(t *testing.T, id int64, reasons ...string) domrec.Recommendation {
	t.Helper()
	a := mustActivity(t, id, "Activity", "description", "", 50, 10, 5, 4.0)
	return domrec.New(a, 0, reasons)
}

func TestMergeHybrid_PositionalWeights(t *testing.T) {
	ix := fixtureIndex(t)
	content := []domrec.Recommendation{rec(t, 101), rec(t, 102)}
	collab := []domrec.Recommendation{rec(t, 102), rec(t, 103)}

	out := mergeHybrid(ix, content, collab, 0.6, 0.4, 10)
	if len(out) != 3 {
		t.Fatalf("got %d results, want 3", len(out))
	}

	// 101: rank 0 of 2 content -> 2*0.6 = 1.2
	// 102: rank 1 content (1*0.6) + rank 0 of 2 collab (2*0.4) = 1.4
	// 103: rank 1 collab -> 1*0.4 = 0.4
	want := map[int64]float64{101: 1.2, 102: 1.4, 103: 0.4}
	for _, r := range out {
		if math.Abs(r.Score-want[r.Activity.ID()]) > 1e-9 {
			t.Errorf("score(%d) = %v, want %v", r.Activity.ID(), r.Score, want[r.Activity.ID()])
		}
	}
	if out[0].Activity.ID() != 102 {
		t.Errorf("top = %d, want 102", out[0].Activity.ID())
	}
}

func TestMergeHybrid_NoDuplicatesSortedDescending(t *testing.T) {
	ix := fixtureIndex(t)
	content := []domrec.Recommendation{rec(t, 1), rec(t, 2), rec(t, 3)}
	collab := []domrec.Recommendation{rec(t, 3), rec(t, 2), rec(t, 4)}

	out := mergeHybrid(ix, content, collab, 0.6, 0.4, 10)

	seen := make(map[int64]bool)
	for i, r := range out {
		if seen[r.Activity.ID()] {
			t.Errorf("duplicate id %d in merged output", r.Activity.ID())
		}
		seen[r.Activity.ID()] = true
		if i > 0 && out[i].Score > out[i-1].Score {
			t.Errorf("not sorted at %d: %v > %v", i, out[i].Score, out[i-1].Score)
		}
	}
}

func TestMergeHybrid_DualSourceReason(t *testing.T) {
	ix := fixtureIndex(t)
	content := []domrec.Recommendation{rec(t, 1, "Good availability")}
	collab := []domrec.Recommendation{rec(t, 1, domrec.ReasonSimilarUsers)}

	out := mergeHybrid(ix, content, collab, 0.6, 0.4, 10)
	if len(out) != 1 {
		t.Fatalf("got %d results, want 1", len(out))
	}
	last := out[0].Reasons[len(out[0].Reasons)-1]
	if last != domrec.ReasonBothSources {
		t.Errorf("dual-source reason = %q, want %q", last, domrec.ReasonBothSources)
	}
}

func TestMergeHybrid_ContentOnlyPreferencesReason(t *testing.T) {
	ix := fixtureIndex(t)
	content := []domrec.Recommendation{rec(t, 1, "Good availability")}

	out := mergeHybrid(ix, content, nil, 0.6, 0.4, 10)
	if len(out) != 1 {
		t.Fatalf("got %d results, want 1", len(out))
	}
	want := []string{"Good availability", domrec.ReasonPreferences}
	if len(out[0].Reasons) != 2 || out[0].Reasons[0] != want[0] || out[0].Reasons[1] != want[1] {
		t.Errorf("content-only reasons = %v, want %v", out[0].Reasons, want)
	}
}

func TestMergeHybrid_CollabOnlyKeepsSimilarUsersReason(t *testing.T) {
	ix := fixtureIndex(t)
	collab := []domrec.Recommendation{rec(t, 9, domrec.ReasonSimilarUsers)}

	out := mergeHybrid(ix, nil, collab, 0.6, 0.4, 10)
	if len(out) != 1 || out[0].Reasons[0] != domrec.ReasonSimilarUsers {
		t.Fatalf("collab-only output = %+v", out)
	}
}

func TestMergeHybrid_BothEmptyFallsBackPopular(t *testing.T) {
	ix := fixtureIndex(t)

	out := mergeHybrid(ix, nil, nil, 0.6, 0.4, 3)
	if len(out) != 3 {
		t.Fatalf("got %d results, want 3", len(out))
	}
	if out[0].Activity.ID() != 1 {
		t.Errorf("top fallback = %d, want highest-rated 1", out[0].Activity.ID())
	}
	for _, r := range out {
		if len(r.Reasons) != 1 || r.Reasons[0] != domrec.ReasonPopular {
			t.Errorf("fallback reasons = %v, want [%q]", r.Reasons, domrec.ReasonPopular)
		}
	}
}

func TestMergeHybrid_TruncatesToTopN(t *testing.T) {
	ix := fixtureIndex(t)
	content := []domrec.Recommendation{rec(t, 1), rec(t, 2), rec(t, 3), rec(t, 4)}

	out := mergeHybrid(ix, content, nil, 0.6, 0.4, 2)
	if len(out) != 2 {
		t.Fatalf("got %d results, want 2", len(out))
	}
	if out[0].Activity.ID() != 1 || out[1].Activity.ID() != 2 {
		t.Errorf("top 2 = [%d %d], want [1 2]", out[0].Activity.ID(), out[1].Activity.ID())
	}
}
