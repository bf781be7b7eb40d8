package catalog

import (
	"errors"
	"math"
	"testing"

	"github.com/kailas-cloud/stayrec/internal/domain"
	"github.com/kailas-cloud/stayrec/internal/domain/activity"
)

func makeActivity(t *testing.T, id int64, name, description string, rating float64) activity.Activity {
	t.Helper()
	a, err := activity.New(id, name, description, "", 50, 10, 5, "", "", rating, 1, "Cave Hotel")
	if err != nil {
		t.Fatalf("activity %d: %v", id, err)
	}
	return a
}

func testCatalog(t *testing.T) []activity.Activity {
	t.Helper()
	return []activity.Activity{
		makeActivity(t, 1, "Hot Air Balloon", "breathtaking balloon views over the valley at sunrise", 4.8),
		makeActivity(t, 2, "Underground City Tour", "explore fascinating underground cities with a local guide", 4.5),
		makeActivity(t, 3, "Pottery Workshop", "learn traditional pottery techniques in a working studio", 4.3),
		makeActivity(t, 4, "Valley Hike", "hike the valley trails at sunrise with breathtaking views", 4.6),
	}
}

func TestBuild_EmptyCatalog(t *testing.T) {
	if _, err := Build(nil); !errors.Is(err, domain.ErrEmptyCatalog) {
		t.Fatalf("Build(nil) error = %v, want ErrEmptyCatalog", err)
	}
}

func TestBuild_DuplicateID(t *testing.T) {
	items := []activity.Activity{
		makeActivity(t, 1, "A", "first", 4),
		makeActivity(t, 1, "B", "second", 4),
	}
	if _, err := Build(items); err == nil {
		t.Fatal("expected error for duplicate activity id")
	}
}

func TestSimilarity_MatrixInvariants(t *testing.T) {
	ix, err := Build(testCatalog(t))
	if err != nil {
		t.Fatal(err)
	}

	ids := []int64{1, 2, 3, 4}
	for _, a := range ids {
		self, err := ix.SimilarityOf(a, a)
		if err != nil {
			t.Fatal(err)
		}
		if self != 1.0 {
			t.Errorf("similarity(%d,%d) = %g, want 1.0", a, a, self)
		}
		for _, b := range ids {
			ab, err := ix.SimilarityOf(a, b)
			if err != nil {
				t.Fatal(err)
			}
			ba, err := ix.SimilarityOf(b, a)
			if err != nil {
				t.Fatal(err)
			}
			if ab != ba {
				t.Errorf("similarity(%d,%d)=%g != similarity(%d,%d)=%g", a, b, ab, b, a, ba)
			}
			if ab < 0 || ab > 1 {
				t.Errorf("similarity(%d,%d) = %g out of [0,1]", a, b, ab)
			}
		}
	}
}

func TestSimilarity_SharedTermsScoreHigher(t *testing.T) {
	ix, err := Build(testCatalog(t))
	if err != nil {
		t.Fatal(err)
	}

	// 1 and 4 share "breathtaking", "views", "sunrise", "valley"; 1 and 3 share nothing.
	near, _ := ix.SimilarityOf(1, 4)
	far, _ := ix.SimilarityOf(1, 3)
	if near <= far {
		t.Errorf("similarity(1,4)=%g should exceed similarity(1,3)=%g", near, far)
	}
	if far != 0 {
		t.Errorf("similarity(1,3) = %g, want 0 for disjoint descriptions", far)
	}
}

func TestSimilarityOf_UnknownActivity(t *testing.T) {
	ix, err := Build(testCatalog(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ix.SimilarityOf(1, 999); !errors.Is(err, domain.ErrUnknownActivity) {
		t.Fatalf("error = %v, want ErrUnknownActivity", err)
	}
	if _, err := ix.SimilarityOf(999, 1); !errors.Is(err, domain.ErrUnknownActivity) {
		t.Fatalf("error = %v, want ErrUnknownActivity", err)
	}
}

func TestNeighbors(t *testing.T) {
	ix, err := Build(testCatalog(t))
	if err != nil {
		t.Fatal(err)
	}

	neighbors, err := ix.Neighbors(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(neighbors) != 2 {
		t.Fatalf("got %d neighbors, want 2", len(neighbors))
	}
	if neighbors[0].Activity.ID() == 1 {
		t.Error("reference activity must be excluded from its own neighbors")
	}
	if neighbors[0].Score < neighbors[1].Score {
		t.Errorf("neighbors not sorted: %g < %g", neighbors[0].Score, neighbors[1].Score)
	}
	if neighbors[0].Activity.ID() != 4 {
		t.Errorf("nearest neighbor of 1 = %d, want 4", neighbors[0].Activity.ID())
	}

	if _, err := ix.Neighbors(999, 2); !errors.Is(err, domain.ErrUnknownActivity) {
		t.Fatalf("error = %v, want ErrUnknownActivity", err)
	}
}

func TestTopRated(t *testing.T) {
	ix, err := Build(testCatalog(t))
	if err != nil {
		t.Fatal(err)
	}

	top := ix.TopRated(2)
	if len(top) != 2 {
		t.Fatalf("got %d items, want 2", len(top))
	}
	if top[0].ID() != 1 || top[1].ID() != 4 {
		t.Errorf("top rated = [%d %d], want [1 4]", top[0].ID(), top[1].ID())
	}
}

func TestBuild_ResolvesCategories(t *testing.T) {
	ix, err := Build(testCatalog(t))
	if err != nil {
		t.Fatal(err)
	}
	a, ok := ix.ByID(2)
	if !ok {
		t.Fatal("activity 2 missing")
	}
	// "tour" is a cultural keyword.
	if a.Category() != activity.Cultural {
		t.Errorf("category = %s, want CULTURAL", a.Category())
	}
}

func TestBuildFromVectors(t *testing.T) {
	items := []activity.Activity{
		makeActivity(t, 1, "A", "x", 4),
		makeActivity(t, 2, "B", "y", 4),
		makeActivity(t, 3, "C", "z", 4),
	}
	vectors := [][]float64{
		{1, 0},
		{1, 0},
		{0, 1},
	}
	ix, err := BuildFromVectors(items, vectors)
	if err != nil {
		t.Fatal(err)
	}

	same, _ := ix.SimilarityOf(1, 2)
	if math.Abs(same-1.0) > 1e-12 {
		t.Errorf("similarity of identical vectors = %g, want 1.0", same)
	}
	orth, _ := ix.SimilarityOf(1, 3)
	if orth != 0 {
		t.Errorf("similarity of orthogonal vectors = %g, want 0", orth)
	}

	if _, err := BuildFromVectors(items, vectors[:2]); err == nil {
		t.Fatal("expected error for vector/item count mismatch")
	}
}
