package recommend

import (
	"context"
	"testing"

	"github.com/kailas-cloud/stayrec/internal/domain/activity"
	"github.com/kailas-cloud/stayrec/internal/domain/catalog"
	"github.com/kailas-cloud/stayrec/internal/domain/profile"
)

// mockCatalog implements CatalogProvider over a fixed index.
type mockCatalog struct {
	ix  *catalog.Index
	err error
}

func (m *mockCatalog) Current(context.Context) (*catalog.Index, error) {
	return m.ix, m.err
}

// mockProfiles implements ProfileResolver with a canned profile.
type mockProfiles struct {
	p profile.Profile
}

func (m *mockProfiles) Resolve(context.Context, int64, string) profile.Profile {
	return m.p
}

// mockHistory implements HistoryReader.
type mockHistory struct {
	ids []int64
	err error
}

func (m *mockHistory) History(context.Context, int64, string) ([]int64, error) {
	return m.ids, m.err
}

func mustActivity(
	t *testing.T, id int64, name, description string, category activity.Category,
	price float64, capacity, slots int, rating float64,
) activity.Activity {
	t.Helper()
	a, err := activity.New(id, name, description, category, price, capacity, slots, "", "", rating, 1, "Cave Hotel")
	if err != nil {
		t.Fatalf("activity %d: %v", id, err)
	}
	return a
}

// fixtureIndex builds a small catalog mirroring the sample set the engine
// originally shipped with: distinct categories, prices and ratings.
func fixtureIndex(t *testing.T) *catalog.Index {
	t.Helper()
	items := []activity.Activity{
		mustActivity(t, 1, "Hot Air Balloon", "breathtaking balloon views of the valley at sunrise", activity.Adventure, 150, 20, 18, 4.8),
		mustActivity(t, 2, "Underground City Tour", "explore fascinating underground cities with a guide", activity.Cultural, 80, 15, 4, 4.5),
		mustActivity(t, 3, "Pottery Workshop", "learn traditional pottery techniques in a studio", activity.Cultural, 60, 8, 8, 4.3),
		mustActivity(t, 4, "Wine Tasting", "taste local wines in historic cave cellars", activity.Culinary, 70, 12, 6, 4.4),
		mustActivity(t, 5, "Rose Valley Hike", "hike the valley trails at sunset with breathtaking views", activity.Adventure, 50, 30, 30, 4.5),
		mustActivity(t, 6, "Cooking Class", "learn to cook authentic local dishes with a chef", activity.Culinary, 90, 10, 2, 4.6),
	}
	ix, err := catalog.Build(items)
	if err != nil {
		t.Fatal(err)
	}
	return ix
}
