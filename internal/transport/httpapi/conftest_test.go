package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/stayrec/internal/domain/activity"
	domrec "github.com/kailas-cloud/stayrec/internal/domain/recommend"
	healthuc "github.com/kailas-cloud/stayrec/internal/usecase/health"
)

// mockEngine implements Recommender with function fields.
type mockEngine struct {
	forUserFn  func(ctx context.Context, userID int64, tenant string, limit int) ([]domrec.Recommendation, error)
	popularFn  func(ctx context.Context, limit int) ([]domrec.Recommendation, error)
	similarFn  func(ctx context.Context, activityID int64, limit int) ([]domrec.Recommendation, error)
	classifyFn func(ctx context.Context, hotelID int64) ([]activity.Activity, error)
}

func (m *mockEngine) ForUser(ctx context.Context, userID int64, tenant string, limit int) ([]domrec.Recommendation, error) {
	return m.forUserFn(ctx, userID, tenant, limit)
}

func (m *mockEngine) Popular(ctx context.Context, limit int) ([]domrec.Recommendation, error) {
	return m.popularFn(ctx, limit)
}

func (m *mockEngine) Similar(ctx context.Context, activityID int64, limit int) ([]domrec.Recommendation, error) {
	return m.similarFn(ctx, activityID, limit)
}

func (m *mockEngine) ClassifyCatalog(ctx context.Context, hotelID int64) ([]activity.Activity, error) {
	return m.classifyFn(ctx, hotelID)
}

// mockRebuilder implements Rebuilder.
type mockRebuilder struct {
	rebuildFn func(ctx context.Context) error
}

func (m *mockRebuilder) Rebuild(ctx context.Context) error { return m.rebuildFn(ctx) }

// mockRecorder implements VisitRecorder.
type mockRecorder struct {
	recordFn func(ctx context.Context, userID int64, tenant string, activityID int64) error
}

func (m *mockRecorder) Record(ctx context.Context, userID int64, tenant string, activityID int64) error {
	return m.recordFn(ctx, userID, tenant, activityID)
}

// health check stubs.
type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

type okCatalog struct{ err error }

func (c okCatalog) Ready(context.Context) error { return c.err }

func testActivity(t *testing.T, id int64, name string, category activity.Category, rating float64) activity.Activity {
	t.Helper()
	a, err := activity.New(id, name, "a short description", category, 50, 10, 5, "", "", rating, 1, "Cave Hotel")
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func testRecommendation(t *testing.T, id int64, score float64, reasons ...string) domrec.Recommendation {
	t.Helper()
	return domrec.New(testActivity(t, id, "Pottery Workshop", activity.Cultural, 4.3), score, reasons)
}

// newTestRouter wires a Server with the given mocks into a chi router.
func newTestRouter(engine Recommender, rebuilder Rebuilder, visits VisitRecorder) http.Handler {
	health := healthuc.New(okPinger{}, okCatalog{})
	s := NewServer(engine, rebuilder, visits, health, zap.NewNop(), 10)
	r := chi.NewRouter()
	s.Routes(r)
	return r
}

func doRequest(handler http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}
