package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gourmet-graph/backend/internal/analytics"
	"gourmet-graph/backend/internal/graph"
	"gourmet-graph/backend/internal/recommend"
	apperrors "gourmet-graph/backend/pkg/errors"
)

type fakeAnalytics struct {
	days int
	err  error
}

func (f *fakeAnalytics) AnalyzeTrends(ctx context.Context, windowDays int) ([]analytics.TrendAnalysis, error) {
	f.days = windowDays
	if f.err != nil {
		return nil, f.err
	}
	return []analytics.TrendAnalysis{{FoodID: "f1", FoodName: "Phở", ViewCount: 10}}, nil
}

func (f *fakeAnalytics) ProfileUser(ctx context.Context, userID string) (*analytics.UserBehaviorProfile, error) {
	if userID == "missing" {
		return nil, apperrors.NewUserNotFound(userID)
	}
	return &analytics.UserBehaviorProfile{UserID: userID, TotalActions: 3}, nil
}

func (f *fakeAnalytics) SimilarFoods(ctx context.Context, foodID string) (*analytics.SimilarityMatrix, error) {
	return &analytics.SimilarityMatrix{FoodID: foodID}, nil
}

func (f *fakeAnalytics) SeasonalRecommendations(ctx context.Context, season string) ([]analytics.SeasonalFood, error) {
	return []analytics.SeasonalFood{}, nil
}

func (f *fakeAnalytics) RegionalAgeStatistics(ctx context.Context) ([]analytics.RegionalAgeStat, error) {
	return []analytics.RegionalAgeStat{}, nil
}

func (f *fakeAnalytics) Dashboard(ctx context.Context) (*analytics.Dashboard, error) {
	return &analytics.Dashboard{}, nil
}

type fakeRecs struct {
	lastAge        int
	lastLimit      int
	lastCategories []string
	lastRequest    recommend.PersonalizedRequest
}

func (f *fakeRecs) AgeDifference(ctx context.Context, userAge int) ([]recommend.Recommendation, error) {
	f.lastAge = userAge
	return []recommend.Recommendation{{FoodID: "f1", FoodName: "Phở", Score: 0.9}}, nil
}

func (f *fakeRecs) CategoryRegion(ctx context.Context, region string, categories []string) ([]recommend.Recommendation, error) {
	f.lastCategories = categories
	return []recommend.Recommendation{}, nil
}

func (f *fakeRecs) MostViewed(ctx context.Context, limit int) ([]recommend.Recommendation, error) {
	if limit < 1 || limit > 100 {
		return nil, apperrors.NewValidationFailed("limit", "must be between 1 and 100")
	}
	f.lastLimit = limit
	return []recommend.Recommendation{}, nil
}

func (f *fakeRecs) TypeStatistics(ctx context.Context) ([]recommend.TypeStatistic, error) {
	return []recommend.TypeStatistic{}, nil
}

func (f *fakeRecs) PopularByAgeGroup(ctx context.Context) ([]recommend.Recommendation, error) {
	return []recommend.Recommendation{}, nil
}

func (f *fakeRecs) TwoHop(ctx context.Context, foodName string) ([]recommend.Recommendation, error) {
	return []recommend.Recommendation{{FoodName: "Related to " + foodName}}, nil
}

func (f *fakeRecs) InfluentialUsers(ctx context.Context, limit int) ([]recommend.UserInfluence, error) {
	f.lastLimit = limit
	return []recommend.UserInfluence{}, nil
}

func (f *fakeRecs) Personalized(ctx context.Context, req recommend.PersonalizedRequest) ([]recommend.Recommendation, error) {
	f.lastRequest = req
	return []recommend.Recommendation{}, nil
}

type fakeCatalog struct {
	views   map[string]int64
	batched []string
	err     error
}

func (f *fakeCatalog) ViewFood(ctx context.Context, foodID string) (*graph.Food, error) {
	if _, ok := f.views[foodID]; !ok {
		return nil, apperrors.NewFoodNotFound(foodID)
	}
	f.views[foodID]++
	return &graph.Food{ID: foodID, Name: "Phở", ViewCount: f.views[foodID]}, nil
}

func (f *fakeCatalog) IncrementViewCount(ctx context.Context, foodID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.views[foodID]; !ok {
		return 0, apperrors.NewFoodNotFound(foodID)
	}
	f.views[foodID]++
	return f.views[foodID], nil
}

func (f *fakeCatalog) BatchIncrementViewCounts(ctx context.Context, foodIDs []string) (int64, error) {
	f.batched = foodIDs
	return int64(len(foodIDs)), nil
}

func (f *fakeCatalog) GetViewCount(ctx context.Context, foodID string) (int64, error) {
	return f.views[foodID], nil
}

func (f *fakeCatalog) TopViewedFoods(ctx context.Context, limit int) ([]graph.FoodViews, error) {
	return []graph.FoodViews{{ID: "f1", Name: "Phở", ViewCount: 4, Rank: 1}}, nil
}

func (f *fakeCatalog) ListRegions(ctx context.Context) ([]graph.Region, error) {
	return []graph.Region{{ID: "r1", Name: "Hà Nội", FoodCount: 2}}, nil
}

func (f *fakeCatalog) CacheBackend() string { return "memory" }

type fakeHealth struct {
	err error
}

func (f *fakeHealth) Ping(ctx context.Context) error { return f.err }
func (f *fakeHealth) BreakerState() string           { return "closed" }

type testServer struct {
	router    *gin.Engine
	analytics *fakeAnalytics
	recs      *fakeRecs
	catalog   *fakeCatalog
	health    *fakeHealth
}

func newTestServer() *testServer {
	gin.SetMode(gin.TestMode)
	s := &testServer{
		analytics: &fakeAnalytics{},
		recs:      &fakeRecs{},
		catalog:   &fakeCatalog{views: map[string]int64{"f1": 3}},
		health:    &fakeHealth{},
	}
	h := NewHandler(s.analytics, s.recs, s.catalog, s.health)
	s.router = NewRouter(RouterConfig{Handler: h, Logger: zap.NewNop(), AllowedOrigins: []string{"*"}})
	return s
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	s := newTestServer()

	w := s.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "up", body["graph"])
	assert.Equal(t, "closed", body["breaker"])
	assert.Equal(t, "memory", body["cache"])

	s.health.err = apperrors.NewUpstreamQueryFailed("ping", context.DeadlineExceeded)
	w = s.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	decode(t, w, &body)
	assert.Equal(t, "down", body["graph"])
}

func TestRequestIDPropagation(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-Id"))

	w = s.do(http.MethodGet, "/health", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestTrends(t *testing.T) {
	s := newTestServer()

	w := s.do(http.MethodGet, "/api/food-analytics/trends", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 30, s.analytics.days)

	w = s.do(http.MethodGet, "/api/food-analytics/trends?days=7", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, s.analytics.days)

	w = s.do(http.MethodGet, "/api/food-analytics/trends?days=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestErrorMapping(t *testing.T) {
	s := newTestServer()

	w := s.do(http.MethodGet, "/api/food-analytics/user-behavior/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	decode(t, w, &body)
	assert.Contains(t, body["error"], "missing")

	s.analytics.err = apperrors.NewUpstreamQueryFailed("analytics_trends", context.DeadlineExceeded)
	w = s.do(http.MethodGet, "/api/food-analytics/trends", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	decode(t, w, &body)
	assert.Equal(t, "Internal server error", body["error"])
}

func TestAgeBasedRequiresUserAge(t *testing.T) {
	s := newTestServer()

	w := s.do(http.MethodGet, "/api/food-recommendations/age-based", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/food-recommendations/age-based?userAge=25", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 25, s.recs.lastAge)

	var recs []recommend.Recommendation
	decode(t, w, &recs)
	require.Len(t, recs, 1)
	assert.Equal(t, "f1", recs[0].FoodID)
}

func TestListParameters(t *testing.T) {
	s := newTestServer()

	q := url.Values{}
	q.Set("userRegion", "Huế")
	q.Add("categories", "Món nước,Bánh")
	q.Add("categories", "Chè")
	w := s.do(http.MethodGet, "/api/food-recommendations/category-region?"+q.Encode(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Món nước", "Bánh", "Chè"}, s.recs.lastCategories)

	w = s.do(http.MethodGet, "/api/food-recommendations/most-viewed", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, s.recs.lastLimit)

	w = s.do(http.MethodGet, "/api/food-recommendations/most-viewed?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPersonalized(t *testing.T) {
	s := newTestServer()

	q := url.Values{}
	q.Set("userId", "u1")
	q.Set("userAge", "30")
	q.Set("userRegion", "Hà Nội")
	q.Set("categories", "Bánh")
	w := s.do(http.MethodGet, "/api/food-recommendations/personalized?"+q.Encode(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, recommend.PersonalizedRequest{
		UserID:     "u1",
		Age:        30,
		Region:     "Hà Nội",
		Categories: []string{"Bánh"},
	}, s.recs.lastRequest)

	w = s.do(http.MethodGet, "/api/food-recommendations/personalized?userId=u1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFoodRoutes(t *testing.T) {
	s := newTestServer()

	w := s.do(http.MethodGet, "/api/foods/f1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var food graph.Food
	decode(t, w, &food)
	assert.Equal(t, int64(4), food.ViewCount)

	w = s.do(http.MethodGet, "/api/foods/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/api/foods/f1/increment-view", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var counter struct {
		ID        string `json:"id"`
		ViewCount int64  `json:"viewCount"`
	}
	decode(t, w, &counter)
	assert.Equal(t, "f1", counter.ID)
	assert.Equal(t, int64(5), counter.ViewCount)

	w = s.do(http.MethodGet, "/api/foods/f1/view-count", "")
	assert.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &counter)
	assert.Equal(t, int64(5), counter.ViewCount)

	w = s.do(http.MethodGet, "/api/foods/top-viewed", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var top []graph.FoodViews
	decode(t, w, &top)
	require.Len(t, top, 1)
	assert.Equal(t, 1, top[0].Rank)

	w = s.do(http.MethodGet, "/api/foods/regions", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBatchIncrementViews(t *testing.T) {
	s := newTestServer()

	w := s.do(http.MethodPost, "/api/foods/views", `{"ids": ["f1", "f2"]}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"f1", "f2"}, s.catalog.batched)
	var body map[string]int64
	decode(t, w, &body)
	assert.Equal(t, int64(2), body["updated"])

	w = s.do(http.MethodPost, "/api/foods/views", `{"ids": "f1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/foods/views", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWithinTwoSteps(t *testing.T) {
	s := newTestServer()

	w := s.do(http.MethodGet, "/api/food-recommendations/within-2-steps/Ph%E1%BB%9F", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var recs []recommend.Recommendation
	decode(t, w, &recs)
	require.Len(t, recs, 1)
	assert.Equal(t, "Related to Phở", recs[0].FoodName)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/api/foods/regions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
