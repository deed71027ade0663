package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/mentor-api/pkg/config"
	"github.com/chainsafe/mentor-api/pkg/pgutil"
	"github.com/chainsafe/mentor-api/pkg/points"
	pointservice "github.com/chainsafe/mentor-api/pkg/points/service"
	"github.com/chainsafe/mentor-api/pkg/points/service/mocks"
	"github.com/chainsafe/mentor-api/pkg/pointstore"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:     config.ServerConfig{RequestTimeout: 5 * time.Second},
		Monitoring: config.MonitoringConfig{Enabled: true, MetricsPath: "/metrics"},
	}
}

func TestRun_NilConfig(t *testing.T) {
	assert.Error(t, NewServer(nil).Run())
}

func TestRouter_HealthAndRoot(t *testing.T) {
	r := NewServer(testConfig()).setupRouter(mocks.NewService(t), zap.NewNop())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Mentor API is running"}`, rec.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetPoints(mock.Anything, int64(1)).Return(&points.PointsResponse{UserID: 1}, nil).Once()

	r := NewServer(testConfig()).setupRouter(svc, zap.NewNop())
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/get_points/1", nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `mentor_api_http_requests_total{method="GET",route="/get_points/{user_id}",status="200"}`)
}

func TestRouter_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Monitoring.Enabled = false
	r := NewServer(cfg).setupRouter(mocks.NewService(t), zap.NewNop())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	r := NewServer(testConfig()).setupRouter(mocks.NewService(t), zap.NewNop())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not Found","code":404}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/mentor-assignments", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"detail":"Method Not Allowed","code":405}`, rec.Body.String())
}

func TestRouter_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{RequestsPerMinute: 1, Burst: 1}
	r := NewServer(cfg).setupRouter(mocks.NewService(t), zap.NewNop())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

// End to end against a real database: the documented 42 walkthrough.
func TestRouter_PointsScenario(t *testing.T) {
	pgutil.RequireDocker(t)

	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()

	s := NewServer(testConfig())
	require.NoError(t, s.initSchema(context.Background(), db, zap.NewNop()))
	// second start is a no-op
	require.NoError(t, s.initSchema(context.Background(), db, zap.NewNop()))

	svc := pointservice.NewService(pointstore.NewStore(db), zap.NewNop())
	srv := httptest.NewServer(s.setupRouter(svc, zap.NewNop()))
	defer srv.Close()

	post := func(path, body string) map[string]any {
		t.Helper()
		resp, err := http.Post(srv.URL+path, "application/json", bytes.NewBufferString(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		return decodeMap(t, resp.Body)
	}
	get := func(path string) map[string]any {
		t.Helper()
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		return decodeMap(t, resp.Body)
	}

	assert.EqualValues(t, 10, post("/add_points", `{"user_id":42,"points":10}`)["new_total"])
	assert.EqualValues(t, 5, post("/add_points", `{"user_id":42,"points":-5}`)["new_total"])
	assert.EqualValues(t, 5, get("/get_points/42")["points"])
	assert.Equal(t, "User 42 points set to 0.", post("/set_points", `{"user_id":42,"points":0}`)["message"])
	assert.EqualValues(t, 0, get("/get_points/42")["points"])

	assert.Equal(t, "Mentor assigned successfully", post("/mentor-assignments", `{"mentor_id":1,"mentee_id":2}`)["message"])
	assert.Equal(t, "Mentor unassigned successfully", post("/mentor-assignments", `{"mentor_id":1,"mentee_id":2}`)["message"])

	resp, err := http.Get(srv.URL + "/mentor-assignments")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(body)))

	post("/log-checkin", `{"user_id":42,"checkin_type":"GOOD"}`)
	resp, err = http.Post(srv.URL+"/log-checkin", "application/json", bytes.NewBufferString(`{"user_id":42,"checkin_type":"great"}`))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	pgutil.AssertRowCount(t, db, "daily_checkins", 1)
}

func decodeMap(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&m))
	return m
}
