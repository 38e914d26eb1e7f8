package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FutureQuant/Random-walk/internal/api/models"
	"github.com/FutureQuant/Random-walk/internal/recorder"
	"github.com/FutureQuant/Random-walk/internal/simulation"
	"github.com/FutureQuant/Random-walk/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	cache  *store.ResultCache
}

func newTestServer(t *testing.T, rec recorder.Recorder) *testServer {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flat.yaml"), []byte(`
name: flat
description: no volatility
simulation:
  count: 5
  start_price: 100
  std_return: 0
  window: 2
`), 0o644))

	cache := store.NewResultCache(time.Hour)
	return &testServer{
		router: NewRouter(Options{
			Cache:      cache,
			Recorder:   rec,
			PresetsDir: dir,
			MaxCount:   100_000,
		}),
		cache: cache,
	}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)
	w := s.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRunSimulation_FlatPath(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/api/v1/simulations",
		`{"params":{"count":5,"start_price":100,"mean_return":0,"std_return":0,"window":2},"options":{"include_series":true}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[models.SimulationResponse](t, w)
	assert.Equal(t, "completed", resp.Status)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, []float64{100, 100, 100, 100, 100}, resp.Prices)
	assert.Equal(t, []float64{100, 100, 100, 100}, resp.MovingAverage)
	assert.Equal(t, 4, resp.Summary.MovingAverage.Count)
	assert.Len(t, resp.Preview.Prices, 5)
	assert.Equal(t, "/api/v1/simulations/"+resp.ID+"/prices", resp.Links["prices"])

	_, ok := s.cache.Get(resp.ID)
	assert.True(t, ok)
}

func TestRunSimulation_DefaultsWithEmptyBody(t *testing.T) {
	s := newTestServer(t, nil)
	// Defaults ask for a million steps, above this server's limit.
	w := s.do(t, http.MethodPost, "/api/v1/simulations", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[models.ErrorResponse](t, w)
	assert.Equal(t, models.CodeInvalidParameters, resp.Error.Code)
	assert.EqualValues(t, 100_000, resp.Error.Details["max_count"])
}

func TestRunSimulation_Preset(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/api/v1/simulations", `{"preset":"flat","params":{"window":5}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[models.SimulationResponse](t, w)
	assert.Equal(t, 5, resp.Params.Count)
	assert.Equal(t, 5, resp.Params.Window)
	assert.Equal(t, []float64{100}, resp.Preview.MovingAverage)
	assert.Nil(t, resp.Prices)
}

func TestRunSimulation_Errors(t *testing.T) {
	s := newTestServer(t, nil)

	cases := []struct {
		name string
		body string
		code string
	}{
		{"malformed json", `{"params":`, models.CodeInvalidRequest},
		{"negative std", `{"params":{"count":10,"std_return":-1,"window":2}}`, models.CodeInvalidParameters},
		{"zero count", `{"params":{"count":0}}`, models.CodeInvalidParameters},
		{"window above count", `{"params":{"count":10,"window":11}}`, models.CodeInvalidParameters},
		{"zero window", `{"params":{"count":10,"window":0}}`, models.CodeInvalidParameters},
		{"unknown preset", `{"preset":"nope"}`, models.CodeInvalidRequest},
		{"preset path traversal", `{"preset":"../etc/passwd"}`, models.CodeInvalidRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/api/v1/simulations", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decode[models.ErrorResponse](t, w)
			assert.Equal(t, tc.code, resp.Error.Code)
		})
	}
}

func TestGetAndDownloadSimulation(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/api/v1/simulations", `{"params":{"count":300,"window":20,"seed":9}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[models.SimulationResponse](t, w)

	w = s.do(t, http.MethodGet, "/api/v1/simulations/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.SimulationResponse](t, w)
	assert.Equal(t, created.Summary, got.Summary)

	entry, ok := s.cache.Get(created.ID)
	require.True(t, ok)

	w = s.do(t, http.MethodGet, "/api/v1/simulations/"+created.ID+"/prices", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	prices, err := simulation.ReadSeries(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []float64(entry.Result.Prices), prices)

	w = s.do(t, http.MethodGet, "/api/v1/simulations/"+created.ID+"/moving-average", "")
	require.Equal(t, http.StatusOK, w.Code)
	ma, err := simulation.ReadSeries(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Len(t, ma, 281)

	w = s.do(t, http.MethodGet, "/api/v1/simulations/unknown/prices", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.CodeNotFound, decode[models.ErrorResponse](t, w).Error.Code)
}

func TestListParametersAndPresets(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/api/v1/parameters", "")
	require.Equal(t, http.StatusOK, w.Code)
	params := decode[map[string][]models.ParameterInfo](t, w)["parameters"]
	require.Len(t, params, 6)
	assert.Equal(t, "count", params[0].Name)

	w = s.do(t, http.MethodGet, "/api/v1/presets", "")
	require.Equal(t, http.StatusOK, w.Code)
	presets := decode[map[string][]models.PresetInfo](t, w)["presets"]
	require.Len(t, presets, 1)
	assert.Equal(t, "flat", presets[0].ID)
	assert.Equal(t, 0.0, presets[0].Params.StdReturn)
	assert.Equal(t, 42, int(presets[0].Params.Seed))
}

func TestListRuns_Recorded(t *testing.T) {
	rec, err := recorder.NewSQLiteRecorder(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer rec.Close()
	s := newTestServer(t, rec)

	w := s.do(t, http.MethodPost, "/api/v1/simulations", `{"preset":"flat"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[models.SimulationResponse](t, w)

	w = s.do(t, http.MethodGet, "/api/v1/runs?limit=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	runs := decode[map[string][]models.RunInfo](t, w)["runs"]
	require.Len(t, runs, 1)
	assert.Equal(t, created.ID, runs[0].ID)
	assert.Equal(t, "api", runs[0].Source)
	assert.Equal(t, 4, runs[0].MovingAverageLen)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/simulations", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRunSimulation_OverflowIsRejected(t *testing.T) {
	rec, err := recorder.NewSQLiteRecorder(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer rec.Close()
	s := newTestServer(t, rec)

	w := s.do(t, http.MethodPost, "/api/v1/simulations",
		`{"params":{"count":50,"window":2,"std_return":1e200}}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	assert.Equal(t, models.CodeInvalidParameters, decode[models.ErrorResponse](t, w).Error.Code)
	assert.Zero(t, s.cache.Len())

	runs, err := rec.RecentRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
