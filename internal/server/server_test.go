package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/search/grid"
	"github.com/pdrpinto/search/internal/config"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg, zerolog.Nop())
}

func do(t *testing.T, s *Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthAndRequestID(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "6f1c1f7e-2a55-4bb4-8a5e-7d0f4d0f3c11")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, "6f1c1f7e-2a55-4bb4-8a5e-7d0f4d0f3c11", rec.Header().Get(requestIDHeader))
}

func TestStrategies(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, http.MethodGet, "/api/strategies", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"name":"astar","needsCost":true`)
	require.Contains(t, rec.Body.String(), `"name":"bfs","needsCost":false`)
}

func TestSolve(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, http.MethodPost, "/api/solve", map[string]any{
		"layout":   []string{"S..", "...", "..G"},
		"strategy": "bfs",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp solutionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Found)
	require.Equal(t, "bfs", resp.Strategy)
	require.Equal(t, []grid.Point{{Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}}, resp.Path)
	require.Len(t, resp.Explored, 7)
	require.Equal(t, 4.0, resp.Stats.PathCost)
}

func TestSolveUnreachable(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, http.MethodPost, "/api/solve", map[string]any{
		"layout":    []string{"S#.", ".#.", ".#G"},
		"strategy":  "astar",
		"heuristic": "euclidean",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, jsonField(t, rec.Body.Bytes(), "path"))
	require.JSONEq(t, `false`, jsonField(t, rec.Body.Bytes(), "found"))
}

func TestSolveRejectsBadInput(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) { cfg.MaxCells = 9 })

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"missing strategy", map[string]any{"layout": []string{"SG"}}, http.StatusBadRequest},
		{"unknown strategy", map[string]any{"layout": []string{"SG"}, "strategy": "beam"}, http.StatusBadRequest},
		{"bad layout", map[string]any{"layout": []string{"S.", "."}, "strategy": "bfs"}, http.StatusBadRequest},
		{"bad heuristic", map[string]any{"layout": []string{"SG"}, "strategy": "astar", "heuristic": "chebyshev"}, http.StatusBadRequest},
		{"too large", map[string]any{"layout": []string{"S....", "....G"}, "strategy": "bfs"}, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/api/solve", tt.body)
			require.Equal(t, tt.want, rec.Code, rec.Body.String())
			require.NotEmpty(t, jsonField(t, rec.Body.Bytes(), "error"))
		})
	}
}

func TestSolveExpansionLimit(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) { cfg.MaxExpansions = 2 })
	rec := do(t, s, http.MethodPost, "/api/solve", map[string]any{
		"layout":   []string{"S.....", "......", ".....G"},
		"strategy": "bfs",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCompare(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, http.MethodPost, "/api/compare", map[string]any{
		"layout":     []string{"S...", ".##.", "...G"},
		"strategies": []string{"bfs", "astar"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Results []solutionResponse `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	require.Equal(t, "bfs", resp.Results[0].Strategy)
	require.Equal(t, "astar", resp.Results[1].Strategy)
	require.Len(t, resp.Results[1].Path, len(resp.Results[0].Path))

	rec = do(t, s, http.MethodPost, "/api/compare", map[string]any{"layout": []string{"S...", "...G"}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 5)
}

func TestGenerate(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, http.MethodGet, "/api/generate?rows=10&cols=12&seed=5&density=0.3", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Layout, 10)
	require.Equal(t, uint64(5), resp.Seed)

	board, err := grid.Parse(resp.Layout)
	require.NoError(t, err)
	require.Equal(t, resp.Start, board.Start())

	again := do(t, s, http.MethodGet, "/api/generate?rows=10&cols=12&seed=5&density=0.3", nil)
	require.Equal(t, rec.Body.String(), again.Body.String())

	require.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/generate?rows=x", nil).Code)
	require.Equal(t, http.StatusRequestEntityTooLarge, do(t, s, http.MethodGet, "/api/generate?rows=1000&cols=1000", nil).Code)
}

func TestGenerateRejectsOversizedRequests(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"rows times cols wraps around", "rows=4611686018427387905&cols=4", http.StatusRequestEntityTooLarge},
		{"negative cols", "rows=4&cols=-4", http.StatusBadRequest},
		{"negative steps", "rows=4&cols=4&steps=-1", http.StatusBadRequest},
		{"endless walks", "rows=4&cols=4&clusters=1000000&steps=1000000", http.StatusRequestEntityTooLarge},
		{"walk product wraps around", "rows=4&cols=4&clusters=4294967296&steps=4294967296", http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, "/api/generate?"+tt.query, nil)
			require.Equal(t, tt.want, rec.Code, rec.Body.String())
			require.NotEmpty(t, jsonField(t, rec.Body.Bytes(), "error"))
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	do(t, s, http.MethodPost, "/api/solve", map[string]any{"layout": []string{"S.G"}, "strategy": "dfs"})

	rec := do(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.True(t, strings.Contains(body, `pathfinder_solves_total{result="found",strategy="dfs"} 1`), body)
	require.Contains(t, body, "pathfinder_http_requests_total")
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, http.MethodOptions, "/api/solve", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func jsonField(t *testing.T, body []byte, key string) string {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &fields))
	return string(fields[key])
}
