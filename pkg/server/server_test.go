package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/hemicycle/pkg/cache"
	"github.com/matzehuels/hemicycle/pkg/observability"
	"github.com/matzehuels/hemicycle/pkg/render/sink"
)

// =============================================================================
// Test Helpers
// =============================================================================

const testGroups = "5:#cc0000:Left:L,2-3-4:#009900+#0000cc:Greens,5:#3366ff:Right:R"

func newTestServer(t *testing.T) (*Server, cache.Cache) {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	return New(Config{Cache: c, Logger: log.New(io.Discard), MaxSeats: 100}), c
}

func do(t *testing.T, s *Server, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	s.Routes().ServeHTTP(w, req)
	return w
}

func parseResponse[T any](t *testing.T, body io.Reader) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(body).Decode(&v))
	return v
}

func renderURL(format string, params url.Values) string {
	return "/v1/diagram." + format + "?" + params.Encode()
}

// =============================================================================
// Health
// =============================================================================

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", parseResponse[HealthResponse](t, w.Body).Status)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

// =============================================================================
// On-demand rendering
// =============================================================================

func TestRender_SVG(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, renderURL("svg", url.Values{"groups": {testGroups}, "legend": {"true"}}), nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "<svg "))
	assert.Contains(t, w.Body.String(), `class="legend"`)
	assert.Equal(t, 14, strings.Count(w.Body.String(), `<circle id="seat-`))
}

func TestRender_JSONHonoursLayoutParameters(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, renderURL("json", url.Values{
		"groups":        {testGroups},
		"angle":         {"270"},
		"radius_ratio":  {"0.25"},
		"row_connected": {"true"},
	}), nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	doc := parseResponse[sink.Document](t, w.Body)
	assert.Equal(t, 14, doc.Seats)
	assert.InDelta(t, 1.5*3.141592653589793, doc.Angle, 1e-9)
	assert.InDelta(t, 0.25, doc.RadiusRatio, 1e-12)
	assert.Len(t, doc.Positions, 14)
}

func TestRender_DOT(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, renderURL("dot", url.Values{"groups": {testGroups}}), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "graph hemicycle {"))
}

func TestRender_GraphvizSVG(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, renderURL("svg", url.Values{"groups": {testGroups}, "graphviz": {"true"}}), nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "<svg")
	assert.Equal(t, 14, strings.Count(w.Body.String(), `class="node"`))
	assert.NotContains(t, w.Body.String(), `<circle id="seat-`)
}

func TestRender_Errors(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{"unknown format", renderURL("gif", url.Values{"groups": {testGroups}}), http.StatusBadRequest, "INVALID_FORMAT"},
		{"missing groups", renderURL("svg", url.Values{}), http.StatusBadRequest, "INVALID_SPEC"},
		{"bad color", renderURL("svg", url.Values{"groups": {"3:#zzz"}}), http.StatusBadRequest, "INVALID_SPEC"},
		{"bad angle", renderURL("svg", url.Values{"groups": {testGroups}, "angle": {"400"}}), http.StatusBadRequest, "INVALID_ANGLE"},
		{"angle not a number", renderURL("svg", url.Values{"groups": {testGroups}, "angle": {"wide"}}), http.StatusBadRequest, "INVALID_INPUT"},
		{"bad ratio", renderURL("svg", url.Values{"groups": {testGroups}, "radius_ratio": {"1.5"}}), http.StatusBadRequest, "INVALID_RADIUS_RATIO"},
		{"bad bool", renderURL("svg", url.Values{"groups": {testGroups}, "legend": {"maybe"}}), http.StatusBadRequest, "INVALID_INPUT"},
		{"too many seats", renderURL("svg", url.Values{"groups": {"101:#000"}}), http.StatusBadRequest, "INVALID_SEATS"},
		{"no seats", renderURL("svg", url.Values{"groups": {"0:#000"}}), http.StatusBadRequest, "INVALID_SEATS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodGet, tt.target, nil)

			assert.Equal(t, tt.status, w.Code)
			resp := parseResponse[ErrorResponse](t, w.Body)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

// =============================================================================
// Stored diagrams
// =============================================================================

func TestCreateAndGetDiagram(t *testing.T) {
	s, _ := newTestServer(t)

	body := `{"groups":"` + testGroups + `","format":"json","angle":180}`
	w := do(t, s, http.MethodPost, "/v1/diagrams", strings.NewReader(body))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := parseResponse[DiagramResponse](t, w.Body)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "json", created.Format)
	assert.Equal(t, 14, created.Seats)
	assert.Equal(t, 3, created.Rows)
	assert.Equal(t, "/v1/diagrams/"+created.ID, created.URL)
	assert.Equal(t, created.URL, w.Header().Get("Location"))

	got := do(t, s, http.MethodGet, created.URL, nil)
	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, "application/json", got.Header().Get("Content-Type"))
	doc := parseResponse[sink.Document](t, got.Body)
	assert.Equal(t, []int{3, 5, 6}, doc.RowSeats)
}

func TestCreateDiagram_DefaultsToSVG(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodPost, "/v1/diagrams", strings.NewReader(`{"groups":"3:#f00"}`))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "svg", parseResponse[DiagramResponse](t, w.Body).Format)
}

func TestCreateDiagram_Errors(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"invalid json", `{"groups":`, "INVALID_INPUT"},
		{"unknown field", `{"groups":"3:#f00","colour":"red"}`, "INVALID_INPUT"},
		{"bad format", `{"groups":"3:#f00","format":"bmp"}`, "INVALID_FORMAT"},
		{"bad spec", `{"groups":"x:#f00"}`, "INVALID_SPEC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/v1/diagrams", bytes.NewBufferString(tt.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, parseResponse[ErrorResponse](t, w.Body).Error.Code)
		})
	}
}

func TestCreateDiagram_NoStore(t *testing.T) {
	s := New(Config{Logger: log.New(io.Discard)})

	w := do(t, s, http.MethodPost, "/v1/diagrams", strings.NewReader(`{"groups":"3:#f00"}`))

	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Equal(t, "UNSUPPORTED", parseResponse[ErrorResponse](t, w.Body).Error.Code)
}

func TestGetDiagram_NotFound(t *testing.T) {
	s, _ := newTestServer(t)

	for _, id := range []string{"not-a-uuid", "3f2504e0-4f89-41d3-9a0c-0305e82c3301"} {
		w := do(t, s, http.MethodGet, "/v1/diagrams/"+id, nil)

		assert.Equal(t, http.StatusNotFound, w.Code, id)
		assert.Equal(t, "NOT_FOUND", parseResponse[ErrorResponse](t, w.Body).Error.Code)
	}
}

func TestDiagramsUseScopedKeys(t *testing.T) {
	s, c := newTestServer(t)

	w := do(t, s, http.MethodPost, "/v1/diagrams", strings.NewReader(`{"groups":"3:#f00"}`))
	require.Equal(t, http.StatusCreated, w.Code)
	id := parseResponse[DiagramResponse](t, w.Body).ID

	_, hit, err := c.Get(context.Background(), "hemicycle:api:diagram:"+id)
	require.NoError(t, err)
	assert.True(t, hit)
}

// =============================================================================
// Middleware
// =============================================================================

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	routes   []string
	statuses []int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, method, route string, status int, _ time.Duration) {
	h.routes = append(h.routes, method+" "+route)
	h.statuses = append(h.statuses, status)
}

func TestObserveReportsRoutePattern(t *testing.T) {
	observability.Reset()
	defer observability.Reset()
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)

	s, _ := newTestServer(t)
	do(t, s, http.MethodGet, "/health", nil)
	do(t, s, http.MethodGet, "/v1/diagrams/nope", nil)

	assert.Equal(t, []string{"GET /health", "GET /v1/diagrams/{id}"}, hooks.routes)
	assert.Equal(t, []int{http.StatusOK, http.StatusNotFound}, hooks.statuses)
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	s, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
