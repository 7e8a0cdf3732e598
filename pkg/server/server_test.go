package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/hexglyph/pkg/cache"
	"github.com/matzehuels/hexglyph/pkg/observability"
	"github.com/matzehuels/hexglyph/pkg/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := pipeline.NewRunner(fc, nil, nil, pipeline.Options{Size: 30})
	ts := httptest.NewServer(New(runner, nil).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string, header http.Header) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts, "/healthz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(resp.Body)
	if buf.String() != "ok" {
		t.Errorf("body = %q, want ok", buf.String())
	}
}

func TestValidate(t *testing.T) {
	ts := newTestServer(t)
	tests := []struct {
		spec  string
		valid bool
		code  string
	}{
		{"m-La", true, ""},
		{"F2Ra", true, ""},
		{"F2R", false, "MALFORMED_TOKEN"},
		{"Za", false, "INVALID_DIRECTION"},
		{"F0a", false, "INVALID_DISTANCE"},
		{"FBa", false, "ORIGIN_TARGET"},
		{"F64a", true, ""},
		{"F65a", false, "INVALID_DISTANCE"},
		{"F40R30m", false, "INVALID_DISTANCE"},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			resp := get(t, ts, "/v1/validate/"+tt.spec, nil)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			var got validateResponse
			if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
				t.Fatal(err)
			}
			if got.Spec != tt.spec || got.Valid != tt.valid || got.Code != tt.code {
				t.Errorf("validate(%q) = %+v, want valid=%v code=%q", tt.spec, got, tt.valid, tt.code)
			}
			if !tt.valid && got.Error == "" {
				t.Error("invalid spec should carry an error message")
			}
		})
	}
}

func TestDiagram(t *testing.T) {
	ts := newTestServer(t)

	resp := get(t, ts, "/v1/diagrams/m-La.png", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}
	if xc := resp.Header.Get("X-Cache"); xc != "MISS" {
		t.Errorf("first X-Cache = %q, want MISS", xc)
	}
	if _, err := png.Decode(resp.Body); err != nil {
		t.Errorf("body is not a PNG: %v", err)
	}

	again := get(t, ts, "/v1/diagrams/m-La.png", nil)
	if xc := again.Header.Get("X-Cache"); xc != "HIT" {
		t.Errorf("second X-Cache = %q, want HIT", xc)
	}
}

func TestMaxCells(t *testing.T) {
	tests := []struct {
		name       string
		serverCap  int
		runnerCap  int
		spec       string
		wantStatus int
	}{
		{"custom cap allows", 3, 0, "F3a", http.StatusOK},
		{"custom cap rejects", 3, 0, "F2R2a", http.StatusBadRequest},
		{"zero uses default", 0, 0, "F65a", http.StatusBadRequest},
		{"tighter runner limit wins", 10, 2, "F3a", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := pipeline.NewRunner(nil, nil, nil, pipeline.Options{Size: 10, MaxCells: tt.runnerCap})
			srv := New(runner, nil)
			srv.MaxCells = tt.serverCap
			ts := httptest.NewServer(srv.Handler())
			defer ts.Close()

			resp := get(t, ts, "/v1/diagrams/"+tt.spec+".png", nil)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("GET %s status = %d, want %d", tt.spec, resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestDiagramErrors(t *testing.T) {
	ts := newTestServer(t)
	tests := []struct {
		path   string
		status int
		code   string
	}{
		{"/v1/diagrams/F2R.png", http.StatusBadRequest, "MALFORMED_TOKEN"},
		{"/v1/diagrams/Qa.png", http.StatusBadRequest, "INVALID_DIRECTION"},
		{"/v1/diagrams/F65a.png", http.StatusBadRequest, "INVALID_DISTANCE"},
		{"/v1/diagrams/m-La.svg", http.StatusNotFound, "NOT_FOUND"},
		{"/nowhere", http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := get(t, ts, tt.path, nil)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var body errorResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("error body: %v", err)
			}
			if body.Code != tt.code || body.Error == "" {
				t.Errorf("body = %+v, want code %s", body, tt.code)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	ts := newTestServer(t)

	resp := get(t, ts, "/healthz", nil)
	generated := resp.Header.Get(RequestIDHeader)
	if len(generated) != 36 {
		t.Errorf("generated request id = %q, want a uuid", generated)
	}
	if got := resp.Header.Get("Server"); !strings.HasPrefix(got, "hexglyph/") {
		t.Errorf("Server header = %q", got)
	}

	resp = get(t, ts, "/healthz", http.Header{RequestIDHeader: {"abc-123"}})
	if got := resp.Header.Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("echoed request id = %q, want abc-123", got)
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	statuses []int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	ts := newTestServer(t)
	get(t, ts, "/healthz", nil)
	get(t, ts, "/v1/diagrams/F2R.png", nil)

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if len(hooks.statuses) != 2 || hooks.statuses[0] != 200 || hooks.statuses[1] != 400 {
		t.Errorf("hook statuses = %v, want [200 400]", hooks.statuses)
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	runner := pipeline.NewRunner(nil, nil, nil, pipeline.Options{})
	s := New(runner, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() = %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe did not return after cancel")
	}
}
