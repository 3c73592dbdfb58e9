package preview

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hyeonw/detailpage-client/internal/entity"
	"github.com/hyeonw/detailpage-client/internal/generation"
	"go.uber.org/zap"
)

func newTestServer(state *generation.Store) *httptest.Server {
	return httptest.NewServer(NewServer("127.0.0.1:0", state, zap.NewNop()).Handler())
}

func TestIndex_ServesGeneratedHTML(t *testing.T) {
	state := generation.NewStore()
	state.SetResult(&entity.GenerationResult{ID: 1, HTMLContent: "<html><body>상세페이지</body></html>"})
	state.SetStatus(entity.GenerationStatusCompleted)

	srv := newTestServer(state)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected html content type, got %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "상세페이지") {
		t.Errorf("expected generated content, got %q", body)
	}
}

func TestIndex_NotFoundWhenIdle(t *testing.T) {
	srv := newTestServer(generation.NewStore())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if errResp.Error == "" {
		t.Error("expected error message in body")
	}
}

func TestIndex_NotFoundWhileGenerating(t *testing.T) {
	state := generation.NewStore()
	state.SetStatus(entity.GenerationStatusGenerating)

	srv := newTestServer(state)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 while generating, got %d", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(generation.NewStore())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var health map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health["status"] != "healthy" {
		t.Errorf("unexpected health payload %v", health)
	}
}
