package interview

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hyeonw/detailpage-client/internal/config"
	"github.com/hyeonw/detailpage-client/internal/entity"
	pkghttp "github.com/hyeonw/detailpage-client/pkg/http"
	"go.uber.org/zap"
)

func testBackendConfig(url string) config.BackendConfig {
	return config.BackendConfig{
		Url:                   url,
		RequestTimeout:        5 * time.Second,
		ConnTimeout:           time.Second,
		KeepAlive:             30 * time.Second,
		IdleConnTimeout:       30 * time.Second,
		ResponseHeaderTimeout: 5 * time.Second,
	}
}

func TestCreateSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/interview/sessions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req entity.CreateSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.ReferenceURL != "https://shop.example/ref" {
			t.Errorf("unexpected reference url %q", req.ReferenceURL)
		}
		json.NewEncoder(w).Encode(entity.Session{ID: 3, Status: entity.SessionStatusInProgress})
	}))
	defer srv.Close()

	c := NewConnector(testBackendConfig(srv.URL), zap.NewNop())
	session, err := c.CreateSession(context.Background(), &entity.CreateSessionRequest{ReferenceURL: "https://shop.example/ref"})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if session.ID != 3 {
		t.Errorf("expected session 3, got %d", session.ID)
	}
}

func TestNextQuestion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/interview/sessions/3/next-question" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(entity.Question{
			Question:  "카테고리를 선택해주세요.",
			Options:   []string{"fashion", "beauty"},
			InputType: entity.InputTypeSelect,
			FieldName: "category",
		})
	}))
	defer srv.Close()

	c := NewConnector(testBackendConfig(srv.URL), zap.NewNop())
	question, err := c.NextQuestion(context.Background(), 3)
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if question.FieldName != "category" || question.InputType != entity.InputTypeSelect {
		t.Errorf("unexpected question %+v", question)
	}
}

func TestNextQuestion_UnknownInputType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"question":   "q",
			"input_type": "hologram",
			"field_name": "f",
		})
	}))
	defer srv.Close()

	c := NewConnector(testBackendConfig(srv.URL), zap.NewNop())
	if _, err := c.NextQuestion(context.Background(), 3); err == nil {
		t.Fatal("expected error for unknown input type")
	}
}

func TestSubmitAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/interview/sessions/3/answer" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req entity.SubmitAnswerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.FieldName != "product_name" || req.Value != "Blue Mug" {
			t.Errorf("unexpected payload %+v", req)
		}
		json.NewEncoder(w).Encode(entity.SubmitAnswerResponse{Success: true, FieldName: req.FieldName})
	}))
	defer srv.Close()

	c := NewConnector(testBackendConfig(srv.URL), zap.NewNop())
	resp, err := c.SubmitAnswer(context.Background(), &entity.SubmitAnswerRequest{
		SessionID: 3,
		FieldName: "product_name",
		Value:     "Blue Mug",
	})
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !resp.Success {
		t.Error("expected success ack")
	}
}

func TestGetSession_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Session not found"}`))
	}))
	defer srv.Close()

	c := NewConnector(testBackendConfig(srv.URL), zap.NewNop())
	_, err := c.GetSession(context.Background(), 404)

	var apiErr *pkghttp.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Detail != "Session not found" {
		t.Errorf("expected backend detail, got %q", apiErr.Detail)
	}
}
