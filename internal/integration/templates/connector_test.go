package templates

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hyeonw/detailpage-client/internal/config"
	"github.com/hyeonw/detailpage-client/internal/entity"
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

func TestListTemplates_CategoryQueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/templates" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("category"); got != "beauty" {
			t.Errorf("expected category=beauty, got %q", got)
		}
		json.NewEncoder(w).Encode([]entity.Template{{ID: 2, Name: "뷰티 글로우", Category: entity.CategoryBeauty}})
	}))
	defer srv.Close()

	beauty := entity.CategoryBeauty
	templates, err := NewConnector(testBackendConfig(srv.URL), zap.NewNop()).ListTemplates(context.Background(), &beauty)
	if err != nil {
		t.Fatalf("ListTemplates: %v", err)
	}
	if len(templates) != 1 || templates[0].ID != 2 {
		t.Errorf("unexpected templates %+v", templates)
	}
}

func TestListTemplates_NoFilterOmitsParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query string, got %q", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]entity.Template{})
	}))
	defer srv.Close()

	if _, err := NewConnector(testBackendConfig(srv.URL), zap.NewNop()).ListTemplates(context.Background(), nil); err != nil {
		t.Fatalf("ListTemplates: %v", err)
	}
}

func TestDeleteTemplate_BackendReportedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/templates/5" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(entity.DeleteTemplateResponse{Success: false})
	}))
	defer srv.Close()

	if err := NewConnector(testBackendConfig(srv.URL), zap.NewNop()).DeleteTemplate(context.Background(), 5); err == nil {
		t.Fatal("expected error on success=false")
	}
}

func TestGetTemplate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/templates/2" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(entity.TemplateDetail{
			Template:     entity.Template{ID: 2, Name: "뷰티 글로우", Category: entity.CategoryBeauty},
			HTMLTemplate: "<html>{{content}}</html>",
		})
	}))
	defer srv.Close()

	detail, err := NewConnector(testBackendConfig(srv.URL), zap.NewNop()).GetTemplate(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetTemplate: %v", err)
	}
	if detail.HTMLTemplate == "" {
		t.Error("expected html body")
	}
}
