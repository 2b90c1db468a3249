package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pkt.systems/askdoc/schema"
)

func TestQuerySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var req schema.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Message != "What is the revenue?" {
			t.Errorf("expected trimmed message, got %q", req.Message)
		}
		if req.SessionID != "default" {
			t.Errorf("unexpected session id %q", req.SessionID)
		}
		_ = json.NewEncoder(w).Encode(schema.ChatResponse{
			Response: "Revenue was $5M.",
			Sources:  []schema.Source{{Page: 3, Type: "table", Content: "Revenue: $5M"}},
		})
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	answer, err := client.Query(context.Background(), "  What is the revenue?  ", "default")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if answer.Text != "Revenue was $5M." {
		t.Fatalf("unexpected answer: %q", answer.Text)
	}
	if len(answer.Sources) != 1 || answer.Sources[0].Page != 3 || answer.Sources[0].Type != schema.SourceTable {
		t.Fatalf("unexpected sources: %#v", answer.Sources)
	}
}

func TestQueryEmptyMessage(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://localhost:8000"}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Query(context.Background(), "   ", "default"); !errors.Is(err, schema.ErrEmptyQuestion) {
		t.Fatalf("expected ErrEmptyQuestion, got %v", err)
	}
}

func TestQueryNilSourcesBecomeEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(schema.ChatResponse{Response: "ok"})
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	answer, err := client.Query(context.Background(), "hi", "default")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if answer.Sources == nil || len(answer.Sources) != 0 {
		t.Fatalf("expected empty non-nil sources, got %#v", answer.Sources)
	}
}

func TestQueryServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Query(context.Background(), "hi", "default"); !errors.Is(err, schema.ErrQueryFailed) {
		t.Fatalf("expected ErrQueryFailed, got %v", err)
	}
}

func TestQueryTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Query(context.Background(), "hi", "default"); !errors.Is(err, schema.ErrQueryFailed) {
		t.Fatalf("expected ErrQueryFailed, got %v", err)
	}
}
