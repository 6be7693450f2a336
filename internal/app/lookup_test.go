package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPAnswerClientLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/answer" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "what is intermittent fasting?" {
			t.Errorf("query mismatch: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"answer":"An eating pattern.","source_url":"https://example.org/if"}`))
	}))
	defer srv.Close()

	client := NewHTTPAnswerClient(srv.URL + "/")
	ans, err := client.Lookup(context.Background(), "what is intermittent fasting?")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if ans.Answer != "An eating pattern." || ans.SourceURL != "https://example.org/if" {
		t.Fatalf("answer mismatch: %+v", ans)
	}
}

func TestHTTPAnswerClientNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPAnswerClient(srv.URL)
	if _, err := client.Lookup(context.Background(), "anything"); err == nil {
		t.Fatalf("expected error for non-2xx status")
	}
}

func TestHTTPAnswerClientNullFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"answer":null,"source_url":null}`))
	}))
	defer srv.Close()

	client := NewHTTPAnswerClient(srv.URL)
	ans, err := client.Lookup(context.Background(), "anything")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if ans.Answer != "" || ans.SourceURL != "" {
		t.Fatalf("expected empty fields for nulls: %+v", ans)
	}
}
