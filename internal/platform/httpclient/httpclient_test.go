package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDoJSON_DecodesErrorMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"abrigo duplicado"}`))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	if err != nil {
		t.Fatalf("NewWithBaseURL: %v", err)
	}

	err = c.DoJSON(context.Background(), http.MethodPost, "shelters", nil, map[string]string{"name": "x"}, nil)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", httpErr.StatusCode)
	}
	if httpErr.ResponseMessage() != "abrigo duplicado" {
		t.Fatalf("expected response message, got %q", httpErr.ResponseMessage())
	}
}

func TestDoJSON_PlainErrorBodyHasNoMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer ts.Close()

	c, _ := NewWithBaseURL(ts.URL, time.Second)
	err := c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil)

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %v", err)
	}
	if httpErr.ResponseMessage() != "" {
		t.Fatalf("expected empty message, got %q", httpErr.ResponseMessage())
	}
	if httpErr.Body != "bad gateway" {
		t.Fatalf("expected raw body kept, got %q", httpErr.Body)
	}
}

func TestDoJSON_SendsHeadersAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("X-Empty") != "" {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))
	defer ts.Close()

	c, _ := NewWithBaseURL(ts.URL, time.Second)

	var out struct {
		ID string `json:"id"`
	}
	err := c.DoJSON(context.Background(), http.MethodGet, "/shelters/abc",
		map[string]string{"Authorization": "Bearer tok", "X-Empty": ""}, nil, &out)
	if err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
	if out.ID != "abc" {
		t.Fatalf("expected id abc, got %q", out.ID)
	}
}

func TestResolveURL_RelativeRequiresBaseURL(t *testing.T) {
	c := New(0)
	if _, err := c.resolveURL("/shelters"); err == nil {
		t.Fatalf("expected error without BaseURL")
	}
	got, err := c.resolveURL("http://example.com/a")
	if err != nil || got != "http://example.com/a" {
		t.Fatalf("expected absolute url passthrough, got %q err=%v", got, err)
	}
}
