package google

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestDoWithRetryRecoversFromTransientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newClient("test-key")
	resp, err := c.doWithRetry(context.Background(), func() (*http.Request, error) {
		return c.newRequest(context.Background(), "GET", srv.URL, "mask", nil)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	if got := calls.Load(); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestDoWithRetryDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad field mask", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newClient("test-key")
	_, err := c.doWithRetry(context.Background(), func() (*http.Request, error) {
		return c.newRequest(context.Background(), "GET", srv.URL, "mask", nil)
	})

	var he *httpStatusError
	if !errors.As(err, &he) {
		t.Fatalf("expected httpStatusError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", he.Code)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected 1 attempt, got %d", got)
	}
}

func TestNewRequestSetsHeaders(t *testing.T) {
	c := newClient("secret")
	req, err := c.newRequest(context.Background(), "GET", "http://example.com", "places.id", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := req.Header.Get("X-Goog-Api-Key"); got != "secret" {
		t.Fatalf("api key header = %q", got)
	}
	if got := req.Header.Get("X-Goog-FieldMask"); got != "places.id" {
		t.Fatalf("field mask header = %q", got)
	}
}
