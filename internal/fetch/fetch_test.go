package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); !strings.Contains(got, "Mozilla/5.0") {
			t.Errorf("expected browser-like User-Agent, got %q", got)
		}
		if got := r.Header.Get("Accept"); !strings.Contains(got, "text/html") {
			t.Errorf("expected html Accept header, got %q", got)
		}
		w.Write([]byte("<html><body>Joffre Lakes</body></html>"))
	}))
	defer server.Close()

	f := New(0)
	page, err := f.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if page.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", page.StatusCode)
	}
	if !strings.Contains(page.Body, "Joffre Lakes") {
		t.Errorf("body not captured: %q", page.Body)
	}
	if page.URL != server.URL {
		t.Errorf("URL = %q, want %q", page.URL, server.URL)
	}
}

func TestFetchNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	f := New(0)
	if _, err := f.Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestFetchTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	f := New(20 * time.Millisecond)
	if _, err := f.Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestFetchContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := New(0)
	if _, err := f.Fetch(ctx, server.URL); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
