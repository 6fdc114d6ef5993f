package client_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/firasghr/browserprint/catalog"
	"github.com/firasghr/browserprint/client"
)

func TestHttpClient_GetOverHTTP1(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua == "" {
			t.Error("expected a rendered User-Agent header on the wire")
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "ok")
	}))
	defer srv.Close()

	profile, err := catalog.Get("chrome_133")
	if err != nil {
		t.Fatalf("catalog.Get: %v", err)
	}

	c, err := client.New(client.Config{Profile: profile})
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}

	resp, err := c.Get(t.Context(), srv.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if string(resp.Body) != "ok" {
		t.Errorf("Body = %q, want %q", resp.Body, "ok")
	}
	if resp.Layer != client.LayerHTTP1 {
		t.Errorf("Layer = %v, want LayerHTTP1 for a plain-HTTP origin", resp.Layer)
	}
}

func TestHttpClient_RejectsEmptyProfile(t *testing.T) {
	_, err := client.New(client.Config{})
	if err == nil {
		t.Fatal("expected an error for a Config with no Profile")
	}
}

func TestHttpClient_FollowsRedirect(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path == "/start" {
			http.Redirect(w, r, "/end", http.StatusFound)
			return
		}
		_, _ = io.WriteString(w, "landed")
	}))
	defer srv.Close()

	profile, _ := catalog.Get("firefox_120")
	c, err := client.New(client.Config{Profile: profile})
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}

	resp, err := c.Get(t.Context(), srv.URL+"/start")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(resp.Body) != "landed" {
		t.Errorf("Body = %q, want %q", resp.Body, "landed")
	}
	if hits != 2 {
		t.Errorf("server hits = %d, want 2 (redirect followed once)", hits)
	}
}
