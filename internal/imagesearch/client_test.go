package imagesearch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, results string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`<script>vqd="4-12345678901234567890";</script>`))
	})
	mux.HandleFunc("/i.js", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("vqd") != "4-12345678901234567890" {
			http.Error(w, "missing vqd", http.StatusForbidden)
			return
		}
		w.Write([]byte(results))
	})
	mux.HandleFunc("/photo.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jpeg-bytes"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestSearchImage(t *testing.T) {
	server := newTestServer(t, `{"results":[{"title":"Chicken Soup","image":"/photo.jpg","width":1200,"height":800}]}`)
	client := NewClient(Config{BaseURL: server.URL}, WithHTTPClient(server.Client()))

	result, err := client.SearchImage(context.Background(), "chicken soup")
	if err != nil {
		t.Fatalf("SearchImage failed: %v", err)
	}
	if result.Image != "/photo.jpg" || result.Width != 1200 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestSearchImageNoResults(t *testing.T) {
	server := newTestServer(t, `{"results":[]}`)
	client := NewClient(Config{BaseURL: server.URL}, WithHTTPClient(server.Client()))

	_, err := client.SearchImage(context.Background(), "nothing")
	if !errors.Is(err, ErrNoResults) {
		t.Errorf("error = %v, want ErrNoResults", err)
	}
}

func TestSearchImageMissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("no token here"))
	}))
	defer server.Close()
	client := NewClient(Config{BaseURL: server.URL}, WithHTTPClient(server.Client()))

	if _, err := client.SearchImage(context.Background(), "soup"); err == nil {
		t.Error("expected error when vqd token is absent")
	}
}

func TestDownload(t *testing.T) {
	server := newTestServer(t, `{"results":[]}`)
	client := NewClient(Config{BaseURL: server.URL}, WithHTTPClient(server.Client()))

	data, err := client.Download(context.Background(), server.URL+"/photo.jpg")
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("data = %q", data)
	}
}

func TestDownloadBadStatus(t *testing.T) {
	server := newTestServer(t, `{"results":[]}`)
	client := NewClient(Config{BaseURL: server.URL}, WithHTTPClient(server.Client()))

	if _, err := client.Download(context.Background(), server.URL+"/missing.jpg"); err == nil {
		t.Error("expected error for 404 download")
	}
}

func TestRandomUserAgentNonEmpty(t *testing.T) {
	for range 20 {
		if randomUserAgent() == "" {
			t.Fatal("randomUserAgent returned empty string")
		}
	}
}
