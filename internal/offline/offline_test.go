package offline

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

var testAssets = map[string]string{
	"/":                 "<html>inicio</html>",
	"/static/style.css": "body {}",
	"/static/main.js":   "console.log('hola')",
}

func newAssetServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		body, ok := testAssets[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func assetPaths() []string {
	return []string{"/", "/static/style.css", "/static/main.js"}
}

func TestInstallCachesAllAssets(t *testing.T) {
	srv := newAssetServer(t, nil)
	cache := New(t.TempDir(), "app-v1")

	if err := cache.Install(context.Background(), nil, srv.URL, assetPaths()); err != nil {
		t.Fatalf("install: %v", err)
	}

	for _, path := range assetPaths() {
		req, _ := http.NewRequest(http.MethodGet, srv.URL+path, nil)
		resp, ok := cache.Match(req)
		if !ok {
			t.Errorf("asset %s not retrievable from cache", path)
			continue
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if string(body) != testAssets[path] {
			t.Errorf("asset %s: cached body = %q, want %q", path, body, testAssets[path])
		}
	}
}

func TestInstallIsAllOrNothing(t *testing.T) {
	srv := newAssetServer(t, nil)
	cache := New(t.TempDir(), "app-v1")

	paths := append(assetPaths(), "/static/missing.png")
	if err := cache.Install(context.Background(), nil, srv.URL, paths); err == nil {
		t.Fatal("install must fail when one asset is unreachable")
	}

	// No partial set: even the reachable assets stay uncached.
	for _, path := range assetPaths() {
		req, _ := http.NewRequest(http.MethodGet, srv.URL+path, nil)
		if _, ok := cache.Match(req); ok {
			t.Errorf("asset %s cached despite failed install", path)
		}
	}
}

func TestCachedURLNeverReachesNetwork(t *testing.T) {
	var hits atomic.Int64
	srv := newAssetServer(t, &hits)
	cache := New(t.TempDir(), "app-v1")

	if err := cache.Install(context.Background(), nil, srv.URL, assetPaths()); err != nil {
		t.Fatalf("install: %v", err)
	}
	installHits := hits.Load()

	client := &http.Client{Transport: &Transport{Cache: cache}}
	resp, err := client.Get(srv.URL + "/static/style.css")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if string(body) != "body {}" {
		t.Errorf("body = %q", body)
	}
	if hits.Load() != installHits {
		t.Errorf("cached fetch reached the network (%d extra hits)", hits.Load()-installHits)
	}

	// Still served after the origin goes away entirely.
	srv.Close()
	resp, err = client.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("offline get: %v", err)
	}
	resp.Body.Close()
}

func TestUncachedURLAlwaysReachesNetwork(t *testing.T) {
	var hits atomic.Int64
	srv := newAssetServer(t, &hits)
	cache := New(t.TempDir(), "app-v1")

	if err := cache.Install(context.Background(), nil, srv.URL, []string{"/"}); err != nil {
		t.Fatalf("install: %v", err)
	}
	installHits := hits.Load()

	client := &http.Client{Transport: &Transport{Cache: cache}}
	for i := 0; i < 2; i++ {
		resp, err := client.Get(srv.URL + "/static/main.js")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		resp.Body.Close()
	}

	if got := hits.Load() - installHits; got != 2 {
		t.Errorf("uncached URL reached network %d times, want 2", got)
	}
}

func TestVersionChangeStartsEmpty(t *testing.T) {
	srv := newAssetServer(t, nil)
	root := t.TempDir()

	v1 := New(root, "app-v1")
	if err := v1.Install(context.Background(), nil, srv.URL, assetPaths()); err != nil {
		t.Fatalf("install: %v", err)
	}

	// A new version sees none of the old entries; the old version keeps its own.
	v2 := New(root, "app-v2")
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/", nil)
	if _, ok := v2.Match(req); ok {
		t.Error("new cache version must start empty")
	}
	if _, ok := v1.Match(req); !ok {
		t.Error("old cache version must keep its entries")
	}
}

func TestTransportSkipsCacheForNonGET(t *testing.T) {
	var hits atomic.Int64
	srv := newAssetServer(t, &hits)
	cache := New(t.TempDir(), "app-v1")

	if err := cache.Install(context.Background(), nil, srv.URL, []string{"/"}); err != nil {
		t.Fatalf("install: %v", err)
	}
	installHits := hits.Load()

	client := &http.Client{Transport: &Transport{Cache: cache}}
	resp, err := client.Post(srv.URL+"/", "text/plain", nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()

	if hits.Load() != installHits+1 {
		t.Error("POST to a cached URL must still reach the network")
	}
}
