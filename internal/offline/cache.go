// Package offline keeps a versioned, disk-backed copy of core assets so
// the terminal client can serve them without a network round trip.
package offline

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
)

// Cache is one named cache version. Entries live under root/name;
// changing the name starts a fresh, empty namespace. Stale version
// directories are left in place, never deleted.
type Cache struct {
	root string
	name string
}

func New(root, name string) *Cache {
	return &Cache{root: root, name: name}
}

func (c *Cache) dir() string {
	return filepath.Join(c.root, c.name)
}

func entryKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}

// Install fetches every listed asset and commits the set only when all
// of them succeed. A single failed fetch fails the whole installation
// and leaves no partial entries behind.
func (c *Cache) Install(ctx context.Context, httpClient *http.Client, baseURL string, paths []string) error {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	dumps := make(map[string][]byte, len(paths))
	for _, path := range paths {
		url := baseURL + path
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("create request for %s: %w", url, err)
		}

		resp, err := httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", url, err)
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
		}

		dump, err := httputil.DumpResponse(resp, true)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("dump response for %s: %w", url, err)
		}
		dumps[url] = dump
	}

	if err := os.MkdirAll(c.dir(), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	for url, dump := range dumps {
		path := filepath.Join(c.dir(), entryKey(url))
		if err := os.WriteFile(path, dump, 0o644); err != nil {
			return fmt.Errorf("write cache entry for %s: %w", url, err)
		}
	}

	return nil
}

// Match returns the cached response for the request's URL, verbatim as
// stored at install time, or false when the URL was never cached.
func (c *Cache) Match(req *http.Request) (*http.Response, bool) {
	data, err := os.ReadFile(filepath.Join(c.dir(), entryKey(req.URL.String())))
	if err != nil {
		return nil, false
	}

	resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(data)), req)
	if err != nil {
		return nil, false
	}
	return resp, true
}
