package offline

import "net/http"

// Transport is a cache-first http.RoundTripper: a GET whose URL exists
// in the cache is answered from disk and never reaches the network;
// everything else goes to the base transport. Responses passing through
// are not cached — only Install populates the cache.
type Transport struct {
	Cache *Cache
	Base  http.RoundTripper
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method == http.MethodGet && t.Cache != nil {
		if resp, ok := t.Cache.Match(req); ok {
			return resp, nil
		}
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
