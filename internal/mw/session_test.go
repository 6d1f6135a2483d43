package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSessionAssignsAndKeepsID(t *testing.T) {
	const secret = "test-secret"

	var seen []string
	h := Session(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, SessionID(r.Context()))
	}))

	// First request: no cookie, a session id gets minted and set.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	if len(seen) != 1 || seen[0] == "" {
		t.Fatalf("no session id on first request: %v", seen)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one session cookie, got %d", len(cookies))
	}

	// Second request replays the cookie and keeps the same id.
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(cookies[0])
	h.ServeHTTP(httptest.NewRecorder(), req)

	if len(seen) != 2 || seen[1] != seen[0] {
		t.Errorf("session id not stable across requests: %v", seen)
	}
}

func TestSessionRejectsForgedCookie(t *testing.T) {
	var sids []string
	h := Session("real-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sids = append(sids, SessionID(r.Context()))
	}))

	// Cookie signed with a different key must be discarded and replaced.
	forgedRec := httptest.NewRecorder()
	forged := Session("other-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	forged.ServeHTTP(forgedRec, httptest.NewRequest(http.MethodGet, "/", nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range forgedRec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if len(sids) != 1 || sids[0] == "" {
		t.Fatalf("expected fresh session id, got %v", sids)
	}
	if len(rec.Result().Cookies()) != 1 {
		t.Error("expected replacement cookie for forged session")
	}
}
