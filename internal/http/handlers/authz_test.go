package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuardRejectsAnonymousJSON(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("guard must block before the upstream is touched")
	})

	req := httptest.NewRequest(http.MethodGet, "/console/products", nil)
	req.Header.Set("Accept", "application/json")
	resp, body := h.do(t, req)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "Please log in")
}

func TestGuardRedirectsBrowsers(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("guard must block before the upstream is touched")
	})

	req := httptest.NewRequest(http.MethodGet, "/console/products", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	resp, _ := h.do(t, req)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestGuardRejectsUnknownAndExpiredSessions(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/console/products", nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(&http.Cookie{Name: "sid", Value: "forged"})
	resp, _ := h.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuardPassesValidSession(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"categories":[]}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/console/categories", nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(h.login(t))
	resp, _ := h.do(t, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
