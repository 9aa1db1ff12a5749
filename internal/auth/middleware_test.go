package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func sessionEcho(t *testing.T, got *Session, found *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := SessionFromContext(r.Context())
		*got, *found = s, ok
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_NoToken(t *testing.T) {
	j := NewJWT("test-secret")
	var s Session
	var found bool
	h := RequireAuth(j)(sessionEcho(t, &s, &found))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
	if found {
		t.Error("handler ran without a session")
	}
}

func TestRequireAuth_BadToken(t *testing.T) {
	j := NewJWT("test-secret")
	var s Session
	var found bool
	h := RequireAuth(j)(sessionEcho(t, &s, &found))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}

func TestRequireAuth_ValidToken(t *testing.T) {
	j := NewJWT("test-secret")
	token, err := j.Sign(9, "nine@example.com")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	var s Session
	var found bool
	h := RequireAuth(j)(sessionEcho(t, &s, &found))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !found || s.UserID != 9 || s.Email != "nine@example.com" {
		t.Errorf("session = %+v (found=%v)", s, found)
	}
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	j := NewJWT("test-secret")
	var s Session
	var found bool
	h := OptionalAuth(j)(sessionEcho(t, &s, &found))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
	if found {
		t.Error("anonymous request should carry no session")
	}
}

func TestOptionalAuth_AttachesSessionWhenPresent(t *testing.T) {
	j := NewJWT("test-secret")
	token, _ := j.Sign(3, "three@example.com")

	var s Session
	var found bool
	h := OptionalAuth(j)(sessionEcho(t, &s, &found))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if !found || s.UserID != 3 {
		t.Errorf("session = %+v (found=%v)", s, found)
	}
}
