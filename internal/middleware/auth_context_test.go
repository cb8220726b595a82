package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shelter-registry/internal/ports/auth"
)

type stubVerifier struct {
	claims auth.Claims
	err    error
	got    string
}

func (s *stubVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	s.got = token
	return s.claims, s.err
}

func serveWith(verifier auth.AuthVerifier, req *http.Request) (string, bool) {
	var (
		uid string
		ok  bool
	)
	h := AuthContext(verifier, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok = UserID(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)
	return uid, ok
}

func TestAuthContext_DevHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/shelters", nil)
	req.Header.Set(DebugUserHeader, " user-1 ")

	uid, ok := serveWith(nil, req)
	if !ok || uid != "user-1" {
		t.Fatalf("expected user-1, got %q ok=%v", uid, ok)
	}
}

func TestAuthContext_DevHeaderIgnoredWithVerifier(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/shelters", nil)
	req.Header.Set(DebugUserHeader, "user-1")

	if _, ok := serveWith(&stubVerifier{}, req); ok {
		t.Fatalf("debug header must not authenticate when a verifier is configured")
	}
}

func TestAuthContext_BearerToken(t *testing.T) {
	v := &stubVerifier{claims: auth.Claims{UserID: "u-42"}}
	req := httptest.NewRequest(http.MethodPost, "/shelters", nil)
	req.Header.Set("Authorization", "bearer  tok-1")

	uid, ok := serveWith(v, req)
	if !ok || uid != "u-42" {
		t.Fatalf("expected u-42, got %q ok=%v", uid, ok)
	}
	if v.got != "tok-1" {
		t.Fatalf("expected token tok-1, got %q", v.got)
	}
}

func TestAuthContext_VerifyErrorLeavesAnonymous(t *testing.T) {
	v := &stubVerifier{err: errors.New("expired")}
	req := httptest.NewRequest(http.MethodPost, "/shelters", nil)
	req.Header.Set("Authorization", "Bearer tok-1")

	if _, ok := serveWith(v, req); ok {
		t.Fatalf("expected anonymous request after verify error")
	}
}
