package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orderfoodonline/catalog/internal/auth"
)

const testSecret = "test-secret"

func TestAuthenticate_NoHeaderPassesThroughAnonymous(t *testing.T) {
	var sawUser bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := auth.UserID(r.Context())
		sawUser = err == nil
		w.WriteHeader(http.StatusOK)
	})

	handler := Authenticate(testSecret)(next)
	req := httptest.NewRequest(http.MethodGet, "/api/food", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if sawUser {
		t.Error("request without a token should stay anonymous")
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, 42, "a@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var gotUser uint
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = auth.UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := Authenticate(testSecret)(next)
	req := httptest.NewRequest(http.MethodGet, "/api/food", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if gotUser != 42 {
		t.Errorf("expected user 42 in context, got %d", gotUser)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for an invalid token")
	})

	handler := Authenticate(testSecret)(next)
	req := httptest.NewRequest(http.MethodGet, "/api/food", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	handler := Authenticate(testSecret)(http.NotFoundHandler())
	req := httptest.NewRequest(http.MethodGet, "/api/food", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestRequireUser(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireUser(next)

	// Anonymous request is rejected.
	req := httptest.NewRequest(http.MethodPost, "/api/food", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: expected status 401, got %d", w.Code)
	}

	// Authenticated request passes.
	req = httptest.NewRequest(http.MethodPost, "/api/food", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), 7))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("authenticated: expected status 200, got %d", w.Code)
	}
}
