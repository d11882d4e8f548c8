package authz_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/jdgames/account-service/internal/authz"
)

func TestRequireWithoutIdentity(t *testing.T) {
	gate := authz.Middleware{Policy: authz.DefaultPolicy()}
	handler := gate.Require(authz.CapSuspendAccounts)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rr.Code)
	}
}

func TestRequireDeniesMissingCapability(t *testing.T) {
	gate := authz.Middleware{Policy: authz.DefaultPolicy()}
	handler := gate.Require(authz.CapSuspendAccounts)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	}))

	identity := &authz.Identity{ID: uuid.New(), Username: "bob", Role: authz.RolePlayer}
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(authz.ContextWithIdentity(req.Context(), identity))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rr.Code)
	}
}

func TestRequireAllowsGrantedCapability(t *testing.T) {
	gate := authz.Middleware{Policy: authz.DefaultPolicy()}
	called := false
	handler := gate.Require(authz.CapSuspendAccounts)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	identity := &authz.Identity{ID: uuid.New(), Username: "mia", Role: authz.RoleModerator}
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(authz.ContextWithIdentity(req.Context(), identity))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if !called {
		t.Fatal("expected next handler to run")
	}
}
