package authz

import (
	"log/slog"
	"net/http"

	"github.com/jdgames/account-service/internal/platform/httpx"
)

// Middleware wires capability checks for HTTP handlers.
type Middleware struct {
	Policy Policy
	Logger *slog.Logger
}

// Require ensures the authenticated identity holds the given capability.
// It must run behind the authentication gate; requests without an identity
// are rejected outright.
func (m Middleware) Require(capability Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := IdentityFromContext(r.Context())
			if identity == nil {
				httpx.Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if !m.Policy.Allows(identity.Role, capability) {
				if m.Logger != nil {
					m.Logger.Warn("capability denied",
						slog.String("username", identity.Username),
						slog.String("role", string(identity.Role)),
						slog.String("capability", string(capability)))
				}
				httpx.Error(w, http.StatusForbidden, "access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
