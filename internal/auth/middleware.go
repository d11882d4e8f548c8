package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jdgames/account-service/internal/authz"
	"github.com/jdgames/account-service/internal/platform/httpx"
)

// Authenticator guards protected routes by verifying bearer tokens.
type Authenticator struct {
	Codec  *Codec
	Logger *slog.Logger
}

// Middleware extracts the bearer token from the Authorization header,
// verifies it and attaches the identity to the request context. The claims
// are trusted as of issuance: no account lookup happens here, so a suspended
// or deleted account keeps a working token until it expires.
func (a Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			httpx.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		identity, err := a.Codec.Verify(token)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				httpx.Error(w, http.StatusUnauthorized, "token expired")
				return
			}
			if a.Logger != nil {
				a.Logger.Warn("token verification failed", slog.Any("error", err))
			}
			httpx.Error(w, http.StatusForbidden, "invalid token")
			return
		}
		ctx := authz.ContextWithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
