package authz

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the verified claim set attached to one request after token
// verification.
type Identity struct {
	ID       uuid.UUID
	Username string
	Role     Role
}

type identityContextKey struct{}

// ContextWithIdentity stores the identity in context.
func ContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, identity)
}

// IdentityFromContext extracts the identity from context.
func IdentityFromContext(ctx context.Context) *Identity {
	identity, _ := ctx.Value(identityContextKey{}).(*Identity)
	return identity
}
