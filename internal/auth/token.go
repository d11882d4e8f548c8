package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jdgames/account-service/internal/authz"
)

// Token verification failure kinds. Callers surface these as different
// user-facing outcomes, so expiry must never be reported as tampering.
var (
	// ErrTokenExpired reports a well-signed token past its expiry.
	ErrTokenExpired = errors.New("auth: token expired")
	// ErrTokenInvalid reports a malformed or tampered token.
	ErrTokenInvalid = errors.New("auth: token invalid")
)

// Claims is the signed claim set carried by a session token.
type Claims struct {
	UserID   string     `json:"id"`
	Username string     `json:"username"`
	Role     authz.Role `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a process-wide HMAC secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec constructs a Codec. Tokens expire ttl after issuance.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token carrying the account's identifier, username and role.
func (c *Codec) Issue(id uuid.UUID, username string, role authz.Role) (string, error) {
	now := c.now()
	claims := Claims{
		UserID:   id.String(),
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature integrity first, then expiry, and returns the
// identity the token was issued for.
func (c *Codec) Verify(tokenString string) (*authz.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	return &authz.Identity{ID: id, Username: claims.Username, Role: claims.Role}, nil
}
