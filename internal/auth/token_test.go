package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jdgames/account-service/internal/authz"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	codec := NewCodec("secret", 24*time.Hour)
	id := uuid.New()

	token, err := codec.Issue(id, "alice", authz.RoleModerator)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	identity, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if identity.ID != id {
		t.Errorf("expected id %s, got %s", id, identity.ID)
	}
	if identity.Username != "alice" {
		t.Errorf("expected username alice, got %s", identity.Username)
	}
	if identity.Role != authz.RoleModerator {
		t.Errorf("expected role moderator, got %s", identity.Role)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	codec := NewCodec("secret", 24*time.Hour)
	issued := time.Now().Add(-25 * time.Hour)
	codec.now = func() time.Time { return issued }

	token, err := codec.Issue(uuid.New(), "alice", authz.RolePlayer)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	codec.now = time.Now
	if _, err := codec.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewCodec("secret", 24*time.Hour).Issue(uuid.New(), "alice", authz.RolePlayer)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewCodec("other", 24*time.Hour).Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyMalformedToken(t *testing.T) {
	codec := NewCodec("secret", 24*time.Hour)
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := codec.Verify(token); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Verify(%q): expected ErrTokenInvalid, got %v", token, err)
		}
	}
}
