package auth_test

import (
	"testing"

	"github.com/jdgames/account-service/internal/auth"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash must not equal plaintext")
	}
	if !auth.VerifyPassword("hunter2", hash) {
		t.Fatal("expected original plaintext to verify")
	}
	if auth.VerifyPassword("hunter3", hash) {
		t.Fatal("expected different plaintext to fail")
	}
}

func TestHashUniquePerCall(t *testing.T) {
	first, err := auth.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := auth.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatal("expected salted hashes to differ between calls")
	}
}
