package auth

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "admin123" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}
	if !VerifyPassword("admin123", hash) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("admin124", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password should differ (random salt)")
	}
}

func TestVerifyPassword_GarbageHash(t *testing.T) {
	if VerifyPassword("anything", "not-a-hash") {
		t.Fatal("garbage hash accepted")
	}
}
