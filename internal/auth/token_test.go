package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokens_IssueAndParse(t *testing.T) {
	tk := NewTokens("test-secret", 8*time.Hour)

	raw, err := tk.Issue("64f0c3e2a1b2c3d4e5f60718", "admin@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	claims, err := tk.Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Subject != "64f0c3e2a1b2c3d4e5f60718" {
		t.Fatalf("subject = %q", claims.Subject)
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("email = %q", claims.Email)
	}
	if claims.ID == "" {
		t.Fatal("expected a jti")
	}
	exp := time.Until(claims.ExpiresAt.Time)
	if exp < 7*time.Hour || exp > 8*time.Hour {
		t.Fatalf("expiry %v not ~8h out", exp)
	}
}

func TestTokens_Expired(t *testing.T) {
	tk := NewTokens("test-secret", -time.Minute)
	raw, err := tk.Issue("id", "a@b.co")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	_, err = tk.Parse(raw)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokens_SignatureMismatch(t *testing.T) {
	raw, err := NewTokens("secret-a", time.Hour).Issue("id", "a@b.co")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	_, err = NewTokens("secret-b", time.Hour).Parse(raw)
	if !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestTokens_Malformed(t *testing.T) {
	tk := NewTokens("test-secret", time.Hour)
	for _, raw := range []string{"", "garbage", "a.b"} {
		if _, err := tk.Parse(raw); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("Parse(%q): expected ErrTokenMalformed, got %v", raw, err)
		}
	}
}
