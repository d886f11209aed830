package auth

import (
	"errors"
	"testing"
	"time"
)

func testUser() *User {
	return &User{
		ID:    "2b1f0c1e-7a4d-4f4a-9a3e-8f6f9a1c2d3e",
		Email: "a@x.com",
		Name:  "A",
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.UserID != "2b1f0c1e-7a4d-4f4a-9a3e-8f6f9a1c2d3e" {
		t.Errorf("unexpected user id in claims: %s", claims.UserID)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("unexpected email in claims: %s", claims.Email)
	}
	if claims.ExpiresAt.Time.Before(claims.IssuedAt.Time) {
		t.Error("expiry must be after issuance")
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Hour)
	verifier := NewTokenService("secret-two", time.Hour)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for foreign signature, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	cases := []string{
		"",
		"garbage",
		"a.b.c",
		token[:len(token)-5], // truncated signature
	}
	for _, bad := range cases {
		if _, err := svc.Verify(bad); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Verify(%q): expected ErrTokenInvalid, got %v", bad, err)
		}
	}
}
