package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("secret")

	token, err := IssueToken(secret, 42, "pilot@example.com", true, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "pilot@example.com" || !claims.IsStaff {
		t.Errorf("Unexpected claims: %+v", claims)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := IssueToken([]byte("secret"), 1, "a@b.c", false, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if _, err := ParseToken([]byte("other"), token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := IssueToken([]byte("secret"), 1, "a@b.c", false, -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if _, err := ParseToken([]byte("secret"), token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
	}
}
