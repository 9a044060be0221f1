package utils

import (
	"errors"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "user@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	userID, email, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if userID != 42 || email != "user@example.com" {
		t.Fatalf("unexpected claims: %d / %s", userID, email)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		if _, _, err := ParseToken(bad); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", bad, err)
		}
	}
}

func TestParseTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken(1, "user@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, _, err := ParseToken(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered signature, got %v", err)
	}
}
