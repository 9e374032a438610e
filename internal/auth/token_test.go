package auth

import (
	"strings"
	"testing"
	"time"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret")
	now := time.Now()

	tok, err := tokens.Issue("user-1", "demo@company.com", now)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	claims, err := tokens.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("Subject = %q, want %q", claims.Subject, "user-1")
	}
	if claims.Email != "demo@company.com" {
		t.Fatalf("Email = %q, want %q", claims.Email, "demo@company.com")
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	tokens := NewTokens("test-secret")
	tok, err := tokens.Issue("user-1", "demo@company.com", time.Now())
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	if _, err := tokens.Verify(tampered); err == nil {
		t.Fatalf("expected verification failure for tampered token")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tok, err := NewTokens("secret-a").Issue("user-1", "demo@company.com", time.Now())
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if _, err := NewTokens("secret-b").Verify(tok); err == nil {
		t.Fatalf("expected verification failure across secrets")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	tokens := NewTokens("test-secret")
	issued := time.Now().Add(-SessionTTL - time.Hour)
	tok, err := tokens.Issue("user-1", "demo@company.com", issued)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if _, err := tokens.Verify(tok); err == nil {
		t.Fatalf("expected verification failure for expired token")
	}
}
