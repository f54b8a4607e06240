package jwt

import (
	"testing"
	"time"

	"appointment-booking-service/config"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		SessionExpiry: time.Hour,
	})

	token, tokenID, err := svc.GenerateSessionToken("admin")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected a non-empty token id")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.Username != "admin" {
		t.Fatalf("expected username admin, got %q", claims.Username)
	}
	if claims.TokenID != tokenID {
		t.Fatalf("expected token id %q, got %q", tokenID, claims.TokenID)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "secret-a", SessionExpiry: time.Hour})
	verifier := NewJWTService(config.JWTConfig{Secret: "secret-b", SessionExpiry: time.Hour})

	token, _, err := issuer.GenerateSessionToken("admin")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with wrong secret")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", SessionExpiry: -time.Minute})

	token, _, err := svc.GenerateSessionToken("admin")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expected expired token to fail validation")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", SessionExpiry: time.Hour})

	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected garbage token to fail validation")
	}
}
