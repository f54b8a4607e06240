package credentials

import (
	"testing"

	"appointment-booking-service/config"

	"golang.org/x/crypto/bcrypt"
)

func TestVerify_PlainPassword(t *testing.T) {
	store := NewConfigStore(config.AdminConfig{
		Username: "admin",
		Password: "letmein",
	})

	if !store.Verify("admin", "letmein") {
		t.Fatal("expected matching credentials to verify")
	}
	if store.Verify("admin", "wrong") {
		t.Fatal("expected wrong password to fail")
	}
	if store.Verify("root", "letmein") {
		t.Fatal("expected wrong username to fail")
	}
}

func TestVerify_BcryptHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	store := NewConfigStore(config.AdminConfig{
		Username:     "admin",
		Password:     "ignored",
		PasswordHash: string(hash),
	})

	if !store.Verify("admin", "s3cret") {
		t.Fatal("expected hashed password to verify")
	}
	if store.Verify("admin", "ignored") {
		t.Fatal("plain password must be ignored when a hash is configured")
	}
}

func TestVerify_EmptyConfigRejectsEverything(t *testing.T) {
	store := NewConfigStore(config.AdminConfig{})

	if store.Verify("", "") {
		t.Fatal("unconfigured store must reject empty credentials")
	}
	if store.Verify("admin", "password") {
		t.Fatal("unconfigured store must reject all credentials")
	}
}
