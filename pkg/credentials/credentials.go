package credentials

import (
	"crypto/subtle"

	"appointment-booking-service/config"

	"golang.org/x/crypto/bcrypt"
)

// Store verifies an admin credential pair. Callers only see this
// interface, so a database-backed store can replace the config-backed one
// without touching the auth flow.
type Store interface {
	Verify(username, password string) bool
}

type configStore struct {
	username     string
	password     string
	passwordHash string
}

func NewConfigStore(cfg config.AdminConfig) Store {
	return &configStore{
		username:     cfg.Username,
		password:     cfg.Password,
		passwordHash: cfg.PasswordHash,
	}
}

func (s *configStore) Verify(username, password string) bool {
	if s.username == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		return false
	}
	if s.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
	}
	if s.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
}
