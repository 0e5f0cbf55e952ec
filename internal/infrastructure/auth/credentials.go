package auth

import (
	"crypto/subtle"
	"errors"

	"github.com/arganshop/backend/internal/infrastructure/config"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any username/password mismatch. The
// caller cannot distinguish a wrong username from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier checks login attempts against the provisioned admin
// credential. The password is stored as a bcrypt hash in configuration; no
// user table is involved.
type CredentialVerifier struct {
	username     string
	passwordHash []byte
}

// NewCredentialVerifier creates a verifier from the admin configuration
func NewCredentialVerifier(cfg config.AdminConfig) *CredentialVerifier {
	return &CredentialVerifier{
		username:     cfg.Username,
		passwordHash: []byte(cfg.PasswordHash),
	}
}

// Verify checks the given username and password, returning
// ErrInvalidCredentials on any mismatch
func (v *CredentialVerifier) Verify(username, password string) error {
	if v.username == "" || len(v.passwordHash) == 0 {
		return ErrInvalidCredentials
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(v.username), []byte(username)) == 1

	// Always run the bcrypt comparison to keep timing uniform across
	// unknown-username and wrong-password attempts.
	passwordErr := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password))

	if !usernameOK || passwordErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword produces a bcrypt hash suitable for the admin.password_hash
// config entry
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
