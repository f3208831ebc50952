// Package auth implements admin authentication for the clinic server:
// credential verification against a configured user list and HS256
// session tokens for the dashboard API.
package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Credential is a single admin username with its password or bcrypt hash.
type Credential struct {
	Username string
	Password string
}

// Verifier checks submitted admin credentials against a configured list.
type Verifier struct {
	creds []Credential
}

// NewVerifier builds a verifier over the given credential list.
func NewVerifier(creds []Credential) *Verifier {
	return &Verifier{creds: creds}
}

// Verify reports whether the username/password pair matches any configured
// credential. Passwords stored as bcrypt hashes (prefix "$2") are compared
// with bcrypt; plaintext entries are compared in constant time.
func (v *Verifier) Verify(username, password string) bool {
	ok := false
	for _, c := range v.creds {
		userMatch := subtle.ConstantTimeCompare([]byte(c.Username), []byte(username)) == 1
		if strings.HasPrefix(c.Password, "$2") {
			if bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)) == nil && userMatch {
				ok = true
			}
			continue
		}
		passMatch := subtle.ConstantTimeCompare([]byte(c.Password), []byte(password)) == 1
		if userMatch && passMatch {
			ok = true
		}
	}
	return ok
}

// HashPassword produces a bcrypt hash suitable for the admin user list.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
