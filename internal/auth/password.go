// Package auth holds password storage for registration and login.
//
// TWO STORAGE MODES:
// ModeBcrypt (the default) stores a bcrypt hash. bcrypt salts every hash and
// embeds the salt and cost in its output, so the stored string is all that
// Verify needs:
//
//	$2a$12$<22-char salt><31-char hash>
//	 ^   ^
//	 |   cost (12 rounds → 2^12 = 4096 iterations)
//	 version
//
// ModePlaintext stores the password exactly as submitted. It exists for
// deployments that share a users collection with an older server that reads
// the password field directly.
//
// Verify accepts both kinds of stored value regardless of mode: anything that
// is not a bcrypt hash is compared as plaintext in constant time. Switching a
// deployment from plaintext to bcrypt therefore does not lock anyone out; old
// records keep working and new registrations are hashed.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// defaultCost is the bcrypt work factor.
//
// Set cost so that hashing takes ~200–300ms on production hardware.
// Too low → easy to crack. Too high → login is sluggish under load.
const defaultCost = 12

// maxPasswordBytes is bcrypt's input limit. Longer inputs are silently
// truncated by the algorithm, so Hash rejects them instead.
const maxPasswordBytes = 72

var (
	// ErrInvalidPassword is returned by Verify when the password does not match.
	ErrInvalidPassword = errors.New("auth: invalid password")
	// ErrPasswordTooLong is returned by Hash in bcrypt mode for inputs over
	// 72 bytes.
	ErrPasswordTooLong = fmt.Errorf("auth: password must be %d bytes or fewer", maxPasswordBytes)
)

// Mode selects how new passwords are stored.
type Mode string

const (
	ModeBcrypt    Mode = "bcrypt"
	ModePlaintext Mode = "plaintext"
)

// ParseMode converts a config value into a Mode. The empty string means
// ModeBcrypt.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeBcrypt:
		return ModeBcrypt, nil
	case ModePlaintext:
		return ModePlaintext, nil
	default:
		return "", fmt.Errorf("auth: unknown password mode %q (want %q or %q)", s, ModeBcrypt, ModePlaintext)
	}
}

// PasswordService hashes and verifies passwords.
//
// It's a struct (not free functions) so that the cost can be injected
// in tests. A lower cost (e.g. 4) makes tests run much faster
// without compromising the logic being tested.
type PasswordService struct {
	mode Mode
	cost int
}

// NewPasswordService creates a PasswordService with the default cost (12).
func NewPasswordService(mode Mode) *PasswordService {
	return &PasswordService{mode: mode, cost: defaultCost}
}

// NewPasswordServiceForTest creates a bcrypt PasswordService with the given
// cost. Pass bcrypt.MinCost (4) from tests in other packages to avoid the
// ~250ms overhead of cost 12 per hashing operation.
//
// Do NOT use in production: cost 4 is far too weak.
func NewPasswordServiceForTest(cost int) *PasswordService {
	return &PasswordService{mode: ModeBcrypt, cost: cost}
}

// Mode reports how this service stores new passwords.
func (p *PasswordService) Mode() Mode {
	return p.mode
}

// Hash turns a submitted password into the value to store.
//
// In bcrypt mode, it returns an error if the plaintext is longer than
// 72 bytes (a bcrypt limit). In plaintext mode, it returns the input.
func (p *PasswordService) Hash(plaintext string) (string, error) {
	if p.mode == ModePlaintext {
		return plaintext, nil
	}

	if len(plaintext) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify checks a submitted password against a stored value.
//
// Returns nil on a match, ErrInvalidPassword on a mismatch, and a wrapped
// error if the stored hash is corrupt.
func (p *PasswordService) Verify(stored, plaintext string) error {
	if !isBcryptHash(stored) {
		if subtle.ConstantTimeCompare([]byte(stored), []byte(plaintext)) != 1 {
			return ErrInvalidPassword
		}
		return nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}
		return fmt.Errorf("auth: comparing password hash: %w", err)
	}
	return nil
}

// isBcryptHash reports whether s parses as a bcrypt hash.
func isBcryptHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
