package auth

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// =========================================================================
// HELPER
// =========================================================================

// newTestPasswordService returns a bcrypt PasswordService with cost 4.
// Cost 4 is the minimum allowed by the bcrypt library. This makes tests
// run in milliseconds instead of ~250ms each.
func newTestPasswordService() *PasswordService {
	return NewPasswordServiceForTest(bcrypt.MinCost)
}

// =========================================================================
// ParseMode TESTS
// =========================================================================

func TestParseMode(t *testing.T) {
	cases := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeBcrypt, false},
		{"bcrypt", ModeBcrypt, false},
		{"BCRYPT", ModeBcrypt, false},
		{" plaintext ", ModePlaintext, false},
		{"md5", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMode(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// =========================================================================
// Hash TESTS
// =========================================================================

func TestHash_OutputLooksBcrypt(t *testing.T) {
	ps := newTestPasswordService()

	hash, err := ps.Hash("password123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	// bcrypt hashes always start with $2a$ or $2b$
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("Hash() does not look like a bcrypt hash: %q", hash)
	}
}

func TestHash_SamePasswordProducesDifferentHashes(t *testing.T) {
	ps := newTestPasswordService()

	hash1, _ := ps.Hash("same-password")
	hash2, _ := ps.Hash("same-password")

	if hash1 == hash2 {
		t.Error("Hash() produced identical hashes for the same password (salt must be random)")
	}
}

func TestHash_RejectsPasswordOver72Bytes(t *testing.T) {
	ps := newTestPasswordService()

	_, err := ps.Hash(strings.Repeat("a", 73))
	if !errors.Is(err, ErrPasswordTooLong) {
		t.Fatal("Hash() should return an error for passwords longer than 72 bytes")
	}
}

func TestHash_AcceptsPasswordExactly72Bytes(t *testing.T) {
	ps := newTestPasswordService()

	if _, err := ps.Hash(strings.Repeat("a", 72)); err != nil {
		t.Fatalf("Hash() should accept a 72-byte password, got error: %v", err)
	}
}

func TestHash_PlaintextModeStoresInput(t *testing.T) {
	ps := NewPasswordService(ModePlaintext)

	long := strings.Repeat("b", 100)
	got, err := ps.Hash(long)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if got != long {
		t.Errorf("Hash() = %q, want the input unchanged", got)
	}
}

// =========================================================================
// Verify TESTS
// =========================================================================

func TestVerify_CorrectPassword(t *testing.T) {
	ps := newTestPasswordService()

	hash, err := ps.Hash("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if err := ps.Verify(hash, "correct-horse-battery-staple"); err != nil {
		t.Errorf("Verify() should return nil for a correct password, got: %v", err)
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	ps := newTestPasswordService()

	hash, _ := ps.Hash("the-real-password")

	err := ps.Verify(hash, "the-wrong-password")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("Verify() error = %v, want ErrInvalidPassword", err)
	}
}

func TestVerify_EmptyPassword(t *testing.T) {
	ps := newTestPasswordService()

	hash, _ := ps.Hash("some-password")

	if err := ps.Verify(hash, ""); err == nil {
		t.Fatal("Verify() should return an error when password is empty")
	}
}

func TestVerify_PlaintextStoredValue(t *testing.T) {
	// Records written in plaintext mode must still log in after the
	// deployment switches to bcrypt.
	ps := newTestPasswordService()

	if err := ps.Verify("hunter2", "hunter2"); err != nil {
		t.Errorf("Verify() plaintext match error = %v", err)
	}
	if err := ps.Verify("hunter2", "hunter3"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("Verify() plaintext mismatch error = %v, want ErrInvalidPassword", err)
	}
}

func TestVerify_PlaintextModeReadsBcryptRecords(t *testing.T) {
	hashed, err := newTestPasswordService().Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	ps := NewPasswordService(ModePlaintext)
	if err := ps.Verify(hashed, "s3cret"); err != nil {
		t.Errorf("Verify() error = %v", err)
	}
}

// =========================================================================
// ROUND-TRIP TEST
// =========================================================================

func TestHashVerify_RoundTrip(t *testing.T) {
	services := map[string]*PasswordService{
		"bcrypt":    newTestPasswordService(),
		"plaintext": NewPasswordService(ModePlaintext),
	}

	cases := []struct {
		name     string
		password string
	}{
		{"simple alphanumeric", "hello123"},
		{"special characters", "p@$$w0rd!#%"},
		{"unicode", "пароль-密码"},
		{"whitespace", "  leading and trailing  "},
		{"empty-ish", " "},
	}

	for mode, ps := range services {
		for _, tc := range cases {
			t.Run(mode+"/"+tc.name, func(t *testing.T) {
				stored, err := ps.Hash(tc.password)
				if err != nil {
					t.Fatalf("Hash(%q) error = %v", tc.password, err)
				}

				if err := ps.Verify(stored, tc.password); err != nil {
					t.Errorf("Verify() failed for %q: %v", tc.password, err)
				}
			})
		}
	}
}
