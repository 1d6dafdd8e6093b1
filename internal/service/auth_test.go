package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sakif/travel-blog/internal/apperror"
	"github.com/sakif/travel-blog/internal/auth"
	"github.com/sakif/travel-blog/internal/model"
)

func newTestAuthService(users *fakeUserRepo) *AuthService {
	return NewAuthService(users, auth.NewPasswordServiceForTest(bcrypt.MinCost), discardLogger())
}

// appMessage returns the client-facing message carried by err.
func appMessage(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *AppError, got %v", err)
	return appErr.Message
}

// =========================================================================
// REGISTER TESTS
// =========================================================================

func TestRegister_Success(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	user, err := svc.Register(context.Background(), "asha", "pass123")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "asha", user.Username)

	stored := users.users["asha"]
	assert.NotEqual(t, "pass123", stored.Password, "password must not be stored as plaintext by default")
	assert.True(t, strings.HasPrefix(stored.Password, "$2"))
}

func TestRegister_PlaintextMode(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, auth.NewPasswordService(auth.ModePlaintext), discardLogger())

	_, err := svc.Register(context.Background(), "asha", "pass123")
	require.NoError(t, err)
	assert.Equal(t, "pass123", users.users["asha"].Password)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	cases := []struct{ name, username, password string }{
		{"no username", "", "pw"},
		{"no password", "asha", ""},
		{"neither", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.username, tc.password)
			assert.ErrorIs(t, err, apperror.ErrValidation)
			assert.Equal(t, MsgRequiredFields, appMessage(t, err))
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	_, err := svc.Register(context.Background(), "asha", "first")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "asha", "second")
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Equal(t, MsgUserExists, appMessage(t, err))
	assert.Len(t, users.users, 1)
}

func TestRegister_ConcurrentDuplicates(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(context.Background(), "racer", "pw")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.Equal(t, MsgUserExists, appMessage(t, err))
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, users.users, 1)
}

func TestRegister_InsertConflictIsUserExists(t *testing.T) {
	users := newFakeUserRepo()
	users.createErr = apperror.Conflict("user", "asha")
	svc := newTestAuthService(users)

	_, err := svc.Register(context.Background(), "asha", "pw")
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Equal(t, MsgUserExists, appMessage(t, err))
}

func TestRegister_PasswordTooLong(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), "asha", strings.Repeat("x", 73))
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestRegister_DatabaseFailure(t *testing.T) {
	users := newFakeUserRepo()
	users.getErr = errDatabaseDown
	svc := newTestAuthService(users)

	_, err := svc.Register(context.Background(), "asha", "pw")
	assert.ErrorIs(t, err, errDatabaseDown)

	var appErr *apperror.AppError
	assert.False(t, errors.As(err, &appErr), "infrastructure errors must not look like client errors")
}

// =========================================================================
// LOGIN TESTS
// =========================================================================

func TestLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)
	_, err := svc.Register(context.Background(), "asha", "pass123")
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "asha", "pass123")
		require.NoError(t, err)
		assert.Equal(t, "asha", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "asha", "nope")
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
		assert.Equal(t, MsgBadPassword, appMessage(t, err))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ghost", "pass123")
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Equal(t, MsgUserNotFound, appMessage(t, err))
	})

	t.Run("empty username is unknown", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "", "")
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestLogin_PlaintextRecord(t *testing.T) {
	users := newFakeUserRepo()
	users.users["legacy"] = model.User{ID: "user-legacy", Username: "legacy", Password: "hunter2"}
	svc := newTestAuthService(users)

	_, err := svc.Login(context.Background(), "legacy", "hunter2")
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), "legacy", "hunter3")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestLogin_DatabaseFailure(t *testing.T) {
	users := newFakeUserRepo()
	users.getErr = errDatabaseDown
	svc := newTestAuthService(users)

	_, err := svc.Login(context.Background(), "asha", "pw")
	assert.ErrorIs(t, err, errDatabaseDown)
}
