package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService(Config{Username: "admin", PasswordHash: string(hash), Secret: "s3cret", TTL: time.Hour})
}

func TestService_LoginVerify(t *testing.T) {
	svc := newTestService(t)

	token, exp, err := svc.Login("admin", "rahasia")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	sub, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)
}

func TestService_LoginRejects(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Login("admin", "salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("kasir", "rahasia")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_VerifyRejects(t *testing.T) {
	svc := newTestService(t)

	token, _, err := svc.Login("admin", "rahasia")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewService(Config{Secret: "different"})
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("rahasia")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("rahasia")))
}

func TestNewService_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewService(Config{}).cfg.TTL)
}
