package auth

import (
	"testing"
	"time"

	jwtsvc "hotelops/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("front-desk"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewService("reception", string(hash), jwtsvc.New("test-secret", time.Hour))
}

func TestLogin_Success(t *testing.T) {
	service := newTestService(t)

	token, err := service.Login("reception", "front-desk")

	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtsvc.New("test-secret", time.Hour).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "reception", claims.Operator)
}

func TestLogin_WrongPassword(t *testing.T) {
	service := newTestService(t)

	_, err := service.Login("reception", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownOperator(t *testing.T) {
	service := newTestService(t)

	_, err := service.Login("intruder", "front-desk")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
