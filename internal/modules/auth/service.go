package auth

import (
	"errors"

	jwtsvc "hotelops/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service issues tokens for the single configured operator account. Full
// account management lives outside this system; only the login boundary is
// kept here.
type Service struct {
	operatorName string
	passwordHash string
	tokens       *jwtsvc.Service
}

func NewService(operatorName, passwordHash string, tokens *jwtsvc.Service) *Service {
	return &Service{operatorName: operatorName, passwordHash: passwordHash, tokens: tokens}
}

func (s *Service) Login(name, password string) (string, error) {
	if name != s.operatorName {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.GenerateToken(name)
}
