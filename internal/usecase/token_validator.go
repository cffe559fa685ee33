package usecase

import (
	"auction-scheduler/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	// ValidateToken returns the operator the token was issued to.
	ValidateToken(tokenString string) (string, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
