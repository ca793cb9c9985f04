package usecase

import (
	"timebook/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is the identity capability: raw request credentials in,
// opaque owner identifier out. The booking core performs no further identity
// validation.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (uuid.UUID, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}
