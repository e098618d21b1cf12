package usecase

import (
	"autoflow/internal/domain/actor"
	"autoflow/internal/pkg/jwt"
)

// TokenValidator turns an access token into the calling actor
type TokenValidator interface {
	ValidateToken(tokenString string) (actor.Context, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (actor.Context, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return actor.Context{}, err
	}

	role, err := actor.NewRole(claims.Role)
	if err != nil {
		return actor.Context{}, err
	}

	return actor.New(claims.UserID, role)
}
