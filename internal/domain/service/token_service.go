package service

import (
	"marketplace/internal/domain/entity"
)

// TokenService validates access tokens issued by the auth platform.
type TokenService interface {
	// ParseSession validates an access token and returns the session it carries.
	ParseSession(tokenString string) (*entity.Session, error)
}
