// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
)

const accessTokenType = "access"

// sessionClaims are the claims carried by an access token.
type sessionClaims struct {
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ParseSession validates an access token and builds the caller's session.
func (s *jwtService) ParseSession(tokenString string) (*entity.Session, error) {
	claims := &sessionClaims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken.Wrap(err)
	}

	if claims.Type != "" && claims.Type != accessTokenType {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token is not an access token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.Wrap(errors.Wrap(err, "invalid subject"))
	}

	session := &entity.Session{
		UserID: userID,
		Roles:  entity.RolesFromStrings(claims.Roles),
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	return session, nil
}
