// Package authtest signs access tokens accepted by the auth package, for tests.
package authtest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"marketplace/internal/domain/entity"
)

// SignAccessToken signs an HS256 access token for session that expires after ttl.
func SignAccessToken(t testing.TB, secret string, session *entity.Session, ttl time.Duration) string {
	t.Helper()

	roles := make([]string, len(session.Roles))
	for i, r := range session.Roles {
		roles[i] = r.String()
	}

	now := time.Now()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   session.UserID.String(),
		"roles": roles,
		"type":  "access",
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}
