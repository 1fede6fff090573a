package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the authenticated caller of a request. It is created when a
// valid access token is presented and lives only as long as the request.
type Session struct {
	UserID    uuid.UUID
	Roles     Roles
	ExpiresAt time.Time
}
