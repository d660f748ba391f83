package domain

import (
	"errors"
	"regexp"
	"time"
)

// Preferences holds cosmetic per-browser UI flags. Admin only switches the
// admin styling on; no route or handler reads it to grant access.
type Preferences struct {
	SessionID string    `json:"session_id"`
	Admin     bool      `json:"admin"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	ErrNotFound       = errors.New("preferences not found")
	ErrInvalidSession = errors.New("invalid session id")
)

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// ValidSessionID reports whether id can be used as a storage key.
func ValidSessionID(id string) bool {
	return sessionIDPattern.MatchString(id)
}
