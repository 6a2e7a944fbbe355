package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the authenticated state handed back by a successful login.
// The admin flag is captured at login time and is not re-checked live; a
// demotion takes effect on the next login, matching the access gate contract.
type Session struct {
	ID         uuid.UUID // Unique identifier for this session instance.
	StaffID    int64     // The authenticated staff record.
	Name       string    // Display name captured at login.
	IsAdmin    bool      // Privilege flag captured at login time.
	LoggedInAt time.Time // When the login transition happened.
}

// Authenticated reports whether the session represents a logged-in caller.
// A nil session is the Anonymous state.
func (s *Session) Authenticated() bool {
	return s != nil && s.StaffID > 0
}

// Admin reports whether the session may perform privileged staff operations.
func (s *Session) Admin() bool {
	return s.Authenticated() && s.IsAdmin
}
