// Package usecase defines the application's business operation contracts.
// The presentation layer depends on these interfaces, never on the implementations.
package usecase

import (
	"context"

	"salondesk/internal/domain/entity"
)

// LoginInput carries the credentials the login screen collects.
type LoginInput struct {
	StaffID  int64
	Password string
}

// LoginOutput carries the authenticated session plus a signed hand-off token
// the presentation layer can pass to another screen or process.
type LoginOutput struct {
	Session *entity.Session
	Token   string
}

// SessionUsecase is the access gate: it decides whether a caller is
// authenticated and/or privileged before any mutating operation runs.
type SessionUsecase interface {
	// Login authenticates a staff member by id and password. A successful
	// login stamps the staff record's last_login exactly once, atomically
	// with the transition, and captures the admin flag into the session.
	// Unknown id, inactive record and wrong password are indistinguishable
	// to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Resume rebuilds a session from a hand-off token issued by Login.
	Resume(ctx context.Context, token string) (*entity.Session, error)

	// Logout ends a session. The caller discards the session and token;
	// subsequent operations run as Anonymous.
	Logout(ctx context.Context, session *entity.Session) error

	// StaffIDs lists the active staff ids the login screen offers.
	StaffIDs(ctx context.Context) ([]int64, error)
}
