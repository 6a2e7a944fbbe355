package usecase

import (
	"context"

	"salondesk/internal/domain/entity"
)

// AddStaffInput carries a new staff submission, password included. The
// password is hashed before it reaches storage and is never logged.
type AddStaffInput struct {
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     string
	Password        string
	ConfirmPassword string
	IsAdmin         bool
}

// UpdateStaffInput carries a staff profile edit. Passwords change only
// through ChangePassword, never through Update.
type UpdateStaffInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	IsAdmin     bool
}

// StaffUsecase defines validated CRUD over staff records. Every operation,
// reads included, is privileged: it requires an authenticated admin session
// and is rejected before touching the store otherwise. Staff records carry
// credential digests, so no weaker access level sees them.
type StaffUsecase interface {
	// Add validates the input, hashes the password and persists a new
	// active staff record.
	Add(ctx context.Context, session *entity.Session, input *AddStaffInput) (*entity.Staff, error)

	// Update validates the input and rewrites the record's profile fields.
	Update(ctx context.Context, session *entity.Session, id int64, input *UpdateStaffInput) (*entity.Staff, error)

	// SoftDelete marks the record inactive. An admin cannot delete the
	// record backing their own session.
	SoftDelete(ctx context.Context, session *entity.Session, id int64) error

	// ChangePassword replaces the stored digest wholesale after the new
	// password passes the strength policy and matches its confirmation.
	ChangePassword(ctx context.Context, session *entity.Session, id int64, newPassword, confirm string) error

	// Search returns the active records matching the query in insertion order.
	Search(ctx context.Context, session *entity.Session, query string) ([]*entity.Staff, error)

	// Get returns the record regardless of its active flag.
	Get(ctx context.Context, session *entity.Session, id int64) (*entity.Staff, error)

	// EnsureSeedAdmin creates the configured initial admin account when no
	// active admin exists. It runs at startup, before any session exists,
	// and is the only ungated write path.
	EnsureSeedAdmin(ctx context.Context) error
}
