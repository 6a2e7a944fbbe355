package repository

import (
	"context"
	"errors"
	"time"

	"salondesk/internal/domain/entity"
)

// Domain-specific persistence errors for staff records. Uniqueness errors are
// raised for collisions with ANY existing row, active or soft-deleted; the
// unique index stays populated either way.
var (
	ErrStaffNotFound = errors.New("staff not found")
	ErrEmailTaken    = errors.New("staff email already exists")
	ErrPhoneTaken    = errors.New("staff phone number already exists")
)

// StaffRepository defines the standard operations for staff persistence.
type StaffRepository interface {
	// Create persists a new staff record, assigning its id and setting it active.
	Create(ctx context.Context, staff *entity.Staff) error

	// FindByID retrieves a staff record by id regardless of its active flag.
	FindByID(ctx context.Context, id int64) (*entity.Staff, error)

	// Update modifies the mutable profile fields of an existing staff record.
	// The id, active flag and password digest are never changed by this operation.
	Update(ctx context.Context, staff *entity.Staff) error

	// SoftDelete marks a staff record inactive. Idempotent.
	SoftDelete(ctx context.Context, id int64) error

	// Search returns active staff whose first name, last name, email or phone
	// contains the query case-insensitively; empty query returns the full
	// active set, ordered by id ascending (insertion order).
	Search(ctx context.Context, query string) ([]*entity.Staff, error)

	// ListIDs returns the ids of all active staff in ascending order.
	// The login screen uses this to populate its id dropdown.
	ListIDs(ctx context.Context) ([]int64, error)

	// UpdatePassword replaces the stored digest wholesale.
	UpdatePassword(ctx context.Context, id int64, digest string) error

	// UpdateLastLogin stamps the record's last_login. The access gate calls
	// this inside the login transaction so the stamp and the state transition
	// are observed as one unit.
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}
