package usecase

import (
	"context"

	"salondesk/internal/domain/entity"
)

// CustomerInput carries the raw field values from a customer form. All
// validation happens inside the use case before any mutation is attempted.
type CustomerInput struct {
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     string
	ServiceType     entity.ServiceType
	AppointmentDate string
}

// CustomerUsecase defines validated CRUD over customer records. Mutations
// require an authenticated session; reads are open so the booking screen can
// show the table before anyone logs in.
type CustomerUsecase interface {
	// Add validates the input and persists a new active customer record.
	Add(ctx context.Context, session *entity.Session, input *CustomerInput) (*entity.Customer, error)

	// Update validates the input and rewrites the record's mutable fields.
	Update(ctx context.Context, session *entity.Session, id int64, input *CustomerInput) (*entity.Customer, error)

	// SoftDelete marks the record inactive; the row is never purged.
	SoftDelete(ctx context.Context, session *entity.Session, id int64) error

	// Search returns the active records matching the query, ordered by
	// appointment date ascending with undated records last.
	Search(ctx context.Context, query string) ([]*entity.Customer, error)

	// Get returns the record regardless of its active flag.
	Get(ctx context.Context, id int64) (*entity.Customer, error)
}
