// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"salondesk/internal/domain/entity"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer record is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the standard operations for customer persistence.
// The application layer will depend on this interface, not the concrete implementation.
type CustomerRepository interface {
	// Create persists a new customer record, assigning its id and setting it active.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a customer by id regardless of its active flag.
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)

	// Update modifies the mutable fields of an existing customer record.
	// The id and active flag are never changed by this operation.
	Update(ctx context.Context, customer *entity.Customer) error

	// SoftDelete marks a customer inactive. Deleting an already-inactive
	// record is not an error.
	SoftDelete(ctx context.Context, id int64) error

	// Search returns active customers whose first name, last name, email or
	// phone contains the query case-insensitively; an empty query returns the
	// full active set. Results are ordered by appointment date ascending with
	// undated records last, ties broken by id.
	Search(ctx context.Context, query string) ([]*entity.Customer, error)
}
