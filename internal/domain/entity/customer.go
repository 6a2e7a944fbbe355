// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Customer is a salon client record. Customers never log in; the record exists
// so the front desk can look up contact details and the booked appointment.
type Customer struct {
	ID              int64     // Store-assigned identifier, immutable after creation.
	FirstName       string    // Letters, spaces, hyphens and apostrophes only.
	LastName        string    // Same character rules as FirstName.
	Email           string    // Optional contact email.
	PhoneNumber     string    // Optional UK mobile or landline number.
	ServiceType     ServiceType
	AppointmentDate string    // Canonical DD/MM/YYYY, empty when nothing is booked.
	IsActive        bool      // False once soft-deleted; the row is never purged.
	CreatedAt       time.Time // Timestamp of when this record was created.
	UpdatedAt       time.Time // Timestamp of the last modification to this record.
}

// Appointment returns the appointment date as a calendar value.
// The second return is false when no date is set or it cannot be parsed.
func (c *Customer) Appointment() (time.Time, bool) {
	if c.AppointmentDate == "" {
		return time.Time{}, false
	}

	t, err := time.Parse("02/01/2006", c.AppointmentDate)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
