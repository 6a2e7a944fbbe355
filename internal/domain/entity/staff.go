package entity

import "time"

// Staff is a salon employee record with login credentials. The plaintext
// password never appears on this struct; only the bcrypt digest is carried.
type Staff struct {
	ID             int64      // Store-assigned identifier, immutable after creation.
	FirstName      string     // Letters, spaces, hyphens and apostrophes only.
	LastName       string     // Same character rules as FirstName.
	Email          string     // Required, unique across all staff rows including soft-deleted ones.
	PhoneNumber    string     // Optional; unique when present.
	PasswordDigest string     // bcrypt digest, replaced wholesale on password change.
	IsAdmin        bool       // Grants staff CRUD once authenticated.
	IsActive       bool       // False once soft-deleted; the row is never purged.
	LastLogin      *time.Time // Nil until the first successful login.
	CreatedAt      time.Time  // Timestamp of when this record was created.
	UpdatedAt      time.Time  // Timestamp of the last modification to this record.
}

// FullName returns the display name used by the presentation layer.
func (s *Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}
