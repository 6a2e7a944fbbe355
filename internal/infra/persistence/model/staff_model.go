package model

import "time"

// StaffModel mirrors the 'staff' table. Email and phone carry unique indexes
// that stay populated when a row is soft-deleted, so uniqueness holds across
// the full history of records, not just the active set. Phone is nullable so
// staff without one do not collide on the unique index.
type StaffModel struct {
	ID             int64   `gorm:"column:staff_id;primaryKey;autoIncrement"`
	FirstName      string  `gorm:"type:varchar(100);not null"`
	LastName       string  `gorm:"type:varchar(100);not null"`
	Email          string  `gorm:"type:varchar(255);not null;uniqueIndex:uq_staff_email"`
	PhoneNumber    *string `gorm:"type:varchar(20);uniqueIndex:uq_staff_phone"`
	PasswordDigest string  `gorm:"column:password_digest;type:varchar(100);not null"`
	IsAdmin        bool    `gorm:"not null;default:false"`
	IsActive       bool    `gorm:"not null;default:true"`
	LastLogin      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (StaffModel) TableName() string {
	return "staff"
}
