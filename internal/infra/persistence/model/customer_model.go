// Package model holds the GORM persistence models mirroring the SQLite schema.
package model

import "time"

// CustomerModel mirrors the 'customers' table. SQLite assigns ids through
// AUTOINCREMENT so an id is never reused after its row is soft-deleted.
type CustomerModel struct {
	ID              int64   `gorm:"column:id;primaryKey;autoIncrement"`
	FirstName       string  `gorm:"type:varchar(100);not null"`
	LastName        string  `gorm:"type:varchar(100);not null"`
	Email           *string `gorm:"type:varchar(255)"`
	PhoneNumber     *string `gorm:"type:varchar(20)"`
	ServiceType     string  `gorm:"type:varchar(50);not null"`
	AppointmentDate string  `gorm:"type:varchar(10)"`
	IsActive        bool    `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
