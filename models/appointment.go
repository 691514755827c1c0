package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment is an upcoming booking. EmployeeIDs and ServiceIDs reference
// catalog records by id only; Overrides supersedes the catalog price for
// this booking.
type Appointment struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Buyer       string     `gorm:"not null" json:"buyer"`
	EmployeeIDs StringList `gorm:"type:jsonb;default:'[]'" json:"employeeIds"`
	ServiceIDs  StringList `gorm:"type:jsonb;not null" json:"serviceIds"`
	When        time.Time  `gorm:"index;not null" json:"when"`
	Currency    string     `gorm:"type:varchar(8);default:'IQD'" json:"currency"`
	Overrides   PriceMap   `gorm:"type:jsonb;default:'{}'" json:"overrides"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
