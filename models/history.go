package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryRecord is a finalized booking. The primary key is a plain string:
// records created here get uuid strings, but rows seeded from other sources
// keep whatever id they arrived with, so lookups must work on the raw value.
type HistoryRecord struct {
	ID                  string     `gorm:"type:text;primary_key" json:"id"`
	Buyer               string     `json:"buyer"`
	EmployeeIDs         StringList `gorm:"type:jsonb;default:'[]'" json:"employeeIds"`
	ServiceIDs          StringList `gorm:"type:jsonb;not null" json:"serviceIds"`
	When                time.Time  `gorm:"index" json:"when"`
	Currency            string     `gorm:"type:varchar(8);default:'IQD'" json:"currency"`
	Overrides           PriceMap   `gorm:"type:jsonb;default:'{}'" json:"overrides"`
	CreatedAt           time.Time  `gorm:"index" json:"createdAt"`
	FinishedAt          *time.Time `json:"finishedAt,omitempty"`
	UpdatedAt           *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
	SourceAppointmentID string     `json:"sourceAppointmentId,omitempty"`
}

func (h *HistoryRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return
}
