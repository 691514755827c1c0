package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yad-anakin/diva/models"
)

// BookingPatch carries the recognized updatable booking fields, shared by
// appointments and history records. Nil fields are left untouched.
type BookingPatch struct {
	Buyer       *string
	When        *time.Time
	ServiceIDs  *models.StringList
	EmployeeIDs *models.StringList
	Currency    *string
	Overrides   *models.PriceMap
}

func (p BookingPatch) IsEmpty() bool {
	return p.Buyer == nil && p.When == nil && p.ServiceIDs == nil &&
		p.EmployeeIDs == nil && p.Currency == nil && p.Overrides == nil
}

func (p BookingPatch) applyToAppointment(a *models.Appointment) {
	if p.Buyer != nil {
		a.Buyer = *p.Buyer
	}
	if p.When != nil {
		a.When = *p.When
	}
	if p.ServiceIDs != nil {
		a.ServiceIDs = *p.ServiceIDs
	}
	if p.EmployeeIDs != nil {
		a.EmployeeIDs = *p.EmployeeIDs
	}
	if p.Currency != nil {
		a.Currency = *p.Currency
	}
	if p.Overrides != nil {
		a.Overrides = *p.Overrides
	}
}

// AppointmentStore owns the appointments table and the completion transfer
// into history.
type AppointmentStore struct {
	db *gorm.DB
}

func NewAppointmentStore(db *gorm.DB) *AppointmentStore {
	return &AppointmentStore{db: db}
}

func (s *AppointmentStore) List(ctx context.Context) ([]models.Appointment, error) {
	var items []models.Appointment
	if err := s.db.WithContext(ctx).Order(`"when" asc`).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return items, nil
}

func (s *AppointmentStore) Create(ctx context.Context, appointment *models.Appointment) error {
	if err := s.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (s *AppointmentStore) Update(ctx context.Context, id uuid.UUID, patch BookingPatch) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.WithContext(ctx).First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load appointment: %w", err)
	}

	patch.applyToAppointment(&appointment)

	if err := s.db.WithContext(ctx).Save(&appointment).Error; err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return &appointment, nil
}

func (s *AppointmentStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if result.Error != nil {
		return 0, fmt.Errorf("delete appointment: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *AppointmentStore) DeleteAll(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("1 = 1").Delete(&models.Appointment{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete appointments: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Complete moves an appointment into history. Insert and delete run in one
// transaction: a retried or concurrent completion either sees the row and
// wins, or finds nothing and fails with ErrNotFound, so history never gets a
// duplicate entry.
func (s *AppointmentStore) Complete(ctx context.Context, id uuid.UUID) (*models.HistoryRecord, error) {
	var record models.HistoryRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var appointment models.Appointment
		if err := tx.First(&appointment, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("load appointment: %w", err)
		}

		now := time.Now()
		created := appointment.CreatedAt
		if created.IsZero() {
			created = now
		}
		currency := appointment.Currency
		if currency == "" {
			currency = DefaultCurrency
		}

		record = models.HistoryRecord{
			Buyer:               appointment.Buyer,
			EmployeeIDs:         append(models.StringList{}, appointment.EmployeeIDs...),
			ServiceIDs:          append(models.StringList{}, appointment.ServiceIDs...),
			When:                appointment.When,
			Currency:            currency,
			Overrides:           appointment.Overrides,
			CreatedAt:           created,
			FinishedAt:          &now,
			SourceAppointmentID: appointment.ID.String(),
		}
		if record.Overrides == nil {
			record.Overrides = models.PriceMap{}
		}

		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("insert history record: %w", err)
		}
		if err := tx.Delete(&models.Appointment{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}
