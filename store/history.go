package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yad-anakin/diva/models"
)

// HistoryFilter narrows a history listing to a half-open time window on the
// booking instant: From inclusive, To exclusive.
type HistoryFilter struct {
	From *time.Time
	To   *time.Time
}

// HistoryStore owns the history table.
type HistoryStore struct {
	db *gorm.DB
}

func NewHistoryStore(db *gorm.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

func (s *HistoryStore) List(ctx context.Context, filter HistoryFilter) ([]models.HistoryRecord, error) {
	q := s.db.WithContext(ctx).Order("created_at desc")
	if filter.From != nil {
		q = q.Where(`"when" >= ?`, *filter.From)
	}
	if filter.To != nil {
		q = q.Where(`"when" < ?`, *filter.To)
	}
	var items []models.HistoryRecord
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return items, nil
}

func (s *HistoryStore) Create(ctx context.Context, record *models.HistoryRecord) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("create history record: %w", err)
	}
	return nil
}

// Patch applies a partial update and always stamps UpdatedAt. The id may be a
// store-assigned uuid or a seeded external string; NormalizeID is the only
// gatekeeper.
func (s *HistoryStore) Patch(ctx context.Context, id string, patch BookingPatch) (*models.HistoryRecord, error) {
	id, err := NormalizeID(id)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, ValidationError("no fields to update")
	}

	var record models.HistoryRecord
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load history record: %w", err)
	}

	if patch.Buyer != nil {
		record.Buyer = *patch.Buyer
	}
	if patch.When != nil {
		record.When = *patch.When
	}
	if patch.ServiceIDs != nil {
		record.ServiceIDs = *patch.ServiceIDs
	}
	if patch.EmployeeIDs != nil {
		record.EmployeeIDs = *patch.EmployeeIDs
	}
	if patch.Currency != nil {
		record.Currency = *patch.Currency
	}
	if patch.Overrides != nil {
		record.Overrides = *patch.Overrides
	}
	now := time.Now()
	record.UpdatedAt = &now

	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, fmt.Errorf("update history record: %w", err)
	}
	return &record, nil
}

func (s *HistoryStore) Delete(ctx context.Context, id string) (int64, error) {
	id, err := NormalizeID(id)
	if err != nil {
		return 0, err
	}
	result := s.db.WithContext(ctx).Delete(&models.HistoryRecord{}, "id = ?", id)
	if result.Error != nil {
		return 0, fmt.Errorf("delete history record: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *HistoryStore) DeleteAll(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("1 = 1").Delete(&models.HistoryRecord{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete history: %w", result.Error)
	}
	return result.RowsAffected, nil
}
