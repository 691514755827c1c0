package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yad-anakin/diva/models"
)

// ServicePatch carries the recognized updatable service fields. Nil fields
// are left untouched.
type ServicePatch struct {
	Name  *string
	Price *float64
}

func (p ServicePatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil
}

// ServiceStore owns the services table.
type ServiceStore struct {
	db *gorm.DB
}

func NewServiceStore(db *gorm.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

// List returns all services sorted by name. An empty table is seeded with the
// default catalog first; the count is re-checked inside the transaction so
// concurrent first calls cannot seed twice.
func (s *ServiceStore) List(ctx context.Context) ([]models.Service, error) {
	var items []models.Service
	db := s.db.WithContext(ctx)
	if err := db.Order("name asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	if len(items) > 0 {
		return items, nil
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Service{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		defaults := DefaultServices()
		return tx.Create(&defaults).Error
	})
	if err != nil {
		return nil, fmt.Errorf("seed services: %w", err)
	}
	if err := db.Order("name asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return items, nil
}

func (s *ServiceStore) Create(ctx context.Context, service *models.Service) error {
	if err := s.db.WithContext(ctx).Create(service).Error; err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

func (s *ServiceStore) Update(ctx context.Context, id uuid.UUID, patch ServicePatch) (*models.Service, error) {
	var service models.Service
	if err := s.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load service: %w", err)
	}

	if patch.Name != nil {
		service.Name = *patch.Name
	}
	if patch.Price != nil {
		service.Price = *patch.Price
	}

	if err := s.db.WithContext(ctx).Save(&service).Error; err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return &service, nil
}

// Delete removes one service and reports how many rows went away. Deleting a
// missing id is not an error.
func (s *ServiceStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return 0, fmt.Errorf("delete service: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *ServiceStore) DeleteAll(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("1 = 1").Delete(&models.Service{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete services: %w", result.Error)
	}
	return result.RowsAffected, nil
}
