package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yad-anakin/diva/models"
)

type EmployeePatch struct {
	Name *string
}

func (p EmployeePatch) IsEmpty() bool {
	return p.Name == nil
}

// EmployeeStore owns the employees table.
type EmployeeStore struct {
	db *gorm.DB
}

func NewEmployeeStore(db *gorm.DB) *EmployeeStore {
	return &EmployeeStore{db: db}
}

// List returns all employees sorted by name, seeding the default staff list
// into an empty table first. See ServiceStore.List for the seeding contract.
func (s *EmployeeStore) List(ctx context.Context) ([]models.Employee, error) {
	var items []models.Employee
	db := s.db.WithContext(ctx)
	if err := db.Order("name asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	if len(items) > 0 {
		return items, nil
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Employee{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		defaults := DefaultEmployees()
		return tx.Create(&defaults).Error
	})
	if err != nil {
		return nil, fmt.Errorf("seed employees: %w", err)
	}
	if err := db.Order("name asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return items, nil
}

func (s *EmployeeStore) Create(ctx context.Context, employee *models.Employee) error {
	if err := s.db.WithContext(ctx).Create(employee).Error; err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

func (s *EmployeeStore) Update(ctx context.Context, id uuid.UUID, patch EmployeePatch) (*models.Employee, error) {
	var employee models.Employee
	if err := s.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load employee: %w", err)
	}

	if patch.Name != nil {
		employee.Name = *patch.Name
	}

	if err := s.db.WithContext(ctx).Save(&employee).Error; err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return &employee, nil
}

func (s *EmployeeStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&models.Employee{}, "id = ?", id)
	if result.Error != nil {
		return 0, fmt.Errorf("delete employee: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *EmployeeStore) DeleteAll(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("1 = 1").Delete(&models.Employee{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete employees: %w", result.Error)
	}
	return result.RowsAffected, nil
}
