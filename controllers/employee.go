// controllers/employee.go
package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yad-anakin/diva/models"
	"github.com/yad-anakin/diva/store"
	"github.com/yad-anakin/diva/utils"
)

// EmployeeStore is what the employee endpoints need from the catalog.
type EmployeeStore interface {
	List(ctx context.Context) ([]models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) error
	Update(ctx context.Context, id uuid.UUID, patch store.EmployeePatch) (*models.Employee, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type EmployeeController struct {
	Store EmployeeStore
	Log   *zap.Logger
}

type CreateEmployeeInput struct {
	Name string `json:"name"`
}

type UpdateEmployeeInput struct {
	Name *string `json:"name"`
}

func (ec *EmployeeController) List(c *gin.Context) {
	employees, err := ec.Store.List(c.Request.Context())
	if err != nil {
		ec.Log.Error("list employees failed", zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to retrieve employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (ec *EmployeeController) Create(c *gin.Context) {
	var input CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	employee, err := store.NewEmployee(input.Name)
	if err != nil {
		utils.RespondStoreError(c, err, "Failed to create employee")
		return
	}

	if err := ec.Store.Create(c.Request.Context(), &employee); err != nil {
		ec.Log.Error("create employee failed", zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (ec *EmployeeController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	var input UpdateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	patch := store.EmployeePatch{Name: input.Name}
	if patch.IsEmpty() {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "name must not be empty")
		return
	}

	employee, err := ec.Store.Update(c.Request.Context(), id, patch)
	if err != nil {
		ec.Log.Error("update employee failed", zap.String("id", id.String()), zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (ec *EmployeeController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	count, err := ec.Store.Delete(c.Request.Context(), id)
	if err != nil {
		ec.Log.Error("delete employee failed", zap.String("id", id.String()), zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to delete employee")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}

func (ec *EmployeeController) DeleteAll(c *gin.Context) {
	count, err := ec.Store.DeleteAll(c.Request.Context())
	if err != nil {
		ec.Log.Error("delete employees failed", zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to delete employees")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}
