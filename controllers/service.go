// controllers/service.go
package controllers

import (
	"context"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yad-anakin/diva/models"
	"github.com/yad-anakin/diva/store"
	"github.com/yad-anakin/diva/utils"
)

// ServiceStore is what the service endpoints need from the catalog.
type ServiceStore interface {
	List(ctx context.Context) ([]models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, id uuid.UUID, patch store.ServicePatch) (*models.Service, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type ServiceController struct {
	Store ServiceStore
	Log   *zap.Logger
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

// List returns all services sorted by name, seeding defaults into an empty
// catalog first.
func (sc *ServiceController) List(c *gin.Context) {
	services, err := sc.Store.List(c.Request.Context())
	if err != nil {
		sc.Log.Error("list services failed", zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to retrieve services")
		return
	}
	c.JSON(http.StatusOK, services)
}

func (sc *ServiceController) Create(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Price == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "name (string) and price (number) are required")
		return
	}

	service, err := store.NewService(input.Name, *input.Price)
	if err != nil {
		utils.RespondStoreError(c, err, "Failed to create service")
		return
	}

	if err := sc.Store.Create(c.Request.Context(), &service); err != nil {
		sc.Log.Error("create service failed", zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to create service")
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (sc *ServiceController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	patch := store.ServicePatch{Name: input.Name, Price: input.Price}
	if patch.IsEmpty() {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "name must not be empty")
		return
	}
	if patch.Price != nil && (math.IsNaN(*patch.Price) || math.IsInf(*patch.Price, 0) || *patch.Price < 0) {
		utils.RespondWithError(c, http.StatusBadRequest, "price must be a non-negative number")
		return
	}

	service, err := sc.Store.Update(c.Request.Context(), id, patch)
	if err != nil {
		sc.Log.Error("update service failed", zap.String("id", id.String()), zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to update service")
		return
	}
	c.JSON(http.StatusOK, service)
}

func (sc *ServiceController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	count, err := sc.Store.Delete(c.Request.Context(), id)
	if err != nil {
		sc.Log.Error("delete service failed", zap.String("id", id.String()), zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to delete service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}

func (sc *ServiceController) DeleteAll(c *gin.Context) {
	count, err := sc.Store.DeleteAll(c.Request.Context())
	if err != nil {
		sc.Log.Error("delete services failed", zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to delete services")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}
