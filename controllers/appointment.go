// controllers/appointment.go
package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yad-anakin/diva/models"
	"github.com/yad-anakin/diva/store"
	"github.com/yad-anakin/diva/utils"
)

// AppointmentStore is what the appointment endpoints need, including the
// completion transfer into history.
type AppointmentStore interface {
	List(ctx context.Context) ([]models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) error
	Update(ctx context.Context, id uuid.UUID, patch store.BookingPatch) (*models.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Complete(ctx context.Context, id uuid.UUID) (*models.HistoryRecord, error)
}

type AppointmentController struct {
	Store AppointmentStore
	Log   *zap.Logger
}

// UpdateBookingInput defines the accepted partial-update fields, shared with
// history patches. Absent fields stay untouched.
type UpdateBookingInput struct {
	Buyer       *string             `json:"buyer"`
	When        *string             `json:"when"`
	ServiceIDs  *[]string           `json:"serviceIds"`
	EmployeeIDs *[]string           `json:"employeeIds"`
	Currency    *string             `json:"currency"`
	Overrides   *map[string]float64 `json:"overrides"`
}

// toPatch converts the wire shape to a store patch, parsing the timestamp.
func (in UpdateBookingInput) toPatch() (store.BookingPatch, error) {
	patch := store.BookingPatch{
		Buyer:    in.Buyer,
		Currency: in.Currency,
	}
	if in.When != nil {
		when, err := store.ParseWhen(*in.When)
		if err != nil {
			return store.BookingPatch{}, err
		}
		patch.When = &when
	}
	if in.ServiceIDs != nil {
		ids := models.StringList(*in.ServiceIDs)
		patch.ServiceIDs = &ids
	}
	if in.EmployeeIDs != nil {
		ids := models.StringList(*in.EmployeeIDs)
		patch.EmployeeIDs = &ids
	}
	if in.Overrides != nil {
		overrides := models.PriceMap(*in.Overrides)
		patch.Overrides = &overrides
	}
	return patch, nil
}

// List returns all upcoming bookings sorted by their instant.
func (ac *AppointmentController) List(c *gin.Context) {
	appointments, err := ac.Store.List(c.Request.Context())
	if err != nil {
		ac.Log.Error("list appointments failed", zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to retrieve appointments")
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (ac *AppointmentController) Create(c *gin.Context) {
	var input store.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appointment, err := store.NewAppointment(input)
	if err != nil {
		utils.RespondStoreError(c, err, "Failed to create appointment")
		return
	}

	if err := ac.Store.Create(c.Request.Context(), &appointment); err != nil {
		ac.Log.Error("create appointment failed", zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to create appointment")
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

func (ac *AppointmentController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	patch, err := input.toPatch()
	if err != nil {
		utils.RespondStoreError(c, err, "Failed to update appointment")
		return
	}
	if patch.IsEmpty() {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	appointment, err := ac.Store.Update(c.Request.Context(), id, patch)
	if err != nil {
		ac.Log.Error("update appointment failed", zap.String("id", id.String()), zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to update appointment")
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (ac *AppointmentController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	count, err := ac.Store.Delete(c.Request.Context(), id)
	if err != nil {
		ac.Log.Error("delete appointment failed", zap.String("id", id.String()), zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to delete appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}

func (ac *AppointmentController) DeleteAll(c *gin.Context) {
	count, err := ac.Store.DeleteAll(c.Request.Context())
	if err != nil {
		ac.Log.Error("delete appointments failed", zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to delete appointments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}

// Complete moves a booking into history and returns the created record.
// Completing an id that is already gone is a 404; history stays untouched.
func (ac *AppointmentController) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	record, err := ac.Store.Complete(c.Request.Context(), id)
	if err != nil {
		ac.Log.Error("complete appointment failed", zap.String("id", id.String()), zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to complete appointment")
		return
	}
	c.JSON(http.StatusCreated, record)
}
