// controllers/history.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yad-anakin/diva/models"
	"github.com/yad-anakin/diva/store"
	"github.com/yad-anakin/diva/utils"
)

// HistoryStore is what the history endpoints need. Ids are plain strings
// here; the store normalizes them.
type HistoryStore interface {
	List(ctx context.Context, filter store.HistoryFilter) ([]models.HistoryRecord, error)
	Create(ctx context.Context, record *models.HistoryRecord) error
	Patch(ctx context.Context, id string, patch store.BookingPatch) (*models.HistoryRecord, error)
	Delete(ctx context.Context, id string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type HistoryController struct {
	Store HistoryStore
	Log   *zap.Logger
}

type CreateHistoryInput struct {
	store.BookingInput
	SourceAppointmentID string `json:"sourceAppointmentId"`
}

// List returns finalized bookings, newest first. An optional ?date=YYYY-MM-DD
// narrows the result to that local calendar day of the booking instant.
func (hc *HistoryController) List(c *gin.Context) {
	var filter store.HistoryFilter
	if date := c.Query("date"); date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		start, end := utils.DayRange(day)
		filter.From = &start
		filter.To = &end
	}

	records, err := hc.Store.List(c.Request.Context(), filter)
	if err != nil {
		hc.Log.Error("list history failed", zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to retrieve history")
		return
	}
	c.JSON(http.StatusOK, records)
}

func (hc *HistoryController) Create(c *gin.Context) {
	var input CreateHistoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	record, err := store.NewHistoryRecord(input.BookingInput, input.SourceAppointmentID)
	if err != nil {
		utils.RespondStoreError(c, err, "Failed to create history record")
		return
	}

	if err := hc.Store.Create(c.Request.Context(), &record); err != nil {
		hc.Log.Error("create history record failed", zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to create history record")
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (hc *HistoryController) Patch(c *gin.Context) {
	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	patch, err := input.toPatch()
	if err != nil {
		utils.RespondStoreError(c, err, "Failed to update history record")
		return
	}

	record, err := hc.Store.Patch(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		hc.Log.Error("patch history record failed", zap.String("id", c.Param("id")), zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to update history record")
		return
	}
	c.JSON(http.StatusOK, record)
}

// Delete removes one record. Unlike the other stores this endpoint reports
// 404 when nothing matched, since the UI deletes rows it is looking at.
func (hc *HistoryController) Delete(c *gin.Context) {
	count, err := hc.Store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		hc.Log.Error("delete history record failed", zap.String("id", c.Param("id")), zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to delete history record")
		return
	}
	if count == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (hc *HistoryController) DeleteAll(c *gin.Context) {
	count, err := hc.Store.DeleteAll(c.Request.Context())
	if err != nil {
		hc.Log.Error("delete history failed", zap.Error(err))
		utils.RespondStoreError(c, err, "Failed to delete history")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}
