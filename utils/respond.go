// utils/respond.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yad-anakin/diva/store"
)

// RespondWithError writes the uniform error body.
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// RespondStoreError maps a store failure to its HTTP status. Internal detail
// never reaches the response body; callers log the error with context.
func RespondStoreError(c *gin.Context, err error, fallback string) {
	switch {
	case store.IsValidation(err):
		RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		RespondWithError(c, http.StatusNotFound, "Not found")
	default:
		RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}

// NoStore disables response caching; the data behind every API route changes
// too often to serve stale.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
		c.Next()
	}
}
