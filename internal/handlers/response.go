package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/apierr"
)

// RespondServiceError maps a service error onto the wire contract: expected
// outcomes keep their own status and message, internal failures collapse to a
// caller-facing fallback with no detail.
func RespondServiceError(c *gin.Context, err error, fallback string) {
  apiErr := apierr.From(err)
  if apiErr.Code == apierr.CodeInternal {
    c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
    return
  }
  c.JSON(apiErr.Status, gin.H{"error": apiErr.Error()})
}
