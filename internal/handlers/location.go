package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/services"
)

type LocationHandler struct {
  locationService services.LocationService
}

func NewLocationHandler(locationService services.LocationService) *LocationHandler {
  return &LocationHandler{locationService: locationService}
}

func (lh *LocationHandler) List(c *gin.Context) {
  locations, err := lh.locationService.List(c.Request.Context())
  if err != nil {
    RespondServiceError(c, err, "Failed to fetch locations")
    return
  }
  c.JSON(http.StatusOK, locations)
}

func (lh *LocationHandler) Get(c *gin.Context) {
  locationID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location id"})
    return
  }
  location, err := lh.locationService.Get(c.Request.Context(), locationID)
  if err != nil {
    RespondServiceError(c, err, "Failed to fetch location")
    return
  }
  c.JSON(http.StatusOK, location)
}

func (lh *LocationHandler) Create(c *gin.Context) {
  var req struct {
    Name   string   `json:"name"`
    Markup *float64 `json:"markup"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
    return
  }
  if req.Markup == nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "name and markup are required"})
    return
  }
  location, err := lh.locationService.Create(c.Request.Context(), services.LocationInput{
    Name:   req.Name,
    Markup: *req.Markup,
  })
  if err != nil {
    RespondServiceError(c, err, "Failed to create location")
    return
  }
  c.JSON(http.StatusCreated, location)
}

func (lh *LocationHandler) Update(c *gin.Context) {
  locationID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location id"})
    return
  }
  var req struct {
    Name   *string  `json:"name"`
    Markup *float64 `json:"markup"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
    return
  }
  location, err := lh.locationService.Update(c.Request.Context(), locationID, services.LocationPatch{
    Name:   req.Name,
    Markup: req.Markup,
  })
  if err != nil {
    RespondServiceError(c, err, "Failed to update location")
    return
  }
  c.JSON(http.StatusOK, location)
}

func (lh *LocationHandler) Delete(c *gin.Context) {
  locationID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location id"})
    return
  }
  if err := lh.locationService.Delete(c.Request.Context(), locationID); err != nil {
    RespondServiceError(c, err, "Failed to delete location")
    return
  }
  c.JSON(http.StatusOK, gin.H{"success": true})
}
