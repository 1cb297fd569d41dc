package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/repos"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/services"
)

type OptionHandler struct {
  optionService services.OptionService
}

func NewOptionHandler(optionService services.OptionService) *OptionHandler {
  return &OptionHandler{optionService: optionService}
}

func (oh *OptionHandler) List(c *gin.Context) {
  var exteriorID *uuid.UUID
  if raw := c.Query("exteriorId"); raw != "" {
    parsed, err := uuid.Parse(raw)
    if err != nil {
      c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exterior id"})
      return
    }
    exteriorID = &parsed
  }
  projection := repos.OptionShallow
  if c.Query("includeCostItems") == "true" {
    projection = repos.OptionWithCostItems
  }
  options, err := oh.optionService.List(c.Request.Context(), exteriorID, projection)
  if err != nil {
    RespondServiceError(c, err, "Failed to fetch options")
    return
  }
  c.JSON(http.StatusOK, options)
}

func (oh *OptionHandler) Get(c *gin.Context) {
  optionID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid option id"})
    return
  }
  option, err := oh.optionService.Get(c.Request.Context(), optionID)
  if err != nil {
    RespondServiceError(c, err, "Failed to fetch option")
    return
  }
  c.JSON(http.StatusOK, option)
}

func (oh *OptionHandler) Create(c *gin.Context) {
  var req struct {
    Name       string `json:"name"`
    ExteriorID string `json:"exteriorId"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
    return
  }
  if req.ExteriorID == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Exterior ID is required"})
    return
  }
  exteriorID, err := uuid.Parse(req.ExteriorID)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exterior id"})
    return
  }
  option, err := oh.optionService.Create(c.Request.Context(), services.OptionInput{
    Name:       req.Name,
    ExteriorID: exteriorID,
  })
  if err != nil {
    RespondServiceError(c, err, "Failed to create option")
    return
  }
  c.JSON(http.StatusCreated, option)
}

func (oh *OptionHandler) Update(c *gin.Context) {
  optionID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid option id"})
    return
  }
  var req struct {
    Name *string `json:"name"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
    return
  }
  option, err := oh.optionService.Update(c.Request.Context(), optionID, services.OptionPatch{
    Name: req.Name,
  })
  if err != nil {
    RespondServiceError(c, err, "Failed to update option")
    return
  }
  c.JSON(http.StatusOK, option)
}

func (oh *OptionHandler) Delete(c *gin.Context) {
  optionID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid option id"})
    return
  }
  if err := oh.optionService.Delete(c.Request.Context(), optionID); err != nil {
    RespondServiceError(c, err, "Failed to delete option")
    return
  }
  c.JSON(http.StatusOK, gin.H{"success": true})
}
