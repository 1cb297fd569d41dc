package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/repos"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/services"
)

type ExteriorHandler struct {
  exteriorService services.ExteriorService
}

func NewExteriorHandler(exteriorService services.ExteriorService) *ExteriorHandler {
  return &ExteriorHandler{exteriorService: exteriorService}
}

func (eh *ExteriorHandler) List(c *gin.Context) {
  var modelID *uuid.UUID
  if raw := c.Query("modelId"); raw != "" {
    parsed, err := uuid.Parse(raw)
    if err != nil {
      c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid model id"})
      return
    }
    modelID = &parsed
  }
  projection := repos.ExteriorShallow
  if c.Query("includeOptions") == "true" {
    projection = repos.ExteriorWithOptions
  }
  exteriors, err := eh.exteriorService.List(c.Request.Context(), modelID, projection)
  if err != nil {
    RespondServiceError(c, err, "Failed to fetch exteriors")
    return
  }
  c.JSON(http.StatusOK, exteriors)
}

func (eh *ExteriorHandler) Get(c *gin.Context) {
  exteriorID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exterior id"})
    return
  }
  exterior, err := eh.exteriorService.Get(c.Request.Context(), exteriorID)
  if err != nil {
    RespondServiceError(c, err, "Failed to fetch exterior")
    return
  }
  c.JSON(http.StatusOK, exterior)
}

func (eh *ExteriorHandler) Create(c *gin.Context) {
  var req struct {
    Name    string `json:"name"`
    ModelID string `json:"modelId"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
    return
  }
  if req.ModelID == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Model ID is required"})
    return
  }
  modelID, err := uuid.Parse(req.ModelID)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid model id"})
    return
  }
  exterior, err := eh.exteriorService.Create(c.Request.Context(), services.ExteriorInput{
    Name:    req.Name,
    ModelID: modelID,
  })
  if err != nil {
    RespondServiceError(c, err, "Failed to create exterior")
    return
  }
  c.JSON(http.StatusCreated, exterior)
}

func (eh *ExteriorHandler) Update(c *gin.Context) {
  exteriorID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exterior id"})
    return
  }
  var req struct {
    Name *string `json:"name"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
    return
  }
  exterior, err := eh.exteriorService.Update(c.Request.Context(), exteriorID, services.ExteriorPatch{
    Name: req.Name,
  })
  if err != nil {
    RespondServiceError(c, err, "Failed to update exterior")
    return
  }
  c.JSON(http.StatusOK, exterior)
}

func (eh *ExteriorHandler) Delete(c *gin.Context) {
  exteriorID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exterior id"})
    return
  }
  if err := eh.exteriorService.Delete(c.Request.Context(), exteriorID); err != nil {
    RespondServiceError(c, err, "Failed to delete exterior")
    return
  }
  c.JSON(http.StatusOK, gin.H{"success": true})
}
