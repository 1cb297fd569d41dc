package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/repos"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/services"
)

type ModelHandler struct {
  modelService services.ModelService
}

func NewModelHandler(modelService services.ModelService) *ModelHandler {
  return &ModelHandler{modelService: modelService}
}

func (mh *ModelHandler) List(c *gin.Context) {
  projection := repos.ModelShallow
  if c.Query("includeExteriors") == "true" {
    projection = repos.ModelWithTree
  }
  models, err := mh.modelService.List(c.Request.Context(), projection)
  if err != nil {
    RespondServiceError(c, err, "Failed to fetch models")
    return
  }
  c.JSON(http.StatusOK, models)
}

func (mh *ModelHandler) Get(c *gin.Context) {
  modelID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid model id"})
    return
  }
  model, err := mh.modelService.Get(c.Request.Context(), modelID)
  if err != nil {
    RespondServiceError(c, err, "Failed to fetch model")
    return
  }
  c.JSON(http.StatusOK, model)
}

func (mh *ModelHandler) Create(c *gin.Context) {
  var req struct {
    Name        string  `json:"name"`
    Description *string `json:"description"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
    return
  }
  model, err := mh.modelService.Create(c.Request.Context(), services.ModelInput{
    Name:        req.Name,
    Description: req.Description,
  })
  if err != nil {
    RespondServiceError(c, err, "Failed to create model")
    return
  }
  c.JSON(http.StatusCreated, model)
}

func (mh *ModelHandler) Update(c *gin.Context) {
  modelID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid model id"})
    return
  }
  var req struct {
    Name        *string `json:"name"`
    Description *string `json:"description"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
    return
  }
  model, err := mh.modelService.Update(c.Request.Context(), modelID, services.ModelPatch{
    Name:        req.Name,
    Description: req.Description,
  })
  if err != nil {
    RespondServiceError(c, err, "Failed to update model")
    return
  }
  c.JSON(http.StatusOK, model)
}

func (mh *ModelHandler) Delete(c *gin.Context) {
  modelID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid model id"})
    return
  }
  if err := mh.modelService.Delete(c.Request.Context(), modelID); err != nil {
    RespondServiceError(c, err, "Failed to delete model")
    return
  }
  c.JSON(http.StatusOK, gin.H{"success": true})
}
