package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/services"
)

type IFPMappingHandler struct {
  mappingService services.IFPMappingService
}

func NewIFPMappingHandler(mappingService services.IFPMappingService) *IFPMappingHandler {
  return &IFPMappingHandler{mappingService: mappingService}
}

type locationMarkupRequest struct {
  Name   string  `json:"name"`
  Markup float64 `json:"markup"`
}

func toMarkupInputs(reqs []locationMarkupRequest) []services.LocationMarkupInput {
  out := make([]services.LocationMarkupInput, 0, len(reqs))
  for _, r := range reqs {
    out = append(out, services.LocationMarkupInput{Name: r.Name, Markup: r.Markup})
  }
  return out
}

func (ih *IFPMappingHandler) List(c *gin.Context) {
  mappings, err := ih.mappingService.List(c.Request.Context())
  if err != nil {
    RespondServiceError(c, err, "Failed to fetch mappings")
    return
  }
  c.JSON(http.StatusOK, mappings)
}

func (ih *IFPMappingHandler) Get(c *gin.Context) {
  mappingID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mapping id"})
    return
  }
  mapping, err := ih.mappingService.Get(c.Request.Context(), mappingID)
  if err != nil {
    RespondServiceError(c, err, "Failed to fetch mapping")
    return
  }
  c.JSON(http.StatusOK, mapping)
}

func (ih *IFPMappingHandler) Create(c *gin.Context) {
  var req struct {
    IfpKey          string                  `json:"ifpKey"`
    BtName          string                  `json:"btName"`
    CostGroup       bool                    `json:"costGroup"`
    LocationMarkups []locationMarkupRequest `json:"locationMarkups"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
    return
  }
  mapping, err := ih.mappingService.Create(c.Request.Context(), services.IFPMappingInput{
    IfpKey:          req.IfpKey,
    BtName:          req.BtName,
    CostGroup:       req.CostGroup,
    LocationMarkups: toMarkupInputs(req.LocationMarkups),
  })
  if err != nil {
    RespondServiceError(c, err, "Failed to create mapping")
    return
  }
  c.JSON(http.StatusCreated, mapping)
}

func (ih *IFPMappingHandler) Update(c *gin.Context) {
  mappingID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mapping id"})
    return
  }
  var req struct {
    IfpKey          *string                  `json:"ifpKey"`
    BtName          *string                  `json:"btName"`
    CostGroup       *bool                    `json:"costGroup"`
    LocationMarkups *[]locationMarkupRequest `json:"locationMarkups"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
    return
  }
  if req.IfpKey != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "ifpKey cannot be changed"})
    return
  }
  patch := services.IFPMappingPatch{
    BtName:    req.BtName,
    CostGroup: req.CostGroup,
  }
  if req.LocationMarkups != nil {
    patch.HasMarkups = true
    patch.LocationMarkups = toMarkupInputs(*req.LocationMarkups)
  }
  mapping, err := ih.mappingService.Update(c.Request.Context(), mappingID, patch)
  if err != nil {
    RespondServiceError(c, err, "Failed to update mapping")
    return
  }
  c.JSON(http.StatusOK, mapping)
}

func (ih *IFPMappingHandler) Delete(c *gin.Context) {
  mappingID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mapping id"})
    return
  }
  if err := ih.mappingService.Delete(c.Request.Context(), mappingID); err != nil {
    RespondServiceError(c, err, "Failed to delete mapping")
    return
  }
  c.JSON(http.StatusOK, gin.H{"success": true})
}
