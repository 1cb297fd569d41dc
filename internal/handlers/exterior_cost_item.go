package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/services"
)

type ExteriorCostItemHandler struct {
  itemService services.ExteriorCostItemService
}

func NewExteriorCostItemHandler(itemService services.ExteriorCostItemService) *ExteriorCostItemHandler {
  return &ExteriorCostItemHandler{itemService: itemService}
}

func (eh *ExteriorCostItemHandler) List(c *gin.Context) {
  var exteriorID *uuid.UUID
  if raw := c.Query("exteriorId"); raw != "" {
    parsed, err := uuid.Parse(raw)
    if err != nil {
      c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exterior id"})
      return
    }
    exteriorID = &parsed
  }
  items, err := eh.itemService.List(c.Request.Context(), exteriorID)
  if err != nil {
    RespondServiceError(c, err, "Failed to fetch exterior cost items")
    return
  }
  c.JSON(http.StatusOK, items)
}

func (eh *ExteriorCostItemHandler) Get(c *gin.Context) {
  itemID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exterior cost item id"})
    return
  }
  item, err := eh.itemService.Get(c.Request.Context(), itemID)
  if err != nil {
    RespondServiceError(c, err, "Failed to fetch exterior cost item")
    return
  }
  c.JSON(http.StatusOK, item)
}

func (eh *ExteriorCostItemHandler) Create(c *gin.Context) {
  var req struct {
    BtName     string `json:"btName"`
    CostGroup  bool   `json:"costGroup"`
    IsDefault  bool   `json:"isDefault"`
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
  item, err := eh.itemService.Create(c.Request.Context(), services.ExteriorCostItemInput{
    BtName:     req.BtName,
    CostGroup:  req.CostGroup,
    IsDefault:  req.IsDefault,
    ExteriorID: exteriorID,
  })
  if err != nil {
    RespondServiceError(c, err, "Failed to create exterior cost item")
    return
  }
  c.JSON(http.StatusCreated, item)
}

func (eh *ExteriorCostItemHandler) Update(c *gin.Context) {
  itemID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exterior cost item id"})
    return
  }
  var req struct {
    BtName    *string `json:"btName"`
    CostGroup *bool   `json:"costGroup"`
    IsDefault *bool   `json:"isDefault"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
    return
  }
  item, err := eh.itemService.Update(c.Request.Context(), itemID, services.ExteriorCostItemPatch{
    BtName:    req.BtName,
    CostGroup: req.CostGroup,
    IsDefault: req.IsDefault,
  })
  if err != nil {
    RespondServiceError(c, err, "Failed to update exterior cost item")
    return
  }
  c.JSON(http.StatusOK, item)
}

func (eh *ExteriorCostItemHandler) Delete(c *gin.Context) {
  itemID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exterior cost item id"})
    return
  }
  if err := eh.itemService.Delete(c.Request.Context(), itemID); err != nil {
    RespondServiceError(c, err, "Failed to delete exterior cost item")
    return
  }
  c.JSON(http.StatusOK, gin.H{"success": true})
}
