package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/services"
)

type CostItemHandler struct {
  costItemService services.CostItemService
}

func NewCostItemHandler(costItemService services.CostItemService) *CostItemHandler {
  return &CostItemHandler{costItemService: costItemService}
}

func (ch *CostItemHandler) List(c *gin.Context) {
  var optionID *uuid.UUID
  if raw := c.Query("optionId"); raw != "" {
    parsed, err := uuid.Parse(raw)
    if err != nil {
      c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid option id"})
      return
    }
    optionID = &parsed
  }
  costItems, err := ch.costItemService.List(c.Request.Context(), optionID)
  if err != nil {
    RespondServiceError(c, err, "Failed to fetch cost items")
    return
  }
  c.JSON(http.StatusOK, costItems)
}

func (ch *CostItemHandler) Get(c *gin.Context) {
  costItemID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cost item id"})
    return
  }
  costItem, err := ch.costItemService.Get(c.Request.Context(), costItemID)
  if err != nil {
    RespondServiceError(c, err, "Failed to fetch cost item")
    return
  }
  c.JSON(http.StatusOK, costItem)
}

func (ch *CostItemHandler) Create(c *gin.Context) {
  var req struct {
    BtName    string `json:"btName"`
    CostGroup bool   `json:"costGroup"`
    IsDefault bool   `json:"isDefault"`
    OptionID  string `json:"optionId"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
    return
  }
  if req.OptionID == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Option ID is required"})
    return
  }
  optionID, err := uuid.Parse(req.OptionID)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid option id"})
    return
  }
  costItem, err := ch.costItemService.Create(c.Request.Context(), services.CostItemInput{
    BtName:    req.BtName,
    CostGroup: req.CostGroup,
    IsDefault: req.IsDefault,
    OptionID:  optionID,
  })
  if err != nil {
    RespondServiceError(c, err, "Failed to create cost item")
    return
  }
  c.JSON(http.StatusCreated, costItem)
}

func (ch *CostItemHandler) Update(c *gin.Context) {
  costItemID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cost item id"})
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
  costItem, err := ch.costItemService.Update(c.Request.Context(), costItemID, services.CostItemPatch{
    BtName:    req.BtName,
    CostGroup: req.CostGroup,
    IsDefault: req.IsDefault,
  })
  if err != nil {
    RespondServiceError(c, err, "Failed to update cost item")
    return
  }
  c.JSON(http.StatusOK, costItem)
}

func (ch *CostItemHandler) Delete(c *gin.Context) {
  costItemID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cost item id"})
    return
  }
  if err := ch.costItemService.Delete(c.Request.Context(), costItemID); err != nil {
    RespondServiceError(c, err, "Failed to delete cost item")
    return
  }
  c.JSON(http.StatusOK, gin.H{"success": true})
}
