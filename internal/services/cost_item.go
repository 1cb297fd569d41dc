package services

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/apierr"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/logger"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/normalization"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/repos"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/types"
)

var costItemMessages = storeErrorMessages{
  notFound:      "Cost item not found",
  duplicate:     "A cost item with this BT name already exists for this option",
  parentMissing: "Option not found",
}

type CostItemInput struct {
  BtName    string
  CostGroup bool
  IsDefault bool
  OptionID  uuid.UUID
}

type CostItemPatch struct {
  BtName    *string
  CostGroup *bool
  IsDefault *bool
}

type CostItemService interface {
  List(ctx context.Context, optionID *uuid.UUID) ([]*types.CostItem, error)
  Get(ctx context.Context, costItemID uuid.UUID) (*types.CostItem, error)
  Create(ctx context.Context, input CostItemInput) (*types.CostItem, error)
  Update(ctx context.Context, costItemID uuid.UUID, patch CostItemPatch) (*types.CostItem, error)
  Delete(ctx context.Context, costItemID uuid.UUID) error
}

type costItemService struct {
  db           *gorm.DB
  log          *logger.Logger
  costItemRepo repos.CostItemRepo
}

func NewCostItemService(db *gorm.DB, log *logger.Logger, costItemRepo repos.CostItemRepo) CostItemService {
  serviceLog := log.With("service", "CostItemService")
  return &costItemService{db: db, log: serviceLog, costItemRepo: costItemRepo}
}

func (cs *costItemService) List(ctx context.Context, optionID *uuid.UUID) ([]*types.CostItem, error) {
  costItems, err := cs.costItemRepo.List(ctx, nil, optionID)
  if err != nil {
    cs.log.Error("Failed to list cost items", "error", err)
    return nil, apierr.Internal(err)
  }
  return costItems, nil
}

func (cs *costItemService) Get(ctx context.Context, costItemID uuid.UUID) (*types.CostItem, error) {
  costItem, err := cs.costItemRepo.GetByID(ctx, nil, costItemID)
  if err != nil {
    return nil, translateStoreError(err, costItemMessages)
  }
  return costItem, nil
}

func (cs *costItemService) Create(ctx context.Context, input CostItemInput) (*types.CostItem, error) {
  btName := normalization.TrimInputString(input.BtName)
  if btName == "" {
    return nil, apierr.Validation("BT name is required")
  }
  if input.OptionID == uuid.Nil {
    return nil, apierr.Validation("Option ID is required")
  }

  costItem := types.CostItem{
    ID:        uuid.New(),
    BtName:    btName,
    CostGroup: input.CostGroup,
    IsDefault: input.IsDefault,
    OptionID:  input.OptionID,
  }
  if err := cs.costItemRepo.Create(ctx, nil, &costItem); err != nil {
    return nil, translateStoreError(err, costItemMessages)
  }
  created, err := cs.costItemRepo.GetByID(ctx, nil, costItem.ID)
  if err != nil {
    return nil, translateStoreError(err, costItemMessages)
  }
  return created, nil
}

func (cs *costItemService) Update(ctx context.Context, costItemID uuid.UUID, patch CostItemPatch) (*types.CostItem, error) {
  updates := map[string]interface{}{}
  if patch.BtName != nil {
    btName := normalization.TrimInputString(*patch.BtName)
    if btName == "" {
      return nil, apierr.Validation("BT name is required")
    }
    updates["bt_name"] = btName
  }
  if patch.CostGroup != nil {
    updates["cost_group"] = *patch.CostGroup
  }
  if patch.IsDefault != nil {
    updates["is_default"] = *patch.IsDefault
  }

  var updated *types.CostItem
  err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, err := cs.costItemRepo.GetByID(ctx, tx, costItemID); err != nil {
      return translateStoreError(err, costItemMessages)
    }
    if err := cs.costItemRepo.Update(ctx, tx, costItemID, updates); err != nil {
      return translateStoreError(err, costItemMessages)
    }
    costItem, err := cs.costItemRepo.GetByID(ctx, tx, costItemID)
    if err != nil {
      return translateStoreError(err, costItemMessages)
    }
    updated = costItem
    return nil
  })
  if err != nil {
    return nil, apierr.From(err)
  }
  return updated, nil
}

func (cs *costItemService) Delete(ctx context.Context, costItemID uuid.UUID) error {
  rows, err := cs.costItemRepo.DeleteByID(ctx, nil, costItemID)
  if err != nil {
    cs.log.Error("Failed to delete cost item", "cost_item_id", costItemID, "error", err)
    return apierr.Internal(err)
  }
  if rows == 0 {
    return apierr.NotFound("%s", costItemMessages.notFound)
  }
  return nil
}
