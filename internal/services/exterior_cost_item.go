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

var exteriorCostItemMessages = storeErrorMessages{
  notFound:      "Exterior cost item not found",
  duplicate:     "A cost item with this BT name already exists for this exterior",
  parentMissing: "Exterior not found",
}

type ExteriorCostItemInput struct {
  BtName     string
  CostGroup  bool
  IsDefault  bool
  ExteriorID uuid.UUID
}

type ExteriorCostItemPatch struct {
  BtName    *string
  CostGroup *bool
  IsDefault *bool
}

type ExteriorCostItemService interface {
  List(ctx context.Context, exteriorID *uuid.UUID) ([]*types.ExteriorCostItem, error)
  Get(ctx context.Context, itemID uuid.UUID) (*types.ExteriorCostItem, error)
  Create(ctx context.Context, input ExteriorCostItemInput) (*types.ExteriorCostItem, error)
  Update(ctx context.Context, itemID uuid.UUID, patch ExteriorCostItemPatch) (*types.ExteriorCostItem, error)
  Delete(ctx context.Context, itemID uuid.UUID) error
}

type exteriorCostItemService struct {
  db       *gorm.DB
  log      *logger.Logger
  itemRepo repos.ExteriorCostItemRepo
}

func NewExteriorCostItemService(db *gorm.DB, log *logger.Logger, itemRepo repos.ExteriorCostItemRepo) ExteriorCostItemService {
  serviceLog := log.With("service", "ExteriorCostItemService")
  return &exteriorCostItemService{db: db, log: serviceLog, itemRepo: itemRepo}
}

func (es *exteriorCostItemService) List(ctx context.Context, exteriorID *uuid.UUID) ([]*types.ExteriorCostItem, error) {
  items, err := es.itemRepo.List(ctx, nil, exteriorID)
  if err != nil {
    es.log.Error("Failed to list exterior cost items", "error", err)
    return nil, apierr.Internal(err)
  }
  return items, nil
}

func (es *exteriorCostItemService) Get(ctx context.Context, itemID uuid.UUID) (*types.ExteriorCostItem, error) {
  item, err := es.itemRepo.GetByID(ctx, nil, itemID)
  if err != nil {
    return nil, translateStoreError(err, exteriorCostItemMessages)
  }
  return item, nil
}

func (es *exteriorCostItemService) Create(ctx context.Context, input ExteriorCostItemInput) (*types.ExteriorCostItem, error) {
  btName := normalization.TrimInputString(input.BtName)
  if btName == "" {
    return nil, apierr.Validation("BT name is required")
  }
  if input.ExteriorID == uuid.Nil {
    return nil, apierr.Validation("Exterior ID is required")
  }

  item := types.ExteriorCostItem{
    ID:         uuid.New(),
    BtName:     btName,
    CostGroup:  input.CostGroup,
    IsDefault:  input.IsDefault,
    ExteriorID: input.ExteriorID,
  }
  if err := es.itemRepo.Create(ctx, nil, &item); err != nil {
    return nil, translateStoreError(err, exteriorCostItemMessages)
  }
  created, err := es.itemRepo.GetByID(ctx, nil, item.ID)
  if err != nil {
    return nil, translateStoreError(err, exteriorCostItemMessages)
  }
  return created, nil
}

func (es *exteriorCostItemService) Update(ctx context.Context, itemID uuid.UUID, patch ExteriorCostItemPatch) (*types.ExteriorCostItem, error) {
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

  var updated *types.ExteriorCostItem
  err := es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, err := es.itemRepo.GetByID(ctx, tx, itemID); err != nil {
      return translateStoreError(err, exteriorCostItemMessages)
    }
    if err := es.itemRepo.Update(ctx, tx, itemID, updates); err != nil {
      return translateStoreError(err, exteriorCostItemMessages)
    }
    item, err := es.itemRepo.GetByID(ctx, tx, itemID)
    if err != nil {
      return translateStoreError(err, exteriorCostItemMessages)
    }
    updated = item
    return nil
  })
  if err != nil {
    return nil, apierr.From(err)
  }
  return updated, nil
}

func (es *exteriorCostItemService) Delete(ctx context.Context, itemID uuid.UUID) error {
  rows, err := es.itemRepo.DeleteByID(ctx, nil, itemID)
  if err != nil {
    es.log.Error("Failed to delete exterior cost item", "item_id", itemID, "error", err)
    return apierr.Internal(err)
  }
  if rows == 0 {
    return apierr.NotFound("%s", exteriorCostItemMessages.notFound)
  }
  return nil
}
