package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/logger"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/types"
)

type ExteriorCostItemRepo interface {
  List(ctx context.Context, tx *gorm.DB, exteriorID *uuid.UUID) ([]*types.ExteriorCostItem, error)
  GetByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (*types.ExteriorCostItem, error)
  Create(ctx context.Context, tx *gorm.DB, item *types.ExteriorCostItem) error
  Update(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, updates map[string]interface{}) error
  DeleteByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (int64, error)
}

type exteriorCostItemRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewExteriorCostItemRepo(db *gorm.DB, baseLog *logger.Logger) ExteriorCostItemRepo {
  repoLog := baseLog.With("repo", "ExteriorCostItemRepo")
  return &exteriorCostItemRepo{db: db, log: repoLog}
}

func (er *exteriorCostItemRepo) List(ctx context.Context, tx *gorm.DB, exteriorID *uuid.UUID) ([]*types.ExteriorCostItem, error) {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  var results []*types.ExteriorCostItem
  q := transaction.WithContext(ctx).Preload("Exterior")
  if exteriorID != nil {
    q = q.Where("exterior_id = ?", *exteriorID)
  }
  if err := q.Order("bt_name asc").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (er *exteriorCostItemRepo) GetByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (*types.ExteriorCostItem, error) {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  var result types.ExteriorCostItem
  if err := transaction.WithContext(ctx).
    Preload("Exterior").
    Where("id = ?", itemID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (er *exteriorCostItemRepo) Create(ctx context.Context, tx *gorm.DB, item *types.ExteriorCostItem) error {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  return transaction.WithContext(ctx).Create(item).Error
}

func (er *exteriorCostItemRepo) Update(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, updates map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  if len(updates) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Model(&types.ExteriorCostItem{}).
    Where("id = ?", itemID).
    Updates(updates).Error
}

func (er *exteriorCostItemRepo) DeleteByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  result := transaction.WithContext(ctx).
    Where("id = ?", itemID).
    Delete(&types.ExteriorCostItem{})
  return result.RowsAffected, result.Error
}
