package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/logger"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/types"
)

type CostItemRepo interface {
  List(ctx context.Context, tx *gorm.DB, optionID *uuid.UUID) ([]*types.CostItem, error)
  GetByID(ctx context.Context, tx *gorm.DB, costItemID uuid.UUID) (*types.CostItem, error)
  Create(ctx context.Context, tx *gorm.DB, costItem *types.CostItem) error
  Update(ctx context.Context, tx *gorm.DB, costItemID uuid.UUID, updates map[string]interface{}) error
  DeleteByID(ctx context.Context, tx *gorm.DB, costItemID uuid.UUID) (int64, error)
}

type costItemRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewCostItemRepo(db *gorm.DB, baseLog *logger.Logger) CostItemRepo {
  repoLog := baseLog.With("repo", "CostItemRepo")
  return &costItemRepo{db: db, log: repoLog}
}

func (cr *costItemRepo) List(ctx context.Context, tx *gorm.DB, optionID *uuid.UUID) ([]*types.CostItem, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var results []*types.CostItem
  q := transaction.WithContext(ctx).Preload("Option")
  if optionID != nil {
    q = q.Where("option_id = ?", *optionID)
  }
  if err := q.Order("bt_name asc").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (cr *costItemRepo) GetByID(ctx context.Context, tx *gorm.DB, costItemID uuid.UUID) (*types.CostItem, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var result types.CostItem
  if err := transaction.WithContext(ctx).
    Preload("Option").
    Where("id = ?", costItemID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (cr *costItemRepo) Create(ctx context.Context, tx *gorm.DB, costItem *types.CostItem) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  return transaction.WithContext(ctx).Create(costItem).Error
}

func (cr *costItemRepo) Update(ctx context.Context, tx *gorm.DB, costItemID uuid.UUID, updates map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if len(updates) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Model(&types.CostItem{}).
    Where("id = ?", costItemID).
    Updates(updates).Error
}

func (cr *costItemRepo) DeleteByID(ctx context.Context, tx *gorm.DB, costItemID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  result := transaction.WithContext(ctx).
    Where("id = ?", costItemID).
    Delete(&types.CostItem{})
  return result.RowsAffected, result.Error
}
