package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/logger"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/types"
)

type OptionProjection int

const (
  OptionShallow OptionProjection = iota
  OptionWithCostItems
)

type OptionRepo interface {
  List(ctx context.Context, tx *gorm.DB, exteriorID *uuid.UUID, projection OptionProjection) ([]*types.Option, error)
  GetByID(ctx context.Context, tx *gorm.DB, optionID uuid.UUID, projection OptionProjection) (*types.Option, error)
  Create(ctx context.Context, tx *gorm.DB, option *types.Option) error
  Update(ctx context.Context, tx *gorm.DB, optionID uuid.UUID, updates map[string]interface{}) error
  DeleteByID(ctx context.Context, tx *gorm.DB, optionID uuid.UUID) (int64, error)
}

type optionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewOptionRepo(db *gorm.DB, baseLog *logger.Logger) OptionRepo {
  repoLog := baseLog.With("repo", "OptionRepo")
  return &optionRepo{db: db, log: repoLog}
}

func optionScope(q *gorm.DB, projection OptionProjection) *gorm.DB {
  q = q.Preload("Exterior")
  if projection == OptionWithCostItems {
    q = q.Preload("CostItems", func(db *gorm.DB) *gorm.DB { return db.Order("cost_item.bt_name asc") })
  }
  return q
}

func (or *optionRepo) List(ctx context.Context, tx *gorm.DB, exteriorID *uuid.UUID, projection OptionProjection) ([]*types.Option, error) {
  transaction := tx
  if transaction == nil {
    transaction = or.db
  }

  var results []*types.Option
  q := optionScope(transaction.WithContext(ctx), projection)
  if exteriorID != nil {
    q = q.Where("exterior_id = ?", *exteriorID)
  }
  if err := q.Order("name asc").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (or *optionRepo) GetByID(ctx context.Context, tx *gorm.DB, optionID uuid.UUID, projection OptionProjection) (*types.Option, error) {
  transaction := tx
  if transaction == nil {
    transaction = or.db
  }

  var result types.Option
  q := optionScope(transaction.WithContext(ctx), projection)
  if err := q.Where("id = ?", optionID).First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (or *optionRepo) Create(ctx context.Context, tx *gorm.DB, option *types.Option) error {
  transaction := tx
  if transaction == nil {
    transaction = or.db
  }

  return transaction.WithContext(ctx).Create(option).Error
}

func (or *optionRepo) Update(ctx context.Context, tx *gorm.DB, optionID uuid.UUID, updates map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = or.db
  }

  if len(updates) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Model(&types.Option{}).
    Where("id = ?", optionID).
    Updates(updates).Error
}

func (or *optionRepo) DeleteByID(ctx context.Context, tx *gorm.DB, optionID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = or.db
  }

  result := transaction.WithContext(ctx).
    Where("id = ?", optionID).
    Delete(&types.Option{})
  return result.RowsAffected, result.Error
}
