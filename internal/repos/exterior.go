package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/logger"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/types"
)

// ExteriorShallow still loads the owning model; list consumers always render
// the parent name next to the exterior.
type ExteriorProjection int

const (
  ExteriorShallow ExteriorProjection = iota
  ExteriorWithOptions
)

type ExteriorRepo interface {
  List(ctx context.Context, tx *gorm.DB, modelID *uuid.UUID, projection ExteriorProjection) ([]*types.Exterior, error)
  GetByID(ctx context.Context, tx *gorm.DB, exteriorID uuid.UUID, projection ExteriorProjection) (*types.Exterior, error)
  Create(ctx context.Context, tx *gorm.DB, exterior *types.Exterior) error
  Update(ctx context.Context, tx *gorm.DB, exteriorID uuid.UUID, updates map[string]interface{}) error
  DeleteByID(ctx context.Context, tx *gorm.DB, exteriorID uuid.UUID) (int64, error)
}

type exteriorRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewExteriorRepo(db *gorm.DB, baseLog *logger.Logger) ExteriorRepo {
  repoLog := baseLog.With("repo", "ExteriorRepo")
  return &exteriorRepo{db: db, log: repoLog}
}

func exteriorScope(q *gorm.DB, projection ExteriorProjection) *gorm.DB {
  q = q.Preload("Model")
  if projection == ExteriorWithOptions {
    q = q.
      Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("model_option.name asc") }).
      Preload("Options.CostItems", func(db *gorm.DB) *gorm.DB { return db.Order("cost_item.bt_name asc") })
  }
  return q
}

func (er *exteriorRepo) List(ctx context.Context, tx *gorm.DB, modelID *uuid.UUID, projection ExteriorProjection) ([]*types.Exterior, error) {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  var results []*types.Exterior
  q := exteriorScope(transaction.WithContext(ctx), projection)
  if modelID != nil {
    q = q.Where("model_id = ?", *modelID)
  }
  if err := q.Order("name asc").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (er *exteriorRepo) GetByID(ctx context.Context, tx *gorm.DB, exteriorID uuid.UUID, projection ExteriorProjection) (*types.Exterior, error) {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  var result types.Exterior
  q := exteriorScope(transaction.WithContext(ctx), projection)
  if err := q.Where("id = ?", exteriorID).First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (er *exteriorRepo) Create(ctx context.Context, tx *gorm.DB, exterior *types.Exterior) error {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  return transaction.WithContext(ctx).Create(exterior).Error
}

func (er *exteriorRepo) Update(ctx context.Context, tx *gorm.DB, exteriorID uuid.UUID, updates map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  if len(updates) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Model(&types.Exterior{}).
    Where("id = ?", exteriorID).
    Updates(updates).Error
}

func (er *exteriorRepo) DeleteByID(ctx context.Context, tx *gorm.DB, exteriorID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  result := transaction.WithContext(ctx).
    Where("id = ?", exteriorID).
    Delete(&types.Exterior{})
  return result.RowsAffected, result.Error
}
