package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/logger"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/types"
)

// ModelProjection is the fixed set of relation loads a caller can request.
// Shallow returns the bare row; Tree loads the full exterior/option/cost-item
// hierarchy underneath.
type ModelProjection int

const (
  ModelShallow ModelProjection = iota
  ModelWithTree
)

type ModelRepo interface {
  List(ctx context.Context, tx *gorm.DB, projection ModelProjection) ([]*types.Model, error)
  GetByID(ctx context.Context, tx *gorm.DB, modelID uuid.UUID, projection ModelProjection) (*types.Model, error)
  Create(ctx context.Context, tx *gorm.DB, model *types.Model) error
  Update(ctx context.Context, tx *gorm.DB, modelID uuid.UUID, updates map[string]interface{}) error
  DeleteByID(ctx context.Context, tx *gorm.DB, modelID uuid.UUID) (int64, error)
}

type modelRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewModelRepo(db *gorm.DB, baseLog *logger.Logger) ModelRepo {
  repoLog := baseLog.With("repo", "ModelRepo")
  return &modelRepo{db: db, log: repoLog}
}

func modelScope(q *gorm.DB, projection ModelProjection) *gorm.DB {
  if projection == ModelWithTree {
    q = q.
      Preload("Exteriors", func(db *gorm.DB) *gorm.DB { return db.Order("exterior.name asc") }).
      Preload("Exteriors.Options", func(db *gorm.DB) *gorm.DB { return db.Order("model_option.name asc") }).
      Preload("Exteriors.Options.CostItems", func(db *gorm.DB) *gorm.DB { return db.Order("cost_item.bt_name asc") })
  }
  return q
}

func (mr *modelRepo) List(ctx context.Context, tx *gorm.DB, projection ModelProjection) ([]*types.Model, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  var results []*types.Model
  q := modelScope(transaction.WithContext(ctx), projection)
  if err := q.Order("name asc").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (mr *modelRepo) GetByID(ctx context.Context, tx *gorm.DB, modelID uuid.UUID, projection ModelProjection) (*types.Model, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  var result types.Model
  q := modelScope(transaction.WithContext(ctx), projection)
  if err := q.Where("id = ?", modelID).First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (mr *modelRepo) Create(ctx context.Context, tx *gorm.DB, model *types.Model) error {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  return transaction.WithContext(ctx).Create(model).Error
}

func (mr *modelRepo) Update(ctx context.Context, tx *gorm.DB, modelID uuid.UUID, updates map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  if len(updates) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Model(&types.Model{}).
    Where("id = ?", modelID).
    Updates(updates).Error
}

func (mr *modelRepo) DeleteByID(ctx context.Context, tx *gorm.DB, modelID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  result := transaction.WithContext(ctx).
    Where("id = ?", modelID).
    Delete(&types.Model{})
  return result.RowsAffected, result.Error
}
