package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/logger"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/types"
)

type LocationRepo interface {
  List(ctx context.Context, tx *gorm.DB) ([]*types.Location, error)
  GetByID(ctx context.Context, tx *gorm.DB, locationID uuid.UUID) (*types.Location, error)
  Create(ctx context.Context, tx *gorm.DB, location *types.Location) error
  Update(ctx context.Context, tx *gorm.DB, locationID uuid.UUID, updates map[string]interface{}) error
  DeleteByID(ctx context.Context, tx *gorm.DB, locationID uuid.UUID) (int64, error)
}

type locationRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewLocationRepo(db *gorm.DB, baseLog *logger.Logger) LocationRepo {
  repoLog := baseLog.With("repo", "LocationRepo")
  return &locationRepo{db: db, log: repoLog}
}

func (lr *locationRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Location, error) {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }

  var results []*types.Location
  if err := transaction.WithContext(ctx).Order("name asc").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (lr *locationRepo) GetByID(ctx context.Context, tx *gorm.DB, locationID uuid.UUID) (*types.Location, error) {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }

  var result types.Location
  if err := transaction.WithContext(ctx).Where("id = ?", locationID).First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (lr *locationRepo) Create(ctx context.Context, tx *gorm.DB, location *types.Location) error {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }

  return transaction.WithContext(ctx).Create(location).Error
}

func (lr *locationRepo) Update(ctx context.Context, tx *gorm.DB, locationID uuid.UUID, updates map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }

  if len(updates) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Model(&types.Location{}).
    Where("id = ?", locationID).
    Updates(updates).Error
}

func (lr *locationRepo) DeleteByID(ctx context.Context, tx *gorm.DB, locationID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }

  result := transaction.WithContext(ctx).
    Where("id = ?", locationID).
    Delete(&types.Location{})
  return result.RowsAffected, result.Error
}
