package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/logger"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/types"
)

// IFPMapping responses always carry their markups, ordered by location name;
// there is no shallow projection for this family.
type IFPMappingRepo interface {
  List(ctx context.Context, tx *gorm.DB) ([]*types.IFPMapping, error)
  GetByID(ctx context.Context, tx *gorm.DB, mappingID uuid.UUID) (*types.IFPMapping, error)
  Create(ctx context.Context, tx *gorm.DB, mapping *types.IFPMapping) error
  Update(ctx context.Context, tx *gorm.DB, mappingID uuid.UUID, updates map[string]interface{}) error
  DeleteByID(ctx context.Context, tx *gorm.DB, mappingID uuid.UUID) (int64, error)
}

type ifpMappingRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewIFPMappingRepo(db *gorm.DB, baseLog *logger.Logger) IFPMappingRepo {
  repoLog := baseLog.With("repo", "IFPMappingRepo")
  return &ifpMappingRepo{db: db, log: repoLog}
}

func ifpMappingScope(q *gorm.DB) *gorm.DB {
  return q.Preload("LocationMarkups", func(db *gorm.DB) *gorm.DB { return db.Order("location_markup.name asc") })
}

func (ir *ifpMappingRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.IFPMapping, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  var results []*types.IFPMapping
  if err := ifpMappingScope(transaction.WithContext(ctx)).
    Order("ifp_key asc").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (ir *ifpMappingRepo) GetByID(ctx context.Context, tx *gorm.DB, mappingID uuid.UUID) (*types.IFPMapping, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  var result types.IFPMapping
  if err := ifpMappingScope(transaction.WithContext(ctx)).
    Where("id = ?", mappingID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (ir *ifpMappingRepo) Create(ctx context.Context, tx *gorm.DB, mapping *types.IFPMapping) error {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  return transaction.WithContext(ctx).Create(mapping).Error
}

func (ir *ifpMappingRepo) Update(ctx context.Context, tx *gorm.DB, mappingID uuid.UUID, updates map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  if len(updates) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Model(&types.IFPMapping{}).
    Where("id = ?", mappingID).
    Updates(updates).Error
}

func (ir *ifpMappingRepo) DeleteByID(ctx context.Context, tx *gorm.DB, mappingID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  result := transaction.WithContext(ctx).
    Where("id = ?", mappingID).
    Delete(&types.IFPMapping{})
  return result.RowsAffected, result.Error
}
