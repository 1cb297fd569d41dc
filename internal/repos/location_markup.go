package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/logger"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/types"
)

// LocationMarkupRepo only supports the operations the replace-all contract
// needs: bulk create and delete by owner. Reads go through the owning
// mapping's preload.
type LocationMarkupRepo interface {
  CreateMany(ctx context.Context, tx *gorm.DB, markups []*types.LocationMarkup) ([]*types.LocationMarkup, error)
  DeleteByMappingID(ctx context.Context, tx *gorm.DB, mappingID uuid.UUID) error
}

type locationMarkupRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewLocationMarkupRepo(db *gorm.DB, baseLog *logger.Logger) LocationMarkupRepo {
  repoLog := baseLog.With("repo", "LocationMarkupRepo")
  return &locationMarkupRepo{db: db, log: repoLog}
}

func (lr *locationMarkupRepo) CreateMany(ctx context.Context, tx *gorm.DB, markups []*types.LocationMarkup) ([]*types.LocationMarkup, error) {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }

  if len(markups) == 0 {
    return []*types.LocationMarkup{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&markups).Error; err != nil {
    return nil, err
  }
  return markups, nil
}

func (lr *locationMarkupRepo) DeleteByMappingID(ctx context.Context, tx *gorm.DB, mappingID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }

  return transaction.WithContext(ctx).
    Where("ifp_mapping_id = ?", mappingID).
    Delete(&types.LocationMarkup{}).Error
}
