package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/logger"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/types"
)

type AccessCodeRepo interface {
  GetActiveByCode(ctx context.Context, tx *gorm.DB, code string) (*types.AccessCode, error)
}

type accessCodeRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAccessCodeRepo(db *gorm.DB, baseLog *logger.Logger) AccessCodeRepo {
  repoLog := baseLog.With("repo", "AccessCodeRepo")
  return &accessCodeRepo{db: db, log: repoLog}
}

func (ar *accessCodeRepo) GetActiveByCode(ctx context.Context, tx *gorm.DB, code string) (*types.AccessCode, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  var result types.AccessCode
  if err := transaction.WithContext(ctx).
    Where("code = ? AND is_active = ?", code, true).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}
