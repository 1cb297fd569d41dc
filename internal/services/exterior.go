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

var exteriorMessages = storeErrorMessages{
  notFound:      "Exterior not found",
  duplicate:     "An exterior with this name already exists for this model",
  parentMissing: "Model not found",
}

type ExteriorInput struct {
  Name    string
  ModelID uuid.UUID
}

type ExteriorPatch struct {
  Name *string
}

type ExteriorService interface {
  List(ctx context.Context, modelID *uuid.UUID, projection repos.ExteriorProjection) ([]*types.Exterior, error)
  Get(ctx context.Context, exteriorID uuid.UUID) (*types.Exterior, error)
  Create(ctx context.Context, input ExteriorInput) (*types.Exterior, error)
  Update(ctx context.Context, exteriorID uuid.UUID, patch ExteriorPatch) (*types.Exterior, error)
  Delete(ctx context.Context, exteriorID uuid.UUID) error
}

type exteriorService struct {
  db           *gorm.DB
  log          *logger.Logger
  exteriorRepo repos.ExteriorRepo
}

func NewExteriorService(db *gorm.DB, log *logger.Logger, exteriorRepo repos.ExteriorRepo) ExteriorService {
  serviceLog := log.With("service", "ExteriorService")
  return &exteriorService{db: db, log: serviceLog, exteriorRepo: exteriorRepo}
}

func (es *exteriorService) List(ctx context.Context, modelID *uuid.UUID, projection repos.ExteriorProjection) ([]*types.Exterior, error) {
  exteriors, err := es.exteriorRepo.List(ctx, nil, modelID, projection)
  if err != nil {
    es.log.Error("Failed to list exteriors", "error", err)
    return nil, apierr.Internal(err)
  }
  return exteriors, nil
}

func (es *exteriorService) Get(ctx context.Context, exteriorID uuid.UUID) (*types.Exterior, error) {
  exterior, err := es.exteriorRepo.GetByID(ctx, nil, exteriorID, repos.ExteriorWithOptions)
  if err != nil {
    return nil, translateStoreError(err, exteriorMessages)
  }
  return exterior, nil
}

func (es *exteriorService) Create(ctx context.Context, input ExteriorInput) (*types.Exterior, error) {
  name := normalization.TrimInputString(input.Name)
  if name == "" {
    return nil, apierr.Validation("Exterior name is required")
  }
  if input.ModelID == uuid.Nil {
    return nil, apierr.Validation("Model ID is required")
  }

  exterior := types.Exterior{
    ID:      uuid.New(),
    Name:    name,
    ModelID: input.ModelID,
  }
  if err := es.exteriorRepo.Create(ctx, nil, &exterior); err != nil {
    return nil, translateStoreError(err, exteriorMessages)
  }
  created, err := es.exteriorRepo.GetByID(ctx, nil, exterior.ID, repos.ExteriorShallow)
  if err != nil {
    return nil, translateStoreError(err, exteriorMessages)
  }
  return created, nil
}

func (es *exteriorService) Update(ctx context.Context, exteriorID uuid.UUID, patch ExteriorPatch) (*types.Exterior, error) {
  updates := map[string]interface{}{}
  if patch.Name != nil {
    name := normalization.TrimInputString(*patch.Name)
    if name == "" {
      return nil, apierr.Validation("Exterior name is required")
    }
    updates["name"] = name
  }

  var updated *types.Exterior
  err := es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, err := es.exteriorRepo.GetByID(ctx, tx, exteriorID, repos.ExteriorShallow); err != nil {
      return translateStoreError(err, exteriorMessages)
    }
    if err := es.exteriorRepo.Update(ctx, tx, exteriorID, updates); err != nil {
      return translateStoreError(err, exteriorMessages)
    }
    exterior, err := es.exteriorRepo.GetByID(ctx, tx, exteriorID, repos.ExteriorShallow)
    if err != nil {
      return translateStoreError(err, exteriorMessages)
    }
    updated = exterior
    return nil
  })
  if err != nil {
    return nil, apierr.From(err)
  }
  return updated, nil
}

func (es *exteriorService) Delete(ctx context.Context, exteriorID uuid.UUID) error {
  rows, err := es.exteriorRepo.DeleteByID(ctx, nil, exteriorID)
  if err != nil {
    es.log.Error("Failed to delete exterior", "exterior_id", exteriorID, "error", err)
    return apierr.Internal(err)
  }
  if rows == 0 {
    return apierr.NotFound("%s", exteriorMessages.notFound)
  }
  return nil
}
