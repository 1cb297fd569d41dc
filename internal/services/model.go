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

var modelMessages = storeErrorMessages{
  notFound:      "Model not found",
  duplicate:     "A model with this name already exists",
  parentMissing: "Model not found",
}

type ModelInput struct {
  Name        string
  Description *string
}

type ModelPatch struct {
  Name        *string
  Description *string
}

type ModelService interface {
  List(ctx context.Context, projection repos.ModelProjection) ([]*types.Model, error)
  Get(ctx context.Context, modelID uuid.UUID) (*types.Model, error)
  Create(ctx context.Context, input ModelInput) (*types.Model, error)
  Update(ctx context.Context, modelID uuid.UUID, patch ModelPatch) (*types.Model, error)
  Delete(ctx context.Context, modelID uuid.UUID) error
}

type modelService struct {
  db        *gorm.DB
  log       *logger.Logger
  modelRepo repos.ModelRepo
}

func NewModelService(db *gorm.DB, log *logger.Logger, modelRepo repos.ModelRepo) ModelService {
  serviceLog := log.With("service", "ModelService")
  return &modelService{db: db, log: serviceLog, modelRepo: modelRepo}
}

func (ms *modelService) List(ctx context.Context, projection repos.ModelProjection) ([]*types.Model, error) {
  models, err := ms.modelRepo.List(ctx, nil, projection)
  if err != nil {
    ms.log.Error("Failed to list models", "error", err)
    return nil, apierr.Internal(err)
  }
  return models, nil
}

func (ms *modelService) Get(ctx context.Context, modelID uuid.UUID) (*types.Model, error) {
  model, err := ms.modelRepo.GetByID(ctx, nil, modelID, repos.ModelWithTree)
  if err != nil {
    return nil, translateStoreError(err, modelMessages)
  }
  return model, nil
}

func (ms *modelService) Create(ctx context.Context, input ModelInput) (*types.Model, error) {
  name := normalization.TrimInputString(input.Name)
  if name == "" {
    return nil, apierr.Validation("Model name is required")
  }

  model := types.Model{
    ID:          uuid.New(),
    Name:        name,
    Description: trimmedDescription(input.Description),
  }
  if err := ms.modelRepo.Create(ctx, nil, &model); err != nil {
    return nil, translateStoreError(err, modelMessages)
  }
  return &model, nil
}

func (ms *modelService) Update(ctx context.Context, modelID uuid.UUID, patch ModelPatch) (*types.Model, error) {
  updates := map[string]interface{}{}
  if patch.Name != nil {
    name := normalization.TrimInputString(*patch.Name)
    if name == "" {
      return nil, apierr.Validation("Model name is required")
    }
    updates["name"] = name
  }
  if patch.Description != nil {
    updates["description"] = trimmedDescription(patch.Description)
  }

  var updated *types.Model
  err := ms.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, err := ms.modelRepo.GetByID(ctx, tx, modelID, repos.ModelShallow); err != nil {
      return translateStoreError(err, modelMessages)
    }
    if err := ms.modelRepo.Update(ctx, tx, modelID, updates); err != nil {
      return translateStoreError(err, modelMessages)
    }
    model, err := ms.modelRepo.GetByID(ctx, tx, modelID, repos.ModelShallow)
    if err != nil {
      return translateStoreError(err, modelMessages)
    }
    updated = model
    return nil
  })
  if err != nil {
    return nil, apierr.From(err)
  }
  return updated, nil
}

func (ms *modelService) Delete(ctx context.Context, modelID uuid.UUID) error {
  rows, err := ms.modelRepo.DeleteByID(ctx, nil, modelID)
  if err != nil {
    ms.log.Error("Failed to delete model", "model_id", modelID, "error", err)
    return apierr.Internal(err)
  }
  if rows == 0 {
    return apierr.NotFound("%s", modelMessages.notFound)
  }
  return nil
}

// trimmedDescription mirrors the form contract: a blank or whitespace-only
// description clears the field to null rather than storing an empty string.
func trimmedDescription(description *string) *string {
  if description == nil {
    return nil
  }
  trimmed := normalization.TrimInputString(*description)
  if trimmed == "" {
    return nil
  }
  return &trimmed
}
