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

var optionMessages = storeErrorMessages{
  notFound:      "Option not found",
  duplicate:     "An option with this name already exists for this exterior",
  parentMissing: "Exterior not found",
}

type OptionInput struct {
  Name       string
  ExteriorID uuid.UUID
}

type OptionPatch struct {
  Name *string
}

type OptionService interface {
  List(ctx context.Context, exteriorID *uuid.UUID, projection repos.OptionProjection) ([]*types.Option, error)
  Get(ctx context.Context, optionID uuid.UUID) (*types.Option, error)
  Create(ctx context.Context, input OptionInput) (*types.Option, error)
  Update(ctx context.Context, optionID uuid.UUID, patch OptionPatch) (*types.Option, error)
  Delete(ctx context.Context, optionID uuid.UUID) error
}

type optionService struct {
  db         *gorm.DB
  log        *logger.Logger
  optionRepo repos.OptionRepo
}

func NewOptionService(db *gorm.DB, log *logger.Logger, optionRepo repos.OptionRepo) OptionService {
  serviceLog := log.With("service", "OptionService")
  return &optionService{db: db, log: serviceLog, optionRepo: optionRepo}
}

func (os *optionService) List(ctx context.Context, exteriorID *uuid.UUID, projection repos.OptionProjection) ([]*types.Option, error) {
  options, err := os.optionRepo.List(ctx, nil, exteriorID, projection)
  if err != nil {
    os.log.Error("Failed to list options", "error", err)
    return nil, apierr.Internal(err)
  }
  return options, nil
}

func (os *optionService) Get(ctx context.Context, optionID uuid.UUID) (*types.Option, error) {
  option, err := os.optionRepo.GetByID(ctx, nil, optionID, repos.OptionWithCostItems)
  if err != nil {
    return nil, translateStoreError(err, optionMessages)
  }
  return option, nil
}

func (os *optionService) Create(ctx context.Context, input OptionInput) (*types.Option, error) {
  name := normalization.TrimInputString(input.Name)
  if name == "" {
    return nil, apierr.Validation("Option name is required")
  }
  if input.ExteriorID == uuid.Nil {
    return nil, apierr.Validation("Exterior ID is required")
  }

  option := types.Option{
    ID:         uuid.New(),
    Name:       name,
    ExteriorID: input.ExteriorID,
  }
  if err := os.optionRepo.Create(ctx, nil, &option); err != nil {
    return nil, translateStoreError(err, optionMessages)
  }
  created, err := os.optionRepo.GetByID(ctx, nil, option.ID, repos.OptionShallow)
  if err != nil {
    return nil, translateStoreError(err, optionMessages)
  }
  return created, nil
}

func (os *optionService) Update(ctx context.Context, optionID uuid.UUID, patch OptionPatch) (*types.Option, error) {
  updates := map[string]interface{}{}
  if patch.Name != nil {
    name := normalization.TrimInputString(*patch.Name)
    if name == "" {
      return nil, apierr.Validation("Option name is required")
    }
    updates["name"] = name
  }

  var updated *types.Option
  err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, err := os.optionRepo.GetByID(ctx, tx, optionID, repos.OptionShallow); err != nil {
      return translateStoreError(err, optionMessages)
    }
    if err := os.optionRepo.Update(ctx, tx, optionID, updates); err != nil {
      return translateStoreError(err, optionMessages)
    }
    option, err := os.optionRepo.GetByID(ctx, tx, optionID, repos.OptionShallow)
    if err != nil {
      return translateStoreError(err, optionMessages)
    }
    updated = option
    return nil
  })
  if err != nil {
    return nil, apierr.From(err)
  }
  return updated, nil
}

func (os *optionService) Delete(ctx context.Context, optionID uuid.UUID) error {
  rows, err := os.optionRepo.DeleteByID(ctx, nil, optionID)
  if err != nil {
    os.log.Error("Failed to delete option", "option_id", optionID, "error", err)
    return apierr.Internal(err)
  }
  if rows == 0 {
    return apierr.NotFound("%s", optionMessages.notFound)
  }
  return nil
}
