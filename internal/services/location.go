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

var locationMessages = storeErrorMessages{
  notFound:      "Location not found",
  duplicate:     "Location name already exists",
  parentMissing: "Location not found",
}

type LocationInput struct {
  Name   string
  Markup float64
}

type LocationPatch struct {
  Name   *string
  Markup *float64
}

type LocationService interface {
  List(ctx context.Context) ([]*types.Location, error)
  Get(ctx context.Context, locationID uuid.UUID) (*types.Location, error)
  Create(ctx context.Context, input LocationInput) (*types.Location, error)
  Update(ctx context.Context, locationID uuid.UUID, patch LocationPatch) (*types.Location, error)
  Delete(ctx context.Context, locationID uuid.UUID) error
}

type locationService struct {
  db           *gorm.DB
  log          *logger.Logger
  locationRepo repos.LocationRepo
}

func NewLocationService(db *gorm.DB, log *logger.Logger, locationRepo repos.LocationRepo) LocationService {
  serviceLog := log.With("service", "LocationService")
  return &locationService{db: db, log: serviceLog, locationRepo: locationRepo}
}

func (ls *locationService) List(ctx context.Context) ([]*types.Location, error) {
  locations, err := ls.locationRepo.List(ctx, nil)
  if err != nil {
    ls.log.Error("Failed to list locations", "error", err)
    return nil, apierr.Internal(err)
  }
  return locations, nil
}

func (ls *locationService) Get(ctx context.Context, locationID uuid.UUID) (*types.Location, error) {
  location, err := ls.locationRepo.GetByID(ctx, nil, locationID)
  if err != nil {
    return nil, translateStoreError(err, locationMessages)
  }
  return location, nil
}

func (ls *locationService) Create(ctx context.Context, input LocationInput) (*types.Location, error) {
  name := normalization.TrimInputString(input.Name)
  if name == "" {
    return nil, apierr.Validation("name and markup are required")
  }
  if input.Markup < 0 {
    return nil, apierr.Validation("markup must not be negative")
  }

  location := types.Location{
    ID:     uuid.New(),
    Name:   name,
    Markup: input.Markup,
  }
  if err := ls.locationRepo.Create(ctx, nil, &location); err != nil {
    return nil, translateStoreError(err, locationMessages)
  }
  return &location, nil
}

func (ls *locationService) Update(ctx context.Context, locationID uuid.UUID, patch LocationPatch) (*types.Location, error) {
  updates := map[string]interface{}{}
  if patch.Name != nil {
    name := normalization.TrimInputString(*patch.Name)
    if name == "" {
      return nil, apierr.Validation("Location name is required")
    }
    updates["name"] = name
  }
  if patch.Markup != nil {
    if *patch.Markup < 0 {
      return nil, apierr.Validation("markup must not be negative")
    }
    updates["markup"] = *patch.Markup
  }

  var updated *types.Location
  err := ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, err := ls.locationRepo.GetByID(ctx, tx, locationID); err != nil {
      return translateStoreError(err, locationMessages)
    }
    if err := ls.locationRepo.Update(ctx, tx, locationID, updates); err != nil {
      return translateStoreError(err, locationMessages)
    }
    location, err := ls.locationRepo.GetByID(ctx, tx, locationID)
    if err != nil {
      return translateStoreError(err, locationMessages)
    }
    updated = location
    return nil
  })
  if err != nil {
    return nil, apierr.From(err)
  }
  return updated, nil
}

func (ls *locationService) Delete(ctx context.Context, locationID uuid.UUID) error {
  rows, err := ls.locationRepo.DeleteByID(ctx, nil, locationID)
  if err != nil {
    ls.log.Error("Failed to delete location", "location_id", locationID, "error", err)
    return apierr.Internal(err)
  }
  if rows == 0 {
    return apierr.NotFound("%s", locationMessages.notFound)
  }
  return nil
}
