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

var ifpMappingMessages = storeErrorMessages{
  notFound:      "Mapping not found",
  duplicate:     "IFP key already exists",
  parentMissing: "Mapping not found",
}

type LocationMarkupInput struct {
  Name   string
  Markup float64
}

type IFPMappingInput struct {
  IfpKey          string
  BtName          string
  CostGroup       bool
  LocationMarkups []LocationMarkupInput
}

// IfpKey is deliberately absent from the patch: the key is the mapping's
// natural identifier and is immutable once assigned. A nil LocationMarkups
// leaves the existing rows untouched; a non-nil slice (empty included)
// replaces the full set.
type IFPMappingPatch struct {
  BtName          *string
  CostGroup       *bool
  LocationMarkups []LocationMarkupInput
  HasMarkups      bool
}

type IFPMappingService interface {
  List(ctx context.Context) ([]*types.IFPMapping, error)
  Get(ctx context.Context, mappingID uuid.UUID) (*types.IFPMapping, error)
  Create(ctx context.Context, input IFPMappingInput) (*types.IFPMapping, error)
  Update(ctx context.Context, mappingID uuid.UUID, patch IFPMappingPatch) (*types.IFPMapping, error)
  Delete(ctx context.Context, mappingID uuid.UUID) error
}

type ifpMappingService struct {
  db         *gorm.DB
  log        *logger.Logger
  mappingRepo repos.IFPMappingRepo
  markupRepo  repos.LocationMarkupRepo
}

func NewIFPMappingService(db *gorm.DB, log *logger.Logger, mappingRepo repos.IFPMappingRepo, markupRepo repos.LocationMarkupRepo) IFPMappingService {
  serviceLog := log.With("service", "IFPMappingService")
  return &ifpMappingService{db: db, log: serviceLog, mappingRepo: mappingRepo, markupRepo: markupRepo}
}

func (is *ifpMappingService) List(ctx context.Context) ([]*types.IFPMapping, error) {
  mappings, err := is.mappingRepo.List(ctx, nil)
  if err != nil {
    is.log.Error("Failed to list IFP mappings", "error", err)
    return nil, apierr.Internal(err)
  }
  return mappings, nil
}

func (is *ifpMappingService) Get(ctx context.Context, mappingID uuid.UUID) (*types.IFPMapping, error) {
  mapping, err := is.mappingRepo.GetByID(ctx, nil, mappingID)
  if err != nil {
    return nil, translateStoreError(err, ifpMappingMessages)
  }
  return mapping, nil
}

func (is *ifpMappingService) Create(ctx context.Context, input IFPMappingInput) (*types.IFPMapping, error) {
  ifpKey := normalization.ParseInputString(input.IfpKey)
  btName := normalization.TrimInputString(input.BtName)
  if ifpKey == "" || btName == "" {
    return nil, apierr.Validation("ifpKey and btName are required")
  }
  markups, err := validateMarkupInputs(input.LocationMarkups)
  if err != nil {
    return nil, err
  }

  var created *types.IFPMapping
  txErr := is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    mapping := types.IFPMapping{
      ID:        uuid.New(),
      IfpKey:    ifpKey,
      BtName:    btName,
      CostGroup: input.CostGroup,
    }
    if err := is.mappingRepo.Create(ctx, tx, &mapping); err != nil {
      return translateStoreError(err, ifpMappingMessages)
    }
    if err := is.insertMarkups(ctx, tx, mapping.ID, markups); err != nil {
      return err
    }
    result, err := is.mappingRepo.GetByID(ctx, tx, mapping.ID)
    if err != nil {
      return translateStoreError(err, ifpMappingMessages)
    }
    created = result
    return nil
  })
  if txErr != nil {
    return nil, apierr.From(txErr)
  }
  return created, nil
}

func (is *ifpMappingService) Update(ctx context.Context, mappingID uuid.UUID, patch IFPMappingPatch) (*types.IFPMapping, error) {
  updates := map[string]interface{}{}
  if patch.BtName != nil {
    btName := normalization.TrimInputString(*patch.BtName)
    if btName == "" {
      return nil, apierr.Validation("btName is required")
    }
    updates["bt_name"] = btName
  }
  if patch.CostGroup != nil {
    updates["cost_group"] = *patch.CostGroup
  }

  var markups []LocationMarkupInput
  if patch.HasMarkups {
    validated, err := validateMarkupInputs(patch.LocationMarkups)
    if err != nil {
      return nil, err
    }
    markups = validated
  }

  var updated *types.IFPMapping
  txErr := is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, err := is.mappingRepo.GetByID(ctx, tx, mappingID); err != nil {
      return translateStoreError(err, ifpMappingMessages)
    }
    if err := is.mappingRepo.Update(ctx, tx, mappingID, updates); err != nil {
      return translateStoreError(err, ifpMappingMessages)
    }
    if patch.HasMarkups {
      // Replace-all contract: the supplied set becomes the whole set.
      if err := is.markupRepo.DeleteByMappingID(ctx, tx, mappingID); err != nil {
        return apierr.Internal(err)
      }
      if err := is.insertMarkups(ctx, tx, mappingID, markups); err != nil {
        return err
      }
    }
    result, err := is.mappingRepo.GetByID(ctx, tx, mappingID)
    if err != nil {
      return translateStoreError(err, ifpMappingMessages)
    }
    updated = result
    return nil
  })
  if txErr != nil {
    return nil, apierr.From(txErr)
  }
  return updated, nil
}

func (is *ifpMappingService) Delete(ctx context.Context, mappingID uuid.UUID) error {
  rows, err := is.mappingRepo.DeleteByID(ctx, nil, mappingID)
  if err != nil {
    is.log.Error("Failed to delete IFP mapping", "mapping_id", mappingID, "error", err)
    return apierr.Internal(err)
  }
  if rows == 0 {
    return apierr.NotFound("%s", ifpMappingMessages.notFound)
  }
  return nil
}

func (is *ifpMappingService) insertMarkups(ctx context.Context, tx *gorm.DB, mappingID uuid.UUID, markups []LocationMarkupInput) error {
  if len(markups) == 0 {
    return nil
  }
  rows := make([]*types.LocationMarkup, 0, len(markups))
  for _, m := range markups {
    rows = append(rows, &types.LocationMarkup{
      ID:           uuid.New(),
      Name:         m.Name,
      Markup:       m.Markup,
      IFPMappingID: mappingID,
    })
  }
  if _, err := is.markupRepo.CreateMany(ctx, tx, rows); err != nil {
    return apierr.Internal(err)
  }
  return nil
}

func validateMarkupInputs(markups []LocationMarkupInput) ([]LocationMarkupInput, error) {
  out := make([]LocationMarkupInput, 0, len(markups))
  for _, m := range markups {
    name := normalization.TrimInputString(m.Name)
    if name == "" {
      return nil, apierr.Validation("location markup name is required")
    }
    if m.Markup < 0 {
      return nil, apierr.Validation("location markup must not be negative")
    }
    out = append(out, LocationMarkupInput{Name: name, Markup: m.Markup})
  }
  return out, nil
}
