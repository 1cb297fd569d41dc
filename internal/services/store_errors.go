package services

import (
  "errors"
  "gorm.io/gorm"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/apierr"
)

// storeErrorMessages carries the user-facing wording for each constraint
// outcome of one write, so every service maps store errors the same way.
type storeErrorMessages struct {
  notFound      string
  duplicate     string
  parentMissing string
}

// translateStoreError maps the store's typed failures to service outcomes.
// Anything unrecognized is wrapped as an internal error and surfaces to the
// caller without detail.
func translateStoreError(err error, msgs storeErrorMessages) error {
  if err == nil {
    return nil
  }
  switch {
  case errors.Is(err, gorm.ErrRecordNotFound):
    return apierr.NotFound("%s", msgs.notFound)
  case errors.Is(err, gorm.ErrDuplicatedKey):
    return apierr.Duplicate("%s", msgs.duplicate)
  case errors.Is(err, gorm.ErrForeignKeyViolated):
    return apierr.ParentMissing("%s", msgs.parentMissing)
  default:
    return apierr.Internal(err)
  }
}
