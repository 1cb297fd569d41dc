package types

import (
	"time"
	"github.com/google/uuid"
)

// AccessCode is the shared-secret credential table. There are no user
// accounts; possession of an active code is the whole identity model.
type AccessCode struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code     string    `gorm:"column:code;not null;uniqueIndex:idx_access_code" json:"code"`
	IsActive bool      `gorm:"column:is_active;not null" json:"isActive"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (AccessCode) TableName() string { return "access_code" }
