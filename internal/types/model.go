package types

import (
	"time"
	"github.com/google/uuid"
)

type Model struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null;uniqueIndex:idx_model_name" json:"name"`
	Description *string   `gorm:"column:description" json:"description"`
	Exteriors   []*Exterior `gorm:"constraint:OnDelete:CASCADE;foreignKey:ModelID;references:ID" json:"exteriors,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Model) TableName() string { return "model" }
