package types

import (
	"time"
	"github.com/google/uuid"
)

// Exterior name is unique within its owning model only, never across models.
type Exterior struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"column:name;not null;index:idx_exterior_model_name,unique,priority:2" json:"name"`
	ModelID uuid.UUID `gorm:"type:uuid;not null;index:idx_exterior_model_name,unique,priority:1" json:"modelId"`
	Model   *Model    `gorm:"foreignKey:ModelID;references:ID" json:"model,omitempty"`
	Options           []*Option           `gorm:"constraint:OnDelete:CASCADE;foreignKey:ExteriorID;references:ID" json:"options,omitempty"`
	ExteriorCostItems []*ExteriorCostItem `gorm:"constraint:OnDelete:CASCADE;foreignKey:ExteriorID;references:ID" json:"exteriorCostItems,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Exterior) TableName() string { return "exterior" }
