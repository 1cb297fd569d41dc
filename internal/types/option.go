package types

import (
	"time"
	"github.com/google/uuid"
)

type Option struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"column:name;not null;index:idx_option_exterior_name,unique,priority:2" json:"name"`
	ExteriorID uuid.UUID `gorm:"type:uuid;not null;index:idx_option_exterior_name,unique,priority:1" json:"exteriorId"`
	Exterior   *Exterior `gorm:"foreignKey:ExteriorID;references:ID" json:"exterior,omitempty"`
	CostItems  []*CostItem `gorm:"constraint:OnDelete:CASCADE;foreignKey:OptionID;references:ID" json:"costItems,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// "option" is a reserved word in some SQL dialects.
func (Option) TableName() string { return "model_option" }
