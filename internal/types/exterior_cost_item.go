package types

import (
	"time"
	"github.com/google/uuid"
)

type ExteriorCostItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BtName     string    `gorm:"column:bt_name;not null;index:idx_exterior_cost_item_bt_name,unique,priority:2" json:"btName"`
	CostGroup  bool      `gorm:"column:cost_group;not null;default:false" json:"costGroup"`
	IsDefault  bool      `gorm:"column:is_default;not null;default:false" json:"isDefault"`
	ExteriorID uuid.UUID `gorm:"type:uuid;not null;index:idx_exterior_cost_item_bt_name,unique,priority:1" json:"exteriorId"`
	Exterior   *Exterior `gorm:"foreignKey:ExteriorID;references:ID" json:"exterior,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (ExteriorCostItem) TableName() string { return "exterior_cost_item" }
