package types

import (
	"time"
	"github.com/google/uuid"
)

// CostGroup and IsDefault are orthogonal flags: IsDefault marks the item as
// applied when the owning option is NOT selected, and does not exclude
// CostGroup.
type CostItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BtName    string    `gorm:"column:bt_name;not null;index:idx_cost_item_option_bt_name,unique,priority:2" json:"btName"`
	CostGroup bool      `gorm:"column:cost_group;not null;default:false" json:"costGroup"`
	IsDefault bool      `gorm:"column:is_default;not null;default:false" json:"isDefault"`
	OptionID  uuid.UUID `gorm:"type:uuid;not null;index:idx_cost_item_option_bt_name,unique,priority:1" json:"optionId"`
	Option    *Option   `gorm:"foreignKey:OptionID;references:ID" json:"option,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (CostItem) TableName() string { return "cost_item" }
