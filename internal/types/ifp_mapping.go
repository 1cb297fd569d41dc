package types

import (
	"time"
	"github.com/google/uuid"
)

// IfpKey is the natural identifier of a mapping: stored lowercase and
// immutable once assigned.
type IFPMapping struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	IfpKey    string    `gorm:"column:ifp_key;not null;uniqueIndex:idx_ifp_mapping_key" json:"ifpKey"`
	BtName    string    `gorm:"column:bt_name;not null" json:"btName"`
	CostGroup bool      `gorm:"column:cost_group;not null;default:false" json:"costGroup"`
	LocationMarkups []*LocationMarkup `gorm:"constraint:OnDelete:CASCADE;foreignKey:IFPMappingID;references:ID" json:"locationMarkups,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (IFPMapping) TableName() string { return "ifp_mapping" }
