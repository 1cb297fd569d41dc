package types

import (
	"time"
	"github.com/google/uuid"
)

// LocationMarkup rows are wholly owned by their mapping: updates that supply
// markups replace the full set, so no per-row uniqueness is enforced.
type LocationMarkup struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string      `gorm:"column:name;not null" json:"name"`
	Markup       float64     `gorm:"column:markup;not null;default:0" json:"markup"`
	IFPMappingID uuid.UUID   `gorm:"type:uuid;not null;index:idx_location_markup_mapping" json:"ifpMappingId"`
	IFPMapping   *IFPMapping `gorm:"foreignKey:IFPMappingID;references:ID" json:"ifpMapping,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (LocationMarkup) TableName() string { return "location_markup" }
