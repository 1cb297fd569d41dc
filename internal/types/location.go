package types

import (
	"time"
	"github.com/google/uuid"
)

// Location is a standalone registry entry. LocationMarkup rows copy its name
// and markup by value; there is no foreign key between them.
type Location struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name   string    `gorm:"column:name;not null;uniqueIndex:idx_location_name" json:"name"`
	Markup float64   `gorm:"column:markup;not null;default:0" json:"markup"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Location) TableName() string { return "location" }
