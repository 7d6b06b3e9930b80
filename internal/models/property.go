package models

import (
	"gorm.io/datatypes"
)

// Property represents the showcase property listing.
// The application runs in single-property mode: the row with the lowest ID
// is the one served as "the" property.
type Property struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Address     string                      `gorm:"size:255;not null" json:"address"`
	City        string                      `gorm:"size:100;not null" json:"city"`
	State       string                      `gorm:"size:50;not null" json:"state"`
	ZipCode     string                      `gorm:"size:20;not null" json:"zip_code"`
	Price       int                         `gorm:"not null" json:"price"`
	Bedrooms    int                         `gorm:"not null" json:"bedrooms"`
	Bathrooms   float64                     `gorm:"not null" json:"bathrooms"`
	Sqft        int                         `gorm:"not null" json:"sqft"`
	YearBuilt   int                         `gorm:"not null" json:"year_built"`
	LotSize     *float64                    `json:"lot_size"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Features    datatypes.JSONSlice[string] `json:"features"`
	Images      datatypes.JSONSlice[string] `json:"images"`

	// Children are removed together with the property.
	Rooms           []Room           `gorm:"constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
	ViewingRequests []ViewingRequest `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name used by GORM.
func (Property) TableName() string {
	return "properties"
}
