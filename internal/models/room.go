package models

import (
	"gorm.io/datatypes"
)

// Room represents a room within a property. Rooms are created by seeding only;
// no mutation endpoints are exposed. DisplayOrder controls presentation
// sequence (ascending), with the row ID breaking ties.
type Room struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	PropertyID   uint                        `gorm:"not null;index" json:"property_id"`
	Name         string                      `gorm:"size:100;not null" json:"name"`
	RoomType     string                      `gorm:"size:50;not null" json:"room_type"`
	Description  string                      `gorm:"type:text;not null" json:"description"`
	Dimensions   *string                     `gorm:"size:50" json:"dimensions"`
	Features     datatypes.JSONSlice[string] `json:"features"`
	Images       datatypes.JSONSlice[string] `json:"images"`
	DisplayOrder int                         `gorm:"default:0" json:"display_order"`
}

// TableName overrides the table name used by GORM.
func (Room) TableName() string {
	return "rooms"
}
