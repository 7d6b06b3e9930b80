package models

import (
	"time"
)

// ViewingRequestStatus is the lifecycle state of a viewing request.
type ViewingRequestStatus = string

const (
	StatusPending  ViewingRequestStatus = "pending"
	StatusApproved ViewingRequestStatus = "approved"
	StatusRejected ViewingRequestStatus = "rejected"
)

// AllowedStatuses is the set of statuses a viewing request may transition to.
var AllowedStatuses = map[string]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusRejected: true,
}

// ViewingRequest represents a request from a potential buyer to view the
// property. Created via the public submission endpoint; only its status is
// ever mutated afterwards. PreferredDate is kept as a validated YYYY-MM-DD
// string rather than a DATE column so the schema ports across drivers.
type ViewingRequest struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PropertyID    uint      `gorm:"not null;index" json:"property_id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Email         string    `gorm:"size:255;not null" json:"email"`
	Phone         string    `gorm:"size:30;not null" json:"phone"`
	PreferredDate string    `gorm:"size:20;not null" json:"preferred_date"`
	PreferredTime *string   `gorm:"size:20" json:"preferred_time"`
	Message       *string   `gorm:"type:text" json:"message"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	Status        string    `gorm:"size:20;default:'pending'" json:"status"`
}

// TableName overrides the table name used by GORM.
func (ViewingRequest) TableName() string {
	return "viewing_requests"
}
