package models

import (
	"time"
)

// JobApplication is a single application record. Tags are linked through
// ApplicationTag rows rather than a navigation slice; resolution goes
// through the association service.
type JobApplication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CompanyName string    `gorm:"size:100;not null" json:"companyName"`
	Position    string    `gorm:"size:100;not null" json:"position"`
	DateApplied time.Time `gorm:"not null" json:"dateApplied"`
}

// Tag is a label that can be attached to applications
// (e.g. "Applied", "Interviewed", "Offer").
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

// ApplicationTag joins JobApplication and Tag. The composite primary key
// guarantees at most one link per (application, tag) pair.
type ApplicationTag struct {
	ApplicationID uint      `gorm:"primaryKey" json:"application_id"`
	TagID         uint      `gorm:"primaryKey" json:"tag_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName specifies the join table name for GORM
func (ApplicationTag) TableName() string {
	return "application_tags"
}
