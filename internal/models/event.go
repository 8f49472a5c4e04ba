package models

import "time"

type Event struct {
	BaseModel
	UserID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_events_owner_slug" json:"user_id"`
	Slug        string    `gorm:"size:100;not null;uniqueIndex:idx_events_owner_slug" json:"slug"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description *string   `gorm:"size:255" json:"description"`
	Start       time.Time `gorm:"not null" json:"-"`
	End         time.Time `gorm:"not null" json:"-"`
	Priority    int       `gorm:"not null;default:0" json:"priority"`
	Location    *string   `gorm:"size:350" json:"location"`
	Color       string    `gorm:"size:100;default:'bg-blue-200'" json:"color"`
	Photo       *string   `gorm:"size:255" json:"photo"`
	Status      int       `gorm:"not null;default:1" json:"status"`
}
