package models

import (
	"time"

	"gorm.io/datatypes"
)

// AccessToken is the server-side record behind a bearer token. The
// JWT carries TokenID as its jti; deleting the row revokes the token
// before its signature expires.
type AccessToken struct {
	BaseModel
	UserID    string         `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenID   string         `gorm:"type:uuid;uniqueIndex;not null" json:"-"`
	Abilities datatypes.JSON `json:"abilities"`
	ExpiresAt time.Time      `gorm:"not null" json:"expires_at"`
}
