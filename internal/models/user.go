package models

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Status       int    `gorm:"not null;default:1" json:"status"`

	// Relations
	Profile      *Profile      `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Events       []Event       `gorm:"foreignKey:UserID" json:"-"`
	AccessTokens []AccessToken `gorm:"foreignKey:UserID" json:"-"`
}
