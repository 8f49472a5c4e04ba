package models

type Profile struct {
	BaseModel
	UserID  string  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Name    string  `gorm:"size:100;not null" json:"name"`
	Surname string  `gorm:"size:100;not null" json:"surname"`
	Photo   *string `gorm:"size:255" json:"photo"`
}
