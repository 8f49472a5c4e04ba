package dto

import "time"

// ProfileResponse is the profile as returned to clients: the photo is
// a public URL, never a storage-relative path.
type ProfileResponse struct {
	Name    string  `json:"name"`
	Surname string  `json:"surname"`
	Photo   *string `json:"photo"`
}

// UserResponse merges the user record with its profile.
type UserResponse struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	Status    int              `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Profile   *ProfileResponse `json:"profile"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=100"`
	Surname string `json:"surname" form:"surname" validate:"required,max=100"`
}
