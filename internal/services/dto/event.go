package dto

import "time"

// EventRequest covers both create and update: the two operations
// validate the same fields.
type EventRequest struct {
	Title       string  `json:"title" form:"title" validate:"required,max=255"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=255"`
	Start       string  `json:"start" form:"start" validate:"required,dateonly"`
	End         string  `json:"end" form:"end" validate:"required,dateonly"`
	Priority    *int    `json:"priority" form:"priority" validate:"required"`
	Location    *string `json:"location" form:"location" validate:"omitempty,max=350"`
	Color       *string `json:"color" form:"color" validate:"omitempty,max=100"`
}

type EventResponse struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Start       string    `json:"start"`
	End         string    `json:"end"`
	Priority    int       `json:"priority"`
	Location    *string   `json:"location"`
	Color       string    `json:"color"`
	Photo       *string   `json:"photo"`
	Status      int       `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
