package models

// Row statuses shared by users and events.
// 0 = disabled / soft-deleted, 1 = active / visible.
const (
	StatusDisabled = 0
	StatusActive   = 1
)
