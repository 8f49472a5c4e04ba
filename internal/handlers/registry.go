package handlers

import (
	"agenda_backend/internal/services"
	"agenda_backend/internal/storage"
	"agenda_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth  *AuthHandler
	User  *UserHandler
	Event *EventHandler
	File  *FileHandler
}

func NewAppHandlers(container *services.ServiceContainer, store storage.Storage) *AppHandlers {
	v := validator.New()

	return &AppHandlers{
		Auth:  NewAuthHandler(v, container.AuthService),
		User:  NewUserHandler(v, container.UserService),
		Event: NewEventHandler(v, container.EventService),
		File:  NewFileHandler(store),
	}
}
