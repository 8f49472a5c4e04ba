package services

import (
	"agenda_backend/internal/repositories"
	"agenda_backend/internal/storage"
)

// ServiceContainer bundles every service for dependency injection.
type ServiceContainer struct {
	AuthService  AuthService
	UserService  UserService
	EventService EventService
}

// Deps are the shared collaborators the services are built from.
type Deps struct {
	Storage      storage.Storage
	MaxPhotoSize int64
	AllowedTypes []string
}

// NewServiceContainer wires repositories and services together.
func NewServiceContainer(deps Deps) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	eventRepo := repositories.NewEventRepository()
	tokenRepo := repositories.NewAccessTokenRepository()

	photos := newPhotoStore(deps.Storage, deps.MaxPhotoSize, deps.AllowedTypes)

	return &ServiceContainer{
		AuthService:  NewAuthService(userRepo, profileRepo, eventRepo, tokenRepo, photos),
		UserService:  NewUserService(userRepo, profileRepo, photos),
		EventService: NewEventService(eventRepo, photos),
	}
}
