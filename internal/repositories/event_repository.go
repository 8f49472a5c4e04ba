package repositories

import (
	"errors"

	"agenda_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	FindVisibleByOwner(db *gorm.DB, userID string) ([]models.Event, error)
	FindVisibleBySlug(db *gorm.DB, userID, slug string) (*models.Event, error)
	FindBySlug(db *gorm.DB, userID, slug string) (*models.Event, error)
	SlugExists(db *gorm.DB, userID, slug, excludeEventID string) (bool, error)
	Create(db *gorm.DB, event *models.Event) error
	Update(db *gorm.DB, event *models.Event) error
	UpdateStatus(db *gorm.DB, eventID string, status int) error
	FindAllByOwner(db *gorm.DB, userID string) ([]models.Event, error)
	DeleteByOwner(db *gorm.DB, userID string) error
}

type EventRepositoryImpl struct{}

func NewEventRepository() EventRepository {
	return &EventRepositoryImpl{}
}

func (r *EventRepositoryImpl) FindVisibleByOwner(db *gorm.DB, userID string) ([]models.Event, error) {
	var events []models.Event
	err := db.Where("user_id = ? AND status = ?", userID, models.StatusActive).
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}

func (r *EventRepositoryImpl) FindVisibleBySlug(db *gorm.DB, userID, slug string) (*models.Event, error) {
	var event models.Event
	err := db.First(&event, "user_id = ? AND slug = ? AND status = ?",
		userID, slug, models.StatusActive).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// FindBySlug looks up by owner and slug without the status filter.
// Update and delete operate on soft-deleted rows too.
func (r *EventRepositoryImpl) FindBySlug(db *gorm.DB, userID, slug string) (*models.Event, error) {
	var event models.Event
	err := db.First(&event, "user_id = ? AND slug = ?", userID, slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// SlugExists reports whether the owner already has an event with the
// slug. excludeEventID keeps an event from colliding with itself when
// its slug is re-derived on update.
func (r *EventRepositoryImpl) SlugExists(db *gorm.DB, userID, slug, excludeEventID string) (bool, error) {
	query := db.Model(&models.Event{}).Where("user_id = ? AND slug = ?", userID, slug)
	if excludeEventID != "" {
		query = query.Where("id <> ?", excludeEventID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *EventRepositoryImpl) Create(db *gorm.DB, event *models.Event) error {
	return db.Create(event).Error
}

func (r *EventRepositoryImpl) Update(db *gorm.DB, event *models.Event) error {
	return db.Model(event).Updates(map[string]interface{}{
		"slug":        event.Slug,
		"title":       event.Title,
		"description": event.Description,
		"start":       event.Start,
		"end":         event.End,
		"priority":    event.Priority,
		"location":    event.Location,
		"color":       event.Color,
		"photo":       event.Photo,
	}).Error
}

func (r *EventRepositoryImpl) UpdateStatus(db *gorm.DB, eventID string, status int) error {
	return db.Model(&models.Event{}).Where("id = ?", eventID).
		Update("status", status).Error
}

// FindAllByOwner returns every event of the owner regardless of
// status. Used by the delete-user cascade for photo cleanup.
func (r *EventRepositoryImpl) FindAllByOwner(db *gorm.DB, userID string) ([]models.Event, error) {
	var events []models.Event
	err := db.Where("user_id = ?", userID).Find(&events).Error
	return events, err
}

func (r *EventRepositoryImpl) DeleteByOwner(db *gorm.DB, userID string) error {
	return db.Delete(&models.Event{}, "user_id = ?", userID).Error
}
