package services

import (
	"context"
	"mime/multipart"
	"time"

	"agenda_backend/internal/apperrors"
	"agenda_backend/internal/logger"
	"agenda_backend/internal/models"
	"agenda_backend/internal/repositories"
	"agenda_backend/internal/services/dto"
	"agenda_backend/internal/slugger"

	"gorm.io/gorm"
)

const (
	dateLayout   = "2006-01-02"
	defaultColor = "bg-blue-200"
)

type EventService interface {
	List(ctx context.Context, db *gorm.DB, userID string) ([]dto.EventResponse, error)
	Get(ctx context.Context, db *gorm.DB, userID, slug string) (*dto.EventResponse, error)
	Create(ctx context.Context, db *gorm.DB, userID string, req *dto.EventRequest, photo *multipart.FileHeader) error
	Update(ctx context.Context, db *gorm.DB, userID, slug string, req *dto.EventRequest, photo *multipart.FileHeader) error
	Delete(ctx context.Context, db *gorm.DB, userID, slug string) error
}

type EventServiceImpl struct {
	eventRepo repositories.EventRepository
	photos    *photoStore
}

func NewEventService(eventRepo repositories.EventRepository, photos *photoStore) EventService {
	return &EventServiceImpl{
		eventRepo: eventRepo,
		photos:    photos,
	}
}

// List returns the caller's visible events, newest first.
func (s *EventServiceImpl) List(ctx context.Context, db *gorm.DB, userID string) ([]dto.EventResponse, error) {
	events, err := s.eventRepo.FindVisibleByOwner(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, s.toResponse(ctx, &events[i]))
	}
	return responses, nil
}

// Get returns a single visible event by slug. Events of other users
// and soft-deleted events are indistinguishable from missing ones.
func (s *EventServiceImpl) Get(ctx context.Context, db *gorm.DB, userID, slug string) (*dto.EventResponse, error) {
	event, err := s.eventRepo.FindVisibleBySlug(db, userID, slug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := s.toResponse(ctx, event)
	return &resp, nil
}

// Create stores a new event owned by the caller. Owner and status are
// forced server-side regardless of the payload.
func (s *EventServiceImpl) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.EventRequest, photo *multipart.FileHeader) error {
	start, end, err := parseDates(req)
	if err != nil {
		return err
	}

	slug, err := slugger.Derive(db, s.eventRepo, userID, req.Title, "")
	if err != nil {
		return apperrors.InternalError(err)
	}

	event := &models.Event{
		UserID:      userID,
		Slug:        slug,
		Title:       req.Title,
		Description: req.Description,
		Start:       start,
		End:         end,
		Priority:    *req.Priority,
		Location:    req.Location,
		Color:       defaultColor,
		Status:      models.StatusActive,
	}
	if req.Color != nil && *req.Color != "" {
		event.Color = *req.Color
	}

	if photo != nil {
		path, err := s.photos.Store(ctx, "events", photo)
		if err != nil {
			if isPhotoValidationError(err) {
				return apperrors.ValidationError(map[string]string{"photo": err.Error()})
			}
			return apperrors.InternalError(err)
		}
		event.Photo = &path
	}

	if err := s.eventRepo.Create(db, event); err != nil {
		// The row failed after the photo was stored; drop the file.
		if event.Photo != nil {
			s.photos.Remove(ctx, *event.Photo)
		}
		logger.CtxWithError(ctx, "Event creation failed", err, "user_id", userID)
		return apperrors.ErrEventCreateFailed
	}

	logger.CtxInfo(ctx, "Event created", "user_id", userID, "slug", event.Slug)
	return nil
}

// Update edits an owned event in place. The slug is re-derived from
// the title on every update, excluding the event's own row from the
// collision probe so an unchanged title keeps its slug.
func (s *EventServiceImpl) Update(ctx context.Context, db *gorm.DB, userID, slug string, req *dto.EventRequest, photo *multipart.FileHeader) error {
	event, err := s.eventRepo.FindBySlug(db, userID, slug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return apperrors.ErrEventNotEditable
		}
		return apperrors.InternalError(err)
	}

	start, end, err := parseDates(req)
	if err != nil {
		return err
	}

	newSlug, err := slugger.Derive(db, s.eventRepo, userID, req.Title, event.ID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if photo != nil {
		if event.Photo != nil {
			s.photos.Remove(ctx, *event.Photo)
		}
		path, err := s.photos.Store(ctx, "events", photo)
		if err != nil {
			if isPhotoValidationError(err) {
				return apperrors.ValidationError(map[string]string{"photo": err.Error()})
			}
			return apperrors.InternalError(err)
		}
		event.Photo = &path
	}

	event.Slug = newSlug
	event.Title = req.Title
	event.Description = req.Description
	event.Start = start
	event.End = end
	event.Priority = *req.Priority
	event.Location = req.Location
	if req.Color != nil && *req.Color != "" {
		event.Color = *req.Color
	}

	if err := s.eventRepo.Update(db, event); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Event updated", "user_id", userID, "slug", event.Slug)
	return nil
}

// Delete soft-deletes: the row and its photo file stay, the event
// just disappears from every read path.
func (s *EventServiceImpl) Delete(ctx context.Context, db *gorm.DB, userID, slug string) error {
	event, err := s.eventRepo.FindBySlug(db, userID, slug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return apperrors.ErrEventNotDeletable
		}
		return apperrors.InternalError(err)
	}

	if err := s.eventRepo.UpdateStatus(db, event.ID, models.StatusDisabled); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Event soft-deleted", "user_id", userID, "slug", slug)
	return nil
}

func (s *EventServiceImpl) toResponse(ctx context.Context, event *models.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:          event.ID,
		Slug:        event.Slug,
		Title:       event.Title,
		Description: event.Description,
		Start:       event.Start.Format(dateLayout),
		End:         event.End.Format(dateLayout),
		Priority:    event.Priority,
		Location:    event.Location,
		Color:       event.Color,
		Photo:       s.photos.URL(ctx, event.Photo),
		Status:      event.Status,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}

func parseDates(req *dto.EventRequest) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, req.Start)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ValidationError(map[string]string{
			"start": "Must be a date in YYYY-MM-DD format",
		})
	}
	end, err := time.Parse(dateLayout, req.End)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ValidationError(map[string]string{
			"end": "Must be a date in YYYY-MM-DD format",
		})
	}
	return start, end, nil
}
