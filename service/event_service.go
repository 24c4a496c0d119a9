package application

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventsphere_backend/domain"
	"eventsphere_backend/errors"
)

type EventService struct {
	store domain.EventStore
	media domain.MediaStore
}

func NewEventService(store domain.EventStore, media domain.MediaStore) *EventService {
	return &EventService{
		store: store,
		media: media,
	}
}

// CreateEvent validates the type against the registry for the event's mode,
// uploads the images and persists the event as Upcoming.
func (service *EventService) CreateEvent(ctx context.Context, event *domain.Event, images []domain.FileUpload) (*domain.Event, int, error) {
	registry, err := service.store.GetEventTypes(ctx)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if registry == nil {
		return nil, http.StatusBadRequest, fmt.Errorf(errors.NoEventTypes)
	}

	validTypes := registry.OfflineTypes
	if event.Mode == domain.ModeOnline {
		validTypes = registry.OnlineTypes
	}
	if !contains(validTypes, event.Type) {
		return nil, http.StatusBadRequest, fmt.Errorf(errors.InvalidEventTypeForMode)
	}

	if event.Mode == domain.ModeOffline && event.Venue == nil && event.CustomAddress == "" {
		return nil, http.StatusBadRequest, fmt.Errorf(errors.OfflineVenueRequired)
	}

	if len(event.TicketTypes) == 0 {
		return nil, http.StatusBadRequest, fmt.Errorf(errors.TicketTypesRequired)
	}
	for _, ticket := range event.TicketTypes {
		if ticket.Name == "" || ticket.Price == 0 || ticket.AvailableQuantity == 0 {
			return nil, http.StatusBadRequest, fmt.Errorf(errors.TicketTypeFieldsRequired)
		}
	}

	imageUrls := []string{}
	for _, image := range images {
		url, err := service.media.UploadImage(ctx, "events/images", uuid.New().String(), image.Content)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		imageUrls = append(imageUrls, url)
	}

	if event.Mode == domain.ModeOnline {
		event.Venue = nil
		event.CustomAddress = ""
	}
	event.Images = imageUrls
	event.Status = domain.StatusUpcoming

	saved, err := service.store.Insert(ctx, event)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return saved, http.StatusCreated, nil
}

// GetEventTypesByMode serves the registry list for the mode, creating the
// registry with the default lists on first access.
func (service *EventService) GetEventTypesByMode(ctx context.Context, mode domain.EventMode) ([]string, int, error) {
	registry, err := service.store.GetEventTypes(ctx)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if registry == nil {
		registry, err = service.store.CreateDefaultEventTypes(ctx)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
	}

	switch mode {
	case domain.ModeOnline:
		return registry.OnlineTypes, http.StatusOK, nil
	case domain.ModeOffline:
		return registry.OfflineTypes, http.StatusOK, nil
	}
	return nil, http.StatusBadRequest, fmt.Errorf(errors.InvalidModeError)
}

// AddCustomEventType appends an unseen type name to the mode's list. The
// registry save is a read-modify-write without a version check, so two
// concurrent writers can lose one of the additions.
func (service *EventService) AddCustomEventType(ctx context.Context, mode domain.EventMode, customType string) (*domain.EventTypeRegistry, int, error) {
	if customType == "" || mode == "" {
		return nil, http.StatusBadRequest, fmt.Errorf(errors.InvalidRequestFormat)
	}

	registry, err := service.store.GetEventTypes(ctx)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if registry == nil {
		registry, err = service.store.CreateDefaultEventTypes(ctx)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
	}

	switch mode {
	case domain.ModeOnline:
		if contains(registry.OnlineTypes, customType) {
			return nil, http.StatusBadRequest, fmt.Errorf(errors.DuplicateOnlineType)
		}
		registry.OnlineTypes = append(registry.OnlineTypes, customType)
	case domain.ModeOffline:
		if contains(registry.OfflineTypes, customType) {
			return nil, http.StatusBadRequest, fmt.Errorf(errors.DuplicateOfflineType)
		}
		registry.OfflineTypes = append(registry.OfflineTypes, customType)
	default:
		return nil, http.StatusBadRequest, fmt.Errorf(errors.InvalidModeError)
	}

	if err := service.store.SaveEventTypes(ctx, registry); err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return registry, http.StatusOK, nil
}

func (service *EventService) GetAll(ctx context.Context) ([]*domain.Event, error) {
	return service.store.GetAll(ctx)
}

func (service *EventService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Event, error) {
	return service.store.Get(ctx, id)
}

func (service *EventService) GetByOrganizer(ctx context.Context, organizerID primitive.ObjectID) ([]*domain.Event, error) {
	return service.store.GetByOrganizer(ctx, organizerID)
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
