package application

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventsphere_backend/domain"
	"eventsphere_backend/errors"
)

type VenueService struct {
	store domain.VenueStore
	media domain.MediaStore
	cache domain.MediaCache
}

func NewVenueService(store domain.VenueStore, media domain.MediaStore, cache domain.MediaCache) *VenueService {
	return &VenueService{
		store: store,
		media: media,
		cache: cache,
	}
}

// Create uploads the submitted files, then persists the venue with pending
// verification. A venue is a duplicate when name and address both match.
func (service *VenueService) Create(ctx context.Context, venue *domain.Venue, images, documents []domain.FileUpload) (*domain.Venue, int, error) {
	existing, err := service.store.GetByNameAndAddress(ctx, venue.VenueName, venue.Address)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if existing != nil {
		return nil, http.StatusBadRequest, fmt.Errorf(errors.VenueExists)
	}

	imageUrls, err := service.uploadAll(ctx, "venues/images", images, false)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	documentUrls, err := service.uploadAll(ctx, "venues/documents", documents, true)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	venue.Images = imageUrls
	venue.Documents = documentUrls
	venue.VerificationStatus = domain.VerificationPending
	if venue.Price.MinHourlyDuration == 0 {
		venue.Price.MinHourlyDuration = 1
	}
	if venue.Price.MaxHourlyDuration == 0 {
		venue.Price.MaxHourlyDuration = 8
	}

	saved, err := service.store.Insert(ctx, venue)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return saved, http.StatusCreated, nil
}

func (service *VenueService) GetAll(ctx context.Context) ([]*domain.Venue, error) {
	return service.store.GetAll(ctx)
}

func (service *VenueService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Venue, error) {
	return service.store.Get(ctx, id)
}

func (service *VenueService) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*domain.Venue, error) {
	return service.store.GetByOwner(ctx, ownerID)
}

func (service *VenueService) GetVerified(ctx context.Context) ([]*domain.Venue, error) {
	return service.store.GetByStatus(ctx, domain.VerificationApproved)
}

// GetImages serves the image URL list from the cache when possible and
// repopulates it from the venue document on a miss.
func (service *VenueService) GetImages(ctx context.Context, id primitive.ObjectID) ([]string, error) {
	urls, err := service.cache.Get(ctx, id.Hex())
	if err == nil {
		return urls, nil
	}

	venue, err := service.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, fmt.Errorf(errors.VenueNotFound)
	}

	if err := service.cache.Post(ctx, id.Hex(), venue.Images); err != nil {
		log.Println("Error caching venue images:", err)
	}
	return venue.Images, nil
}

// Update merges the payload into the stored venue. Identity and approval
// fields cannot be changed through this path.
func (service *VenueService) Update(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*domain.Venue, int, error) {
	venue, err := service.store.Get(ctx, id)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if venue == nil {
		return nil, http.StatusNotFound, fmt.Errorf(errors.VenueNotFound)
	}

	for key := range payload {
		switch key {
		case "id", "_id", "ownerId", "verificationStatus", "adminRemarks":
			delete(payload, key)
		}
	}

	if err := mapstructure.Decode(payload, venue); err != nil {
		return nil, http.StatusInternalServerError, err
	}

	if err := service.store.Update(ctx, venue); err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return venue, http.StatusOK, nil
}

func (service *VenueService) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Venue, error) {
	return service.store.Delete(ctx, id)
}

func (service *VenueService) uploadAll(ctx context.Context, folder string, files []domain.FileUpload, raw bool) ([]string, error) {
	urls := []string{}
	for _, file := range files {
		publicID := uuid.New().String()
		var url string
		var err error
		if raw {
			url, err = service.media.UploadDocument(ctx, folder, publicID, file.Content)
		} else {
			url, err = service.media.UploadImage(ctx, folder, publicID, file.Content)
		}
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
