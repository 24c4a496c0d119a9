package application

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"eventsphere_backend/domain"
	"eventsphere_backend/errors"
)

type DetailsService struct {
	store domain.DetailsStore
	media domain.MediaStore
}

func NewDetailsService(store domain.DetailsStore, media domain.MediaStore) *DetailsService {
	return &DetailsService{
		store: store,
		media: media,
	}
}

// Create uploads the PAN card image and stores the payout details. One record
// per PAN number.
func (service *DetailsService) Create(ctx context.Context, details *domain.AdditionalDetails, panCard *domain.FileUpload) (*domain.AdditionalDetails, int, error) {
	if panCard == nil {
		return nil, http.StatusBadRequest, fmt.Errorf(errors.NoFileUploaded)
	}

	existing, err := service.store.GetByPanCardNumber(ctx, details.PanCardNumber)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if existing != nil {
		return nil, http.StatusBadRequest, fmt.Errorf(errors.PanCardExists)
	}

	url, err := service.media.UploadImage(ctx, "pan-cards", uuid.New().String(), panCard.Content)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	details.PanCard = url

	saved, err := service.store.Insert(ctx, details)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return saved, http.StatusCreated, nil
}
