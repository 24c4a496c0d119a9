package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventsphere_backend/domain"
	"eventsphere_backend/service"
)

type stubVenueStore struct {
	venues []*domain.Venue
}

func (s *stubVenueStore) Insert(ctx context.Context, venue *domain.Venue) (*domain.Venue, error) {
	venue.ID = primitive.NewObjectID()
	s.venues = append(s.venues, venue)
	return venue, nil
}

func (s *stubVenueStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Venue, error) {
	for _, venue := range s.venues {
		if venue.ID == id {
			return venue, nil
		}
	}
	return nil, nil
}

func (s *stubVenueStore) GetAll(ctx context.Context) ([]*domain.Venue, error) {
	return s.venues, nil
}

func (s *stubVenueStore) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*domain.Venue, error) {
	result := []*domain.Venue{}
	for _, venue := range s.venues {
		if venue.OwnerID == ownerID {
			result = append(result, venue)
		}
	}
	return result, nil
}

func (s *stubVenueStore) GetByStatus(ctx context.Context, status domain.VerificationStatus) ([]*domain.Venue, error) {
	return nil, nil
}

func (s *stubVenueStore) GetByNameAndAddress(ctx context.Context, name, address string) (*domain.Venue, error) {
	for _, venue := range s.venues {
		if venue.VenueName == name && venue.Address == address {
			return venue, nil
		}
	}
	return nil, nil
}

func (s *stubVenueStore) Update(ctx context.Context, venue *domain.Venue) error {
	return nil
}

func (s *stubVenueStore) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Venue, error) {
	return nil, nil
}

func (s *stubVenueStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.venues)), nil
}

func (s *stubVenueStore) GetRecent(ctx context.Context, limit int64) ([]*domain.Venue, error) {
	return s.venues, nil
}

type stubMediaCache struct {
	entries map[string][]string
}

func newStubMediaCache() *stubMediaCache {
	return &stubMediaCache{entries: map[string][]string{}}
}

func (c *stubMediaCache) Post(ctx context.Context, venueID string, urls []string) error {
	c.entries[venueID] = urls
	return nil
}

func (c *stubMediaCache) Get(ctx context.Context, venueID string) ([]string, error) {
	urls, ok := c.entries[venueID]
	if !ok {
		return nil, fmt.Errorf("cache miss")
	}
	return urls, nil
}

func newVenueRouter() *mux.Router {
	handler := NewVenueHandler(application.NewVenueService(&stubVenueStore{}, &stubMediaStore{}, newStubMediaCache()))
	router := mux.NewRouter()
	handler.Init(router.PathPrefix("/api/venues").Subrouter())
	return router
}

func venueForm() map[string]string {
	return map[string]string{
		"venueName":    "Grand Hall",
		"description":  "Downtown event hall",
		"address":      "42 Center St",
		"capacity":     "300",
		"price":        `{"dailyRate":1000,"hourlyRate":150}`,
		"amenities":    `["Parking","WiFi"]`,
		"ownerContact": `{"email":"owner@test.com","phone":"9876543210"}`,
	}
}

func TestCreateVenueEndpoint(t *testing.T) {
	router := newVenueRouter()

	req := multipartRequest(t, "/api/venues/create", domain.RoleRenter, venueForm(), "", "")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Venue created successfully")
	assert.Contains(t, rec.Body.String(), `"venue"`)
	assert.Contains(t, rec.Body.String(), "Grand Hall")
}

func TestCreateVenueEndpointDuplicate(t *testing.T) {
	router := newVenueRouter()

	req := multipartRequest(t, "/api/venues/create", domain.RoleRenter, venueForm(), "", "")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = multipartRequest(t, "/api/venues/create", domain.RoleRenter, venueForm(), "", "")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}
