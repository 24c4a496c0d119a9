package application

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventsphere_backend/domain"
)

type inMemoryUserStore struct {
	users []*domain.User
}

func (s *inMemoryUserStore) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.ID = primitive.NewObjectID()
	s.users = append(s.users, user)
	return user, nil
}

func (s *inMemoryUserStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (s *inMemoryUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (s *inMemoryUserStore) GetByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	for _, user := range s.users {
		if user.Email == email && user.Role == role {
			return user, nil
		}
	}
	return nil, nil
}

func (s *inMemoryUserStore) Update(ctx context.Context, user *domain.User) error {
	for i, existing := range s.users {
		if existing.ID == user.ID {
			s.users[i] = user
			return nil
		}
	}
	return fmt.Errorf("user not found")
}

func (s *inMemoryUserStore) CountExcludingRole(ctx context.Context, role domain.Role) (int64, error) {
	var count int64
	for _, user := range s.users {
		if user.Role != role {
			count++
		}
	}
	return count, nil
}

func (s *inMemoryUserStore) GetRecentExcludingRole(ctx context.Context, role domain.Role, limit int64) ([]*domain.User, error) {
	result := []*domain.User{}
	for i := len(s.users) - 1; i >= 0 && int64(len(result)) < limit; i-- {
		if s.users[i].Role != role {
			result = append(result, s.users[i])
		}
	}
	return result, nil
}

type inMemoryVenueStore struct {
	venues []*domain.Venue
}

func (s *inMemoryVenueStore) Insert(ctx context.Context, venue *domain.Venue) (*domain.Venue, error) {
	venue.ID = primitive.NewObjectID()
	s.venues = append(s.venues, venue)
	return venue, nil
}

func (s *inMemoryVenueStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Venue, error) {
	for _, venue := range s.venues {
		if venue.ID == id {
			return venue, nil
		}
	}
	return nil, nil
}

func (s *inMemoryVenueStore) GetAll(ctx context.Context) ([]*domain.Venue, error) {
	return s.venues, nil
}

func (s *inMemoryVenueStore) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*domain.Venue, error) {
	result := []*domain.Venue{}
	for _, venue := range s.venues {
		if venue.OwnerID == ownerID {
			result = append(result, venue)
		}
	}
	return result, nil
}

func (s *inMemoryVenueStore) GetByStatus(ctx context.Context, status domain.VerificationStatus) ([]*domain.Venue, error) {
	result := []*domain.Venue{}
	for _, venue := range s.venues {
		if venue.VerificationStatus == status {
			result = append(result, venue)
		}
	}
	return result, nil
}

func (s *inMemoryVenueStore) GetByNameAndAddress(ctx context.Context, name, address string) (*domain.Venue, error) {
	for _, venue := range s.venues {
		if venue.VenueName == name && venue.Address == address {
			return venue, nil
		}
	}
	return nil, nil
}

func (s *inMemoryVenueStore) Update(ctx context.Context, venue *domain.Venue) error {
	for i, existing := range s.venues {
		if existing.ID == venue.ID {
			s.venues[i] = venue
			return nil
		}
	}
	return fmt.Errorf("venue not found")
}

func (s *inMemoryVenueStore) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Venue, error) {
	for i, venue := range s.venues {
		if venue.ID == id {
			s.venues = append(s.venues[:i], s.venues[i+1:]...)
			return venue, nil
		}
	}
	return nil, nil
}

func (s *inMemoryVenueStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.venues)), nil
}

func (s *inMemoryVenueStore) GetRecent(ctx context.Context, limit int64) ([]*domain.Venue, error) {
	result := []*domain.Venue{}
	for i := len(s.venues) - 1; i >= 0 && int64(len(result)) < limit; i-- {
		result = append(result, s.venues[i])
	}
	return result, nil
}

type inMemoryEventStore struct {
	events   []*domain.Event
	registry *domain.EventTypeRegistry
}

func (s *inMemoryEventStore) Insert(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	event.ID = primitive.NewObjectID()
	s.events = append(s.events, event)
	return event, nil
}

func (s *inMemoryEventStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Event, error) {
	for _, event := range s.events {
		if event.ID == id {
			return event, nil
		}
	}
	return nil, nil
}

func (s *inMemoryEventStore) GetAll(ctx context.Context) ([]*domain.Event, error) {
	return s.events, nil
}

func (s *inMemoryEventStore) GetByOrganizer(ctx context.Context, organizerID primitive.ObjectID) ([]*domain.Event, error) {
	result := []*domain.Event{}
	for _, event := range s.events {
		if event.Organizer == organizerID {
			result = append(result, event)
		}
	}
	return result, nil
}

func (s *inMemoryEventStore) Update(ctx context.Context, event *domain.Event) error {
	for i, existing := range s.events {
		if existing.ID == event.ID {
			s.events[i] = event
			return nil
		}
	}
	return fmt.Errorf("event not found")
}

func (s *inMemoryEventStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.events)), nil
}

func (s *inMemoryEventStore) GetRecent(ctx context.Context, limit int64) ([]*domain.Event, error) {
	result := []*domain.Event{}
	for i := len(s.events) - 1; i >= 0 && int64(len(result)) < limit; i-- {
		result = append(result, s.events[i])
	}
	return result, nil
}

func (s *inMemoryEventStore) GetEventTypes(ctx context.Context) (*domain.EventTypeRegistry, error) {
	return s.registry, nil
}

func (s *inMemoryEventStore) CreateDefaultEventTypes(ctx context.Context) (*domain.EventTypeRegistry, error) {
	s.registry = &domain.EventTypeRegistry{
		ID:           primitive.NewObjectID(),
		OnlineTypes:  append([]string{}, domain.DefaultOnlineTypes...),
		OfflineTypes: append([]string{}, domain.DefaultOfflineTypes...),
	}
	return s.registry, nil
}

func (s *inMemoryEventStore) SaveEventTypes(ctx context.Context, registry *domain.EventTypeRegistry) error {
	s.registry = registry
	return nil
}

type inMemoryPaymentStore struct {
	venuePayments []*domain.VenuePayment
	eventPayments []*domain.EventPayment
}

func (s *inMemoryPaymentStore) InsertVenuePayment(ctx context.Context, payment *domain.VenuePayment) error {
	payment.ID = primitive.NewObjectID()
	s.venuePayments = append(s.venuePayments, payment)
	return nil
}

func (s *inMemoryPaymentStore) InsertEventPayment(ctx context.Context, payment *domain.EventPayment) error {
	payment.ID = primitive.NewObjectID()
	s.eventPayments = append(s.eventPayments, payment)
	return nil
}

func (s *inMemoryPaymentStore) GetVenuePaymentBySession(ctx context.Context, sessionID string) (*domain.VenuePayment, error) {
	for _, payment := range s.venuePayments {
		if payment.StripeSessionID == sessionID {
			return payment, nil
		}
	}
	return nil, nil
}

func (s *inMemoryPaymentStore) GetEventPaymentBySession(ctx context.Context, sessionID string) (*domain.EventPayment, error) {
	for _, payment := range s.eventPayments {
		if payment.StripeSessionID == sessionID {
			return payment, nil
		}
	}
	return nil, nil
}

func (s *inMemoryPaymentStore) UpdateVenuePayment(ctx context.Context, payment *domain.VenuePayment) error {
	for i, existing := range s.venuePayments {
		if existing.ID == payment.ID {
			s.venuePayments[i] = payment
			return nil
		}
	}
	return fmt.Errorf("payment not found")
}

func (s *inMemoryPaymentStore) UpdateEventPayment(ctx context.Context, payment *domain.EventPayment) error {
	for i, existing := range s.eventPayments {
		if existing.ID == payment.ID {
			s.eventPayments[i] = payment
			return nil
		}
	}
	return fmt.Errorf("payment not found")
}

func (s *inMemoryPaymentStore) GetVenuePaymentsByRenter(ctx context.Context, renterID primitive.ObjectID) ([]*domain.VenuePayment, error) {
	result := []*domain.VenuePayment{}
	for _, payment := range s.venuePayments {
		if payment.RenterID == renterID && payment.Status == domain.PaymentSuccess {
			result = append(result, payment)
		}
	}
	return result, nil
}

func (s *inMemoryPaymentStore) GetEventPaymentsByHost(ctx context.Context, hostID primitive.ObjectID) ([]*domain.EventPayment, error) {
	result := []*domain.EventPayment{}
	for _, payment := range s.eventPayments {
		if payment.HostID == hostID && payment.Status == domain.PaymentSuccess {
			result = append(result, payment)
		}
	}
	return result, nil
}

func (s *inMemoryPaymentStore) GetVenuePaymentForUser(ctx context.Context, id, userID primitive.ObjectID) (*domain.VenuePayment, error) {
	for _, payment := range s.venuePayments {
		if payment.ID == id && (payment.User == userID || payment.RenterID == userID) {
			return payment, nil
		}
	}
	return nil, nil
}

func (s *inMemoryPaymentStore) GetEventPaymentForUser(ctx context.Context, id, userID primitive.ObjectID) (*domain.EventPayment, error) {
	for _, payment := range s.eventPayments {
		if payment.ID == id && (payment.User == userID || payment.HostID == userID) {
			return payment, nil
		}
	}
	return nil, nil
}

func (s *inMemoryPaymentStore) GetVenuePaymentsByVenue(ctx context.Context, venueID primitive.ObjectID) ([]*domain.VenuePayment, error) {
	result := []*domain.VenuePayment{}
	for _, payment := range s.venuePayments {
		if payment.Venue == venueID && payment.Status == domain.PaymentSuccess {
			result = append(result, payment)
		}
	}
	return result, nil
}

func (s *inMemoryPaymentStore) GetSuccessfulVenuePayments(ctx context.Context) ([]*domain.VenuePayment, error) {
	result := []*domain.VenuePayment{}
	for _, payment := range s.venuePayments {
		if payment.Status == domain.PaymentSuccess {
			result = append(result, payment)
		}
	}
	return result, nil
}

func (s *inMemoryPaymentStore) GetSuccessfulEventPayments(ctx context.Context) ([]*domain.EventPayment, error) {
	result := []*domain.EventPayment{}
	for _, payment := range s.eventPayments {
		if payment.Status == domain.PaymentSuccess {
			result = append(result, payment)
		}
	}
	return result, nil
}

type inMemoryDetailsStore struct {
	details []*domain.AdditionalDetails
}

func (s *inMemoryDetailsStore) Insert(ctx context.Context, details *domain.AdditionalDetails) (*domain.AdditionalDetails, error) {
	details.ID = primitive.NewObjectID()
	s.details = append(s.details, details)
	return details, nil
}

func (s *inMemoryDetailsStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.AdditionalDetails, error) {
	for _, details := range s.details {
		if details.ID == id {
			return details, nil
		}
	}
	return nil, nil
}

func (s *inMemoryDetailsStore) GetByUser(ctx context.Context, userID primitive.ObjectID) (*domain.AdditionalDetails, error) {
	for _, details := range s.details {
		if details.UserID == userID {
			return details, nil
		}
	}
	return nil, nil
}

func (s *inMemoryDetailsStore) GetByPanCardNumber(ctx context.Context, panCardNumber string) (*domain.AdditionalDetails, error) {
	for _, details := range s.details {
		if details.PanCardNumber == panCardNumber {
			return details, nil
		}
	}
	return nil, nil
}

// fakeGateway hands out deterministic session ids and records created sessions.
type fakeGateway struct {
	sessions  int
	customers int
	lastItem  domain.CheckoutItem
}

func (g *fakeGateway) CreateCustomer(ctx context.Context, name string) (string, error) {
	g.customers++
	return fmt.Sprintf("cus_%d", g.customers), nil
}

func (g *fakeGateway) CreateCheckoutSession(ctx context.Context, customerID string, item domain.CheckoutItem) (*domain.CheckoutSession, error) {
	g.sessions++
	g.lastItem = item
	return &domain.CheckoutSession{
		ID:  fmt.Sprintf("cs_test_%d", g.sessions),
		URL: fmt.Sprintf("https://checkout.stripe.com/pay/cs_test_%d", g.sessions),
	}, nil
}

// fakeMediaStore returns stable URLs without any network traffic.
type fakeMediaStore struct {
	uploads int
}

func (m *fakeMediaStore) UploadImage(ctx context.Context, folder, publicID string, content []byte) (string, error) {
	m.uploads++
	return fmt.Sprintf("https://res.cloudinary.com/test/image/upload/%s/%s", folder, publicID), nil
}

func (m *fakeMediaStore) UploadDocument(ctx context.Context, folder, publicID string, content []byte) (string, error) {
	m.uploads++
	return fmt.Sprintf("https://res.cloudinary.com/test/raw/upload/%s/%s", folder, publicID), nil
}

// fakeMediaCache is a map-backed stand-in for the Redis image cache.
type fakeMediaCache struct {
	entries map[string][]string
}

func newFakeMediaCache() *fakeMediaCache {
	return &fakeMediaCache{entries: map[string][]string{}}
}

func (c *fakeMediaCache) Post(ctx context.Context, venueID string, urls []string) error {
	c.entries[venueID] = urls
	return nil
}

func (c *fakeMediaCache) Get(ctx context.Context, venueID string) ([]string, error) {
	urls, ok := c.entries[venueID]
	if !ok {
		return nil, fmt.Errorf("cache miss")
	}
	return urls, nil
}
