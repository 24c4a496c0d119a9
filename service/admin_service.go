package application

import (
	"context"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventsphere_backend/domain"
	"eventsphere_backend/errors"
)

const recentLimit = 4

// AdminService covers the admin-only paths: venue approval and the dashboard
// read side.
type AdminService struct {
	users    domain.UserStore
	venues   domain.VenueStore
	events   domain.EventStore
	payments domain.PaymentStore
	details  domain.DetailsStore
}

func NewAdminService(users domain.UserStore, venues domain.VenueStore, events domain.EventStore,
	payments domain.PaymentStore, details domain.DetailsStore) *AdminService {
	return &AdminService{
		users:    users,
		venues:   venues,
		events:   events,
		payments: payments,
		details:  details,
	}
}

// ApproveVenue moves a pending venue to approved or rejected. Both transitions
// are terminal; there is no path back.
func (service *AdminService) ApproveVenue(ctx context.Context, id primitive.ObjectID, request *domain.ApproveVenueRequest) (string, *domain.Venue, int, error) {
	if request.IsApproved == nil {
		return "", nil, http.StatusBadRequest, fmt.Errorf("isApproved must be a boolean")
	}

	venue, err := service.venues.Get(ctx, id)
	if err != nil {
		return "", nil, http.StatusInternalServerError, err
	}
	if venue == nil {
		return "", nil, http.StatusNotFound, fmt.Errorf(errors.VenueNotFound)
	}

	if *request.IsApproved {
		venue.VerificationStatus = domain.VerificationApproved
	} else {
		venue.VerificationStatus = domain.VerificationRejected
	}

	venue.AdminRemarks = request.AdminRemarks
	if venue.AdminRemarks == "" {
		if *request.IsApproved {
			venue.AdminRemarks = "Approved"
		} else {
			venue.AdminRemarks = "Rejected"
		}
	}

	if err := service.venues.Update(ctx, venue); err != nil {
		return "", nil, http.StatusInternalServerError, err
	}

	message := "Venue rejected successfully"
	if *request.IsApproved {
		message = "Venue approved successfully"
	}
	return message, venue, http.StatusOK, nil
}

// GetDashboardStats recomputes every figure on each call. Revenue is the sum
// of the platform fee over all successful payments in both collections.
func (service *AdminService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	var err error
	if stats.TotalUsers, err = service.users.CountExcludingRole(ctx, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if stats.TotalEvents, err = service.events.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalVenues, err = service.venues.Count(ctx); err != nil {
		return nil, err
	}

	if stats.RecentEvents, err = service.events.GetRecent(ctx, recentLimit); err != nil {
		return nil, err
	}
	if stats.RecentVenues, err = service.venues.GetRecent(ctx, recentLimit); err != nil {
		return nil, err
	}
	if stats.RecentUsers, err = service.users.GetRecentExcludingRole(ctx, domain.RoleAdmin, recentLimit); err != nil {
		return nil, err
	}

	venuePayments, err := service.payments.GetSuccessfulVenuePayments(ctx)
	if err != nil {
		return nil, err
	}
	eventPayments, err := service.payments.GetSuccessfulEventPayments(ctx)
	if err != nil {
		return nil, err
	}

	for _, payment := range venuePayments {
		stats.TotalRevenue += payment.PlatformFee
	}
	for _, payment := range eventPayments {
		stats.TotalRevenue += payment.PlatformFee
	}

	return stats, nil
}

func (service *AdminService) GetAdditionalDetails(ctx context.Context, id primitive.ObjectID) (*domain.AdditionalDetails, error) {
	return service.details.Get(ctx, id)
}

func (service *AdminService) GetAdditionalDetailsByUser(ctx context.Context, userID primitive.ObjectID) (*domain.AdditionalDetails, error) {
	return service.details.GetByUser(ctx, userID)
}
