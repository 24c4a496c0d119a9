package application

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"eventsphere_backend/domain"
	"eventsphere_backend/errors"
)

const platformFeeRate = 0.10

// PaymentService turns booking intents into hosted checkout sessions and
// applies the gateway outcome to the stored payment records.
type PaymentService struct {
	payments domain.PaymentStore
	venues   domain.VenueStore
	events   domain.EventStore
	users    domain.UserStore
	gateway  domain.PaymentGateway
	tracer   trace.Tracer
}

func NewPaymentService(payments domain.PaymentStore, venues domain.VenueStore, events domain.EventStore,
	users domain.UserStore, gateway domain.PaymentGateway, tracer trace.Tracer) *PaymentService {
	return &PaymentService{
		payments: payments,
		venues:   venues,
		events:   events,
		users:    users,
		gateway:  gateway,
		tracer:   tracer,
	}
}

// Pay resolves the booking target, computes the amounts and creates a gateway
// checkout session plus a Pending payment record. Inventory is not touched
// here; the decrement happens only when the session is reconciled as Success.
func (service *PaymentService) Pay(ctx context.Context, userID primitive.ObjectID, request *domain.PaymentRequest) (*domain.CheckoutResponse, int, error) {
	ctx, span := service.tracer.Start(ctx, "PaymentService.Pay")
	defer span.End()

	if request.VenueID != "" {
		return service.payForVenue(ctx, userID, request)
	}
	if request.EventID != "" {
		return service.payForEvent(ctx, userID, request)
	}
	span.SetStatus(codes.Error, errors.InvalidBookingTarget)
	return nil, http.StatusBadRequest, fmt.Errorf(errors.InvalidBookingTarget)
}

func (service *PaymentService) payForVenue(ctx context.Context, userID primitive.ObjectID, request *domain.PaymentRequest) (*domain.CheckoutResponse, int, error) {
	venueID, err := primitive.ObjectIDFromHex(request.VenueID)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	venue, err := service.venues.Get(ctx, venueID)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if venue == nil {
		return nil, http.StatusNotFound, fmt.Errorf(errors.VenueNotFound)
	}

	checkIn, err := parseDate(request.CheckInDate)
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf(errors.InvalidBookingDates)
	}
	checkOut, err := parseDate(request.CheckOutDate)
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf(errors.InvalidBookingDates)
	}

	numDays := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if numDays <= 0 {
		return nil, http.StatusBadRequest, fmt.Errorf(errors.InvalidBookingDates)
	}

	totalAmount := venue.Price.DailyRate * float64(numDays)
	platformFee := totalAmount * platformFeeRate
	finalAmount := totalAmount - platformFee

	session, statusCode, err := service.createSession(ctx, domain.CheckoutItem{
		Name:        venue.VenueName,
		Description: venue.Address,
		UnitAmount:  int64(venue.Price.DailyRate * 100),
		Quantity:    int64(numDays),
		Metadata: map[string]string{
			"venueId":      request.VenueID,
			"venueName":    venue.VenueName,
			"venueAddress": venue.Address,
			"checkInDate":  request.CheckInDate,
			"checkOutDate": request.CheckOutDate,
			"platformFee":  fmt.Sprintf("%.2f", platformFee),
			"finalAmount":  fmt.Sprintf("%.2f", finalAmount),
		},
	})
	if err != nil {
		return nil, statusCode, err
	}

	payment := &domain.VenuePayment{
		User:            userID,
		RenterID:        venue.OwnerID,
		Venue:           venue.ID,
		VenueName:       venue.VenueName,
		VenueAddress:    venue.Address,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Amount:          totalAmount,
		PlatformFee:     platformFee,
		FinalAmount:     finalAmount,
		Status:          domain.PaymentPending,
		StripeSessionID: session.ID,
	}
	if err := service.payments.InsertVenuePayment(ctx, payment); err != nil {
		return nil, http.StatusInternalServerError, err
	}

	return &domain.CheckoutResponse{SessionID: session.ID, URL: session.URL}, http.StatusOK, nil
}

func (service *PaymentService) payForEvent(ctx context.Context, userID primitive.ObjectID, request *domain.PaymentRequest) (*domain.CheckoutResponse, int, error) {
	eventID, err := primitive.ObjectIDFromHex(request.EventID)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	event, err := service.events.Get(ctx, eventID)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if event == nil {
		return nil, http.StatusNotFound, fmt.Errorf(errors.EventNotFound)
	}

	var selectedTicket *domain.TicketType
	for i := range event.TicketTypes {
		if event.TicketTypes[i].Name == request.TicketType {
			selectedTicket = &event.TicketTypes[i]
			break
		}
	}
	if selectedTicket == nil {
		return nil, http.StatusBadRequest, fmt.Errorf(errors.InvalidTicketType)
	}
	if request.TicketQuantity > selectedTicket.AvailableQuantity {
		return nil, http.StatusBadRequest, fmt.Errorf(errors.NotEnoughTickets)
	}

	totalAmount := selectedTicket.Price * float64(request.TicketQuantity)
	platformFee := totalAmount * platformFeeRate
	finalAmount := totalAmount - platformFee

	session, statusCode, err := service.createSession(ctx, domain.CheckoutItem{
		Name:        event.EventName,
		Description: fmt.Sprintf("Event on %s", event.Date.Format("1/2/2006")),
		UnitAmount:  int64(selectedTicket.Price * 100),
		Quantity:    int64(request.TicketQuantity),
		Metadata: map[string]string{
			"eventId":        request.EventID,
			"eventName":      event.EventName,
			"ticketType":     request.TicketType,
			"ticketQuantity": fmt.Sprintf("%d", request.TicketQuantity),
			"platformFee":    fmt.Sprintf("%.2f", platformFee),
			"finalAmount":    fmt.Sprintf("%.2f", finalAmount),
		},
	})
	if err != nil {
		return nil, statusCode, err
	}

	payment := &domain.EventPayment{
		User:            userID,
		HostID:          event.Organizer,
		Event:           event.ID,
		EventName:       event.EventName,
		EventDate:       event.Date,
		TicketType:      request.TicketType,
		TicketQuantity:  request.TicketQuantity,
		Amount:          totalAmount,
		PlatformFee:     platformFee,
		FinalAmount:     finalAmount,
		Status:          domain.PaymentPending,
		StripeSessionID: session.ID,
	}
	if err := service.payments.InsertEventPayment(ctx, payment); err != nil {
		return nil, http.StatusInternalServerError, err
	}

	return &domain.CheckoutResponse{SessionID: session.ID, URL: session.URL}, http.StatusOK, nil
}

func (service *PaymentService) createSession(ctx context.Context, item domain.CheckoutItem) (*domain.CheckoutSession, int, error) {
	customerID, err := service.gateway.CreateCustomer(ctx, "Testing")
	if err != nil {
		log.Println("Error creating gateway customer:", err)
		return nil, http.StatusInternalServerError, err
	}

	session, err := service.gateway.CreateCheckoutSession(ctx, customerID, item)
	if err != nil {
		log.Println("Error creating checkout session:", err)
		return nil, http.StatusInternalServerError, err
	}
	return session, http.StatusOK, nil
}

// UpdateStatus applies the reported outcome to the payment record found by
// session id, probing venue payments first. On Success for an event payment
// the booked quantity is subtracted from the ticket inventory. The status
// value is taken from the client as-is; there is no verification against the
// gateway, and repeated calls decrement repeatedly.
func (service *PaymentService) UpdateStatus(ctx context.Context, sessionID string, status domain.PaymentStatus) (interface{}, int, error) {
	ctx, span := service.tracer.Start(ctx, "PaymentService.UpdateStatus")
	defer span.End()

	venuePayment, err := service.payments.GetVenuePaymentBySession(ctx, sessionID)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if venuePayment != nil {
		venuePayment.Status = status
		if err := service.payments.UpdateVenuePayment(ctx, venuePayment); err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return venuePayment, http.StatusOK, nil
	}

	eventPayment, err := service.payments.GetEventPaymentBySession(ctx, sessionID)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if eventPayment == nil {
		span.SetStatus(codes.Error, errors.PaymentNotFound)
		return nil, http.StatusNotFound, fmt.Errorf(errors.PaymentNotFound)
	}

	eventPayment.Status = status
	if err := service.payments.UpdateEventPayment(ctx, eventPayment); err != nil {
		return nil, http.StatusInternalServerError, err
	}

	if status == domain.PaymentSuccess {
		event, err := service.events.Get(ctx, eventPayment.Event)
		if err != nil {
			log.Println("Error loading event for inventory update:", err)
		}
		if event != nil {
			for i := range event.TicketTypes {
				if event.TicketTypes[i].Name == eventPayment.TicketType {
					event.TicketTypes[i].AvailableQuantity -= eventPayment.TicketQuantity
					if err := service.events.Update(ctx, event); err != nil {
						log.Println("Error updating ticket inventory:", err)
					}
					break
				}
			}
		}
	}

	return eventPayment, http.StatusOK, nil
}

func (service *PaymentService) GetVenuePayments(ctx context.Context, userID primitive.ObjectID) ([]*domain.VenuePayment, error) {
	return service.payments.GetVenuePaymentsByRenter(ctx, userID)
}

func (service *PaymentService) GetEventPayments(ctx context.Context, userID primitive.ObjectID) ([]*domain.EventPayment, error) {
	return service.payments.GetEventPaymentsByHost(ctx, userID)
}

// GetPayment returns a single payment record visible to the caller as payer
// or receiver, from whichever collection holds it.
func (service *PaymentService) GetPayment(ctx context.Context, paymentID, userID primitive.ObjectID) (interface{}, error) {
	venuePayment, err := service.payments.GetVenuePaymentForUser(ctx, paymentID, userID)
	if err != nil {
		return nil, err
	}
	if venuePayment != nil {
		return venuePayment, nil
	}

	eventPayment, err := service.payments.GetEventPaymentForUser(ctx, paymentID, userID)
	if err != nil {
		return nil, err
	}
	if eventPayment == nil {
		return nil, nil
	}
	return eventPayment, nil
}

func (service *PaymentService) GetPaymentsByVenue(ctx context.Context, venueID primitive.ObjectID) ([]*domain.VenuePayment, error) {
	return service.payments.GetVenuePaymentsByVenue(ctx, venueID)
}

// GetAllSuccessfulPayments merges both collections into the tagged admin view
// with payer/receiver emails resolved. Revenue here is the owners' payout sum.
func (service *PaymentService) GetAllSuccessfulPayments(ctx context.Context) (*domain.AdminPaymentsReport, error) {
	ctx, span := service.tracer.Start(ctx, "PaymentService.GetAllSuccessfulPayments")
	defer span.End()

	venuePayments, err := service.payments.GetSuccessfulVenuePayments(ctx)
	if err != nil {
		return nil, err
	}
	eventPayments, err := service.payments.GetSuccessfulEventPayments(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.AdminPaymentsReport{Payments: []domain.AdminPaymentView{}}
	for _, payment := range venuePayments {
		report.Payments = append(report.Payments, domain.AdminPaymentView{
			Type:          "Venue",
			PayerEmail:    service.lookupEmail(ctx, payment.User, "Unknown User"),
			ReceiverEmail: service.lookupEmail(ctx, payment.RenterID, "Unknown Renter"),
			ItemName:      payment.VenueName,
			Amount:        payment.Amount,
			PlatformFee:   payment.PlatformFee,
			FinalAmount:   payment.FinalAmount,
			CreatedAt:     payment.CreatedAt,
			ItemDetails: map[string]interface{}{
				"checkInDate":  payment.CheckInDate,
				"checkOutDate": payment.CheckOutDate,
				"venueAddress": payment.VenueAddress,
			},
		})
	}
	for _, payment := range eventPayments {
		report.Payments = append(report.Payments, domain.AdminPaymentView{
			Type:          "Event",
			PayerEmail:    service.lookupEmail(ctx, payment.User, "Unknown User"),
			ReceiverEmail: service.lookupEmail(ctx, payment.HostID, "Unknown Host"),
			ItemName:      payment.EventName,
			Amount:        payment.Amount,
			PlatformFee:   payment.PlatformFee,
			FinalAmount:   payment.FinalAmount,
			CreatedAt:     payment.CreatedAt,
			ItemDetails: map[string]interface{}{
				"eventDate":      payment.EventDate,
				"ticketType":     payment.TicketType,
				"ticketQuantity": payment.TicketQuantity,
			},
		})
	}

	for _, payment := range report.Payments {
		report.TotalRevenue += payment.FinalAmount
	}
	report.TotalTransactions = len(report.Payments)

	return report, nil
}

func (service *PaymentService) lookupEmail(ctx context.Context, userID primitive.ObjectID, fallback string) string {
	user, err := service.users.Get(ctx, userID)
	if err != nil || user == nil {
		return fallback
	}
	return user.Email
}

func parseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}
