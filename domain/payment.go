package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus starts Pending when a checkout session is created and is set
// exactly once per reconciliation call to Success or Failed.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentSuccess PaymentStatus = "Success"
	PaymentFailed  PaymentStatus = "Failed"
)

// VenuePayment snapshots the venue name and address at booking time, so later
// edits to the venue do not change historical records.
type VenuePayment struct {
	ID              primitive.ObjectID `bson:"_id" json:"id"`
	User            primitive.ObjectID `bson:"user" json:"user"`
	RenterID        primitive.ObjectID `bson:"renterId" json:"renterId"`
	Venue           primitive.ObjectID `bson:"venue" json:"venue"`
	VenueName       string             `bson:"venueName" json:"venueName"`
	VenueAddress    string             `bson:"venueAddress" json:"venueAddress"`
	CheckInDate     time.Time          `bson:"checkInDate" json:"checkInDate"`
	CheckOutDate    time.Time          `bson:"checkOutDate" json:"checkOutDate"`
	Amount          float64            `bson:"amount" json:"amount"`
	PlatformFee     float64            `bson:"platformFee" json:"platformFee"`
	FinalAmount     float64            `bson:"finalAmount" json:"finalAmount"`
	Status          PaymentStatus      `bson:"status" json:"status"`
	StripeSessionID string             `bson:"stripeSessionId" json:"stripeSessionId"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type EventPayment struct {
	ID              primitive.ObjectID `bson:"_id" json:"id"`
	User            primitive.ObjectID `bson:"user" json:"user"`
	HostID          primitive.ObjectID `bson:"hostId" json:"hostId"`
	Event           primitive.ObjectID `bson:"event" json:"event"`
	EventName       string             `bson:"eventName" json:"eventName"`
	EventDate       time.Time          `bson:"eventDate" json:"eventDate"`
	TicketType      string             `bson:"ticketType" json:"ticketType"`
	TicketQuantity  int                `bson:"ticketQuantity" json:"ticketQuantity"`
	Amount          float64            `bson:"amount" json:"amount"`
	PlatformFee     float64            `bson:"platformFee" json:"platformFee"`
	FinalAmount     float64            `bson:"finalAmount" json:"finalAmount"`
	Status          PaymentStatus      `bson:"status" json:"status"`
	StripeSessionID string             `bson:"stripeSessionId" json:"stripeSessionId"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PaymentRequest carries a booking intent: exactly one of VenueID or EventID
// selects the checkout path.
type PaymentRequest struct {
	VenueID        string `json:"venueId,omitempty"`
	CheckInDate    string `json:"checkInDate,omitempty"`
	CheckOutDate   string `json:"checkOutDate,omitempty"`
	EventID        string `json:"eventId,omitempty"`
	TicketType     string `json:"ticketType,omitempty"`
	TicketQuantity int    `json:"ticketQuantity,omitempty"`
}

type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type UpdateStatusRequest struct {
	Status PaymentStatus `json:"status"`
}

// AdminPaymentView is the merged admin listing row across both payment
// collections, tagged with the record type.
type AdminPaymentView struct {
	Type          string      `json:"type"`
	PayerEmail    string      `json:"payerEmail"`
	ReceiverEmail string      `json:"receiverEmail"`
	ItemName      string      `json:"itemName"`
	Amount        float64     `json:"amount"`
	PlatformFee   float64     `json:"platformFee"`
	FinalAmount   float64     `json:"finalAmount"`
	CreatedAt     time.Time   `json:"createdAt"`
	ItemDetails   interface{} `json:"itemDetails"`
}

type AdminPaymentsReport struct {
	Payments          []AdminPaymentView `json:"payments"`
	TotalRevenue      float64            `json:"totalRevenue"`
	TotalTransactions int                `json:"totalTransactions"`
}

type DashboardStats struct {
	TotalUsers   int64    `json:"totalUsers"`
	TotalEvents  int64    `json:"totalEvents"`
	TotalVenues  int64    `json:"totalVenues"`
	TotalRevenue float64  `json:"totalRevenue"`
	RecentEvents []*Event `json:"recentEvents"`
	RecentVenues []*Venue `json:"recentVenues"`
	RecentUsers  []*User  `json:"recentUsers"`
}
