package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID            primitive.ObjectID  `bson:"_id" json:"id"`
	EventName     string              `bson:"eventName" json:"eventName"`
	Description   string              `bson:"description" json:"description"`
	Date          time.Time           `bson:"date" json:"date"`
	StartTime     string              `bson:"startTime" json:"startTime"`
	EndTime       string              `bson:"endTime" json:"endTime"`
	Mode          EventMode           `bson:"mode" json:"mode"`
	Type          string              `bson:"type" json:"type"`
	Venue         *primitive.ObjectID `bson:"venue,omitempty" json:"venue,omitempty"`
	CustomAddress string              `bson:"customAddress,omitempty" json:"customAddress,omitempty"`
	StreamingLink string              `bson:"streamingLink,omitempty" json:"streamingLink,omitempty"`
	Organizer     primitive.ObjectID  `bson:"organizer" json:"organizer"`
	TicketTypes   []TicketType        `bson:"ticketTypes" json:"ticketTypes"`
	Images        []string            `bson:"images" json:"images"`
	Status        EventStatus         `bson:"status" json:"status"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type TicketType struct {
	Name              string  `bson:"name" json:"name"`
	Price             float64 `bson:"price" json:"price"`
	AvailableQuantity int     `bson:"availableQuantity" json:"availableQuantity"`
}

type EventMode string

const (
	ModeOnline  EventMode = "Online"
	ModeOffline EventMode = "Offline"
)

// EventStatus is set to Upcoming at creation and never transitioned afterwards.
type EventStatus string

const (
	StatusUpcoming  EventStatus = "Upcoming"
	StatusOngoing   EventStatus = "Ongoing"
	StatusCompleted EventStatus = "Completed"
	StatusCancelled EventStatus = "Cancelled"
)

// EventTypeRegistry is a single mutable document holding the allowed event
// type names per mode. It grows whenever a creator submits an unseen type.
type EventTypeRegistry struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	OnlineTypes  []string           `bson:"onlineTypes" json:"onlineTypes"`
	OfflineTypes []string           `bson:"offlineTypes" json:"offlineTypes"`
}

var (
	DefaultOnlineTypes  = []string{"Webinar", "Virtual Workshop", "Online Conference", "Live Streaming"}
	DefaultOfflineTypes = []string{"Conference", "Workshop", "Seminar", "Meetup", "Concert"}
)

type CustomEventTypeRequest struct {
	Mode       EventMode `json:"mode"`
	CustomType string    `json:"customType"`
}
