package domain

import (
	"encoding/json"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Venue struct {
	ID                 primitive.ObjectID `bson:"_id" json:"id"`
	VenueName          string             `bson:"venueName" json:"venueName"`
	Description        string             `bson:"description" json:"description"`
	Address            string             `bson:"address" json:"address"`
	Capacity           int                `bson:"capacity" json:"capacity"`
	Price              VenuePrice         `bson:"price" json:"price"`
	Amenities          []string           `bson:"amenities" json:"amenities"`
	OwnerID            primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	OwnerContact       OwnerContact       `bson:"ownerContact" json:"ownerContact"`
	VerificationStatus VerificationStatus `bson:"verificationStatus" json:"verificationStatus"`
	Documents          []string           `bson:"documents" json:"documents"`
	AdminRemarks       string             `bson:"adminRemarks" json:"adminRemarks"`
	Images             []string           `bson:"images" json:"images"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type VenuePrice struct {
	DailyRate         float64 `bson:"dailyRate" json:"dailyRate"`
	HourlyRate        float64 `bson:"hourlyRate" json:"hourlyRate"`
	MinHourlyDuration int     `bson:"minHourlyDuration" json:"minHourlyDuration"`
	MaxHourlyDuration int     `bson:"maxHourlyDuration" json:"maxHourlyDuration"`
}

type OwnerContact struct {
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

type ApproveVenueRequest struct {
	IsApproved   *bool  `json:"isApproved"`
	AdminRemarks string `json:"adminRemarks"`
}

func (venue *Venue) FromJSON(reader io.Reader) error {
	d := json.NewDecoder(reader)
	return d.Decode(venue)
}
