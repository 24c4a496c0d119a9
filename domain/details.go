package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdditionalDetails holds the payout/KYC information a host or renter submits
// before receiving bookings.
type AdditionalDetails struct {
	ID                  primitive.ObjectID `bson:"_id" json:"id"`
	UserID              primitive.ObjectID `bson:"userId" json:"userId"`
	OrganizationName    string             `bson:"organizationName" json:"organizationName"`
	PanCardNumber       string             `bson:"panCardNumber" json:"panCardNumber"`
	OrganizationAddress string             `bson:"organizationAddress" json:"organizationAddress"`
	ContactDetails      ContactDetails     `bson:"contactDetails" json:"contactDetails"`
	BankDetails         BankDetails        `bson:"bankDetails" json:"bankDetails"`
	PanCard             string             `bson:"panCard" json:"panCard"`
}

type ContactDetails struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

type BankDetails struct {
	BeneficiaryName string `bson:"beneficiaryName" json:"beneficiaryName"`
	AccountType     string `bson:"accountType" json:"accountType"`
	AccountNumber   string `bson:"accountNumber" json:"accountNumber"`
	BankName        string `bson:"bankName" json:"bankName"`
	IfscCode        string `bson:"ifscCode" json:"ifscCode"`
}
