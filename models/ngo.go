package models

import "time"

// NGO is an organization's self-managed record. The Darpan registration number
// is the natural key joining it to the directory listing.
type NGO struct {
	ID      string `bson:"id" json:"id,omitempty"`
	Name    string `bson:"name" json:"name"`
	NGOType string `bson:"ngoType" json:"ngoType,omitempty"`

	RegistrationNumber string `bson:"registrationNumber" json:"registrationNumber"`

	ContactPhone string `bson:"contactPhone" json:"contactPhone,omitempty"`
	Email        string `bson:"email" json:"email"`

	Specialization string `bson:"specialization" json:"specialization,omitempty"`

	Address  string `bson:"address" json:"address,omitempty"`
	State    string `bson:"state" json:"state,omitempty"`
	District string `bson:"district" json:"district,omitempty"`
	City     string `bson:"city" json:"city,omitempty"`
	Pincode  string `bson:"pincode" json:"pincode,omitempty"`

	Latitude  *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`

	RegistrationCertificateURL      string `bson:"registrationCertificateUrl,omitempty" json:"registrationCertificateUrl,omitempty"`
	RegistrationCertificateFilename string `bson:"registrationCertificateFilename,omitempty" json:"registrationCertificateFilename,omitempty"`

	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	TokenHash    string `bson:"tokenHash,omitempty" json:"-"`

	Verified bool `bson:"verified" json:"verified"` // attested by NGO Darpan import
	Approved bool `bson:"approved" json:"approved"` // admin visibility approval

	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
