package models

import "time"

// Lawyer is a lawyer's self-managed professional record. The bar council ID is
// the natural key: unique, immutable once set, and the join point to the
// directory listing.
type Lawyer struct {
	ID           string `bson:"id" json:"id,omitempty"`
	FullName     string `bson:"fullName" json:"fullName"`
	Email        string `bson:"email" json:"email"`
	Phone        string `bson:"phone" json:"phone"`
	AadharNumber string `bson:"aadharNumber" json:"aadharNumber,omitempty"`

	BarCouncilID   string `bson:"barCouncilId" json:"barCouncilId"`
	BarState       string `bson:"barState" json:"barState,omitempty"`
	Specialization string `bson:"specialization" json:"specialization,omitempty"`

	ExperienceYears int `bson:"experienceYears" json:"experienceYears,omitempty"`

	Address  string `bson:"address" json:"address,omitempty"`
	District string `bson:"district" json:"district,omitempty"`
	City     string `bson:"city" json:"city,omitempty"`
	State    string `bson:"state" json:"state,omitempty"`

	Latitude  *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`

	// Credential documents live in external storage; only the opaque
	// URL/filename pair returned by the upload service is kept.
	AadharProofURL          string `bson:"aadharProofUrl,omitempty" json:"aadharProofUrl,omitempty"`
	AadharProofFilename     string `bson:"aadharProofFilename,omitempty" json:"aadharProofFilename,omitempty"`
	BarCertificateURL       string `bson:"barCertificateUrl,omitempty" json:"barCertificateUrl,omitempty"`
	BarCertificateFilename  string `bson:"barCertificateFilename,omitempty" json:"barCertificateFilename,omitempty"`

	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	TokenHash    string `bson:"tokenHash,omitempty" json:"-"`

	Verified bool `bson:"verified" json:"verified"` // attested by bar council import
	Approved bool `bson:"approved" json:"approved"` // admin visibility approval

	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
