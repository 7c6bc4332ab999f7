package ngo

import (
	"context"

	ngoRepo "legalaid/database/repository/ngo"
	"legalaid/models"
	"legalaid/services/directory"
	"legalaid/services/geocode"
)

// RegistrationInput carries the raw NGO registration form.
type RegistrationInput struct {
	Name               string `json:"name"`
	NGOType            string `json:"ngoType"`
	RegistrationNumber string `json:"registrationNumber"`
	ContactPhone       string `json:"contactPhone"`
	Email              string `json:"email"`
	Specialization     string `json:"specialization"`
	Address            string `json:"address"`
	State              string `json:"state"`
	District           string `json:"district"`
	City               string `json:"city"`
	Pincode            string `json:"pincode"`
	Latitude           string `json:"latitude"`
	Longitude          string `json:"longitude"`
	Password           string `json:"password"`

	RegistrationCertificateURL      string `json:"registrationCertificateUrl"`
	RegistrationCertificateFilename string `json:"registrationCertificateFilename"`
}

// UpdateInput carries a partial profile edit. Nil fields are left unchanged.
// The registration number, verified, and approved flags are not editable here.
type UpdateInput struct {
	Name           *string `json:"name"`
	NGOType        *string `json:"ngoType"`
	ContactPhone   *string `json:"contactPhone"`
	Specialization *string `json:"specialization"`
	Address        *string `json:"address"`
	State          *string `json:"state"`
	District       *string `json:"district"`
	City           *string `json:"city"`
	Pincode        *string `json:"pincode"`
	Latitude       *string `json:"latitude"`
	Longitude      *string `json:"longitude"`
}

// NGOService manages NGO records and keeps their directory listings in sync
// through the reconciliation engine.
type NGOService interface {
	Register(ctx context.Context, input RegistrationInput) (*models.NGO, error)
	Update(ctx context.Context, id string, input UpdateInput) (*models.NGO, error)
	Delete(ctx context.Context, id string) error
	GetByID(id string) (*models.NGO, error)
	GetAll() ([]models.NGO, error)
	Authenticate(email, password string) (*models.NGO, string, error)
}

// DefaultNGOService is the production implementation.
type DefaultNGOService struct {
	Repo      ngoRepo.NGORepository
	Directory directory.DirectoryService

	// Geocoder, when set, fills in missing coordinates from the address.
	Geocoder geocode.Geocoder
}
