package lawyer

import (
	"context"

	lawyerRepo "legalaid/database/repository/lawyer"
	"legalaid/models"
	"legalaid/services/directory"
	"legalaid/services/geocode"
)

// RegistrationInput carries the raw registration form. Numeric fields arrive
// as strings and are validated before any write.
type RegistrationInput struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	AadharNumber   string `json:"aadharNumber"`
	BarCouncilID   string `json:"barCouncilId"`
	BarState       string `json:"barState"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
	Address        string `json:"address"`
	District       string `json:"district"`
	City           string `json:"city"`
	State          string `json:"state"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
	Password       string `json:"password"`

	AadharProofURL         string `json:"aadharProofUrl"`
	AadharProofFilename    string `json:"aadharProofFilename"`
	BarCertificateURL      string `json:"barCertificateUrl"`
	BarCertificateFilename string `json:"barCertificateFilename"`
}

// UpdateInput carries a partial profile edit. Nil fields are left unchanged.
// The bar council ID, verified, and approved flags are not editable here.
type UpdateInput struct {
	FullName       *string `json:"fullName"`
	Phone          *string `json:"phone"`
	Specialization *string `json:"specialization"`
	Experience     *string `json:"experience"`
	Address        *string `json:"address"`
	District       *string `json:"district"`
	City           *string `json:"city"`
	State          *string `json:"state"`
	Latitude       *string `json:"latitude"`
	Longitude      *string `json:"longitude"`
}

// LawyerService manages lawyer records and keeps their directory listings in
// sync through the reconciliation engine.
type LawyerService interface {
	Register(ctx context.Context, input RegistrationInput) (*models.Lawyer, error)
	Update(ctx context.Context, id string, input UpdateInput) (*models.Lawyer, error)
	Delete(ctx context.Context, id string) error
	GetByID(id string) (*models.Lawyer, error)
	GetAll() ([]models.Lawyer, error)
	Authenticate(email, password string) (*models.Lawyer, string, error)
}

// DefaultLawyerService is the production implementation.
type DefaultLawyerService struct {
	Repo      lawyerRepo.LawyerRepository
	Directory directory.DirectoryService

	// Geocoder, when set, fills in missing coordinates from the address.
	Geocoder geocode.Geocoder
}
