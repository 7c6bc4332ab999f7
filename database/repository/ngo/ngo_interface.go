package ngoRepo

import "legalaid/models"

// NGORepository defines methods for NGO data access. Lookup methods return
// (nil, nil) when no record matches.
type NGORepository interface {
	// GetByID retrieves an NGO by its unique ID.
	GetByID(id string) (*models.NGO, error)
	// GetByEmail retrieves an NGO by email address.
	GetByEmail(email string) (*models.NGO, error)
	// GetByRegistrationNumber retrieves an NGO by registration number, exact match.
	GetByRegistrationNumber(registrationNumber string) (*models.NGO, error)
	// FindByRegistrationNumberFold returns NGOs whose registration number
	// matches case-insensitively, for the import re-verification scan.
	FindByRegistrationNumberFold(registrationNumber string) ([]models.NGO, error)
	// GetAll retrieves all NGOs.
	GetAll() ([]models.NGO, error)
	// GetPending retrieves NGOs awaiting admin approval.
	GetPending() ([]models.NGO, error)
	// Create inserts a new NGO record.
	Create(ngo *models.NGO) error
	// Update replaces an existing NGO record.
	Update(ngo *models.NGO) error
	// Delete removes an NGO record by its ID.
	Delete(id string) error
	// ExistsByEmail reports whether an NGO with the email is registered.
	ExistsByEmail(email string) (bool, error)
	// ExistsByRegistrationNumber reports whether the registration number is registered.
	ExistsByRegistrationNumber(registrationNumber string) (bool, error)
}
