package lawyerRepo

import "legalaid/models"

// LawyerRepository defines methods for lawyer data access. Lookup methods
// return (nil, nil) when no record matches.
type LawyerRepository interface {
	// GetByID retrieves a lawyer by its unique ID.
	GetByID(id string) (*models.Lawyer, error)
	// GetByEmail retrieves a lawyer by email address.
	GetByEmail(email string) (*models.Lawyer, error)
	// GetByBarCouncilID retrieves a lawyer by bar council ID, exact match.
	GetByBarCouncilID(barCouncilID string) (*models.Lawyer, error)
	// FindByBarCouncilIDFold returns lawyers whose bar council ID matches
	// case-insensitively. Used by the authoritative import re-verification scan.
	FindByBarCouncilIDFold(barCouncilID string) ([]models.Lawyer, error)
	// GetAll retrieves all lawyers.
	GetAll() ([]models.Lawyer, error)
	// GetPending retrieves lawyers awaiting admin approval.
	GetPending() ([]models.Lawyer, error)
	// Create inserts a new lawyer record.
	Create(lawyer *models.Lawyer) error
	// Update replaces an existing lawyer record.
	Update(lawyer *models.Lawyer) error
	// Delete removes a lawyer record by its ID.
	Delete(id string) error
	// ExistsByEmail reports whether a lawyer with the email is registered.
	ExistsByEmail(email string) (bool, error)
	// ExistsByBarCouncilID reports whether the bar council ID is registered.
	ExistsByBarCouncilID(barCouncilID string) (bool, error)
	// ExistsByAadhar reports whether the Aadhar number is registered.
	ExistsByAadhar(aadharNumber string) (bool, error)
}
