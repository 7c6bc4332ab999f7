package directoryRepo

import (
	"context"

	"legalaid/models"
)

// DirectorySearchCriteria defines the optional filters for a directory search.
// Zero values mean "no constraint". Approval is not a filter: the search only
// ever returns approved listings.
type DirectorySearchCriteria struct {
	Kind           string
	State          string
	District       string
	Specialization string
	MinExperience  int
	Page           int
	PageSize       int
}

// DirectoryRepository defines data access for unified directory listings.
type DirectoryRepository interface {
	// GetByID retrieves a listing by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.DirectoryListing, error)
	// FindByKindAndKey resolves the single listing for a (kind, natural key)
	// pair with an exact, case-sensitive comparison. Returns (nil, nil) when absent.
	FindByKindAndKey(kind, naturalKey string) (*models.DirectoryListing, error)
	// ExistsBySource reports whether a listing of (kind, key) from the given
	// source already exists.
	ExistsBySource(kind, naturalKey, source string) (bool, error)
	// ExistsAuthoritative reports whether any authoritative-source listing
	// attests the (kind, key) pair.
	ExistsAuthoritative(kind, naturalKey string) (bool, error)
	// Create inserts a new listing.
	Create(entry *models.DirectoryListing) error
	// Update replaces an existing listing by ID.
	Update(entry *models.DirectoryListing) error
	// DeleteByKindAndKey removes the listing for a (kind, key) pair, if any.
	DeleteByKindAndKey(kind, naturalKey string) error
	// Search returns one page of approved listings matching the criteria plus
	// the total match count.
	Search(criteria DirectorySearchCriteria) ([]models.DirectoryListing, int64, error)
	// SaveWithLawyer persists the listing and the lawyer record in a single
	// transaction so the pair can never disagree after a crash.
	SaveWithLawyer(ctx context.Context, entry *models.DirectoryListing, lawyer *models.Lawyer) error
	// SaveWithNGO is the NGO counterpart of SaveWithLawyer.
	SaveWithNGO(ctx context.Context, entry *models.DirectoryListing, ngo *models.NGO) error
}
