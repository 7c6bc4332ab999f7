package directory

import (
	"context"
	"io"

	directoryRepo "legalaid/database/repository/directory"
	lawyerRepo "legalaid/database/repository/lawyer"
	ngoRepo "legalaid/database/repository/ngo"
	"legalaid/models"

	"github.com/go-redis/redis/v8"
)

// DirectoryService is the reconciliation and visibility engine over the
// unified directory. It owns natural-key resolution, verification derivation,
// batch import, the provider↔listing sync pair, approval, and search.
type DirectoryService interface {
	// Resolve finds the single listing for a (kind, natural key) pair.
	// Exact, case-sensitive match. Returns (nil, nil) when absent.
	Resolve(kind, naturalKey string) (*models.DirectoryListing, error)

	// IsAttested reports whether an authoritative-source listing exists for
	// the (kind, natural key) pair.
	IsAttested(kind, naturalKey string) (bool, error)

	// ImportBatch streams a delimited authoritative source and inserts
	// listings idempotently. Malformed rows are skipped, never fatal; a
	// stream failure aborts the batch with SourceUnavailableError.
	ImportBatch(ctx context.Context, source ImportSource, r io.Reader) (*models.ImportSummary, error)

	// SyncLawyer upserts the lawyer's directory listing, mirroring display
	// fields only, and persists lawyer and listing in one transaction.
	SyncLawyer(ctx context.Context, lawyer *models.Lawyer) (*models.DirectoryListing, error)

	// SyncNGO is the NGO counterpart of SyncLawyer.
	SyncNGO(ctx context.Context, ngo *models.NGO) (*models.DirectoryListing, error)

	// ApproveLawyer grants search visibility to a lawyer and its listing.
	ApproveLawyer(ctx context.Context, lawyerID string) error

	// ApproveNGO grants search visibility to an NGO and its listing.
	ApproveNGO(ctx context.Context, ngoID string) error

	// Search returns one page of approved listings matching the criteria.
	Search(ctx context.Context, criteria directoryRepo.DirectorySearchCriteria) (*models.DirectoryPage, error)

	// GetByID fetches a single listing by its surrogate id.
	GetByID(id string) (*models.DirectoryListing, error)

	// UploadInternalCSV ingests an admin-supplied CSV of manual entries
	// (source INTERNAL, no natural key).
	UploadInternalCSV(r io.Reader) (*models.ImportSummary, error)

	// RemoveListing deletes the listing for a (kind, key) pair. Called when
	// the owning provider record is deleted.
	RemoveListing(kind, naturalKey string) error
}

// DefaultDirectoryService is the production implementation.
type DefaultDirectoryService struct {
	Listings directoryRepo.DirectoryRepository
	Lawyers  lawyerRepo.LawyerRepository
	NGOs     ngoRepo.NGORepository

	// Cache, when set, holds short-lived search pages.
	Cache *redis.Client
}

// Resolve is the natural-key resolver: the sole mechanism components use to
// avoid duplicate listings.
func (s *DefaultDirectoryService) Resolve(kind, naturalKey string) (*models.DirectoryListing, error) {
	return s.Listings.FindByKindAndKey(kind, naturalKey)
}

// GetByID fetches one listing for the public detail endpoint.
func (s *DefaultDirectoryService) GetByID(id string) (*models.DirectoryListing, error) {
	entry, err := s.Listings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, NotFoundError{Resource: "directory entry", ID: id}
	}
	return entry, nil
}

// RemoveListing deletes the listing owned by a deleted provider record.
func (s *DefaultDirectoryService) RemoveListing(kind, naturalKey string) error {
	return s.Listings.DeleteByKindAndKey(kind, naturalKey)
}
