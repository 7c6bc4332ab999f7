package directory

import (
	"context"
	"time"

	"legalaid/models"

	"github.com/google/uuid"
)

// SyncLawyer upserts the lawyer's directory listing after a create or edit.
// Display fields are mirrored; source, verified, and approved are never
// overwritten on an existing listing by this path. The lawyer record and the
// listing commit in one transaction.
func (s *DefaultDirectoryService) SyncLawyer(ctx context.Context, lawyer *models.Lawyer) (*models.DirectoryListing, error) {
	entry, err := s.Listings.FindByKindAndKey(models.KindLawyer, lawyer.BarCouncilID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if entry == nil {
		entry = &models.DirectoryListing{
			ID:         uuid.New().String(),
			Kind:       models.KindLawyer,
			Source:     models.SourceSelfRegistration,
			NaturalKey: lawyer.BarCouncilID,
			Verified:   lawyer.Verified,
			Approved:   false,
			CreatedAt:  now,
		}
	}

	entry.Name = lawyer.FullName
	entry.Specialization = lawyer.Specialization
	entry.ExperienceYears = lawyer.ExperienceYears
	entry.ContactPhone = lawyer.Phone
	entry.ContactEmail = lawyer.Email
	entry.State = lawyer.State
	entry.District = lawyer.District
	entry.City = lawyer.City
	entry.Latitude = lawyer.Latitude
	entry.Longitude = lawyer.Longitude
	entry.UpdatedAt = now

	if err := s.Listings.SaveWithLawyer(ctx, entry, lawyer); err != nil {
		return nil, err
	}
	return entry, nil
}

// SyncNGO is the NGO counterpart of SyncLawyer.
func (s *DefaultDirectoryService) SyncNGO(ctx context.Context, ngo *models.NGO) (*models.DirectoryListing, error) {
	entry, err := s.Listings.FindByKindAndKey(models.KindNGO, ngo.RegistrationNumber)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if entry == nil {
		entry = &models.DirectoryListing{
			ID:         uuid.New().String(),
			Kind:       models.KindNGO,
			Source:     models.SourceSelfRegistration,
			NaturalKey: ngo.RegistrationNumber,
			Verified:   ngo.Verified,
			Approved:   false,
			CreatedAt:  now,
		}
	}

	entry.Name = ngo.Name
	entry.Specialization = ngo.Specialization
	entry.ContactPhone = ngo.ContactPhone
	entry.ContactEmail = ngo.Email
	entry.State = ngo.State
	entry.District = ngo.District
	entry.City = ngo.City
	entry.Latitude = ngo.Latitude
	entry.Longitude = ngo.Longitude
	entry.UpdatedAt = now

	if err := s.Listings.SaveWithNGO(ctx, entry, ngo); err != nil {
		return nil, err
	}
	return entry, nil
}
