package directory

import (
	"context"
	"time"

	"legalaid/models"
	"legalaid/utils"

	"go.uber.org/zap"
)

// ApproveLawyer transitions a lawyer from PENDING to APPROVED. The transition
// is one-directional and only ever triggered by an explicit admin action; it
// propagates provider → listing, never the reverse. A missing listing leaves
// the lawyer approved but invisible until one exists.
func (s *DefaultDirectoryService) ApproveLawyer(ctx context.Context, lawyerID string) error {
	lawyer, err := s.Lawyers.GetByID(lawyerID)
	if err != nil {
		return err
	}
	if lawyer == nil {
		return NotFoundError{Resource: "lawyer", ID: lawyerID}
	}

	now := time.Now().UTC()
	lawyer.Approved = true
	lawyer.UpdatedAt = now

	entry, err := s.Listings.FindByKindAndKey(models.KindLawyer, lawyer.BarCouncilID)
	if err != nil {
		return err
	}
	if entry == nil {
		utils.GetLogger().Warn("approved lawyer has no directory entry; invisible until synced",
			zap.String("id", lawyer.ID),
			zap.String("barCouncilId", lawyer.BarCouncilID))
		return s.Lawyers.Update(lawyer)
	}

	entry.Approved = true
	entry.UpdatedAt = now
	return s.Listings.SaveWithLawyer(ctx, entry, lawyer)
}

// ApproveNGO is the NGO counterpart of ApproveLawyer.
func (s *DefaultDirectoryService) ApproveNGO(ctx context.Context, ngoID string) error {
	ngo, err := s.NGOs.GetByID(ngoID)
	if err != nil {
		return err
	}
	if ngo == nil {
		return NotFoundError{Resource: "ngo", ID: ngoID}
	}

	now := time.Now().UTC()
	ngo.Approved = true
	ngo.UpdatedAt = now

	entry, err := s.Listings.FindByKindAndKey(models.KindNGO, ngo.RegistrationNumber)
	if err != nil {
		return err
	}
	if entry == nil {
		utils.GetLogger().Warn("approved ngo has no directory entry; invisible until synced",
			zap.String("id", ngo.ID),
			zap.String("registrationNumber", ngo.RegistrationNumber))
		return s.NGOs.Update(ngo)
	}

	entry.Approved = true
	entry.UpdatedAt = now
	return s.Listings.SaveWithNGO(ctx, entry, ngo)
}
