package directory

import (
	"context"
	"testing"

	"legalaid/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproveLawyerPropagatesToListing(t *testing.T) {
	svc, listings, lawyers, _ := newTestService()

	lw := models.Lawyer{
		ID:           uuid.New().String(),
		FullName:     "Karthik Subramanian",
		BarCouncilID: "TN/0912/2012",
		Verified:     true,
	}
	lawyers.Put(lw)
	require.NoError(t, listings.Create(&models.DirectoryListing{
		ID:         uuid.New().String(),
		Kind:       models.KindLawyer,
		Source:     models.SourceSelfRegistration,
		NaturalKey: "TN/0912/2012",
		Name:       lw.FullName,
		Verified:   true,
	}))

	require.NoError(t, svc.ApproveLawyer(context.Background(), lw.ID))

	got, err := svc.Lawyers.GetByID(lw.ID)
	require.NoError(t, err)
	assert.True(t, got.Approved)

	entry, err := listings.FindByKindAndKey(models.KindLawyer, "TN/0912/2012")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.True(t, entry.Approved)
}

func TestApproveLawyerNotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.ApproveLawyer(context.Background(), "missing-id")
	require.Error(t, err)

	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "lawyer", notFound.Resource)
}

func TestApproveLawyerWithoutListing(t *testing.T) {
	svc, _, lawyers, _ := newTestService()

	lw := models.Lawyer{
		ID:           uuid.New().String(),
		BarCouncilID: "UP/3345/2018",
	}
	lawyers.Put(lw)

	// No listing exists; the approval still lands on the record.
	require.NoError(t, svc.ApproveLawyer(context.Background(), lw.ID))

	got, err := svc.Lawyers.GetByID(lw.ID)
	require.NoError(t, err)
	assert.True(t, got.Approved)
}

func TestApproveNGOPropagatesToListing(t *testing.T) {
	svc, listings, _, ngos := newTestService()

	org := models.NGO{
		ID:                 uuid.New().String(),
		Name:               "Adhikar Welfare Trust",
		RegistrationNumber: "DL/2014/0068821",
		Verified:           true,
	}
	ngos.Put(org)
	require.NoError(t, listings.Create(&models.DirectoryListing{
		ID:         uuid.New().String(),
		Kind:       models.KindNGO,
		Source:     models.SourceNGODarpan,
		NaturalKey: "DL/2014/0068821",
		Name:       org.Name,
		Verified:   true,
	}))

	require.NoError(t, svc.ApproveNGO(context.Background(), org.ID))

	entry, err := listings.FindByKindAndKey(models.KindNGO, "DL/2014/0068821")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.True(t, entry.Approved)

	got, err := svc.NGOs.GetByID(org.ID)
	require.NoError(t, err)
	assert.True(t, got.Approved)
}
