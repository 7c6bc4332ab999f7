package directory

import (
	"context"
	"testing"

	"legalaid/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncLawyerCreatesListing(t *testing.T) {
	svc, listings, lawyers, _ := newTestService()

	lw := &models.Lawyer{
		ID:              uuid.New().String(),
		FullName:        "Sneha Rao",
		Email:           "sneha@example.in",
		Phone:           "98450-12345",
		BarCouncilID:    "KA/2287/2008",
		Specialization:  "Property Law",
		ExperienceYears: 16,
		State:           "Karnataka",
		District:        "Bengaluru Urban",
		City:            "Bengaluru",
		Verified:        false,
	}

	entry, err := svc.SyncLawyer(context.Background(), lw)
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, models.KindLawyer, entry.Kind)
	assert.Equal(t, models.SourceSelfRegistration, entry.Source)
	assert.Equal(t, "KA/2287/2008", entry.NaturalKey)
	assert.Equal(t, lw.FullName, entry.Name)
	assert.Equal(t, lw.Email, entry.ContactEmail)
	assert.False(t, entry.Verified)
	assert.False(t, entry.Approved)

	// The pair write stored both sides.
	assert.True(t, lawyers.Has(lw.ID))
	assert.Equal(t, 1, listings.Count(models.KindLawyer, "KA/2287/2008"))
}

func TestSyncLawyerNeverCreatesDuplicate(t *testing.T) {
	svc, listings, _, _ := newTestService()

	lw := &models.Lawyer{
		ID:           uuid.New().String(),
		FullName:     "Sneha Rao",
		BarCouncilID: "KA/2287/2008",
	}
	_, err := svc.SyncLawyer(context.Background(), lw)
	require.NoError(t, err)

	lw.FullName = "Sneha R. Rao"
	entry, err := svc.SyncLawyer(context.Background(), lw)
	require.NoError(t, err)

	assert.Equal(t, 1, listings.Count(models.KindLawyer, "KA/2287/2008"))
	assert.Equal(t, "Sneha R. Rao", entry.Name)
}

func TestSyncMirrorsDisplayFieldsOnly(t *testing.T) {
	svc, listings, _, _ := newTestService()

	// An imported listing that was later approved.
	require.NoError(t, listings.Create(&models.DirectoryListing{
		ID:         uuid.New().String(),
		Kind:       models.KindLawyer,
		Source:     models.SourceBarCouncil,
		NaturalKey: "MH/1234/2010",
		Name:       "Ananya Kulkarni",
		Verified:   true,
		Approved:   true,
	}))

	lw := &models.Lawyer{
		ID:           uuid.New().String(),
		FullName:     "Ananya Kulkarni-Joshi",
		BarCouncilID: "MH/1234/2010",
		Verified:     false,
	}
	entry, err := svc.SyncLawyer(context.Background(), lw)
	require.NoError(t, err)

	assert.Equal(t, "Ananya Kulkarni-Joshi", entry.Name)
	assert.Equal(t, models.SourceBarCouncil, entry.Source, "source survives the sync")
	assert.True(t, entry.Verified, "sync never clears verification")
	assert.True(t, entry.Approved, "sync never clears approval")
}

func TestSyncNGOCreatesListing(t *testing.T) {
	svc, listings, _, ngos := newTestService()

	org := &models.NGO{
		ID:                 uuid.New().String(),
		Name:               "Nyay Sahayata Foundation",
		RegistrationNumber: "MH/2017/0171234",
		ContactPhone:       "022-24981234",
		Email:              "contact@nyaysahayata.org",
		State:              "Maharashtra",
		District:           "Mumbai Suburban",
		Verified:           true,
	}

	entry, err := svc.SyncNGO(context.Background(), org)
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, models.KindNGO, entry.Kind)
	assert.Equal(t, models.SourceSelfRegistration, entry.Source)
	assert.True(t, entry.Verified, "new listing inherits the NGO's verified flag")
	assert.False(t, entry.Approved)
	assert.True(t, ngos.Has(org.ID))
	assert.Equal(t, 1, listings.Count(models.KindNGO, "MH/2017/0171234"))
}
