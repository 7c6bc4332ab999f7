package ngo

import (
	"context"
	"testing"

	directoryRepo "legalaid/database/repository/directory"
	lawyerRepo "legalaid/database/repository/lawyer"
	ngoRepo "legalaid/database/repository/ngo"
	"legalaid/models"
	"legalaid/services/directory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNGOService() (*DefaultNGOService, *directoryRepo.MemoryDirectoryRepo) {
	lawyers := directoryRepo.NewMemoryLawyerStore()
	ngos := directoryRepo.NewMemoryNGOStore()
	listings := directoryRepo.NewMemoryDirectoryRepo(lawyers, ngos)
	repo := ngoRepo.NewMemoryNGORepo(ngos)
	svc := &DefaultNGOService{
		Repo: repo,
		Directory: &directory.DefaultDirectoryService{
			Listings: listings,
			Lawyers:  lawyerRepo.NewMemoryLawyerRepo(lawyers),
			NGOs:     repo,
		},
	}
	return svc, listings
}

func validInput() RegistrationInput {
	return RegistrationInput{
		Name:               "Nyay Sahayata Foundation",
		NGOType:            "Trust",
		RegistrationNumber: "MH/2017/0171234",
		ContactPhone:       "022-24981234",
		Email:              "contact@nyaysahayata.org",
		Specialization:     "Legal Aid",
		State:              "Maharashtra",
		District:           "Mumbai Suburban",
		City:               "Mumbai",
		Password:           "s3cret-pass",
	}
}

func TestRegisterCreatesListingPair(t *testing.T) {
	svc, listings := newTestNGOService()

	org, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	assert.False(t, org.Verified)
	assert.False(t, org.Approved)

	entry, err := listings.FindByKindAndKey(models.KindNGO, "MH/2017/0171234")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, models.SourceSelfRegistration, entry.Source)
	assert.Equal(t, org.Name, entry.Name)
}

func TestRegisterAttestedIsVerified(t *testing.T) {
	svc, listings := newTestNGOService()

	require.NoError(t, listings.Create(&models.DirectoryListing{
		ID:         uuid.New().String(),
		Kind:       models.KindNGO,
		Source:     models.SourceNGODarpan,
		NaturalKey: "MH/2017/0171234",
		Verified:   true,
	}))

	org, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	assert.True(t, org.Verified)
}

func TestRegisterDuplicateRegistrationNumber(t *testing.T) {
	svc, _ := newTestNGOService()

	_, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.Email = "other@nyaysahayata.org"
	_, err = svc.Register(context.Background(), in)
	require.Error(t, err)

	var conflict directory.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "registrationNumber", conflict.Field)
}

func TestDeleteRemovesListing(t *testing.T) {
	svc, listings := newTestNGOService()

	org, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), org.ID))

	entry, err := listings.FindByKindAndKey(models.KindNGO, org.RegistrationNumber)
	require.NoError(t, err)
	assert.Nil(t, entry)
}
