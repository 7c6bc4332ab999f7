package lawyer

import (
	"context"
	"testing"

	"legalaid/config"
	directoryRepo "legalaid/database/repository/directory"
	lawyerRepo "legalaid/database/repository/lawyer"
	ngoRepo "legalaid/database/repository/ngo"
	"legalaid/models"
	"legalaid/services/directory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLawyerService() (*DefaultLawyerService, *directoryRepo.MemoryDirectoryRepo) {
	lawyers := directoryRepo.NewMemoryLawyerStore()
	ngos := directoryRepo.NewMemoryNGOStore()
	listings := directoryRepo.NewMemoryDirectoryRepo(lawyers, ngos)
	repo := lawyerRepo.NewMemoryLawyerRepo(lawyers)
	svc := &DefaultLawyerService{
		Repo: repo,
		Directory: &directory.DefaultDirectoryService{
			Listings: listings,
			Lawyers:  repo,
			NGOs:     ngoRepo.NewMemoryNGORepo(ngos),
		},
	}
	return svc, listings
}

func validInput() RegistrationInput {
	return RegistrationInput{
		FullName:       "Ananya Kulkarni",
		Email:          "ananya@example.in",
		Phone:          "98220-12345",
		BarCouncilID:   "MH/1234/2010",
		BarState:       "Maharashtra",
		Specialization: "Family Law",
		Experience:     "15",
		State:          "Maharashtra",
		District:       "Pune",
		City:           "Pune",
		Password:       "s3cret-pass",
	}
}

func TestRegisterRequiresFields(t *testing.T) {
	svc, _ := newTestLawyerService()

	cases := []struct {
		field  string
		mutate func(*RegistrationInput)
	}{
		{"fullName", func(in *RegistrationInput) { in.FullName = "" }},
		{"email", func(in *RegistrationInput) { in.Email = "" }},
		{"phone", func(in *RegistrationInput) { in.Phone = "" }},
		{"barCouncilId", func(in *RegistrationInput) { in.BarCouncilID = "" }},
		{"password", func(in *RegistrationInput) { in.Password = "" }},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		_, err := svc.Register(context.Background(), in)
		require.Error(t, err, tc.field)

		var validation directory.ValidationError
		require.ErrorAs(t, err, &validation, tc.field)
		assert.Equal(t, tc.field, validation.Field)
	}
}

func TestRegisterRejectsBadNumbers(t *testing.T) {
	svc, _ := newTestLawyerService()

	in := validInput()
	in.Experience = "fifteen"
	_, err := svc.Register(context.Background(), in)
	var validation directory.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "experience", validation.Field)

	in = validInput()
	in.Latitude = "not-a-number"
	_, err = svc.Register(context.Background(), in)
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "latitude", validation.Field)
}

func TestRegisterUnattestedStaysUnverified(t *testing.T) {
	svc, listings := newTestLawyerService()

	lw, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	assert.False(t, lw.Verified)
	assert.False(t, lw.Approved)
	assert.NotEmpty(t, lw.ID)
	assert.Empty(t, lw.Password)
	assert.NotEmpty(t, lw.PasswordHash)

	entry, err := listings.FindByKindAndKey(models.KindLawyer, "MH/1234/2010")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, models.SourceSelfRegistration, entry.Source)
	assert.False(t, entry.Verified)
	assert.False(t, entry.Approved)
}

func TestRegisterAttestedIsVerified(t *testing.T) {
	svc, listings := newTestLawyerService()

	require.NoError(t, listings.Create(&models.DirectoryListing{
		ID:         uuid.New().String(),
		Kind:       models.KindLawyer,
		Source:     models.SourceBarCouncil,
		NaturalKey: "MH/1234/2010",
		Verified:   true,
	}))

	lw, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	assert.True(t, lw.Verified, "registry attestation verifies at registration time")
	assert.False(t, lw.Approved, "verification never implies approval")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestLawyerService()

	_, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.BarCouncilID = "MH/9999/2011"
	_, err = svc.Register(context.Background(), in)
	require.Error(t, err)

	var conflict directory.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "email", conflict.Field)
}

func TestUpdateMirrorsListing(t *testing.T) {
	svc, listings := newTestLawyerService()

	lw, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	spec := "Criminal Law"
	updated, err := svc.Update(context.Background(), lw.ID, UpdateInput{Specialization: &spec})
	require.NoError(t, err)
	assert.Equal(t, spec, updated.Specialization)

	entry, err := listings.FindByKindAndKey(models.KindLawyer, lw.BarCouncilID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, spec, entry.Specialization)
}

func TestDeleteRemovesListing(t *testing.T) {
	svc, listings := newTestLawyerService()

	lw, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), lw.ID))

	entry, err := listings.FindByKindAndKey(models.KindLawyer, lw.BarCouncilID)
	require.NoError(t, err)
	assert.Nil(t, entry)

	_, err = svc.GetByID(lw.ID)
	var notFound directory.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestAuthenticate(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	svc, _ := newTestLawyerService()

	_, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	lw, token, err := svc.Authenticate("ananya@example.in", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, lw.TokenHash)

	_, _, err = svc.Authenticate("ananya@example.in", "wrong-pass")
	require.Error(t, err)
}
