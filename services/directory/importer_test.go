package directory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	directoryRepo "legalaid/database/repository/directory"
	lawyerRepo "legalaid/database/repository/lawyer"
	ngoRepo "legalaid/database/repository/ngo"
	"legalaid/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*DefaultDirectoryService, *directoryRepo.MemoryDirectoryRepo, *directoryRepo.MemoryLawyerStore, *directoryRepo.MemoryNGOStore) {
	lawyers := directoryRepo.NewMemoryLawyerStore()
	ngos := directoryRepo.NewMemoryNGOStore()
	listings := directoryRepo.NewMemoryDirectoryRepo(lawyers, ngos)
	svc := &DefaultDirectoryService{
		Listings: listings,
		Lawyers:  lawyerRepo.NewMemoryLawyerRepo(lawyers),
		NGOs:     ngoRepo.NewMemoryNGORepo(ngos),
	}
	return svc, listings, lawyers, ngos
}

func TestImportBatchBarCouncil(t *testing.T) {
	svc, listings, _, _ := newTestService()

	csv := strings.Join([]string{
		"barCouncilId,name,state,district,specialization,enrollmentYear",
		"MH/1234/2010,Ananya Kulkarni,Maharashtra,Pune,Family Law,2010",
		"DL/0456/2015,Rohit Malhotra,Delhi,New Delhi,Criminal Law,2015",
		"short,row",
		",Missing Key,Delhi,New Delhi,Civil Law,2012",
		"",
	}, "\n")

	summary, err := svc.ImportBatch(context.Background(), BarCouncilSource, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, models.SourceBarCouncil, summary.Source)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 2, summary.Skipped)

	entry, err := listings.FindByKindAndKey(models.KindLawyer, "MH/1234/2010")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, models.KindLawyer, entry.Kind)
	assert.Equal(t, models.SourceBarCouncil, entry.Source)
	assert.Equal(t, "Ananya Kulkarni", entry.Name)
	assert.True(t, entry.Verified)
	assert.False(t, entry.Approved, "imported entries still need admin approval")
	assert.Equal(t, time.Now().Year()-2010, entry.ExperienceYears)
}

func TestImportBatchNGODarpan(t *testing.T) {
	svc, listings, _, _ := newTestService()

	csv := strings.Join([]string{
		"registrationNumber,name,state,district,specialization,contactPhone",
		"MH/2017/0171234,Nyay Sahayata Foundation,Maharashtra,Mumbai Suburban,Legal Aid,022-24981234",
		"DL/2014/0068821,Adhikar Welfare Trust,Delhi,South Delhi,Women's Rights,",
	}, "\n")

	summary, err := svc.ImportBatch(context.Background(), NGODarpanSource, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 0, summary.Skipped)

	entry, err := listings.FindByKindAndKey(models.KindNGO, "DL/2014/0068821")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, models.KindNGO, entry.Kind)
	assert.Empty(t, entry.ContactPhone, "trailing empty field is kept, not dropped")
	assert.True(t, entry.Verified)
}

func TestImportBatchIsIdempotent(t *testing.T) {
	svc, listings, _, _ := newTestService()

	csv := "barCouncilId,name,state,district,specialization\n" +
		"MH/1234/2010,Ananya Kulkarni,Maharashtra,Pune,Family Law\n"

	first, err := svc.ImportBatch(context.Background(), BarCouncilSource, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, first.Imported)

	second, err := svc.ImportBatch(context.Background(), BarCouncilSource, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 0, second.Imported)
	assert.Equal(t, 1, second.Skipped)
	assert.Equal(t, 1, listings.Count(models.KindLawyer, "MH/1234/2010"))
}

func TestImportAttestsExistingSelfRegisteredListing(t *testing.T) {
	svc, listings, lawyers, _ := newTestService()

	// A lawyer registered before the registry listed their ID.
	registered := models.Lawyer{
		ID:           uuid.New().String(),
		FullName:     "Ananya Kulkarni",
		BarCouncilID: "mh/1234/2010", // differs in case from the registry row
		Verified:     false,
	}
	lawyers.Put(registered)
	require.NoError(t, listings.Create(&models.DirectoryListing{
		ID:         uuid.New().String(),
		Kind:       models.KindLawyer,
		Source:     models.SourceSelfRegistration,
		NaturalKey: "MH/1234/2010",
		Name:       registered.FullName,
		State:      "Maharashtra",
		District:   "Pune",
		Verified:   false,
	}))

	csv := "barCouncilId,name,state,district,specialization\n" +
		"MH/1234/2010,Ananya Kulkarni,Maharashtra,Pune,Family Law\n"
	summary, err := svc.ImportBatch(context.Background(), BarCouncilSource, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)

	// The existing listing is attested in place, never duplicated.
	assert.Equal(t, 1, listings.Count(models.KindLawyer, "MH/1234/2010"))
	entry, err := listings.FindByKindAndKey(models.KindLawyer, "MH/1234/2010")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.True(t, entry.Verified)
	assert.Equal(t, models.SourceSelfRegistration, entry.Source)

	// The registered lawyer is re-verified despite the case difference.
	got, err := svc.Lawyers.GetByID(registered.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Verified)
}

func TestImportDoesNotUnverifyProviders(t *testing.T) {
	svc, _, lawyers, _ := newTestService()

	verified := models.Lawyer{
		ID:           uuid.New().String(),
		BarCouncilID: "DL/0456/2015",
		Verified:     true,
	}
	lawyers.Put(verified)

	csv := "barCouncilId,name,state,district,specialization\n" +
		"DL/0456/2015,Rohit Malhotra,Delhi,New Delhi,Criminal Law\n"
	_, err := svc.ImportBatch(context.Background(), BarCouncilSource, strings.NewReader(csv))
	require.NoError(t, err)

	got, err := svc.Lawyers.GetByID(verified.ID)
	require.NoError(t, err)
	assert.True(t, got.Verified, "verification is monotonic")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestImportBatchSourceFailure(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.ImportBatch(context.Background(), BarCouncilSource, failingReader{})
	require.Error(t, err)

	var unavailable SourceUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, models.SourceBarCouncil, unavailable.Source)
}

func TestIsAttested(t *testing.T) {
	svc, listings, _, _ := newTestService()

	require.NoError(t, listings.Create(&models.DirectoryListing{
		ID:         uuid.New().String(),
		Kind:       models.KindLawyer,
		Source:     models.SourceBarCouncil,
		NaturalKey: "MH/1234/2010",
		Verified:   true,
	}))
	require.NoError(t, listings.Create(&models.DirectoryListing{
		ID:         uuid.New().String(),
		Kind:       models.KindNGO,
		Source:     models.SourceSelfRegistration,
		NaturalKey: "MH/2017/0171234",
	}))

	attested, err := svc.IsAttested(models.KindLawyer, "MH/1234/2010")
	require.NoError(t, err)
	assert.True(t, attested)

	attested, err = svc.IsAttested(models.KindNGO, "MH/2017/0171234")
	require.NoError(t, err)
	assert.False(t, attested, "self-registered listings never attest a key")

	attested, err = svc.IsAttested(models.KindLawyer, "")
	require.NoError(t, err)
	assert.False(t, attested)
}

func TestUploadInternalCSV(t *testing.T) {
	svc, listings, _, _ := newTestService()

	csv := strings.Join([]string{
		"name,type,specialization,state,district,phone",
		"Kamla Devi Legal Cell,NGO,Legal Aid,Rajasthan,Jaipur,0141-2223344",
		"Suresh Nair,lawyer,Civil Law,Kerala,Ernakulam,0484-1234567",
		"Bad Kind,TRUST,Legal Aid,Kerala,Kochi,",
		"too,short",
	}, "\n")

	summary, err := svc.UploadInternalCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, models.SourceInternal, summary.Source)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 2, summary.Skipped)

	// Internal entries carry no natural key and stay invisible until approved.
	assert.Equal(t, 2, listings.Count("", ""))
	entries, total, err := listings.Search(directoryRepo.DirectorySearchCriteria{PageSize: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, entries)
}
