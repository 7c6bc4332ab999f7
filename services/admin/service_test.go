package admin

import (
	"context"
	"os"
	"path/filepath"
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

func newTestAdminService() (*DefaultAdminService, *directoryRepo.MemoryLawyerStore) {
	lawyers := directoryRepo.NewMemoryLawyerStore()
	ngos := directoryRepo.NewMemoryNGOStore()
	listings := directoryRepo.NewMemoryDirectoryRepo(lawyers, ngos)
	lwRepo := lawyerRepo.NewMemoryLawyerRepo(lawyers)
	orgRepo := ngoRepo.NewMemoryNGORepo(ngos)
	svc := &DefaultAdminService{
		Lawyers: lwRepo,
		NGOs:    orgRepo,
		Directory: &directory.DefaultDirectoryService{
			Listings: listings,
			Lawyers:  lwRepo,
			NGOs:     orgRepo,
		},
	}
	return svc, lawyers
}

func TestImportSourceFromBundledSnapshot(t *testing.T) {
	svc, _ := newTestAdminService()

	dir := t.TempDir()
	config.AppConfig.ImportDataDir = dir
	csv := "barCouncilId,name,state,district,specialization\n" +
		"MH/1234/2010,Ananya Kulkarni,Maharashtra,Pune,Family Law\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, barCouncilFile), []byte(csv), 0644))

	summary, err := svc.ImportSource(context.Background(), models.SourceBarCouncil)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
}

func TestImportSourceMissingSnapshot(t *testing.T) {
	svc, _ := newTestAdminService()

	config.AppConfig.ImportDataDir = t.TempDir()
	_, err := svc.ImportSource(context.Background(), models.SourceNGODarpan)
	require.Error(t, err)

	var unavailable directory.SourceUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, models.SourceNGODarpan, unavailable.Source)
}

func TestImportSourceUnknownTag(t *testing.T) {
	svc, _ := newTestAdminService()

	_, err := svc.ImportSource(context.Background(), "CENSUS")
	require.Error(t, err)
}

func TestGetPendingLawyers(t *testing.T) {
	svc, lawyers := newTestAdminService()

	lawyers.Put(models.Lawyer{ID: uuid.New().String(), FullName: "Pending One", Approved: false})
	lawyers.Put(models.Lawyer{ID: uuid.New().String(), FullName: "Already In", Approved: true})

	pending, err := svc.GetPendingLawyers()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Pending One", pending[0].FullName)
}

func TestApproveLawyerDelegates(t *testing.T) {
	svc, lawyers := newTestAdminService()

	id := uuid.New().String()
	lawyers.Put(models.Lawyer{ID: id, BarCouncilID: "MH/1234/2010"})

	require.NoError(t, svc.ApproveLawyer(context.Background(), id))

	got, err := svc.Lawyers.GetByID(id)
	require.NoError(t, err)
	assert.True(t, got.Approved)
}
