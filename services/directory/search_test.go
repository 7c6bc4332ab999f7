package directory

import (
	"context"
	"fmt"
	"testing"

	directoryRepo "legalaid/database/repository/directory"
	"legalaid/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedListing(t *testing.T, listings *directoryRepo.MemoryDirectoryRepo, e models.DirectoryListing) {
	t.Helper()
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	require.NoError(t, listings.Create(&e))
}

func TestSearchOnlyReturnsApproved(t *testing.T) {
	svc, listings, _, _ := newTestService()

	seedListing(t, listings, models.DirectoryListing{
		Kind: models.KindLawyer, NaturalKey: "MH/1234/2010",
		Name: "Ananya Kulkarni", State: "Maharashtra", Approved: true, Verified: true,
	})
	seedListing(t, listings, models.DirectoryListing{
		Kind: models.KindLawyer, NaturalKey: "DL/0456/2015",
		Name: "Rohit Malhotra", State: "Delhi", Approved: false, Verified: true,
	})

	page, err := svc.Search(context.Background(), directoryRepo.DirectorySearchCriteria{})
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, "Ananya Kulkarni", page.Entries[0].Name)
	assert.Equal(t, int64(1), page.TotalCount)
}

func TestSearchFilters(t *testing.T) {
	svc, listings, _, _ := newTestService()

	seedListing(t, listings, models.DirectoryListing{
		Kind: models.KindLawyer, Name: "Ananya Kulkarni", State: "Maharashtra",
		District: "Pune", Specialization: "Family Law", ExperienceYears: 15, Approved: true,
	})
	seedListing(t, listings, models.DirectoryListing{
		Kind: models.KindLawyer, Name: "Rohit Malhotra", State: "Delhi",
		District: "New Delhi", Specialization: "Criminal Law", ExperienceYears: 10, Approved: true,
	})
	seedListing(t, listings, models.DirectoryListing{
		Kind: models.KindNGO, Name: "Nyay Sahayata Foundation", State: "Maharashtra",
		District: "Mumbai Suburban", Specialization: "Legal Aid", Approved: true,
	})

	page, err := svc.Search(context.Background(), directoryRepo.DirectorySearchCriteria{Kind: models.KindLawyer})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)

	page, err = svc.Search(context.Background(), directoryRepo.DirectorySearchCriteria{State: "Maharashtra"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)

	page, err = svc.Search(context.Background(), directoryRepo.DirectorySearchCriteria{
		Kind:          models.KindLawyer,
		MinExperience: 12,
	})
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, "Ananya Kulkarni", page.Entries[0].Name)
}

func TestSearchPagination(t *testing.T) {
	svc, listings, _, _ := newTestService()

	for i := 0; i < 25; i++ {
		seedListing(t, listings, models.DirectoryListing{
			Kind: models.KindLawyer, Name: fmt.Sprintf("Lawyer %02d", i),
			State: "Kerala", Approved: true,
		})
	}

	page, err := svc.Search(context.Background(), directoryRepo.DirectorySearchCriteria{PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page.Entries, 10)
	assert.Equal(t, int64(25), page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)

	last, err := svc.Search(context.Background(), directoryRepo.DirectorySearchCriteria{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, last.Entries, 5)

	beyond, err := svc.Search(context.Background(), directoryRepo.DirectorySearchCriteria{Page: 5, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, beyond.Entries)
	assert.Equal(t, int64(25), beyond.TotalCount)
}

func TestSearchRejectsNegativeExperience(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Search(context.Background(), directoryRepo.DirectorySearchCriteria{MinExperience: -1})
	require.Error(t, err)

	var validation ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "minExperience", validation.Field)
}

func TestSearchDefaultsPageSize(t *testing.T) {
	svc, _, _, _ := newTestService()

	page, err := svc.Search(context.Background(), directoryRepo.DirectorySearchCriteria{PageSize: 0})
	require.NoError(t, err)
	assert.Equal(t, defaultPageSize, page.PageSize)

	page, err = svc.Search(context.Background(), directoryRepo.DirectorySearchCriteria{PageSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, maxPageSize, page.PageSize)
}
