package directory

import (
	"testing"

	"legalaid/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIsExactAndCaseSensitive(t *testing.T) {
	svc, listings, _, _ := newTestService()

	require.NoError(t, listings.Create(&models.DirectoryListing{
		ID:         uuid.New().String(),
		Kind:       models.KindLawyer,
		Source:     models.SourceBarCouncil,
		NaturalKey: "MH/1234/2010",
	}))

	entry, err := svc.Resolve(models.KindLawyer, "MH/1234/2010")
	require.NoError(t, err)
	assert.NotNil(t, entry)

	entry, err = svc.Resolve(models.KindLawyer, "mh/1234/2010")
	require.NoError(t, err)
	assert.Nil(t, entry, "resolution never folds case")

	entry, err = svc.Resolve(models.KindNGO, "MH/1234/2010")
	require.NoError(t, err)
	assert.Nil(t, entry, "kind is part of the identity")
}

func TestRemoveListing(t *testing.T) {
	svc, listings, _, _ := newTestService()

	require.NoError(t, listings.Create(&models.DirectoryListing{
		ID:         uuid.New().String(),
		Kind:       models.KindNGO,
		Source:     models.SourceSelfRegistration,
		NaturalKey: "MH/2017/0171234",
	}))

	require.NoError(t, svc.RemoveListing(models.KindNGO, "MH/2017/0171234"))

	entry, err := svc.Resolve(models.KindNGO, "MH/2017/0171234")
	require.NoError(t, err)
	assert.Nil(t, entry)
}
