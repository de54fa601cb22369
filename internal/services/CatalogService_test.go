package services

import (
	"context"
	"errors"
	"iconpicker/internal/models"
	"iconpicker/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(params *testutil.MockParameterStore, store *testutil.MockAssetStore) CatalogServiceInterface {
	assets, _ := newAssetService(store, testutil.NewMockCache())
	return NewCatalogService(params, assets, &testutil.MockLogger{})
}

func TestCatalogService_LoadAssets(t *testing.T) {
	store := testutil.NewMockAssetStore()
	store.Put("1", `["fa-home","fa-user"]`)
	store.Put("2", `[{"name":"Home","value":"home"}]`)
	store.Put("3", `.fa{}`)
	params := &testutil.MockParameterStore{Params: models.WithAssets(models.String(`{"iconPrefix":"fa "}`), models.AssetIDs{Icons: "1", Filters: "2", Styles: "3"}, false)}

	cat, err := newCatalogService(params, store).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"fa-home", "fa-user"}, cat.Icons)
	assert.Equal(t, []models.Filter{{Name: "Home", Value: "home"}}, cat.Filters)
	assert.Equal(t, ".fa{}", cat.Styles)
	assert.Equal(t, "fa ", cat.GeneralOptions.IconPrefix)
}

func TestCatalogService_LoadLegacy(t *testing.T) {
	params := &testutil.MockParameterStore{Params: models.Parameters{
		Icons:   models.String(`["a"]`),
		Filters: models.String(`[]`),
		Styles:  models.String(`body{}`),
	}}
	store := testutil.NewMockAssetStore()

	cat, err := newCatalogService(params, store).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, cat.Icons)
	assert.Empty(t, cat.Filters)
	assert.Equal(t, "", cat.GeneralOptions.IconPrefix)
	assert.Equal(t, 0, store.FetchCalls)
}

func TestCatalogService_Missing(t *testing.T) {
	params := &testutil.MockParameterStore{Params: models.Parameters{Icons: models.String(`["a"]`)}}

	_, err := newCatalogService(params, testutil.NewMockAssetStore()).Load(context.Background())
	assert.ErrorIs(t, err, models.ErrConfigurationMissing)
}

func TestCatalogService_ParseError(t *testing.T) {
	params := &testutil.MockParameterStore{Params: models.Parameters{
		Icons:   models.String(`not json`),
		Filters: models.String(`[]`),
		Styles:  models.String(`body{}`),
	}}

	_, err := newCatalogService(params, testutil.NewMockAssetStore()).Load(context.Background())
	assert.ErrorIs(t, err, models.ErrConfigurationParse)
}

func TestCatalogService_FetchError(t *testing.T) {
	store := testutil.NewMockAssetStore()
	store.FetchErr["2"] = errors.New("connection reset")
	store.Put("1", `[]`)
	store.Put("3", ``)
	params := &testutil.MockParameterStore{Params: models.WithAssets(nil, models.AssetIDs{Icons: "1", Filters: "2", Styles: "3"}, false)}

	_, err := newCatalogService(params, store).Load(context.Background())
	assert.ErrorIs(t, err, models.ErrAssetFetch)
}

func TestCatalogService_ParameterLoadError(t *testing.T) {
	params := &testutil.MockParameterStore{LoadErr: errors.New("unauthorized")}

	_, err := newCatalogService(params, testutil.NewMockAssetStore()).Load(context.Background())
	assert.ErrorContains(t, err, "unauthorized")
}
