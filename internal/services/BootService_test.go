package services

import (
	"context"
	"errors"
	"iconpicker/internal/cms"
	"iconpicker/internal/models"
	"iconpicker/internal/structures"
	"iconpicker/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bootConfig(canEditSchema bool) *structures.Config {
	return &structures.Config{Plugin: structures.PluginConfig{
		ID:            "plugin-1",
		ExtensionID:   "icon-picker-fields",
		CanEditSchema: canEditSchema,
	}}
}

func legacyParameters() models.Parameters {
	return models.Parameters{
		Icons:   models.String(`["a"]`),
		Filters: models.String(`[]`),
		Styles:  models.String(`body{}`),
	}
}

func TestBootService_AdoptsLegacyFields(t *testing.T) {
	params := &testutil.MockParameterStore{Params: models.Parameters{IconsAssetID: models.String("1"), FiltersAssetID: models.String("2"), StylesAssetID: models.String("3")}}
	fields := testutil.NewMockFieldStore(cms.Field{ID: "10", APIKey: "icon"}, cms.Field{ID: "11", APIKey: "badge"})
	notifier := &testutil.MockNotifier{}

	err := NewBootService(bootConfig(true), params, fields, notifier, &testutil.MockLogger{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"10": "icon-picker-fields", "11": "icon-picker-fields"}, fields.Updated)
	assert.True(t, params.Params.MigratedFromLegacyPlugin)
	assert.Equal(t, models.String("1"), params.Params.IconsAssetID)
	assert.Empty(t, notifier.NoticeList())
}

func TestBootService_AlreadyAdopted(t *testing.T) {
	params := &testutil.MockParameterStore{Params: models.Parameters{MigratedFromLegacyPlugin: true}}
	fields := testutil.NewMockFieldStore(cms.Field{ID: "10"})

	err := NewBootService(bootConfig(true), params, fields, &testutil.MockNotifier{}, &testutil.MockLogger{}).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, fields.Updated)
	assert.Equal(t, 0, params.ReplaceCount())
}

func TestBootService_WithoutSchemaPermission(t *testing.T) {
	params := &testutil.MockParameterStore{Params: legacyParameters()}
	fields := testutil.NewMockFieldStore(cms.Field{ID: "10"})
	notifier := &testutil.MockNotifier{}

	err := NewBootService(bootConfig(false), params, fields, notifier, &testutil.MockLogger{}).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, fields.Updated)
	assert.Equal(t, 0, params.ReplaceCount())
	assert.Empty(t, notifier.NoticeList())
}

func TestBootService_NoticesPendingMigration(t *testing.T) {
	params := &testutil.MockParameterStore{Params: legacyParameters()}
	notifier := &testutil.MockNotifier{}

	err := NewBootService(bootConfig(true), params, testutil.NewMockFieldStore(), notifier, &testutil.MockLogger{}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{NoticeMigrationRequired}, notifier.NoticeList())
	assert.True(t, params.Params.MigratedFromLegacyPlugin)
	assert.Equal(t, models.String(`["a"]`), params.Params.Icons)
}

func TestBootService_FieldUpdateFailureKeepsFlagUnset(t *testing.T) {
	params := &testutil.MockParameterStore{}
	fields := testutil.NewMockFieldStore(cms.Field{ID: "10", APIKey: "icon"}, cms.Field{ID: "11", APIKey: "badge"})
	fields.UpdateErr["11"] = errors.New("forbidden")

	err := NewBootService(bootConfig(true), params, fields, &testutil.MockNotifier{}, &testutil.MockLogger{}).Run(context.Background())
	assert.ErrorContains(t, err, "badge")
	assert.Equal(t, 0, params.ReplaceCount())
}
