package services

import (
	"context"
	"errors"
	"fmt"
	json "github.com/goccy/go-json"
	"github.com/gookit/validate"
	"iconpicker/internal/catalog"
	"iconpicker/internal/cms"
	"iconpicker/internal/models"
	"iconpicker/internal/providers"
	"iconpicker/internal/structures"
)

const (
	NoticeSettingsSaved     = "Settings updated successfully!"
	AlertSettingsSaveFailed = "Failed to save settings. Please try again."
	AlertAssetsLoadFailed   = "Failed to load configuration assets. Please try refreshing the page."
)

var (
	ErrMigrationRequired = errors.New("configuration must be migrated to assets first")
	ErrInvalidSettings   = errors.New("invalid settings")
)

type SettingsServiceInterface interface {
	Load(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) (models.AssetIDs, error)
}

type SettingsService struct {
	conf     *structures.Config
	params   cms.ParameterStore
	assets   AssetServiceInterface
	notifier cms.Notifier
	logger   providers.Logger
}

func NewSettingsService(conf *structures.Config, params cms.ParameterStore, assets AssetServiceInterface, notifier cms.Notifier, logger providers.Logger) SettingsServiceInterface {
	return &SettingsService{
		conf:     conf,
		params:   params,
		assets:   assets,
		notifier: notifier,
		logger:   logger,
	}
}

func (ss *SettingsService) Load(ctx context.Context) (models.Settings, error) {
	params, err := ss.params.Load(ctx)
	if err != nil {
		return models.Settings{}, fmt.Errorf("load plugin parameters: %w", err)
	}
	if models.NeedsMigration(params) {
		return models.Settings{}, ErrMigrationRequired
	}

	settings := models.DefaultSettings()
	if params.GeneralOptions != nil && *params.GeneralOptions != "" {
		settings.GeneralOptions = *params.GeneralOptions
	}
	if !params.HasAssets() {
		return settings, nil
	}

	bundle, err := ss.assets.FetchBundle(ctx, params.AssetIDs())
	if err != nil {
		ss.notifier.Alert(AlertAssetsLoadFailed)
		return models.Settings{}, err
	}
	settings.Icons = bundle.Icons
	settings.Filters = bundle.Filters
	settings.Styles = bundle.Styles
	return settings, nil
}

// Save uploads the three blobs as new assets and points the parameters at them.
// Nothing is uploaded unless every part validates.
func (ss *SettingsService) Save(ctx context.Context, settings models.Settings) (models.AssetIDs, error) {
	if settings.GeneralOptions == "" {
		settings.GeneralOptions = models.DefaultGeneralOptions
	}
	if err := ValidateSettings(settings); err != nil {
		return models.AssetIDs{}, err
	}

	previous, err := ss.params.Load(ctx)
	if err != nil {
		ss.notifier.Alert(AlertSettingsSaveFailed)
		return models.AssetIDs{}, fmt.Errorf("load plugin parameters: %w", err)
	}
	if models.NeedsMigration(previous) {
		return models.AssetIDs{}, ErrMigrationRequired
	}

	ids, err := ss.assets.CreateBundle(ctx, models.AssetBundle{
		Icons:   settings.Icons,
		Filters: settings.Filters,
		Styles:  settings.Styles,
	})
	if err != nil {
		ss.logger.Errorf(providers.TypePost, "Failed to save settings: %s", err)
		ss.notifier.Alert(AlertSettingsSaveFailed)
		return models.AssetIDs{}, err
	}

	next := models.WithAssets(models.String(settings.GeneralOptions), ids, previous.MigratedFromLegacyPlugin)
	if err = ss.params.Replace(ctx, next); err != nil {
		ss.logger.Errorf(providers.TypePost, "Failed to save settings: %s", err)
		ss.notifier.Alert(AlertSettingsSaveFailed)
		return models.AssetIDs{}, err
	}

	ss.notifier.Notice(NoticeSettingsSaved)
	ss.logger.Infof(providers.TypePost, "Settings saved as assets %s, %s, %s", ids.Icons, ids.Filters, ids.Styles)

	if ss.conf.Assets.DeleteReplaced && previous.HasAssets() {
		if err = ss.assets.DeleteBundle(ctx, previous.AssetIDs()); err != nil {
			ss.logger.Warnf(providers.TypePost, "Replaced assets were not removed: %s", err)
		}
	}
	return ids, nil
}

// ValidateSettings checks every part of the settings form.
func ValidateSettings(settings models.Settings) error {
	v := validate.Struct(&settings)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", ErrInvalidSettings, v.Errors.One())
	}

	var options map[string]any
	if err := json.Unmarshal([]byte(settings.GeneralOptions), &options); err != nil || options == nil {
		return fmt.Errorf("%w: general options must be a JSON object", ErrInvalidSettings)
	}
	if prefix, ok := options["iconPrefix"]; ok {
		if _, isString := prefix.(string); !isString {
			return fmt.Errorf("%w: iconPrefix must be a string", ErrInvalidSettings)
		}
	}

	var icons []string
	if err := json.Unmarshal([]byte(settings.Icons), &icons); err != nil || icons == nil {
		return fmt.Errorf("%w: icons must be a JSON array of strings", ErrInvalidSettings)
	}

	var filters []models.Filter
	if err := json.Unmarshal([]byte(settings.Filters), &filters); err != nil || filters == nil {
		return fmt.Errorf("%w: filters must be a JSON array of {name, value} objects", ErrInvalidSettings)
	}
	values := make([]string, 0, len(filters))
	for i, f := range filters {
		if f.Name == "" || f.Value == "" {
			return fmt.Errorf("%w: filter %d needs a name and a value", ErrInvalidSettings, i)
		}
		values = append(values, f.Value)
	}
	if _, err := catalog.CompileFilters(values); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}
