package services

import (
	"context"
	"fmt"
	"iconpicker/internal/cms"
	"iconpicker/internal/models"
	"iconpicker/internal/parallel"
	"iconpicker/internal/providers"
	"iconpicker/internal/structures"
)

const NoticeMigrationRequired = "Icon Font Picker v2.0 requires migration. Please open plugin settings to migrate your configuration to assets."

type BootServiceInterface interface {
	Run(ctx context.Context) error
}

// BootService runs the one-off housekeeping owed when the plugin starts.
type BootService struct {
	conf     *structures.Config
	params   cms.ParameterStore
	fields   cms.FieldStore
	notifier cms.Notifier
	logger   providers.Logger
}

func NewBootService(conf *structures.Config, params cms.ParameterStore, fields cms.FieldStore, notifier cms.Notifier, logger providers.Logger) BootServiceInterface {
	return &BootService{
		conf:     conf,
		params:   params,
		fields:   fields,
		notifier: notifier,
		logger:   logger,
	}
}

func (bs *BootService) Run(ctx context.Context) error {
	params, err := bs.params.Load(ctx)
	if err != nil {
		return fmt.Errorf("load plugin parameters: %w", err)
	}

	if !params.MigratedFromLegacyPlugin && bs.conf.Plugin.CanEditSchema {
		params, err = bs.adoptLegacyFields(ctx, params)
		if err != nil {
			return err
		}
	}

	if models.NeedsMigration(params) && bs.conf.Plugin.CanEditSchema {
		bs.notifier.Notice(NoticeMigrationRequired)
	}
	return nil
}

// adoptLegacyFields points fields installed by the pre-extension plugin at
// the current field extension and records that this was done.
func (bs *BootService) adoptLegacyFields(ctx context.Context, params models.Parameters) (models.Parameters, error) {
	fields, err := bs.fields.FieldsUsingPlugin(ctx)
	if err != nil {
		return params, fmt.Errorf("list fields using plugin: %w", err)
	}

	extensionID := bs.conf.Plugin.ExtensionID
	tasks := make([]parallel.Task[string], 0, len(fields))
	for _, field := range fields {
		tasks = append(tasks, func(ctx context.Context) (string, error) {
			if err := bs.fields.UpdateEditor(ctx, field.ID, extensionID); err != nil {
				return "", fmt.Errorf("update editor of field %s: %w", field.APIKey, err)
			}
			return field.ID, nil
		})
	}
	if _, err = parallel.All(ctx, tasks...); err != nil {
		return params, err
	}

	params.MigratedFromLegacyPlugin = true
	if err = bs.params.Replace(ctx, params); err != nil {
		return params, fmt.Errorf("record legacy field migration: %w", err)
	}
	bs.logger.Infof(providers.TypeMigration, "Moved %d field(s) to the %s extension", len(fields), extensionID)
	return params, nil
}
