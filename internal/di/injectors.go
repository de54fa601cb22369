//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"iconpicker/internal"
	"iconpicker/internal/controllers"
	"iconpicker/internal/migration"
	"iconpicker/internal/providers"
	"iconpicker/internal/services"
	"iconpicker/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewNotifier,

		providers.NewCmaClient,
		providers.NewAssetStore,
		providers.NewParameterStore,
		providers.NewFieldStore,
		providers.NewItemWriter,

		services.NewAssetService,
		services.NewCatalogService,
		services.NewSettingsService,
		services.NewBootService,
		services.NewFieldService,
		migration.NewMachine,

		controllers.NewApiController,
		controllers.NewSettingsController,
		controllers.NewMigrationController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
