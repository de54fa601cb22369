package internal

import (
	"iconpicker/internal/controllers"
	"iconpicker/internal/providers"
	"net/http"
)

func InitRoutes(apiController *controllers.ApiController, settingsController *controllers.SettingsController, migrationController *controllers.MigrationController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/catalog", http.HandlerFunc(apiController.GetCatalog))
	routers.Get("/catalog/styles", http.HandlerFunc(apiController.GetStyles))
	routers.Post("/field", http.HandlerFunc(apiController.SetField))

	routers.Get("/settings", http.HandlerFunc(settingsController.GetSettings))
	routers.Post("/settings", http.HandlerFunc(settingsController.SaveSettings))

	routers.Get("/migration", http.HandlerFunc(migrationController.GetStatus))
	routers.Post("/migration", http.HandlerFunc(migrationController.Start))
	routers.Post("/migration/retry", http.HandlerFunc(migrationController.Retry))
	return routers
}
