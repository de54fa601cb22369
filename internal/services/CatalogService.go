package services

import (
	"context"
	"fmt"
	"iconpicker/internal/cms"
	"iconpicker/internal/models"
	"iconpicker/internal/providers"
)

type CatalogServiceInterface interface {
	Load(ctx context.Context) (*models.Catalog, error)
}

type CatalogService struct {
	params cms.ParameterStore
	assets AssetServiceInterface
	logger providers.Logger
}

func NewCatalogService(params cms.ParameterStore, assets AssetServiceInterface, logger providers.Logger) CatalogServiceInterface {
	return &CatalogService{
		params: params,
		assets: assets,
		logger: logger,
	}
}

// Load resolves the stored configuration into a fully parsed catalog.
// A partially configured installation is an error, never a partial catalog.
func (cs *CatalogService) Load(ctx context.Context) (*models.Catalog, error) {
	params, err := cs.params.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load plugin parameters: %w", err)
	}

	stored, err := models.ParseParameters(params)
	if err != nil {
		return nil, err
	}

	var bundle models.AssetBundle
	switch c := stored.(type) {
	case models.AssetConfig:
		bundle, err = cs.assets.FetchBundle(ctx, c.IDs)
		if err != nil {
			return nil, err
		}
	case models.LegacyConfig:
		bundle = c.Bundle()
	}

	catalog, err := models.ParseCatalog(bundle, stored.Options())
	if err != nil {
		cs.logger.Warnf(providers.TypeApp, "Stored configuration is invalid: %s", err)
		return nil, err
	}
	return catalog, nil
}
