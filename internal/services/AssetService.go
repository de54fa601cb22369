package services

import (
	"context"
	"fmt"
	"iconpicker/internal/cms"
	"iconpicker/internal/models"
	"iconpicker/internal/parallel"
	"iconpicker/internal/providers"
	"time"
)

const assetCachePrefix = "asset:"

type AssetServiceInterface interface {
	CreateBundle(ctx context.Context, bundle models.AssetBundle) (models.AssetIDs, error)
	FetchBundle(ctx context.Context, ids models.AssetIDs) (models.AssetBundle, error)
	DeleteBundle(ctx context.Context, ids models.AssetIDs) error
}

type AssetService struct {
	store   cms.AssetStore
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
	logger  providers.Logger
}

func NewAssetService(store cms.AssetStore, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface, logger providers.Logger) AssetServiceInterface {
	return &AssetService{
		store:   store,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// CreateBundle uploads the three blobs at once. On failure the uploads that
// did succeed are left in place.
func (as *AssetService) CreateBundle(ctx context.Context, bundle models.AssetBundle) (models.AssetIDs, error) {
	ids, err := parallel.All(ctx,
		as.create(bundle.Icons, models.IconsAssetName, models.ContentTypeJSON),
		as.create(bundle.Filters, models.FiltersAssetName, models.ContentTypeJSON),
		as.create(bundle.Styles, models.StylesAssetName, models.ContentTypeCSS),
	)
	if err != nil {
		return models.AssetIDs{}, err
	}
	return models.AssetIDs{Icons: ids[0], Filters: ids[1], Styles: ids[2]}, nil
}

func (as *AssetService) create(content, filename, contentType string) parallel.Task[string] {
	return func(ctx context.Context) (string, error) {
		start := time.Now()
		id, err := as.store.CreateAsset(ctx, content, filename, contentType)
		as.metrics.ObserveAssetDuration("create", time.Since(start))
		if err != nil {
			as.metrics.IncAssetErrors("create")
			as.logger.Errorf(providers.TypeApp, "Upload of %s failed: %s", filename, err)
			return "", err
		}
		_ = as.cache.Set(assetCachePrefix+id, []byte(content))
		as.logger.Debugf(providers.TypeApp, "Uploaded %s as %s", filename, id)
		return id, nil
	}
}

// FetchBundle reads the three blobs at once. Uploads never change, so content
// is served from the cache by id when present.
func (as *AssetService) FetchBundle(ctx context.Context, ids models.AssetIDs) (models.AssetBundle, error) {
	contents, err := parallel.All(ctx,
		as.fetch(ids.Icons),
		as.fetch(ids.Filters),
		as.fetch(ids.Styles),
	)
	if err != nil {
		return models.AssetBundle{}, fmt.Errorf("%w: %w", models.ErrAssetFetch, err)
	}
	return models.AssetBundle{Icons: contents[0], Filters: contents[1], Styles: contents[2]}, nil
}

func (as *AssetService) fetch(id string) parallel.Task[string] {
	return func(ctx context.Context) (string, error) {
		key := assetCachePrefix + id
		if data, ok := as.cache.Get(key); ok {
			return string(data), nil
		}

		start := time.Now()
		content, err := as.store.FetchAsset(ctx, id)
		as.metrics.ObserveAssetDuration("fetch", time.Since(start))
		if err != nil {
			as.metrics.IncAssetErrors("fetch")
			as.logger.Errorf(providers.TypeApp, "Fetch of asset %s failed: %s", id, err)
			return "", err
		}
		_ = as.cache.Set(key, []byte(content))
		return content, nil
	}
}

func (as *AssetService) DeleteBundle(ctx context.Context, ids models.AssetIDs) error {
	deleteTask := func(id string) parallel.Task[struct{}] {
		return func(ctx context.Context) (struct{}, error) {
			start := time.Now()
			err := as.store.DeleteAsset(ctx, id)
			as.metrics.ObserveAssetDuration("delete", time.Since(start))
			if err != nil {
				as.metrics.IncAssetErrors("delete")
				return struct{}{}, fmt.Errorf("delete asset %s: %w", id, err)
			}
			as.cache.Del(assetCachePrefix + id)
			return struct{}{}, nil
		}
	}

	_, err := parallel.All(ctx, deleteTask(ids.Icons), deleteTask(ids.Filters), deleteTask(ids.Styles))
	return err
}
