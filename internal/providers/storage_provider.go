package providers

import (
	"context"
	"fmt"
	"iconpicker/internal/cms"
	"iconpicker/internal/cms/dato"
	"iconpicker/internal/cms/filestore"
	"iconpicker/internal/cms/objectstore"
	"iconpicker/internal/structures"
	"time"
)

const (
	DriverDato = "dato"
	DriverS3   = "s3"
	DriverFile = "file"
)

func NewCmaClient(conf *structures.Config) *dato.Client {
	return dato.New(dato.Options{
		BaseURL:      conf.Cms.BaseURL,
		APIToken:     conf.Cms.APIToken,
		Environment:  conf.Cms.Environment,
		PluginID:     conf.Plugin.ID,
		Timeout:      conf.Cms.RequestTimeout,
		PollInterval: conf.Cms.JobPollInterval,
		PollAttempts: conf.Cms.JobPollAttempts,
	})
}

func NewAssetStore(conf *structures.Config, client *dato.Client, logger Logger) (cms.AssetStore, error) {
	switch conf.Assets.Driver {
	case DriverDato:
		logger.Infof(TypeApp, "Assets stored as CMS uploads")
		return client, nil
	case DriverS3:
		store, err := objectstore.New(conf.Assets.S3)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err = store.EnsureBucket(ctx); err != nil {
			return nil, fmt.Errorf("prepare bucket %q: %w", conf.Assets.S3.Bucket, err)
		}
		logger.Infof(TypeApp, "Assets stored in bucket %s at %s", conf.Assets.S3.Bucket, conf.Assets.S3.Endpoint)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown assets driver %q", conf.Assets.Driver)
	}
}

func NewParameterStore(conf *structures.Config, client *dato.Client, logger Logger) (cms.ParameterStore, error) {
	switch conf.Parameters.Driver {
	case DriverDato:
		return client, nil
	case DriverFile:
		var compressor filestore.Compressor
		if conf.Parameters.Compress {
			var err error
			compressor, err = filestore.NewZstdCompressor()
			if err != nil {
				return nil, err
			}
		}
		logger.Infof(TypeApp, "Plugin parameters kept in %s", conf.Parameters.FilePath)
		return filestore.New(conf.Parameters.FilePath, compressor), nil
	default:
		return nil, fmt.Errorf("unknown parameters driver %q", conf.Parameters.Driver)
	}
}

func NewFieldStore(client *dato.Client) cms.FieldStore {
	return client
}

func NewItemWriter(client *dato.Client) cms.ItemWriter {
	return client
}
