// Package cms declares the capabilities the service needs from the hosting CMS.
package cms

import (
	"context"
	"iconpicker/internal/models"
)

type AssetCreator interface {
	CreateAsset(ctx context.Context, content, filename, contentType string) (string, error)
}

type AssetFetcher interface {
	FetchAsset(ctx context.Context, id string) (string, error)
}

type AssetDeleter interface {
	DeleteAsset(ctx context.Context, id string) error
}

type AssetStore interface {
	AssetCreator
	AssetFetcher
	AssetDeleter
}

// ParameterStore holds the plugin parameters of one installation.
// Replace swaps the whole record in a single write.
type ParameterStore interface {
	Load(ctx context.Context) (models.Parameters, error)
	Replace(ctx context.Context, params models.Parameters) error
}

type Field struct {
	ID             string
	APIKey         string
	ItemTypeID     string
	FieldExtension string
}

type FieldStore interface {
	FieldsUsingPlugin(ctx context.Context) ([]Field, error)
	UpdateEditor(ctx context.Context, fieldID, extensionID string) error
}

type ItemWriter interface {
	SetFieldValue(ctx context.Context, itemID, fieldPath string, value *string) error
}

type Notifier interface {
	Notice(message string)
	Alert(message string)
}
