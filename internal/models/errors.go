package models

import "errors"

var (
	// ErrConfigurationMissing means neither the legacy nor the asset fields are fully present.
	ErrConfigurationMissing = errors.New("configuration not found, please configure the plugin in settings")
	// ErrConfigurationParse means a stored blob could not be decoded.
	ErrConfigurationParse = errors.New("failed to load configuration, please check plugin settings")
	// ErrAssetFetch wraps network or HTTP failures reading asset content.
	ErrAssetFetch = errors.New("failed to load configuration assets")
	// ErrMigration wraps a failed upload or parameter write during migration.
	ErrMigration = errors.New("migration failed")
)
