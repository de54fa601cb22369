package models

// StoredConfig is either a LegacyConfig or an AssetConfig.
type StoredConfig interface {
	Options() *string
	storedConfig()
}

// LegacyConfig keeps icons, filters and styles inline as serialized strings.
type LegacyConfig struct {
	Icons          string
	Filters        string
	Styles         string
	GeneralOptions *string
}

func (c LegacyConfig) Options() *string { return c.GeneralOptions }
func (LegacyConfig) storedConfig()      {}

// Bundle returns the inline blobs in the same shape as fetched asset content.
func (c LegacyConfig) Bundle() AssetBundle {
	return AssetBundle{Icons: c.Icons, Filters: c.Filters, Styles: c.Styles}
}

// AssetConfig points at three externally hosted blobs.
type AssetConfig struct {
	IDs            AssetIDs
	GeneralOptions *string
}

func (c AssetConfig) Options() *string { return c.GeneralOptions }
func (AssetConfig) storedConfig()      {}

// ParseParameters resolves the raw record into its variant. Asset identifiers
// win over inline data; a record with neither complete is ErrConfigurationMissing.
func ParseParameters(p Parameters) (StoredConfig, error) {
	switch {
	case p.HasAssets():
		return AssetConfig{IDs: p.AssetIDs(), GeneralOptions: p.GeneralOptions}, nil
	case p.hasLegacy():
		return LegacyConfig{
			Icons:          *p.Icons,
			Filters:        *p.Filters,
			Styles:         *p.Styles,
			GeneralOptions: p.GeneralOptions,
		}, nil
	default:
		return nil, ErrConfigurationMissing
	}
}
