package models

// Parameters is the plugin parameter record as persisted by the CMS.
// A nil field is absent; absence, not an empty string, retires a field.
type Parameters struct {
	Icons                    *string `json:"icons,omitempty"`
	Filters                  *string `json:"filters,omitempty"`
	Styles                   *string `json:"styles,omitempty"`
	GeneralOptions           *string `json:"generalOptions,omitempty"`
	IconsAssetID             *string `json:"iconsAssetId,omitempty"`
	FiltersAssetID           *string `json:"filtersAssetId,omitempty"`
	StylesAssetID            *string `json:"stylesAssetId,omitempty"`
	MigratedToAssets         bool    `json:"migratedToAssets,omitempty"`
	MigratedFromLegacyPlugin bool    `json:"migratedFromLegacyPlugin,omitempty"`
}

func String(s string) *string {
	return &s
}

func isSet(s *string) bool {
	return s != nil && *s != ""
}

func (p Parameters) hasLegacy() bool {
	return isSet(p.Icons) && isSet(p.Filters) && isSet(p.Styles)
}

// HasAssets reports whether all three asset identifiers are set.
func (p Parameters) HasAssets() bool {
	return isSet(p.IconsAssetID) && isSet(p.FiltersAssetID) && isSet(p.StylesAssetID)
}

func (p Parameters) anyAsset() bool {
	return isSet(p.IconsAssetID) || isSet(p.FiltersAssetID) || isSet(p.StylesAssetID)
}

// NeedsMigration is true iff all three legacy blobs are set and no asset id is.
// Callers evaluate it on freshly loaded parameters every time.
func NeedsMigration(p Parameters) bool {
	return p.hasLegacy() && !p.anyAsset()
}

// AssetIDs returns the three asset identifiers; empty strings for absent ones.
func (p Parameters) AssetIDs() AssetIDs {
	return AssetIDs{
		Icons:   deref(p.IconsAssetID),
		Filters: deref(p.FiltersAssetID),
		Styles:  deref(p.StylesAssetID),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// WithAssets builds the asset variant record. The legacy fields are left absent.
func WithAssets(generalOptions *string, ids AssetIDs, migratedFromLegacyPlugin bool) Parameters {
	return Parameters{
		GeneralOptions:           generalOptions,
		IconsAssetID:             String(ids.Icons),
		FiltersAssetID:           String(ids.Filters),
		StylesAssetID:            String(ids.Styles),
		MigratedToAssets:         true,
		MigratedFromLegacyPlugin: migratedFromLegacyPlugin,
	}
}
