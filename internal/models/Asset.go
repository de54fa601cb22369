package models

// Conventional asset filenames.
const (
	IconsAssetName   = "icon-font-picker-icons.json"
	FiltersAssetName = "icon-font-picker-filters.json"
	StylesAssetName  = "icon-font-picker-styles.css"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeCSS  = "text/css"
)

// AssetBundle is the raw text of the three configuration blobs.
type AssetBundle struct {
	Icons   string `json:"icons"`
	Filters string `json:"filters"`
	Styles  string `json:"styles"`
}

type AssetIDs struct {
	Icons   string `json:"iconsAssetId"`
	Filters string `json:"filtersAssetId"`
	Styles  string `json:"stylesAssetId"`
}

func (ids AssetIDs) Complete() bool {
	return ids.Icons != "" && ids.Filters != "" && ids.Styles != ""
}
