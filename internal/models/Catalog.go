package models

import (
	"fmt"
	json "github.com/goccy/go-json"
)

const DefaultGeneralOptions = `{
  "iconPrefix": ""
}`

type Filter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type GeneralOptions struct {
	IconPrefix string `json:"iconPrefix"`
}

// Catalog is everything the picker needs to render.
type Catalog struct {
	Icons          []string       `json:"icons"`
	Filters        []Filter       `json:"filters"`
	Styles         string         `json:"styles"`
	GeneralOptions GeneralOptions `json:"generalOptions"`
}

func ParseIcons(raw string) ([]string, error) {
	var icons []string
	if err := json.Unmarshal([]byte(raw), &icons); err != nil {
		return nil, fmt.Errorf("%w: icons: %w", ErrConfigurationParse, err)
	}
	if icons == nil {
		icons = []string{}
	}
	return icons, nil
}

func ParseFilters(raw string) ([]Filter, error) {
	var filters []Filter
	if err := json.Unmarshal([]byte(raw), &filters); err != nil {
		return nil, fmt.Errorf("%w: filters: %w", ErrConfigurationParse, err)
	}
	if filters == nil {
		filters = []Filter{}
	}
	return filters, nil
}

// ParseGeneralOptions decodes the options blob; an absent blob yields an empty prefix.
func ParseGeneralOptions(raw *string) (GeneralOptions, error) {
	var opts GeneralOptions
	if !isSet(raw) {
		return opts, nil
	}
	if err := json.Unmarshal([]byte(*raw), &opts); err != nil {
		return opts, fmt.Errorf("%w: generalOptions: %w", ErrConfigurationParse, err)
	}
	return opts, nil
}

// ParseCatalog decodes all four parts; any failure rejects the whole catalog.
func ParseCatalog(bundle AssetBundle, generalOptions *string) (*Catalog, error) {
	icons, err := ParseIcons(bundle.Icons)
	if err != nil {
		return nil, err
	}
	filters, err := ParseFilters(bundle.Filters)
	if err != nil {
		return nil, err
	}
	opts, err := ParseGeneralOptions(generalOptions)
	if err != nil {
		return nil, err
	}
	return &Catalog{
		Icons:          icons,
		Filters:        filters,
		Styles:         bundle.Styles,
		GeneralOptions: opts,
	}, nil
}
