package dato

import (
	"context"
	"fmt"
	json "github.com/goccy/go-json"
	"iconpicker/internal/cms"
	"net/http"
)

type appearance struct {
	Editor         string          `json:"editor"`
	FieldExtension string          `json:"field_extension,omitempty"`
	Parameters     json.RawMessage `json:"parameters,omitempty"`
	Addons         json.RawMessage `json:"addons,omitempty"`
}

type fieldAttributes struct {
	APIKey     string     `json:"api_key,omitempty"`
	Appearance appearance `json:"appearance"`
}

type fieldRelationships struct {
	ItemType struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	} `json:"item_type"`
}

type fieldResource struct {
	ID            string             `json:"id"`
	Type          string             `json:"type"`
	Attributes    fieldAttributes    `json:"attributes"`
	Relationships fieldRelationships `json:"relationships"`
}

// FieldsUsingPlugin lists every field whose editor is the configured plugin.
func (c *Client) FieldsUsingPlugin(ctx context.Context) ([]cms.Field, error) {
	var itemTypes document[[]resource[struct{}]]
	if err := c.do(ctx, http.MethodGet, "/item-types", nil, &itemTypes); err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	var fields []cms.Field
	for _, itemType := range itemTypes.Data {
		var list document[[]fieldResource]
		if err := c.do(ctx, http.MethodGet, "/item-types/"+itemType.ID+"/fields", nil, &list); err != nil {
			return nil, fmt.Errorf("list fields of model %s: %w", itemType.ID, err)
		}
		for _, f := range list.Data {
			if f.Attributes.Appearance.Editor != c.pluginID {
				continue
			}
			fields = append(fields, cms.Field{
				ID:             f.ID,
				APIKey:         f.Attributes.APIKey,
				ItemTypeID:     itemType.ID,
				FieldExtension: f.Attributes.Appearance.FieldExtension,
			})
		}
	}
	return fields, nil
}

// UpdateEditor points a field at the given extension of the plugin and keeps
// its addons.
func (c *Client) UpdateEditor(ctx context.Context, fieldID, extensionID string) error {
	var current document[fieldResource]
	if err := c.do(ctx, http.MethodGet, "/fields/"+fieldID, nil, &current); err != nil {
		return fmt.Errorf("load field %s: %w", fieldID, err)
	}

	next := current.Data.Attributes.Appearance
	next.Editor = c.pluginID
	next.FieldExtension = extensionID
	if len(next.Parameters) == 0 {
		next.Parameters = json.RawMessage(`{}`)
	}

	err := c.do(ctx, http.MethodPut, "/fields/"+fieldID, document[resource[fieldAttributes]]{
		Data: resource[fieldAttributes]{
			ID:         fieldID,
			Type:       "field",
			Attributes: fieldAttributes{Appearance: next},
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("update field %s: %w", fieldID, err)
	}
	return nil
}
