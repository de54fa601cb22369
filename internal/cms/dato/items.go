package dato

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
)

var errFieldPath = errors.New("field path must be a field or field.locale")

// SetFieldValue writes one field of a record. A path such as "icon.en"
// addresses a locale of a localized field; the record is read first so the
// write carries every other locale unchanged.
func (c *Client) SetFieldValue(ctx context.Context, itemID, fieldPath string, value *string) error {
	path := strings.Split(fieldPath, ".")
	if len(path) > 2 || slices.Contains(path, "") {
		return fmt.Errorf("%w: %q", errFieldPath, fieldPath)
	}

	var leaf any
	if value != nil {
		leaf = *value
	}
	attributes := map[string]any{path[0]: leaf}
	if len(path) == 2 {
		locales, err := c.localeValues(ctx, itemID, path[0])
		if err != nil {
			return err
		}
		locales[path[1]] = leaf
		attributes[path[0]] = locales
	}

	err := c.do(ctx, http.MethodPut, "/items/"+itemID, document[resource[map[string]any]]{
		Data: resource[map[string]any]{
			ID:         itemID,
			Type:       "item",
			Attributes: attributes,
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("update record %s: %w", itemID, err)
	}
	return nil
}

func (c *Client) localeValues(ctx context.Context, itemID, field string) (map[string]any, error) {
	var item document[resource[map[string]any]]
	if err := c.do(ctx, http.MethodGet, "/items/"+itemID, nil, &item); err != nil {
		return nil, fmt.Errorf("read record %s: %w", itemID, err)
	}
	locales := map[string]any{}
	switch current := item.Data.Attributes[field].(type) {
	case nil:
	case map[string]any:
		for k, v := range current {
			locales[k] = v
		}
	default:
		return nil, fmt.Errorf("%w: %s is not localized", errFieldPath, field)
	}
	return locales, nil
}
