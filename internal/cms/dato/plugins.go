package dato

import (
	"context"
	"fmt"
	"iconpicker/internal/models"
	"net/http"
)

type pluginAttributes struct {
	Parameters models.Parameters `json:"parameters"`
}

// Load returns the current parameters of the configured plugin.
func (c *Client) Load(ctx context.Context) (models.Parameters, error) {
	var plugin document[resource[pluginAttributes]]
	if err := c.do(ctx, http.MethodGet, "/plugins/"+c.pluginID, nil, &plugin); err != nil {
		return models.Parameters{}, err
	}
	return plugin.Data.Attributes.Parameters, nil
}

// Replace writes the whole parameter record in one request.
func (c *Client) Replace(ctx context.Context, params models.Parameters) error {
	err := c.do(ctx, http.MethodPut, "/plugins/"+c.pluginID, document[resource[pluginAttributes]]{
		Data: resource[pluginAttributes]{
			ID:         c.pluginID,
			Type:       "plugin",
			Attributes: pluginAttributes{Parameters: params},
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("update plugin parameters: %w", err)
	}
	return nil
}
