// Package dato talks to the DatoCMS Content Management API.
package dato

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	json "github.com/goccy/go-json"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	apiVersion      = "3"
	contentTypeJSON = "application/vnd.api+json"
)

type Options struct {
	BaseURL      string
	APIToken     string
	Environment  string
	PluginID     string
	Timeout      time.Duration
	PollInterval time.Duration
	PollAttempts int
	HTTPClient   *http.Client
}

type Client struct {
	baseURL      string
	token        string
	environment  string
	pluginID     string
	http         *http.Client
	pollInterval time.Duration
	pollAttempts int
}

func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	pollInterval := opts.PollInterval
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	pollAttempts := opts.PollAttempts
	if pollAttempts <= 0 {
		pollAttempts = 30
	}
	return &Client{
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		token:        opts.APIToken,
		environment:  opts.Environment,
		pluginID:     opts.PluginID,
		http:         httpClient,
		pollInterval: pollInterval,
		pollAttempts: pollAttempts,
	}
}

type resource[T any] struct {
	ID         string `json:"id,omitempty"`
	Type       string `json:"type"`
	Attributes T      `json:"attributes"`
}

type document[T any] struct {
	Data T `json:"data"`
}

type apiErrorDocument struct {
	Data []struct {
		ID         string `json:"id"`
		Attributes struct {
			Code    string          `json:"code"`
			Details json.RawMessage `json:"details"`
		} `json:"attributes"`
	} `json:"data"`
}

// APIError is a non-2xx answer of the CMA.
type APIError struct {
	Method string
	Path   string
	Status int
	Code   string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Code)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// do sends a JSON:API request and decodes the answer into out when it is not nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	if c.environment != "" {
		req.Header.Set("X-Environment", c.environment)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Method: method, Path: path, Status: resp.StatusCode}
		var doc apiErrorDocument
		if json.Unmarshal(data, &doc) == nil && len(doc.Data) > 0 {
			apiErr.Code = doc.Data[0].Attributes.Code
		}
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err = json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
