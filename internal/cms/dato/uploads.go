package dato

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var ErrJobTimeout = errors.New("upload job did not finish in time")

type uploadRequestAttributes struct {
	Filename       string            `json:"filename,omitempty"`
	URL            string            `json:"url,omitempty"`
	RequestHeaders map[string]string `json:"request_headers,omitempty"`
}

type uploadAttributes struct {
	Path     string `json:"path,omitempty"`
	URL      string `json:"url,omitempty"`
	Filename string `json:"filename,omitempty"`
}

type jobResultAttributes struct {
	Status  int `json:"status"`
	Payload struct {
		Data resource[uploadAttributes] `json:"data"`
	} `json:"payload"`
}

// CreateAsset uploads content and returns the id of the new upload. The CMA
// hands out a signed storage URL, then creates the upload in a background job.
func (c *Client) CreateAsset(ctx context.Context, content, filename, contentType string) (string, error) {
	var permission document[resource[uploadRequestAttributes]]
	err := c.do(ctx, http.MethodPost, "/upload-requests", document[resource[uploadRequestAttributes]]{
		Data: resource[uploadRequestAttributes]{
			Type:       "upload_request",
			Attributes: uploadRequestAttributes{Filename: filename},
		},
	}, &permission)
	if err != nil {
		return "", fmt.Errorf("request upload of %s: %w", filename, err)
	}

	if err = c.putObject(ctx, permission.Data.Attributes, content, contentType); err != nil {
		return "", fmt.Errorf("store %s: %w", filename, err)
	}

	var job document[resource[struct{}]]
	err = c.do(ctx, http.MethodPost, "/uploads", document[resource[uploadAttributes]]{
		Data: resource[uploadAttributes]{
			Type:       "upload",
			Attributes: uploadAttributes{Path: permission.Data.ID},
		},
	}, &job)
	if err != nil {
		return "", fmt.Errorf("create upload %s: %w", filename, err)
	}

	id, err := c.waitForUpload(ctx, job.Data.ID)
	if err != nil {
		return "", fmt.Errorf("create upload %s: %w", filename, err)
	}
	return id, nil
}

func (c *Client) putObject(ctx context.Context, target uploadRequestAttributes, content, contentType string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target.URL, strings.NewReader(content))
	if err != nil {
		return err
	}
	for k, v := range target.RequestHeaders {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("storage responded %s", resp.Status)
	}
	return nil
}

// waitForUpload polls the job result until the upload exists.
func (c *Client) waitForUpload(ctx context.Context, jobID string) (string, error) {
	path := "/job-results/" + jobID
	for attempt := 0; attempt < c.pollAttempts; attempt++ {
		var result document[resource[jobResultAttributes]]
		err := c.do(ctx, http.MethodGet, path, nil, &result)
		switch {
		case err == nil:
			if result.Data.Attributes.Status >= 300 {
				return "", fmt.Errorf("upload job %s finished with status %d", jobID, result.Data.Attributes.Status)
			}
			return result.Data.Attributes.Payload.Data.ID, nil
		case !IsNotFound(err):
			return "", err
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
	return "", ErrJobTimeout
}

// FetchAsset reads the text content of an upload.
func (c *Client) FetchAsset(ctx context.Context, id string) (string, error) {
	var upload document[resource[uploadAttributes]]
	if err := c.do(ctx, http.MethodGet, "/uploads/"+id, nil, &upload); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, upload.Data.Attributes.URL, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("failed to fetch asset content: %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *Client) DeleteAsset(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/uploads/"+id, nil, nil)
}
