package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/osmosis-labs/swapquery/domain/json"
)

// GetOK issues a GET request to url using DefaultClient and returns the body.
// Any non-2xx status is an error carrying the status and body.
func GetOK(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body from (%s): %w", url, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("request to (%s) failed with status (%d): %s", url, resp.StatusCode, string(body))
	}

	return body, nil
}

// GetJSON fetches url and decodes the body into response.
func GetJSON(ctx context.Context, url string, response any) error {
	body, err := GetOK(ctx, url)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, response); err != nil {
		return fmt.Errorf("failed to unmarshal response of (%s): %w", url, err)
	}

	return nil
}
