package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"weatherlookup/internal/location"
)

// doGetJSON issues a GET request with the shared client and decodes the JSON
// response body into out. A non-success status maps to location.ErrNetwork
// with the status code preserved.
func doGetJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", location.ErrNetwork, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
