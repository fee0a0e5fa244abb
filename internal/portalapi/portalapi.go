// internal/portalapi/portalapi.go
package portalapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"posyandu/internal/lib/logger/utils"
	"posyandu/internal/models"
	"posyandu/internal/pager"

	"go.uber.org/zap"
)

var ErrUpstream = errors.New("portal API error")

type PortalAPIClient struct {
	baseURL string
	client  *http.Client
}

func NewPortalAPIClient(baseURL string) *PortalAPIClient {
	return &PortalAPIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// ListPosyandu fetches one page of posyandu. Page, limit and every filter
// entry are sent as query parameters.
func (api *PortalAPIClient) ListPosyandu(ctx context.Context, params pager.Params) (*models.Page[models.Posyandu], error) {
	if api.baseURL == "" {
		return nil, fmt.Errorf("API_URL not configured")
	}

	u, err := url.Parse(api.baseURL + "/posyandu")
	if err != nil {
		return nil, fmt.Errorf("failed to parse API_URL: %w", err)
	}
	u.RawQuery = params.Values().Encode()

	utils.Logger.Debug("Calling portal API", zap.String("url", u.String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build portal API request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := api.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call portal API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		if body.Error != "" {
			return nil, fmt.Errorf("%w: %s: %s", ErrUpstream, resp.Status, body.Error)
		}
		return nil, fmt.Errorf("%w: %s", ErrUpstream, resp.Status)
	}

	var page models.Page[models.Posyandu]
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode portal API response: %w", err)
	}

	utils.Logger.Debug("Portal API response", zap.Int("count", len(page.Data)), zap.Any("meta", page.Meta))
	return &page, nil
}
