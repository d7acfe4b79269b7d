package coursesearch

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/jonsiu/career-os-sub001/internal/types"
)

const defaultSearchTimeout = 10 * time.Second

// APIProvider queries a JSON-over-HTTP course vendor API. The vendor is
// expected to expose GET {base}/courses?q={skill}&level={level} returning a
// JSON array of course objects.
type APIProvider struct {
	name    string
	baseURL string
	client  *http.Client
}

// NewAPIProvider creates a provider for a JSON course API.
func NewAPIProvider(cfg Config) *APIProvider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultSearchTimeout
	}
	return &APIProvider{
		name:    cfg.Name,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Name identifies the provider.
func (p *APIProvider) Name() string {
	return p.name
}

// Search queries the vendor API. Vendor outages and non-200 responses degrade
// to an empty result list; only request construction failures are errors.
func (p *APIProvider) Search(ctx context.Context, skill string, filters Filters) ([]types.Course, error) {
	query := url.Values{}
	query.Set("q", skill)
	if filters.Level != "" {
		query.Set("level", filters.Level)
	}
	if filters.MaxResults > 0 {
		query.Set("limit", fmt.Sprintf("%d", filters.MaxResults))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/courses?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build course search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("[coursesearch] %s unavailable for %q: %v", p.name, skill, err)
		return []types.Course{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[coursesearch] %s returned %d for %q", p.name, resp.StatusCode, skill)
		return []types.Course{}, nil
	}

	var results []types.Course
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		log.Printf("[coursesearch] %s returned malformed JSON for %q: %v", p.name, skill, err)
		return []types.Course{}, nil
	}

	for i := range results {
		if results[i].Provider == "" {
			results[i].Provider = p.name
		}
	}
	return results, nil
}
