// Package coursesearch provides pluggable course-search providers that look
// up external learning offerings for a skill.
package coursesearch

import (
	"context"
	"fmt"
	"time"

	"github.com/jonsiu/career-os-sub001/internal/types"
)

// Filters narrows a course search. Zero values mean "no filter".
type Filters struct {
	Level      string // beginner|intermediate|advanced
	MaxResults int
}

// Provider searches one course vendor for offerings matching a skill.
//
// Providers degrade to an empty list: no results, an unconfigured backend, or
// a vendor outage all yield ([], nil). Ranking is defined over empty input,
// so "no data" must never surface as an error from a provider.
type Provider interface {
	// Name identifies the provider in recommendations and click events.
	Name() string
	// Search returns candidate courses for a skill.
	Search(ctx context.Context, skill string, filters Filters) ([]types.Course, error)
}

// Provider kinds selectable via configuration.
const (
	KindAPI     = "api"
	KindCatalog = "catalog"
)

// Config describes one configured provider instance.
type Config struct {
	Kind    string `json:"kind"` // api|catalog
	Name    string `json:"name"`
	BaseURL string `json:"base_url"`
	Timeout time.Duration
}

// New constructs a provider from its tagged configuration.
func New(cfg Config) (Provider, error) {
	switch cfg.Kind {
	case KindAPI:
		return NewAPIProvider(cfg), nil
	case KindCatalog:
		return NewCatalogProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown course provider kind: %q", cfg.Kind)
	}
}

// NewAll constructs every configured provider, skipping entries without a
// base URL (unconfigured providers are an expected state, not an error).
func NewAll(configs []Config) ([]Provider, error) {
	providers := make([]Provider, 0, len(configs))
	for _, cfg := range configs {
		if cfg.BaseURL == "" {
			continue
		}
		p, err := New(cfg)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, nil
}
