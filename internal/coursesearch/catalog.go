package coursesearch

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonsiu/career-os-sub001/internal/types"
)

// CatalogProvider scrapes a course vendor's HTML catalog search page. Vendors
// without a JSON API publish searchable catalogs at
// {base}/catalog?search={skill}; each result is a ".course-card" element.
type CatalogProvider struct {
	name    string
	baseURL string
	client  *http.Client
}

// NewCatalogProvider creates a provider that scrapes an HTML catalog.
func NewCatalogProvider(cfg Config) *CatalogProvider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultSearchTimeout
	}
	return &CatalogProvider{
		name:    cfg.Name,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Name identifies the provider.
func (p *CatalogProvider) Name() string {
	return p.name
}

// Search fetches and parses the catalog search page for a skill. Outages and
// unparsable pages degrade to an empty result list.
func (p *CatalogProvider) Search(ctx context.Context, skill string, filters Filters) ([]types.Course, error) {
	query := url.Values{}
	query.Set("search", skill)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/catalog?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("[coursesearch] %s catalog unavailable for %q: %v", p.name, skill, err)
		return []types.Course{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[coursesearch] %s catalog returned %d for %q", p.name, resp.StatusCode, skill)
		return []types.Course{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Printf("[coursesearch] %s catalog page unparsable for %q: %v", p.name, skill, err)
		return []types.Course{}, nil
	}

	base, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog base URL %s: %w", p.baseURL, err)
	}

	courses := make([]types.Course, 0)
	doc.Find(".course-card").Each(func(_ int, card *goquery.Selection) {
		if filters.MaxResults > 0 && len(courses) >= filters.MaxResults {
			return
		}

		titleLink := card.Find(".course-title a").First()
		title := strings.TrimSpace(titleLink.Text())
		href, _ := titleLink.Attr("href")
		if title == "" || href == "" {
			return
		}

		linkURL, err := url.Parse(href)
		if err != nil {
			return
		}

		course := types.Course{
			Title:          title,
			Provider:       p.name,
			URL:            base.ResolveReference(linkURL).String(),
			Price:          parsePrice(card.Find(".course-price").Text()),
			Rating:         parseFloat(card.Find(".course-rating").Text()),
			ReviewCount:    parseInt(card.Find(".review-count").Text()),
			EstimatedHours: parseFloat(card.Find(".course-hours").Text()),
			Level:          strings.ToLower(strings.TrimSpace(card.Find(".course-level").Text())),
		}
		if filters.Level != "" && course.Level != "" && course.Level != filters.Level {
			return
		}
		courses = append(courses, course)
	})

	return courses, nil
}

// parsePrice normalizes catalog price text. Anything reading "free" becomes
// the canonical literal used by price scoring.
func parsePrice(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.EqualFold(trimmed, types.PriceFree) {
		return types.PriceFree
	}
	return trimmed
}

func parseFloat(text string) float64 {
	cleaned := strings.TrimFunc(strings.TrimSpace(text), func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

func parseInt(text string) int {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, strings.TrimSpace(text))
	value, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return value
}
