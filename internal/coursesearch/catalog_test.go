package coursesearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonsiu/career-os-sub001/internal/types"
)

const catalogPage = `<!DOCTYPE html>
<html><body>
<div class="course-card">
  <h3 class="course-title"><a href="/courses/python-basics">Python Basics</a></h3>
  <span class="course-price">Free</span>
  <span class="course-rating">4.5 stars</span>
  <span class="review-count">1,200 reviews</span>
  <span class="course-hours">12 hours</span>
  <span class="course-level">Beginner</span>
</div>
<div class="course-card">
  <h3 class="course-title"><a href="https://other.test/advanced-python">Advanced Python</a></h3>
  <span class="course-price">$49.99</span>
  <span class="course-rating">4.8</span>
  <span class="review-count">300</span>
  <span class="course-hours">40</span>
  <span class="course-level">Advanced</span>
</div>
<div class="course-card">
  <h3 class="course-title"><a href="/untitled"></a></h3>
</div>
</body></html>`

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/catalog", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("search"))
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(catalogPage))
	}))
}

func TestCatalogProvider_Search(t *testing.T) {
	server := newCatalogServer(t)
	defer server.Close()

	provider := NewCatalogProvider(Config{Kind: KindCatalog, Name: "acme", BaseURL: server.URL})

	results, err := provider.Search(context.Background(), "python", Filters{})
	require.NoError(t, err)

	// The card without a title is dropped
	require.Len(t, results, 2)

	first := results[0]
	assert.Equal(t, "Python Basics", first.Title)
	assert.Equal(t, "acme", first.Provider)
	assert.Equal(t, server.URL+"/courses/python-basics", first.URL)
	assert.Equal(t, types.PriceFree, first.Price)
	assert.Equal(t, 4.5, first.Rating)
	assert.Equal(t, 1200, first.ReviewCount)
	assert.Equal(t, 12.0, first.EstimatedHours)
	assert.Equal(t, "beginner", first.Level)

	// Absolute hrefs pass through unchanged
	assert.Equal(t, "https://other.test/advanced-python", results[1].URL)
	assert.Equal(t, "$49.99", results[1].Price)
}

func TestCatalogProvider_LevelFilter(t *testing.T) {
	server := newCatalogServer(t)
	defer server.Close()

	provider := NewCatalogProvider(Config{Name: "acme", BaseURL: server.URL})

	results, err := provider.Search(context.Background(), "python", Filters{Level: "beginner"})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Python Basics", results[0].Title)
}

func TestCatalogProvider_MaxResults(t *testing.T) {
	server := newCatalogServer(t)
	defer server.Close()

	provider := NewCatalogProvider(Config{Name: "acme", BaseURL: server.URL})

	results, err := provider.Search(context.Background(), "python", Filters{MaxResults: 1})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestCatalogProvider_OutageDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	provider := NewCatalogProvider(Config{Name: "acme", BaseURL: server.URL})

	results, err := provider.Search(context.Background(), "python", Filters{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, types.PriceFree, parsePrice("  free "))
	assert.Equal(t, types.PriceFree, parsePrice("FREE"))
	assert.Equal(t, "$19.99", parsePrice(" $19.99 "))
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, 4.5, parseFloat("4.5 stars"))
	assert.Equal(t, 0.0, parseFloat("n/a"))
	assert.Equal(t, 12345, parseInt("12,345 reviews"))
	assert.Equal(t, 0, parseInt(""))
}
