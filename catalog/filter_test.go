package catalog_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/networkteam/coursefront/catalog"
)

func TestFilterParams_Values(t *testing.T) {
	minRating := 4.5
	maxPrice := 100.0
	limit := 20

	params := catalog.FilterParams{
		Keyword:        "  kubernetes ",
		Languages:      []string{"English", "", "German"},
		TargetAudience: []string{"Beginners"},
		MinRating:      &minRating,
		MaxPrice:       &maxPrice,
		Limit:          &limit,
		Fields:         []string{"title", "price"},
		Extra:          url.Values{"sort": {"rating"}},
	}

	assert.Equal(t, url.Values{
		"keyword":        {"kubernetes"},
		"language":       {"English", "German"},
		"targetAudience": {"Beginners"},
		"minRating":      {"4.5"},
		"maxPrice":       {"100"},
		"limit":          {"20"},
		"fields":         {"title", "price"},
		"sort":           {"rating"},
	}, params.Values())
	assert.False(t, params.IsEmpty())
}

func TestFilterParams_Empty(t *testing.T) {
	assert.True(t, catalog.FilterParams{}.IsEmpty())
	assert.Equal(t, "", catalog.FilterParams{}.Values().Encode())

	// Blank values do not count as set
	assert.True(t, catalog.FilterParams{Keyword: " ", Categories: []string{""}}.IsEmpty())
}

func TestParseFilterParams(t *testing.T) {
	query := url.Values{
		"keyword":   {"go"},
		"category":  {"Programming", " ", "Cloud"},
		"minPrice":  {"5"},
		"maxPrice":  {"cheap"},
		"page":      {"2"},
		"limit":     {""},
		"sort":      {"price"},
		"minRating": {"3.5"},
	}

	params := catalog.ParseFilterParams(query)

	assert.Equal(t, "go", params.Keyword)
	assert.Equal(t, []string{"Programming", "Cloud"}, params.Categories)
	if assert.NotNil(t, params.MinPrice) {
		assert.Equal(t, 5.0, *params.MinPrice)
	}
	assert.Nil(t, params.MaxPrice)
	if assert.NotNil(t, params.Page) {
		assert.Equal(t, 2, *params.Page)
	}
	assert.Nil(t, params.Limit)
	if assert.NotNil(t, params.MinRating) {
		assert.Equal(t, 3.5, *params.MinRating)
	}
	assert.Equal(t, url.Values{"sort": {"price"}}, params.Extra)
}

func TestParseFilterParams_RoundTrip(t *testing.T) {
	query := url.Values{
		"keyword":  {"go"},
		"language": {"English"},
		"page":     {"1"},
	}

	assert.Equal(t, query, catalog.ParseFilterParams(query).Values())
}
