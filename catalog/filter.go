package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// FilterParams are the optional query parameters of a filtered course query.
// Zero values are omitted from the query string.
type FilterParams struct {
	Keyword        string
	Categories     []string
	MinPrice       *float64
	MaxPrice       *float64
	MinRating      *float64
	TargetAudience []string
	Languages      []string
	Page           *int
	Limit          *int
	Fields         []string

	// Extra holds additional parameters that are sent as-is.
	Extra url.Values
}

// Values encodes the parameters for the query string. The result is empty if
// no parameter is set.
func (p FilterParams) Values() url.Values {
	values := url.Values{}

	if keyword := strings.TrimSpace(p.Keyword); keyword != "" {
		values.Set("keyword", keyword)
	}
	addAll(values, "category", p.Categories)
	addFloat(values, "minPrice", p.MinPrice)
	addFloat(values, "maxPrice", p.MaxPrice)
	addFloat(values, "minRating", p.MinRating)
	addAll(values, "targetAudience", p.TargetAudience)
	addAll(values, "language", p.Languages)
	addInt(values, "page", p.Page)
	addInt(values, "limit", p.Limit)
	addAll(values, "fields", p.Fields)

	for key, vs := range p.Extra {
		addAll(values, key, vs)
	}

	return values
}

// IsEmpty reports whether no parameter is set.
func (p FilterParams) IsEmpty() bool {
	return len(p.Values()) == 0
}

// ParseFilterParams reads filter parameters from a query string, e.g. the
// query of an incoming page request. Unknown keys end up in Extra, numbers
// that do not parse are dropped.
func ParseFilterParams(query url.Values) FilterParams {
	var p FilterParams
	for key, vs := range query {
		vs = lo.Compact(lo.Map(vs, func(v string, _ int) string { return strings.TrimSpace(v) }))
		if len(vs) == 0 {
			continue
		}
		switch key {
		case "keyword":
			p.Keyword = vs[0]
		case "category":
			p.Categories = vs
		case "minPrice":
			p.MinPrice = parseFloat(vs[0])
		case "maxPrice":
			p.MaxPrice = parseFloat(vs[0])
		case "minRating":
			p.MinRating = parseFloat(vs[0])
		case "targetAudience":
			p.TargetAudience = vs
		case "language":
			p.Languages = vs
		case "page":
			p.Page = parseInt(vs[0])
		case "limit":
			p.Limit = parseInt(vs[0])
		case "fields":
			p.Fields = vs
		default:
			if p.Extra == nil {
				p.Extra = url.Values{}
			}
			p.Extra[key] = vs
		}
	}
	return p
}

func addAll(values url.Values, key string, vs []string) {
	for _, v := range lo.Compact(vs) {
		values.Add(key, v)
	}
}

func addFloat(values url.Values, key string, f *float64) {
	if f != nil {
		values.Set(key, strconv.FormatFloat(*f, 'f', -1, 64))
	}
}

func addInt(values url.Values, key string, i *int) {
	if i != nil {
		values.Set(key, strconv.Itoa(*i))
	}
}

func parseFloat(s string) *float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseInt(s string) *int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &i
}
