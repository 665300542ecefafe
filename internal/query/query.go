package query

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// Filter is one column filter from the UI: a field name plus one or more
// accepted values. A single value becomes an equality clause; multiple values
// become an $or group of equality clauses.
type Filter struct {
	ID     string
	Values []string
}

// Sort is a single-column sort spec.
type Sort struct {
	ID   string
	Desc bool
}

// Pagination is the UI-level page state. PageIndex is zero-based; the content
// API counts pages from 1, so Build translates it.
type Pagination struct {
	PageIndex int
	PageSize  int
}

// Input gathers everything the list controller knows when it asks for a page.
type Input struct {
	Filters      []Filter
	Sort         *Sort
	Pagination   Pagination
	Search       string
	SearchFields []string
	Populate     []string
}

// Params is the request-parameter shape the content API expects. Filters is a
// nested expression over $eq, $or and $like operators; field names are passed
// through verbatim, the server is the authority on validity.
type Params struct {
	Filters  map[string]any
	Page     int
	PageSize int
	Sort     string
	Populate []string
}

// Build translates UI filter/sort/page state into Params. It is a pure
// function: identical inputs always produce identical output, and Encode on
// that output is byte-stable.
func Build(in Input) Params {
	p := Params{
		Page:     in.Pagination.PageIndex + 1,
		PageSize: in.Pagination.PageSize,
		Populate: in.Populate,
	}

	filters := map[string]any{}
	var groups []map[string]any

	for _, f := range in.Filters {
		switch len(f.Values) {
		case 0:
			// Empty filters contribute nothing.
		case 1:
			filters[f.ID] = map[string]any{"$eq": f.Values[0]}
		default:
			groups = append(groups, orEqual(f.ID, f.Values))
		}
	}

	if in.Search != "" && len(in.SearchFields) > 0 {
		groups = append(groups, orLike(in.SearchFields, in.Search))
	}

	// A lone group sits beside the equality filters; several groups must be
	// wrapped in $and so their $or keys cannot collide.
	switch len(groups) {
	case 0:
	case 1:
		filters["$or"] = groups[0]["$or"]
	default:
		and := make([]any, 0, len(groups))
		for _, g := range groups {
			and = append(and, g)
		}
		filters["$and"] = and
	}

	if len(filters) > 0 {
		p.Filters = filters
	}

	if in.Sort != nil {
		dir := "ASC"
		if in.Sort.Desc {
			dir = "DESC"
		}
		p.Sort = in.Sort.ID + ":" + dir
	}

	return p
}

func orEqual(field string, values []string) map[string]any {
	clauses := make([]any, 0, len(values))
	for _, v := range values {
		clauses = append(clauses, map[string]any{field: map[string]any{"$eq": v}})
	}
	return map[string]any{"$or": clauses}
}

func orLike(fields []string, term string) map[string]any {
	clauses := make([]any, 0, len(fields))
	for _, f := range fields {
		clauses = append(clauses, map[string]any{f: map[string]any{"$like": term}})
	}
	return map[string]any{"$or": clauses}
}

// Encode serializes Params into the bracketed query-string form the content
// API parses, e.g. filters[status][$eq]=Approve&pagination[page]=1. Map keys
// are emitted in sorted order so the encoding is deterministic.
func (p Params) Encode() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("pagination[page]", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		v.Set("pagination[pageSize]", strconv.Itoa(p.PageSize))
	}
	if p.Sort != "" {
		v.Set("sort", p.Sort)
	}
	for i, rel := range p.Populate {
		v.Set(fmt.Sprintf("populate[%d]", i), rel)
	}
	encodeNode(v, "filters", p.Filters)
	return v
}

func encodeNode(v url.Values, prefix string, node any) {
	switch n := node.(type) {
	case nil:
	case map[string]any:
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			encodeNode(v, prefix+"["+k+"]", n[k])
		}
	case []any:
		for i, item := range n {
			encodeNode(v, fmt.Sprintf("%s[%d]", prefix, i), item)
		}
	case string:
		v.Set(prefix, n)
	default:
		v.Set(prefix, fmt.Sprint(n))
	}
}
