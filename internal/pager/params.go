package pager

import (
	"net/url"
	"strconv"

	"posyandu/internal/models"
)

const (
	PageKey  = "page"
	LimitKey = "limit"
)

// Params is what a fetch callback receives.
type Params struct {
	Page   int
	Limit  int
	Filter Filter
}

// Map merges page and limit with the filter. Filter entries are applied
// last and win on key collisions.
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p.Filter)+2)
	m[PageKey] = strconv.Itoa(p.Page)
	m[LimitKey] = strconv.Itoa(p.Limit)
	for k, v := range p.Filter {
		m[k] = v
	}
	return m
}

func (p Params) Values() url.Values {
	values := url.Values{}
	for k, v := range p.Map() {
		values.Set(k, v)
	}
	return values
}

func (p Params) Pagination() *models.Pagination {
	return models.NewPagination(p.Page, p.Limit)
}
