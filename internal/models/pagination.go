// internal/models/pagination.go
package models

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Pagination struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

func NewPagination(page, limit int) *Pagination {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	// Pages whose offset does not fit in an int start over.
	if page > math.MaxInt/limit {
		page = DefaultPage
	}
	return &Pagination{
		Page:  page,
		Limit: limit,
	}
}

func (p *Pagination) GetOffset() int {
	return (p.Page - 1) * p.Limit
}

func (p *Pagination) GetLimit() int {
	return p.Limit
}

// Meta summarises a page of a list for clients.
type Meta struct {
	TotalData   int `json:"totalData"`
	TotalPage   int `json:"totalPage"`
	CurrentPage int `json:"currentPage"`
	Limit       int `json:"limit"`
}

func NewMeta(totalData int, pagination *Pagination) Meta {
	return Meta{
		TotalData:   totalData,
		TotalPage:   TotalPages(totalData, pagination.Limit),
		CurrentPage: pagination.Page,
		Limit:       pagination.Limit,
	}
}

// TotalPages returns ceil(totalData/limit), never less than 1.
func TotalPages(totalData, limit int) int {
	if limit <= 0 || totalData <= 0 {
		return 1
	}
	return (totalData + limit - 1) / limit
}

// Page is one window of a list together with its meta.
type Page[T any] struct {
	Data []T `json:"data"`
	Meta Meta `json:"meta"`
}
