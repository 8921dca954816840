package models

import "math"

// PaginationParams paging and sorting of list endpoints
type PaginationParams struct {
	Page   int    `json:"page" query:"page" example:"1"`
	Limit  int    `json:"limit" query:"limit" example:"10"`
	SortBy string `json:"sortBy" query:"sortBy" example:"checkInTime"`
	Order  string `json:"order" query:"order" example:"desc"` // asc/desc
}

// PaginatedResponse paged list payload
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

const maxPageLimit = 200

// DefaultPagination default paging for a collection sorted by sortBy
func DefaultPagination(sortBy string) PaginationParams {
	return PaginationParams{
		Page:   1,
		Limit:  10,
		SortBy: sortBy,
		Order:  "desc",
	}
}

// Normalize clamps page/limit and restricts SortBy to the allowed fields.
func (p *PaginationParams) Normalize(allowedSort ...string) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	if p.Order != "asc" {
		p.Order = "desc"
	}
	for _, f := range allowedSort {
		if p.SortBy == f {
			return
		}
	}
	if len(allowedSort) > 0 {
		p.SortBy = allowedSort[0]
	}
}

// NewPaginatedResponse builds the paged payload
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}

// GetSkip number of documents to skip
func (p *PaginationParams) GetSkip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// GetSortOrder mongo sort direction for SortBy
func (p *PaginationParams) GetSortOrder() map[string]int {
	order := 1 // 1 = asc, -1 = desc
	if p.Order == "desc" {
		order = -1
	}
	return map[string]int{p.SortBy: order}
}
