package dto

import (
	"lodging/shared/constant"
	"net/http"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

func positiveInt(value string) int {
	number, err := strconv.Atoi(value)
	if err != nil || number < 0 {
		return 0
	}

	return number
}

// FromRequest reads page, limit and sort from the query string. Malformed values are ignored.
// With withDefaults set, a missing page or limit falls back to the first page of
// constant.DefaultValueLimit rows. The limit is always capped at constant.MaxValueLimit.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	query := r.URL.Query()

	if page := positiveInt(query.Get(constant.RequestParamPage)); page > 0 {
		q.Page = page
	}

	if limit := positiveInt(query.Get(constant.RequestParamLimit)); limit > 0 {
		q.Limit = min(limit, constant.MaxValueLimit)
	}

	if sortBy := query.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	switch sortDir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); sortDir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = sortDir
	}

	if withDefaults {
		q.Defaults()
	}
}

// Defaults fills a missing page or limit.
func (q *QueryParams) Defaults() {
	if q.Page <= 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit <= 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// Offset is the number of rows before the current page.
func (q *QueryParams) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}
