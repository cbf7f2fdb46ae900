package dto

import (
	"net/http"
	"roombook/shared/constant"
	"roombook/shared/failure"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// Sortable maps the sort names accepted from clients to qualified columns.
// Only names present here ever reach an ORDER BY clause.
type Sortable map[string]string

type QueryParams struct {
	Page    int    `json:"page"`
	Limit   int    `json:"pageSize"`
	SortBy  string `json:"sortBy"`
	SortDir string `json:"direction"`
}

// Offset returns the number of rows to skip for a zero-based page.
func (q *QueryParams) Offset() int {
	if q.Page <= 0 || q.Limit <= 0 {
		return 0
	}

	return q.Page * q.Limit
}

// FromRequest populates QueryParams from the page, pageSize, sortBy and
// direction query parameters. Missing values fall back to page 0, the default
// page size, defaultSort and ascending order:
//
//	q := dto.QueryParams{}
//	err := q.FromRequest(req, sortable, "bookingDate")
//
// SortBy holds the resolved column, never the raw client value.
func (q *QueryParams) FromRequest(r *http.Request, sortable Sortable, defaultSort string) error {
	query := r.URL.Query()

	q.Page = constant.DefaultValuePage
	q.Limit = constant.DefaultValuePageSz
	q.SortDir = constant.DefaultValueSortDir

	if page := query.Get(constant.RequestParamPage); page != "" {
		pageInt, err := strconv.Atoi(page)
		if err != nil || pageInt < 0 || pageInt > constant.MaxValuePage {
			return failure.InvalidPageParam
		}

		q.Page = pageInt
	}

	if size := query.Get(constant.RequestParamPageSize); size != "" {
		sizeInt, err := strconv.Atoi(size)
		if err != nil || sizeInt <= 0 || sizeInt > constant.MaxValuePageSize {
			return failure.InvalidPageSizeParam
		}

		q.Limit = sizeInt
	}

	sortBy := query.Get(constant.RequestParamSortBy)
	if sortBy == "" {
		sortBy = defaultSort
	}

	column, ok := sortable[sortBy]
	if !ok {
		return failure.InvalidSortParam
	}

	q.SortBy = column

	if direction := query.Get(constant.RequestParamDirection); direction != "" {
		switch strings.ToUpper(direction) {
		case SortDirAsc, SortDirDesc:
			q.SortDir = strings.ToUpper(direction)
		default:
			return failure.InvalidDirectionParam
		}
	}

	return nil
}
