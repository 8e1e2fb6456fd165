package dto

import (
	"net/http"
	"strings"

	"innkeep/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries the ordering of a list request. Listing endpoints
// return the full result set; there is no pagination in this API.
type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request.
// With `defaultRequest` set to true, missing parameters fall back to the
// default ordering (id ascending).
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := queryParams.Get(constant.RequestParamSortDir); strings.ToUpper(sortDir) == SortDirAsc || strings.ToUpper(sortDir) == SortDirDesc {
		q.SortDir = strings.ToUpper(sortDir)
	}

	if defaultRequest {
		if q.SortBy == "" {
			q.SortBy = constant.DefaultValueSortBy
		}

		if q.SortDir == "" {
			q.SortDir = constant.DefaultValueSortDir
		}
	}
}
