package dto

import (
	"net/http"
	"strconv"
	"strings"

	"villa/shared/constant"
	"villa/shared/failure"
)

type QueryParams struct {
	Page  int `json:"page"  validate:"omitempty,gte=1"`
	Limit int `json:"limit" validate:"omitempty,gte=1,lte=100"`
}

// FromRequest reads page and limit. A value that is present but not a
// positive integer is rejected rather than silently replaced, and limits above
// MaxValueLimit are capped. With defaultRequest set, absent values fall back
// to the first page of DefaultValueLimit items.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) error {
	query := r.URL.Query()

	page, ok := positiveInt(query.Get(constant.RequestParamPage))
	if !ok {
		return failure.InvalidPageParam
	}

	limit, ok := positiveInt(query.Get(constant.RequestParamLimit))
	if !ok {
		return failure.InvalidLimitParam
	}

	if page > 0 {
		q.Page = page
	}

	if limit > 0 {
		q.Limit = min(limit, constant.MaxValueLimit)
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}

	return nil
}

// Offset is the number of rows to skip for the current page.
func (q QueryParams) Offset() int {
	if q.Page <= 1 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

// positiveInt returns 0 for an absent value.
func positiveInt(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, true
	}

	number, err := strconv.Atoi(value)
	if err != nil || number < 1 {
		return 0, false
	}

	return number, true
}
