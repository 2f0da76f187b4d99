// Package pagination turns (limit, page, sort) query parameters into store query
// options and wraps result slices in the paginated response envelope.
package pagination

import (
	"fmt"
	"strconv"

	"petadoption/internal/apperrors"
)

const (
	// DefaultLimit is the page size used when the client does not supply one.
	DefaultLimit = 10
	// DefaultSort is the field results are ordered by (descending) when the
	// client does not supply a sort parameter.
	DefaultSort = "createdAt"
)

// Params holds sanitized pagination parameters.
type Params struct {
	Limit int
	Page  int
	Sort  string
}

// Parse builds Params from raw query values. Non-numeric or non-positive limit
// and page values fall back to the defaults, so Skip and totalPages arithmetic
// can never divide by zero. The sort field must be one of allowedSorts; an
// unknown field is a validation error rather than being passed to the store.
func Parse(limit, page, sort string, allowedSorts ...string) (Params, error) {
	p := Params{Limit: DefaultLimit, Page: 1, Sort: DefaultSort}

	if n, err := strconv.Atoi(limit); err == nil && n > 0 {
		p.Limit = n
	}
	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		p.Page = n
	}

	if sort != "" {
		allowed := false
		for _, s := range allowedSorts {
			if sort == s {
				allowed = true
				break
			}
		}
		if !allowed {
			return Params{}, apperrors.Validation(fmt.Sprintf("cannot sort by field '%s'", sort))
		}
		p.Sort = sort
	}

	return p, nil
}

// Skip returns the number of records to skip for the current page.
func (p Params) Skip() int {
	return (p.Page - 1) * p.Limit
}

// Result is the JSON envelope for paginated endpoints.
type Result struct {
	Status      string  `json:"status"`
	Payload     any     `json:"payload"`
	TotalPages  int     `json:"totalPages"`
	PrevPage    *int    `json:"prevPage"`
	NextPage    *int    `json:"nextPage"`
	Page        int     `json:"page"`
	HasPrevPage bool    `json:"hasPrevPage"`
	HasNextPage bool    `json:"hasNextPage"`
	PrevLink    *string `json:"prevLink"`
	NextLink    *string `json:"nextLink"`
}

// Paginate wraps payload in a Result with navigation metadata. totalPages is
// ceil(total/limit); prev/next pages and links are null at the edges. basePath
// is used to build the prev/next links.
func Paginate(payload any, total int64, p Params, basePath string) Result {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))

	r := Result{
		Status:      "success",
		Payload:     payload,
		TotalPages:  totalPages,
		Page:        p.Page,
		HasPrevPage: p.Page > 1,
		HasNextPage: p.Page < totalPages,
	}

	if r.HasPrevPage {
		prev := p.Page - 1
		r.PrevPage = &prev
		link := fmt.Sprintf("%s?page=%d&limit=%d", basePath, prev, p.Limit)
		r.PrevLink = &link
	}
	if r.HasNextPage {
		next := p.Page + 1
		r.NextPage = &next
		link := fmt.Sprintf("%s?page=%d&limit=%d", basePath, next, p.Limit)
		r.NextLink = &link
	}

	return r
}
