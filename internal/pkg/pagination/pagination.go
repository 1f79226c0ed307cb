// Package pagination turns raw list parameters into a bounded query
// request and packages results into a page envelope.
package pagination

import (
	"math"
	"strings"

	"github.com/lib/pq"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	// MaxPage keeps the row offset of a full page within int.
	MaxPage = math.MaxInt / MaxLimit

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Request is the list query every list endpoint accepts.
type Request struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
	Status    string
}

// Sortable whitelists the sort keys a list accepts and maps each to its column.
// Keys outside the whitelist never reach the query layer.
type Sortable struct {
	columns     map[string]string
	defaultKey  string
	defaultDesc bool
}

// NewSortable builds a whitelist; defaultKey must be one of columns.
func NewSortable(defaultKey string, defaultDesc bool, columns map[string]string) Sortable {
	return Sortable{columns: columns, defaultKey: defaultKey, defaultDesc: defaultDesc}
}

// Keys returns the accepted sort keys.
func (s Sortable) Keys() []string {
	keys := make([]string, 0, len(s.columns))
	for k := range s.columns {
		keys = append(keys, k)
	}
	return keys
}

// Normalize clamps page to [1, MaxPage] and limit to [1, MaxLimit] (0 means DefaultLimit),
// replaces an unknown sort key with the default one and lower-cases the order.
func (r Request) Normalize(s Sortable) Request {
	out := r

	switch {
	case out.Page < 1:
		out.Page = 1
	case out.Page > MaxPage:
		out.Page = MaxPage
	}

	switch {
	case out.Limit == 0:
		out.Limit = DefaultLimit
	case out.Limit < 1:
		out.Limit = 1
	case out.Limit > MaxLimit:
		out.Limit = MaxLimit
	}

	if _, ok := s.columns[out.SortBy]; !ok {
		out.SortBy = s.defaultKey
		out.SortOrder = ""
	}

	switch strings.ToLower(strings.TrimSpace(out.SortOrder)) {
	case SortAsc:
		out.SortOrder = SortAsc
	case SortDesc:
		out.SortOrder = SortDesc
	default:
		out.SortOrder = SortAsc
		if out.SortBy == s.defaultKey && s.defaultDesc {
			out.SortOrder = SortDesc
		}
	}

	out.Search = strings.TrimSpace(out.Search)
	out.Status = strings.TrimSpace(out.Status)
	return out
}

// Offset is the number of rows skipped for the (normalized) page. It
// saturates at math.MaxInt instead of wrapping.
func (r Request) Offset() int {
	if r.Page < 1 || r.Limit < 1 {
		return 0
	}
	if r.Page-1 > math.MaxInt/r.Limit {
		return math.MaxInt
	}
	return (r.Page - 1) * r.Limit
}

// OrderClause renders a quoted ORDER BY expression for a normalized request.
func (r Request) OrderClause(s Sortable) string {
	column, ok := s.columns[r.SortBy]
	if !ok {
		column = s.columns[s.defaultKey]
	}
	direction := "ASC"
	if r.SortOrder == SortDesc {
		direction = "DESC"
	}
	return pq.QuoteIdentifier(column) + " " + direction
}

// Page is the envelope returned by every list endpoint.
type Page[T any] struct {
	Data            []T   `json:"data"`
	Total           int64 `json:"total"`
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// NewPage packages one page of data for a normalized request.
func NewPage[T any](data []T, total int64, req Request) Page[T] {
	if data == nil {
		data = make([]T, 0)
	}

	totalPages := 0
	if req.Limit > 0 {
		totalPages = int((total + int64(req.Limit) - 1) / int64(req.Limit))
	}

	return Page[T]{
		Data:            data,
		Total:           total,
		Page:            req.Page,
		Limit:           req.Limit,
		TotalPages:      totalPages,
		HasNextPage:     req.Page < totalPages,
		HasPreviousPage: req.Page > 1,
	}
}

// Map converts the items of a page, keeping its counters.
func Map[T, U any](p Page[T], f func(T) U) Page[U] {
	data := make([]U, len(p.Data))
	for i, item := range p.Data {
		data[i] = f(item)
	}
	return Page[U]{
		Data:            data,
		Total:           p.Total,
		Page:            p.Page,
		Limit:           p.Limit,
		TotalPages:      p.TotalPages,
		HasNextPage:     p.HasNextPage,
		HasPreviousPage: p.HasPreviousPage,
	}
}
