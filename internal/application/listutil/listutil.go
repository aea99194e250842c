package listutil

import (
	"net/url"
	"strconv"
)

// Query-string helpers shared by paginated list views. Parsing is lenient:
// anything missing or out of range falls back to a safe default, so a
// hand-edited URL never errors a page.

// DefaultPerPage is the rows-per-page fallback.
const DefaultPerPage = 25

// PerPageOptions are the accepted per_page values.
var PerPageOptions = []int{10, 25, 50, 100}

// PageParams carries the pagination part of a list query.
type PageParams struct {
	Page    int // 1-indexed
	PerPage int
}

// SortParams carries the sorting part of a list query. Sort is always one of
// the view's allowed columns; Dir is always "asc" or "desc".
type SortParams struct {
	Sort string
	Dir  string
}

// FilterParams carries free-text search plus exact-match filters.
type FilterParams struct {
	Search  string            // from the q parameter
	Filters map[string]string // recognised keys only
}

// ListParams bundles everything a list view reads from its query string.
type ListParams struct {
	PageParams
	SortParams
	FilterParams
}

// ParsePageParams reads page and per_page.
// POST: Page >= 1; PerPage is one of PerPageOptions
func ParsePageParams(q url.Values) PageParams {
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	if !contains(PerPageOptions, perPage) {
		perPage = DefaultPerPage
	}
	return PageParams{Page: page, PerPage: perPage}
}

// ParseSortParams reads sort and dir, falling back to the view's defaults
// when absent or not in the allowed column list.
// PRE: defaultSort is in allowed; defaultDir is "asc" or "desc"
// POST: Sort is in allowed; Dir is "asc" or "desc"
func ParseSortParams(q url.Values, allowed []string, defaultSort, defaultDir string) SortParams {
	sort := q.Get("sort")
	if !containsString(allowed, sort) {
		sort = defaultSort
	}
	dir := q.Get("dir")
	if dir != "asc" && dir != "desc" {
		dir = defaultDir
	}
	return SortParams{Sort: sort, Dir: dir}
}

// ParseFilterParams reads q plus the named filter keys.
// POST: Filters holds only the recognised keys that were present
func ParseFilterParams(q url.Values, filterKeys ...string) FilterParams {
	fp := FilterParams{
		Search:  q.Get("q"),
		Filters: make(map[string]string),
	}
	for _, key := range filterKeys {
		if v := q.Get(key); v != "" {
			fp.Filters[key] = v
		}
	}
	return fp
}

// ParseListParams parses the full set of list-view parameters.
func ParseListParams(q url.Values, allowedSortCols []string, defaultSort, defaultDir string, filterKeys ...string) ListParams {
	return ListParams{
		PageParams:   ParsePageParams(q),
		SortParams:   ParseSortParams(q, allowedSortCols, defaultSort, defaultDir),
		FilterParams: ParseFilterParams(q, filterKeys...),
	}
}

// PageInfo carries pagination metadata for rendering.
type PageInfo struct {
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// NewPageInfo computes pagination metadata, clamping the page into range.
// PRE: total >= 0
// POST: 1 <= Page <= TotalPages; TotalPages >= 1
func NewPageInfo(page, perPage, total int) PageInfo {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return PageInfo{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}

// Offset returns the index of the first row on the current page.
func (p PageInfo) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// StartRow returns the 1-indexed first row number, 0 when the list is empty.
func (p PageInfo) StartRow() int {
	if p.Total == 0 {
		return 0
	}
	return p.Offset() + 1
}

// EndRow returns the 1-indexed last row number on the current page.
func (p PageInfo) EndRow() int {
	end := p.Offset() + p.PerPage
	if end > p.Total {
		end = p.Total
	}
	return end
}

// PageNumbers returns up to five page numbers centered on the current page,
// for rendering pagination controls.
func (p PageInfo) PageNumbers() []int {
	const window = 5
	start := p.Page - window/2
	if start < 1 {
		start = 1
	}
	end := start + window - 1
	if end > p.TotalPages {
		end = p.TotalPages
		start = end - window + 1
		if start < 1 {
			start = 1
		}
	}
	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

// ShowPagination reports whether the list spans more than one page.
func (p PageInfo) ShowPagination() bool {
	return p.Total > p.PerPage
}

func contains(options []int, n int) bool {
	for _, opt := range options {
		if n == opt {
			return true
		}
	}
	return false
}

func containsString(options []string, s string) bool {
	for _, opt := range options {
		if s == opt {
			return true
		}
	}
	return false
}
