package listutil

import (
	"net/url"
	"reflect"
	"testing"
)

// TestParsePageParams covers defaults, valid values, and rejection of
// unlisted per_page values.
func TestParsePageParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  PageParams
	}{
		{"empty query", "", PageParams{Page: 1, PerPage: DefaultPerPage}},
		{"valid values", "page=3&per_page=50", PageParams{Page: 3, PerPage: 50}},
		{"zero page", "page=0", PageParams{Page: 1, PerPage: DefaultPerPage}},
		{"negative page", "page=-2", PageParams{Page: 1, PerPage: DefaultPerPage}},
		{"unlisted per_page", "per_page=33", PageParams{Page: 1, PerPage: DefaultPerPage}},
		{"non-numeric", "page=abc&per_page=xyz", PageParams{Page: 1, PerPage: DefaultPerPage}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)
			if got := ParsePageParams(q); got != tt.want {
				t.Errorf("ParsePageParams(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}

// TestParseSortParams covers the view-default fallback and column allowlist.
func TestParseSortParams(t *testing.T) {
	allowed := []string{"period", "player", "state"}

	tests := []struct {
		name  string
		query string
		want  SortParams
	}{
		{"empty falls back to defaults", "", SortParams{Sort: "period", Dir: "desc"}},
		{"allowed column", "sort=player&dir=asc", SortParams{Sort: "player", Dir: "asc"}},
		{"unknown column", "sort=amount&dir=asc", SortParams{Sort: "period", Dir: "asc"}},
		{"bad dir", "sort=state&dir=sideways", SortParams{Sort: "state", Dir: "desc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)
			if got := ParseSortParams(q, allowed, "period", "desc"); got != tt.want {
				t.Errorf("ParseSortParams(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}

// TestParseFilterParams verifies only recognised keys are kept.
func TestParseFilterParams(t *testing.T) {
	q, _ := url.ParseQuery("q=gomez&state=validated&role=admin")
	fp := ParseFilterParams(q, "state")

	if fp.Search != "gomez" {
		t.Errorf("Search = %q, want gomez", fp.Search)
	}
	if fp.Filters["state"] != "validated" {
		t.Errorf("Filters[state] = %q, want validated", fp.Filters["state"])
	}
	if _, ok := fp.Filters["role"]; ok {
		t.Error("unrecognised key 'role' was kept")
	}
}

// TestNewPageInfo covers page clamping and totals.
func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name                string
		page, perPage, total int
		wantPage, wantPages  int
	}{
		{"first page", 1, 10, 35, 1, 4},
		{"page past end clamps", 9, 10, 35, 4, 4},
		{"empty list", 1, 10, 0, 1, 1},
		{"exact multiple", 2, 10, 20, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPageInfo(tt.page, tt.perPage, tt.total)
			if info.Page != tt.wantPage || info.TotalPages != tt.wantPages {
				t.Errorf("NewPageInfo(%d, %d, %d) = page %d/%d, want page %d/%d",
					tt.page, tt.perPage, tt.total, info.Page, info.TotalPages, tt.wantPage, tt.wantPages)
			}
		})
	}
}

// TestPageInfo_Rows verifies the row range helpers used by templates.
func TestPageInfo_Rows(t *testing.T) {
	info := NewPageInfo(2, 10, 35)
	if info.Offset() != 10 {
		t.Errorf("Offset() = %d, want 10", info.Offset())
	}
	if info.StartRow() != 11 {
		t.Errorf("StartRow() = %d, want 11", info.StartRow())
	}
	if info.EndRow() != 20 {
		t.Errorf("EndRow() = %d, want 20", info.EndRow())
	}

	empty := NewPageInfo(1, 10, 0)
	if empty.StartRow() != 0 {
		t.Errorf("StartRow() on empty list = %d, want 0", empty.StartRow())
	}
}

// TestPageInfo_PageNumbers verifies the five-page window.
func TestPageInfo_PageNumbers(t *testing.T) {
	tests := []struct {
		name       string
		page, total int
		want       []int
	}{
		{"start of range", 1, 100, []int{1, 2, 3, 4, 5}},
		{"middle of range", 6, 100, []int{4, 5, 6, 7, 8}},
		{"end of range", 10, 100, []int{6, 7, 8, 9, 10}},
		{"fewer pages than window", 1, 25, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPageInfo(tt.page, 10, tt.total)
			if got := info.PageNumbers(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PageNumbers() at page %d = %v, want %v", tt.page, got, tt.want)
			}
		})
	}
}

// TestPageInfo_ShowPagination verifies controls appear only for multi-page lists.
func TestPageInfo_ShowPagination(t *testing.T) {
	if NewPageInfo(1, 10, 10).ShowPagination() {
		t.Error("ShowPagination() = true for a single page")
	}
	if !NewPageInfo(1, 10, 11).ShowPagination() {
		t.Error("ShowPagination() = false for two pages")
	}
}
