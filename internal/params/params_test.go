package params

import (
	"net/url"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantPage   int
		wantOffset int
	}{
		{"defaults", "", 15, 1, 0},
		{"explicit values", "limit=10&page=3", 10, 3, 20},
		{"limit capped at 50", "limit=500", 50, 1, 0},
		{"zero limit falls back", "limit=0", 15, 1, 0},
		{"negative limit falls back", "limit=-5", 15, 1, 0},
		{"non-numeric limit ignored", "limit=abc", 15, 1, 0},
		{"zero page falls back", "page=0", 15, 1, 0},
		{"negative page falls back", "page=-2", 15, 1, 0},
		{"whitespace trimmed", "limit=%2020%20&page=2", 20, 2, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}

			p := ParsePagination(q)
			if p.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", p.Limit, tt.wantLimit)
			}
			if p.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", p.Page, tt.wantPage)
			}
			if p.Offset != tt.wantOffset {
				t.Errorf("Offset = %d, want %d", p.Offset, tt.wantOffset)
			}
		})
	}
}

func TestComputeMeta(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		total          int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"empty result", 1, 15, 0, 0, false, false},
		{"single page", 1, 15, 10, 1, false, false},
		{"first of many", 1, 10, 25, 3, true, false},
		{"middle page", 2, 10, 25, 3, true, true},
		{"last page", 3, 10, 25, 3, false, true},
		{"exact fit", 2, 10, 20, 2, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{Page: tt.page, Limit: tt.limit}
			p.ComputeMeta(tt.total)

			if p.Total != tt.total {
				t.Errorf("Total = %d, want %d", p.Total, tt.total)
			}
			if p.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotalPages)
			}
			if p.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.wantHasNext)
			}
			if p.HasPrev != tt.wantHasPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tt.wantHasPrev)
			}
		})
	}
}
