package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"empty result still has one page", 0, 1, 20, 1, false, false},
		{"exact fit", 40, 1, 20, 2, true, false},
		{"remainder rounds up", 41, 2, 20, 3, true, true},
		{"last page", 41, 3, 20, 3, false, true},
		{"defaults applied on bad input", 10, 0, 0, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if p.TotalPages != tt.totalPages {
				t.Fatalf("total pages = %d, want %d", p.TotalPages, tt.totalPages)
			}
			if p.HasNext != tt.hasNext || p.HasPrev != tt.hasPrev {
				t.Fatalf("has_next=%v has_prev=%v, want %v/%v", p.HasNext, p.HasPrev, tt.hasNext, tt.hasPrev)
			}
		})
	}
}
