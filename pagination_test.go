package extgrid

import "testing"

func Test_PageFor(t *testing.T) {
	tests := []struct {
		name  string
		start int
		limit int
		want  int
	}{
		{"first page", 0, 10, 1},
		{"offset inside third page", 25, 10, 3},
		{"exact page boundary", 20, 10, 3},
		{"offset below limit", 9, 10, 1},
		{"zero limit never divides", 25, 0, 1},
		{"negative limit", 25, -5, 1},
		{"negative start", -10, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PageFor(tt.start, tt.limit); got != tt.want {
				t.Errorf("%s: PageFor(%d, %d)=%d want %d", tt.name, tt.start, tt.limit, got, tt.want)
			}
		})
	}
}

func Test_paging(t *testing.T) {
	tests := []struct {
		name          string
		start         int
		limit         int
		perPage       int
		wantPage      int
		wantSize      int
		wantPaginated bool
	}{
		{"limit paginates", 25, 10, 0, 3, 10, true},
		{"limit overrides per page", 0, 10, 50, 1, 10, true},
		{"per page alone paginates from first page", 0, 0, 20, 1, 20, true},
		{"per page with start and zero limit stays on first page", 40, 0, 20, 1, 20, true},
		{"nothing set is unpaginated", 30, 0, 0, 0, 0, false},
		{"negative values are unpaginated", 0, -1, -1, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size, paginated := paging(tt.start, tt.limit, tt.perPage)
			if page != tt.wantPage || size != tt.wantSize || paginated != tt.wantPaginated {
				t.Errorf("%s: got=(%d,%d,%v) want=(%d,%d,%v)",
					tt.name, page, size, paginated, tt.wantPage, tt.wantSize, tt.wantPaginated)
			}
		})
	}
}

func Test_Query_Offset(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want int
	}{
		{"unpaginated", Query{Page: 3}, 0},
		{"first page", Query{Page: 1, PerPage: 10}, 0},
		{"zero page", Query{Page: 0, PerPage: 10}, 0},
		{"third page", Query{Page: 3, PerPage: 10}, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Offset(); got != tt.want {
				t.Errorf("%s: Offset=%d want %d", tt.name, got, tt.want)
			}
		})
	}
}
