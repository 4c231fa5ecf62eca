package pagination

import "testing"

func TestNormalizeClampsParams(t *testing.T) {
	cases := []struct {
		name     string
		in, want Params
	}{
		{"zero values", Params{}, Params{Page: 1, PerPage: DefaultPerPage}},
		{"negative page", Params{Page: -3, PerPage: 20}, Params{Page: 1, PerPage: 20}},
		{"per_page over cap", Params{Page: 2, PerPage: 500}, Params{Page: 2, PerPage: MaxPerPage}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Normalize()
			if tc.in != tc.want {
				t.Fatalf("got %+v, want %+v", tc.in, tc.want)
			}
		})
	}
}

func TestPageSlices(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	first := Page(items, Params{Page: 1, PerPage: 2})
	if len(first) != 2 || first[0] != 1 {
		t.Fatalf("unexpected first page: %v", first)
	}

	last := Page(items, Params{Page: 3, PerPage: 2})
	if len(last) != 1 || last[0] != 5 {
		t.Fatalf("unexpected last page: %v", last)
	}

	beyond := Page(items, Params{Page: 4, PerPage: 2})
	if len(beyond) != 0 {
		t.Fatalf("a page past the end must be empty, got %v", beyond)
	}
}

func TestLastPage(t *testing.T) {
	if got := LastPage(0, 10); got != 1 {
		t.Fatalf("empty collections still have one page, got %d", got)
	}
	if got := LastPage(5, 2); got != 3 {
		t.Fatalf("expected 3 pages for 5 items of 2, got %d", got)
	}
	if got := LastPage(10, 10); got != 1 {
		t.Fatalf("expected 1 page for an exact fit, got %d", got)
	}
}
