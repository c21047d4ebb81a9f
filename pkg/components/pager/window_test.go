package pager

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWindow_Examples(t *testing.T) {
	cases := []struct {
		name                     string
		active, last, maxButtons int
		want                     []int
	}{
		{name: "fits", active: 2, last: 4, maxButtons: 5, want: []int{1, 2, 3, 4}},
		{name: "single page", active: 1, last: 1, maxButtons: 5, want: []int{1}},
		{name: "start", active: 1, last: 20, maxButtons: 7, want: []int{1, 2, 3, 4, 5, 6, Ellipsis, 20}},
		{name: "middle", active: 10, last: 20, maxButtons: 7, want: []int{1, Ellipsis, 8, 9, 10, 11, 12, Ellipsis, 20}},
		{name: "end", active: 20, last: 20, maxButtons: 7, want: []int{1, Ellipsis, 15, 16, 17, 18, 19, 20}},
		{name: "active clamped", active: 99, last: 3, maxButtons: 5, want: []int{1, 2, 3}},
		{name: "tiny cap", active: 4, last: 9, maxButtons: 2, want: []int{4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, Window(tc.active, tc.last, tc.maxButtons)); diff != "" {
				t.Fatalf("window mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWindow_Invariants(t *testing.T) {
	for last := 1; last <= 40; last++ {
		for maxButtons := 1; maxButtons <= 12; maxButtons++ {
			for active := 1; active <= last; active++ {
				window := Window(active, last, maxButtons)

				numbered := 0
				for _, page := range window {
					if page != Ellipsis {
						numbered++
					}
				}
				if numbered > maxButtons && numbered > 1 {
					t.Fatalf("active=%d last=%d max=%d: %d numbered entries in %v", active, last, maxButtons, numbered, window)
				}
				if !slices.Contains(window, active) {
					t.Fatalf("active=%d last=%d max=%d: active missing from %v", active, last, maxButtons, window)
				}
				prev := 0
				for _, page := range window {
					if page == Ellipsis {
						continue
					}
					if page <= prev {
						t.Fatalf("active=%d last=%d max=%d: window not ascending %v", active, last, maxButtons, window)
					}
					prev = page
				}
			}
		}
	}
}
