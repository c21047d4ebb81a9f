package pager

// Ellipsis marks a skipped range inside a page window.
const Ellipsis = 0

// Window returns the page numbers to show for active within [1, last], using
// at most maxButtons numbered entries. Ellipsis entries mark gaps and are not
// counted. The first and last pages are always present once the window has
// room for them.
func Window(active, last, maxButtons int) []int {
	last = max(last, 1)
	active = min(max(active, 1), last)

	if last <= maxButtons {
		out := make([]int, last)
		for i := range out {
			out[i] = i + 1
		}
		return out
	}
	if maxButtons < 3 {
		return []int{active}
	}

	inner := maxButtons - 2
	start := active - inner/2
	start = max(start, 2)
	start = min(start, last-inner)
	end := start + inner - 1

	out := make([]int, 0, maxButtons+2)
	out = append(out, 1)
	if start > 2 {
		out = append(out, Ellipsis)
	}
	for page := start; page <= end; page++ {
		out = append(out, page)
	}
	if end < last-1 {
		out = append(out, Ellipsis)
	}
	return append(out, last)
}
