package services

// Reveal returns the first visible items of list and whether more remain.
func Reveal[T any](list []T, visible int) ([]T, bool) {
	if visible < 0 {
		visible = 0
	}
	n := min(visible, len(list))
	return list[:n:n], visible < len(list)
}

// Advance returns the visible count after one "load more".
func Advance(visible, step, total int) int {
	return min(visible+step, total)
}

// Toggle flips an expandable panel between its initial count and the full list.
// Used by panels with "show all / show less" rather than incremental reveal.
func Toggle(visible, initial, total int) int {
	if visible >= total {
		return min(initial, total)
	}
	return total
}
