package query

// MaxPageButtons is the number of page links shown at once
const MaxPageButtons = 7

// PageWindow returns the page numbers to show around current.
// The window holds at most MaxPageButtons pages, starts at 1 while current is
// near the start, ends at total when current is near the end, and is centred
// on current otherwise.
func PageWindow(current, total int) []int {
	if total < 1 {
		return []int{}
	}

	count := total
	if count > MaxPageButtons {
		count = MaxPageButtons
	}

	half := MaxPageButtons / 2
	var first int
	switch {
	case total <= MaxPageButtons, current <= half+1:
		first = 1
	case current >= total-half:
		first = total - MaxPageButtons + 1
	default:
		first = current - half
	}

	pages := make([]int, count)
	for i := range pages {
		pages[i] = first + i
	}
	return pages
}

// ClampPage restricts page to [1, totalPages]
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Range returns the 1-based first and last positions shown on page, for
// "Showing X to Y of Z results". Both are 0 when there is nothing to show.
func Range(page, pageSize, total int) (from, to int) {
	if total <= 0 || pageSize <= 0 || page < 1 {
		return 0, 0
	}
	from = (page-1)*pageSize + 1
	if from > total {
		return 0, 0
	}
	to = page * pageSize
	if to > total {
		to = total
	}
	return from, to
}
