package appcatalog

import (
	"slices"
)

// pages shown around the current page
const windowRadius = 3

// TotalPages returns the number of pages needed for total items. There is always at least one page.
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// PageWindow returns the page numbers to offer for navigation: the first page, the pages within
// three of the current page, and the last page. Sorted and without duplicates.
func PageWindow(page int, total int64, pageSize int) []int {
	last := TotalPages(total, pageSize)
	page = min(max(page, 1), last)

	pages := []int{1, last}
	for p := page - windowRadius; p <= page+windowRadius; p++ {
		if p >= 1 && p <= last {
			pages = append(pages, p)
		}
	}
	slices.Sort(pages)
	return slices.Compact(pages)
}
