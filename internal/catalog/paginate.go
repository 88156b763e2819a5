package catalog

// Page is one page of a section.
type Page struct {
	Items      []Item `json:"items"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	// ShowPagination is false when everything fits on one page.
	ShowPagination bool `json:"show_pagination"`
}

// Paginate slices items into the requested page. page is clamped to
// [1, TotalPages]; a non-positive perPage falls back to PerPage.
func Paginate(items []Item, page, perPage int) Page {
	if perPage <= 0 {
		perPage = PerPage
	}
	total := (len(items) + perPage - 1) / perPage

	switch {
	case page < 1:
		page = 1
	case total > 0 && page > total:
		page = total
	case total == 0:
		page = 1
	}

	start := (page - 1) * perPage
	end := min(start+perPage, len(items))
	if start > end {
		start = end
	}

	return Page{
		Items:          items[start:end],
		Page:           page,
		TotalPages:     total,
		ShowPagination: total > 1,
	}
}

// PageNumbers returns the button labels 1..TotalPages.
func (p Page) PageNumbers() []int {
	nums := make([]int, p.TotalPages)
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}
