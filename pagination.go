package extgrid

// PageFor converts the offset sent by an ExtJS paging toolbar into a 1-based
// page number: floor(start/limit)+1.
//
// A non-positive start or limit always gives the first page, so a request
// carrying only a per page value never divides by zero.
func PageFor(start, limit int) int {
	if start <= 0 || limit <= 0 {
		return 1
	}

	return start/limit + 1
}

// paging decides whether a page is requested and which one.
//
// A query is paginated when limit > 0 or when perPage > 0 was passed through.
// limit takes precedence over perPage. The returned page is always computed
// from start and limit.
func paging(start, limit, perPage int) (page int, size int, paginated bool) {
	if limit > 0 {
		perPage = limit
	}

	if perPage <= 0 {
		return 0, 0, false
	}

	return PageFor(start, limit), perPage, true
}
