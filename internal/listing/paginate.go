package listing

// Page is one page of a filtered list.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
	// From and To are the 1-based positions shown as "Showing X-Y of N";
	// both are 0 when the list is empty.
	From int `json:"from"`
	To   int `json:"to"`
}

// Paginate returns page number page of items. The page is clamped to
// [1, TotalPages] and TotalPages is at least 1.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(items)

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	p := Page[T]{
		Items:      make([]T, 0, max(end-start, 0)),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
	}
	if start < end {
		p.Items = append(p.Items, items[start:end]...)
		p.From = start + 1
		p.To = end
	}
	return p
}
