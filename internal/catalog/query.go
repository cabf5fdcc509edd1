package catalog

import "catalogo-plus/internal/domain"

// Result is what the view layer renders for one catalog query.
type Result struct {
	Items      []domain.Product  `json:"items"`
	TotalCount int               `json:"total_count"`
	PageWindow domain.PageWindow `json:"page_window"`
}

// Query filters, sorts and paginates products for the given criteria.
// It has no side effects and never fails: bad prices, unknown modes and
// out-of-range pages all resolve to documented defaults.
func Query(products []domain.Product, criteria domain.FilterCriteria) Result {
	matched := Filter(products, BuildPredicate(criteria))
	sorted := SortProducts(matched, criteria.SortMode)
	page := Paginate(sorted, criteria.Page, domain.PageSize)

	return Result{
		Items:      page.Items,
		TotalCount: len(sorted),
		PageWindow: BuildPageWindow(page.CurrentPage, page.TotalPages),
	}
}
