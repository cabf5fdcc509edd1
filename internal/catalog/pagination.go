package catalog

import "catalogo-plus/internal/domain"

// compactWindowLimit is the largest page count rendered without ellipses.
const compactWindowLimit = 5

// Page is one slice of a result set plus its position.
type Page struct {
	Items       []domain.Product
	CurrentPage int
	TotalPages  int
}

// TotalPages is ceil(count/pageSize), but never less than one so an empty
// result still renders as page 1 of 1.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = domain.PageSize
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate clamps the requested page into range and slices out its items.
func Paginate(items []domain.Product, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = domain.PageSize
	}
	total := TotalPages(len(items), pageSize)
	page = max(1, min(page, total))

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))
	if start > end {
		start = end
	}

	pageItems := make([]domain.Product, end-start)
	copy(pageItems, items[start:end])

	return Page{
		Items:       pageItems,
		CurrentPage: page,
		TotalPages:  total,
	}
}

// BuildPageWindow lays out the page links. Up to five pages are listed in
// full; beyond that the first, last, current and neighbouring pages are kept,
// a one-page gap shows the page itself and longer gaps collapse to an ellipsis.
func BuildPageWindow(current, total int) domain.PageWindow {
	total = max(total, 1)
	current = max(1, min(current, total))

	window := domain.PageWindow{CurrentPage: current, TotalPages: total}

	if total <= compactWindowLimit {
		window.Entries = make([]domain.PageEntry, 0, total)
		for p := 1; p <= total; p++ {
			window.Entries = append(window.Entries, domain.PageEntry{Page: p})
		}
		return window
	}

	anchors := []int{1}
	for _, p := range []int{current - 1, current, current + 1, total} {
		if p > anchors[len(anchors)-1] && p <= total {
			anchors = append(anchors, p)
		}
	}

	window.Entries = []domain.PageEntry{{Page: anchors[0]}}
	for i := 1; i < len(anchors); i++ {
		switch gap := anchors[i] - anchors[i-1]; {
		case gap == 2:
			window.Entries = append(window.Entries, domain.PageEntry{Page: anchors[i] - 1})
		case gap > 2:
			window.Entries = append(window.Entries, domain.PageEntry{Ellipsis: true})
		}
		window.Entries = append(window.Entries, domain.PageEntry{Page: anchors[i]})
	}
	return window
}
