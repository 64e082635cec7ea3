package pagination

import "context"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page carries the opaque cursor a list endpoint returns. An empty
// cursor means there are no further pages.
type Page struct {
	Cursor string `json:"cursor"`
}

func (p *Page) Done() bool {
	return p == nil || p.Cursor == ""
}

func ClampPageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}

	if size > MaxPageSize {
		return MaxPageSize
	}

	return size
}

// FetchFunc loads one page for the given cursor. The first call is made
// with an empty cursor.
type FetchFunc[T any] func(ctx context.Context, cursor string) ([]T, *Page, error)

// Collect walks a cursor-paged endpoint and gathers up to maxItems
// results. maxItems <= 0 means no bound.
func Collect[T any](ctx context.Context, fetch FetchFunc[T], maxItems int) ([]T, error) {
	var (
		items  []T
		cursor string
	)

	for {
		page, next, err := fetch(ctx, cursor)
		if err != nil {
			return items, err
		}

		items = append(items, page...)

		if maxItems > 0 && len(items) >= maxItems {
			return items[:maxItems], nil
		}

		if next.Done() {
			return items, nil
		}

		cursor = next.Cursor
	}
}
