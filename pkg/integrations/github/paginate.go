package github

import (
	"context"
	"fmt"
)

// PageFunc fetches one page of a listing. page is 1-based.
type PageFunc[T any] func(ctx context.Context, page, perPage int) ([]T, error)

// Paginate calls fetch for page 1, 2, 3, ... and hands each non-empty page
// to visit. It stops after an empty page or a page shorter than perPage,
// so it never relies on a total-count header.
//
// A failed page aborts the walk and is returned as is. There are no retries.
func Paginate[T any](ctx context.Context, perPage int, fetch PageFunc[T], visit func([]T)) error {
	for page := 1; ; page++ {
		items, err := fetch(ctx, page, perPage)
		if err != nil {
			return fmt.Errorf("page %d: %w", page, err)
		}
		if len(items) == 0 {
			return nil
		}
		visit(items)
		if len(items) < perPage {
			return nil
		}
	}
}
