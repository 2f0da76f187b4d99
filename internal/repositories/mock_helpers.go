package repositories

import "fmt"

// pageOf applies skip/limit paging to an already sorted slice.
func pageOf[T any](items []T, opts ListOptions) []T {
	if opts.Skip >= len(items) {
		return []T{}
	}
	items = items[opts.Skip:]
	if opts.Limit > 0 && opts.Limit < len(items) {
		items = items[:opts.Limit]
	}
	return items
}

func errDuplicateEmail(email string) error {
	return fmt.Errorf("duplicate key error: email '%s' already exists", email)
}

func errNotFoundForUpdate(kind, id string) error {
	return fmt.Errorf("%s with ID %s not found for update", kind, id)
}
