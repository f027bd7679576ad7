package content

import "fmt"

func filter[T any](items []T, category string, categoryOf func(T) string) []T {
	if category == All {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if categoryOf(it) == category {
			out = append(out, it)
		}
	}
	return out
}

func hasCategory(categories []Category, id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func unknownCategory(id string) error {
	return fmt.Errorf("%w: %q", ErrUnknownCategory, id)
}
