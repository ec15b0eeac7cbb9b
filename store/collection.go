package store

import "strings"

type identified interface {
	comparable
	Identifier() string
}

// The helpers below never modify their input slice, so elements that
// were not touched keep their identity across states.

func appendItem[T any](list []T, item T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, item)
}

func indexByID[T identified](list []T, id string) int {
	var zero T
	for i, item := range list {
		if item != zero && item.Identifier() == id {
			return i
		}
	}
	return -1
}

func containsID[T identified](list []T, id string) bool {
	return indexByID(list, id) >= 0
}

// replaceAt returns a copy of list with index i set to item.
func replaceAt[T any](list []T, i int, item T) []T {
	out := make([]T, len(list))
	copy(out, list)
	out[i] = item
	return out
}

// replaceByID swaps the element whose id matches item's. An unknown id
// leaves list unchanged.
func replaceByID[T identified](list []T, item T) []T {
	i := indexByID(list, item.Identifier())
	if i < 0 {
		return list
	}
	return replaceAt(list, i, item)
}

func removeByID[T identified](list []T, id string) []T {
	i := indexByID(list, id)
	if i < 0 {
		return list
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

func sameLabel(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}
