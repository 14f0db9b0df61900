package model

import "sort"

// SortOrder selects the name ordering of a listing
type SortOrder int

const (
	SortAToZ SortOrder = iota
	SortZToA
)

// String returns a short label for the order
func (o SortOrder) String() string {
	if o == SortZToA {
		return "Z-A"
	}
	return "A-Z"
}

// Reverse returns the opposite order
func (o SortOrder) Reverse() SortOrder {
	if o == SortZToA {
		return SortAToZ
	}
	return SortZToA
}

// SortByName sorts entries by name, case-sensitive, then by path
func SortByName(entries []Entry, order SortOrder) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if order == SortZToA {
			a, b = b, a
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Path < b.Path
	})
}
