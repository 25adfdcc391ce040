package pipeline

import (
	"github.com/rachcampitos/taringuita-inventory/internal"
)

type ProductChange struct {
	Before internal.Product
	After  internal.Product
}

type ProductDiff struct {
	Added   []internal.Product
	Removed []internal.Product
	Changed []ProductChange
}

// DiffProducts compares two extraction results by product code. Order follows
// the input slices, so two runs over the same workbook diff deterministically.
func DiffProducts(older, newer []internal.Product) ProductDiff {
	oldByCode := make(map[string]internal.Product, len(older))
	for _, p := range older {
		oldByCode[p.Code] = p
	}
	newByCode := make(map[string]internal.Product, len(newer))
	for _, p := range newer {
		newByCode[p.Code] = p
	}

	var diff ProductDiff
	for _, p := range newer {
		before, ok := oldByCode[p.Code]
		if !ok {
			diff.Added = append(diff.Added, p)
			continue
		}
		if before != p {
			diff.Changed = append(diff.Changed, ProductChange{Before: before, After: p})
		}
	}
	for _, p := range older {
		if _, ok := newByCode[p.Code]; !ok {
			diff.Removed = append(diff.Removed, p)
		}
	}
	return diff
}
