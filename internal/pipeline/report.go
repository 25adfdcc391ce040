package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rachcampitos/taringuita-inventory/internal"
)

// BuildDocument assembles the seed document. Stats are recomputed over the
// final product list; every declared sheet appears in bySheet.
func BuildDocument(result Result, sheets []SheetSchema) internal.SeedDocument {
	bySheet := make(map[string]int, len(sheets))
	for _, schema := range sheets {
		bySheet[schema.Name] = 0
	}
	for _, p := range result.Products {
		bySheet[p.Sheet]++
	}

	return internal.SeedDocument{
		Families: result.Families,
		Products: result.Products,
		Stats: internal.Stats{
			TotalProducts: len(result.Products),
			TotalFamilies: len(result.Families),
			BySheet:       bySheet,
		},
	}
}

func WriteDocument(doc internal.SeedDocument, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func PrintSummary(doc internal.SeedDocument, outPath string, sheets []SheetSchema) {
	fmt.Printf("Extracted %d products in %d families\n", doc.Stats.TotalProducts, doc.Stats.TotalFamilies)
	fmt.Printf("Output: %s\n", outPath)

	fmt.Println()
	fmt.Println("By sheet:")
	for _, schema := range sheets {
		fmt.Printf("  %s: %d\n", schema.Name, doc.Stats.BySheet[schema.Name])
	}

	byFamily := make(map[string]int, len(doc.Families))
	for _, p := range doc.Products {
		byFamily[p.Family]++
	}
	fmt.Println()
	fmt.Println("Families:")
	for _, family := range doc.Families {
		fmt.Printf("  %s: %d\n", family, byFamily[family])
	}
}
