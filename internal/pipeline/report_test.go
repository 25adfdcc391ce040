package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rachcampitos/taringuita-inventory/internal"
	"github.com/rachcampitos/taringuita-inventory/internal/units"
)

func TestBuildDocumentStats(t *testing.T) {
	result := Result{
		Products: []internal.Product{
			{Code: "A", Name: "Arroz", Family: "ABARROTES", Sheet: "Cocina"},
			{Code: "B", Name: "Fideos", Family: "ABARROTES", Sheet: "Cocina"},
		},
		Families: []string{"ABARROTES"},
	}

	doc := BuildDocument(result, testSheets)
	if doc.Stats.TotalProducts != 2 || doc.Stats.TotalFamilies != 1 {
		t.Fatalf("stats=%+v", doc.Stats)
	}
	if doc.Stats.BySheet["Cocina"] != 2 {
		t.Fatalf("bySheet=%v", doc.Stats.BySheet)
	}
	if count, ok := doc.Stats.BySheet["Bodega"]; !ok || count != 0 {
		t.Fatalf("declared sheets appear even when empty: %v", doc.Stats.BySheet)
	}
}

func TestWriteDocumentDeterministic(t *testing.T) {
	doc := internal.SeedDocument{
		Families: []string{"ABARROTES", "SIN CLASIFICAR"},
		Products: []internal.Product{
			{Code: "A-1", Name: "Cuchillería & Afines", Family: "ABARROTES", Sheet: "Cocina", UnitOfMeasure: units.KG, UnitOfOrder: units.Bidones, ConversionFactor: 5},
		},
		Stats: internal.Stats{TotalProducts: 1, TotalFamilies: 2, BySheet: map[string]int{"Cocina": 1, "Bodega": 0}},
	}

	dir := t.TempDir()
	first := filepath.Join(dir, "data", "one.json")
	second := filepath.Join(dir, "data", "two.json")
	if err := WriteDocument(doc, first); err != nil {
		t.Fatal(err)
	}
	if err := WriteDocument(doc, second); err != nil {
		t.Fatal(err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("outputs differ")
	}
	if !bytes.Contains(a, []byte("Cuchillería & Afines")) {
		t.Fatalf("accented text and ampersand must stay literal:\n%s", a)
	}
	if bytes.Contains(a, []byte(`\u0026`)) {
		t.Fatalf("html escaping must be off:\n%s", a)
	}
}
