package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rachcampitos/taringuita-inventory/internal/storage"
	"github.com/rachcampitos/taringuita-inventory/internal/units"
)

func TestSmokeWorkbookToSeed(t *testing.T) {
	var fixtures []sheetFixture
	for _, schema := range Sheets {
		rows := [][]any{
			{"MAESTRO DE ARTICULOS"},
			{"CODIGO", "NOMBRE", "FAMILIA"},
		}
		switch schema.Name {
		case "Cocina VITACURA":
			rows = append(rows, []any{"C-100", "Tomate", "VERDURAS", "", "", "", "kg", "", "", "", "MALLA"})
		case "Aseo":
			rows = append(rows, []any{"A-1", "Detergente", "ASEO", "", "", "BIDON 5 LT"})
		}
		fixtures = append(fixtures, sheetFixture{name: schema.Name, rows: rows})
	}

	result, err := ExtractWorkbook(mkWorkbook(fixtures), Sheets)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Products) != 2 {
		t.Fatalf("products=%+v", result.Products)
	}
	tomate := result.Products[0]
	if tomate.Code != "C-100" || tomate.UnitOfMeasure != units.KG || tomate.UnitOfOrder != units.Mallas || tomate.ConversionFactor != 1 {
		t.Fatalf("tomate=%+v", tomate)
	}
	detergente := result.Products[1]
	if detergente.UnitOfMeasure != units.UN || detergente.UnitOfOrder != units.Bidones || detergente.ConversionFactor != 5 {
		t.Fatalf("detergente=%+v", detergente)
	}

	doc := BuildDocument(result, Sheets)
	if len(doc.Stats.BySheet) != len(Sheets) {
		t.Fatalf("bySheet=%v", doc.Stats.BySheet)
	}

	tmp := t.TempDir()
	outJSON := filepath.Join(tmp, "products-data.json")
	if err := WriteDocument(doc, outJSON); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(outJSON); err != nil {
		t.Fatal(err)
	}

	db, err := storage.Open(filepath.Join(tmp, "app.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	runID, err := db.InsertRun("trace-1", "master.xlsx", outJSON, doc)
	if err != nil {
		t.Fatal(err)
	}
	stored, err := db.GetRunProducts(int(runID))
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != len(doc.Products) {
		t.Fatalf("stored=%+v", stored)
	}
	for i := range stored {
		if stored[i] != doc.Products[i] {
			t.Fatalf("stored %d:\n got %+v\nwant %+v", i, stored[i], doc.Products[i])
		}
	}

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].TotalProducts != 2 {
		t.Fatalf("runs=%+v", runs)
	}

	run, err := db.GetRun(int(runID))
	if err != nil {
		t.Fatal(err)
	}
	if run == nil || run.TotalProducts != 2 {
		t.Fatalf("run=%+v", run)
	}

	if err := db.SetMetadata("extract.last_success", time.Now().UTC().Format(time.RFC3339)); err != nil {
		t.Fatal(err)
	}
	last, err := db.GetMetadata("extract.last_success")
	if err != nil {
		t.Fatal(err)
	}
	if last == nil {
		t.Fatal("no extract.last_success stamp")
	}

	outXLSX := filepath.Join(tmp, "review.xlsx")
	if err := ExportProductsToXLSX(stored, outXLSX); err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenFile(outXLSX)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 || rows[0][0] != "code" || rows[1][0] != "C-100" {
		t.Fatalf("rows=%v", rows)
	}
}
