package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/rachcampitos/taringuita-inventory/internal"
)

func ExportProductsToXLSX(products []internal.Product, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"code", "name", "family", "sheet",
		"unit_of_measure", "unit_of_order", "conversion_factor",
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, p := range products {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, p.Code)
		set(2, p.Name)
		set(3, p.Family)
		set(4, p.Sheet)
		set(5, string(p.UnitOfMeasure))
		set(6, string(p.UnitOfOrder))
		set(7, p.ConversionFactor)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
