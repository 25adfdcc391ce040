package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/rachcampitos/taringuita-inventory/internal"
	"github.com/rachcampitos/taringuita-inventory/internal/units"
	"github.com/rachcampitos/taringuita-inventory/internal/util"
)

// "NC" marks codes synthesized for rows without one.
const generatedCodePrefix = "NC"

type Result struct {
	Products []internal.Product
	Families []string
}

func ExtractWorkbookFile(path string, sheets []SheetSchema) (Result, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	return ExtractWorkbook(blob, sheets)
}

// ExtractWorkbook walks the declared sheets in order and turns qualifying
// rows into products. A missing sheet aborts the run.
func ExtractWorkbook(blob []byte, sheets []SheetSchema) (Result, error) {
	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	codes := NewCodeRegistry()
	products := make([]internal.Product, 0)
	families := map[string]struct{}{}

	for _, schema := range sheets {
		rows, err := f.GetRows(schema.Name)
		if err != nil {
			return Result{}, fmt.Errorf("sheet %q: %w", schema.Name, err)
		}

		for i := schema.HeaderRow; i < len(rows); i++ {
			row := rows[i]

			name := util.CellAt(row, schema.Cols.Name)
			if name == "" {
				continue
			}

			code := util.CellAt(row, schema.Cols.Code)
			family := util.CellAt(row, schema.Cols.Family)

			factor := 1.0
			if schema.Cols.Factor >= 0 {
				factor = util.ToFloat(util.CellAt(row, schema.Cols.Factor), 1.0)
				if factor == 0 {
					factor = 1.0
				}
			}

			baseUnit := units.ParseBaseUnit(util.CellAt(row, schema.Cols.BaseUnit))
			orderUnit, orderFactor := units.ParseOrderUnit(util.CellAt(row, schema.Cols.OrderUnit))

			// An explicit factor wins unless it sits on the 1.0 default;
			// then the quantity from the order-unit text applies.
			conversion := factor
			if factor == 1.0 {
				conversion = orderFactor
			}

			if code == "" {
				code = codes.Generate(generatedCodePrefix)
			}
			code = codes.Claim(code)

			if family == "" {
				family = internal.UnclassifiedFamily
			}
			families[family] = struct{}{}

			products = append(products, internal.Product{
				Code:             code,
				Name:             name,
				Family:           family,
				Sheet:            schema.Name,
				UnitOfMeasure:    baseUnit,
				UnitOfOrder:      orderUnit,
				ConversionFactor: round4(conversion),
			})
		}
	}

	return Result{Products: products, Families: sortedKeys(families)}, nil
}

func round4(v float64) float64 {
	return decimal.NewFromFloat(v).Round(4).InexactFloat64()
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
