package internal

import "github.com/rachcampitos/taringuita-inventory/internal/units"

// UnclassifiedFamily is assigned to products whose family cell is blank so
// the seeder never sees an empty category.
const UnclassifiedFamily = "SIN CLASIFICAR"

type Product struct {
	Code             string     `json:"code"`
	Name             string     `json:"name"`
	Family           string     `json:"family"`
	Sheet            string     `json:"sheet"`
	UnitOfMeasure    units.Unit `json:"unitOfMeasure"`
	UnitOfOrder      units.Unit `json:"unitOfOrder"`
	ConversionFactor float64    `json:"conversionFactor"`
}

type Stats struct {
	TotalProducts int            `json:"totalProducts"`
	TotalFamilies int            `json:"totalFamilies"`
	BySheet       map[string]int `json:"bySheet"`
}

// SeedDocument is the exact shape the downstream seed script consumes.
type SeedDocument struct {
	Families []string  `json:"families"`
	Products []Product `json:"products"`
	Stats    Stats     `json:"stats"`
}

type RunRow struct {
	ID            int
	TraceID       string
	SourcePath    string
	OutputPath    string
	TotalProducts int
	TotalFamilies int
	BySheetJSON   string
	CreatedAt     string
}
