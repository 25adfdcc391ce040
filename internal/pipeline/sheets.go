package pipeline

// ColumnMap locates each semantic field on a worksheet. Indexes are 0-based;
// -1 marks a column the sheet does not carry.
type ColumnMap struct {
	Code      int
	Name      int
	Family    int
	Factor    int
	BaseUnit  int
	OrderUnit int
	Wastage   int
}

// SheetSchema is the declared layout of one worksheet: its name, the 1-based
// header row (data starts on the next row), and where each field lives.
// Layouts are fixed by the workbook authors and never inferred from data.
type SheetSchema struct {
	Name      string
	HeaderRow int
	Cols      ColumnMap
}

// Sheets declares the eight worksheets of the master inventory workbook.
// The kitchen and produce sheets carry a dedicated adjustment-factor column
// (FACTOR DE AJUSTE / MEDIDA REFERENCIA) plus separate measure and order
// unit columns; the supply sheets track a single control-unit column used
// for both. The wastage column (PRODUCTO MERMADO PERIODO) is declared for
// completeness; the seed document has no field for it.
var Sheets = []SheetSchema{
	{
		Name:      "Cocina VITACURA",
		HeaderRow: 2,
		Cols:      ColumnMap{Code: 0, Name: 1, Family: 2, Factor: 3, BaseUnit: 6, OrderUnit: 10, Wastage: 11},
	},
	{
		Name:      "Procesado",
		HeaderRow: 2,
		Cols:      ColumnMap{Code: 0, Name: 1, Family: 2, Factor: 5, BaseUnit: 4, OrderUnit: 6, Wastage: 7},
	},
	{
		Name:      "Personal",
		HeaderRow: 2,
		Cols:      ColumnMap{Code: 0, Name: 1, Family: 2, Factor: -1, BaseUnit: 5, OrderUnit: 5, Wastage: -1},
	},
	{
		// sic: the sheet is misspelled in the workbook itself.
		Name:      "Futas y Verduras",
		HeaderRow: 2,
		Cols:      ColumnMap{Code: 0, Name: 1, Family: 2, Factor: 3, BaseUnit: 6, OrderUnit: 10, Wastage: 11},
	},
	{
		Name:      "Aseo",
		HeaderRow: 2,
		Cols:      ColumnMap{Code: 0, Name: 1, Family: 2, Factor: -1, BaseUnit: 5, OrderUnit: 5, Wastage: -1},
	},
	{
		Name:      "Otros Materiales",
		HeaderRow: 2,
		Cols:      ColumnMap{Code: 0, Name: 1, Family: 2, Factor: -1, BaseUnit: 5, OrderUnit: 5, Wastage: -1},
	},
	{
		Name:      "Cuchillería y Cristalería",
		HeaderRow: 2,
		Cols:      ColumnMap{Code: 0, Name: 1, Family: 2, Factor: -1, BaseUnit: 5, OrderUnit: 5, Wastage: -1},
	},
	{
		Name:      "Articulos de Oficina",
		HeaderRow: 2,
		Cols:      ColumnMap{Code: 0, Name: 1, Family: 2, Factor: -1, BaseUnit: 5, OrderUnit: 5, Wastage: -1},
	},
}
