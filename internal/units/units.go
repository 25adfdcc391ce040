package units

import (
	"regexp"
	"strconv"
	"strings"
)

// Unit is the closed set of measure and packaging units the seeder accepts.
type Unit string

const (
	KG        Unit = "KG"
	LT        Unit = "LT"
	ML        Unit = "ML"
	GR        Unit = "GR"
	UN        Unit = "UN"
	Porciones Unit = "PORCIONES"
	Bandejas  Unit = "BANDEJAS"
	Cajas     Unit = "CAJAS"
	Bidones   Unit = "BIDONES"
	Frascos   Unit = "FRASCOS"
	Paquetes  Unit = "PAQUETES"
	Potes     Unit = "POTES"
	Rollos    Unit = "ROLLOS"
	Sobres    Unit = "SOBRES"
	Mallas    Unit = "MALLAS"
	Bolsas    Unit = "BOLSAS"
	Botellas  Unit = "BOTELLAS"
	Tarros    Unit = "TARROS"
	Sacos     Unit = "SACOS"
)

var directOrderUnits = map[string]Unit{
	"KG": KG, "KILO": KG,
	"L": LT, "LITRO": LT,
	"ML":        ML,
	"G":         GR,
	"UN":        UN,
	"UND":       UN,
	"UNIDAD":    UN,
	"PORCIONES": Porciones,
	"BANDEJA":   Bandejas,
	"CAJA":      Cajas,
	"BIDON":     Bidones,
	"FRASCO":    Frascos,
	"PAQUETE":   Paquetes,
	"PAQUET":    Paquetes,
	"POTE":      Potes,
	"ROLLO":     Rollos,
	"SOBRE":     Sobres,
	"MALLA":     Mallas,
	"REBANADAS": UN,
	"PIT":       UN,
}

// Tried in order, first match wins. Do not reorder.
var orderUnitPatterns = []struct {
	re   *regexp.Regexp
	unit Unit
}{
	{regexp.MustCompile(`^BIDON\s+([\d.,]+)\s*(?:LT|L)?`), Bidones},
	{regexp.MustCompile(`^BOLSA\s+([\d.,]+)\s*KG`), Bolsas},
	{regexp.MustCompile(`^BOTELLA\s+([\d.,]+)\s*(?:LT|L)?`), Botellas},
	{regexp.MustCompile(`^BANDEJA\s+([\d.,]+)\s*(?:UN)?`), Bandejas},
	{regexp.MustCompile(`^PAQUETE\s*X?\s*([\d.,]+)\s*(?:U|UN)?`), Paquetes},
	{regexp.MustCompile(`^FRASCO\s*([\d.,]+)\s*KG`), Frascos},
	{regexp.MustCompile(`^POTE\s+([\d.,]+)\s*KG`), Potes},
	{regexp.MustCompile(`^TARRO\s+([\d.,]+)\s*KG`), Tarros},
	{regexp.MustCompile(`^SACO\s+([\d.,]+)\s*KG`), Sacos},
	{regexp.MustCompile(`^UNIDAD\s+([\d.,]+)\s*KG`), UN},
}

var directBaseUnits = map[string]Unit{
	"kg":        KG,
	"kilo":      KG,
	"l":         LT,
	"litro":     LT,
	"ml":        ML,
	"g":         GR,
	"un":        UN,
	"und":       UN,
	"unidad":    UN,
	"porciones": Porciones,
}

// ParseOrderUnit maps an order-unit description to its canonical unit and
// embedded quantity. Anything unrecognized resolves to (UN, 1).
func ParseOrderUnit(raw string) (Unit, float64) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return UN, 1
	}

	if unit, ok := directOrderUnits[s]; ok {
		return unit, 1
	}

	for _, p := range orderUnitPatterns {
		m := p.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		factor, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err != nil {
			continue
		}
		return p.unit, factor
	}

	return UN, 1
}

// ParseBaseUnit maps the measurement unit cell to its canonical form.
func ParseBaseUnit(raw string) Unit {
	if unit, ok := directBaseUnits[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return unit
	}
	return UN
}
