// Package sectors holds the static SPDR sector-ETF reference table shown
// next to the animation. This is pure reference data, kept as a fixed
// mapping rather than anything loaded or computed.
package sectors

// Row is one line of the reference table.
type Row struct {
	Symbol string
	Sector string
}

var bySymbol = map[string]string{
	"XLRE": "Real Estate",
	"XLF":  "Financials",
	"XLV":  "Health Care",
	"XLC":  "Communication Services",
	"XLI":  "Industrials",
	"XLY":  "Consumer Discretionary",
	"XLP":  "Consumer Staples",
	"XLB":  "Materials",
	"XLK":  "Information Technology",
	"XLU":  "Utilities",
	"XLE":  "Energy",
}

// DefaultSymbols returns the standard display order of the table.
func DefaultSymbols() []string {
	return []string{
		"XLRE", "XLF", "XLV", "XLC", "XLI", "XLY",
		"XLP", "XLB", "XLK", "XLU", "XLE",
	}
}

// Reference maps symbols onto rows, one per input symbol in input order.
// Unmapped symbols get the sector "Unknown".
func Reference(symbols []string) []Row {
	out := make([]Row, 0, len(symbols))
	for _, s := range symbols {
		sector, ok := bySymbol[s]
		if !ok {
			sector = "Unknown"
		}
		out = append(out, Row{Symbol: s, Sector: sector})
	}
	return out
}
