// Package report contains spending report use cases.
package report

// chartPalette is the fixed color wheel for category breakdown charts. The
// palette is assigned by enumeration order and wraps around when a report has
// more categories than colors.
var chartPalette = []string{
	"#4A90E2",
	"#50E3C2",
	"#F5A623",
	"#BD10E0",
	"#7ED321",
	"#9013FE",
	"#F8E71C",
}

// ColorForIndex returns the palette color for the n-th category.
func ColorForIndex(index int) string {
	return chartPalette[index%len(chartPalette)]
}
