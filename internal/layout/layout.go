// Package layout computes pixel geometry for card sections. Everything here
// is pure arithmetic; renderers decide what to draw at each position.
package layout

import "math"

// Stat grid geometry.
const (
	MaxStatCards  = 4
	StatCardGap   = 20
	StatCardH     = 120
	MaxStatCardW  = 160
	statGridInset = 60
)

// Language chart geometry.
const (
	LanguageColumns  = 3
	LanguageColWidth = 260
	LanguageRowH     = 40
	DefaultBarWidth  = 160
	MinBarWidth      = 8
)

// Cell is one stat card slot, relative to the grid origin.
type Cell struct {
	X      float64
	Width  float64
	Height float64
}

// StatGrid lays out itemCount cards left to right. itemCount is clamped to
// [0, MaxStatCards]; a container narrower than the inset yields zero-width
// cards rather than negative ones.
func StatGrid(containerWidth, itemCount int) []Cell {
	if itemCount <= 0 {
		return nil
	}
	if itemCount > MaxStatCards {
		itemCount = MaxStatCards
	}
	w := math.Min(MaxStatCardW, float64(containerWidth-statGridInset)/MaxStatCards)
	if w < 0 {
		w = 0
	}
	cells := make([]Cell, itemCount)
	for i := range cells {
		cells[i] = Cell{
			X:      float64(i) * (w + StatCardGap),
			Width:  w,
			Height: StatCardH,
		}
	}
	return cells
}

// GridWidth is the total horizontal extent of cells including gaps.
func GridWidth(cells []Cell) float64 {
	if len(cells) == 0 {
		return 0
	}
	last := cells[len(cells)-1]
	return last.X + last.Width
}

// LanguageSlot is one entry of the language chart.
type LanguageSlot struct {
	Col int
	Row int
	X   int
	Y   int
}

// LanguageRows wraps count entries into rows of LanguageColumns.
func LanguageRows(count int) []LanguageSlot {
	if count <= 0 {
		return nil
	}
	slots := make([]LanguageSlot, count)
	for i := range slots {
		row, col := i/LanguageColumns, i%LanguageColumns
		slots[i] = LanguageSlot{
			Col: col,
			Row: row,
			X:   col * LanguageColWidth,
			Y:   row * LanguageRowH,
		}
	}
	return slots
}

// RowCount is the number of chart rows count entries occupy.
func RowCount(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + LanguageColumns - 1) / LanguageColumns
}

// BarWidth scales percentage onto maxBarWidth with a floor of MinBarWidth,
// so a 0% language still shows a sliver.
func BarWidth(percentage, maxBarWidth float64) float64 {
	return math.Max(percentage/100*maxBarWidth, MinBarWidth)
}
