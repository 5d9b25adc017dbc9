// Package viz renders classifier output for the terminal.
//
// The package builds on lipgloss and asciigraph:
//
//   - [Theme] / [Styles]: color schemes and the styles derived from them
//   - [Menu]: the catalog grouped by growth class
//   - [Results] and [Footer]: the little-o listing and its explanation
//   - [VerdictTable] and [RatioPlot]: per-sample detail for one pair
//
// Output degrades to plain text when the terminal has no color support.
package viz
