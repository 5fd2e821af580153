// Package report renders engine snapshots into the fixed output format:
// one "<item>: <quantity>" row per known item for CHECK, and a
// "Profit/Loss:" line carrying either a currency-prefixed figure with
// exactly two fractional digits or the NA sentinel once a run is invalid.
package report

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/grocer/engine"
)

// Sentinel is reported in place of a profit figure once a run is invalid.
const Sentinel = "NA"

// Profit renders the cumulative profit/loss line. Negative figures render
// with the sign between the currency marker and the digits ("$-3.00").
func Profit(p decimal.Decimal, valid bool) string {
	if !valid {
		return "Profit/Loss: " + Sentinel
	}
	return "Profit/Loss: $" + p.StringFixed(2)
}

// Check renders one row per item in the order given by the engine.
func Check(counts []engine.Count) []string {
	rows := make([]string, len(counts))
	for i, c := range counts {
		rows[i] = c.Item + ": " + strconv.FormatInt(c.Quantity, 10)
	}
	return rows
}

// CheckAligned renders CHECK rows with the quantities padded into a single
// column. Item names are measured with display width so wide characters
// align correctly.
func CheckAligned(counts []engine.Count) []string {
	widest := 0
	for _, c := range counts {
		if w := runewidth.StringWidth(c.Item); w > widest {
			widest = w
		}
	}

	rows := make([]string, len(counts))
	for i, c := range counts {
		pad := strings.Repeat(" ", widest-runewidth.StringWidth(c.Item))
		rows[i] = c.Item + pad + ": " + strconv.FormatInt(c.Quantity, 10)
	}
	return rows
}
