package main

import (
	"fmt"

	"github.com/futurefunds/retirement-planner/internal/calculation"
	"github.com/futurefunds/retirement-planner/internal/schemes"
	"github.com/shopspring/decimal"
)

// Prints FD and RD maturity for every bank and tenor in the built-in rate table.
func main() {
	const (
		principal = 100000.0
		monthly   = 5000.0
	)
	catalog := schemes.DefaultCatalog()
	rates := catalog.FDRates()
	tenors := []struct {
		key   string
		years int
	}{{"1year", 1}, {"2year", 2}, {"3year", 3}, {"5year", 5}}

	fmt.Printf("FD maturity of %.0f, quarterly compounding\n", principal)
	for _, bank := range catalog.Banks() {
		row := bank
		for _, tn := range tenors {
			v := calculation.FDMaturity(principal, rates[bank][tn.key], float64(tn.years), calculation.DefaultCompoundingFrequency)
			row += fmt.Sprintf(" %s=%s", tn.key, decimal.NewFromFloat(v).StringFixed(2))
		}
		fmt.Println(row)
	}

	fmt.Printf("\nRD maturity of %.0f monthly\n", monthly)
	for _, bank := range catalog.Banks() {
		row := bank
		for _, tn := range tenors {
			v := calculation.RDMaturity(monthly, rates[bank][tn.key], tn.years*12)
			row += fmt.Sprintf(" %s=%s", tn.key, decimal.NewFromFloat(v).StringFixed(2))
		}
		fmt.Println(row)
	}
}
