package main

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/futurefunds/retirement-planner/internal/calculation"
	"github.com/futurefunds/retirement-planner/internal/config"
	"github.com/shopspring/decimal"
)

// Prints the yearly projection of a plan with whole-rupee components, for checking
// values against a spreadsheet.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: print_projection <plan-file> [base-year]")
		return
	}
	p := config.NewInputParser()
	plan, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	input, err := p.Resolve(plan)
	if err != nil {
		panic(err)
	}
	baseYear := plan.BaseYear
	if len(os.Args) > 2 {
		if baseYear, err = strconv.Atoi(os.Args[2]); err != nil {
			panic(err)
		}
	}
	if baseYear == 0 {
		baseYear = 2025
	}

	res, err := calculation.NewRetirementCalculator().Calculate(input, baseYear)
	if err != nil {
		panic(err)
	}

	whole := func(v float64) string {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Sprint(v)
		}
		return decimal.NewFromFloat(v).StringFixed(0)
	}
	fmt.Println("Index,Year,Age,MutualFunds,FD,RD,Savings,Total,Required")
	for idx, y := range res.YearlyProjection {
		fmt.Printf("%d,%d,%d,%s,%s,%s,%s,%s,%s\n", idx, y.Year, y.Age,
			whole(y.MutualFunds), whole(y.FD), whole(y.RD), whole(y.CurrentSavings), whole(y.Total), whole(res.RequiredCorpus))
	}
	fmt.Printf("Achieved=%s Required=%s Surplus=%s Shortfall=%s\n",
		whole(res.AchievedCorpus), whole(res.RequiredCorpus), whole(res.Surplus()), whole(res.Shortfall))
	// The breakdown and the final projection row should both reproduce the achieved corpus.
	if last, ok := res.FinalYear(); ok {
		fmt.Printf("BreakdownTotal=%s FinalRowTotal=%s\n", whole(res.Breakdown.Total()), whole(last.Total))
	}
}
