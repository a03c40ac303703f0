package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/futurefunds/retirement-planner/internal/calculation"
	"github.com/futurefunds/retirement-planner/internal/output"
	"github.com/futurefunds/retirement-planner/internal/schemes"
)

func newSchemesCmd(a *app) *cobra.Command {
	var (
		schemeType  string
		asJSON      bool
		catalogFile string
	)
	cmd := &cobra.Command{
		Use:   "schemes",
		Short: "List government savings schemes and bank FD rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := loadCatalog(catalogFile)
			if err != nil {
				return err
			}
			list := catalog.All()
			if schemeType != "" {
				t := schemes.SchemeType(schemeType)
				if !t.Valid() {
					return fmt.Errorf("unknown scheme type %q", schemeType)
				}
				list = catalog.ByType(t)
			}
			a.logger.Debugf("listing %d schemes", len(list))
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Schemes []schemes.Scheme `json:"schemes"`
					FDRates schemes.FDRates  `json:"fdRates"`
				}{list, catalog.FDRates()})
			}
			return printSchemes(cmd.OutOrStdout(), list, catalog)
		},
	}
	cmd.Flags().StringVarP(&schemeType, "type", "t", "", "only list schemes of this type (pension, savings, tax-saving, fixed-income)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	cmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "scheme catalog file (YAML)")
	cmd.AddCommand(newMaturityCmd(a, &catalogFile))
	return cmd
}

func loadCatalog(filename string) (*schemes.Catalog, error) {
	if filename == "" {
		return schemes.DefaultCatalog(), nil
	}
	return schemes.LoadCatalog(filename)
}

func printSchemes(w io.Writer, list []schemes.Scheme, catalog *schemes.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tRATE\tMIN\tMAX\tLOCK-IN")
	for _, s := range list {
		maxInv := "-"
		if s.MaxInvestment != nil {
			maxInv = output.FormatCurrency(*s.MaxInvestment)
		}
		lockIn := "until retirement"
		if s.LockInPeriod > 0 {
			lockIn = fmt.Sprintf("%d years", s.LockInPeriod)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Type,
			output.FormatPercentage(s.InterestRate), output.FormatCurrency(s.MinInvestment), maxInv, lockIn)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "BANK\t1 YEAR\t2 YEARS\t3 YEARS\t5 YEARS")
	rates := catalog.FDRates()
	for _, bank := range catalog.Banks() {
		r := rates[bank]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", bank,
			output.FormatPercentage(r["1year"]), output.FormatPercentage(r["2year"]),
			output.FormatPercentage(r["3year"]), output.FormatPercentage(r["5year"]))
	}
	return tw.Flush()
}

type maturityOptions struct {
	principal float64
	rate      float64
	years     float64
	frequency int
	monthly   float64
	months    int
	bank      string
	tenor     string
}

func newMaturityCmd(a *app, catalogFile *string) *cobra.Command {
	var opts maturityOptions
	cmd := &cobra.Command{
		Use:   "maturity",
		Short: "Compute fixed and recurring deposit maturity values",
		Example: `  futurefunds schemes maturity --principal 100000 --rate 7 --years 5
  futurefunds schemes maturity --principal 100000 --bank sbi --tenor 3year --monthly 5000 --months 36`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rate := opts.rate
			if opts.bank != "" {
				catalog, err := loadCatalog(*catalogFile)
				if err != nil {
					return err
				}
				bankRate, ok := catalog.FDRates()[opts.bank][opts.tenor]
				if !ok {
					return fmt.Errorf("no FD rate for bank %q tenor %q", opts.bank, opts.tenor)
				}
				rate = bankRate
			}
			if rate < 0 || opts.principal < 0 || opts.monthly < 0 || opts.years < 0 || opts.months < 0 {
				return fmt.Errorf("amounts, rate and durations cannot be negative")
			}
			a.logger.Debugf("maturity at %.2f%%", rate)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Rate: %s\n", output.FormatPercentage(rate))
			if opts.principal > 0 {
				fd := calculation.FDMaturity(opts.principal, rate, opts.years, opts.frequency)
				fmt.Fprintf(w, "FD: %s for %g years -> %s (interest %s)\n",
					output.FormatCurrency(opts.principal), opts.years, output.FormatCurrency(fd), output.FormatCurrency(fd-opts.principal))
			}
			if opts.monthly > 0 {
				rd := calculation.RDMaturity(opts.monthly, rate, opts.months)
				deposited := calculation.RDDeposited(opts.monthly, opts.months)
				fmt.Fprintf(w, "RD: %s monthly for %d months -> %s (deposited %s)\n",
					output.FormatCurrency(opts.monthly), opts.months, output.FormatCurrency(rd), output.FormatCurrency(deposited))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&opts.principal, "principal", 0, "fixed deposit principal")
	f.Float64Var(&opts.rate, "rate", 7, "annual interest rate in percent")
	f.Float64Var(&opts.years, "years", 1, "fixed deposit tenure in years")
	f.IntVar(&opts.frequency, "frequency", calculation.DefaultCompoundingFrequency, "compounding periods per year")
	f.Float64Var(&opts.monthly, "monthly", 0, "recurring deposit monthly instalment")
	f.IntVar(&opts.months, "months", 12, "recurring deposit tenure in months")
	f.StringVar(&opts.bank, "bank", "", "take the rate from this bank's FD table (sbi, hdfc, icici, axis)")
	f.StringVar(&opts.tenor, "tenor", "1year", "FD table tenor used with --bank")
	return cmd
}
