package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/futurefunds/retirement-planner/internal/calculation"
	"github.com/futurefunds/retirement-planner/internal/config"
	"github.com/futurefunds/retirement-planner/internal/output"
	"github.com/futurefunds/retirement-planner/internal/schemes"
)

type calculateOptions struct {
	input       string
	format      string
	output      string
	reportDir   string
	baseYear    int
	catalogFile string
}

func newCalculateCmd(a *app) *cobra.Command {
	var opts calculateOptions
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Project a retirement plan and render the report",
		Example: `  futurefunds calculate --input plan.yaml
  futurefunds calculate --input plan.yaml --format html --output report.html
  futurefunds calculate --input plan.yaml --format all --report-dir reports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalculate(cmd, a, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "plan file (YAML)")
	f.StringVarP(&opts.format, "format", "f", "console", "output format: "+strings.Join(output.AvailableFormatterNames(), ", ")+" or all")
	f.StringVarP(&opts.output, "output", "o", "", "write the report to this file instead of stdout")
	f.StringVar(&opts.reportDir, "report-dir", "", "write a timestamped report file into this directory")
	f.IntVar(&opts.baseYear, "base-year", 0, "calendar year of the first projection row (default: plan base_year, then the current year)")
	f.StringVar(&opts.catalogFile, "catalog", "", "scheme catalog file (YAML) used to resolve selections")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runCalculate(cmd *cobra.Command, a *app, opts calculateOptions) error {
	parser := config.NewInputParser()
	if opts.catalogFile != "" {
		catalog, err := schemes.LoadCatalog(opts.catalogFile)
		if err != nil {
			return err
		}
		parser.Catalog = catalog
	}
	plan, err := parser.LoadFromFile(opts.input)
	if err != nil {
		return err
	}
	input, err := parser.Resolve(plan)
	if err != nil {
		return err
	}

	baseYear := opts.baseYear
	if baseYear == 0 {
		baseYear = plan.BaseYear
	}
	if baseYear == 0 {
		baseYear = nowFunc().Year()
	}

	calc := calculation.NewRetirementCalculator()
	calc.SetLogger(a.logger)
	out, err := calc.Calculate(input, baseYear)
	if err != nil {
		return fmt.Errorf("calculating %s: %w", opts.input, err)
	}
	report := &output.Report{Name: plan.Name, GeneratedAt: nowFunc(), Input: input, Output: out}

	if opts.reportDir != "" || output.NormalizeFormatName(opts.format) == "all" {
		paths, err := output.GenerateReport(report, opts.format, opts.reportDir)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", p)
		}
		return nil
	}

	f := output.GetFormatterByName(opts.format)
	if f == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, opts.format)
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	if opts.output != "" {
		if err := os.WriteFile(opts.output, data, 0644); err != nil {
			return err
		}
		a.logger.Infof("report written to %s", opts.output)
		return nil
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
