package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futurefunds/retirement-planner/internal/config"
	"github.com/futurefunds/retirement-planner/internal/output"
	"github.com/futurefunds/retirement-planner/internal/scenario"
	"github.com/futurefunds/retirement-planner/internal/schemes"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeExamplePlan(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	out, _, err := runCLI(t, "example", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Example plan written to "+path)
	return path
}

func TestCalculateCSV(t *testing.T) {
	plan := writeExamplePlan(t)
	out, _, err := runCLI(t, "calculate", "--input", plan, "--format", "csv", "--base-year", "2025")
	require.NoError(t, err)
	assert.Contains(t, out, "Salaried professional, age 30,30,60,80,21490172.36,60095798.75,")
}

func TestCalculateDefaultsToCurrentYear(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time { return time.Date(2031, 2, 3, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { nowFunc = orig })

	plan := writeExamplePlan(t)
	out, _, err := runCLI(t, "calculate", "-i", plan, "-f", "projection-csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 32)
	assert.True(t, strings.HasPrefix(lines[1], "2031,30,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[31], "2061,60,"), lines[31])
}

func TestCalculateVerboseLogsProjection(t *testing.T) {
	plan := writeExamplePlan(t)
	_, stderr, err := runCLI(t, "--verbose", "calculate", "--input", plan, "--format", "json", "--base-year", "2025")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "years_to_retirement=30")

	_, stderr, err = runCLI(t, "calculate", "--input", plan, "--format", "json", "--base-year", "2025")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "level=DEBUG")
}

func TestCalculateToFile(t *testing.T) {
	plan := writeExamplePlan(t)
	dest := filepath.Join(t.TempDir(), "report.html")
	out, _, err := runCLI(t, "calculate", "--input", plan, "--format", "html", "--output", dest, "--base-year", "2025")
	require.NoError(t, err)
	assert.Empty(t, out)
	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "<!DOCTYPE html>"))
}

func TestCalculateAllFormats(t *testing.T) {
	plan := writeExamplePlan(t)
	dir := t.TempDir()
	out, _, err := runCLI(t, "calculate", "--input", plan, "--format", "all", "--report-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Report written to "+dir))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCalculateErrors(t *testing.T) {
	plan := writeExamplePlan(t)

	_, _, err := runCLI(t, "calculate", "--input", plan, "--format", "pdf")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)

	_, _, err = runCLI(t, "calculate")
	assert.ErrorContains(t, err, `required flag(s) "input" not set`)

	_, _, err = runCLI(t, "calculate", "--input", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read file")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("input:\n  current_age: 60\n  retirement_age: 55\n  life_expectancy: 80\n"), 0644))
	_, _, err = runCLI(t, "calculate", "--input", bad)
	assert.ErrorIs(t, err, config.ErrRetirementAgeOrder)
}

func TestCalculateWithSelections(t *testing.T) {
	plan := filepath.Join(t.TempDir(), "plan.yaml")
	p := config.NewInputParser().CreateExampleInput()
	p.BaseYear = 2025
	p.Selections = append(p.Selections, schemes.Selection{SchemeID: "nps", MonthlyAmount: 2000})
	require.NoError(t, config.SavePlan(p, plan))

	out, _, err := runCLI(t, "calculate", "--input", plan, "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "## Government schemes")
	assert.Contains(t, out, "National Pension System (NPS)")
}

func TestSchemesList(t *testing.T) {
	out, _, err := runCLI(t, "schemes")
	require.NoError(t, err)
	assert.Contains(t, out, "Public Provident Fund (PPF)")
	assert.Contains(t, out, "until retirement")
	assert.Contains(t, out, "BANK")
	assert.Contains(t, out, "icici")

	out, _, err = runCLI(t, "schemes", "--type", "pension")
	require.NoError(t, err)
	assert.Contains(t, out, "atal-pension")
	assert.Contains(t, out, "nps")
	assert.NotContains(t, out, "ppf")

	_, _, err = runCLI(t, "schemes", "--type", "crypto")
	assert.ErrorContains(t, err, `unknown scheme type "crypto"`)
}

func TestSchemesJSON(t *testing.T) {
	out, _, err := runCLI(t, "schemes", "--json", "--type", "fixed-income")
	require.NoError(t, err)
	var body struct {
		Schemes []struct {
			ID string `json:"id"`
		} `json:"schemes"`
		FDRates map[string]map[string]float64 `json:"fdRates"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	require.Len(t, body.Schemes, 2)
	assert.Equal(t, "scss", body.Schemes[0].ID)
	assert.Equal(t, "post-office-fd", body.Schemes[1].ID)
	assert.Len(t, body.FDRates, 4)
}

func TestSchemesMaturity(t *testing.T) {
	out, _, err := runCLI(t, "schemes", "maturity", "--principal", "100000", "--rate", "7", "--years", "5", "--monthly", "5000", "--months", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "Rate: 7.00%")
	assert.Contains(t, out, "-> ₹1,41,477.82")
	assert.Contains(t, out, "-> ₹62,671.34")
	assert.Contains(t, out, "(deposited ₹60,000.00)")

	out, _, err = runCLI(t, "schemes", "maturity", "--rate", "8", "--monthly", "1000", "--months", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "RD: ₹1,000.00 monthly for 8 months -> ₹6,263.34 (deposited ₹6,000.00)")

	out, _, err = runCLI(t, "schemes", "maturity", "--principal", "100000", "--bank", "sbi", "--tenor", "1year", "--years", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Rate: 6.50%")
	assert.Contains(t, out, "-> ₹1,21,340.76")
	assert.NotContains(t, out, "RD:")

	_, _, err = runCLI(t, "schemes", "maturity", "--bank", "yes-bank")
	assert.ErrorContains(t, err, `no FD rate for bank "yes-bank"`)

	_, _, err = runCLI(t, "schemes", "maturity", "--principal", "-5")
	assert.Error(t, err)
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	s, closeFn, err := openStore(ctx, config.StoreConfig{Kind: config.StoreMemory})
	require.NoError(t, err)
	assert.IsType(t, &scenario.MemoryStore{}, s)
	assert.NoError(t, closeFn())

	s, closeFn, err = openStore(ctx, config.StoreConfig{Kind: config.StoreFile, Path: filepath.Join(t.TempDir(), "scenarios.json")})
	require.NoError(t, err)
	assert.IsType(t, &scenario.FileStore{}, s)
	assert.NoError(t, closeFn())

	_, _, err = openStore(ctx, config.StoreConfig{Kind: "mongo"})
	assert.ErrorContains(t, err, `unknown store kind "mongo"`)
}
