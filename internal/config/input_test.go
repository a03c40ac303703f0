package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/futurefunds/retirement-planner/internal/calculation"
	"github.com/futurefunds/retirement-planner/internal/schemes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
	assert.NotNil(t, parser.Catalog)
}

func TestLoadFromFile_Success(t *testing.T) {
	content := "name: \"Test plan\"\n" +
		"base_year: 2025\n" +
		"input:\n" +
		"  current_age: 35\n" +
		"  retirement_age: 58\n" +
		"  life_expectancy: 85\n" +
		"  current_savings: 200000\n" +
		"  monthly_sip: 15000\n" +
		"  monthly_fd: 2000\n" +
		"  monthly_rd: 1000\n" +
		"  expected_return:\n" +
		"    mutual_funds: 11\n" +
		"    fd: 6.5\n" +
		"    rd: 6.8\n" +
		"  inflation_rate: 5.5\n" +
		"  monthly_expense_after_retirement: 60000\n" +
		"selections:\n" +
		"  - scheme_id: ppf\n" +
		"    monthly_amount: 5000\n" +
		"  - scheme_id: nps\n" +
		"    monthly_amount: 2500\n"

	parser := NewInputParser()
	plan, err := parser.LoadFromFile(writeTemp(t, content))
	require.NoError(t, err)

	assert.Equal(t, "Test plan", plan.Name)
	assert.Equal(t, 2025, plan.BaseYear)
	assert.Equal(t, 35, plan.Input.CurrentAge)
	assert.Equal(t, 6.5, plan.Input.ExpectedReturn.FD)
	assert.Equal(t, 60000.0, plan.Input.MonthlyExpenseAfterRetirement)
	require.Len(t, plan.Selections, 2)
	assert.Equal(t, schemes.Selection{SchemeID: "ppf", MonthlyAmount: 5000}, plan.Selections[0])

	resolved, err := parser.Resolve(plan)
	require.NoError(t, err)
	assert.Equal(t, 20000.0, resolved.MonthlySIP)
	assert.Equal(t, 3500.0, resolved.MonthlyRD)
	assert.Len(t, resolved.Schemes, 2)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	plan, err := NewInputParser().LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, plan)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	content := "input:\n\tcurrent_age: \"thirty\"\n"

	plan, err := NewInputParser().LoadFromFile(writeTemp(t, content))
	assert.Error(t, err)
	assert.Nil(t, plan)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidPlan(t *testing.T) {
	content := "input:\n" +
		"  current_age: 60\n" +
		"  retirement_age: 60\n" +
		"  life_expectancy: 80\n"

	plan, err := NewInputParser().LoadFromFile(writeTemp(t, content))
	assert.Nil(t, plan)
	require.ErrorIs(t, err, ErrRetirementAgeOrder)
	assert.Contains(t, err.Error(), "plan validation failed")
}

func TestValidateInput(t *testing.T) {
	valid := NewInputParser().CreateExampleInput().Input
	require.NoError(t, ValidateInput(valid))

	in := valid
	in.RetirementAge = in.CurrentAge
	assert.ErrorIs(t, ValidateInput(in), ErrRetirementAgeOrder)
	assert.EqualError(t, ValidateInput(in), "retirement age must be greater than current age")

	in = valid
	in.RetirementAge = in.CurrentAge - 1
	assert.ErrorIs(t, ValidateInput(in), ErrRetirementAgeOrder)

	in = valid
	in.LifeExpectancy = in.RetirementAge
	assert.ErrorIs(t, ValidateInput(in), ErrLifeExpectancyOrder)
	assert.EqualError(t, ValidateInput(in), "life expectancy must be greater than retirement age")

	in = valid
	in.CurrentAge = -1
	assert.ErrorContains(t, ValidateInput(in), "current age cannot be negative")

	in = valid
	in.MonthlyRD = -10
	assert.ErrorIs(t, ValidateInput(in), calculation.ErrInvalidInput)

	in = valid
	in.CurrentAge, in.RetirementAge, in.LifeExpectancy = 59, 60, 61
	assert.NoError(t, ValidateInput(in))
}

func TestValidatePlan(t *testing.T) {
	parser := NewInputParser()

	plan := parser.CreateExampleInput()
	assert.NoError(t, parser.ValidatePlan(plan))

	plan.BaseYear = -1
	assert.ErrorContains(t, parser.ValidatePlan(plan), "base year cannot be negative")

	plan = parser.CreateExampleInput()
	plan.Selections = []schemes.Selection{{SchemeID: "unknown", MonthlyAmount: 100}}
	assert.ErrorIs(t, parser.ValidatePlan(plan), schemes.ErrUnknownScheme)

	plan.Selections = []schemes.Selection{{SchemeID: "atal-pension", MonthlyAmount: 10}}
	assert.ErrorIs(t, parser.ValidatePlan(plan), schemes.ErrAmountOutOfRange)
}

func TestResolve_NilCatalogUsesDefault(t *testing.T) {
	parser := &InputParser{}
	plan := parser.CreateExampleInput()
	plan.Selections = []schemes.Selection{{SchemeID: "scss", MonthlyAmount: 1000}}

	resolved, err := parser.Resolve(plan)
	require.NoError(t, err)
	assert.Equal(t, 6000.0, resolved.MonthlyFD)
}

func TestCreateExampleInput(t *testing.T) {
	plan := NewInputParser().CreateExampleInput()

	assert.Equal(t, 30, plan.Input.CurrentAge)
	assert.Equal(t, 60, plan.Input.RetirementAge)
	assert.Equal(t, 80, plan.Input.LifeExpectancy)
	assert.Equal(t, 500000.0, plan.Input.CurrentSavings)
	assert.Equal(t, 12.0, plan.Input.ExpectedReturn.MutualFunds)
	assert.Equal(t, 50000.0, plan.Input.MonthlyExpenseAfterRetirement)
}

func TestSavePlanRoundTrip(t *testing.T) {
	parser := NewInputParser()
	plan := parser.CreateExampleInput()
	plan.BaseYear = 2026
	plan.Selections = []schemes.Selection{{SchemeID: "ppf", MonthlyAmount: 1000}}

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, SavePlan(plan, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, plan, loaded)
}

func TestLoadFromFile_BirthDate(t *testing.T) {
	content := "base_year: 2025\n" +
		"birth_date: \"1995-04-12\"\n" +
		"input:\n" +
		"  retirement_age: 60\n" +
		"  life_expectancy: 85\n" +
		"  monthly_sip: 5000\n" +
		"  expected_return:\n" +
		"    mutual_funds: 12\n"

	plan, err := NewInputParser().LoadFromFile(writeTemp(t, content))
	require.NoError(t, err)
	assert.Equal(t, 29, plan.Input.CurrentAge, "age on 1 January of the base year")
}

func TestResolveAge(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time { return time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { nowFunc = orig })

	plan := &Plan{BirthDate: "1995-04-12"}
	require.NoError(t, ResolveAge(plan))
	assert.Equal(t, 35, plan.Input.CurrentAge)

	plan = &Plan{BaseYear: 2025, BirthDate: "1995-04-12"}
	plan.Input.CurrentAge = 29
	assert.NoError(t, ResolveAge(plan))

	plan.Input.CurrentAge = 31
	assert.ErrorContains(t, ResolveAge(plan), "disagrees with birth_date")

	plan = &Plan{BaseYear: 2025, BirthDate: "2026-01-01"}
	assert.ErrorContains(t, ResolveAge(plan), "is after 2025-01-01")

	plan = &Plan{BirthDate: "12-04-1995"}
	assert.ErrorContains(t, ResolveAge(plan), "expected YYYY-MM-DD")

	plan = &Plan{}
	plan.Input.CurrentAge = 40
	require.NoError(t, ResolveAge(plan))
	assert.Equal(t, 40, plan.Input.CurrentAge)
}
