package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/futurefunds/retirement-planner/internal/calculation"
	"github.com/futurefunds/retirement-planner/internal/domain"
	"github.com/futurefunds/retirement-planner/internal/schemes"
	"github.com/futurefunds/retirement-planner/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

var (
	// ErrRetirementAgeOrder is returned when the current age is not below the retirement age.
	ErrRetirementAgeOrder = errors.New("retirement age must be greater than current age")
	// ErrLifeExpectancyOrder is returned when the retirement age is not below life expectancy.
	ErrLifeExpectancyOrder = errors.New("life expectancy must be greater than retirement age")
)

// Plan is the on-disk description of a projection: the base input, optional scheme
// selections to merge in, and an optional calendar year for the first projection row.
// A birth date may stand in for the current age.
type Plan struct {
	Name       string                 `yaml:"name,omitempty"`
	BaseYear   int                    `yaml:"base_year,omitempty"`
	BirthDate  string                 `yaml:"birth_date,omitempty"`
	Input      domain.RetirementInput `yaml:"input"`
	Selections []schemes.Selection    `yaml:"selections,omitempty"`
}

// nowFunc is the reference date for birth-date ages when a plan has no base year.
var nowFunc = time.Now

// InputParser handles parsing of plan files
type InputParser struct {
	Catalog *schemes.Catalog
}

// NewInputParser creates a new input parser using the built-in scheme catalog
func NewInputParser() *InputParser {
	return &InputParser{Catalog: schemes.DefaultCatalog()}
}

// LoadFromFile loads a plan from a YAML file and validates it
func (ip *InputParser) LoadFromFile(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ResolveAge(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan validates the base input and checks every selection against the catalog
func (ip *InputParser) ValidatePlan(plan *Plan) error {
	if err := ValidateInput(plan.Input); err != nil {
		return err
	}
	if plan.BaseYear < 0 {
		return fmt.Errorf("base year cannot be negative")
	}
	if _, err := ip.Resolve(plan); err != nil {
		return err
	}
	return nil
}

// Resolve merges the plan's scheme selections into its input
func (ip *InputParser) Resolve(plan *Plan) (domain.RetirementInput, error) {
	catalog := ip.Catalog
	if catalog == nil {
		catalog = schemes.DefaultCatalog()
	}
	return schemes.ApplySelections(plan.Input, plan.Selections, catalog)
}

// ResolveAge fills Input.CurrentAge from BirthDate, measured on 1 January of the base
// year (or today). An explicit current age must agree with the birth date.
func ResolveAge(plan *Plan) error {
	if plan.BirthDate == "" {
		return nil
	}
	birth, err := dateutil.ParseDate(plan.BirthDate)
	if err != nil {
		return err
	}
	asOf := nowFunc()
	if plan.BaseYear > 0 {
		asOf = dateutil.BeginningOfYear(plan.BaseYear)
	}
	age := dateutil.Age(birth, asOf)
	if age < 0 {
		return fmt.Errorf("birth date %s is after %s", plan.BirthDate, asOf.Format(dateutil.DateLayout))
	}
	if plan.Input.CurrentAge != 0 && plan.Input.CurrentAge != age {
		return fmt.Errorf("current_age %d disagrees with birth_date %s (age %d)", plan.Input.CurrentAge, plan.BirthDate, age)
	}
	plan.Input.CurrentAge = age
	return nil
}

// ValidateInput checks the age ordering and the non-negativity of every amount and rate
func ValidateInput(in domain.RetirementInput) error {
	if in.CurrentAge < 0 {
		return fmt.Errorf("current age cannot be negative")
	}
	if in.CurrentAge >= in.RetirementAge {
		return ErrRetirementAgeOrder
	}
	if in.RetirementAge >= in.LifeExpectancy {
		return ErrLifeExpectancyOrder
	}
	return calculation.CheckAmounts(in)
}

// CreateExampleInput creates the sample plan used by the example command
func (ip *InputParser) CreateExampleInput() *Plan {
	return &Plan{
		Name: "Salaried professional, age 30",
		Input: domain.RetirementInput{
			CurrentAge:     30,
			RetirementAge:  60,
			LifeExpectancy: 80,
			CurrentSavings: 500000,
			MonthlySIP:     10000,
			MonthlyFD:      5000,
			MonthlyRD:      3000,
			ExpectedReturn: domain.ExpectedReturn{
				MutualFunds: 12,
				FD:          7,
				RD:          7,
			},
			InflationRate:                 6,
			MonthlyExpenseAfterRetirement: 50000,
		},
	}
}

// SavePlan writes a plan as YAML
func SavePlan(plan *Plan, filename string) error {
	b, err := yaml.Marshal(plan)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
