package schemes

import (
	"errors"
	"fmt"
	"math"

	"github.com/futurefunds/retirement-planner/internal/domain"
)

var (
	// ErrUnknownScheme is returned when a selection names a scheme missing from the catalog.
	ErrUnknownScheme = errors.New("unknown scheme")
	// ErrAmountOutOfRange is returned when a selection's amount breaks the scheme limits.
	ErrAmountOutOfRange = errors.New("scheme amount out of range")
)

// Bucket is one of the three monthly contribution buckets of a RetirementInput
type Bucket string

const (
	BucketMutualFunds Bucket = "mutualFunds"
	BucketFD          Bucket = "fd"
	BucketRD          Bucket = "rd"
)

// BucketFor maps a scheme type to the contribution bucket it is merged into
func BucketFor(t SchemeType) (Bucket, error) {
	switch t {
	case TypeSavings, TypeTaxSaving:
		return BucketMutualFunds, nil
	case TypeFixedIncome:
		return BucketFD, nil
	case TypePension:
		return BucketRD, nil
	}
	return "", fmt.Errorf("no bucket for scheme type %q", t)
}

// Selection is a monthly amount the user wants to put into a catalog scheme
type Selection struct {
	SchemeID      string  `json:"schemeId" yaml:"scheme_id"`
	MonthlyAmount float64 `json:"monthlyAmount" yaml:"monthly_amount"`
}

// ApplySelections returns a copy of base with every selection added to the bucket its
// scheme type maps to, and a SchemeAllocation recorded per selection. base is not modified.
func ApplySelections(base domain.RetirementInput, selections []Selection, catalog *Catalog) (domain.RetirementInput, error) {
	out := base
	out.Schemes = append([]domain.SchemeAllocation(nil), base.Schemes...)

	for i, sel := range selections {
		scheme, ok := catalog.ByID(sel.SchemeID)
		if !ok {
			return base, fmt.Errorf("selection %d: %w: %q", i, ErrUnknownScheme, sel.SchemeID)
		}
		if err := checkAmount(scheme, sel.MonthlyAmount); err != nil {
			return base, fmt.Errorf("selection %d (%s): %w", i, scheme.ID, err)
		}
		bucket, err := BucketFor(scheme.Type)
		if err != nil {
			return base, fmt.Errorf("selection %d (%s): %w", i, scheme.ID, err)
		}

		switch bucket {
		case BucketMutualFunds:
			out.MonthlySIP += sel.MonthlyAmount
		case BucketFD:
			out.MonthlyFD += sel.MonthlyAmount
		case BucketRD:
			out.MonthlyRD += sel.MonthlyAmount
		}

		out.Schemes = append(out.Schemes, domain.SchemeAllocation{
			ID:     scheme.ID,
			Name:   scheme.Name,
			Type:   string(scheme.Type),
			Amount: sel.MonthlyAmount,
			Rate:   scheme.InterestRate,
		})
	}
	return out, nil
}

func checkAmount(s Scheme, amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return fmt.Errorf("%w: amount must be a non-negative number, got %g", ErrAmountOutOfRange, amount)
	}
	if amount < s.MinInvestment {
		return fmt.Errorf("%w: minimum for %s is %g, got %g", ErrAmountOutOfRange, s.Name, s.MinInvestment, amount)
	}
	if s.MaxInvestment != nil && amount > *s.MaxInvestment {
		return fmt.Errorf("%w: maximum for %s is %g, got %g", ErrAmountOutOfRange, s.Name, *s.MaxInvestment, amount)
	}
	return nil
}
