package schemes

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// SchemeType classifies a government scheme and decides which contribution bucket it feeds
type SchemeType string

const (
	TypePension     SchemeType = "pension"
	TypeSavings     SchemeType = "savings"
	TypeTaxSaving   SchemeType = "tax-saving"
	TypeFixedIncome SchemeType = "fixed-income"
)

// Valid reports whether t is a known scheme type
func (t SchemeType) Valid() bool {
	switch t {
	case TypePension, TypeSavings, TypeTaxSaving, TypeFixedIncome:
		return true
	}
	return false
}

// Scheme describes a government-backed investment option
type Scheme struct {
	ID            string     `json:"id" yaml:"id"`
	Name          string     `json:"name" yaml:"name"`
	Type          SchemeType `json:"type" yaml:"type"`
	InterestRate  float64    `json:"interestRate" yaml:"interest_rate"`
	MinInvestment float64    `json:"minInvestment" yaml:"min_investment"`
	MaxInvestment *float64   `json:"maxInvestment,omitempty" yaml:"max_investment,omitempty"`
	// LockInPeriod is in years; zero means locked until retirement.
	LockInPeriod int    `json:"lockInPeriod" yaml:"lock_in_period"`
	TaxBenefit   string `json:"taxBenefit" yaml:"tax_benefit"`
	Eligibility  string `json:"eligibility" yaml:"eligibility"`
	Description  string `json:"description" yaml:"description"`
}

// FDRates maps bank -> tenor ("1year", "2year", ...) -> annual rate in percent
type FDRates map[string]map[string]float64

// Catalog is a read-only collection of schemes and bank FD rates
type Catalog struct {
	schemes []Scheme
	byID    map[string]int
	fdRates FDRates
}

// NewCatalog builds a catalog; scheme ids must be unique and types valid.
func NewCatalog(schemes []Scheme, fdRates FDRates) (*Catalog, error) {
	c := &Catalog{
		schemes: make([]Scheme, 0, len(schemes)),
		byID:    make(map[string]int, len(schemes)),
		fdRates: fdRates,
	}
	for _, s := range schemes {
		if s.ID == "" {
			return nil, fmt.Errorf("scheme %q: id is required", s.Name)
		}
		if !s.Type.Valid() {
			return nil, fmt.Errorf("scheme %s: unknown type %q", s.ID, s.Type)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate scheme id %s", s.ID)
		}
		c.byID[s.ID] = len(c.schemes)
		c.schemes = append(c.schemes, s)
	}
	if c.fdRates == nil {
		c.fdRates = FDRates{}
	}
	return c, nil
}

// All returns every scheme in catalog order
func (c *Catalog) All() []Scheme {
	return append([]Scheme(nil), c.schemes...)
}

// ByID looks up a scheme by its identifier
func (c *Catalog) ByID(id string) (Scheme, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Scheme{}, false
	}
	return c.schemes[i], true
}

// ByType returns the schemes of type t in catalog order
func (c *Catalog) ByType(t SchemeType) []Scheme {
	var out []Scheme
	for _, s := range c.schemes {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}

// FDRates returns a copy of the bank FD rate table
func (c *Catalog) FDRates() FDRates {
	out := make(FDRates, len(c.fdRates))
	for bank, tenors := range c.fdRates {
		cp := make(map[string]float64, len(tenors))
		for k, v := range tenors {
			cp[k] = v
		}
		out[bank] = cp
	}
	return out
}

// Banks returns the banks in the FD rate table, sorted
func (c *Catalog) Banks() []string {
	banks := make([]string, 0, len(c.fdRates))
	for b := range c.fdRates {
		banks = append(banks, b)
	}
	sort.Strings(banks)
	return banks
}

type catalogFile struct {
	Schemes []Scheme `yaml:"schemes"`
	FDRates FDRates  `yaml:"fd_rates"`
}

// LoadCatalog reads a scheme catalog from a YAML file
func LoadCatalog(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return NewCatalog(f.Schemes, f.FDRates)
}

func maxInvestment(v float64) *float64 { return &v }

// DefaultCatalog returns the built-in Indian government schemes
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultSchemes(), defaultFDRates())
	if err != nil {
		panic(err)
	}
	return c
}

func defaultSchemes() []Scheme {
	return []Scheme{
		{
			ID:            "nps",
			Name:          "National Pension System (NPS)",
			Type:          TypePension,
			InterestRate:  10,
			MinInvestment: 500,
			LockInPeriod:  0,
			TaxBenefit:    "Up to ₹2 lakh under 80CCD(1B)",
			Eligibility:   "Indian citizens aged 18-70",
			Description:   "Government-sponsored pension scheme with market-linked returns and tax benefits.",
		},
		{
			ID:            "ppf",
			Name:          "Public Provident Fund (PPF)",
			Type:          TypeTaxSaving,
			InterestRate:  7.1,
			MinInvestment: 500,
			MaxInvestment: maxInvestment(150000),
			LockInPeriod:  15,
			TaxBenefit:    "EEE (Exempt-Exempt-Exempt) under 80C",
			Eligibility:   "Indian residents",
			Description:   "Long-term savings scheme with guaranteed returns and complete tax exemption.",
		},
		{
			ID:            "scss",
			Name:          "Senior Citizens Savings Scheme (SCSS)",
			Type:          TypeFixedIncome,
			InterestRate:  8.2,
			MinInvestment: 1000,
			MaxInvestment: maxInvestment(3000000),
			LockInPeriod:  5,
			TaxBenefit:    "Deduction under 80C",
			Eligibility:   "Indian citizens aged 60+",
			Description:   "Government-backed savings scheme for senior citizens with regular income.",
		},
		{
			ID:            "atal-pension",
			Name:          "Atal Pension Yojana (APY)",
			Type:          TypePension,
			InterestRate:  8,
			MinInvestment: 42,
			MaxInvestment: maxInvestment(1454),
			LockInPeriod:  0,
			TaxBenefit:    "Deduction under 80CCD",
			Eligibility:   "Indian citizens aged 18-40",
			Description:   "Government pension scheme guaranteeing fixed pension after age 60.",
		},
		{
			ID:            "sukanya",
			Name:          "Sukanya Samriddhi Yojana",
			Type:          TypeSavings,
			InterestRate:  8.2,
			MinInvestment: 250,
			MaxInvestment: maxInvestment(150000),
			LockInPeriod:  21,
			TaxBenefit:    "EEE under 80C",
			Eligibility:   "Girl child below 10 years",
			Description:   "Savings scheme for girl child education and marriage.",
		},
		{
			ID:            "post-office-fd",
			Name:          "Post Office Fixed Deposit",
			Type:          TypeFixedIncome,
			InterestRate:  7.5,
			MinInvestment: 1000,
			LockInPeriod:  1,
			TaxBenefit:    "TDS applicable",
			Eligibility:   "Indian residents",
			Description:   "Safe fixed deposit scheme with government backing.",
		},
	}
}

func defaultFDRates() FDRates {
	return FDRates{
		"sbi":   {"1year": 6.5, "2year": 7.0, "3year": 7.0, "5year": 6.5},
		"hdfc":  {"1year": 7.0, "2year": 7.0, "3year": 7.0, "5year": 7.0},
		"icici": {"1year": 6.7, "2year": 7.0, "3year": 7.0, "5year": 7.0},
		"axis":  {"1year": 6.9, "2year": 7.0, "3year": 7.1, "5year": 7.0},
	}
}
