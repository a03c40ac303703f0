package schemes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	all := c.All()
	require.Len(t, all, 6)
	assert.Equal(t, "nps", all[0].ID)
	assert.Equal(t, "post-office-fd", all[5].ID)

	ppf, ok := c.ByID("ppf")
	require.True(t, ok)
	assert.Equal(t, TypeTaxSaving, ppf.Type)
	assert.Equal(t, 7.1, ppf.InterestRate)
	require.NotNil(t, ppf.MaxInvestment)
	assert.Equal(t, 150000.0, *ppf.MaxInvestment)

	nps, ok := c.ByID("nps")
	require.True(t, ok)
	assert.Nil(t, nps.MaxInvestment)

	_, ok = c.ByID("nsc")
	assert.False(t, ok)
}

func TestCatalogByType(t *testing.T) {
	c := DefaultCatalog()

	ids := func(list []Scheme) []string {
		var out []string
		for _, s := range list {
			out = append(out, s.ID)
		}
		return out
	}

	assert.Equal(t, []string{"nps", "atal-pension"}, ids(c.ByType(TypePension)))
	assert.Equal(t, []string{"sukanya"}, ids(c.ByType(TypeSavings)))
	assert.Equal(t, []string{"ppf"}, ids(c.ByType(TypeTaxSaving)))
	assert.Equal(t, []string{"scss", "post-office-fd"}, ids(c.ByType(TypeFixedIncome)))
	assert.Empty(t, c.ByType("crypto"))
}

func TestCatalogFDRates(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, []string{"axis", "hdfc", "icici", "sbi"}, c.Banks())

	rates := c.FDRates()
	assert.Equal(t, 7.1, rates["axis"]["3year"])
	assert.Equal(t, 6.5, rates["sbi"]["1year"])

	// The returned table is a copy.
	rates["sbi"]["1year"] = 99
	assert.Equal(t, 6.5, c.FDRates()["sbi"]["1year"])
}

func TestNewCatalogValidation(t *testing.T) {
	_, err := NewCatalog([]Scheme{{Name: "no id", Type: TypePension}}, nil)
	assert.ErrorContains(t, err, "id is required")

	_, err = NewCatalog([]Scheme{{ID: "x", Type: "lottery"}}, nil)
	assert.ErrorContains(t, err, "unknown type")

	_, err = NewCatalog([]Scheme{{ID: "x", Type: TypePension}, {ID: "x", Type: TypeSavings}}, nil)
	assert.ErrorContains(t, err, "duplicate scheme id")

	c, err := NewCatalog(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, c.All())
	assert.Empty(t, c.FDRates())
}

func TestLoadCatalog(t *testing.T) {
	content := "schemes:\n" +
		"  - id: nsc\n" +
		"    name: National Savings Certificate\n" +
		"    type: tax-saving\n" +
		"    interest_rate: 7.7\n" +
		"    min_investment: 1000\n" +
		"    lock_in_period: 5\n" +
		"fd_rates:\n" +
		"  sbi:\n" +
		"    1year: 6.8\n"

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)

	nsc, ok := c.ByID("nsc")
	require.True(t, ok)
	assert.Equal(t, TypeTaxSaving, nsc.Type)
	assert.Equal(t, 7.7, nsc.InterestRate)
	assert.Equal(t, 5, nsc.LockInPeriod)
	assert.Equal(t, 6.8, c.FDRates()["sbi"]["1year"])
}

func TestLoadCatalog_Errors(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schemes: [\n"), 0o644))
	_, err = LoadCatalog(path)
	assert.ErrorContains(t, err, "failed to parse YAML")
}
