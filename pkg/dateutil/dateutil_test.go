package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAge(t *testing.T) {
	birth := time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name        string
		birthDate   time.Time
		atDate      time.Time
		expectedAge int
	}{
		{"Exact birthday", birth, time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC), 30},
		{"Day before birthday", birth, time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC), 29},
		{"Month before birthday", birth, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), 29},
		{"Start of year", birth, BeginningOfYear(2025), 29},
		{"Leap day birth, non-leap year", time.Date(1964, 2, 29, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), 60},
		{"Leap day birth, leap year", time.Date(1964, 2, 29, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedAge, Age(tt.birthDate, tt.atDate))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1995-04-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("12/04/1995")
	assert.ErrorContains(t, err, "expected YYYY-MM-DD")
}
