package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAge(t *testing.T) {
	birth := time.Date(1966, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		atDate   time.Time
		expected int
	}{
		{"before birthday", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 59},
		{"on birthday", time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), 60},
		{"after birthday", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Age(birth, tt.atDate))
		})
	}
}

func TestBirthYear(t *testing.T) {
	tests := []struct {
		name     string
		dob      string
		expected int
		wantErr  bool
	}{
		{"full date", "1966-06-15", 1966, false},
		{"year only", "1966", 1966, false},
		{"padded", " 1970-01-01 ", 1970, false},
		{"empty", "", 0, true},
		{"garbage", "not-a-date", 0, true},
		{"short year", "66-06-15", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, err := BirthYear(tt.dob)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, year)
		})
	}
}

func TestAgeArithmetic(t *testing.T) {
	assert.Equal(t, 60, AgeAtYear(1966, 2026))
	assert.Equal(t, 2031, YearAtAge(60, 2026, 65))
	assert.Equal(t, 5, YearsToAge(60, 65))
	assert.Equal(t, 0, YearsToAge(65, 60), "target age already reached clamps to zero")
	assert.Equal(t, 0, YearsToAge(60, 60))
}
