package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// BirthYear extracts the year from a YYYY-MM-DD date string. Partial strings
// are accepted as long as they lead with a four-digit year.
func BirthYear(dob string) (int, error) {
	dob = strings.TrimSpace(dob)
	if dob == "" {
		return 0, fmt.Errorf("empty date of birth")
	}
	yearPart := dob
	if idx := strings.Index(dob, "-"); idx >= 0 {
		yearPart = dob[:idx]
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return 0, fmt.Errorf("invalid date of birth %q: %w", dob, err)
	}
	if year < 1000 || year > 9999 {
		return 0, fmt.Errorf("invalid birth year %d in %q", year, dob)
	}
	return year, nil
}

// AgeAtYear returns the age reached during refYear by someone born in
// birthYear.
func AgeAtYear(birthYear, refYear int) int {
	return refYear - birthYear
}

// YearAtAge returns the calendar year in which a person of currentAge at
// refYear reaches targetAge.
func YearAtAge(currentAge, refYear, targetAge int) int {
	return refYear + (targetAge - currentAge)
}

// YearsToAge returns the number of years from currentAge to targetAge,
// clamped at zero for ages already reached.
func YearsToAge(currentAge, targetAge int) int {
	if targetAge <= currentAge {
		return 0
	}
	return targetAge - currentAge
}
