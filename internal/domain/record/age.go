package record

import (
	"strconv"
	"strings"
	"time"
)

// AgeFromBirthDate computes whole years of age from a DD/MM/YYYY birth
// date string. The second return is false when the string is blank,
// malformed, or not a real calendar date (e.g. 31/02/2000); callers
// render those as "N/A".
func AgeFromBirthDate(s string, now time.Time) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return 0, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return 0, false
	}
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return 0, false
	}
	// time.Date normalizes overflow (31/02 becomes 02/03 or 03/03), so a
	// round trip that changes any component means the date never existed.
	birth := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if birth.Year() != year || birth.Month() != time.Month(month) || birth.Day() != day {
		return 0, false
	}

	age := now.Year() - year
	if int(now.Month()) < month || (int(now.Month()) == month && now.Day() < day) {
		age--
	}
	return age, true
}

// AgeDisplay renders an age for the record header, using "N/A" when the
// birth date cannot be parsed.
func AgeDisplay(birthDate *string, now time.Time) string {
	if birthDate == nil {
		return "N/A"
	}
	age, ok := AgeFromBirthDate(*birthDate, now)
	if !ok {
		return "N/A"
	}
	return strconv.Itoa(age)
}
