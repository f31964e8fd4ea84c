package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	yearsRe   = regexp.MustCompile(`(\d+)\+*\s*(?:years|yrs)`)
	leadingRe = regexp.MustCompile(`(\d+)\s*[-–—]?\s*(\d+)?`)
)

// MaxYears scans snippet text for "<n> years" / "<n>+ yrs" mentions and
// returns the largest figure found, or 0 when none is mentioned.
func MaxYears(text string) int {
	matches := yearsRe.FindAllStringSubmatch(strings.ToLower(text), -1)
	max := 0
	for _, m := range matches {
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return max
}

// LeadingYears parses a board's experience column ("3-8 Yrs", "Fresher").
// It returns the first figure of the range, 0 for freshers, and ok=false
// when the text carries no number at all.
//
// This is intentionally different from MaxYears: one board states a
// required range and the leading figure is the requirement, the other
// buries years in prose where only the maximum mention is meaningful.
func LeadingYears(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	t := strings.ToLower(text)
	if strings.Contains(t, "fresher") {
		return 0, true
	}
	if m := leadingRe.FindStringSubmatch(t); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n, true
		}
	}
	return 0, false
}
