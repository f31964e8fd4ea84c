// Salary text normalization shared by every board adapter.
// Turns free-form strings like "₹12,00,000 - ₹18,00,000 a year" or
// "12-20 LPA" into an annual minimum INR figure.

package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Annualization assumptions: 22 working days a month, 8 hours a day.
const (
	workDaysPerMonth = 22
	workHoursPerDay  = 8
)

// numPattern matches a decimal number with optional thousands grouping.
// Western grouping (1,234,567) is tried before Indian lakh grouping
// (12,00,000) so that three-digit groups are never split in half.
const numPattern = `(?:\d{1,3}(?:,\d{3})+|\d{1,2}(?:,\d{2})*,\d{3}|\d+(?:\.\d+)?)`

var (
	rangeRe = regexp.MustCompile(`(₹?\s*` + numPattern + `)\s*[-–—]\s*(₹?\s*` + numPattern + `)`)
	valueRe = regexp.MustCompile(`(₹?\s*` + numPattern + `)`)

	lakhRangeRe  = regexp.MustCompile(`(` + numPattern + `)\s*[-–—]\s*(` + numPattern + `)\s*(lpa|lakh|lac|crore)`)
	lakhSingleRe = regexp.MustCompile(`(` + numPattern + `)\s*(lpa|lakh|lac|crore)`)

	nonNumericRe = regexp.MustCompile(`[^\d.]`)
)

// toRupees converts a captured number like "₹32,20,000" or "3.5" to a float.
// Unparsable input yields 0, not an error; callers decide whether 0 counts.
func toRupees(s string) float64 {
	s = strings.NewReplacer("₹", "", " ", "", ",", "").Replace(strings.TrimSpace(s))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func lakhToINR(x float64) int  { return int(math.Round(x * 100_000)) }
func croreToINR(x float64) int { return int(math.Round(x * 10_000_000)) }

// annualize scales a value by the period keywords found in text.
// No period keyword means the figure is assumed to be annual already.
func annualize(v float64, t string) int {
	switch {
	case strings.Contains(t, "year") || strings.Contains(t, "yr") || strings.Contains(t, "annum"):
		// already annual
	case strings.Contains(t, "month"):
		v *= 12
	case strings.Contains(t, "day"):
		v *= workDaysPerMonth * 12
	case strings.Contains(t, "hour") || strings.Contains(t, "hr"):
		v *= workHoursPerDay * workDaysPerMonth * 12
	}
	return int(math.Round(v))
}

// AnnualMin parses free-form salary text to the annual minimum INR figure.
// Recognized forms, in precedence order:
//
//	"12-20 LPA" / "15 lakh" / "0.5 crore"     lakh-crore units
//	"₹12,00,000 - ₹18,00,000 a year"          currency range with period
//	"₹2,000 a day"                            single value with period
//
// Ranges resolve to their lower bound. A lakh/crore keyword with no
// adjacent number falls through to the generic branches; that matches the
// long-standing behavior of the boards' own listings, don't "fix" it here.
// Returns ok=false when nothing parseable is found.
func AnnualMin(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	t := strings.ToLower(text)

	if strings.Contains(t, "lpa") || strings.Contains(t, "lakh") || strings.Contains(t, "lac") || strings.Contains(t, "crore") {
		if m := lakhRangeRe.FindStringSubmatch(t); m != nil {
			a, b := toRupees(m[1]), toRupees(m[2])
			if m[3] == "crore" {
				return min(croreToINR(a), croreToINR(b)), true
			}
			return min(lakhToINR(a), lakhToINR(b)), true
		}
		if m := lakhSingleRe.FindStringSubmatch(t); m != nil {
			v := toRupees(m[1])
			if m[2] == "crore" {
				return croreToINR(v), true
			}
			return lakhToINR(v), true
		}
	}

	if m := rangeRe.FindStringSubmatch(text); m != nil {
		return annualize(toRupees(m[1]), t), true
	}

	if m := valueRe.FindStringSubmatch(text); m != nil {
		if v := toRupees(m[1]); v > 0 {
			return annualize(v, t), true
		}
	}

	return 0, false
}

// ParseThreshold turns a user-supplied minimum-salary option into annual
// INR. Accepts bare rupee amounts ("3200000"), currency strings
// ("₹32,50,000") and LPA forms ("32 LPA").
func ParseThreshold(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if v, ok := AnnualMin(s); ok && v != 0 {
		return v, true
	}
	// last resort: strip everything but digits and parse as rupees
	digits := nonNumericRe.ReplaceAllString(s, "")
	if digits == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	return int(math.Round(v)), true
}
